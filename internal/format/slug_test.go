package format

import (
	"regexp"
	"strings"
	"testing"
)

var slugCharset = regexp.MustCompile(`^[-a-z0-9!@$]*$`)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello, World!", "hello-world!"},
		{"Beyoncé", "beyonce"},
		{"P!nk @ $ign", "p!nk-@-$ign"},
		{"  spaced   out  ", "spaced-out"},
		{"Mötley Crüe", "motley-crue"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
		{"///", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugify_Charset(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"Señor García — Canción",
		"東京",
		"夜に駆ける YOASOBI",
		"Track #5 (feat. Someone)",
	}

	for _, input := range inputs {
		got := Slugify(input)
		if !slugCharset.MatchString(got) {
			t.Errorf("Slugify(%q) = %q, contains characters outside the slug charset", input, got)
		}
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"Beyoncé",
		"P!nk @ $ign",
		"a b c d e",
	}

	for _, input := range inputs {
		once := Slugify(input)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestSlugify_MixedScript(t *testing.T) {
	got := Slugify("HELLO 東京")

	if !strings.HasPrefix(got, "hello") {
		t.Errorf("Slugify(%q) = %q, want the Latin span cleaned in place", "HELLO 東京", got)
	}
	if got == "hello" || strings.HasSuffix(got, "-") {
		t.Errorf("Slugify(%q) = %q, want the CJK span romanized, not dropped", "HELLO 東京", got)
	}
	if !slugCharset.MatchString(got) {
		t.Errorf("Slugify(%q) = %q, contains characters outside the slug charset", "HELLO 東京", got)
	}
}

func TestSlugify_CJKOnly(t *testing.T) {
	got := Slugify("東京")

	if got == "" {
		t.Fatal("Slugify(東京) = \"\", want a romanized slug")
	}
	if !slugCharset.MatchString(got) {
		t.Errorf("Slugify(東京) = %q, contains characters outside the slug charset", got)
	}
}
