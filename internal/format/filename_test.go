package format

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"songpath/internal/model"
)

func TestFileName(t *testing.T) {
	song := &model.Song{
		Title:   "Love Song",
		Artists: []string{"A One"},
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"default shape", "{artists} - {title}.{output-ext}", "A One - Love Song.mp3"},
		{"empty template", "", "A One - Love Song.mp3"},
		{"directory prefix only", "music", "music/A One - Love Song.mp3"},
		{"trailing separator", "music/", "music/A One - Love Song.mp3"},
		{"missing extension suffix", "{artist}/{title}", "A One/Love Song.mp3"},
		{"reserved segment kept", ".spotdl/{title}.{output-ext}", ".spotdl/Love Song.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FileName(song, tt.template, "mp3", false, false)
			if err != nil {
				t.Fatalf("FileName(%q) error: %v", tt.template, err)
			}
			if got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestFileName_TrimsSegmentDots(t *testing.T) {
	song := &model.Song{
		Title:   "...Song...",
		Artists: []string{"A One"},
	}

	got, err := FileName(song, "{title}.{output-ext}", "mp3", false, false)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Song....mp3"; got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
}

func TestFileName_LongTitleStaysUnderLimit(t *testing.T) {
	song := &model.Song{
		Title:   strings.TrimSpace(strings.Repeat("verylongword ", 800)),
		Artists: []string{"A One"},
	}

	got, err := FileName(song, "{artists} - {title}.{output-ext}", "mp3", false, false)
	if err != nil {
		t.Fatalf("FileName error: %v", err)
	}

	if n := utf8.RuneCountInString(got); n >= maxLeafRunes {
		t.Errorf("leaf length = %d runes, want < %d", n, maxLeafRunes)
	}
	if !strings.HasSuffix(got, ".mp3") {
		t.Errorf("FileName = %q, want .mp3 suffix", got)
	}
}

func TestFileName_CannotShorten(t *testing.T) {
	song := &model.Song{
		Title:   strings.Repeat("x", 300),
		Artists: []string{"A One"},
	}

	_, err := FileName(song, "{artists} - {title}.{output-ext}", "mp3", false, false)

	var cse *CannotShortenError
	if !errors.As(err, &cse) {
		t.Fatalf("FileName error = %v, want *CannotShortenError", err)
	}
	if !strings.Contains(cse.Song, "A One") {
		t.Errorf("CannotShortenError.Song = %q, want it to name the track", cse.Song)
	}
}

func TestFileName_Restrict(t *testing.T) {
	song := &model.Song{
		Title:   "Señor Song",
		Artists: []string{"A B"},
	}

	got, err := FileName(song, "{artists} - {title}.{output-ext}", "mp3", true, false)
	if err != nil {
		t.Fatal(err)
	}
	if want := "A_B-Senor_Song.mp3"; got != want {
		t.Errorf("restricted FileName = %q, want %q", got, want)
	}
}

func TestFileName_RestrictLeavesDirectories(t *testing.T) {
	song := &model.Song{
		Title:   "Song",
		Artists: []string{"A One"},
	}

	got, err := FileName(song, "My Music/{title}.{output-ext}", "mp3", true, false)
	if err != nil {
		t.Fatal(err)
	}
	// Only the leaf is restricted; the directory keeps its space.
	if want := "My Music/Song.mp3"; got != want {
		t.Errorf("restricted FileName = %q, want %q", got, want)
	}
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		title  string
		budget int
		want   string
	}{
		{"one two three", 8, "one two"},
		{"one two three", 100, "one two three"},
		{"supercalifragilistic", 5, "supercalifragilistic"},
	}

	for _, tt := range tests {
		if got := truncateWords(tt.title, tt.budget); got != tt.want {
			t.Errorf("truncateWords(%q, %d) = %q, want %q", tt.title, tt.budget, got, tt.want)
		}
	}
}

func TestRestrictName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain.mp3", "plain.mp3"},
		{"has space.mp3", "has_space.mp3"},
		{"Beyoncé.flac", "Beyonce.flac"},
		{"a - b.mp3", "a-b.mp3"},
		{"???", "_"},
	}

	for _, tt := range tests {
		if got := restrictName(tt.input); got != tt.want {
			t.Errorf("restrictName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
