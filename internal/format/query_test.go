package format

import (
	"testing"

	"songpath/internal/model"
)

func TestSearchQuery(t *testing.T) {
	song := &model.Song{
		Title:   "Love Song",
		Artists: []string{"A One", "B Two"},
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"empty template", "", "A One - Love Song"},
		{"literal only", " official audio", "A One - Love Song official audio"},
		{"passthrough", "{artists} {title} lyrics", "A One, B Two Love Song lyrics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SearchQuery(song, tt.template, false, "", false)
			if err != nil {
				t.Fatalf("SearchQuery(%q) error: %v", tt.template, err)
			}
			if got != tt.want {
				t.Errorf("SearchQuery(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}
