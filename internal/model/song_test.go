package model

import "testing"

func TestSongTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		artists []string
		want    string
	}{
		{"two artists", "Nightcall", []string{"Kavinsky", "Lovefoxxx"}, "Kavinsky, Lovefoxxx - Nightcall"},
		{"one artist", "Nightcall", []string{"Kavinsky"}, "Kavinsky - Nightcall"},
		{"no artists", "Nightcall", nil, "Nightcall"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SongTitle(tt.title, tt.artists); got != tt.want {
				t.Errorf("SongTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSong_Artist(t *testing.T) {
	song := &Song{Artists: []string{"Kavinsky", "Lovefoxxx"}}
	if got, want := song.Artist(), "Kavinsky"; got != want {
		t.Errorf("Artist() = %q, want %q", got, want)
	}

	empty := &Song{}
	if got := empty.Artist(); got != "" {
		t.Errorf("Artist() on empty record = %q, want \"\"", got)
	}
}

func TestSong_DisplayName(t *testing.T) {
	song := &Song{Title: "Nightcall", Artists: []string{"Kavinsky", "Lovefoxxx"}}
	if got, want := song.DisplayName(), "Kavinsky, Lovefoxxx - Nightcall"; got != want {
		t.Errorf("DisplayName() = %q, want %q", got, want)
	}
}
