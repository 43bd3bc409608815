package model

import "strings"

// Song is the metadata record for a single track, as supplied by an
// external metadata source. The engine only ever reads it.
//
// All fields are expected to be populated for a valid record, with one
// exception: the playlist-context trio (ListName, ListPosition, ListLength)
// is only meaningful when the song was resolved from a playlist. A zero
// value means the field is absent; in practice the three are absent
// together.
//
// Example:
//
//	song := &model.Song{
//	    Title:   "Nightcall",
//	    Artists: []string{"Kavinsky", "Lovefoxxx"},
//	    Album:   "Nightcall",
//	}
//	fmt.Println(song.DisplayName()) // "Kavinsky, Lovefoxxx - Nightcall"
type Song struct {
	// Title is the track title.
	Title string `json:"name"`

	// Artists lists the track artists. It must be non-empty; the first
	// entry is the primary artist.
	Artists []string `json:"artists"`

	// Album is the album name.
	Album string `json:"album_name"`

	// AlbumArtist is the album-level artist.
	AlbumArtist string `json:"album_artist"`

	// Genres lists the track genres, most relevant first. May be empty.
	Genres []string `json:"genres"`

	// DiscNumber and DiscCount locate the track's disc within the release.
	DiscNumber int `json:"disc_number"`
	DiscCount  int `json:"disc_count"`

	// Duration is the track length in seconds.
	Duration float64 `json:"duration"`

	// Year is the release year; Date is the full release date string.
	Year int    `json:"year"`
	Date string `json:"date"`

	// TrackNumber is 1-based; TracksCount is the release's track total.
	TrackNumber int `json:"track_number"`
	TracksCount int `json:"tracks_count"`

	// ISRC is the International Standard Recording Code.
	ISRC string `json:"isrc"`

	// TrackID is the opaque identifier from the metadata source.
	TrackID string `json:"song_id"`

	// Publisher is the releasing label.
	Publisher string `json:"publisher"`

	// ListName, ListPosition and ListLength describe the playlist context
	// the song was found in. Zero values mean no playlist context;
	// ListPosition is 1-based.
	ListName     string `json:"list_name,omitempty"`
	ListPosition int    `json:"list_position,omitempty"`
	ListLength   int    `json:"list_length,omitempty"`
}

// Artist returns the primary artist, or "" for a record with no artists.
func (s *Song) Artist() string {
	if len(s.Artists) == 0 {
		return ""
	}
	return s.Artists[0]
}

// DisplayName returns the human-readable "Artist1, Artist2 - Title" form
// used in messages and matching.
func (s *Song) DisplayName() string {
	return SongTitle(s.Title, s.Artists)
}

// SongTitle joins artists and a title into "Artist1, Artist2 - Title".
// With no artists it returns the title unchanged.
func SongTitle(title string, artists []string) string {
	if len(artists) == 0 {
		return title
	}
	return strings.Join(artists, ", ") + " - " + title
}
