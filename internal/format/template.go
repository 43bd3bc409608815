package format

import (
	"errors"
	"strconv"
	"strings"

	"songpath/internal/model"
)

// Placeholders is the closed, case-sensitive vocabulary of template tokens.
// Anything else in a template is literal text and is left verbatim.
var Placeholders = []string{
	"{title}",
	"{artists}",
	"{artist}",
	"{album}",
	"{album-artist}",
	"{genre}",
	"{disc-number}",
	"{disc-count}",
	"{duration}",
	"{year}",
	"{original-date}",
	"{track-number}",
	"{tracks-count}",
	"{isrc}",
	"{track-id}",
	"{publisher}",
	"{list-length}",
	"{list-position}",
	"{list-name}",
	"{output-ext}",
}

// ErrMissingExtension is returned when a template references {output-ext}
// but no file extension was supplied.
var ErrMissingExtension = errors.New("template contains {output-ext}, but no file extension was given")

// Format substitutes every known placeholder in template with the
// corresponding field of song. Templates are untrusted input but never
// executable: this is pure string substitution.
//
// fileExtension fills {output-ext} and must be non-empty when the template
// references it. When sanitize is set every substituted value is run
// through Sanitize first. When short is set the {artists} placeholder
// narrows to the primary artist only.
//
// Playlist-context placeholders whose field is absent from the record are
// elided silently, collapsing any doubled path separator they leave
// behind.
func Format(song *model.Song, template string, sanitize bool, fileExtension string, short bool) (string, error) {
	if strings.Contains(template, "{output-ext}") && fileExtension == "" {
		return "", ErrMissingExtension
	}

	template = elideAbsentListFields(song, template)

	// A template reduced to the bare extension carries no name at all;
	// fall back to the default leaf shape.
	if template == "/.{output-ext}" || template == ".{output-ext}" {
		template = defaultLeafTemplate
	}

	values := []struct {
		token string
		value string
	}{
		{"{title}", song.Title},
		{"{artists}", artistsValue(song, short)},
		{"{artist}", song.Artist()},
		{"{album}", song.Album},
		{"{album-artist}", song.AlbumArtist},
		{"{genre}", firstGenre(song)},
		{"{disc-number}", strconv.Itoa(song.DiscNumber)},
		{"{disc-count}", strconv.Itoa(song.DiscCount)},
		{"{duration}", strconv.FormatFloat(song.Duration, 'f', -1, 64)},
		{"{year}", strconv.Itoa(song.Year)},
		{"{original-date}", song.Date},
		{"{track-number}", zeroPad(song.TrackNumber, 2)},
		{"{tracks-count}", strconv.Itoa(song.TracksCount)},
		{"{isrc}", song.ISRC},
		{"{track-id}", song.TrackID},
		{"{publisher}", song.Publisher},
		{"{output-ext}", fileExtension},
		{"{list-name}", song.ListName},
		{"{list-position}", zeroPad(song.ListPosition, len(strconv.Itoa(song.ListLength)))},
		{"{list-length}", strconv.Itoa(song.ListLength)},
	}

	for _, v := range values {
		value := v.value
		if sanitize {
			value = Sanitize(value)
		}
		template = strings.ReplaceAll(template, v.token, value)
	}

	return template, nil
}

// elideAbsentListFields removes playlist-context placeholders whose record
// field is absent. Songs outside a playlist commonly lack all three, so
// this degrades gracefully instead of erroring.
func elideAbsentListFields(song *model.Song, template string) string {
	checks := []struct {
		token   string
		present bool
	}{
		{"{list-length}", song.ListLength != 0},
		{"{list-position}", song.ListPosition != 0},
		{"{list-name}", song.ListName != ""},
	}

	for _, c := range checks {
		if c.present || !strings.Contains(template, c.token) {
			continue
		}
		template = strings.ReplaceAll(template, c.token, "")
		template = strings.ReplaceAll(template, "//", "/")
	}
	return template
}

// artistsValue builds the {artists} substitution. Artists whose slug is
// already contained in the slugified title are dropped, except that the
// primary artist is always re-inserted at the front. In short mode only
// the primary artist is used.
func artistsValue(song *model.Song, short bool) string {
	if short || len(song.Artists) == 0 {
		return song.Artist()
	}

	titleSlug := Slugify(song.Title)
	artists := make([]string, 0, len(song.Artists))
	for _, artist := range song.Artists {
		if !strings.Contains(titleSlug, Slugify(artist)) {
			artists = append(artists, artist)
		}
	}

	if len(artists) == 0 || artists[0] != song.Artists[0] {
		artists = append([]string{song.Artists[0]}, artists...)
	}

	return strings.Join(artists, ", ")
}

func firstGenre(song *model.Song) string {
	if len(song.Genres) == 0 {
		return ""
	}
	return song.Genres[0]
}

func zeroPad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// ContainsPlaceholder reports whether the template references any token
// from the placeholder vocabulary.
func ContainsPlaceholder(template string) bool {
	for _, token := range Placeholders {
		if strings.Contains(template, token) {
			return true
		}
	}
	return false
}
