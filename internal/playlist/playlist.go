// Package playlist generates M3U playlist files for batches of tracks,
// with entries named by the same template engine that names the files
// themselves.
package playlist

import (
	"fmt"
	"strings"

	"songpath/internal/config"
	"songpath/internal/format"
	"songpath/internal/model"
)

// Writer generates M3U playlist content. File entries are derived from
// the configured output template, so the playlist always agrees with the
// file names the engine produces for the same settings.
type Writer struct {
	settings *config.Settings
	extended bool // include #EXTINF lines with duration/display name
}

// NewWriter creates a Writer. With extended set the output is an extended
// M3U with per-track #EXTINF metadata lines.
func NewWriter(settings *config.Settings, extended bool) *Writer {
	return &Writer{settings: settings, extended: extended}
}

// M3U generates playlist content for songs, one entry per track in input
// order. A track whose name cannot be derived fails the whole playlist:
// a partial playlist silently missing tracks is worse than no playlist.
func (w *Writer) M3U(songs []*model.Song) (string, error) {
	var sb strings.Builder

	if w.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, song := range songs {
		file, err := format.FileName(song, w.settings.OutputTemplate, w.settings.Format, w.settings.Restrict, w.settings.Short)
		if err != nil {
			return "", fmt.Errorf("playlist entry for %s: %w", song.DisplayName(), err)
		}

		if w.extended {
			fmt.Fprintf(&sb, "#EXTINF:%d,%s\n", int(song.Duration), song.DisplayName())
		}
		sb.WriteString(file + "\n")
	}

	return sb.String(), nil
}
