package format

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"songpath/internal/model"
)

const (
	defaultLeafTemplate = "{artists} - {title}.{output-ext}"
	shortLeafTemplate   = "{artist} - {title}.{output-ext}"
	minimalLeafTemplate = "{title}.{output-ext}"

	// reservedSegment is the spotDL configuration directory name; templates
	// rooted there must keep it intact even though it starts with a dot.
	reservedSegment = ".spotdl"

	// maxLeafRunes is the file name length limit common to the major
	// filesystems, counted in characters.
	maxLeafRunes = 255

	// maxTitleRunes is the title budget once every other shortening step
	// has been exhausted.
	maxTitleRunes = 240
)

// CannotShortenError is the terminal outcome of the shortening protocol:
// even the title-only template produced a leaf name at or over the length
// limit, and the title itself cannot be reduced further. It is fatal for
// the one track, never for a batch.
type CannotShortenError struct {
	Song string
}

func (e *CannotShortenError) Error() string {
	return fmt.Sprintf("%q is too long to be shortened into a usable file name", e.Song)
}

// FileName derives a filesystem-safe path for song from a template. The
// template is normalized to always carry a leaf name and the {output-ext}
// placeholder, substituted with sanitize on, and split into segments; the
// final segment is guaranteed to be under 255 characters.
//
// When the leaf would be too long the build escalates through fixed
// fallbacks — short artists field, short leaf template, word-truncated
// title with a title-only template — and finally returns
// *CannotShortenError. Each attempt strictly narrows the previous one, so
// the loop always terminates. With restrict set the leaf additionally goes
// through the strict filesystem-portable character filter.
func FileName(song *model.Song, template, fileExtension string, restrict, short bool) (string, error) {
	for {
		tmpl := normalizeTemplate(template)

		formatted, err := Format(song, tmpl, true, fileExtension, short)
		if err != nil {
			return "", err
		}

		file := joinSegments(formatted)
		leaf := filepath.Base(file)

		if utf8.RuneCountInString(leaf) < maxLeafRunes {
			if restrict {
				return restrictPath(file), nil
			}
			return file, nil
		}

		if !short {
			// First fallback: the same template with the artists field
			// narrowed to the primary artist.
			short = true
			continue
		}

		switch tmpl {
		case shortLeafTemplate:
			// Even "{artist} - {title}" is too long, so the title itself
			// has to carry the whole name. Truncate it word by word when
			// it alone would still blow the limit.
			if utf8.RuneCountInString(song.Title) > maxTitleRunes {
				shortened := *song
				shortened.Title = truncateWords(song.Title, maxTitleRunes)
				song = &shortened
			}
			template = minimalLeafTemplate

		case minimalLeafTemplate:
			return "", &CannotShortenError{Song: song.DisplayName()}

		default:
			template = shortLeafTemplate
		}
	}
}

// normalizeTemplate forces the template into a shape that always produces
// a leaf file name ending in the extension placeholder.
func normalizeTemplate(template string) string {
	// A template without any placeholder is a plain directory prefix.
	if template != "" && !ContainsPlaceholder(template) {
		template += "/" + defaultLeafTemplate
	}

	if template == "" {
		template = defaultLeafTemplate
	}

	// A trailing separator means no leaf name was given.
	if strings.HasSuffix(template, "/") || strings.HasSuffix(template, `\\`) {
		template += defaultLeafTemplate
	}

	if !strings.HasSuffix(template, ".{output-ext}") {
		template += ".{output-ext}"
	}

	return template
}

// joinSegments splits a formatted template into path segments, strips
// leading and trailing dots and asterisks from each one, and reassembles
// the path. The reserved configuration segment passes through unmodified,
// as does any segment the trim would empty out.
func joinSegments(formatted string) string {
	parts := strings.Split(formatted, "/")
	for i, part := range parts {
		if part == reservedSegment {
			continue
		}
		if trimmed := strings.Trim(part, ".*"); trimmed != "" {
			parts[i] = trimmed
		}
	}

	file := filepath.Join(parts...)
	if strings.HasPrefix(formatted, "/") {
		file = string(filepath.Separator) + file
	}
	return file
}

// truncateWords packs whole words of title into the budget, joined by
// single spaces. At least one word is always kept so the result is never
// empty.
func truncateWords(title string, budget int) string {
	var b strings.Builder
	for _, word := range strings.Split(title, " ") {
		if b.Len() > 0 && utf8.RuneCountInString(b.String())+utf8.RuneCountInString(word) >= budget {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	return strings.TrimSpace(b.String())
}

// restrictPath applies the strict portable-character filter to the leaf
// name of file, leaving parent segments as they are.
func restrictPath(file string) string {
	dir, name := filepath.Split(file)
	return dir + restrictName(name)
}

// restrictName reduces a leaf name to [A-Za-z0-9_.-]: accents are folded
// to ASCII, whitespace becomes underscores and everything else is dropped.
// "_-_" runs collapse to "-" and an emptied-out name falls back to "_".
func restrictName(name string) string {
	name = foldASCII(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteByte('_')
		case r == '-' || r == '.' || r == '_':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}

	out := strings.ReplaceAll(b.String(), "_-_", "-")
	if out == "" {
		return "_"
	}
	return out
}
