package format

import "songpath/internal/model"

// SearchQuery derives a provider search string for song from a template.
// A template that references no placeholder at all gets "{artist} - {title}"
// prepended so the query always identifies the track. Queries are not file
// paths: no length or character constraints apply beyond the optional
// sanitize pass.
func SearchQuery(song *model.Song, template string, sanitize bool, fileExtension string, short bool) (string, error) {
	if !ContainsPlaceholder(template) {
		template = "{artist} - {title}" + template
	}
	return Format(song, template, sanitize, fileExtension, short)
}
