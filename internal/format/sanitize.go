package format

import "strings"

// removedChars may not appear anywhere in a file name segment and have no
// useful replacement.
const removedChars = `/?\*|<>`

// Sanitize strips characters that are disallowed in file names. Slashes,
// question marks, backslashes, asterisks, pipes and angle brackets are
// removed outright; double quotes become single quotes and colons become
// hyphens so their meaning is retained. The removal pass runs first so a
// replacement character can never be removed again.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !strings.ContainsRune(removedChars, r) {
			b.WriteRune(r)
		}
	}

	out := strings.ReplaceAll(b.String(), `"`, "'")
	return strings.ReplaceAll(out, ":", "-")
}
