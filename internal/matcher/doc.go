// Package matcher scores provider search results against a track record.
//
// Scoring is pure string work on top of format.Slugify and format.Ratio:
// artist lists, names, albums and durations are compared after slugging,
// with a series of fixups that rescue common provider quirks (artists
// folded into the title, channel names standing in for artists, reordered
// artist credits).
//
//	matches := matcher.OrderResults(results, song, "")
//	best := matcher.BestMatches(matches, 8)
//
// The package performs no I/O; callers bring their own search results.
package matcher
