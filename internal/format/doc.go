// Package format turns a track record and a placeholder template into
// search queries and filesystem-safe file paths.
//
// # Templates
//
// Templates mix literal text with tokens from a fixed vocabulary
// ({title}, {artists}, {album}, ... — see Placeholders). Substitution is
// pure string replacement; unknown tokens stay verbatim and nothing is
// ever evaluated.
//
//	name, err := format.FileName(song, "{artist}/{album}/{title}", "mp3", false, false)
//	query, err := format.SearchQuery(song, "", false, "", false)
//
// # File name guarantees
//
// FileName keeps the final path segment under 255 characters. When plain
// substitution would exceed that it escalates through fixed fallbacks
// (primary artist only, short leaf template, word-truncated title) and
// reports *CannotShortenError when even the title alone cannot fit.
//
// # Purity
//
// Every function here is a deterministic transformation of its inputs.
// The only shared state is the pair of memoization caches behind Slugify
// and Ratio, which grow monotonically for the process lifetime and are
// safe for concurrent use; callers processing adversarial input volumes
// should front them with their own bounded cache.
package format
