package matcher

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"songpath/internal/format"
	"songpath/internal/model"
)

// Result is one candidate a search provider returned for a song. It is a
// plain value: the matcher never touches the network.
type Result struct {
	// Source names the provider, URL locates the candidate there.
	Source string
	URL    string

	// ResultID is the provider's identifier for the candidate.
	ResultID string

	// Name is the candidate's title as the provider reports it.
	Name string

	// Artists may be empty for providers that only expose an uploader;
	// Author then carries the uploader/channel name.
	Artists []string
	Author  string

	// Album is empty when the provider has no album context.
	Album string

	// Duration is the candidate length in seconds.
	Duration float64

	// Verified marks results from official/curated provider sources.
	Verified bool

	// ISRCSearch marks results found through an ISRC lookup, which are
	// trusted more than free-text search hits.
	ISRCSearch bool
}

// Match pairs a result with its overall match score in [0, 100].
type Match struct {
	Result Result
	Score  float64
}

// HasCommonWord reports whether any word of the song title occurs in the
// result name. Results failing this gate are not worth scoring at all.
func HasCommonWord(song *model.Song, result Result) bool {
	words := strings.Split(format.Slugify(song.Title), "-")
	name := strings.ReplaceAll(format.Slugify(result.Name), "-", "")

	for _, word := range words {
		if word != "" && strings.Contains(name, word) {
			return true
		}
	}
	return false
}

// MatchStrings builds the two comparable strings for a song/result pair:
// the result name and the song title (or the formatted search query for
// unverified results), both filled with any missing artists and re-sorted
// word by word so ordering differences do not depress the score.
func MatchStrings(song *model.Song, result Result, searchQuery string) (string, string) {
	songTitle := model.SongTitle(song.Title, song.Artists)
	if searchQuery != "" {
		if q, err := format.SearchQuery(song, searchQuery, false, "", true); err == nil {
			songTitle = q
		}
	}

	str1 := format.Slugify(result.Name)
	str2 := format.Slugify(songTitle)
	if result.Verified {
		str2 = format.Slugify(song.Title)
	}

	str1 = FillString(song.Artists, str1, str2)
	str2 = FillString(song.Artists, str2, str1)

	return sortedDashJoin(str1, str2)
}

// MainArtistMatch scores how well the result's primary artist matches the
// song's primary artist.
func MainArtistMatch(song *model.Song, result Result) float64 {
	if len(result.Artists) == 0 || len(song.Artists) == 0 {
		return 0
	}

	songArtists := slugifyAll(song.Artists)
	resultArtists := slugifyAll(result.Artists)
	_, sortedResult := BasedSort(songArtists, resultArtists)

	songMain := format.Slugify(song.Artists[0])
	resultMain := sortedResult[0]

	// A single result artist for a multi-artist song usually means the
	// other artists are folded into the one name.
	if len(song.Artists) > 1 && len(result.Artists) == 1 {
		var match float64
		resultMainSorted := SortJoin(strings.Split(resultMain, "-"), "-")
		for _, artist := range song.Artists[1:] {
			artistSorted := SortJoin(strings.Split(format.Slugify(artist), "-"), "-")
			if strings.Contains(resultMainSorted, artistSorted) {
				match += 100 / float64(len(song.Artists))
			}
		}
		return match
	}

	match := format.Ratio(songMain, resultMain)

	// A weak primary-artist match on a multi-artist song may just be an
	// ordering difference; compare the first two artists pairwise with
	// JaroWinkler, which is forgiving about transposed name parts.
	if match < 50 && len(songArtists) > 1 {
		jw := metrics.NewJaroWinkler()
		for _, songArtist := range limit(songArtists, 2) {
			for _, resultArtist := range limit(sortedResult, 2) {
				score := strutil.Similarity(songArtist, resultArtist, jw) * 100
				if score > match {
					match = score
				}
			}
		}
	}

	return match
}

// ArtistsMatch scores the full artist lists against each other, pairing
// them up after a BasedSort.
func ArtistsMatch(song *model.Song, result Result) float64 {
	if len(song.Artists) <= 1 || len(result.Artists) == 0 {
		return 0
	}

	list1, list2 := BasedSort(slugifyAll(song.Artists), slugifyAll(result.Artists))

	var total float64
	for i := range list1 {
		other := ""
		if i < len(list2) {
			other = list2[i]
		}
		total += format.Ratio(list1[i], other)
	}

	return total / float64(len(list1))
}

// artistsMatchFixup1 rescues low artist scores on unverified results by
// falling back to the channel name and then to artist names found inside
// the result title.
func artistsMatchFixup1(song *model.Song, result Result, score float64) float64 {
	if result.Verified || score > 50 {
		return score
	}

	channel := ""
	if len(result.Artists) > 0 {
		channel = format.Slugify(strings.Join(result.Artists, ", "))
	}
	if channelMatch := format.Ratio(format.Slugify(song.Artist()), channel); channelMatch > score {
		score = channelMatch
	}

	if score <= 50 {
		resultName := strings.ReplaceAll(format.Slugify(result.Name), "-", "")
		var found float64
		for _, artist := range song.Artists {
			slug := strings.ReplaceAll(format.Slugify(artist), "-", "")
			if slug != "" && strings.Contains(resultName, slug) {
				found++
			}
		}
		if titleMatch := found / float64(len(song.Artists)) * 100; titleMatch > score {
			score = titleMatch
		}
	}

	return score
}

// artistsMatchFixup2 adjusts artist scores for verified results using name
// similarity, album similarity and artists found in the match strings.
func artistsMatchFixup2(song *model.Song, result Result, score float64, searchQuery string) float64 {
	if score > 70 || !result.Verified {
		return score
	}

	slugSongArtist := strings.ReplaceAll(format.Slugify(song.Artist()), "-", "")
	slugSongName := format.Slugify(song.Title)
	slugResultName := strings.ReplaceAll(format.Slugify(result.Name), "-", "")
	slugResultArtists := ""
	if len(result.Artists) > 0 {
		slugResultArtists = strings.ReplaceAll(format.Slugify(strings.Join(result.Artists, ", ")), "-", "")
	}

	den := 1.0
	if len(song.Artists) > 1 {
		den = 2.0
	}
	hasMainArtist := score/den > 50

	matchStr1, matchStr2 := MatchStrings(song, result, searchQuery)

	if format.Ratio(matchStr1, matchStr2) >= 75 {
		score += 10
	}

	if len(result.Artists) > 0 && len(result.Artists) < len(song.Artists) &&
		(slugSongArtist == slugResultArtists || slugSongArtist == slugResultName) {
		score += 25
	}

	if result.Album != "" && format.Ratio(format.Slugify(result.Album), format.Slugify(song.Album)) >= 85 {
		score += 10
	}

	remaining := song.Artists
	if hasMainArtist {
		remaining = song.Artists[1:]
	}
	matchStr2Flat := strings.ReplaceAll(matchStr2, "-", "")
	for _, artist := range remaining {
		slug := strings.ReplaceAll(format.Slugify(artist), "-", "")
		if slug != "" && strings.Contains(matchStr2Flat, slug) {
			score += 5
		}
	}

	if score <= 70 {
		resultArtists := result.Artists
		if len(resultArtists) == 0 {
			resultArtists = []string{result.Author}
		}
		list1 := CleanString(song.Artists, slugSongName, true, "-")
		list2 := CleanString(resultArtists, format.Slugify(result.Name), true, "-")

		if titleMatch := format.Ratio(list1, list2); titleMatch > score {
			score = titleMatch
		}
	}

	return score
}

// artistsMatchFixup3 blends in a title comparison when the result has
// exactly one artist but the song has several.
func artistsMatchFixup3(song *model.Song, result Result, score float64) float64 {
	if score > 70 || len(result.Artists) != 1 || len(song.Artists) <= 1 {
		return score
	}

	fixup := format.Ratio(
		format.Slugify(result.Name),
		format.Slugify(model.SongTitle(song.Title, []string{song.Artist()})),
	)

	if fixup >= 80 {
		score = (score + fixup) / 2
	}

	return min(score, 100)
}

// NameMatch scores the song title against the result name, word-order
// independently, retrying with the filled match strings when the direct
// comparison is weak.
func NameMatch(song *model.Song, result Result, searchQuery string) float64 {
	matchStr1, matchStr2 := MatchStrings(song, result, searchQuery)
	resultName, songName := sortedDashJoin(format.Slugify(result.Name), format.Slugify(song.Title))

	nameMatch := format.Ratio(resultName, songName)

	if nameMatch <= 75 {
		if second := format.Ratio(matchStr1, matchStr2); second > nameMatch {
			nameMatch = second
		}
	}

	return nameMatch
}

// TimeMatch scores the duration difference: 100 minus the gap in seconds.
// It goes negative for wildly different durations, which is intended.
func TimeMatch(song *model.Song, result Result) float64 {
	if result.Duration > song.Duration {
		return 100 - (result.Duration - song.Duration)
	}
	return 100 - (song.Duration - result.Duration)
}

// AlbumMatch scores the album names against each other; a result without
// album context scores 0.
func AlbumMatch(song *model.Song, result Result) float64 {
	if result.Album == "" {
		return 0
	}
	return format.Ratio(format.Slugify(song.Album), format.Slugify(result.Album))
}

// OrderResults scores every result against the song and returns the ones
// that pass the filters, unordered. searchQuery, when non-empty, is the
// template the provider query was built from and sharpens name matching.
func OrderResults(results []Result, song *model.Song, searchQuery string) []Match {
	var matches []Match

	for _, result := range results {
		if !HasCommonWord(song, result) {
			continue
		}

		artistsMatch := MainArtistMatch(song, result) + ArtistsMatch(song, result)
		if len(song.Artists) > 1 {
			artistsMatch /= 2
		}

		artistsMatch = artistsMatchFixup1(song, result, artistsMatch)
		artistsMatch = artistsMatchFixup2(song, result, artistsMatch, searchQuery)
		artistsMatch = artistsMatchFixup3(song, result, artistsMatch)

		nameMatch := NameMatch(song, result, searchQuery)
		albumMatch := AlbumMatch(song, result)
		timeMatch := TimeMatch(song, result)

		if nameMatch <= 50 {
			continue
		}
		if artistsMatch < 70 {
			continue
		}

		average := (artistsMatch + nameMatch) / 2

		// Verified non-ISRC results with a weak album match get the album
		// score blended in rather than being dropped.
		if result.Verified && !result.ISRCSearch && result.Album != "" && albumMatch <= 80 {
			average = (average + albumMatch) / 2
		}

		if timeMatch < 50 && average < 75 {
			continue
		}

		if !result.ISRCSearch && average <= 85 && timeMatch <= 85 {
			average = (average + timeMatch) / 2
		}

		matches = append(matches, Match{Result: result, Score: min(average, 100)})
	}

	return matches
}

// BestMatches sorts matches by score and keeps every match within
// threshold of the best one.
func BestMatches(matches []Match, threshold float64) []Match {
	if len(matches) == 0 {
		return nil
	}

	sorted := append([]Match(nil), matches...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	best := sorted[0].Score
	cut := sort.Search(len(sorted), func(i int) bool { return best-sorted[i].Score > threshold })
	return sorted[:cut]
}

func slugifyAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = format.Slugify(v)
	}
	return out
}

func limit(values []string, n int) []string {
	if len(values) < n {
		return values
	}
	return values[:n]
}
