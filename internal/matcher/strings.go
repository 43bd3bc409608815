package matcher

import (
	"sort"
	"strings"

	"songpath/internal/format"
)

// FillString appends the slugs of candidates to mainString when they occur
// in checkString but not yet in mainString. Dashes are ignored during the
// containment checks so word boundaries do not block a match.
func FillString(candidates []string, mainString, checkString string) string {
	final := mainString
	test := strings.ReplaceAll(final, "-", "")
	check := strings.ReplaceAll(checkString, "-", "")

	for _, candidate := range candidates {
		slug := strings.ReplaceAll(format.Slugify(candidate), "-", "")
		if slug == "" {
			continue
		}
		if strings.Contains(check, slug) && !strings.Contains(test, slug) {
			final += "-" + slug
			test += slug
		}
	}

	return final
}

// CleanString joins the slugs of words that are not already contained in
// the slug of s. With sortWords set the surviving words are sorted first.
func CleanString(words []string, s string, sortWords bool, joinWith string) string {
	base := strings.ReplaceAll(format.Slugify(s), "-", "")

	var final []string
	for _, word := range words {
		slug := strings.ReplaceAll(format.Slugify(word), "-", "")
		if strings.Contains(base, slug) {
			continue
		}
		final = append(final, slug)
	}

	if sortWords {
		return SortJoin(final, joinWith)
	}
	return strings.Join(final, joinWith)
}

// SortJoin sorts words and joins them with joinWith.
func SortJoin(words []string, joinWith string) string {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	return strings.Join(sorted, joinWith)
}

// BasedSort sorts words by the position their value holds in basedOn,
// unknown values first, and returns the reordered words together with
// basedOn in reverse-sorted order. Both inputs are copied, not mutated.
func BasedSort(words, basedOn []string) ([]string, []string) {
	sortedWords := append([]string(nil), words...)
	sortedBase := append([]string(nil), basedOn...)
	sort.Strings(sortedWords)
	sort.Strings(sortedBase)

	index := make(map[string]int, len(sortedBase))
	for i, v := range sortedBase {
		index[v] = i
	}

	sort.SliceStable(sortedWords, func(i, j int) bool {
		ri, ok := index[sortedWords[i]]
		if !ok {
			ri = -1
		}
		rj, ok := index[sortedWords[j]]
		if !ok {
			rj = -1
		}
		return ri > rj
	})

	for i, j := 0, len(sortedBase)-1; i < j; i, j = i+1, j-1 {
		sortedBase[i], sortedBase[j] = sortedBase[j], sortedBase[i]
	}

	return sortedWords, sortedBase
}

// sortedDashJoin re-sorts a dash-separated slug's words against another
// slug's words, so the two strings compare position-independently.
func sortedDashJoin(a, b string) (string, string) {
	listA, listB := BasedSort(strings.Split(a, "-"), strings.Split(b, "-"))
	return strings.Join(listA, "-"), strings.Join(listB, "-")
}
