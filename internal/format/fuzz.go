package format

import (
	"sync"

	"github.com/hbollon/go-edlib"
)

// ratioCache memoizes Ratio results for the process lifetime, keyed by the
// exact input pair. Like the slug cache it only ever grows.
var ratioCache sync.Map

// Ratio returns a similarity score between two strings in [0, 100], based
// on Levenshtein edit distance. Identical strings score 100. Results are
// memoized; the function is safe for concurrent use.
func Ratio(a, b string) float64 {
	if a == b {
		return 100
	}

	key := a + "\x1f" + b
	if v, ok := ratioCache.Load(key); ok {
		return v.(float64)
	}

	sim, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		sim = 0
	}
	score := float64(sim) * 100

	ratioCache.Store(key, score)
	return score
}
