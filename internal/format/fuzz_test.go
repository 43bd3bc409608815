package format

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestRatio(t *testing.T) {
	if got := Ratio("same", "same"); got != 100 {
		t.Errorf("Ratio(same, same) = %v, want 100", got)
	}
	if got := Ratio("abc", ""); got != 0 {
		t.Errorf("Ratio(abc, \"\") = %v, want 0", got)
	}

	got := Ratio("kitten", "sitting")
	if got <= 50 || got >= 60 {
		t.Errorf("Ratio(kitten, sitting) = %v, want a score in (50, 60)", got)
	}
}

func TestRatio_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"a", "b"},
		{"love-song", "love-song-remix"},
		{"", "x"},
		{"completely", "different"},
	}

	for _, pair := range pairs {
		got := Ratio(pair[0], pair[1])
		if got < 0 || got > 100 {
			t.Errorf("Ratio(%q, %q) = %v, out of [0, 100]", pair[0], pair[1], got)
		}
	}
}

// The caches only ever grow and are shared process-wide, so concurrent
// callers must always observe the same value for the same inputs.
func TestCaches_ConcurrentUse(t *testing.T) {
	wantRatio := Ratio("concurrent", "current")
	wantSlug := Slugify("Concurrent Use!")

	var g errgroup.Group
	for range 16 {
		g.Go(func() error {
			for range 100 {
				if got := Ratio("concurrent", "current"); got != wantRatio {
					t.Errorf("Ratio = %v, want %v", got, wantRatio)
				}
				if got := Slugify("Concurrent Use!"); got != wantSlug {
					t.Errorf("Slugify = %q, want %q", got, wantSlug)
				}
			}
			return nil
		})
	}
	_ = g.Wait()
}
