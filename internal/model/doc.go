// Package model defines the track record consumed by the formatting and
// matching packages.
//
// # Song
//
// Song carries the metadata fields a provider resolves for one track:
//
//	song := &model.Song{
//	    Title:       "Come Together",
//	    Artists:     []string{"The Beatles"},
//	    Album:       "Abbey Road",
//	    TrackNumber: 1,
//	}
//
// Records are read-only from the engine's point of view: nothing in this
// module mutates a Song the caller handed in.
package model
