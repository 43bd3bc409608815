// Package batch runs the formatting engine over many track records
// concurrently. The engine itself is pure; this package owns the worker
// pool and the per-track error policy (one bad track never aborts the
// batch).
package batch

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"songpath/internal/config"
	"songpath/internal/format"
	"songpath/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
)

// ProgressEvent represents a processing progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Outcome is the result of processing one track. Exactly one of Value and
// Err is meaningful.
type Outcome struct {
	Song  *model.Song
	Value string
	Err   error
}

// Processor derives file names or search queries for batches of tracks.
type Processor struct {
	settings   *config.Settings
	onProgress func(ProgressEvent)

	processed int32
	failed    int32
}

// NewProcessor creates a Processor. onProgress may be nil.
func NewProcessor(settings *config.Settings, onProgress func(ProgressEvent)) *Processor {
	return &Processor{settings: settings, onProgress: onProgress}
}

// FileNames derives a file path for every song, in input order. Per-track
// failures are recorded in the outcome and reported as progress events;
// only context cancellation stops the batch.
func (p *Processor) FileNames(ctx context.Context, songs []*model.Song) ([]Outcome, error) {
	return p.run(ctx, songs, func(song *model.Song) (string, error) {
		return format.FileName(song, p.settings.OutputTemplate, p.settings.Format, p.settings.Restrict, p.settings.Short)
	})
}

// Queries derives a search query for every song, in input order.
func (p *Processor) Queries(ctx context.Context, songs []*model.Song) ([]Outcome, error) {
	return p.run(ctx, songs, func(song *model.Song) (string, error) {
		return format.SearchQuery(song, p.settings.SearchQuery, false, p.settings.Format, p.settings.Short)
	})
}

// Progress returns how many tracks have been processed and how many of
// those failed.
func (p *Processor) Progress() (processed, failed int32) {
	return atomic.LoadInt32(&p.processed), atomic.LoadInt32(&p.failed)
}

func (p *Processor) run(ctx context.Context, songs []*model.Song, derive func(*model.Song) (string, error)) ([]Outcome, error) {
	g, ctx := errgroup.WithContext(ctx)
	threads := p.settings.Threads
	if threads < 1 {
		threads = 1
	}
	g.SetLimit(threads)

	outcomes := make([]Outcome, len(songs))
	for i, song := range songs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			value, err := derive(song)
			outcomes[i] = Outcome{Song: song, Value: value, Err: err}

			atomic.AddInt32(&p.processed, 1)
			if err != nil {
				atomic.AddInt32(&p.failed, 1)
				p.progress(ProgressEvent{
					Message: fmt.Sprintf("%s: %v", song.DisplayName(), err),
					Level:   LevelError,
				})
				return nil
			}

			p.progress(ProgressEvent{Message: value, Level: LevelVerbose})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (p *Processor) progress(event ProgressEvent) {
	if p.onProgress != nil {
		p.onProgress(event)
	}
}
