package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"songpath/internal/batch"
	"songpath/internal/config"
	"songpath/internal/model"
	"songpath/internal/playlist"
)

func main() {
	// Command line flags
	var (
		tracksFlag   = flag.String("tracks", "", "Path to a JSON file with an array of track records")
		templateFlag = flag.String("template", "", "Output template (overrides config)")
		formatFlag   = flag.String("format", "", "Output file extension (overrides config)")
		queryFlag    = flag.Bool("query", false, "Derive search queries instead of file paths")
		restrictFlag = flag.Bool("restrict", false, "Restrict file names to a portable character set")
		shortFlag    = flag.Bool("short", false, "Use only the primary artist for {artists}")
		configFlag   = flag.String("config", "", "Path to config file")
		threadsFlag  = flag.Int("threads", 0, "Number of worker threads (overrides config)")
		m3uFlag      = flag.String("m3u", "", "Also write an M3U playlist of the derived file names to this path")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	tracksPath := *tracksFlag
	if tracksPath == "" && flag.NArg() > 0 {
		tracksPath = flag.Arg(0)
	}

	if tracksPath == "" {
		fmt.Println("songpath - Derive file names and search queries from track metadata")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  songpath -tracks <file.json> [options]")
		fmt.Println("  songpath <file.json> [options]")
		fmt.Println()
		fmt.Println("For interactive template previews, use: songpath-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *templateFlag != "" {
		settings.OutputTemplate = *templateFlag
		if *queryFlag {
			settings.SearchQuery = *templateFlag
		}
	}
	if *formatFlag != "" {
		settings.Format = *formatFlag
	}
	if *restrictFlag {
		settings.Restrict = true
	}
	if *shortFlag {
		settings.Short = true
	}
	if *threadsFlag > 0 {
		settings.Threads = *threadsFlag
	}

	songs, err := loadTracks(tracksPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tracks: %v\n", err)
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
		cancel()
	}()

	processor := batch.NewProcessor(settings, func(event batch.ProgressEvent) {
		if event.Level == batch.LevelVerbose && !*verboseFlag {
			return
		}
		if event.Level == batch.LevelError {
			fmt.Fprintln(os.Stderr, event.Message)
		}
	})

	var outcomes []batch.Outcome
	if *queryFlag {
		outcomes, err = processor.Queries(ctx, songs)
	} else {
		outcomes, err = processor.FileNames(ctx, songs)
	}
	if err != nil {
		if ctx.Err() != nil {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, outcome := range outcomes {
		if outcome.Err == nil {
			fmt.Println(outcome.Value)
		}
	}

	if *m3uFlag != "" && !*queryFlag {
		writer := playlist.NewWriter(settings, true)
		content, err := writer.M3U(songs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building playlist: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*m3uFlag, []byte(content), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing playlist: %v\n", err)
			os.Exit(1)
		}
	}

	if _, failed := processor.Progress(); failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d tracks failed\n", failed, len(songs))
		os.Exit(1)
	}
}

// loadTracks reads a JSON array of track records.
func loadTracks(path string) ([]*model.Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var songs []*model.Song
	if err := json.Unmarshal(data, &songs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(songs) == 0 {
		return nil, fmt.Errorf("%s contains no tracks", path)
	}
	return songs, nil
}
