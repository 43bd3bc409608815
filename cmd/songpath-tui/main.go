package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"songpath/internal/config"
	"songpath/internal/model"
	"songpath/internal/tui"
)

func main() {
	var (
		tracksFlag = flag.String("tracks", "", "Path to a JSON file with an array of track records")
		configFlag = flag.String("config", "", "Path to config file")
	)

	flag.Parse()

	tracksPath := *tracksFlag
	if tracksPath == "" && flag.NArg() > 0 {
		tracksPath = flag.Arg(0)
	}

	if tracksPath == "" {
		fmt.Println("songpath-tui - Interactive template preview")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  songpath-tui -tracks <file.json>")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	songs, err := loadTracks(tracksPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tracks: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(songs, settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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
