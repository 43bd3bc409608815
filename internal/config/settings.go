package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// OutputTemplate is the placeholder template file names are derived
	// from. Relative paths are resolved by the caller.
	OutputTemplate string `json:"output"`

	// SearchQuery is the placeholder template for provider search queries.
	// Empty means the default "{artist} - {title}" derivation.
	SearchQuery string `json:"search_query"`

	// Format is the audio file extension, without the dot.
	Format string `json:"format"`

	// Restrict applies the strict portable-character filter to leaf names.
	Restrict bool `json:"restrict"`

	// Short always uses the primary artist for {artists}.
	Short bool `json:"short"`

	// Threads bounds how many tracks are processed concurrently.
	Threads int `json:"threads"`

	// ScoreThreshold is how far below the best match score a result may
	// fall and still count as a best match.
	ScoreThreshold float64 `json:"score_threshold"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputTemplate: "{artists} - {title}.{output-ext}",
		SearchQuery:    "",
		Format:         "mp3",
		Restrict:       false,
		Short:          false,
		Threads:        4,
		ScoreThreshold: 8.0,
	}
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
