// Package config provides configuration management for songpath.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Output template "{artists} - {title}.{output-ext}"
//	// mp3 extension, 4 worker threads
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.OutputTemplate = "{artist}/{album}/{title}.{output-ext}"
//	err := settings.Save("/path/to/config.json")
package config
