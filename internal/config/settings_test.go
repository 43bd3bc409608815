package config

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope", "settings.json"))
	if err != nil {
		t.Fatalf("Load on missing file error: %v", err)
	}
	if !reflect.DeepEqual(settings, DefaultSettings()) {
		t.Errorf("Load on missing file = %+v, want defaults", settings)
	}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.json")

	saved := DefaultSettings()
	saved.OutputTemplate = "{artist}/{album}/{title}.{output-ext}"
	saved.Format = "flac"
	saved.Restrict = true
	saved.Threads = 8

	if err := saved.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("Load = %+v, want %+v", loaded, saved)
	}
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.OutputTemplate == "" {
		t.Error("default OutputTemplate is empty")
	}
	if settings.Format != "mp3" {
		t.Errorf("default Format = %q, want mp3", settings.Format)
	}
	if settings.Threads <= 0 {
		t.Errorf("default Threads = %d, want > 0", settings.Threads)
	}
}
