package options

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	opts, err := Load("/nonexistent/options.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !opts.ShowBreakdown || opts.AllowNegative {
		t.Errorf("unexpected defaults: %+v", opts)
	}
	if opts.Volume != 0.5 {
		t.Errorf("volume = %v, want 0.5", opts.Volume)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")

	saved := &Options{
		ShowBreakdown: false,
		AllowNegative: true,
		Volume:        0.8,
		Language:      "Ukrainian",
	}
	if err := saved.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("loaded %+v, want %+v", loaded, saved)
	}
}

func TestLoadClampsVolume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	if err := os.WriteFile(path, []byte(`{"volume": 3.5}`), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.Volume != 1 {
		t.Errorf("volume = %v, want clamped to 1", opts.Volume)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
