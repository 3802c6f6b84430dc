package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"munrodist/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DatasetURL != config.DefaultDatasetURL {
		t.Fatalf("unexpected dataset url: %s", c.DatasetURL)
	}
	if c.ClassColumn != "2021" || c.ClassMunro != "Munro" || c.ClassTop != "Munro Top" {
		t.Fatalf("unexpected classification defaults: %+v", c)
	}
	if c.CRSEPSG != 27700 {
		t.Fatalf("expected EPSG 27700, got %d", c.CRSEPSG)
	}
	if c.CacheDir != filepath.Join(home, ".munrodist", "cache") {
		t.Fatalf("unexpected cache dir: %s", c.CacheDir)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, "custom.yaml")
	want := &config.Global{
		DatasetURL:      "https://example.invalid/peaks.csv",
		DatasetEncoding: "utf-8",
		ClassColumn:     "1997",
		ClassMunro:      "Munro",
		ClassTop:        "Munro Top",
		CRSEPSG:         27700,
		OutputPath:      "out.png",
		HTTPTimeoutSec:  10,
	}
	if err := config.Save(want, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.DatasetURL != want.DatasetURL || got.ClassColumn != "1997" || got.OutputPath != "out.png" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSaveDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := config.Save(&config.Global{DatasetURL: "x"}, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".munrodist", "config.yaml")); err != nil {
		t.Fatalf("expected config file in default location: %v", err)
	}
}
