package chart_test

import (
	"os"
	"path/filepath"
	"testing"

	"munrodist/internal/chart"
	"munrodist/internal/stats"
)

func TestRenderWritesFile(t *testing.T) {
	dists := []float64{0.8, 1.2, 1.5, 2.1, 2.2, 3.0, 4.7, 6.3}
	sum, err := stats.Summarize(dists)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	path := filepath.Join(t.TempDir(), "distribution.png")
	if err := chart.Render(dists, sum, path); err != nil {
		t.Fatalf("render: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("output file is empty")
	}
}

func TestRenderOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "distribution.png")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	dists := []float64{1, 2, 2, 3}
	sum, err := stats.Summarize(dists)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if err := chart.Render(dists, sum, path); err != nil {
		t.Fatalf("render: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() <= int64(len("stale")) {
		t.Fatalf("expected file to be replaced with a PNG, size %d", info.Size())
	}
}

func TestRenderEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "distribution.png")
	if err := chart.Render(nil, stats.Summary{}, path); err == nil {
		t.Fatalf("expected error for empty input")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("no file should be written for empty input")
	}
}
