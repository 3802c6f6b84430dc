package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"munrodist/internal/chart"
	cfgpkg "munrodist/internal/config"
	"munrodist/internal/export"
	"munrodist/internal/munro"
	"munrodist/internal/stats"
)

var (
	anaURL          string
	anaInput        string
	anaOutput       string
	anaXLSX         string
	anaCacheDir     string
	anaClassColumn  string
	anaKeepDownload bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Fetch the dataset, match Munros to their nearest Tops, render the chart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = c
		}
		url := cfg.DatasetURL
		if anaURL != "" {
			url = anaURL
		}
		output := cfg.OutputPath
		if anaOutput != "" {
			output = anaOutput
		}
		classColumn := cfg.ClassColumn
		if anaClassColumn != "" {
			classColumn = anaClassColumn
		}
		cacheDir := cfg.CacheDir
		if anaCacheDir != "" {
			cacheDir = anaCacheDir
		}
		if debug {
			fmt.Fprintf(os.Stderr, "effective config:\n%s", spew.Sdump(cfg))
		}

		local := anaInput
		if local == "" {
			fmt.Printf("Fetching %s\n", url)
			client := &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSec) * time.Second}
			p, err := munro.Download(client, url, cacheDir)
			if err != nil {
				return err
			}
			if !cfg.KeepDownload && !anaKeepDownload {
				defer os.Remove(p)
			}
			local = p
		}

		peaks, err := munro.LoadCSV(local, cfg.DatasetEncoding, classColumn)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Loaded %d peaks (EPSG:%d)\n", len(peaks), cfg.CRSEPSG)

		munros, tops := munro.Partition(peaks, cfg.ClassMunro, cfg.ClassTop)
		fmt.Printf("✓ Partitioned: %d × %q, %d × %q\n", len(munros), cfg.ClassMunro, len(tops), cfg.ClassTop)

		matches, err := munro.MatchNearest(munros, tops)
		if err != nil {
			return fmt.Errorf("match %q against %q: %w", cfg.ClassMunro, cfg.ClassTop, err)
		}

		dists := munro.Distances(matches)
		sum, err := stats.Summarize(dists)
		if err != nil {
			return fmt.Errorf("summarize %q distances: %w", cfg.ClassMunro, err)
		}
		fmt.Printf("✓ Matched %d peaks: mean %.2f km, median %.2f km\n", sum.Count, sum.Mean, sum.Median)

		if err := chart.Render(dists, sum, output); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote chart to %s\n", output)

		if anaXLSX != "" {
			if err := export.WriteXLSX(anaXLSX, matches); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote match table to %s\n", anaXLSX)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&anaURL, "url", "", "dataset URL (overrides config)")
	analyzeCmd.Flags().StringVar(&anaInput, "input", "", "analyze a local CSV instead of fetching")
	analyzeCmd.Flags().StringVarP(&anaOutput, "output", "o", "", "chart output path (overrides config)")
	analyzeCmd.Flags().StringVar(&anaXLSX, "xlsx", "", "also export the match table to this xlsx path")
	analyzeCmd.Flags().StringVar(&anaCacheDir, "cache-dir", "", "download cache directory (overrides config)")
	analyzeCmd.Flags().StringVar(&anaClassColumn, "class-column", "", "classification column, e.g. 2021 (overrides config)")
	analyzeCmd.Flags().BoolVar(&anaKeepDownload, "keep-download", false, "keep the downloaded CSV in the cache dir")
	rootCmd.AddCommand(analyzeCmd)
}
