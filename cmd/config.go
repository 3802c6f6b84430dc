package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgpkg "munrodist/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage munrodist configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the config path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cfgpkg.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("✓ Wrote config")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cfgpkg.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		fmt.Printf("dataset_url:      %s\n", c.DatasetURL)
		fmt.Printf("dataset_encoding: %s\n", c.DatasetEncoding)
		fmt.Printf("class_column:     %s\n", c.ClassColumn)
		fmt.Printf("class_munro:      %s\n", c.ClassMunro)
		fmt.Printf("class_top:        %s\n", c.ClassTop)
		fmt.Printf("crs_epsg:         %d\n", c.CRSEPSG)
		fmt.Printf("output_path:      %s\n", c.OutputPath)
		fmt.Printf("cache_dir:        %s\n", c.CacheDir)
		fmt.Printf("keep_download:    %v\n", c.KeepDownload)
		fmt.Printf("http_timeout_sec: %d\n", c.HTTPTimeoutSec)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
