package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultDatasetURL is the upstream Scottish Munros CSV.
const DefaultDatasetURL = "https://raw.githubusercontent.com/rfordatascience/tidytuesday/main/data/2025/2025-08-19/scottish_munros.csv"

// Global configuration structure.
type Global struct {
	DatasetURL      string `mapstructure:"dataset_url" yaml:"dataset_url"`
	DatasetEncoding string `mapstructure:"dataset_encoding" yaml:"dataset_encoding"`
	ClassColumn     string `mapstructure:"class_column" yaml:"class_column"`
	ClassMunro      string `mapstructure:"class_munro" yaml:"class_munro"`
	ClassTop        string `mapstructure:"class_top" yaml:"class_top"`
	// CRSEPSG records the coordinate reference system of the x/y columns.
	// It is metadata only; coordinates are consumed verbatim.
	CRSEPSG      int    `mapstructure:"crs_epsg" yaml:"crs_epsg"`
	OutputPath   string `mapstructure:"output_path" yaml:"output_path"`
	CacheDir     string `mapstructure:"cache_dir" yaml:"cache_dir"`
	KeepDownload bool   `mapstructure:"keep_download" yaml:"keep_download"`

	HTTPTimeoutSec int `mapstructure:"http_timeout_sec" yaml:"http_timeout_sec"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.munrodist/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".munrodist")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("MUNRODIST")
	v.AutomaticEnv()

	// Defaults reproduce the original analysis: same dataset, same
	// classification year, same output figure.
	v.SetDefault("dataset_url", DefaultDatasetURL)
	v.SetDefault("dataset_encoding", "latin1")
	v.SetDefault("class_column", "2021")
	v.SetDefault("class_munro", "Munro")
	v.SetDefault("class_top", "Munro Top")
	v.SetDefault("crs_epsg", 27700)
	v.SetDefault("output_path", "munro_top_distribution.png")
	v.SetDefault("keep_download", false)
	v.SetDefault("http_timeout_sec", 60)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".munrodist")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve cache_dir default: ~/.munrodist/cache
	if c.CacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.CacheDir = filepath.Join(home, ".munrodist", "cache")
	}
	return &c, nil
}
