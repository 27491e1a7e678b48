// Package config loads settings from flags, environment, .env files and an
// optional YAML config file.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"hole-distance/internal/calculator"
	"hole-distance/internal/report"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "HOLESQL"

// Config holds the resolved settings for one run.
type Config struct {
	Input      string
	First      int
	Last       int
	Format     string
	Xlsx       string
	Port       string
	OutputDir  string
	UploadDir  string
	LogLevel   string
	LogFormat  string
	ConfigFile string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "data.kml")
	v.SetDefault("first", calculator.DefaultUniverse.First)
	v.SetDefault("last", calculator.DefaultUniverse.Last)
	v.SetDefault("format", report.FormatSQL)
	v.SetDefault("xlsx", "")
	v.SetDefault("port", "9595")
	v.SetDefault("output_dir", "output")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "auto")
}

// Load resolves the configuration from v. Flags must already be bound.
// configFile may be empty, in which case .hole-distance.yaml is looked up
// in the working directory and the home directory.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	loadEnvFiles()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// PORT is what hosting platforms set.
	_ = v.BindEnv("port", EnvPrefix+"_PORT", "PORT")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(".hole-distance")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		// A missing config file is fine.
		_ = v.ReadInConfig()
	}

	cfg := &Config{
		Input:      v.GetString("input"),
		First:      v.GetInt("first"),
		Last:       v.GetInt("last"),
		Format:     strings.ToLower(v.GetString("format")),
		Xlsx:       v.GetString("xlsx"),
		Port:       v.GetString("port"),
		OutputDir:  v.GetString("output_dir"),
		UploadDir:  v.GetString("upload_dir"),
		LogLevel:   v.GetString("log_level"),
		LogFormat:  v.GetString("log_format"),
		ConfigFile: v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Universe returns the configured hole range.
func (c *Config) Universe() calculator.Universe {
	return calculator.Universe{First: c.First, Last: c.Last}
}

// Validate checks the hole range and output format.
func (c *Config) Validate() error {
	if err := c.Universe().Validate(); err != nil {
		return fmt.Errorf("invalid hole range: %w", err)
	}
	if !slices.Contains(report.Formats, c.Format) {
		return fmt.Errorf("invalid format %q, expected one of %s", c.Format, strings.Join(report.Formats, ", "))
	}
	return nil
}

// loadEnvFiles loads .env then .env.local. Variables already set in the
// environment are never overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
