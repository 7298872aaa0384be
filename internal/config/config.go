package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Outlier model settings.
	Contamination float64 `mapstructure:"contamination" yaml:"contamination"`
	Seed          int64   `mapstructure:"seed" yaml:"seed"`
	Trees         int     `mapstructure:"trees" yaml:"trees"`
	Subsample     int     `mapstructure:"subsample" yaml:"subsample"`

	// Loader/check settings.
	Delimiter      string   `mapstructure:"delimiter" yaml:"delimiter"`
	MissingMarkers []string `mapstructure:"missing_markers" yaml:"missing_markers"`

	// Report settings.
	Format string `mapstructure:"format" yaml:"format"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.tabcheck/config.yaml, creating the directory if
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
		dir := filepath.Join(home, ".tabcheck")
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
	v.SetEnvPrefix("TABCHECK")
	v.AutomaticEnv()

	// Defaults match the original diagnostic constants.
	v.SetDefault("contamination", 0.01)
	v.SetDefault("seed", 42)
	v.SetDefault("trees", 100)
	v.SetDefault("subsample", 256)
	v.SetDefault("delimiter", "")
	v.SetDefault("missing_markers", []string{})
	v.SetDefault("format", "text")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tabcheck")
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
	if c.Contamination <= 0 || c.Contamination > 0.5 {
		return nil, fmt.Errorf("contamination %g out of range (0, 0.5]", c.Contamination)
	}
	switch c.Format {
	case "text", "yaml":
	default:
		return nil, fmt.Errorf("unsupported format: %s (use text or yaml)", c.Format)
	}
	return &c, nil
}
