package config

import (
	"fmt"
	"strings"

	pkgconfig "github.com/tinychameleon/clusterid/pkg/config"
)

type Config struct {
	Generator GeneratorConfig
	Log       LogConfig
}

// GeneratorConfig names the default domain values stamped into identifiers
// and the code tables used to encode them.
type GeneratorConfig struct {
	DataCentre   string            `mapstructure:"data_centre"`
	Environment  string            `mapstructure:"environment"`
	Type         string            `mapstructure:"type"`
	Format       string            `mapstructure:"format"`
	MaxBatch     int               `mapstructure:"max_batch"`
	DataCentres  map[string]uint8  `mapstructure:"data_centres"`
	Environments map[string]uint8  `mapstructure:"environments"`
	Types        map[string]uint16 `mapstructure:"types"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads config.yaml from configPath (if present) and the environment.
// Viper lower-cases map keys, so the default names are lower-cased to match.
func Load(configPath string) (*Config, error) {
	v, err := pkgconfig.Load(configPath, "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("generator.data_centre", "local")
	v.SetDefault("generator.environment", "development")
	v.SetDefault("generator.type", "entity")
	v.SetDefault("generator.format", "base58")
	v.SetDefault("generator.max_batch", 1000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Override from environment
	v.BindEnv("generator.data_centre", "CLUSTERID_DATA_CENTRE")
	v.BindEnv("generator.environment", "CLUSTERID_ENVIRONMENT")
	v.BindEnv("generator.type", "CLUSTERID_TYPE")
	v.BindEnv("generator.format", "CLUSTERID_FORMAT")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Generator.DataCentre = strings.ToLower(cfg.Generator.DataCentre)
	cfg.Generator.Environment = strings.ToLower(cfg.Generator.Environment)
	cfg.Generator.Type = strings.ToLower(cfg.Generator.Type)
	cfg.applyTableDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Code tables are defaulted after decoding so default names never merge
// into configured tables.
func (c *Config) applyTableDefaults() {
	if len(c.Generator.DataCentres) == 0 {
		c.Generator.DataCentres = map[string]uint8{"local": 0}
	}
	if len(c.Generator.Environments) == 0 {
		c.Generator.Environments = map[string]uint8{
			"development": 0,
			"test":        1,
			"staging":     2,
			"production":  3,
		}
	}
	if len(c.Generator.Types) == 0 {
		c.Generator.Types = map[string]uint16{"entity": 0}
	}
}

// Validate checks settings the generator cannot fall back on.
func (c *Config) Validate() error {
	if c.Generator.MaxBatch < 1 {
		return fmt.Errorf("generator.max_batch must be positive, got %d", c.Generator.MaxBatch)
	}
	switch c.Generator.Format {
	case "base58", "hex":
	default:
		return fmt.Errorf("generator.format must be base58 or hex, got %q", c.Generator.Format)
	}
	return nil
}
