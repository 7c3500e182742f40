// Package config provides configuration management for the bvhtraverse service.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	BVH BVHConfig `mapstructure:"bvh"`
	Log LogConfig `mapstructure:"log"`
}

// BVHConfig holds traversal tuning knobs read from config files or env vars.
// cmd/bvhbench copies them into internal/bvh.Options; the min_chunk
// default below repeats the partitioner's own constant.
type BVHConfig struct {
	// ParallelismHint caps the number of concurrent tasks a dispatch may
	// use; 0 lets the driver pick from the machine's CPU count.
	ParallelismHint int `mapstructure:"parallelism_hint"`
	// MinChunk is the minimum number of indices a task partition range
	// may cover before the partitioner stops splitting further.
	MinChunk int `mapstructure:"min_chunk"`
	// BlockSize is passed through to internal/bvh.Options.BlockSize,
	// which the traversal engine does not read; buffer sizes do not
	// depend on it.
	BlockSize int `mapstructure:"block_size"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"` // json or text
}

// Load reads configuration from the specified file path.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Determine config file path
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/bvhtraverse")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Check if it's a "file not found" error (either viper's type or os error)
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, use defaults
			fmt.Println("Config file not found, using defaults")
		} else if os.IsNotExist(err) {
			// File specified but doesn't exist, use defaults
			fmt.Printf("Config file %s not found, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow environment variables to override config
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromReader loads configuration from an io.Reader (useful for testing).
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// BVH traversal defaults. MinChunk mirrors the partitioner's own
	// built-in constant; it is repeated here so it is visible and
	// overridable from a config file without touching code.
	v.SetDefault("bvh.parallelism_hint", 0)
	v.SetDefault("bvh.min_chunk", 100)
	v.SetDefault("bvh.block_size", 1024)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.output_path", "./logs")
	v.SetDefault("log.format", "text")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.BVH.MinChunk < 1 {
		return fmt.Errorf("bvh.min_chunk must be at least 1")
	}
	if c.BVH.ParallelismHint < 0 {
		return fmt.Errorf("bvh.parallelism_hint must not be negative")
	}
	if c.BVH.BlockSize < 0 {
		return fmt.Errorf("bvh.block_size must not be negative")
	}
	return nil
}
