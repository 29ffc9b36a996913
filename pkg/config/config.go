/*
Package config manages the TOML config for the wordfinisher services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordfinisher/internal/utils"
	"github.com/charmbracelet/log"
)

// FileName is the default config file name inside the config directory.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has options shared by the HTTP and IPC transports.
type ServerConfig struct {
	Addr           string   `toml:"addr"`
	MaxPrefix      int      `toml:"max_prefix"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// DictConfig holds word list options.
type DictConfig struct {
	Path      string `toml:"path"`
	BatchSize int    `toml:"batch_size"`
	Watch     bool   `toml:"watch"`
}

// CliConfig holds interactive CLI options.
type CliConfig struct {
	MinLen   int  `toml:"min_len"`
	MaxLen   int  `toml:"max_len"`
	NoFilter bool `toml:"no_filter"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           "0.0.0.0:5001",
			MaxPrefix:      60,
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Dict: DictConfig{
			Path:      "words.txt",
			BatchSize: 20000,
			Watch:     false,
		},
		CLI: CliConfig{
			MinLen:   1,
			MaxLen:   60,
			NoFilter: false,
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordfinisher/config.toml (created if missing)
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath, defaultPath string) (*Config, string) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}
	if defaultPath == "" {
		return DefaultConfig(), ""
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		return nil, err
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file, salvaging valid keys when the file has errors.
// Missing keys keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, err
	}
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath), nil
	}
	return config, nil
}

// tryPartialParse picks whatever keys have the right type out of a broken file
func tryPartialParse(configPath string) *Config {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config
	}

	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractString(data, "addr"); ok {
		server.Addr = val
	}
	if val, ok := utils.ExtractInt64(data, "max_prefix"); ok {
		server.MaxPrefix = val
	}
	if val, ok := utils.ExtractStringSlice(data, "allowed_origins"); ok {
		server.AllowedOrigins = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractInt64(data, "batch_size"); ok {
		dict.BatchSize = val
	}
	if val, ok := utils.ExtractBool(data, "watch"); ok {
		dict.Watch = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "min_len"); ok {
		cli.MinLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_len"); ok {
		cli.MaxLen = val
	}
	if val, ok := utils.ExtractBool(data, "no_filter"); ok {
		cli.NoFilter = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
