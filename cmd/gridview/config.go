// Config loading for the gridview CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/fathomline/gridview/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBaseURL  = "base_url"
	cfgKeyTimeout  = "timeout"
	cfgKeyPageSize = "page_size"
	cfgKeyLocale   = "locale"
	cfgKeyLogLevel = "log_level"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Gridview CLI configuration

# Backend base URL (overridable by --base-url flag)
base_url: http://localhost:8590

# Request timeout
timeout: 10s

# Default page size for list output
page_size: 20

# BCP 47 locale tag for string sorting
locale: en

# Log level: debug, info, warn, error
log_level: warn
`

// cliConfig holds the loaded configuration shared by all subcommands.
var cliConfig types.Config

// cliLogLevel is the configured log level name.
var cliLogLevel string

// loadCLIConfig reads config.yaml from the config directory using Viper,
// creating the directory and a default file on first run, then applies the
// flag overrides. A missing config.yaml is not an error.
func loadCLIConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBaseURL, "http://localhost:8590")
	v.SetDefault(cfgKeyTimeout, types.DefaultTimeout.String())
	v.SetDefault(cfgKeyPageSize, types.DefaultPageSize)
	v.SetDefault(cfgKeyLocale, types.DefaultLocale)
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString(cfgKeyTimeout))
	if err != nil {
		return fmt.Errorf("parse timeout: %w", err)
	}

	cliConfig = types.Config{
		BaseURL:  v.GetString(cfgKeyBaseURL),
		Timeout:  timeout,
		PageSize: v.GetInt(cfgKeyPageSize),
		Locale:   v.GetString(cfgKeyLocale),
	}.Normalize()
	cliLogLevel = v.GetString(cfgKeyLogLevel)

	if flagBaseURL != "" {
		cliConfig.BaseURL = flagBaseURL
	}
	return cliConfig.Validate()
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
