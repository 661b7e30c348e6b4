package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configFileName = "gridfield"
	configFileType = "yaml"
	envPrefix      = "GRIDFIELD"

	cfgKeyAddr      = "addr"
	cfgKeyDB        = "db"
	cfgKeyTemplates = "templates"
	cfgKeyAssetPath = "asset_path"
	cfgKeyLogLevel  = "log_level"
	cfgKeySanitize  = "sanitize"

	defaultAddr     = ":8080"
	defaultDB       = "gridfield.db"
	defaultLogLevel = "info"
)

// loadDotEnv loads .env from the working directory. A missing file is not an
// error.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// loadConfig reads gridfield.yaml (or configFile when set) and overlays
// GRIDFIELD_* environment variables. A missing default config file is not an
// error.
func loadConfig(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyAddr, defaultAddr)
	v.SetDefault(cfgKeyDB, defaultDB)
	v.SetDefault(cfgKeyTemplates, "")
	v.SetDefault(cfgKeyAssetPath, "")
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeySanitize, true)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", raw, err)
	}
	return level, nil
}
