package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Study    StudyConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// StudyConfig holds the study's donation settings.
type StudyConfig struct {
	Platform  string
	SessionID string // empty = mint a fresh session id at startup
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale string
}

// Load reads configuration from file and env. Env var overrides use prefix DONATUI_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "donatui", "donatui.db"))
	v.SetDefault("study.platform", "Apple Health")
	v.SetDefault("study.session_id", "")
	v.SetDefault("ui.locale", "en")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("DONATUI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "donatui"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DONATUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
