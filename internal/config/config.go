package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"carti-server/internal/util"
)

// Config provides configuration for the Carti server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	JWT            struct {
		Secret string `yaml:"secret" envconfig:"secret"`
	}
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		// delays are in milliseconds
		TrickDelay      int `yaml:"trickDelay" envconfig:"trick_delay"`
		BotDelay        int `yaml:"botDelay" envconfig:"bot_delay"`
		BaseReviewDelay int `yaml:"baseReviewDelay" envconfig:"base_review_delay"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an
// error; everything can come from the environment.
func Load() error {
	config = Config{}

	configFile := util.Getenv("CARTI_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("carti", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
