// Package server implements the development task backend: the REST
// contract the client speaks, over a local sqlite database.
package server

import (
	"errors"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Address  string `yaml:"address" env:"TASKDECKD_ADDRESS" env-default:":5000"`
	DBPath   string `yaml:"db_path" env:"TASKDECKD_DB" env-default:"taskdeck.db"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`
}

// MustLoad reads the config file, falling back to environment variables
// when the file is absent. An empty path skips the file entirely.
func MustLoad(configPath string) Config {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read env: %s", err)
		}
		return cfg
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				log.Fatalf("cannot read env: %s", err)
			}
			return cfg
		}
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}

	return cfg
}
