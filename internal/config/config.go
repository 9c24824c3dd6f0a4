package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
	GinMode  string `yaml:"gin-mode" env:"GIN_MODE" env-default:"release"`
	HTTP     HTTP   `yaml:"http"`
}

type HTTP struct {
	ReadTimeout     time.Duration `yaml:"read-timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write-timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle-timeout" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env-default:"5s"`
}

// MustLoad - load all configurations in config.yml file, falls back to
// defaults and environment when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	return config, nil
}

func (that *Config) GetHTTPAddr() string {
	return ":" + that.HTTPPort
}
