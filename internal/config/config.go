package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	AccountsBackendFile  = "file"
	AccountsBackendRedis = "redis"
)

type Config struct {
	LogLevel        string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Port            string `yaml:"port" env:"PORT" env-default:"8080"`
	AccountsBackend string `yaml:"accounts-backend" env:"ACCOUNTS_BACKEND" env-default:"file"`
	AccountsFile    string `yaml:"accounts-file" env:"ACCOUNTS_FILE" env-default:"data/accounts.json"`
	Redis           Redis  `yaml:"redis" env-prefix:"REDIS_"`
}

type Redis struct {
	Host string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"PORT" env-default:"6379"`
}

// MustLoad - load configuration from the yml file at path, or from the environment alone when
// the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.AccountsBackend != AccountsBackendFile && config.AccountsBackend != AccountsBackendRedis {
		return nil, fmt.Errorf("unknown accounts backend %q", config.AccountsBackend)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
