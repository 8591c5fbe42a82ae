package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	CONFIG_FILE       string = "config.yml"
	LOCAL_CONFIG_FILE string = "config.local.yml"
)

var (
	GlobalConfigCallback ConfigCallback[GlobalConfig] = ConfigCallback[GlobalConfig]{}
)

// Implemented by application configs of all binaries in this repo
type GlobalConfig interface {
	LoggerConfig() LoggerConfig
}

// Callbacks to be called when the application config is built, e.g.,
// to initialize the logger from the loaded logger settings
type ConfigCallback[C any] struct {
	callbacks []func(C)
}

func (cc *ConfigCallback[C]) AddCallback(f func(C)) {
	cc.callbacks = append(cc.callbacks, f)
}

func (cc *ConfigCallback[C]) Call(c C) {
	for _, f := range cc.callbacks {
		f(c)
	}
}

type DBConfig struct {
	Host       string `yaml:"host" envconfig:"DB_HOST"`
	Port       int    `yaml:"port" envconfig:"DB_PORT"`
	Database   string `yaml:"database" envconfig:"DB_DATABASE"`
	Username   string `yaml:"username" envconfig:"DB_USERNAME"`
	Password   string `yaml:"password" envconfig:"DB_PASSWORD"`
	LogQueries bool   `yaml:"log_queries"`
}

type LoggerConfig struct {
	Level   string `yaml:"level" envconfig:"LOGGER_LEVEL"`
	File    string `yaml:"file" envconfig:"LOGGER_FILE"`
	Console bool   `yaml:"console"`
}

type CacheConfig struct {
	// Address of a shared Redis instance. Empty means an in-process cache.
	RedisAddress string `yaml:"redis_address" envconfig:"CACHE_REDIS_ADDRESS"`

	// Entry lifetime. Matches the expected polling cadence of one hour.
	TTLSeconds int `yaml:"ttl_seconds" envconfig:"CACHE_TTL_SECONDS"`

	// Maximal number of entries of the in-process cache
	MaxSize int `yaml:"max_size"`
}

func (c CacheConfig) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return time.Hour
	}
	return time.Duration(c.TTLSeconds) * time.Second
}

func ParseConfigFile(cfg interface{}, fileName string, allowMissing bool) error {
	f, err := os.Open(fileName)
	if err != nil {
		if allowMissing && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(cfg)
	if err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}
	return nil
}

func ReadEnv(cfg interface{}) error {
	err := envconfig.Process("", cfg)
	if err != nil {
		return fmt.Errorf("error reading env config: %w", err)
	}
	return nil
}
