package config

import (
	"store-monitor/config"
)

type Config struct {
	DB       config.DBConfig     `yaml:"db"`
	Logger   config.LoggerConfig `yaml:"logger"`
	Services ServicesConfig      `yaml:"services"`
	Loader   LoaderConfig        `yaml:"loader"`
}

type ServicesConfig struct {
	Address string `yaml:"address" envconfig:"SERVICES_ADDRESS"`
}

type LoaderConfig struct {
	// Directory with the csv source files for imports
	DataDir string `yaml:"data_dir" envconfig:"LOADER_DATA_DIR"`
}

func newConfig() *Config {
	return &Config{
		Services: ServicesConfig{
			Address: "localhost:8000",
		},
		Loader: LoaderConfig{
			DataDir: "store-monitoring-data",
		},
	}
}

func (c Config) LoggerConfig() config.LoggerConfig {
	return c.Logger
}

func BuildConfig() (*Config, error) {
	cfg := newConfig()
	err := config.ParseConfigFile(cfg, config.CONFIG_FILE, false)
	if err != nil {
		return nil, err
	}
	err = config.ParseConfigFile(cfg, config.LOCAL_CONFIG_FILE, true)
	if err != nil {
		return nil, err
	}
	err = config.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
