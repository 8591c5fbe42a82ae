package config

import (
	"store-monitor/config"
	"time"
)

type Config struct {
	DB      config.DBConfig     `yaml:"db"`
	Logger  config.LoggerConfig `yaml:"logger"`
	Cache   config.CacheConfig  `yaml:"cache"`
	Metrics MetricsConfig       `yaml:"metrics"`
	Poller  PollerConfig        `yaml:"poller"`
	Reports ReportsConfig       `yaml:"reports"`
}

type MetricsConfig struct {
	PrometheusAddress string `yaml:"prometheus_address" envconfig:"PROMETHEUS_ADDRESS"`
}

type CronjobConfig struct {
	Enabled        bool `yaml:"enabled"`
	TimeoutSeconds int  `yaml:"timeout_seconds"`
}

func (c CronjobConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type PollerConfig struct {
	CronjobConfig `yaml:",inline"`
	CollectorURL  string `yaml:"collector_url" envconfig:"POLLER_COLLECTOR_URL"`
}

type ReportsConfig struct {
	CronjobConfig `yaml:",inline"`

	// Number of stores aggregated concurrently within one report build
	Workers int `yaml:"workers"`
}

func newConfig() *Config {
	return &Config{
		Poller: PollerConfig{
			CronjobConfig: CronjobConfig{
				Enabled:        false,
				TimeoutSeconds: 3600,
			},
			CollectorURL: "http://localhost:9650/",
		},
		Reports: ReportsConfig{
			CronjobConfig: CronjobConfig{
				Enabled:        true,
				TimeoutSeconds: 10,
			},
			Workers: 4,
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
