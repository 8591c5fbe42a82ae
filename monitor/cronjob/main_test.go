package cronjob

import (
	globalConfig "store-monitor/config"
	"store-monitor/database"
	"store-monitor/monitor/config"
	"store-monitor/monitor/context"
)

func monitorTestConfig() *config.Config {
	cfg := &config.Config{
		DB: globalConfig.DBConfig{
			Username:   database.MysqlTestUser,
			Password:   database.MysqlTestPassword,
			Host:       database.MysqlTestHost,
			Port:       database.MysqlTestPort,
			Database:   "store_monitor",
			LogQueries: false,
		},
		Poller: config.PollerConfig{
			CronjobConfig: config.CronjobConfig{
				Enabled:        true,
				TimeoutSeconds: 60,
			},
		},
		Reports: config.ReportsConfig{
			CronjobConfig: config.CronjobConfig{
				Enabled:        true,
				TimeoutSeconds: 10,
			},
			Workers: 2,
		},
	}
	return cfg
}

func buildCronjobTestContext() (context.MonitorContext, error) {
	return context.BuildTestContext(monitorTestConfig())
}
