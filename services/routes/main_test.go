package routes

import (
	globalConfig "store-monitor/config"
	"store-monitor/database"
	"store-monitor/services/config"
	"store-monitor/services/context"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		DB: globalConfig.DBConfig{
			Username:   database.MysqlTestUser,
			Password:   database.MysqlTestPassword,
			Host:       database.MysqlTestHost,
			Port:       database.MysqlTestPort,
			Database:   "store_monitor_services",
			LogQueries: false,
		},
	}
	return cfg
}

// Each test gets its own in-memory database
func buildRoutesTestContext(t *testing.T, cfg *config.Config) context.ServicesContext {
	ctx, err := context.BuildTestContext(cfg)
	require.NoError(t, err)
	return ctx
}
