package context

import (
	"store-monitor/cache"
	globalConfig "store-monitor/config"
	"store-monitor/database"
	"store-monitor/monitor/config"
)

func BuildTestContext(cfg *config.Config) (MonitorContext, error) {
	ctx := monitorContext{}
	var err error

	ctx.config = cfg
	globalConfig.GlobalConfigCallback.Call(cfg)

	ctx.db, err = database.ConnectAndInitializeTestDB(&cfg.DB)
	if err != nil {
		return nil, err
	}
	ctx.cache = cache.New(&cfg.Cache)

	return &ctx, nil
}
