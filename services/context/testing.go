package context

import (
	globalConfig "store-monitor/config"
	"store-monitor/database"
	"store-monitor/services/config"
)

func BuildTestContext(cfg *config.Config) (ServicesContext, error) {
	ctx := servicesContext{}
	var err error

	ctx.config = cfg
	globalConfig.GlobalConfigCallback.Call(cfg)

	ctx.db, err = database.ConnectAndInitializeTestDB(&cfg.DB)
	if err != nil {
		return nil, err
	}

	return &ctx, nil
}
