package context

import (
	"store-monitor/cache"
	globalConfig "store-monitor/config"
	"store-monitor/database"
	"store-monitor/monitor/config"

	"gorm.io/gorm"
)

type MonitorContext interface {
	Config() *config.Config
	DB() *gorm.DB
	Cache() cache.Cache
}

type monitorContext struct {
	config *config.Config
	db     *gorm.DB
	cache  cache.Cache
}

func BuildContext() (MonitorContext, error) {
	ctx := monitorContext{}

	cfg, err := config.BuildConfig()
	if err != nil {
		return nil, err
	}
	ctx.config = cfg
	globalConfig.GlobalConfigCallback.Call(cfg)

	ctx.db, err = database.ConnectAndInitialize(&cfg.DB)
	if err != nil {
		return nil, err
	}
	ctx.cache = cache.New(&cfg.Cache)
	return &ctx, nil
}

func (c *monitorContext) Config() *config.Config { return c.config }

func (c *monitorContext) DB() *gorm.DB { return c.db }

func (c *monitorContext) Cache() cache.Cache { return c.cache }
