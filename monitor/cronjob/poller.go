package cronjob

import (
	"context"
	"store-monitor/database"
	"store-monitor/monitor/config"
	monitorctx "store-monitor/monitor/context"
	"store-monitor/utils"
	"time"

	"github.com/ybbus/jsonrpc/v3"
	"gorm.io/gorm"
)

// Polls the status collector for the current active/inactive state of every
// known store and records one observation row per store
type pollerCronjob struct {
	config config.PollerConfig
	db     *gorm.DB

	client jsonrpc.RPCClient
	clock  utils.ShiftedTime
}

type collectedStatus struct {
	StoreID string `json:"storeId"`
	Active  bool   `json:"active"`
}

type storeStatusReply struct {
	Statuses []collectedStatus `json:"statuses"`
}

func NewPollerCronjob(ctx monitorctx.MonitorContext) Cronjob {
	client := jsonrpc.NewClient(utils.JoinPaths(ctx.Config().Poller.CollectorURL, "rpc"))
	return &pollerCronjob{
		config: ctx.Config().Poller,
		db:     ctx.DB(),
		client: client,
	}
}

func (c *pollerCronjob) Name() string {
	return "poller"
}

func (c *pollerCronjob) Timeout() time.Duration {
	return c.config.Timeout()
}

func (c *pollerCronjob) Enabled() bool {
	return c.config.Enabled
}

func (c *pollerCronjob) OnStart() error {
	return nil
}

func (c *pollerCronjob) Call() error {
	response, err := c.client.Call(context.Background(), "monitor.getStoreStatuses")
	if err != nil {
		return err
	}

	reply := storeStatusReply{}
	err = response.GetObject(&reply)
	if err != nil {
		return err
	}

	now := c.clock.Now().UTC()
	entities := make([]*database.StoreStatus, len(reply.Statuses))
	for i, s := range reply.Statuses {
		status := database.ActivityStatusInactive
		if s.Active {
			status = database.ActivityStatusActive
		}
		entities[i] = &database.StoreStatus{
			StoreID:      s.StoreID,
			TimestampUTC: now,
			Status:       status,
		}
	}
	return database.CreateStoreStatuses(c.db, entities)
}
