package cronjob

import (
	"context"
	"store-monitor/database"
	"store-monitor/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ybbus/jsonrpc/v3"
)

// Collector stub returning a fixed set of store statuses
type fakeCollector struct {
	reply storeStatusReply
	err   error
}

func (c *fakeCollector) Call(_ context.Context, method string, params ...interface{}) (*jsonrpc.RPCResponse, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &jsonrpc.RPCResponse{JSONRPC: "2.0", Result: c.reply}, nil
}

func (c *fakeCollector) CallRaw(_ context.Context, request *jsonrpc.RPCRequest) (*jsonrpc.RPCResponse, error) {
	return nil, nil
}

func (c *fakeCollector) CallFor(_ context.Context, out interface{}, method string, params ...interface{}) error {
	return nil
}

func (c *fakeCollector) CallBatch(_ context.Context, requests jsonrpc.RPCRequests) (jsonrpc.RPCResponses, error) {
	return nil, nil
}

func (c *fakeCollector) CallBatchRaw(_ context.Context, requests jsonrpc.RPCRequests) (jsonrpc.RPCResponses, error) {
	return nil, nil
}

func createTestPollerCronjob(collector jsonrpc.RPCClient) (*pollerCronjob, error) {
	ctx, err := buildCronjobTestContext()
	if err != nil {
		return nil, err
	}
	return &pollerCronjob{
		config: ctx.Config().Poller,
		db:     ctx.DB(),
		client: collector,
	}, nil
}

func TestPollerRecordsStatuses(t *testing.T) {
	collector := &fakeCollector{
		reply: storeStatusReply{
			Statuses: []collectedStatus{
				{StoreID: "store-1", Active: true},
				{StoreID: "store-2", Active: false},
			},
		},
	}
	cronjob, err := createTestPollerCronjob(collector)
	require.NoError(t, err)

	now := utils.ParseTime("2023-02-02T14:29:50Z")
	cronjob.clock.SetNow(now)

	require.NoError(t, cronjob.Call())
	cronjob.clock.AdvanceNow(time.Hour)
	require.NoError(t, cronjob.Call())

	statuses, err := database.FetchStoreStatuses(cronjob.db, "store-1")
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	require.Equal(t, database.ActivityStatusActive, statuses[0].Status)
	require.WithinDuration(t, now, statuses[0].TimestampUTC, time.Minute)
	require.WithinDuration(t, now.Add(time.Hour), statuses[1].TimestampUTC, time.Minute)

	statuses, err = database.FetchStoreStatuses(cronjob.db, "store-2")
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	require.Equal(t, database.ActivityStatusInactive, statuses[0].Status)
}

func TestPollerEmptyReply(t *testing.T) {
	cronjob, err := createTestPollerCronjob(&fakeCollector{})
	require.NoError(t, err)

	require.NoError(t, cronjob.Call())

	ids, err := database.FetchDistinctStoreIDs(cronjob.db)
	require.NoError(t, err)
	require.Empty(t, ids)
}
