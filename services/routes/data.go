package routes

import (
	"fmt"
	"net/http"
	"store-monitor/database"
	"store-monitor/loader"
	"store-monitor/services/api"
	"store-monitor/services/context"
	"store-monitor/services/utils"
	"strings"

	globalUtils "store-monitor/utils"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type tableQuery func(db *gorm.DB, offset, limit int) (any, error)

type dataRouteHandlers struct {
	db      *gorm.DB
	dataDir string

	// Browsable tables by their url name, resolved once at startup
	tables map[string]tableQuery
}

func newDataRouteHandlers(ctx context.ServicesContext) *dataRouteHandlers {
	return &dataRouteHandlers{
		db:      ctx.DB(),
		dataDir: ctx.Config().Loader.DataDir,
		tables: map[string]tableQuery{
			"store-statuses": listStoreStatuses,
			"business-hours": listBusinessHours,
			"timezones":      listTimezones,
		},
	}
}

func listStoreStatuses(db *gorm.DB, offset, limit int) (any, error) {
	statuses, err := database.ListStoreStatuses(db, offset, limit)
	if err != nil {
		return nil, err
	}
	result := make([]api.ApiStoreStatus, len(statuses))
	for i := range statuses {
		result[i] = api.NewApiStoreStatus(&statuses[i])
	}
	return result, nil
}

func listBusinessHours(db *gorm.DB, offset, limit int) (any, error) {
	hours, err := database.ListBusinessHours(db, offset, limit)
	if err != nil {
		return nil, err
	}
	result := make([]api.ApiBusinessHour, len(hours))
	for i := range hours {
		result[i] = api.NewApiBusinessHour(&hours[i])
	}
	return result, nil
}

func listTimezones(db *gorm.DB, offset, limit int) (any, error) {
	timezones, err := database.ListStoreTimezones(db, offset, limit)
	if err != nil {
		return nil, err
	}
	result := make([]api.ApiStoreTimezone, len(timezones))
	for i := range timezones {
		result[i] = api.NewApiStoreTimezone(&timezones[i])
	}
	return result, nil
}

func (rh *dataRouteHandlers) browseTable() utils.RouteHandler {
	handler := func(params map[string]string) (any, *utils.ErrorHandler) {
		query, ok := rh.tables[params["table"]]
		if !ok {
			names := globalUtils.Keys(rh.tables)
			slices.Sort(names)
			return nil, utils.ApiResponseErrorHandler(api.ApiResStatusInvalidRequest,
				fmt.Sprintf("unknown table %q", params["table"]),
				fmt.Sprintf("valid tables: %s", strings.Join(names, ", ")))
		}
		request, errHandler := paginatedRequestFromParams(params)
		if errHandler != nil {
			return nil, errHandler
		}
		result, err := query(rh.db, request.Offset, request.Limit)
		if err != nil {
			return nil, utils.InternalServerErrorHandler(err)
		}
		return result, nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodGet,
		map[string]string{"table": "One of store-statuses, business-hours, timezones"},
		any([]api.ApiStoreStatus{}))
}

func (rh *dataRouteHandlers) importData() utils.RouteHandler {
	handler := func() (api.ImportResponse, *utils.ErrorHandler) {
		messages, err := loader.LoadAll(rh.db, rh.dataDir)
		if err != nil {
			return api.ImportResponse{}, utils.InternalServerErrorHandler(err)
		}
		return api.ImportResponse{Messages: messages}, nil
	}
	return utils.NewSimpleRouteHandler(handler, http.MethodPost, api.ImportResponse{})
}

func (rh *dataRouteHandlers) deleteData() utils.RouteHandler {
	handler := func() (any, *utils.ErrorHandler) {
		err := database.DeleteAllSourceData(rh.db)
		if err != nil {
			return nil, utils.InternalServerErrorHandler(err)
		}
		return nil, nil
	}
	return utils.NewSimpleRouteHandler(handler, http.MethodDelete, any(nil))
}

func AddDataRoutes(router utils.Router, ctx context.ServicesContext) {
	rh := newDataRouteHandlers(ctx)

	dataSubrouter := router.WithPrefix("/data", "Data")
	dataSubrouter.AddRoute("/{table}", rh.browseTable(), "Browse imported source data")
	dataSubrouter.AddRoute("", rh.deleteData(), "Delete all imported source data")

	importsSubrouter := router.WithPrefix("/data-imports", "Data")
	importsSubrouter.AddRoute("", rh.importData(), "Import source data from the configured csv files")
}
