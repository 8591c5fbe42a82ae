package routes

import (
	"net/http"
	"store-monitor/database"
	"store-monitor/services/api"
	"store-monitor/services/context"
	"store-monitor/services/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reportRouteHandlers struct {
	db *gorm.DB
}

func newReportRouteHandlers(ctx context.ServicesContext) *reportRouteHandlers {
	return &reportRouteHandlers{
		db: ctx.DB(),
	}
}

// Queue a new report. The report builder picks it up on its next run.
func (rh *reportRouteHandlers) triggerReport() utils.RouteHandler {
	handler := func() (api.TriggerReportResponse, *utils.ErrorHandler) {
		now := time.Now()
		report := &database.Report{
			ReportID: uuid.New().String(),
			Status:   database.ReportStatusPending,
			Created:  now,
			Updated:  now,
		}
		err := database.CreateReport(rh.db, report)
		if err != nil {
			return api.TriggerReportResponse{}, utils.InternalServerErrorHandler(err)
		}
		return api.TriggerReportResponse{ReportID: report.ReportID}, nil
	}
	return utils.NewSimpleRouteHandler(handler, http.MethodPost, api.TriggerReportResponse{})
}

func (rh *reportRouteHandlers) getReport() utils.RouteHandler {
	handler := func(params map[string]string) (api.GetReportResponse, *utils.ErrorHandler) {
		request := api.GetReportRequest{ReportID: params["report_id"]}
		if err := utils.ValidateStruct(request); err != nil {
			return api.GetReportResponse{}, utils.ApiResponseErrorHandler(api.ApiResStatusInvalidRequest,
				"invalid report id", err.Error())
		}
		report, err := database.FetchReport(rh.db, request.ReportID)
		if err != nil {
			return api.GetReportResponse{}, utils.InternalServerErrorHandler(err)
		}
		if report == nil {
			return api.GetReportResponse{}, utils.ApiResponseErrorHandler(api.ApiResStatusNotFound,
				"report not found", "")
		}
		return api.NewGetReportResponse(report), nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodGet,
		map[string]string{"report_id": "Report id returned by the trigger call"},
		api.GetReportResponse{})
}

func AddReportRoutes(router utils.Router, ctx context.ServicesContext) {
	rh := newReportRouteHandlers(ctx)

	reportsSubrouter := router.WithPrefix("/reports", "Reports")
	reportsSubrouter.AddRoute("", rh.triggerReport(), "Queue generation of a new uptime report")
	reportsSubrouter.AddRoute("/{report_id}", rh.getReport(), "Get the status and content of a report")
}
