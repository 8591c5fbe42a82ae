package routes

import (
	"net/http"
	"net/http/httptest"
	"store-monitor/database"
	"store-monitor/services/api"
	serviceUtils "store-monitor/services/utils"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReportsTestRouter(t *testing.T) (*gorm.DB, *mux.Router) {
	ctx := buildRoutesTestContext(t, testConfig())

	muxRouter := mux.NewRouter()
	AddReportRoutes(serviceUtils.NewDefaultRouter(muxRouter), ctx)
	return ctx.DB(), muxRouter
}

func TestTriggerAndGetReport(t *testing.T) {
	db, router := newReportsTestRouter(t)

	r, err := http.NewRequest(http.MethodPost, "/reports", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Result().StatusCode)

	var triggerResponse api.ApiResponseWrapper[api.TriggerReportResponse]
	serviceUtils.DecodeStruct(t, w.Result().Body, &triggerResponse)
	require.Equal(t, api.ApiResStatusOk, triggerResponse.Status)

	reportID := triggerResponse.Data.ReportID
	_, err = uuid.Parse(reportID)
	require.NoError(t, err)

	r, err = http.NewRequest(http.MethodGet, "/reports/"+reportID, nil)
	require.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)

	var getResponse api.ApiResponseWrapper[api.GetReportResponse]
	serviceUtils.DecodeStruct(t, w.Result().Body, &getResponse)
	require.Equal(t, api.ApiResStatusOk, getResponse.Status)
	require.Equal(t, api.ReportStateRunning, getResponse.Data.Status)
	require.Empty(t, getResponse.Data.CSVContent)

	// Finish the report the way the builder does and fetch it again
	report, err := database.FetchReport(db, reportID)
	require.NoError(t, err)
	report.Finish("store_id,uptime_last_hour\ns1,60\n")
	require.NoError(t, database.UpdateReport(db, report))

	r, err = http.NewRequest(http.MethodGet, "/reports/"+reportID, nil)
	require.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)

	serviceUtils.DecodeStruct(t, w.Result().Body, &getResponse)
	require.Equal(t, api.ApiResStatusOk, getResponse.Status)
	require.Empty(t, cmp.Diff(api.GetReportResponse{
		Status:     api.ReportStateComplete,
		CSVContent: "store_id,uptime_last_hour\ns1,60\n",
	}, getResponse.Data))
}

func TestGetReportInvalidID(t *testing.T) {
	_, router := newReportsTestRouter(t)

	r, err := http.NewRequest(http.MethodGet, "/reports/not-a-report-id", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	var response api.ApiResponseWrapper[api.GetReportResponse]
	serviceUtils.DecodeStruct(t, w.Result().Body, &response)
	require.Equal(t, api.ApiResStatusInvalidRequest, response.Status)
}

func TestGetReportNotFound(t *testing.T) {
	_, router := newReportsTestRouter(t)

	r, err := http.NewRequest(http.MethodGet, "/reports/"+uuid.New().String(), nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	var response api.ApiResponseWrapper[api.GetReportResponse]
	serviceUtils.DecodeStruct(t, w.Result().Body, &response)
	require.Equal(t, api.ApiResStatusNotFound, response.Status)
}
