package api

import "store-monitor/database"

type TriggerReportResponse struct {
	// Identifier to poll the report with
	ReportID string `json:"report_id"`
}

type GetReportRequest struct {
	ReportID string `json:"report_id" validate:"required,report-id"`
}

// Published report states; queued and running reports are indistinguishable
// to the caller
type ReportState string

const (
	ReportStateRunning  ReportState = "Running"
	ReportStateComplete ReportState = "Complete"
	ReportStateNoData   ReportState = "No data"
	ReportStateFailed   ReportState = "Failed"
)

type GetReportResponse struct {
	Status ReportState `json:"status"`

	// CSV content of the report, set when the report is complete
	CSVContent string `json:"csv_content,omitempty"`
}

func NewGetReportResponse(report *database.Report) GetReportResponse {
	if !report.Done() {
		return GetReportResponse{Status: ReportStateRunning}
	}
	switch report.Status {
	case database.ReportStatusNoData:
		return GetReportResponse{Status: ReportStateNoData}
	case database.ReportStatusFailed:
		return GetReportResponse{Status: ReportStateFailed}
	}
	return GetReportResponse{Status: ReportStateComplete, CSVContent: report.Content}
}
