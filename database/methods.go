package database

import "time"

func (s *StoreStatus) Active() bool {
	return s.Status == ActivityStatusActive
}

func (r *Report) SetStatus(status ReportStatus) {
	r.Status = status
	r.Updated = time.Now()
}

func (r *Report) Finish(content string) {
	r.Content = content
	r.SetStatus(ReportStatusCompleted)
}

// Done reports whether the build for this report has already reached a
// terminal state.
func (r *Report) Done() bool {
	switch r.Status {
	case ReportStatusCompleted, ReportStatusNoData, ReportStatusFailed:
		return true
	}
	return false
}
