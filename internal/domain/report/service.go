package report

import "context"

// ReportService builds management reports (admin/hr only).
type ReportService interface {
	AttendanceReport(ctx context.Context, req AttendanceReportRequest) (AttendanceReportResponse, error)
	PayrollReport(ctx context.Context, req PayrollReportRequest) (PayrollReportResponse, error)
	LeaveReport(ctx context.Context, year int) (LeaveReportResponse, error)
}
