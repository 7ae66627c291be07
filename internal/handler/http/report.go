package http

import (
	"net/http"

	"github.com/worklane/hrm-backend-go/internal/domain/report"
	"github.com/worklane/hrm-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	AttendanceReport(w http.ResponseWriter, r *http.Request)
	PayrollReport(w http.ResponseWriter, r *http.Request)
	LeaveReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// AttendanceReport implements ReportHandler.
func (h *reportHandlerImpl) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	req := report.AttendanceReportRequest{
		Month:        r.URL.Query().Get("month"),
		DepartmentID: queryString(r, "department_id"),
	}

	result, err := h.reportService.AttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PayrollReport implements ReportHandler.
func (h *reportHandlerImpl) PayrollReport(w http.ResponseWriter, r *http.Request) {
	req := report.PayrollReportRequest{
		Month: r.URL.Query().Get("month"),
	}

	result, err := h.reportService.PayrollReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// LeaveReport implements ReportHandler.
func (h *reportHandlerImpl) LeaveReport(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year", 0)

	result, err := h.reportService.LeaveReport(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
