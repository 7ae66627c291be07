package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/worklane/hrm-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	location   *time.Location
}

func NewReportService(reportRepo report.ReportRepository, location *time.Location) report.ReportService {
	if location == nil {
		location = time.UTC
	}
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		location:   location,
	}
}

// AttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) AttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceReportResponse{}, err
	}

	month, err := s.parseMonth(req.Month)
	if err != nil {
		return report.AttendanceReportResponse{}, err
	}

	rows, err := s.reportRepo.AttendanceRows(ctx, month, req.DepartmentID)
	if err != nil {
		return report.AttendanceReportResponse{}, err
	}

	return report.AttendanceReportResponse{
		Month: req.Month,
		Rows:  rows,
	}, nil
}

// PayrollReport implements report.ReportService.
func (s *ReportServiceImpl) PayrollReport(ctx context.Context, req report.PayrollReportRequest) (report.PayrollReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.PayrollReportResponse{}, err
	}

	month, err := s.parseMonth(req.Month)
	if err != nil {
		return report.PayrollReportResponse{}, err
	}

	rows, err := s.reportRepo.PayrollRows(ctx, month)
	if err != nil {
		return report.PayrollReportResponse{}, err
	}

	totalGross := decimal.Zero
	totalNet := decimal.Zero
	for _, row := range rows {
		if gross, err := decimal.NewFromString(row.GrossSalary); err == nil {
			totalGross = totalGross.Add(gross)
		}
		if net, err := decimal.NewFromString(row.NetSalary); err == nil {
			totalNet = totalNet.Add(net)
		}
	}

	return report.PayrollReportResponse{
		Month:      req.Month,
		TotalGross: totalGross.String(),
		TotalNet:   totalNet.String(),
		Rows:       rows,
	}, nil
}

// LeaveReport implements report.ReportService.
func (s *ReportServiceImpl) LeaveReport(ctx context.Context, year int) (report.LeaveReportResponse, error) {
	if year == 0 {
		year = time.Now().In(s.location).Year()
	}

	rows, err := s.reportRepo.LeaveRows(ctx, year)
	if err != nil {
		return report.LeaveReportResponse{}, err
	}

	return report.LeaveReportResponse{
		Year: year,
		Rows: rows,
	}, nil
}

func (s *ReportServiceImpl) parseMonth(month string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01", month, s.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return parsed, nil
}
