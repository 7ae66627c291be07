package report

import (
	"context"
	"time"
)

type ReportRepository interface {
	// AttendanceRows aggregates attendance per employee for the month
	// starting at month (first day, midnight in the shift timezone).
	AttendanceRows(ctx context.Context, month time.Time, departmentID *string) ([]AttendanceReportRow, error)

	// PayrollRows returns per-employee payroll lines for the month.
	PayrollRows(ctx context.Context, month time.Time) ([]PayrollReportRow, error)

	// LeaveRows aggregates leave usage per employee and type for a year.
	LeaveRows(ctx context.Context, year int) ([]LeaveReportRow, error)
}
