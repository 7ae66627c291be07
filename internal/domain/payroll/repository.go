package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// CreateIfAbsent inserts a payslip unless one exists for
	// (employee, payment month); inserted reports whether the row was written.
	CreateIfAbsent(ctx context.Context, slip Payslip) (Payslip, bool, error)

	GetByID(ctx context.Context, id string) (Payslip, error)
	Update(ctx context.Context, slip Payslip) error
	List(ctx context.Context, filter PayslipFilter) ([]Payslip, int64, error)
	ListByEmployee(ctx context.Context, employeeID string, year *int) ([]Payslip, error)

	// MonthTotals sums gross and net for all payslips in a month.
	MonthTotals(ctx context.Context, month time.Time) (MonthTotals, error)
}

type MonthTotals struct {
	Month      time.Time
	Count      int
	TotalGross string
	TotalNet   string
}
