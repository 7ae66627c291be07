package payroll

import "context"

// PayrollService defines business logic for payslips.
type PayrollService interface {
	// Generate creates draft payslips for all active employees for a month.
	// Employees that already have a payslip for the month are skipped.
	Generate(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error)

	// Approve moves a draft payslip to approved (admin/hr).
	Approve(ctx context.Context, id string) (PayslipResponse, error)

	// List retrieves payslips with filters (admin/hr).
	List(ctx context.Context, filter PayslipFilter) (ListPayslipsResponse, error)

	// GetMyPayslips returns the authenticated employee's payslips.
	GetMyPayslips(ctx context.Context, year *int) ([]PayslipResponse, error)

	// GetPayslip returns one payslip; employees can only read their own.
	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)

	// GetSalaryBreakdown itemizes one payslip into components.
	GetSalaryBreakdown(ctx context.Context, id string) (SalaryBreakdownResponse, error)
}
