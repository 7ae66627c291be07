package payroll

import "errors"

var (
	ErrPayslipNotFound     = errors.New("payslip not found")
	ErrPayslipExists       = errors.New("payslip already generated for this month")
	ErrPayslipNotDraft     = errors.New("only draft payslips can be approved")
	ErrNotPayslipOwner     = errors.New("not the owner of this payslip")
	ErrNoActiveEmployees   = errors.New("no active employees to generate payslips for")
	ErrSalaryNotConfigured = errors.New("employee has no basic salary configured")
)
