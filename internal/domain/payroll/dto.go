package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/worklane/hrm-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	Month string `json:"month"` // YYYY-MM
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayslipResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	PaymentDate  string  `json:"payment_date"`
	Month        string  `json:"month"`
	BasicSalary  string  `json:"basic_salary"`
	Allowance    string  `json:"allowance"`
	Deduction    string  `json:"deduction"`
	GrossSalary  string  `json:"gross_salary"`
	NetSalary    string  `json:"net_salary"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

type PayslipFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Status     *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *PayslipFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		validStatuses := []string{StatusDraft, StatusApproved, StatusPaid}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: draft, approved, paid",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListPayslipsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Payslips   []PayslipResponse `json:"payslips"`
}

type SalaryBreakdownResponse struct {
	PayslipID  string          `json:"payslip_id"`
	Month      string          `json:"month"`
	Components []Component     `json:"components"`
	Gross      decimal.Decimal `json:"gross"`
	Net        decimal.Decimal `json:"net"`
}

type GeneratePayrollResponse struct {
	Month     string `json:"month"`
	Generated int    `json:"generated"`
	Skipped   int    `json:"skipped"`
}
