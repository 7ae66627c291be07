package report

import (
	"github.com/worklane/hrm-backend-go/internal/pkg/validator"
)

type AttendanceReportRequest struct {
	Month        string  `json:"month"` // YYYY-MM
	DepartmentID *string `json:"department_id,omitempty"`
}

func (r *AttendanceReportRequest) Validate() error {
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

	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendanceReportRow is one employee's month in the attendance report.
type AttendanceReportRow struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	Department    *string `json:"department,omitempty"`
	DaysPresent   int     `json:"days_present"`
	DaysAbsent    int     `json:"days_absent"`
	DaysOnLeave   int     `json:"days_on_leave"`
	DaysHalf      int     `json:"days_half"`
	TotalLate     string  `json:"total_late"`
	TotalOvertime string  `json:"total_overtime"`
	TotalWork     string  `json:"total_work"`
}

type AttendanceReportResponse struct {
	Month string                `json:"month"`
	Rows  []AttendanceReportRow `json:"rows"`
}

type PayrollReportRequest struct {
	Month string `json:"month"` // YYYY-MM
}

func (r *PayrollReportRequest) Validate() error {
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

type PayrollReportRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	BasicSalary  string `json:"basic_salary"`
	Allowance    string `json:"allowance"`
	Deduction    string `json:"deduction"`
	GrossSalary  string `json:"gross_salary"`
	NetSalary    string `json:"net_salary"`
	Status       string `json:"status"`
}

type PayrollReportResponse struct {
	Month      string             `json:"month"`
	TotalGross string             `json:"total_gross"`
	TotalNet   string             `json:"total_net"`
	Rows       []PayrollReportRow `json:"rows"`
}

// LeaveReportRow summarizes leave usage per employee for a year.
type LeaveReportRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	LeaveType    string `json:"leave_type"`
	Entitled     int    `json:"entitled"`
	Used         int    `json:"used"`
	Remaining    int    `json:"remaining"`
}

type LeaveReportResponse struct {
	Year int              `json:"year"`
	Rows []LeaveReportRow `json:"rows"`
}
