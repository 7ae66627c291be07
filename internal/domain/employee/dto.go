package employee

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/worklane/hrm-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName      string           `json:"full_name"`
	Email         string           `json:"email"`
	PhoneNumber   *string          `json:"phone_number,omitempty"`
	Gender        *string          `json:"gender,omitempty"`
	Address       *string          `json:"address,omitempty"`
	DOB           *string          `json:"dob,omitempty"` // YYYY-MM-DD
	DepartmentID  *string          `json:"department_id,omitempty"`
	DesignationID *string          `json:"designation_id,omitempty"`
	HireDate      string           `json:"hire_date"` // YYYY-MM-DD
	BasicSalary   *decimal.Decimal `json:"basic_salary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{string(Male), string(Female)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be Male or Female",
		})
	}

	if r.DOB != nil && *r.DOB != "" {
		if _, valid := validator.IsValidDate(*r.DOB); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be in YYYY-MM-DD format",
			})
		}
	}

	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
	} else if _, valid := validator.IsValidDate(r.HireDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID            string           `json:"-"`
	FullName      *string          `json:"full_name,omitempty"`
	PhoneNumber   *string          `json:"phone_number,omitempty"`
	Gender        *string          `json:"gender,omitempty"`
	Address       *string          `json:"address,omitempty"`
	DOB           *string          `json:"dob,omitempty"`
	DepartmentID  *string          `json:"department_id,omitempty"`
	DesignationID *string          `json:"designation_id,omitempty"`
	Status        *string          `json:"status,omitempty"`
	LeaveDate     *string          `json:"leave_date,omitempty"`
	BasicSalary   *decimal.Decimal `json:"basic_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{string(Male), string(Female)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be Male or Female",
		})
	}

	if r.Status != nil {
		validStatuses := []string{string(StatusActive), string(StatusResigned), string(StatusTerminated)}
		if !validator.IsInSlice(strings.ToLower(*r.Status), validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: active, resigned, terminated",
			})
		}
	}

	for field, value := range map[string]*string{
		"dob":        r.DOB,
		"leave_date": r.LeaveDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateProfileRequest is the self-service subset an employee may edit.
type UpdateProfileRequest struct {
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PhoneNumber != nil && len(*r.PhoneNumber) > 20 {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must not exceed 20 characters",
		})
	}
	if r.Address != nil && len(*r.Address) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID              string  `json:"id"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	Gender          *string `json:"gender,omitempty"`
	Address         *string `json:"address,omitempty"`
	DOB             *string `json:"dob,omitempty"`
	AvatarURL       *string `json:"avatar_url,omitempty"`
	DepartmentID    *string `json:"department_id,omitempty"`
	DepartmentName  *string `json:"department_name,omitempty"`
	DesignationID   *string `json:"designation_id,omitempty"`
	DesignationName *string `json:"designation_name,omitempty"`
	HireDate        string  `json:"hire_date"`
	LeaveDate       *string `json:"leave_date,omitempty"`
	Status          string  `json:"status"`
	BasicSalary     string  `json:"basic_salary"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type EmployeeFilter struct {
	Name          *string `json:"name,omitempty"`
	DepartmentID  *string `json:"department_id,omitempty"`
	DesignationID *string `json:"designation_id,omitempty"`
	Status        *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
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
		validStatuses := []string{string(StatusActive), string(StatusResigned), string(StatusTerminated)}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: active, resigned, terminated",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
