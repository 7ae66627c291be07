package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	UserID        *string
	DepartmentID  *string
	DesignationID *string
	FullName      string
	Email         string
	PhoneNumber   *string
	Gender        *Gender
	Address       *string
	DOB           *time.Time
	AvatarURL     *string
	HireDate      time.Time
	LeaveDate     *time.Time
	Status        Status
	BasicSalary   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Join fields
	DepartmentName  *string
	DesignationName *string
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusResigned   Status = "resigned"
	StatusTerminated Status = "terminated"
)

// IsActive reports whether the employee is currently employed.
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}
