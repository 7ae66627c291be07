package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payslip statuses
const (
	StatusDraft    = "draft"
	StatusApproved = "approved"
	StatusPaid     = "paid"
)

// Payslip is one employee's pay for one month.
// Gross = basic + allowance; net = gross - deduction.
type Payslip struct {
	ID          string
	EmployeeID  string
	PaymentDate time.Time // first day of the pay month
	BasicSalary decimal.Decimal
	Allowance   decimal.Decimal
	Deduction   decimal.Decimal
	GrossSalary decimal.Decimal
	NetSalary   decimal.Decimal
	Status      string
	CreatedBy   *string
	ApprovedBy  *string
	ApprovedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields
	EmployeeName *string
}

// Compute fills the derived gross and net amounts.
func (p *Payslip) Compute() {
	p.GrossSalary = p.BasicSalary.Add(p.Allowance)
	p.NetSalary = p.GrossSalary.Sub(p.Deduction)
}

// Component is one line of a salary breakdown.
type Component struct {
	Name   string          `json:"name"`
	Kind   string          `json:"kind"` // earning or deduction
	Amount decimal.Decimal `json:"amount"`
}
