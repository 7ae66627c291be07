package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/hrm-backend-go/internal/domain/employee"
	"github.com/worklane/hrm-backend-go/internal/domain/payroll"
)

type fakePayrollRepo struct {
	slips map[string]payroll.Payslip
	seq   int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{slips: make(map[string]payroll.Payslip)}
}

func slipKey(employeeID string, month time.Time) string {
	return employeeID + "|" + month.Format("2006-01")
}

func (f *fakePayrollRepo) CreateIfAbsent(_ context.Context, slip payroll.Payslip) (payroll.Payslip, bool, error) {
	for _, existing := range f.slips {
		if slipKey(existing.EmployeeID, existing.PaymentDate) == slipKey(slip.EmployeeID, slip.PaymentDate) {
			return existing, false, nil
		}
	}
	f.seq++
	slip.ID = fmt.Sprintf("slip-%d", f.seq)
	slip.CreatedAt = time.Now()
	slip.UpdatedAt = slip.CreatedAt
	f.slips[slip.ID] = slip
	return slip, true, nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id string) (payroll.Payslip, error) {
	slip, ok := f.slips[id]
	if !ok {
		return payroll.Payslip{}, payroll.ErrPayslipNotFound
	}
	return slip, nil
}

func (f *fakePayrollRepo) Update(_ context.Context, slip payroll.Payslip) error {
	f.slips[slip.ID] = slip
	return nil
}

func (f *fakePayrollRepo) List(_ context.Context, _ payroll.PayslipFilter) ([]payroll.Payslip, int64, error) {
	var out []payroll.Payslip
	for _, slip := range f.slips {
		out = append(out, slip)
	}
	return out, int64(len(out)), nil
}

func (f *fakePayrollRepo) ListByEmployee(_ context.Context, employeeID string, _ *int) ([]payroll.Payslip, error) {
	var out []payroll.Payslip
	for _, slip := range f.slips {
		if slip.EmployeeID == employeeID {
			out = append(out, slip)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) MonthTotals(_ context.Context, _ time.Time) (payroll.MonthTotals, error) {
	return payroll.MonthTotals{}, nil
}

type fakeActiveEmployeeRepo struct {
	employee.EmployeeRepository
	active []employee.Employee
}

func (f *fakeActiveEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return f.active, nil
}

func payrollContext(t *testing.T, employeeID, role string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": employeeID,
		"role":        role,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func salary(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func TestGeneratePayroll(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := NewPayrollService(repo, &fakeActiveEmployeeRepo{active: []employee.Employee{
		{ID: "emp-1", BasicSalary: salary("5000.00")},
		{ID: "emp-2", BasicSalary: salary("6200.50")},
		{ID: "emp-3"}, // no salary configured
	}})
	ctx := payrollContext(t, "emp-hr", "hr")

	resp, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{Month: "2026-03"})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Generated)
	assert.Equal(t, 1, resp.Skipped)
	assert.Len(t, repo.slips, 2)

	for _, slip := range repo.slips {
		assert.Equal(t, payroll.StatusDraft, slip.Status)
		assert.True(t, slip.GrossSalary.Equal(slip.BasicSalary))
		assert.True(t, slip.NetSalary.Equal(slip.BasicSalary))
		assert.Equal(t, "2026-03", slip.PaymentDate.Format("2006-01"))
	}
}

func TestGeneratePayroll_Rerun_FillsGapsOnly(t *testing.T) {
	repo := newFakePayrollRepo()
	empRepo := &fakeActiveEmployeeRepo{active: []employee.Employee{
		{ID: "emp-1", BasicSalary: salary("5000")},
	}}
	svc := NewPayrollService(repo, empRepo)
	ctx := payrollContext(t, "emp-hr", "hr")

	_, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{Month: "2026-03"})
	require.NoError(t, err)

	empRepo.active = append(empRepo.active, employee.Employee{ID: "emp-2", BasicSalary: salary("4000")})

	resp, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{Month: "2026-03"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Generated)
	assert.Equal(t, 1, resp.Skipped)
	assert.Len(t, repo.slips, 2)
}

func TestGeneratePayroll_NoActiveEmployees(t *testing.T) {
	svc := NewPayrollService(newFakePayrollRepo(), &fakeActiveEmployeeRepo{})
	ctx := payrollContext(t, "emp-hr", "hr")

	_, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{Month: "2026-03"})
	assert.ErrorIs(t, err, payroll.ErrNoActiveEmployees)
}

func TestApprovePayslip(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := NewPayrollService(repo, &fakeActiveEmployeeRepo{active: []employee.Employee{
		{ID: "emp-1", BasicSalary: salary("5000")},
	}})
	ctx := payrollContext(t, "emp-hr", "hr")

	_, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{Month: "2026-03"})
	require.NoError(t, err)

	var id string
	for k := range repo.slips {
		id = k
	}

	resp, err := svc.Approve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusApproved, resp.Status)

	_, err = svc.Approve(ctx, id)
	assert.ErrorIs(t, err, payroll.ErrPayslipNotDraft)
}

func TestGetPayslip_OwnerOnly(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := NewPayrollService(repo, &fakeActiveEmployeeRepo{active: []employee.Employee{
		{ID: "emp-1", BasicSalary: salary("5000")},
	}})

	_, err := svc.Generate(payrollContext(t, "emp-hr", "hr"), payroll.GeneratePayrollRequest{Month: "2026-03"})
	require.NoError(t, err)

	var id string
	for k := range repo.slips {
		id = k
	}

	_, err = svc.GetPayslip(payrollContext(t, "emp-2", "employee"), id)
	assert.ErrorIs(t, err, payroll.ErrNotPayslipOwner)

	resp, err := svc.GetPayslip(payrollContext(t, "emp-1", "employee"), id)
	require.NoError(t, err)
	assert.Equal(t, "5000", resp.BasicSalary)
}

func TestGetSalaryBreakdown(t *testing.T) {
	repo := newFakePayrollRepo()
	slip := payroll.Payslip{
		EmployeeID:  "emp-1",
		PaymentDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		BasicSalary: salary("5000"),
		Allowance:   salary("500"),
		Deduction:   salary("250"),
		Status:      payroll.StatusApproved,
	}
	slip.Compute()
	created, _, err := repo.CreateIfAbsent(context.Background(), slip)
	require.NoError(t, err)

	svc := NewPayrollService(repo, &fakeActiveEmployeeRepo{})
	resp, err := svc.GetSalaryBreakdown(payrollContext(t, "emp-1", "employee"), created.ID)
	require.NoError(t, err)

	assert.Equal(t, "2026-03", resp.Month)
	assert.Len(t, resp.Components, 3)
	assert.True(t, resp.Gross.Equal(salary("5500")))
	assert.True(t, resp.Net.Equal(salary("5250")))
}
