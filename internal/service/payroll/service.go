package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklane/hrm-backend-go/internal/domain/employee"
	"github.com/worklane/hrm-backend-go/internal/domain/payroll"
	"github.com/worklane/hrm-backend-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

// Generate implements payroll.PayrollService. The insert per employee is
// conditional, so rerunning a month only fills the gaps.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	month, err := time.Parse("2006-01", req.Month)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("invalid month %q: %w", req.Month, err)
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}
	if len(employees) == 0 {
		return payroll.GeneratePayrollResponse{}, payroll.ErrNoActiveEmployees
	}

	resp := payroll.GeneratePayrollResponse{Month: req.Month}
	for _, emp := range employees {
		if emp.BasicSalary.IsZero() {
			resp.Skipped++
			continue
		}

		slip := payroll.Payslip{
			EmployeeID:  emp.ID,
			PaymentDate: month,
			BasicSalary: emp.BasicSalary,
			Status:      payroll.StatusDraft,
			CreatedBy:   &userID,
		}
		slip.Compute()

		_, inserted, err := s.payrollRepo.CreateIfAbsent(ctx, slip)
		if err != nil {
			return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to create payslip for %s: %w", emp.ID, err)
		}
		if inserted {
			resp.Generated++
		} else {
			resp.Skipped++
		}
	}

	return resp, nil
}

// Approve implements payroll.PayrollService.
func (s *PayrollServiceImpl) Approve(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	slip, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	if slip.Status != payroll.StatusDraft {
		return payroll.PayslipResponse{}, payroll.ErrPayslipNotDraft
	}

	now := time.Now()
	slip.Status = payroll.StatusApproved
	slip.ApprovedBy = &userID
	slip.ApprovedAt = &now

	if err := s.payrollRepo.Update(ctx, slip); err != nil {
		return payroll.PayslipResponse{}, err
	}

	return toPayslipResponse(slip), nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayslipFilter) (payroll.ListPayslipsResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListPayslipsResponse{}, err
	}

	slips, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayslipsResponse{}, err
	}

	responses := make([]payroll.PayslipResponse, 0, len(slips))
	for _, slip := range slips {
		responses = append(responses, toPayslipResponse(slip))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	}

	return payroll.ListPayslipsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Payslips:   responses,
	}, nil
}

// GetMyPayslips implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetMyPayslips(ctx context.Context, year *int) ([]payroll.PayslipResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	slips, err := s.payrollRepo.ListByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayslipResponse, 0, len(slips))
	for _, slip := range slips {
		responses = append(responses, toPayslipResponse(slip))
	}
	return responses, nil
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	slip, err := s.authorizedPayslip(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return toPayslipResponse(slip), nil
}

// GetSalaryBreakdown implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSalaryBreakdown(ctx context.Context, id string) (payroll.SalaryBreakdownResponse, error) {
	slip, err := s.authorizedPayslip(ctx, id)
	if err != nil {
		return payroll.SalaryBreakdownResponse{}, err
	}

	components := []payroll.Component{
		{Name: "Basic Salary", Kind: "earning", Amount: slip.BasicSalary},
	}
	if !slip.Allowance.IsZero() {
		components = append(components, payroll.Component{Name: "Allowance", Kind: "earning", Amount: slip.Allowance})
	}
	if !slip.Deduction.IsZero() {
		components = append(components, payroll.Component{Name: "Deduction", Kind: "deduction", Amount: slip.Deduction})
	}

	return payroll.SalaryBreakdownResponse{
		PayslipID:  slip.ID,
		Month:      slip.PaymentDate.Format("2006-01"),
		Components: components,
		Gross:      slip.GrossSalary,
		Net:        slip.NetSalary,
	}, nil
}

// authorizedPayslip loads a payslip and enforces that regular employees
// only read their own.
func (s *PayrollServiceImpl) authorizedPayslip(ctx context.Context, id string) (payroll.Payslip, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to get claims from context: %w", err)
	}

	slip, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.Payslip{}, err
	}

	role, _ := claims["role"].(string)
	if r := user.Role(role); r == user.RoleAdmin || r == user.RoleHR {
		return slip, nil
	}

	employeeID, _ := claims["employee_id"].(string)
	if employeeID == "" || slip.EmployeeID != employeeID {
		return payroll.Payslip{}, payroll.ErrNotPayslipOwner
	}

	return slip, nil
}

func identityFromContext(ctx context.Context) (userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to get claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user ID not found in token")
	}

	if r, ok := claims["role"].(string); ok {
		role = user.Role(r)
	}

	return userID, role, nil
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee ID not found in token")
	}

	return employeeID, nil
}

func toPayslipResponse(slip payroll.Payslip) payroll.PayslipResponse {
	return payroll.PayslipResponse{
		ID:           slip.ID,
		EmployeeID:   slip.EmployeeID,
		EmployeeName: slip.EmployeeName,
		PaymentDate:  slip.PaymentDate.Format("2006-01-02"),
		Month:        slip.PaymentDate.Format("2006-01"),
		BasicSalary:  slip.BasicSalary.String(),
		Allowance:    slip.Allowance.String(),
		Deduction:    slip.Deduction.String(),
		GrossSalary:  slip.GrossSalary.String(),
		NetSalary:    slip.NetSalary.String(),
		Status:       slip.Status,
		CreatedAt:    slip.CreatedAt.Format(time.RFC3339),
	}
}
