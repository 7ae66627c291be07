package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/hrm-backend-go/internal/domain/payroll"
	"github.com/worklane/hrm-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payslipColumns = `
	p.id, p.employee_id, p.payment_date,
	p.basic_salary, p.allowance, p.deduction, p.gross_salary, p.net_salary,
	p.status, p.created_by, p.approved_by, p.approved_at,
	p.created_at, p.updated_at,
	e.full_name AS employee_name`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var slip payroll.Payslip
	err := row.Scan(
		&slip.ID, &slip.EmployeeID, &slip.PaymentDate,
		&slip.BasicSalary, &slip.Allowance, &slip.Deduction, &slip.GrossSalary, &slip.NetSalary,
		&slip.Status, &slip.CreatedBy, &slip.ApprovedBy, &slip.ApprovedAt,
		&slip.CreatedAt, &slip.UpdatedAt,
		&slip.EmployeeName,
	)
	return slip, err
}

// CreateIfAbsent implements payroll.PayrollRepository.
//
// Generation is idempotent per (employee, payment month): the unique
// index absorbs the conflict and the caller learns nothing was written.
func (r *payrollRepository) CreateIfAbsent(ctx context.Context, slip payroll.Payslip) (payroll.Payslip, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			employee_id, payment_date, basic_salary, allowance, deduction,
			gross_salary, net_salary, status, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (employee_id, payment_date) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		slip.EmployeeID,
		slip.PaymentDate,
		slip.BasicSalary,
		slip.Allowance,
		slip.Deduction,
		slip.GrossSalary,
		slip.NetSalary,
		slip.Status,
		slip.CreatedBy,
	).Scan(&slip.ID, &slip.CreatedAt, &slip.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, false, nil
		}
		return payroll.Payslip{}, false, fmt.Errorf("failed to create payslip: %w", err)
	}

	return slip, true, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	slip, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return slip, nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepository) Update(ctx context.Context, slip payroll.Payslip) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips SET
			basic_salary = $1,
			allowance = $2,
			deduction = $3,
			gross_salary = $4,
			net_salary = $5,
			status = $6,
			approved_by = $7,
			approved_at = $8,
			updated_at = NOW()
		WHERE id = $9
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		slip.BasicSalary,
		slip.Allowance,
		slip.Deduction,
		slip.GrossSalary,
		slip.NetSalary,
		slip.Status,
		slip.ApprovedBy,
		slip.ApprovedAt,
		slip.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrPayslipNotFound
		}
		return fmt.Errorf("failed to update payslip: %w", err)
	}

	return nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, filter payroll.PayslipFilter) ([]payroll.Payslip, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Year != nil {
		baseWhere += fmt.Sprintf(" AND EXTRACT(YEAR FROM p.payment_date) = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM payslips p WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payslips: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM payslips p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.payment_date DESC, e.full_name ASC
		LIMIT $%d OFFSET $%d
	`, payslipColumns, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payslips: %w", err)
	}
	defer rows.Close()

	var slips []payroll.Payslip
	for rows.Next() {
		slip, err := scanPayslip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payslip: %w", err)
		}
		slips = append(slips, slip)
	}

	return slips, total, nil
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string, year *int) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
	`
	args := []interface{}{employeeID}
	if year != nil {
		query += ` AND EXTRACT(YEAR FROM p.payment_date) = $2`
		args = append(args, *year)
	}
	query += ` ORDER BY p.payment_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payslips: %w", err)
	}
	defer rows.Close()

	var slips []payroll.Payslip
	for rows.Next() {
		slip, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		slips = append(slips, slip)
	}

	return slips, nil
}

// MonthTotals implements payroll.PayrollRepository.
func (r *payrollRepository) MonthTotals(ctx context.Context, month time.Time) (payroll.MonthTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			COALESCE(SUM(gross_salary), 0)::text,
			COALESCE(SUM(net_salary), 0)::text
		FROM payslips
		WHERE payment_date = $1
	`

	totals := payroll.MonthTotals{Month: month}
	err := q.QueryRow(ctx, query, month).Scan(&totals.Count, &totals.TotalGross, &totals.TotalNet)
	if err != nil {
		return payroll.MonthTotals{}, fmt.Errorf("failed to aggregate payroll totals: %w", err)
	}

	return totals, nil
}
