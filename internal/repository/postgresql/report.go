package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/worklane/hrm-backend-go/internal/domain/attendance"
	"github.com/worklane/hrm-backend-go/internal/domain/leave"
	"github.com/worklane/hrm-backend-go/internal/domain/report"
	"github.com/worklane/hrm-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// AttendanceRows implements report.ReportRepository.
//
// Duration columns are HH:MM:SS text; casting to interval lets Postgres
// sum them, and to_char renders the totals back in the same shape.
func (r *reportRepository) AttendanceRows(ctx context.Context, month time.Time, departmentID *string) ([]report.AttendanceReportRow, error) {
	q := GetQuerier(ctx, r.db)

	where := `
		e.status = 'active'
		AND a.date >= $1
		AND a.date < $2`
	args := []interface{}{month, month.AddDate(0, 1, 0)}
	argIdx := 3
	if departmentID != nil && *departmentID != "" {
		where += fmt.Sprintf(" AND e.department_id = $%d", argIdx)
		args = append(args, *departmentID)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT
			e.id,
			e.full_name,
			d.name,
			COUNT(*) FILTER (WHERE a.status = $%d),
			COUNT(*) FILTER (WHERE a.status = $%d),
			COUNT(*) FILTER (WHERE a.status = $%d),
			COUNT(*) FILTER (WHERE a.half_day),
			to_char(COALESCE(SUM(a.late::interval), '0'::interval), 'HH24:MI:SS'),
			to_char(COALESCE(SUM(a.overtime::interval), '0'::interval), 'HH24:MI:SS'),
			to_char(COALESCE(SUM(a.total_work::interval), '0'::interval), 'HH24:MI:SS')
		FROM employees e
		JOIN attendances a ON a.employee_id = e.id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE %s
		GROUP BY e.id, e.full_name, d.name
		ORDER BY e.full_name ASC
	`, argIdx, argIdx+1, argIdx+2, where)
	args = append(args, attendance.StatusPresent, attendance.StatusAbsent, attendance.StatusLeave)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance report: %w", err)
	}
	defer rows.Close()

	var result []report.AttendanceReportRow
	for rows.Next() {
		var row report.AttendanceReportRow
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.Department,
			&row.DaysPresent, &row.DaysAbsent, &row.DaysOnLeave, &row.DaysHalf,
			&row.TotalLate, &row.TotalOvertime, &row.TotalWork,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance report row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

// PayrollRows implements report.ReportRepository.
func (r *reportRepository) PayrollRows(ctx context.Context, month time.Time) ([]report.PayrollReportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			p.employee_id,
			e.full_name,
			p.basic_salary::text,
			p.allowance::text,
			p.deduction::text,
			p.gross_salary::text,
			p.net_salary::text,
			p.status
		FROM payslips p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.payment_date = $1
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll report: %w", err)
	}
	defer rows.Close()

	var result []report.PayrollReportRow
	for rows.Next() {
		var row report.PayrollReportRow
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName,
			&row.BasicSalary, &row.Allowance, &row.Deduction,
			&row.GrossSalary, &row.NetSalary, &row.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll report row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

// LeaveRows implements report.ReportRepository.
func (r *reportRepository) LeaveRows(ctx context.Context, year int) ([]report.LeaveReportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.id,
			e.full_name,
			t.name,
			t.days_per_year,
			COALESCE(SUM(l.total_leave_days) FILTER (
				WHERE l.status = $2 AND EXTRACT(YEAR FROM l.start_date) = $1
			), 0)
		FROM employees e
		CROSS JOIN leave_types t
		LEFT JOIN leave_requests l
			ON l.employee_id = e.id AND l.leave_type_id = t.id
		WHERE e.status = 'active'
		GROUP BY e.id, e.full_name, t.id, t.name, t.days_per_year
		ORDER BY e.full_name ASC, t.name ASC
	`

	rows, err := q.Query(ctx, query, year, leave.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave report: %w", err)
	}
	defer rows.Close()

	var result []report.LeaveReportRow
	for rows.Next() {
		var row report.LeaveReportRow
		if err := rows.Scan(&row.EmployeeID, &row.EmployeeName, &row.LeaveType, &row.Entitled, &row.Used); err != nil {
			return nil, fmt.Errorf("failed to scan leave report row: %w", err)
		}
		row.Remaining = row.Entitled - row.Used
		result = append(result, row)
	}

	return result, nil
}
