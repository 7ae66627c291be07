package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/worklane/hrm-backend-go/internal/domain/attendance"
	"github.com/worklane/hrm-backend-go/internal/domain/dashboard"
	"github.com/worklane/hrm-backend-go/internal/domain/employee"
	"github.com/worklane/hrm-backend-go/internal/domain/helpdesk"
	"github.com/worklane/hrm-backend-go/internal/domain/leave"
	"github.com/worklane/hrm-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountActiveEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = $1`, employee.StatusActive).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return count, nil
}

// CountAttendanceByStatus implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountAttendanceByStatus(ctx context.Context, date time.Time) (int64, int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			COUNT(*) FILTER (WHERE status = $4)
		FROM attendances
		WHERE date = $1
	`

	var present, absent, onLeave int64
	err := q.QueryRow(ctx, query, date,
		attendance.StatusPresent, attendance.StatusAbsent, attendance.StatusLeave,
	).Scan(&present, &absent, &onLeave)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count attendance by status: %w", err)
	}

	return present, absent, onLeave, nil
}

// CountPendingLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPendingLeaves(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, leave.StatusPending).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return count, nil
}

// CountOpenTickets implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountOpenTickets(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM tickets WHERE status IN ($1, $2)`,
		helpdesk.StatusOpen, helpdesk.StatusInProgress).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open tickets: %w", err)
	}
	return count, nil
}

// DepartmentHeadcounts implements dashboard.DashboardRepository.
func (r *dashboardRepository) DepartmentHeadcounts(ctx context.Context) ([]dashboard.DepartmentSize, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, COUNT(e.id)
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id AND e.status = $1
		GROUP BY d.id, d.name
		ORDER BY d.name ASC
	`

	rows, err := q.Query(ctx, query, employee.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query department headcounts: %w", err)
	}
	defer rows.Close()

	var sizes []dashboard.DepartmentSize
	for rows.Next() {
		var size dashboard.DepartmentSize
		if err := rows.Scan(&size.DepartmentID, &size.DepartmentName, &size.Headcount); err != nil {
			return nil, fmt.Errorf("failed to scan department headcount: %w", err)
		}
		sizes = append(sizes, size)
	}

	return sizes, nil
}

// RecentHires implements dashboard.DashboardRepository.
func (r *dashboardRepository) RecentHires(ctx context.Context, limit int) ([]dashboard.RecentHire, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.hire_date, d.name
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.status = $1
		ORDER BY e.hire_date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employee.StatusActive, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent hires: %w", err)
	}
	defer rows.Close()

	var hires []dashboard.RecentHire
	for rows.Next() {
		var hire dashboard.RecentHire
		if err := rows.Scan(&hire.EmployeeID, &hire.FullName, &hire.HireDate, &hire.Department); err != nil {
			return nil, fmt.Errorf("failed to scan recent hire: %w", err)
		}
		hires = append(hires, hire)
	}

	return hires, nil
}
