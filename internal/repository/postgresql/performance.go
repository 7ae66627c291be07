package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/hrm-backend-go/internal/domain/performance"
	"github.com/worklane/hrm-backend-go/internal/pkg/database"
)

type goalRepository struct {
	db *database.DB
}

func NewGoalRepository(db *database.DB) performance.GoalRepository {
	return &goalRepository{db: db}
}

const goalColumns = `
	g.id, g.employee_id, g.title, g.description, g.start_date, g.end_date,
	g.target, g.achieved, g.status, g.created_by,
	g.created_at, g.updated_at,
	e.full_name AS employee_name`

func scanGoal(row pgx.Row) (performance.Goal, error) {
	var g performance.Goal
	err := row.Scan(
		&g.ID, &g.EmployeeID, &g.Title, &g.Description, &g.StartDate, &g.EndDate,
		&g.Target, &g.Achieved, &g.Status, &g.CreatedBy,
		&g.CreatedAt, &g.UpdatedAt,
		&g.EmployeeName,
	)
	return g, err
}

// Create implements performance.GoalRepository.
func (r *goalRepository) Create(ctx context.Context, g performance.Goal) (performance.Goal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO goals (employee_id, title, description, start_date, end_date, target, achieved, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		g.EmployeeID, g.Title, g.Description, g.StartDate, g.EndDate,
		g.Target, g.Achieved, g.Status, g.CreatedBy,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return performance.Goal{}, fmt.Errorf("failed to create goal: %w", err)
	}

	return g, nil
}

// GetByID implements performance.GoalRepository.
func (r *goalRepository) GetByID(ctx context.Context, id string) (performance.Goal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + goalColumns + `
		FROM goals g
		LEFT JOIN employees e ON e.id = g.employee_id
		WHERE g.id = $1
	`

	g, err := scanGoal(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.Goal{}, performance.ErrGoalNotFound
		}
		return performance.Goal{}, fmt.Errorf("failed to get goal: %w", err)
	}

	return g, nil
}

// Update implements performance.GoalRepository.
func (r *goalRepository) Update(ctx context.Context, g performance.Goal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE goals SET
			title = $1,
			description = $2,
			start_date = $3,
			end_date = $4,
			target = $5,
			achieved = $6,
			status = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		g.Title, g.Description, g.StartDate, g.EndDate,
		g.Target, g.Achieved, g.Status, g.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.ErrGoalNotFound
		}
		return fmt.Errorf("failed to update goal: %w", err)
	}

	return nil
}

// Delete implements performance.GoalRepository.
func (r *goalRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) listGoals(ctx context.Context, baseWhere string, args []interface{}, argIdx int, filter performance.GoalFilter) ([]performance.Goal, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := "SELECT COUNT(*) FROM goals g WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count goals: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM goals g
		LEFT JOIN employees e ON e.id = g.employee_id
		WHERE %s
		ORDER BY g.end_date ASC
		LIMIT $%d OFFSET $%d
	`, goalColumns, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []performance.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}

	return goals, total, nil
}

// List implements performance.GoalRepository.
func (r *goalRepository) List(ctx context.Context, filter performance.GoalFilter) ([]performance.Goal, int64, error) {
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND g.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND g.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	return r.listGoals(ctx, baseWhere, args, argIdx, filter)
}

// ListByEmployee implements performance.GoalRepository.
func (r *goalRepository) ListByEmployee(ctx context.Context, employeeID string, filter performance.GoalFilter) ([]performance.Goal, int64, error) {
	baseWhere := "g.employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND g.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	return r.listGoals(ctx, baseWhere, args, argIdx, filter)
}

// ListEndingSoon implements performance.GoalRepository.
func (r *goalRepository) ListEndingSoon(ctx context.Context, employeeID string, days int) ([]performance.Goal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + goalColumns + `
		FROM goals g
		LEFT JOIN employees e ON e.id = g.employee_id
		WHERE g.employee_id = $1
		  AND g.status <> $2
		  AND g.end_date BETWEEN CURRENT_DATE AND CURRENT_DATE + ($3 || ' days')::interval
		ORDER BY g.end_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, performance.GoalCompleted, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming goals: %w", err)
	}
	defer rows.Close()

	var goals []performance.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}

	return goals, nil
}

type appraisalRepository struct {
	db *database.DB
}

func NewAppraisalRepository(db *database.DB) performance.AppraisalRepository {
	return &appraisalRepository{db: db}
}

// Create implements performance.AppraisalRepository.
func (r *appraisalRepository) Create(ctx context.Context, a performance.Appraisal) (performance.Appraisal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO appraisals (employee_id, reviewer_id, period, rating, remarks)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.EmployeeID, a.ReviewerID, a.Period, a.Rating, a.Remarks,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return performance.Appraisal{}, fmt.Errorf("failed to create appraisal: %w", err)
	}

	for _, rating := range a.Ratings {
		ratingQuery := `
			INSERT INTO appraisal_ratings (appraisal_id, indicator_id, rating)
			VALUES ($1, $2, $3)
		`
		if _, err := q.Exec(ctx, ratingQuery, a.ID, rating.IndicatorID, rating.Rating); err != nil {
			return performance.Appraisal{}, fmt.Errorf("failed to create appraisal rating: %w", err)
		}
	}

	return a, nil
}

// GetByID implements performance.AppraisalRepository.
func (r *appraisalRepository) GetByID(ctx context.Context, id string) (performance.Appraisal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.reviewer_id, a.period, a.rating, a.remarks,
			   a.created_at, a.updated_at,
			   e.full_name AS employee_name,
			   v.full_name AS reviewer_name
		FROM appraisals a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN employees v ON v.id = a.reviewer_id
		WHERE a.id = $1
	`

	var a performance.Appraisal
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.EmployeeID, &a.ReviewerID, &a.Period, &a.Rating, &a.Remarks,
		&a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName, &a.ReviewerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.Appraisal{}, performance.ErrAppraisalNotFound
		}
		return performance.Appraisal{}, fmt.Errorf("failed to get appraisal: %w", err)
	}

	ratings, err := r.ratings(ctx, a.ID)
	if err != nil {
		return performance.Appraisal{}, err
	}
	a.Ratings = ratings

	return a, nil
}

func (r *appraisalRepository) ratings(ctx context.Context, appraisalID string) ([]performance.IndicatorRating, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.indicator_id, i.name, ar.rating
		FROM appraisal_ratings ar
		LEFT JOIN indicators i ON i.id = ar.indicator_id
		WHERE ar.appraisal_id = $1
		ORDER BY i.name ASC
	`

	rows, err := q.Query(ctx, query, appraisalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query appraisal ratings: %w", err)
	}
	defer rows.Close()

	var ratings []performance.IndicatorRating
	for rows.Next() {
		var rating performance.IndicatorRating
		if err := rows.Scan(&rating.IndicatorID, &rating.IndicatorName, &rating.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan appraisal rating: %w", err)
		}
		ratings = append(ratings, rating)
	}

	return ratings, nil
}

// ExistsForPeriod implements performance.AppraisalRepository.
func (r *appraisalRepository) ExistsForPeriod(ctx context.Context, employeeID, period string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM appraisals WHERE employee_id = $1 AND period = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, period).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check appraisal existence: %w", err)
	}
	return exists, nil
}

// ListByEmployee implements performance.AppraisalRepository.
func (r *appraisalRepository) ListByEmployee(ctx context.Context, employeeID string) ([]performance.Appraisal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.reviewer_id, a.period, a.rating, a.remarks,
			   a.created_at, a.updated_at,
			   e.full_name AS employee_name,
			   v.full_name AS reviewer_name
		FROM appraisals a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN employees v ON v.id = a.reviewer_id
		WHERE a.employee_id = $1
		ORDER BY a.period DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query appraisals: %w", err)
	}
	defer rows.Close()

	var appraisals []performance.Appraisal
	for rows.Next() {
		var a performance.Appraisal
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.ReviewerID, &a.Period, &a.Rating, &a.Remarks,
			&a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeName, &a.ReviewerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appraisal: %w", err)
		}
		appraisals = append(appraisals, a)
	}

	for i := range appraisals {
		ratings, err := r.ratings(ctx, appraisals[i].ID)
		if err != nil {
			return nil, err
		}
		appraisals[i].Ratings = ratings
	}

	return appraisals, nil
}

type indicatorRepository struct {
	db *database.DB
}

func NewIndicatorRepository(db *database.DB) performance.IndicatorRepository {
	return &indicatorRepository{db: db}
}

// Create implements performance.IndicatorRepository.
func (r *indicatorRepository) Create(ctx context.Context, ind performance.Indicator) (performance.Indicator, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO indicators (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, ind.Name, ind.Description).Scan(&ind.ID, &ind.CreatedAt)
	if err != nil {
		return performance.Indicator{}, fmt.Errorf("failed to create indicator: %w", err)
	}

	return ind, nil
}

// GetByID implements performance.IndicatorRepository.
func (r *indicatorRepository) GetByID(ctx context.Context, id string) (performance.Indicator, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, description, created_at FROM indicators WHERE id = $1`

	var ind performance.Indicator
	err := q.QueryRow(ctx, query, id).Scan(&ind.ID, &ind.Name, &ind.Description, &ind.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.Indicator{}, performance.ErrIndicatorNotFound
		}
		return performance.Indicator{}, fmt.Errorf("failed to get indicator: %w", err)
	}

	return ind, nil
}

// List implements performance.IndicatorRepository.
func (r *indicatorRepository) List(ctx context.Context) ([]performance.Indicator, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, description, created_at FROM indicators ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query indicators: %w", err)
	}
	defer rows.Close()

	var indicators []performance.Indicator
	for rows.Next() {
		var ind performance.Indicator
		if err := rows.Scan(&ind.ID, &ind.Name, &ind.Description, &ind.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan indicator: %w", err)
		}
		indicators = append(indicators, ind)
	}

	return indicators, nil
}

// ExistsByName implements performance.IndicatorRepository.
func (r *indicatorRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM indicators WHERE LOWER(name) = LOWER($1))`

	var exists bool
	if err := q.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check indicator existence: %w", err)
	}
	return exists, nil
}
