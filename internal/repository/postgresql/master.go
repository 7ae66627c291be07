package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/hrm-backend-go/internal/domain/master"
	"github.com/worklane/hrm-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) master.DepartmentRepository {
	return &departmentRepository{db: db}
}

// Create implements master.DepartmentRepository.
func (r *departmentRepository) Create(ctx context.Context, dept master.Department) (master.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, dept.Name).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		return master.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return dept, nil
}

// GetByID implements master.DepartmentRepository.
func (r *departmentRepository) GetByID(ctx context.Context, id string) (master.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM departments WHERE id = $1`

	var dept master.Department
	err := q.QueryRow(ctx, query, id).Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.Department{}, master.ErrDepartmentNotFound
		}
		return master.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return dept, nil
}

// List implements master.DepartmentRepository.
func (r *departmentRepository) List(ctx context.Context) ([]master.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM departments ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []master.Department
	for rows.Next() {
		var dept master.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, dept)
	}

	return departments, nil
}

// Delete implements master.DepartmentRepository.
func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return master.ErrDepartmentNotFound
	}
	return nil
}

type designationRepository struct {
	db *database.DB
}

func NewDesignationRepository(db *database.DB) master.DesignationRepository {
	return &designationRepository{db: db}
}

// Create implements master.DesignationRepository.
func (r *designationRepository) Create(ctx context.Context, desig master.Designation) (master.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO designations (department_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, desig.DepartmentID, desig.Name).
		Scan(&desig.ID, &desig.CreatedAt, &desig.UpdatedAt)
	if err != nil {
		return master.Designation{}, fmt.Errorf("failed to create designation: %w", err)
	}

	return desig, nil
}

// GetByID implements master.DesignationRepository.
func (r *designationRepository) GetByID(ctx context.Context, id string) (master.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, department_id, name, created_at, updated_at FROM designations WHERE id = $1`

	var desig master.Designation
	err := q.QueryRow(ctx, query, id).
		Scan(&desig.ID, &desig.DepartmentID, &desig.Name, &desig.CreatedAt, &desig.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.Designation{}, master.ErrDesignationNotFound
		}
		return master.Designation{}, fmt.Errorf("failed to get designation: %w", err)
	}

	return desig, nil
}

// List implements master.DesignationRepository.
func (r *designationRepository) List(ctx context.Context, departmentID *string) ([]master.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, department_id, name, created_at, updated_at FROM designations`
	args := []interface{}{}
	if departmentID != nil && *departmentID != "" {
		query += ` WHERE department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query designations: %w", err)
	}
	defer rows.Close()

	var designations []master.Designation
	for rows.Next() {
		var desig master.Designation
		if err := rows.Scan(&desig.ID, &desig.DepartmentID, &desig.Name, &desig.CreatedAt, &desig.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan designation: %w", err)
		}
		designations = append(designations, desig)
	}

	return designations, nil
}

// Delete implements master.DesignationRepository.
func (r *designationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM designations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete designation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return master.ErrDesignationNotFound
	}
	return nil
}
