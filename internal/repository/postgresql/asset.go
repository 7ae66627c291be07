package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/hrm-backend-go/internal/domain/asset"
	"github.com/worklane/hrm-backend-go/internal/pkg/database"
)

type assetRepository struct {
	db *database.DB
}

func NewAssetRepository(db *database.DB) asset.AssetRepository {
	return &assetRepository{db: db}
}

const assetColumns = `
	a.id, a.name, a.code, a.category, a.serial_number,
	a.purchase_date, a.purchase_cost, a.status,
	a.assigned_to, a.assigned_at, a.notes,
	a.created_at, a.updated_at,
	e.full_name AS assigned_to_name`

func scanAsset(row pgx.Row) (asset.Asset, error) {
	var a asset.Asset
	err := row.Scan(
		&a.ID, &a.Name, &a.Code, &a.Category, &a.SerialNumber,
		&a.PurchaseDate, &a.PurchaseCost, &a.Status,
		&a.AssignedTo, &a.AssignedAt, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt,
		&a.AssignedToName,
	)
	return a, err
}

// Create implements asset.AssetRepository.
func (r *assetRepository) Create(ctx context.Context, a asset.Asset) (asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assets (name, code, category, serial_number, purchase_date, purchase_cost, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.Name, a.Code, a.Category, a.SerialNumber,
		a.PurchaseDate, a.PurchaseCost, a.Status, a.Notes,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return asset.Asset{}, fmt.Errorf("failed to create asset: %w", err)
	}

	return a, nil
}

// GetByID implements asset.AssetRepository.
func (r *assetRepository) GetByID(ctx context.Context, id string) (asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assetColumns + `
		FROM assets a
		LEFT JOIN employees e ON e.id = a.assigned_to
		WHERE a.id = $1
	`

	a, err := scanAsset(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return asset.Asset{}, asset.ErrAssetNotFound
		}
		return asset.Asset{}, fmt.Errorf("failed to get asset: %w", err)
	}

	return a, nil
}

// Update implements asset.AssetRepository.
func (r *assetRepository) Update(ctx context.Context, a asset.Asset) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assets SET
			name = $1,
			category = $2,
			serial_number = $3,
			purchase_date = $4,
			purchase_cost = $5,
			status = $6,
			assigned_to = $7,
			assigned_at = $8,
			notes = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		a.Name, a.Category, a.SerialNumber,
		a.PurchaseDate, a.PurchaseCost, a.Status,
		a.AssignedTo, a.AssignedAt, a.Notes,
		a.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return asset.ErrAssetNotFound
		}
		return fmt.Errorf("failed to update asset: %w", err)
	}

	return nil
}

// Delete implements asset.AssetRepository.
func (r *assetRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return asset.ErrAssetNotFound
	}
	return nil
}

// ExistsByCode implements asset.AssetRepository.
func (r *assetRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM assets WHERE code = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check asset code: %w", err)
	}
	return exists, nil
}

// List implements asset.AssetRepository.
func (r *assetRepository) List(ctx context.Context, filter asset.AssetFilter) ([]asset.Asset, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Category != nil && *filter.Category != "" {
		baseWhere += fmt.Sprintf(" AND a.category = $%d", argIdx)
		args = append(args, *filter.Category)
		argIdx++
	}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.assigned_to = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (a.name ILIKE $%d OR a.code ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM assets a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM assets a
		LEFT JOIN employees e ON e.id = a.assigned_to
		WHERE %s
		ORDER BY a.name ASC
		LIMIT $%d OFFSET $%d
	`, assetColumns, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}

	return assets, total, nil
}

// ListByEmployee implements asset.AssetRepository.
func (r *assetRepository) ListByEmployee(ctx context.Context, employeeID string) ([]asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assetColumns + `
		FROM assets a
		LEFT JOIN employees e ON e.id = a.assigned_to
		WHERE a.assigned_to = $1
		ORDER BY a.assigned_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}

	return assets, nil
}

// Statistics implements asset.AssetRepository.
func (r *assetRepository) Statistics(ctx context.Context) (asset.Statistics, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			COUNT(*) FILTER (WHERE status = $4)
		FROM assets
	`

	var stats asset.Statistics
	err := q.QueryRow(ctx, query,
		asset.StatusAvailable, asset.StatusAssigned, asset.StatusPendingReturn, asset.StatusRetired,
	).Scan(&stats.Total, &stats.Available, &stats.Assigned, &stats.PendingReturn, &stats.Retired)
	if err != nil {
		return asset.Statistics{}, fmt.Errorf("failed to aggregate asset statistics: %w", err)
	}

	return stats, nil
}
