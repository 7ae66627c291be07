package asset

import "context"

type AssetRepository interface {
	Create(ctx context.Context, a Asset) (Asset, error)
	GetByID(ctx context.Context, id string) (Asset, error)
	Update(ctx context.Context, a Asset) error
	Delete(ctx context.Context, id string) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, filter AssetFilter) ([]Asset, int64, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Asset, error)
	Statistics(ctx context.Context) (Statistics, error)
}
