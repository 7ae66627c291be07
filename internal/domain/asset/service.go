package asset

import "context"

// AssetService defines business logic for company assets.
type AssetService interface {
	// Create registers a new asset (admin/hr).
	Create(ctx context.Context, req CreateAssetRequest) (AssetResponse, error)

	// Assign hands an available asset to an employee (admin/hr).
	Assign(ctx context.Context, req AssignAssetRequest) (AssetResponse, error)

	// RequestReturn is called by the holder to start the return flow,
	// moving the asset to pending_return.
	RequestReturn(ctx context.Context, assetID string) (AssetResponse, error)

	// ConfirmReturn completes the return flow (admin/hr), making the
	// asset available again.
	ConfirmReturn(ctx context.Context, assetID string) (AssetResponse, error)

	// Retire takes an asset permanently out of circulation (admin/hr).
	Retire(ctx context.Context, assetID string) (AssetResponse, error)

	Get(ctx context.Context, id string) (AssetResponse, error)
	List(ctx context.Context, filter AssetFilter) (ListAssetsResponse, error)
	GetMyAssets(ctx context.Context) ([]AssetResponse, error)
	GetStatistics(ctx context.Context) (Statistics, error)
}
