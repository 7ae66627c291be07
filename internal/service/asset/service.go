package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/worklane/hrm-backend-go/internal/domain/asset"
	"github.com/worklane/hrm-backend-go/internal/domain/employee"
	"github.com/worklane/hrm-backend-go/internal/pkg/validator"
)

type AssetServiceImpl struct {
	assetRepo    asset.AssetRepository
	employeeRepo employee.EmployeeRepository
}

func NewAssetService(assetRepo asset.AssetRepository, employeeRepo employee.EmployeeRepository) asset.AssetService {
	return &AssetServiceImpl{
		assetRepo:    assetRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements asset.AssetService.
func (s *AssetServiceImpl) Create(ctx context.Context, req asset.CreateAssetRequest) (asset.AssetResponse, error) {
	if err := req.Validate(); err != nil {
		return asset.AssetResponse{}, err
	}

	exists, err := s.assetRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return asset.AssetResponse{}, fmt.Errorf("failed to check asset code: %w", err)
	}
	if exists {
		return asset.AssetResponse{}, asset.ErrAssetCodeExists
	}

	a := asset.Asset{
		Name:         req.Name,
		Code:         req.Code,
		Category:     req.Category,
		SerialNumber: req.SerialNumber,
		Status:       asset.StatusAvailable,
		Notes:        req.Notes,
	}
	if req.PurchaseDate != nil {
		purchaseDate, _ := validator.IsValidDate(*req.PurchaseDate)
		a.PurchaseDate = &purchaseDate
	}
	if req.PurchaseCost != nil {
		cost, _ := decimal.NewFromString(*req.PurchaseCost)
		a.PurchaseCost = &cost
	}

	created, err := s.assetRepo.Create(ctx, a)
	if err != nil {
		return asset.AssetResponse{}, err
	}

	return toAssetResponse(created), nil
}

// Assign implements asset.AssetService.
func (s *AssetServiceImpl) Assign(ctx context.Context, req asset.AssignAssetRequest) (asset.AssetResponse, error) {
	if err := req.Validate(); err != nil {
		return asset.AssetResponse{}, err
	}

	a, err := s.assetRepo.GetByID(ctx, req.AssetID)
	if err != nil {
		return asset.AssetResponse{}, err
	}
	if !a.Assignable() {
		return asset.AssetResponse{}, asset.ErrAssetNotAvailable
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return asset.AssetResponse{}, err
	}

	now := time.Now()
	a.Status = asset.StatusAssigned
	a.AssignedTo = &req.EmployeeID
	a.AssignedAt = &now

	if err := s.assetRepo.Update(ctx, a); err != nil {
		return asset.AssetResponse{}, err
	}

	return toAssetResponse(a), nil
}

// RequestReturn implements asset.AssetService.
func (s *AssetServiceImpl) RequestReturn(ctx context.Context, assetID string) (asset.AssetResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return asset.AssetResponse{}, err
	}

	a, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return asset.AssetResponse{}, err
	}

	if a.Status != asset.StatusAssigned || a.AssignedTo == nil {
		return asset.AssetResponse{}, asset.ErrAssetNotAssigned
	}
	if *a.AssignedTo != employeeID {
		return asset.AssetResponse{}, asset.ErrNotAssetHolder
	}

	a.Status = asset.StatusPendingReturn

	if err := s.assetRepo.Update(ctx, a); err != nil {
		return asset.AssetResponse{}, err
	}

	return toAssetResponse(a), nil
}

// ConfirmReturn implements asset.AssetService.
func (s *AssetServiceImpl) ConfirmReturn(ctx context.Context, assetID string) (asset.AssetResponse, error) {
	a, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return asset.AssetResponse{}, err
	}

	if a.Status != asset.StatusPendingReturn {
		return asset.AssetResponse{}, asset.ErrReturnNotRequested
	}

	a.Status = asset.StatusAvailable
	a.AssignedTo = nil
	a.AssignedAt = nil
	a.AssignedToName = nil

	if err := s.assetRepo.Update(ctx, a); err != nil {
		return asset.AssetResponse{}, err
	}

	return toAssetResponse(a), nil
}

// Retire implements asset.AssetService. Assigned assets must come back
// before they can be retired.
func (s *AssetServiceImpl) Retire(ctx context.Context, assetID string) (asset.AssetResponse, error) {
	a, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return asset.AssetResponse{}, err
	}

	if a.Status == asset.StatusAssigned || a.Status == asset.StatusPendingReturn {
		return asset.AssetResponse{}, asset.ErrAssetNotAvailable
	}

	a.Status = asset.StatusRetired

	if err := s.assetRepo.Update(ctx, a); err != nil {
		return asset.AssetResponse{}, err
	}

	return toAssetResponse(a), nil
}

// Get implements asset.AssetService.
func (s *AssetServiceImpl) Get(ctx context.Context, id string) (asset.AssetResponse, error) {
	a, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return asset.AssetResponse{}, err
	}
	return toAssetResponse(a), nil
}

// List implements asset.AssetService.
func (s *AssetServiceImpl) List(ctx context.Context, filter asset.AssetFilter) (asset.ListAssetsResponse, error) {
	if err := filter.Validate(); err != nil {
		return asset.ListAssetsResponse{}, err
	}

	assets, total, err := s.assetRepo.List(ctx, filter)
	if err != nil {
		return asset.ListAssetsResponse{}, err
	}

	responses := make([]asset.AssetResponse, 0, len(assets))
	for _, a := range assets {
		responses = append(responses, toAssetResponse(a))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	}

	return asset.ListAssetsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Assets:     responses,
	}, nil
}

// GetMyAssets implements asset.AssetService.
func (s *AssetServiceImpl) GetMyAssets(ctx context.Context) ([]asset.AssetResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	assets, err := s.assetRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]asset.AssetResponse, 0, len(assets))
	for _, a := range assets {
		responses = append(responses, toAssetResponse(a))
	}
	return responses, nil
}

// GetStatistics implements asset.AssetService.
func (s *AssetServiceImpl) GetStatistics(ctx context.Context) (asset.Statistics, error) {
	return s.assetRepo.Statistics(ctx)
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

func toAssetResponse(a asset.Asset) asset.AssetResponse {
	resp := asset.AssetResponse{
		ID:             a.ID,
		Name:           a.Name,
		Code:           a.Code,
		Category:       a.Category,
		SerialNumber:   a.SerialNumber,
		Status:         a.Status,
		AssignedTo:     a.AssignedTo,
		AssignedToName: a.AssignedToName,
		AssignedAt:     a.AssignedAt,
		Notes:          a.Notes,
	}
	if a.PurchaseDate != nil {
		purchaseDate := a.PurchaseDate.Format("2006-01-02")
		resp.PurchaseDate = &purchaseDate
	}
	if a.PurchaseCost != nil {
		cost := a.PurchaseCost.String()
		resp.PurchaseCost = &cost
	}
	return resp
}
