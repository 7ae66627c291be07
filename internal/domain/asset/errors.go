package asset

import "errors"

var (
	ErrAssetNotFound      = errors.New("asset not found")
	ErrAssetCodeExists    = errors.New("asset code already exists")
	ErrAssetNotAvailable  = errors.New("asset is not available for assignment")
	ErrAssetNotAssigned   = errors.New("asset is not assigned to anyone")
	ErrNotAssetHolder     = errors.New("asset is not assigned to you")
	ErrReturnNotRequested = errors.New("no return has been requested for this asset")
)
