package asset

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/worklane/hrm-backend-go/internal/pkg/validator"
)

type CreateAssetRequest struct {
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	Category     string  `json:"category"`
	SerialNumber *string `json:"serial_number,omitempty"`
	PurchaseDate *string `json:"purchase_date,omitempty"` // YYYY-MM-DD
	PurchaseCost *string `json:"purchase_cost,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *CreateAssetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if len(r.Code) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must not exceed 50 characters",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	if r.PurchaseDate != nil {
		if _, valid := validator.IsValidDate(*r.PurchaseDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "purchase_date",
				Message: "purchase_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.PurchaseCost != nil {
		if cost, err := decimal.NewFromString(*r.PurchaseCost); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "purchase_cost",
				Message: "purchase_cost must be a valid number",
			})
		} else if cost.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "purchase_cost",
				Message: "purchase_cost must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignAssetRequest struct {
	AssetID    string `json:"-"`
	EmployeeID string `json:"employee_id"`
}

func (r *AssignAssetRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.AssetID) {
		errs = append(errs, validator.ValidationError{
			Field:   "asset_id",
			Message: "asset_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssetResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Code           string     `json:"code"`
	Category       string     `json:"category"`
	SerialNumber   *string    `json:"serial_number,omitempty"`
	PurchaseDate   *string    `json:"purchase_date,omitempty"`
	PurchaseCost   *string    `json:"purchase_cost,omitempty"`
	Status         string     `json:"status"`
	AssignedTo     *string    `json:"assigned_to,omitempty"`
	AssignedToName *string    `json:"assigned_to_name,omitempty"`
	AssignedAt     *time.Time `json:"assigned_at,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

type AssetFilter struct {
	Status     *string `json:"status,omitempty"`
	Category   *string `json:"category,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Search     *string `json:"search,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *AssetFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		validStatuses := []string{StatusAvailable, StatusAssigned, StatusPendingReturn, StatusRetired}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: available, assigned, pending_return, retired",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAssetsResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Assets     []AssetResponse `json:"assets"`
}
