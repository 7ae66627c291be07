package master

import "context"

// MasterService manages the organizational reference data.
type MasterService interface {
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreateDesignation(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error)
	ListDesignations(ctx context.Context, departmentID *string) ([]DesignationResponse, error)
	DeleteDesignation(ctx context.Context, id string) error
}
