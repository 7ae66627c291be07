package employee

import (
	"context"
	"io"
)

// EmployeeService defines business logic for employee management.
type EmployeeService interface {
	// Create registers a new employee record (admin/hr).
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves a single employee by ID.
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List retrieves employees with filters and pagination.
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)

	// Update modifies an employee record (admin/hr).
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes an employee record (admin).
	Delete(ctx context.Context, id string) error

	// GetMyProfile returns the authenticated user's employee record.
	GetMyProfile(ctx context.Context) (EmployeeResponse, error)

	// UpdateMyProfile applies the self-service editable fields.
	UpdateMyProfile(ctx context.Context, req UpdateProfileRequest) (EmployeeResponse, error)

	// UploadAvatar stores a new avatar image for the authenticated employee.
	UploadAvatar(ctx context.Context, file io.Reader, filename string) (string, error)
}
