package master

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Delete(ctx context.Context, id string) error
}

type DesignationRepository interface {
	Create(ctx context.Context, desig Designation) (Designation, error)
	GetByID(ctx context.Context, id string) (Designation, error)
	List(ctx context.Context, departmentID *string) ([]Designation, error)
	Delete(ctx context.Context, id string) error
}
