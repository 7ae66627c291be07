package master

import (
	"context"

	"github.com/worklane/hrm-backend-go/internal/domain/master"
)

type MasterServiceImpl struct {
	departmentRepo  master.DepartmentRepository
	designationRepo master.DesignationRepository
}

func NewMasterService(departmentRepo master.DepartmentRepository, designationRepo master.DesignationRepository) master.MasterService {
	return &MasterServiceImpl{
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
	}
}

// CreateDepartment implements master.MasterService.
func (s *MasterServiceImpl) CreateDepartment(ctx context.Context, req master.CreateDepartmentRequest) (master.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return master.DepartmentResponse{}, err
	}

	dept, err := s.departmentRepo.Create(ctx, master.Department{Name: req.Name})
	if err != nil {
		return master.DepartmentResponse{}, err
	}

	return master.DepartmentResponse{ID: dept.ID, Name: dept.Name}, nil
}

// ListDepartments implements master.MasterService.
func (s *MasterServiceImpl) ListDepartments(ctx context.Context) ([]master.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]master.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, master.DepartmentResponse{ID: dept.ID, Name: dept.Name})
	}
	return responses, nil
}

// DeleteDepartment implements master.MasterService.
func (s *MasterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.departmentRepo.Delete(ctx, id)
}

// CreateDesignation implements master.MasterService.
func (s *MasterServiceImpl) CreateDesignation(ctx context.Context, req master.CreateDesignationRequest) (master.DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return master.DesignationResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return master.DesignationResponse{}, err
		}
	}

	desig, err := s.designationRepo.Create(ctx, master.Designation{
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return master.DesignationResponse{}, err
	}

	return master.DesignationResponse{
		ID:           desig.ID,
		DepartmentID: desig.DepartmentID,
		Name:         desig.Name,
	}, nil
}

// ListDesignations implements master.MasterService.
func (s *MasterServiceImpl) ListDesignations(ctx context.Context, departmentID *string) ([]master.DesignationResponse, error) {
	designations, err := s.designationRepo.List(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	responses := make([]master.DesignationResponse, 0, len(designations))
	for _, desig := range designations {
		responses = append(responses, master.DesignationResponse{
			ID:           desig.ID,
			DepartmentID: desig.DepartmentID,
			Name:         desig.Name,
		})
	}
	return responses, nil
}

// DeleteDesignation implements master.MasterService.
func (s *MasterServiceImpl) DeleteDesignation(ctx context.Context, id string) error {
	if _, err := s.designationRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.designationRepo.Delete(ctx, id)
}
