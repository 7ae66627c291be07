package employee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/worklane/hrm-backend-go/internal/domain/employee"
	"github.com/worklane/hrm-backend-go/internal/pkg/validator"
	"github.com/worklane/hrm-backend-go/internal/service/file"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	fileService  file.FileService
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, fileService file.FileService) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		fileService:  fileService,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	emp := employee.Employee{
		FullName:      req.FullName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		DepartmentID:  req.DepartmentID,
		DesignationID: req.DesignationID,
		HireDate:      hireDate,
		Status:        employee.StatusActive,
		BasicSalary:   decimal.Zero,
	}

	if req.Gender != nil {
		gender := employee.Gender(*req.Gender)
		emp.Gender = &gender
	}
	if req.DOB != nil && *req.DOB != "" {
		dob, _ := validator.IsValidDate(*req.DOB)
		emp.DOB = &dob
	}
	if req.BasicSalary != nil {
		emp.BasicSalary = *req.BasicSalary
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	}

	return employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Employees:  responses,
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.Gender != nil {
		gender := employee.Gender(*req.Gender)
		emp.Gender = &gender
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.DOB != nil && *req.DOB != "" {
		dob, _ := validator.IsValidDate(*req.DOB)
		emp.DOB = &dob
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.DesignationID != nil {
		emp.DesignationID = req.DesignationID
	}
	if req.Status != nil {
		emp.Status = employee.Status(strings.ToLower(*req.Status))
	}
	if req.LeaveDate != nil && *req.LeaveDate != "" {
		leaveDate, _ := validator.IsValidDate(*req.LeaveDate)
		emp.LeaveDate = &leaveDate
	}
	if req.BasicSalary != nil {
		emp.BasicSalary = *req.BasicSalary
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to get claims from context: %w", err)
	}
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID == id {
		return employee.ErrCannotDeleteSelf
	}

	return s.employeeRepo.Delete(ctx, id)
}

// GetMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context) (employee.EmployeeResponse, error) {
	emp, err := s.myEmployee(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// UpdateMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateMyProfile(ctx context.Context, req employee.UpdateProfileRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.myEmployee(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		emp.Address = req.Address
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

// UploadAvatar implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadAvatar(ctx context.Context, fileReader io.Reader, filename string) (string, error) {
	emp, err := s.myEmployee(ctx)
	if err != nil {
		return "", err
	}

	path, err := s.fileService.UploadAvatar(ctx, emp.ID, fileReader, filename)
	if err != nil {
		return "", err
	}

	url, err := s.fileService.GetFileURL(ctx, path, 0)
	if err != nil {
		return "", fmt.Errorf("failed to build avatar URL: %w", err)
	}

	if emp.AvatarURL != nil && *emp.AvatarURL != "" {
		// Old avatar is best-effort cleanup; the new one is already saved.
		_ = s.fileService.DeleteFile(ctx, *emp.AvatarURL)
	}

	if err := s.employeeRepo.UpdateAvatarURL(ctx, emp.ID, url); err != nil {
		return "", err
	}

	return url, nil
}

func (s *EmployeeServiceImpl) myEmployee(ctx context.Context) (employee.Employee, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return employee.Employee{}, fmt.Errorf("user ID not found in token")
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, employee.ErrProfileNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:              emp.ID,
		FullName:        emp.FullName,
		Email:           emp.Email,
		PhoneNumber:     emp.PhoneNumber,
		Address:         emp.Address,
		AvatarURL:       emp.AvatarURL,
		DepartmentID:    emp.DepartmentID,
		DepartmentName:  emp.DepartmentName,
		DesignationID:   emp.DesignationID,
		DesignationName: emp.DesignationName,
		HireDate:        emp.HireDate.Format("2006-01-02"),
		Status:          string(emp.Status),
		BasicSalary:     emp.BasicSalary.String(),
		CreatedAt:       emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       emp.UpdatedAt.Format(time.RFC3339),
	}
	if emp.Gender != nil {
		gender := string(*emp.Gender)
		resp.Gender = &gender
	}
	if emp.DOB != nil {
		dob := emp.DOB.Format("2006-01-02")
		resp.DOB = &dob
	}
	if emp.LeaveDate != nil {
		leaveDate := emp.LeaveDate.Format("2006-01-02")
		resp.LeaveDate = &leaveDate
	}
	return resp
}
