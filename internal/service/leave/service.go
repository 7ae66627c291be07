package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklane/hrm-backend-go/internal/domain/employee"
	"github.com/worklane/hrm-backend-go/internal/domain/leave"
	"github.com/worklane/hrm-backend-go/internal/domain/user"
	"github.com/worklane/hrm-backend-go/internal/pkg/email"
	"github.com/worklane/hrm-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveTypeRepo    leave.LeaveTypeRepository
	leaveRequestRepo leave.LeaveRequestRepository
	employeeRepo     employee.EmployeeRepository
	emailService     email.EmailService
}

func NewLeaveService(
	leaveTypeRepo leave.LeaveTypeRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	emailService email.EmailService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveTypeRepo:    leaveTypeRepo,
		leaveRequestRepo: leaveRequestRepo,
		employeeRepo:     employeeRepo,
		emailService:     emailService,
	}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID, _, err := identityFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	totalDays := leave.WorkdaysBetween(start, end)
	if totalDays == 0 {
		return leave.LeaveRequestResponse{}, validator.ValidationErrors{{
			Field:   "start_date",
			Message: "requested range contains no workdays",
		}}
	}

	leaveType, err := s.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	used, err := s.leaveRequestRepo.UsedDays(ctx, employeeID, leaveType.ID, start.Year())
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get used leave days: %w", err)
	}
	if used+totalDays > leaveType.DaysPerYear {
		return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
	}

	overlapping, err := s.leaveRequestRepo.HasOverlapping(ctx, employeeID, start, end)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if overlapping {
		return leave.LeaveRequestResponse{}, leave.ErrOverlappingRequest
	}

	created, err := s.leaveRequestRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID:     employeeID,
		LeaveTypeID:    leaveType.ID,
		AppliedOn:      time.Now(),
		StartDate:      start,
		EndDate:        end,
		TotalLeaveDays: totalDays,
		Reason:         req.Reason,
		Status:         leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toLeaveResponse(created), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	employeeID, role, err := identityFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	req, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if !canModerate(role) && req.EmployeeID != employeeID {
		return leave.LeaveRequestResponse{}, leave.ErrNotRequestOwner
	}

	return toLeaveResponse(req), nil
}

// List implements leave.LeaveService. Regular employees only ever see
// their own requests, whatever filter they send.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	employeeID, role, err := identityFromContext(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	if !canModerate(role) {
		filter.EmployeeID = &employeeID
	}

	requests, total, err := s.leaveRequestRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toLeaveResponse(req))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	}

	return leave.ListLeaveResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Requests:   responses,
	}, nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, req, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, req, leave.StatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, req leave.DecideLeaveRequest, status string) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get claims from context: %w", err)
	}
	deciderID, ok := claims["user_id"].(string)
	if !ok || deciderID == "" {
		return leave.LeaveRequestResponse{}, fmt.Errorf("user ID not found in token")
	}

	request, err := s.leaveRequestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := time.Now()
	request.Status = status
	request.Remark = req.Remark
	request.DecidedBy = &deciderID
	request.DecidedAt = &now

	if err := s.leaveRequestRepo.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.notifyDecision(request)

	return toLeaveResponse(request), nil
}

// notifyDecision emails the employee about the outcome. Failures are
// logged, not surfaced; the decision already happened.
func (s *LeaveServiceImpl) notifyDecision(request leave.LeaveRequest) {
	go func() {
		emp, err := s.employeeRepo.GetByID(context.Background(), request.EmployeeID)
		if err != nil {
			slog.Error("Failed to load employee for leave decision email", "employee_id", request.EmployeeID, "error", err)
			return
		}

		leaveTypeName := request.LeaveTypeID
		if request.LeaveTypeName != nil {
			leaveTypeName = *request.LeaveTypeName
		}

		err = s.emailService.SendLeaveDecision(
			emp.Email,
			emp.FullName,
			leaveTypeName,
			request.StartDate.Format("2006-01-02"),
			request.EndDate.Format("2006-01-02"),
			request.Status,
			request.Remark,
		)
		if err != nil {
			slog.Error("Failed to send leave decision email", "email", emp.Email, "error", err)
		}
	}()
}

// Cancel implements leave.LeaveService.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	employeeID, _, err := identityFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.EmployeeID != employeeID {
		return leave.LeaveRequestResponse{}, leave.ErrNotRequestOwner
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrCannotCancelProcessed
	}

	request.Status = leave.StatusCancelled

	if err := s.leaveRequestRepo.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toLeaveResponse(request), nil
}

// ListTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) ListTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := s.leaveTypeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, leave.LeaveTypeResponse{
			ID:          t.ID,
			Name:        t.Name,
			DaysPerYear: t.DaysPerYear,
			IsPaid:      t.IsPaid,
		})
	}
	return responses, nil
}

// GetMyBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyBalance(ctx context.Context, year int) (leave.BalanceResponse, error) {
	employeeID, _, err := identityFromContext(ctx)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	if year == 0 {
		year = time.Now().Year()
	}

	types, err := s.leaveTypeRepo.List(ctx)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	balances := make([]leave.Balance, 0, len(types))
	for _, t := range types {
		used, err := s.leaveRequestRepo.UsedDays(ctx, employeeID, t.ID, year)
		if err != nil {
			return leave.BalanceResponse{}, fmt.Errorf("failed to get used days for %s: %w", t.Name, err)
		}
		balances = append(balances, leave.Balance{
			LeaveTypeID:   t.ID,
			LeaveTypeName: t.Name,
			Year:          year,
			Allocated:     t.DaysPerYear,
			Used:          used,
			Remaining:     t.DaysPerYear - used,
		})
	}

	return leave.BalanceResponse{Year: year, Balances: balances}, nil
}

func identityFromContext(ctx context.Context) (employeeID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to get claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee ID not found in token")
	}

	if r, ok := claims["role"].(string); ok {
		role = user.Role(r)
	}

	return employeeID, role, nil
}

func canModerate(role user.Role) bool {
	return role == user.RoleAdmin || role == user.RoleHR || role == user.RoleManager
}

func toLeaveResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:             req.ID,
		EmployeeID:     req.EmployeeID,
		EmployeeName:   req.EmployeeName,
		LeaveTypeID:    req.LeaveTypeID,
		LeaveTypeName:  req.LeaveTypeName,
		AppliedOn:      req.AppliedOn.Format("2006-01-02"),
		StartDate:      req.StartDate.Format("2006-01-02"),
		EndDate:        req.EndDate.Format("2006-01-02"),
		TotalLeaveDays: req.TotalLeaveDays,
		Reason:         req.Reason,
		Status:         req.Status,
		Remark:         req.Remark,
		DecidedBy:      req.DecidedBy,
		CreatedAt:      req.CreatedAt.Format(time.RFC3339),
	}
	if req.DecidedAt != nil {
		decidedAt := req.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}
