package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklane/hrm-backend-go/internal/domain/performance"
)

type PerformanceServiceImpl struct {
	goalRepo      performance.GoalRepository
	appraisalRepo performance.AppraisalRepository
	indicatorRepo performance.IndicatorRepository
}

func NewPerformanceService(
	goalRepo performance.GoalRepository,
	appraisalRepo performance.AppraisalRepository,
	indicatorRepo performance.IndicatorRepository,
) performance.PerformanceService {
	return &PerformanceServiceImpl{
		goalRepo:      goalRepo,
		appraisalRepo: appraisalRepo,
		indicatorRepo: indicatorRepo,
	}
}

// CreateGoal implements performance.PerformanceService.
func (s *PerformanceServiceImpl) CreateGoal(ctx context.Context, req performance.CreateGoalRequest) (performance.GoalResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.GoalResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return performance.GoalResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	goal := performance.Goal{
		EmployeeID:  req.EmployeeID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		Target:      req.Target,
		Status:      performance.GoalNotStarted,
		CreatedBy:   userID,
	}

	created, err := s.goalRepo.Create(ctx, goal)
	if err != nil {
		return performance.GoalResponse{}, err
	}

	return toGoalResponse(created), nil
}

// UpdateGoalProgress implements performance.PerformanceService. The
// status follows the achieved count automatically.
func (s *PerformanceServiceImpl) UpdateGoalProgress(ctx context.Context, req performance.UpdateGoalProgressRequest) (performance.GoalResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.GoalResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return performance.GoalResponse{}, err
	}

	goal, err := s.goalRepo.GetByID(ctx, req.ID)
	if err != nil {
		return performance.GoalResponse{}, err
	}

	if goal.EmployeeID != employeeID {
		return performance.GoalResponse{}, performance.ErrNotGoalOwner
	}
	if goal.Status == performance.GoalCompleted {
		return performance.GoalResponse{}, performance.ErrGoalCompleted
	}

	goal.Achieved = req.Achieved
	goal.SyncStatus()

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return performance.GoalResponse{}, err
	}

	return toGoalResponse(goal), nil
}

// ListGoals implements performance.PerformanceService.
func (s *PerformanceServiceImpl) ListGoals(ctx context.Context, filter performance.GoalFilter) (performance.ListGoalsResponse, error) {
	if err := filter.Validate(); err != nil {
		return performance.ListGoalsResponse{}, err
	}

	goals, total, err := s.goalRepo.List(ctx, filter)
	if err != nil {
		return performance.ListGoalsResponse{}, err
	}

	return listGoalsResponse(goals, total, filter), nil
}

// GetMyGoals implements performance.PerformanceService.
func (s *PerformanceServiceImpl) GetMyGoals(ctx context.Context, filter performance.GoalFilter) (performance.ListGoalsResponse, error) {
	if err := filter.Validate(); err != nil {
		return performance.ListGoalsResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return performance.ListGoalsResponse{}, err
	}

	goals, total, err := s.goalRepo.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return performance.ListGoalsResponse{}, err
	}

	return listGoalsResponse(goals, total, filter), nil
}

// DeleteGoal implements performance.PerformanceService.
func (s *PerformanceServiceImpl) DeleteGoal(ctx context.Context, id string) error {
	if _, err := s.goalRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.goalRepo.Delete(ctx, id)
}

// CreateAppraisal implements performance.PerformanceService. The
// overall rating is the average of the indicator scores.
func (s *PerformanceServiceImpl) CreateAppraisal(ctx context.Context, req performance.CreateAppraisalRequest) (performance.AppraisalResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.AppraisalResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return performance.AppraisalResponse{}, err
	}
	if employeeID == req.EmployeeID {
		return performance.AppraisalResponse{}, performance.ErrSelfAppraisal
	}

	exists, err := s.appraisalRepo.ExistsForPeriod(ctx, req.EmployeeID, req.Period)
	if err != nil {
		return performance.AppraisalResponse{}, fmt.Errorf("failed to check existing appraisal: %w", err)
	}
	if exists {
		return performance.AppraisalResponse{}, performance.ErrAppraisalExists
	}

	for _, rating := range req.Ratings {
		if _, err := s.indicatorRepo.GetByID(ctx, rating.IndicatorID); err != nil {
			return performance.AppraisalResponse{}, err
		}
	}

	sum := 0
	for _, rating := range req.Ratings {
		sum += rating.Rating
	}

	appraisal := performance.Appraisal{
		EmployeeID: req.EmployeeID,
		ReviewerID: employeeID,
		Period:     req.Period,
		Rating:     sum / len(req.Ratings),
		Remarks:    req.Remarks,
		Ratings:    req.Ratings,
	}

	created, err := s.appraisalRepo.Create(ctx, appraisal)
	if err != nil {
		return performance.AppraisalResponse{}, err
	}

	return toAppraisalResponse(created), nil
}

// GetAppraisal implements performance.PerformanceService.
func (s *PerformanceServiceImpl) GetAppraisal(ctx context.Context, id string) (performance.AppraisalResponse, error) {
	appraisal, err := s.appraisalRepo.GetByID(ctx, id)
	if err != nil {
		return performance.AppraisalResponse{}, err
	}
	return toAppraisalResponse(appraisal), nil
}

// ListEmployeeAppraisals implements performance.PerformanceService.
func (s *PerformanceServiceImpl) ListEmployeeAppraisals(ctx context.Context, employeeID string) ([]performance.AppraisalResponse, error) {
	appraisals, err := s.appraisalRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]performance.AppraisalResponse, 0, len(appraisals))
	for _, a := range appraisals {
		responses = append(responses, toAppraisalResponse(a))
	}
	return responses, nil
}

// GetMyAppraisals implements performance.PerformanceService.
func (s *PerformanceServiceImpl) GetMyAppraisals(ctx context.Context) ([]performance.AppraisalResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.ListEmployeeAppraisals(ctx, employeeID)
}

// CreateIndicator implements performance.PerformanceService.
func (s *PerformanceServiceImpl) CreateIndicator(ctx context.Context, req performance.CreateIndicatorRequest) (performance.IndicatorResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.IndicatorResponse{}, err
	}

	taken, err := s.indicatorRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return performance.IndicatorResponse{}, fmt.Errorf("failed to check indicator name: %w", err)
	}
	if taken {
		return performance.IndicatorResponse{}, performance.ErrIndicatorNameTaken
	}

	ind, err := s.indicatorRepo.Create(ctx, performance.Indicator{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return performance.IndicatorResponse{}, err
	}

	return performance.IndicatorResponse{
		ID:          ind.ID,
		Name:        ind.Name,
		Description: ind.Description,
	}, nil
}

// ListIndicators implements performance.PerformanceService.
func (s *PerformanceServiceImpl) ListIndicators(ctx context.Context) ([]performance.IndicatorResponse, error) {
	indicators, err := s.indicatorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]performance.IndicatorResponse, 0, len(indicators))
	for _, ind := range indicators {
		responses = append(responses, performance.IndicatorResponse{
			ID:          ind.ID,
			Name:        ind.Name,
			Description: ind.Description,
		})
	}
	return responses, nil
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user ID not found in token")
	}
	return userID, nil
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

func toGoalResponse(g performance.Goal) performance.GoalResponse {
	return performance.GoalResponse{
		ID:           g.ID,
		EmployeeID:   g.EmployeeID,
		EmployeeName: g.EmployeeName,
		Title:        g.Title,
		Description:  g.Description,
		StartDate:    g.StartDate.Format("2006-01-02"),
		EndDate:      g.EndDate.Format("2006-01-02"),
		Target:       g.Target,
		Achieved:     g.Achieved,
		Progress:     g.Progress(),
		Status:       g.Status,
	}
}

func listGoalsResponse(goals []performance.Goal, total int64, filter performance.GoalFilter) performance.ListGoalsResponse {
	responses := make([]performance.GoalResponse, 0, len(goals))
	for _, g := range goals {
		responses = append(responses, toGoalResponse(g))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	}

	return performance.ListGoalsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Goals:      responses,
	}
}

func toAppraisalResponse(a performance.Appraisal) performance.AppraisalResponse {
	return performance.AppraisalResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		ReviewerID:   a.ReviewerID,
		ReviewerName: a.ReviewerName,
		Period:       a.Period,
		Rating:       a.Rating,
		Remarks:      a.Remarks,
		Ratings:      a.Ratings,
		CreatedAt:    a.CreatedAt,
	}
}
