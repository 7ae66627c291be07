package performance

import "context"

// PerformanceService defines business logic for goals, appraisals
// and indicators.
type PerformanceService interface {
	// Goals
	CreateGoal(ctx context.Context, req CreateGoalRequest) (GoalResponse, error)
	UpdateGoalProgress(ctx context.Context, req UpdateGoalProgressRequest) (GoalResponse, error)
	ListGoals(ctx context.Context, filter GoalFilter) (ListGoalsResponse, error)
	GetMyGoals(ctx context.Context, filter GoalFilter) (ListGoalsResponse, error)
	DeleteGoal(ctx context.Context, id string) error

	// Appraisals
	CreateAppraisal(ctx context.Context, req CreateAppraisalRequest) (AppraisalResponse, error)
	GetAppraisal(ctx context.Context, id string) (AppraisalResponse, error)
	ListEmployeeAppraisals(ctx context.Context, employeeID string) ([]AppraisalResponse, error)
	GetMyAppraisals(ctx context.Context) ([]AppraisalResponse, error)

	// Indicators
	CreateIndicator(ctx context.Context, req CreateIndicatorRequest) (IndicatorResponse, error)
	ListIndicators(ctx context.Context) ([]IndicatorResponse, error)
}
