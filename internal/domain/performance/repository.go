package performance

import "context"

type GoalRepository interface {
	Create(ctx context.Context, g Goal) (Goal, error)
	GetByID(ctx context.Context, id string) (Goal, error)
	Update(ctx context.Context, g Goal) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter GoalFilter) ([]Goal, int64, error)
	ListByEmployee(ctx context.Context, employeeID string, filter GoalFilter) ([]Goal, int64, error)

	// ListEndingSoon returns in-progress goals whose end date falls
	// within the next days days, for dashboard reminders.
	ListEndingSoon(ctx context.Context, employeeID string, days int) ([]Goal, error)
}

type AppraisalRepository interface {
	Create(ctx context.Context, a Appraisal) (Appraisal, error)
	GetByID(ctx context.Context, id string) (Appraisal, error)
	ExistsForPeriod(ctx context.Context, employeeID, period string) (bool, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Appraisal, error)
}

type IndicatorRepository interface {
	Create(ctx context.Context, ind Indicator) (Indicator, error)
	GetByID(ctx context.Context, id string) (Indicator, error)
	List(ctx context.Context) ([]Indicator, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
