package performance

import "time"

// Goal statuses
const (
	GoalNotStarted = "not_started"
	GoalInProgress = "in_progress"
	GoalCompleted  = "completed"
)

// Goal is a measurable objective assigned to an employee.
type Goal struct {
	ID          string
	EmployeeID  string
	Title       string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	Target      int
	Achieved    int
	Status      string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields
	EmployeeName *string
}

// Progress returns completion as a percentage, capped at 100.
func (g *Goal) Progress() int {
	if g.Target <= 0 {
		return 0
	}
	pct := g.Achieved * 100 / g.Target
	if pct > 100 {
		return 100
	}
	return pct
}

// SyncStatus derives the goal status from achieved progress.
func (g *Goal) SyncStatus() {
	switch {
	case g.Target > 0 && g.Achieved >= g.Target:
		g.Status = GoalCompleted
	case g.Achieved > 0:
		g.Status = GoalInProgress
	default:
		g.Status = GoalNotStarted
	}
}

// Appraisal rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Appraisal is a periodic performance review of an employee.
type Appraisal struct {
	ID         string
	EmployeeID string
	ReviewerID string
	Period     string // YYYY-MM
	Rating     int
	Remarks    *string
	Ratings    []IndicatorRating
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join fields
	EmployeeName *string
	ReviewerName *string
}

// Indicator is a named competency that appraisals score against.
type Indicator struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
}

// IndicatorRating is one indicator's score within an appraisal.
type IndicatorRating struct {
	IndicatorID   string  `json:"indicator_id"`
	IndicatorName *string `json:"indicator_name,omitempty"`
	Rating        int     `json:"rating"`
}
