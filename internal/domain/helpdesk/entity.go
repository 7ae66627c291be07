package helpdesk

import "time"

// Ticket statuses
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// Ticket priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type Ticket struct {
	ID          string
	EmployeeID  string
	Subject     string
	Description string
	Category    string
	Priority    string
	Status      string
	AssignedTo  *string
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields
	EmployeeName   *string
	AssignedToName *string
	CommentCount   int
}

// Open reports whether the ticket still accepts comments and updates.
func (t *Ticket) Open() bool {
	return t.Status == StatusOpen || t.Status == StatusInProgress
}

type Comment struct {
	ID        string
	TicketID  string
	AuthorID  string
	Body      string
	CreatedAt time.Time

	// Join fields
	AuthorName *string
}

// Complaint is an anonymous-capable grievance, separate from tickets.
type Complaint struct {
	ID          string
	EmployeeID  *string // nil when filed anonymously
	Subject     string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields
	EmployeeName *string
}
