package master

import "time"

// Department is an organizational unit employees belong to.
type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Designation is a job title within a department.
type Designation struct {
	ID           string
	DepartmentID *string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
