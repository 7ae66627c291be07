package dashboard

import (
	"context"
	"time"
)

// DashboardRepository exposes the aggregate count queries the
// dashboards are built from.
type DashboardRepository interface {
	CountActiveEmployees(ctx context.Context) (int64, error)
	CountAttendanceByStatus(ctx context.Context, date time.Time) (present, absent, onLeave int64, err error)
	CountPendingLeaves(ctx context.Context) (int64, error)
	CountOpenTickets(ctx context.Context) (int64, error)
	DepartmentHeadcounts(ctx context.Context) ([]DepartmentSize, error)
	RecentHires(ctx context.Context, limit int) ([]RecentHire, error)
}
