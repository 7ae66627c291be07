package dashboard

import "context"

// DashboardService assembles dashboard views. Implementations fan the
// underlying queries out concurrently.
type DashboardService interface {
	// GetMyDashboard returns the authenticated employee's dashboard.
	GetMyDashboard(ctx context.Context) (EmployeeDashboard, error)

	// GetAdminDashboard returns the organization-wide view (admin/hr).
	GetAdminDashboard(ctx context.Context) (AdminDashboard, error)
}
