package dashboard

import "time"

// EmployeeDashboard is the aggregate view shown after login.
type EmployeeDashboard struct {
	TodayAttendance     *TodayAttendance  `json:"today_attendance"`
	LeaveBalances       []LeaveBalance    `json:"leave_balances"`
	UnreadAnnouncements int64             `json:"unread_announcements"`
	UpcomingGoals       []UpcomingGoal    `json:"upcoming_goals"`
	MonthSummary        *AttendanceMonth  `json:"month_summary,omitempty"`
}

type TodayAttendance struct {
	Status     string  `json:"status"`
	ClockIn    string  `json:"clock_in"`
	ClockOut   string  `json:"clock_out"`
	Late       string  `json:"late"`
	CheckedOut bool    `json:"checked_out"`
	TotalWork  string  `json:"total_work"`
	Notes      *string `json:"notes,omitempty"`
}

type LeaveBalance struct {
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name"`
	Entitled      int    `json:"entitled"`
	Used          int    `json:"used"`
	Remaining     int    `json:"remaining"`
}

type UpcomingGoal struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	EndDate  time.Time `json:"end_date"`
	Progress int       `json:"progress"`
}

type AttendanceMonth struct {
	Month         string `json:"month"`
	DaysPresent   int    `json:"days_present"`
	DaysAbsent    int    `json:"days_absent"`
	DaysOnLeave   int    `json:"days_on_leave"`
	TotalLate     string `json:"total_late"`
	TotalOvertime string `json:"total_overtime"`
	TotalWork     string `json:"total_work"`
}

// AdminDashboard is the organization-wide view for admin/hr users.
type AdminDashboard struct {
	TotalEmployees    int64            `json:"total_employees"`
	PresentToday      int64            `json:"present_today"`
	AbsentToday       int64            `json:"absent_today"`
	OnLeaveToday      int64            `json:"on_leave_today"`
	PendingLeaves     int64            `json:"pending_leaves"`
	OpenTickets       int64            `json:"open_tickets"`
	DepartmentCounts  []DepartmentSize `json:"department_counts"`
	RecentHires       []RecentHire     `json:"recent_hires"`
}

type DepartmentSize struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	Headcount      int64  `json:"headcount"`
}

type RecentHire struct {
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	HireDate   time.Time `json:"hire_date"`
	Department *string   `json:"department,omitempty"`
}
