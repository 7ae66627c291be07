package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/worklane/hrm-backend-go/internal/domain/announcement"
	"github.com/worklane/hrm-backend-go/internal/domain/attendance"
	"github.com/worklane/hrm-backend-go/internal/domain/dashboard"
	"github.com/worklane/hrm-backend-go/internal/domain/leave"
	"github.com/worklane/hrm-backend-go/internal/domain/performance"
)

// upcomingGoalWindowDays bounds the goal reminder lookahead.
const upcomingGoalWindowDays = 14

type DashboardServiceImpl struct {
	dashboardRepo    dashboard.DashboardRepository
	attendanceRepo   attendance.AttendanceRepository
	leaveTypeRepo    leave.LeaveTypeRepository
	leaveRequestRepo leave.LeaveRequestRepository
	announcementRepo announcement.AnnouncementRepository
	goalRepo         performance.GoalRepository
	location         *time.Location
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveTypeRepo leave.LeaveTypeRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	announcementRepo announcement.AnnouncementRepository,
	goalRepo performance.GoalRepository,
	location *time.Location,
) dashboard.DashboardService {
	if location == nil {
		location = time.UTC
	}
	return &DashboardServiceImpl{
		dashboardRepo:    dashboardRepo,
		attendanceRepo:   attendanceRepo,
		leaveTypeRepo:    leaveTypeRepo,
		leaveRequestRepo: leaveRequestRepo,
		announcementRepo: announcementRepo,
		goalRepo:         goalRepo,
		location:         location,
	}
}

// GetMyDashboard implements dashboard.DashboardService. The widgets are
// independent, so their queries run concurrently.
func (s *DashboardServiceImpl) GetMyDashboard(ctx context.Context) (dashboard.EmployeeDashboard, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return dashboard.EmployeeDashboard{}, err
	}

	now := time.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)

	var result dashboard.EmployeeDashboard

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		att, err := s.attendanceRepo.GetByEmployeeAndDate(gCtx, employeeID, today)
		if err != nil {
			if errors.Is(err, attendance.ErrAttendanceNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}
		clockOut := attendance.ZeroClock
		if att.ClockOut != nil {
			clockOut = *att.ClockOut
		}
		result.TodayAttendance = &dashboard.TodayAttendance{
			Status:     att.Status,
			ClockIn:    att.ClockIn,
			ClockOut:   clockOut,
			Late:       att.Late,
			CheckedOut: att.CheckedOut(),
			TotalWork:  att.TotalWork,
			Notes:      att.Notes,
		}
		return nil
	})

	g.Go(func() error {
		summary, err := s.attendanceRepo.MonthlySummary(gCtx, employeeID, now.Year(), now.Month())
		if err != nil {
			return fmt.Errorf("failed to get month summary: %w", err)
		}
		result.MonthSummary = &dashboard.AttendanceMonth{
			Month:         now.Format("2006-01"),
			DaysPresent:   summary.DaysPresent,
			DaysAbsent:    summary.DaysAbsent,
			DaysOnLeave:   summary.DaysOnLeave,
			TotalLate:     attendance.FormatClock(summary.TotalLate),
			TotalOvertime: attendance.FormatClock(summary.TotalOvertime),
			TotalWork:     attendance.FormatClock(summary.TotalWork),
		}
		return nil
	})

	g.Go(func() error {
		types, err := s.leaveTypeRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list leave types: %w", err)
		}
		balances := make([]dashboard.LeaveBalance, 0, len(types))
		for _, t := range types {
			used, err := s.leaveRequestRepo.UsedDays(gCtx, employeeID, t.ID, now.Year())
			if err != nil {
				return fmt.Errorf("failed to get used days: %w", err)
			}
			balances = append(balances, dashboard.LeaveBalance{
				LeaveTypeID:   t.ID,
				LeaveTypeName: t.Name,
				Entitled:      t.DaysPerYear,
				Used:          used,
				Remaining:     t.DaysPerYear - used,
			})
		}
		result.LeaveBalances = balances
		return nil
	})

	g.Go(func() error {
		unread, err := s.announcementRepo.CountUnread(gCtx, employeeID, now)
		if err != nil {
			return fmt.Errorf("failed to count unread announcements: %w", err)
		}
		result.UnreadAnnouncements = unread
		return nil
	})

	g.Go(func() error {
		goals, err := s.goalRepo.ListEndingSoon(gCtx, employeeID, upcomingGoalWindowDays)
		if err != nil {
			return fmt.Errorf("failed to list upcoming goals: %w", err)
		}
		upcoming := make([]dashboard.UpcomingGoal, 0, len(goals))
		for _, goal := range goals {
			upcoming = append(upcoming, dashboard.UpcomingGoal{
				ID:       goal.ID,
				Title:    goal.Title,
				EndDate:  goal.EndDate,
				Progress: goal.Progress(),
			})
		}
		result.UpcomingGoals = upcoming
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.EmployeeDashboard{}, err
	}

	return result, nil
}

// GetAdminDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetAdminDashboard(ctx context.Context) (dashboard.AdminDashboard, error) {
	now := time.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)

	var result dashboard.AdminDashboard

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.dashboardRepo.CountActiveEmployees(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		result.TotalEmployees = total
		return nil
	})

	g.Go(func() error {
		present, absent, onLeave, err := s.dashboardRepo.CountAttendanceByStatus(gCtx, today)
		if err != nil {
			return fmt.Errorf("failed to count today's attendance: %w", err)
		}
		result.PresentToday = present
		result.AbsentToday = absent
		result.OnLeaveToday = onLeave
		return nil
	})

	g.Go(func() error {
		pending, err := s.dashboardRepo.CountPendingLeaves(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count pending leaves: %w", err)
		}
		result.PendingLeaves = pending
		return nil
	})

	g.Go(func() error {
		open, err := s.dashboardRepo.CountOpenTickets(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count open tickets: %w", err)
		}
		result.OpenTickets = open
		return nil
	})

	g.Go(func() error {
		counts, err := s.dashboardRepo.DepartmentHeadcounts(gCtx)
		if err != nil {
			return fmt.Errorf("failed to get department headcounts: %w", err)
		}
		result.DepartmentCounts = counts
		return nil
	})

	g.Go(func() error {
		hires, err := s.dashboardRepo.RecentHires(gCtx, 5)
		if err != nil {
			return fmt.Errorf("failed to get recent hires: %w", err)
		}
		result.RecentHires = hires
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.AdminDashboard{}, err
	}

	return result, nil
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
