package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/worklane/hrm-backend-go/internal/domain/attendance"
)

// AttendanceJobs wires the nightly attendance housekeeping into the
// scheduler. Both jobs tick hourly but only act in the first hour of
// the day in the shift timezone, so a restart never skips a night.
type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
	location      *time.Location
}

func NewAttendanceJobs(attendanceSvc attendance.AttendanceService, location *time.Location) *AttendanceJobs {
	if location == nil {
		location = time.UTC
	}
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		location:      location,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_attendances", 1*time.Hour, j.AutoCloseStaleAttendances)
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// AutoCloseStaleAttendances closes open records from previous days at
// the configured shift end.
func (j *AttendanceJobs) AutoCloseStaleAttendances(ctx context.Context) error {
	// Only run in the midnight hour (00:00-00:59 local)
	if time.Now().In(j.location).Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting auto-close stale attendances job")

	closed, err := j.attendanceSvc.CloseStaleSessions(ctx)
	if err != nil {
		return err
	}

	if closed == 0 {
		slog.Info("Cron: No stale attendances found")
		return nil
	}

	slog.Info("Cron: Auto-closed stale attendances", "count", closed)
	return nil
}

// MarkAbsentEmployees writes Absent records for yesterday's no-shows.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run in the midnight hour (00:00-00:59 local)
	if time.Now().In(j.location).Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job")

	marked, err := j.attendanceSvc.MarkAbsentees(ctx)
	if err != nil {
		return err
	}

	slog.Info("Cron: Marked absent employees", "count", marked)
	return nil
}
