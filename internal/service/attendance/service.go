package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklane/hrm-backend-go/internal/config"
	"github.com/worklane/hrm-backend-go/internal/domain/attendance"
	"github.com/worklane/hrm-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	shift          config.ShiftConfig
	location       *time.Location

	// now is swapped out in tests to pin the clock.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	shift config.ShiftConfig,
	location *time.Location,
) attendance.AttendanceService {
	if location == nil {
		location = time.UTC
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		shift:          shift,
		location:       location,
		now:            time.Now,
	}
}

func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := s.now().In(s.location)
	clockIn := attendance.TimeOfDay(now)

	shiftStart, err := attendance.ParseClock(s.shift.Start)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to parse shift start: %w", err)
	}

	late := attendance.LateBy(clockIn, shiftStart)

	status := attendance.StatusPresent
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	att := attendance.Attendance{
		EmployeeID:       employeeID,
		Date:             dateOnly(now),
		Status:           status,
		ClockIn:          attendance.FormatClock(clockIn),
		ClockOut:         nil,
		Late:             attendance.FormatClock(late),
		EarlyLeaving:     attendance.ZeroClock,
		Overtime:         attendance.ZeroClock,
		TotalRest:        attendance.ZeroClock,
		TotalWork:        attendance.ZeroClock,
		ClockInIP:        req.IP,
		ClockInLocation:  req.Location,
		ClockInLatitude:  req.Latitude,
		ClockInLongitude: req.Longitude,
		Notes:            req.Notes,
	}

	created, inserted, err := s.attendanceRepo.CreateIfAbsent(ctx, att)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}
	if !inserted {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	return attendance.CheckInResponse{
		Attendance:  toAttendanceResponse(created),
		CheckInTime: created.ClockIn,
		Late:        created.Late,
	}, nil
}

func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now := s.now().In(s.location)

	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, dateOnly(now))
	if err != nil {
		if err == attendance.ErrAttendanceNotFound {
			return attendance.CheckOutResponse{}, attendance.ErrNoCheckInRecord
		}
		return attendance.CheckOutResponse{}, err
	}

	if att.CheckedOut() {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if att.ClockIn == "" || att.ClockIn == attendance.ZeroClock {
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}

	clockOut := attendance.TimeOfDay(now)

	closed, err := s.close(ctx, att, clockOut, req.Notes)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	return attendance.CheckOutResponse{
		Attendance:   toAttendanceResponse(closed),
		CheckOutTime: derefClock(closed.ClockOut),
		TotalWork:    closed.TotalWork,
		EarlyLeaving: closed.EarlyLeaving,
		Overtime:     closed.Overtime,
		LeftEarly:    closed.EarlyLeaving != attendance.ZeroClock,
	}, nil
}

// close fills the duration fields of an open record for the given
// clock-out time of day and persists it.
func (s *AttendanceServiceImpl) close(ctx context.Context, att attendance.Attendance, clockOut time.Duration, notes *string) (attendance.Attendance, error) {
	clockIn, err := attendance.ParseClock(att.ClockIn)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to parse clock-in: %w", err)
	}
	shiftEnd, err := attendance.ParseClock(s.shift.End)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to parse shift end: %w", err)
	}

	rest, err := attendance.ParseClock(att.TotalRest)
	if err != nil {
		rest = 0
	}

	raw := attendance.WorkedBetween(clockIn, clockOut)
	net := attendance.NetWork(raw, rest)

	clockOutStr := attendance.FormatClock(clockOut)
	att.ClockOut = &clockOutStr
	att.TotalWork = attendance.FormatClock(net)
	att.EarlyLeaving = attendance.FormatClock(attendance.EarlyLeavingBy(clockOut, shiftEnd))
	att.Overtime = attendance.FormatClock(attendance.OvertimeOver(net, s.shift.StandardWorkHours))
	if notes != nil {
		att.Notes = notes
	}

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.Attendance{}, err
	}

	return att, nil
}

func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return listResponse(records, total, filter.Page, filter.Limit), nil
}

func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return listResponse(records, total, filter.Page, filter.Limit), nil
}

func (s *AttendanceServiceImpl) GetSummary(ctx context.Context, month string) (attendance.SummaryResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("invalid month %q: %w", month, err)
	}

	summary, err := s.attendanceRepo.MonthlySummary(ctx, employeeID, parsed.Year(), parsed.Month())
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	return attendance.SummaryResponse{
		EmployeeID:    employeeID,
		Month:         month,
		DaysPresent:   summary.DaysPresent,
		DaysAbsent:    summary.DaysAbsent,
		DaysOnLeave:   summary.DaysOnLeave,
		TotalLate:     attendance.FormatClock(summary.TotalLate),
		TotalOvertime: attendance.FormatClock(summary.TotalOvertime),
		TotalWork:     attendance.FormatClock(summary.TotalWork),
	}, nil
}

func (s *AttendanceServiceImpl) AdjustAttendance(ctx context.Context, req attendance.AdjustAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get claims from context: %w", err)
	}
	adjusterID, ok := claims["user_id"].(string)
	if !ok || adjusterID == "" {
		return attendance.AttendanceResponse{}, fmt.Errorf("user ID not found in token")
	}

	att, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.ClockIn != nil {
		att.ClockIn = *req.ClockIn
	}
	if req.ClockOut != nil {
		if *req.ClockOut == "" {
			att.ClockOut = nil
		} else {
			att.ClockOut = req.ClockOut
		}
	}
	if req.TotalRest != nil {
		att.TotalRest = *req.TotalRest
	}
	if req.Status != nil {
		att.Status = *req.Status
	}
	if req.HalfDay != nil {
		att.HalfDay = *req.HalfDay
	}
	if req.Notes != nil {
		att.Notes = req.Notes
	}

	if err := s.recompute(&att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now().In(s.location)
	att.AdjustedBy = &adjusterID
	att.AdjustedAt = &now

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.attendanceRepo.GetByID(ctx, att.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(updated), nil
}

// recompute rederives every duration field from the (possibly adjusted)
// clock times. A record without a clock-out keeps zero durations apart
// from lateness.
func (s *AttendanceServiceImpl) recompute(att *attendance.Attendance) error {
	shiftStart, err := attendance.ParseClock(s.shift.Start)
	if err != nil {
		return fmt.Errorf("failed to parse shift start: %w", err)
	}
	shiftEnd, err := attendance.ParseClock(s.shift.End)
	if err != nil {
		return fmt.Errorf("failed to parse shift end: %w", err)
	}

	if att.Status != attendance.StatusPresent || att.ClockIn == "" {
		att.Late = attendance.ZeroClock
		att.EarlyLeaving = attendance.ZeroClock
		att.Overtime = attendance.ZeroClock
		att.TotalWork = attendance.ZeroClock
		return nil
	}

	clockIn, err := attendance.ParseClock(att.ClockIn)
	if err != nil {
		return err
	}
	att.Late = attendance.FormatClock(attendance.LateBy(clockIn, shiftStart))

	if att.ClockOut == nil {
		att.EarlyLeaving = attendance.ZeroClock
		att.Overtime = attendance.ZeroClock
		att.TotalWork = attendance.ZeroClock
		return nil
	}

	clockOut, err := attendance.ParseClock(*att.ClockOut)
	if err != nil {
		return err
	}

	rest, err := attendance.ParseClock(att.TotalRest)
	if err != nil {
		rest = 0
	}

	raw := attendance.WorkedBetween(clockIn, clockOut)
	net := attendance.NetWork(raw, rest)

	att.TotalWork = attendance.FormatClock(net)
	att.EarlyLeaving = attendance.FormatClock(attendance.EarlyLeavingBy(clockOut, shiftEnd))
	att.Overtime = attendance.FormatClock(attendance.OvertimeOver(net, s.shift.StandardWorkHours))
	return nil
}

func (s *AttendanceServiceImpl) CloseStaleSessions(ctx context.Context) (int, error) {
	now := s.now().In(s.location)

	open, err := s.attendanceRepo.ListOpenBefore(ctx, dateOnly(now))
	if err != nil {
		return 0, err
	}

	shiftEnd, err := attendance.ParseClock(s.shift.End)
	if err != nil {
		return 0, fmt.Errorf("failed to parse shift end: %w", err)
	}

	closed := 0
	for _, att := range open {
		// A clock-in after shift end belongs to an overnight shift that is
		// still running; closing it at shift end would wrap the span across
		// midnight and block the real check-out.
		clockIn, err := attendance.ParseClock(att.ClockIn)
		if err != nil || clockIn > shiftEnd {
			continue
		}
		if _, err := s.close(ctx, att, shiftEnd, nil); err != nil {
			return closed, fmt.Errorf("failed to close attendance %s: %w", att.ID, err)
		}
		closed++
	}

	return closed, nil
}

func (s *AttendanceServiceImpl) MarkAbsentees(ctx context.Context) (int64, error) {
	now := s.now().In(s.location)
	yesterday := dateOnly(now).AddDate(0, 0, -1)

	return s.attendanceRepo.MarkAbsentees(ctx, yesterday)
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get claims from context: %w", err)
	}

	// A valid token without an employee claim belongs to a user with no
	// linked employee profile.
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", employee.ErrProfileNotFound
	}

	return employeeID, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func derefClock(v *string) string {
	if v == nil {
		return attendance.ZeroClock
	}
	return *v
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:               att.ID,
		EmployeeID:       att.EmployeeID,
		EmployeeName:     att.EmployeeName,
		Date:             att.Date.Format("2006-01-02"),
		Status:           att.Status,
		ClockIn:          att.ClockIn,
		ClockOut:         derefClock(att.ClockOut),
		Late:             att.Late,
		EarlyLeaving:     att.EarlyLeaving,
		Overtime:         att.Overtime,
		TotalRest:        att.TotalRest,
		TotalWork:        att.TotalWork,
		ClockInIP:        att.ClockInIP,
		ClockInLocation:  att.ClockInLocation,
		ClockInLatitude:  att.ClockInLatitude,
		ClockInLongitude: att.ClockInLongitude,
		Notes:            att.Notes,
		HalfDay:          att.HalfDay,
		AdjustedBy:       att.AdjustedBy,
		CreatedAt:        att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        att.UpdatedAt.Format(time.RFC3339),
	}
	if att.AdjustedAt != nil {
		adjustedAt := att.AdjustedAt.Format(time.RFC3339)
		resp.AdjustedAt = &adjustedAt
	}
	return resp
}

func listResponse(records []attendance.Attendance, total int64, page, limit int) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toAttendanceResponse(att))
	}

	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}
}
