package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/hrm-backend-go/internal/config"
	"github.com/worklane/hrm-backend-go/internal/domain/attendance"
	"github.com/worklane/hrm-backend-go/internal/domain/employee"
)

var testShift = config.ShiftConfig{
	Start:             "09:00:00",
	End:               "17:00:00",
	StandardWorkHours: 8 * time.Hour,
	Timezone:          "UTC",
}

// fakeAttendanceRepo is an in-memory AttendanceRepository keyed by
// (employee, date).
type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	marked  int64
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) CreateIfAbsent(_ context.Context, att attendance.Attendance) (attendance.Attendance, bool, error) {
	k := key(att.EmployeeID, att.Date)
	if _, exists := f.records[k]; exists {
		return attendance.Attendance{}, false, nil
	}
	att.ID = k
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	f.records[k] = att
	return att, true, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	for _, att := range f.records {
		if att.ID == id {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	att, ok := f.records[key(employeeID, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	f.records[key(att.EmployeeID, att.Date)] = att
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		out = append(out, att)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, _ attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.EmployeeID == employeeID {
			out = append(out, att)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) MonthlySummary(_ context.Context, employeeID string, year int, month time.Month) (attendance.MonthlySummary, error) {
	return attendance.MonthlySummary{EmployeeID: employeeID, Year: year, Month: int(month)}, nil
}

func (f *fakeAttendanceRepo) ListOpenBefore(_ context.Context, date time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.ClockOut == nil && att.Status == attendance.StatusPresent && att.Date.Before(date) {
			out = append(out, att)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) MarkAbsentees(_ context.Context, _ time.Time) (int64, error) {
	return f.marked, nil
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": employeeID,
		"role":        "employee",
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo *fakeAttendanceRepo, now time.Time) *AttendanceServiceImpl {
	svc := NewAttendanceService(repo, testShift, time.UTC).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCheckIn_LateArrival(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 9, 12, 30, 0, time.UTC))
	ctx := authedContext(t, "emp-1")

	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	assert.Equal(t, "09:12:30", resp.CheckInTime)
	assert.Equal(t, "00:12:30", resp.Late)
	assert.Equal(t, attendance.StatusPresent, resp.Attendance.Status)
	assert.Equal(t, "2026-03-02", resp.Attendance.Date)
	assert.Equal(t, attendance.ZeroClock, resp.Attendance.ClockOut)

	stored := repo.records[key("emp-1", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))]
	assert.Nil(t, stored.ClockOut)
}

func TestCheckIn_EarlyArrivalNotLate(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 8, 45, 0, 0, time.UTC))
	ctx := authedContext(t, "emp-1")

	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	assert.Equal(t, "00:00:00", resp.Late)
}

func TestCheckIn_Twice(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	ctx := authedContext(t, "emp-1")

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_StatusOverride(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC))
	ctx := authedContext(t, "emp-1")

	status := attendance.StatusLeave
	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{Status: &status})
	require.NoError(t, err)

	// The override is persisted; the clock-in time is recorded either way.
	assert.Equal(t, attendance.StatusLeave, resp.Attendance.Status)
	assert.Equal(t, "09:05:00", resp.CheckInTime)

	stored := repo.records[key("emp-1", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))]
	assert.Equal(t, attendance.StatusLeave, stored.Status)
}

func TestCheckIn_InvalidStatus(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	ctx := authedContext(t, "emp-1")

	status := "Vacation"
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{Status: &status})
	assert.Error(t, err)
	assert.Empty(t, repo.records)
}

func TestCheckIn_NoLinkedEmployeeProfile(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    "employee",
		"type":    "access",
	})
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{})
	assert.ErrorIs(t, err, employee.ErrProfileNotFound)
}

func TestCheckOut_WithOvertime(t *testing.T) {
	repo := newFakeAttendanceRepo()
	ctx := authedContext(t, "emp-1")

	in := newTestService(repo, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	_, err := in.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	// Worked 09:00-18:30 with an hour of rest: 8h30m net, 30m overtime.
	rec := repo.records[key("emp-1", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))]
	rec.TotalRest = "01:00:00"
	repo.records[key("emp-1", rec.Date)] = rec

	out := newTestService(repo, time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC))
	resp, err := out.CheckOut(ctx, attendance.CheckOutRequest{})
	require.NoError(t, err)

	assert.Equal(t, "18:30:00", resp.CheckOutTime)
	assert.Equal(t, "08:30:00", resp.TotalWork)
	assert.Equal(t, "00:30:00", resp.Overtime)
	assert.Equal(t, "00:00:00", resp.EarlyLeaving)
	assert.False(t, resp.LeftEarly)
}

func TestCheckOut_LeftEarly(t *testing.T) {
	repo := newFakeAttendanceRepo()
	ctx := authedContext(t, "emp-1")

	in := newTestService(repo, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	_, err := in.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	out := newTestService(repo, time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC))
	resp, err := out.CheckOut(ctx, attendance.CheckOutRequest{})
	require.NoError(t, err)

	assert.Equal(t, "01:00:00", resp.EarlyLeaving)
	assert.True(t, resp.LeftEarly)
	assert.Equal(t, "07:00:00", resp.TotalWork)
	assert.Equal(t, "00:00:00", resp.Overtime)
}

func TestCheckOut_OvernightShift(t *testing.T) {
	repo := newFakeAttendanceRepo()
	ctx := authedContext(t, "emp-1")

	in := newTestService(repo, time.Date(2026, 3, 2, 22, 0, 0, 0, time.UTC))
	_, err := in.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	// Check-out time of day is before the check-in, so the span wraps
	// across midnight. The fake keys by record date, so pin "today" to
	// the check-in day.
	out := newTestService(repo, time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC))
	resp, err := out.CheckOut(ctx, attendance.CheckOutRequest{})
	require.NoError(t, err)

	assert.Equal(t, "08:00:00", resp.TotalWork)
}

func TestCheckOut_NoRecordToday(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC))
	ctx := authedContext(t, "emp-1")

	_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNoCheckInRecord)
}

func TestCheckOut_RecordWithoutClockIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	ctx := authedContext(t, "emp-1")

	// An admin can create a record before any check-in; closing it must
	// demand a check-in first rather than report a missing record.
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	repo.records[key("emp-1", date)] = attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       date,
		Status:     attendance.StatusAbsent,
		ClockIn:    "",
	}

	svc := newTestService(repo, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC))
	_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_Twice(t *testing.T) {
	repo := newFakeAttendanceRepo()
	ctx := authedContext(t, "emp-1")

	in := newTestService(repo, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	_, err := in.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	out := newTestService(repo, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC))
	_, err = out.CheckOut(ctx, attendance.CheckOutRequest{})
	require.NoError(t, err)

	_, err = out.CheckOut(ctx, attendance.CheckOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCloseStaleSessions(t *testing.T) {
	repo := newFakeAttendanceRepo()
	ctx := authedContext(t, "emp-1")

	// Open record from yesterday.
	in := newTestService(repo, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	_, err := in.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	svc := newTestService(repo, time.Date(2026, 3, 2, 0, 10, 0, 0, time.UTC))
	closed, err := svc.CloseStaleSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	rec := repo.records[key("emp-1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))]
	require.NotNil(t, rec.ClockOut)
	assert.Equal(t, "17:00:00", *rec.ClockOut)
	assert.Equal(t, "08:00:00", rec.TotalWork)
}

func TestCloseStaleSessions_SkipsOvernightShift(t *testing.T) {
	repo := newFakeAttendanceRepo()
	ctx := authedContext(t, "emp-1")

	// Evening shift checked in at 22:00 yesterday; it is still running
	// when the midnight job fires.
	in := newTestService(repo, time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC))
	_, err := in.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	job := newTestService(repo, time.Date(2026, 3, 2, 0, 10, 0, 0, time.UTC))
	closed, err := job.CloseStaleSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, closed)

	rec := repo.records[key("emp-1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))]
	assert.Nil(t, rec.ClockOut)

	// The real check-out at 06:00 still lands, wrapping across midnight.
	out := newTestService(repo, time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC))
	resp, err := out.CheckOut(ctx, attendance.CheckOutRequest{})
	require.NoError(t, err)
	assert.Equal(t, "08:00:00", resp.TotalWork)
	assert.Equal(t, "00:00:00", resp.Overtime)
}

func TestCloseStaleSessions_SkipsToday(t *testing.T) {
	repo := newFakeAttendanceRepo()
	ctx := authedContext(t, "emp-1")

	in := newTestService(repo, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	_, err := in.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	svc := newTestService(repo, time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC))
	closed, err := svc.CloseStaleSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
}

func TestAdjustAttendance_Recomputes(t *testing.T) {
	repo := newFakeAttendanceRepo()
	ctx := authedContext(t, "emp-1")

	in := newTestService(repo, time.Date(2026, 3, 2, 9, 45, 0, 0, time.UTC))
	_, err := in.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	rec := repo.records[key("emp-1", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))]

	svc := newTestService(repo, time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC))
	clockIn := "09:00:00"
	clockOut := "17:30:00"
	resp, err := svc.AdjustAttendance(ctx, attendance.AdjustAttendanceRequest{
		ID:       rec.ID,
		ClockIn:  &clockIn,
		ClockOut: &clockOut,
	})
	require.NoError(t, err)

	assert.Equal(t, "00:00:00", resp.Late)
	assert.Equal(t, "08:30:00", resp.TotalWork)
	assert.Equal(t, "00:30:00", resp.Overtime)
	require.NotNil(t, resp.AdjustedBy)
	assert.Equal(t, "user-1", *resp.AdjustedBy)
	assert.NotNil(t, resp.AdjustedAt)
}

func TestMarkAbsentees(t *testing.T) {
	repo := newFakeAttendanceRepo()
	repo.marked = 3

	svc := newTestService(repo, time.Date(2026, 3, 2, 0, 10, 0, 0, time.UTC))
	marked, err := svc.MarkAbsentees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), marked)
}
