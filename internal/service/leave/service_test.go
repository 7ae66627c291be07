package leave

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/hrm-backend-go/internal/domain/employee"
	"github.com/worklane/hrm-backend-go/internal/domain/leave"
)

type fakeLeaveTypeRepo struct {
	types map[string]leave.LeaveType
}

func (f *fakeLeaveTypeRepo) GetByID(_ context.Context, id string) (leave.LeaveType, error) {
	t, ok := f.types[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return t, nil
}

func (f *fakeLeaveTypeRepo) List(_ context.Context) ([]leave.LeaveType, error) {
	var out []leave.LeaveType
	for _, t := range f.types {
		out = append(out, t)
	}
	return out, nil
}

type fakeLeaveRequestRepo struct {
	requests map[string]leave.LeaveRequest
	used     map[string]int // employeeID|leaveTypeID|year
	seq      int
}

func newFakeLeaveRequestRepo() *fakeLeaveRequestRepo {
	return &fakeLeaveRequestRepo{
		requests: make(map[string]leave.LeaveRequest),
		used:     make(map[string]int),
	}
}

func usedKey(employeeID, leaveTypeID string, year int) string {
	return fmt.Sprintf("%s|%s|%d", employeeID, leaveTypeID, year)
}

func (f *fakeLeaveRequestRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.seq++
	req.ID = fmt.Sprintf("req-%d", f.seq)
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRequestRepo) Update(_ context.Context, req leave.LeaveRequest) error {
	f.requests[req.ID] = req
	return nil
}

func (f *fakeLeaveRequestRepo) List(_ context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if filter.EmployeeID != nil && req.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeaveRequestRepo) HasOverlapping(_ context.Context, employeeID string, start, end time.Time) (bool, error) {
	for _, req := range f.requests {
		if req.EmployeeID != employeeID {
			continue
		}
		if req.Status != leave.StatusPending && req.Status != leave.StatusApproved {
			continue
		}
		if req.Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRequestRepo) UsedDays(_ context.Context, employeeID, leaveTypeID string, year int) (int, error) {
	return f.used[usedKey(employeeID, leaveTypeID, year)], nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) UpdateAvatarURL(_ context.Context, _, _ string) error { return nil }

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error { return nil }

// fakeEmailService records sent decision emails; safe for the async
// notify goroutine.
type fakeEmailService struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeEmailService) SendWelcome(_, _, _ string) error { return nil }

func (f *fakeEmailService) SendLeaveDecision(to, _, _, _, _, _ string, _ *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return nil
}

func leaveContext(t *testing.T, employeeID, role string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": employeeID,
		"role":        role,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newLeaveTestService() (leave.LeaveService, *fakeLeaveRequestRepo, *fakeEmailService) {
	typeRepo := &fakeLeaveTypeRepo{types: map[string]leave.LeaveType{
		"annual": {ID: "annual", Name: "Annual Leave", DaysPerYear: 12, IsPaid: true},
		"sick":   {ID: "sick", Name: "Sick Leave", DaysPerYear: 10, IsPaid: true},
	}}
	requestRepo := newFakeLeaveRequestRepo()
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Jordan Blake", Email: "jordan@example.com"},
	}}
	emails := &fakeEmailService{}
	return NewLeaveService(typeRepo, requestRepo, empRepo, emails), requestRepo, emails
}

func TestCreateLeave_CountsWorkdaysOnly(t *testing.T) {
	svc, repo, _ := newLeaveTestService()
	ctx := leaveContext(t, "emp-1", "employee")

	// Mon 2026-03-02 through Mon 2026-03-09: six workdays, one weekend.
	resp, err := svc.Create(ctx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-09",
		Reason:      "family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, 6, resp.TotalLeaveDays)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Len(t, repo.requests, 1)
}

func TestCreateLeave_WeekendOnlyRange(t *testing.T) {
	svc, _, _ := newLeaveTestService()
	ctx := leaveContext(t, "emp-1", "employee")

	_, err := svc.Create(ctx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-03-07",
		EndDate:     "2026-03-08",
		Reason:      "weekend",
	})
	assert.Error(t, err)
}

func TestCreateLeave_InsufficientBalance(t *testing.T) {
	svc, repo, _ := newLeaveTestService()
	ctx := leaveContext(t, "emp-1", "employee")

	repo.used[usedKey("emp-1", "annual", 2026)] = 10

	// Three workdays requested against two remaining.
	_, err := svc.Create(ctx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-04",
		Reason:      "too long",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestCreateLeave_Overlapping(t *testing.T) {
	svc, _, _ := newLeaveTestService()
	ctx := leaveContext(t, "emp-1", "employee")

	_, err := svc.Create(ctx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-04",
		Reason:      "first",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, leave.CreateLeaveRequest{
		LeaveTypeID: "sick",
		StartDate:   "2026-03-04",
		EndDate:     "2026-03-05",
		Reason:      "second",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingRequest)
}

func TestApproveLeave(t *testing.T) {
	svc, repo, _ := newLeaveTestService()
	empCtx := leaveContext(t, "emp-1", "employee")

	created, err := svc.Create(empCtx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-03",
		Reason:      "trip",
	})
	require.NoError(t, err)

	mgrCtx := leaveContext(t, "emp-2", "manager")
	remark := "enjoy"
	resp, err := svc.Approve(mgrCtx, leave.DecideLeaveRequest{ID: created.ID, Remark: &remark})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, resp.Status)
	require.NotNil(t, resp.DecidedBy)
	assert.Equal(t, "user-1", *resp.DecidedBy)
	assert.NotNil(t, resp.DecidedAt)

	stored := repo.requests[created.ID]
	assert.Equal(t, leave.StatusApproved, stored.Status)
}

func TestApproveLeave_AlreadyProcessed(t *testing.T) {
	svc, _, _ := newLeaveTestService()
	empCtx := leaveContext(t, "emp-1", "employee")

	created, err := svc.Create(empCtx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-03",
		Reason:      "trip",
	})
	require.NoError(t, err)

	mgrCtx := leaveContext(t, "emp-2", "manager")
	_, err = svc.Approve(mgrCtx, leave.DecideLeaveRequest{ID: created.ID})
	require.NoError(t, err)

	_, err = svc.Reject(mgrCtx, leave.DecideLeaveRequest{ID: created.ID})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestCancelLeave_OwnerOnly(t *testing.T) {
	svc, _, _ := newLeaveTestService()
	empCtx := leaveContext(t, "emp-1", "employee")

	created, err := svc.Create(empCtx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-03",
		Reason:      "trip",
	})
	require.NoError(t, err)

	otherCtx := leaveContext(t, "emp-2", "employee")
	_, err = svc.Cancel(otherCtx, created.ID)
	assert.ErrorIs(t, err, leave.ErrNotRequestOwner)

	resp, err := svc.Cancel(empCtx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusCancelled, resp.Status)
}

func TestGetLeave_EmployeeCannotSeeOthers(t *testing.T) {
	svc, _, _ := newLeaveTestService()
	empCtx := leaveContext(t, "emp-1", "employee")

	created, err := svc.Create(empCtx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-03",
		Reason:      "trip",
	})
	require.NoError(t, err)

	otherCtx := leaveContext(t, "emp-2", "employee")
	_, err = svc.Get(otherCtx, created.ID)
	assert.ErrorIs(t, err, leave.ErrNotRequestOwner)

	hrCtx := leaveContext(t, "emp-3", "hr")
	resp, err := svc.Get(hrCtx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
}

func TestGetMyBalance(t *testing.T) {
	svc, repo, _ := newLeaveTestService()
	ctx := leaveContext(t, "emp-1", "employee")

	repo.used[usedKey("emp-1", "annual", 2026)] = 5

	resp, err := svc.GetMyBalance(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, 2026, resp.Year)
	require.Len(t, resp.Balances, 2)

	byType := make(map[string]leave.Balance)
	for _, b := range resp.Balances {
		byType[b.LeaveTypeID] = b
	}
	assert.Equal(t, 7, byType["annual"].Remaining)
	assert.Equal(t, 10, byType["sick"].Remaining)
}

func TestWorkdaysBetween(t *testing.T) {
	mon := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, leave.WorkdaysBetween(mon, mon))
	assert.Equal(t, 5, leave.WorkdaysBetween(mon, mon.AddDate(0, 0, 4)))
	assert.Equal(t, 5, leave.WorkdaysBetween(mon, mon.AddDate(0, 0, 6)))
	assert.Equal(t, 0, leave.WorkdaysBetween(mon.AddDate(0, 0, 1), mon))
}
