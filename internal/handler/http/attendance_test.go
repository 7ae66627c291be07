package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/hrm-backend-go/internal/domain/attendance"
)

// stubAttendanceService returns canned responses so handler behavior can
// be asserted without a database.
type stubAttendanceService struct {
	checkInResp  attendance.CheckInResponse
	checkInErr   error
	checkOutResp attendance.CheckOutResponse
	checkOutErr  error

	lastCheckIn attendance.CheckInRequest
}

func (s *stubAttendanceService) CheckIn(_ context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	s.lastCheckIn = req
	return s.checkInResp, s.checkInErr
}

func (s *stubAttendanceService) CheckOut(_ context.Context, _ attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	return s.checkOutResp, s.checkOutErr
}

func (s *stubAttendanceService) GetMyAttendance(_ context.Context, _ attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return attendance.ListAttendanceResponse{}, nil
}

func (s *stubAttendanceService) ListAttendance(_ context.Context, _ attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return attendance.ListAttendanceResponse{}, nil
}

func (s *stubAttendanceService) GetSummary(_ context.Context, _ string) (attendance.SummaryResponse, error) {
	return attendance.SummaryResponse{}, nil
}

func (s *stubAttendanceService) AdjustAttendance(_ context.Context, _ attendance.AdjustAttendanceRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}

func (s *stubAttendanceService) CloseStaleSessions(_ context.Context) (int, error) {
	return 0, nil
}

func (s *stubAttendanceService) MarkAbsentees(_ context.Context) (int64, error) {
	return 0, nil
}

func TestCheckInHandler_RespondsOK(t *testing.T) {
	stub := &stubAttendanceService{
		checkInResp: attendance.CheckInResponse{CheckInTime: "09:00:00", Late: "00:00:00"},
	}
	h := NewAttendanceHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", nil)
	rec := httptest.NewRecorder()
	h.CheckIn(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
}

func TestCheckInHandler_DecodesStatusOverride(t *testing.T) {
	stub := &stubAttendanceService{}
	h := NewAttendanceHandler(stub)

	payload := bytes.NewBufferString(`{"status":"Leave"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", payload)
	rec := httptest.NewRecorder()
	h.CheckIn(rec, req)

	require.NotNil(t, stub.lastCheckIn.Status)
	assert.Equal(t, attendance.StatusLeave, *stub.lastCheckIn.Status)
}

func TestCheckOutHandler_NoRecordRespondsNotFound(t *testing.T) {
	stub := &stubAttendanceService{checkOutErr: attendance.ErrNoCheckInRecord}
	h := NewAttendanceHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-out", nil)
	rec := httptest.NewRecorder()
	h.CheckOut(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckOutHandler_NotCheckedInRespondsBadRequest(t *testing.T) {
	stub := &stubAttendanceService{checkOutErr: attendance.ErrNotCheckedIn}
	h := NewAttendanceHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-out", nil)
	rec := httptest.NewRecorder()
	h.CheckOut(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
