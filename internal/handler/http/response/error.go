package response

import (
	"errors"
	"net/http"

	"github.com/worklane/hrm-backend-go/internal/domain/announcement"
	"github.com/worklane/hrm-backend-go/internal/domain/asset"
	"github.com/worklane/hrm-backend-go/internal/domain/attendance"
	"github.com/worklane/hrm-backend-go/internal/domain/auth"
	"github.com/worklane/hrm-backend-go/internal/domain/employee"
	"github.com/worklane/hrm-backend-go/internal/domain/helpdesk"
	"github.com/worklane/hrm-backend-go/internal/domain/leave"
	"github.com/worklane/hrm-backend-go/internal/domain/master"
	"github.com/worklane/hrm-backend-go/internal/domain/payroll"
	"github.com/worklane/hrm-backend-go/internal/domain/performance"
	"github.com/worklane/hrm-backend-go/internal/domain/user"
	"github.com/worklane/hrm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthDisabled):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrHRAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrProfileNotFound):
		NotFound(w, "Employee profile not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		Conflict(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNoCheckInRecord):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrOverlappingRequest),
		errors.Is(err, leave.ErrAlreadyProcessed),
		errors.Is(err, leave.ErrCannotCancelProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, err.Error())

	// Master data errors
	case errors.Is(err, master.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, master.ErrDesignationNotFound):
		NotFound(w, "Designation not found")
	case errors.Is(err, master.ErrDepartmentNameTaken):
		Conflict(w, err.Error())

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipExists),
		errors.Is(err, payroll.ErrPayslipNotDraft):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrNotPayslipOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, payroll.ErrNoActiveEmployees):
		BadRequest(w, err.Error(), nil)

	// Announcement domain errors
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")
	case errors.Is(err, announcement.ErrAnnouncementExpired):
		NotFound(w, err.Error())
	case errors.Is(err, announcement.ErrDepartmentRequired):
		BadRequest(w, err.Error(), nil)

	// Performance domain errors
	case errors.Is(err, performance.ErrGoalNotFound):
		NotFound(w, "Goal not found")
	case errors.Is(err, performance.ErrAppraisalNotFound):
		NotFound(w, "Appraisal not found")
	case errors.Is(err, performance.ErrIndicatorNotFound):
		NotFound(w, "Indicator not found")
	case errors.Is(err, performance.ErrGoalCompleted),
		errors.Is(err, performance.ErrAppraisalExists),
		errors.Is(err, performance.ErrIndicatorNameTaken):
		Conflict(w, err.Error())
	case errors.Is(err, performance.ErrNotGoalOwner),
		errors.Is(err, performance.ErrSelfAppraisal):
		Forbidden(w, err.Error())

	// Asset domain errors
	case errors.Is(err, asset.ErrAssetNotFound):
		NotFound(w, "Asset not found")
	case errors.Is(err, asset.ErrAssetCodeExists),
		errors.Is(err, asset.ErrAssetNotAvailable),
		errors.Is(err, asset.ErrAssetNotAssigned),
		errors.Is(err, asset.ErrReturnNotRequested):
		Conflict(w, err.Error())
	case errors.Is(err, asset.ErrNotAssetHolder):
		Forbidden(w, err.Error())

	// Helpdesk domain errors
	case errors.Is(err, helpdesk.ErrTicketNotFound):
		NotFound(w, "Ticket not found")
	case errors.Is(err, helpdesk.ErrComplaintNotFound):
		NotFound(w, "Complaint not found")
	case errors.Is(err, helpdesk.ErrTicketClosed),
		errors.Is(err, helpdesk.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, helpdesk.ErrNotTicketOwner):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
