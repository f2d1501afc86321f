package response

import (
	"errors"
	"net/http"

	"github.com/kerjahub/attendance-backend-go/internal/domain/attendance"
	"github.com/kerjahub/attendance-backend-go/internal/domain/auth"
	"github.com/kerjahub/attendance-backend-go/internal/domain/gate"
	"github.com/kerjahub/attendance-backend-go/internal/domain/site"
	"github.com/kerjahub/attendance-backend-go/internal/domain/user"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/validator"
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

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())

	// Attendance state machine errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNoShiftAssigned):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrMonthRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, err.Error())

	// Identity/location gate errors
	case errors.Is(err, gate.ErrMissingEmbedding):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, gate.ErrMissingGPS):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, gate.ErrNotEnrolled):
		Forbidden(w, err.Error())
	case errors.Is(err, gate.ErrFaceMismatch):
		Forbidden(w, err.Error())
	case errors.Is(err, gate.ErrOutOfRange):
		Forbidden(w, err.Error())

	// Site configuration errors
	case errors.Is(err, site.ErrSiteNotConfigured):
		Conflict(w, err.Error())
	case errors.Is(err, site.ErrInvalidSiteConfig):
		Conflict(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
