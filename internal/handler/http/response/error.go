package response

import (
	"errors"
	"net/http"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/adjustment"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/employee"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/fridaypolicy"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/rule"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/validator"
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
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Rule domain errors
	case errors.Is(err, rule.ErrRuleNotFound):
		NotFound(w, "Special rule not found")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)

	// Friday policy domain errors
	case errors.Is(err, fridaypolicy.ErrInvalidMonth):
		BadRequest(w, "Invalid report month", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
