package attendance

import (
	"time"

	"github.com/wakt-hr/attendance-backend-go/internal/pkg/validator"
)

// ProcessRequest is the reconciliation entry point contract. The offset
// follows the JS getTimezoneOffset convention (UTC = local + offset).
type ProcessRequest struct {
	StartDate             string `json:"startDate"` // YYYY-MM-DD
	EndDate               string `json:"endDate"`   // YYYY-MM-DD
	TimezoneOffsetMinutes int    `json:"timezoneOffsetMinutes"`
}

func (r *ProcessRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessResponse struct {
	ProcessedCount int `json:"processedCount"`
}

// ToggleFridayCompLeaveRequest is the one targeted mutation outside full
// reprocessing.
type ToggleFridayCompLeaveRequest struct {
	RecordID  string  `json:"-"`
	Enabled   bool    `json:"enabled"`
	Note      *string `json:"note,omitempty"`
	UpdatedBy *string `json:"updatedBy,omitempty"`
}

func (r *ToggleFridayCompLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "record id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	EmployeeCode *string `json:"employeeCode,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(f.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(f.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 50 // Default limit
	}
	if f.Limit > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 500",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID                       string    `json:"id"`
	EmployeeCode             string    `json:"employeeCode"`
	EmployeeName             *string   `json:"employeeName,omitempty"`
	Date                     string    `json:"date"`
	CheckIn                  *string   `json:"checkIn,omitempty"`
	CheckOut                 *string   `json:"checkOut,omitempty"`
	TotalHours               float64   `json:"totalHours"`
	OvertimeHours            float64   `json:"overtimeHours"`
	Status                   string    `json:"status"`
	Penalties                []Penalty `json:"penalties"`
	IsOvernight              bool      `json:"isOvernight"`
	FridayCompLeave          bool      `json:"fridayCompLeave"`
	FridayCompLeaveManual    bool      `json:"fridayCompLeaveManual"`
	FridayCompLeaveNote      *string   `json:"fridayCompLeaveNote,omitempty"`
	FridayCompLeaveUpdatedBy *string   `json:"fridayCompLeaveUpdatedBy,omitempty"`
}

type ListResponse struct {
	TotalCount int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Records    []RecordResponse `json:"data"`
}

// MapRecordToResponse converts a Record entity to its response shape.
// Instants are rendered as UTC timestamps; the client applies its offset
// for display.
func MapRecordToResponse(rec Record) RecordResponse {
	penalties := rec.Penalties
	if penalties == nil {
		penalties = []Penalty{}
	}
	return RecordResponse{
		ID:                       rec.ID,
		EmployeeCode:             rec.EmployeeCode,
		EmployeeName:             rec.EmployeeName,
		Date:                     rec.Date,
		CheckIn:                  instantPtrToString(rec.CheckIn),
		CheckOut:                 instantPtrToString(rec.CheckOut),
		TotalHours:               rec.TotalHours,
		OvertimeHours:            rec.OvertimeHours,
		Status:                   rec.Status,
		Penalties:                penalties,
		IsOvernight:              rec.IsOvernight,
		FridayCompLeave:          rec.FridayCompLeave,
		FridayCompLeaveManual:    rec.FridayCompLeaveManual,
		FridayCompLeaveNote:      rec.FridayCompLeaveNote,
		FridayCompLeaveUpdatedBy: rec.FridayCompLeaveUpdatedBy,
	}
}

// instantPtrToString safely converts a *time.Time to an RFC3339 string.
func instantPtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}
