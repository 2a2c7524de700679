package punch

import (
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/validator"
)

type PunchInput struct {
	EmployeeCode  string `json:"employeeCode"`
	PunchDatetime string `json:"punchDatetime"` // local wall clock, YYYY-MM-DDTHH:mm:ss
}

type ImportPunchesRequest struct {
	TimezoneOffsetMinutes int          `json:"timezoneOffsetMinutes"`
	Punches               []PunchInput `json:"punches"`
}

func (r *ImportPunchesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Punches) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "punches",
			Message: "at least one punch is required",
		})
	}
	for i, p := range r.Punches {
		if validator.IsEmpty(p.EmployeeCode) {
			errs = append(errs, validator.ValidationError{
				Field:   "punches[" + validator.Itoa(i) + "].employeeCode",
				Message: "employeeCode is required",
			})
		}
		if !validator.IsValidLocalDateTime(p.PunchDatetime) {
			errs = append(errs, validator.ValidationError{
				Field:   "punches[" + validator.Itoa(i) + "].punchDatetime",
				Message: "punchDatetime must be in YYYY-MM-DDTHH:mm:ss format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ImportPunchesResponse struct {
	Count int `json:"count"`
}
