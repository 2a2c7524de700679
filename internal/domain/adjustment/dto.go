package adjustment

import (
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/validator"
)

var validTypes = []string{TypeAnnual, TypeSick, TypeUnpaid, TypeMission, TypePermission}

type CreateAdjustmentRequest struct {
	EmployeeCode string  `json:"employeeCode"`
	Type         string  `json:"type"`
	StartDate    string  `json:"startDate"` // YYYY-MM-DD
	EndDate      string  `json:"endDate"`   // YYYY-MM-DD
	Notes        *string `json:"notes,omitempty"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeCode",
			Message: "employeeCode is required",
		})
	}

	if !validator.IsInSlice(r.Type, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: annual, sick, unpaid, mission, permission",
		})
	}

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

type AdjustmentResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employeeCode"`
	Type         string  `json:"type"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Notes        *string `json:"notes,omitempty"`
}
