package employee

import (
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Department *string `json:"department,omitempty"`
	Sector     *string `json:"sector,omitempty"`
	Branch     *string `json:"branch,omitempty"`
	ShiftStart *string `json:"shiftStart,omitempty"` // HH:MM
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.ShiftStart != nil && !validator.IsValidClock(*r.ShiftStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "shiftStart",
			Message: "shiftStart must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest applies a partial edit; nil fields are left as is.
type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	Sector     *string `json:"sector,omitempty"`
	Branch     *string `json:"branch,omitempty"`
	ShiftStart *string `json:"shiftStart,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.ShiftStart != nil && !validator.IsValidClock(*r.ShiftStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "shiftStart",
			Message: "shiftStart must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Department *string `json:"department,omitempty"`
	Sector     *string `json:"sector,omitempty"`
	Branch     *string `json:"branch,omitempty"`
	ShiftStart *string `json:"shiftStart,omitempty"`
}

type ImportEmployeesRequest struct {
	Employees []CreateEmployeeRequest `json:"employees"`
}

func (r *ImportEmployeesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Employees) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employees",
			Message: "at least one employee is required",
		})
	}
	for i, emp := range r.Employees {
		if validator.IsEmpty(emp.Code) {
			errs = append(errs, validator.ValidationError{
				Field:   "employees[" + validator.Itoa(i) + "].code",
				Message: "code is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ImportEmployeesResponse struct {
	Count int `json:"count"`
}
