package rule

import (
	"strings"

	"github.com/wakt-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateRuleRequest struct {
	Name      string `json:"name"`
	RuleType  string `json:"ruleType"`
	Scope     string `json:"scope"`
	StartDate string `json:"startDate"` // YYYY-MM-DD
	EndDate   string `json:"endDate"`   // YYYY-MM-DD
	Priority  int    `json:"priority"`
	Params    Params `json:"params"`
}

func (r *CreateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.RuleType) {
		errs = append(errs, validator.ValidationError{
			Field:   "ruleType",
			Message: "ruleType is required",
		})
	}

	if !validScope(r.Scope) {
		errs = append(errs, validator.ValidationError{
			Field:   "scope",
			Message: "scope must be all, dept:<name>, sector:<name> or emp:<code>",
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

	if r.RuleType == TypeCustomShift {
		if r.Params.ShiftStart != "" && !validator.IsValidClock(r.Params.ShiftStart) {
			errs = append(errs, validator.ValidationError{
				Field:   "params.shiftStart",
				Message: "shiftStart must be in HH:MM format",
			})
		}
		if r.Params.ShiftEnd != "" && !validator.IsValidClock(r.Params.ShiftEnd) {
			errs = append(errs, validator.ValidationError{
				Field:   "params.shiftEnd",
				Message: "shiftEnd must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validScope(scope string) bool {
	if scope == ScopeAll {
		return true
	}
	for _, prefix := range []string{ScopeDeptPrefix, ScopeSectorPrefix, ScopeEmpPrefix} {
		if strings.HasPrefix(scope, prefix) && len(scope) > len(prefix) {
			return true
		}
	}
	return false
}

type RuleResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	RuleType  string `json:"ruleType"`
	Scope     string `json:"scope"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Priority  int    `json:"priority"`
	Params    Params `json:"params"`
}
