package rule

import (
	"strings"
	"time"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/employee"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/calendar"
)

// Rule types. The enum is open: unknown types pass through the resolver
// without contributing any derived flag.
const (
	TypeAttendanceExempt  = "attendance_exempt"
	TypeCustomShift       = "custom_shift"
	TypeOvertimeOvernight = "overtime_overnight"
)

// Scope prefixes. "all" matches every employee.
const (
	ScopeAll          = "all"
	ScopeDeptPrefix   = "dept:"
	ScopeSectorPrefix = "sector:"
	ScopeEmpPrefix    = "emp:"
)

// Params carries rule-specific configuration. Only custom_shift rules use
// it today; unknown keys are preserved in storage but not surfaced here.
type Params struct {
	ShiftStart string `json:"shiftStart,omitempty"`
	ShiftEnd   string `json:"shiftEnd,omitempty"`
}

// SpecialRule is a scoped, date-bounded attendance rule. Multiple rules may
// apply to the same employee and day; priority only arbitrates between
// custom_shift params.
type SpecialRule struct {
	ID        string
	Name      string
	RuleType  string
	Scope     string
	StartDate calendar.Date
	EndDate   calendar.Date
	Priority  int
	Params    Params
	CreatedAt time.Time
}

// ActiveOn reports whether day falls inside the rule's inclusive range.
func (r SpecialRule) ActiveOn(day calendar.Date) bool {
	return !day.Before(r.StartDate) && !day.After(r.EndDate)
}

// AppliesTo reports whether the rule's scope matches the employee.
func (r SpecialRule) AppliesTo(e employee.Employee) bool {
	switch {
	case r.Scope == ScopeAll:
		return true
	case strings.HasPrefix(r.Scope, ScopeDeptPrefix):
		return e.DepartmentName() == strings.TrimPrefix(r.Scope, ScopeDeptPrefix)
	case strings.HasPrefix(r.Scope, ScopeSectorPrefix):
		return e.SectorName() == strings.TrimPrefix(r.Scope, ScopeSectorPrefix)
	case strings.HasPrefix(r.Scope, ScopeEmpPrefix):
		return e.Code == strings.TrimPrefix(r.Scope, ScopeEmpPrefix)
	default:
		return false
	}
}
