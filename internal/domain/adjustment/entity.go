package adjustment

import (
	"time"

	"github.com/wakt-hr/attendance-backend-go/internal/pkg/calendar"
)

// Adjustment types.
const (
	TypeAnnual     = "annual"
	TypeSick       = "sick"
	TypeUnpaid     = "unpaid"
	TypeMission    = "mission"
	TypePermission = "permission"
)

// Adjustment is an approved leave/mission/permission record that overrides
// normal attendance expectations over an inclusive date range.
type Adjustment struct {
	ID           string
	EmployeeCode string
	Type         string
	StartDate    calendar.Date
	EndDate      calendar.Date
	Notes        *string
	CreatedAt    time.Time
}

// Covers reports whether day falls inside the adjustment's inclusive range.
func (a Adjustment) Covers(day calendar.Date) bool {
	return !day.Before(a.StartDate) && !day.After(a.EndDate)
}

// IsLeave reports whether the adjustment is a leave type (as opposed to a
// mission or permission).
func (a Adjustment) IsLeave() bool {
	switch a.Type {
	case TypeAnnual, TypeSick, TypeUnpaid:
		return true
	}
	return false
}

// ForDate returns the first adjustment in insertion order whose range
// covers day, or nil. Overlapping adjustments resolve first-match; this is
// deliberate (see DESIGN.md).
func ForDate(list []Adjustment, day calendar.Date) *Adjustment {
	for i := range list {
		if list[i].Covers(day) {
			return &list[i]
		}
	}
	return nil
}
