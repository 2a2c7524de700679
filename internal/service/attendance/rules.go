package attendance

import (
	"sort"
	"strconv"
	"strings"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/employee"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/rule"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/calendar"
)

// shiftDurationHours is the fixed shift length assumed when no custom_shift
// rule supplies an explicit end.
const shiftDurationHours = 8

// ResolvedRules is the evaluator's view of all rules matching one
// employee/day. All matching rules contribute boolean flags; only the
// highest-priority custom_shift contributes shift params.
type ResolvedRules struct {
	Exempt     bool
	Overnight  bool
	ShiftStart clockTime
	ShiftEnd   clockTime
}

// clockTime is a wall-clock "HH:MM" broken into components.
type clockTime struct {
	Hour   int
	Minute int
}

// parseClock parses "HH:MM". Malformed values fall back rather than abort a
// processing run.
func parseClock(s string, fallback clockTime) clockTime {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return fallback
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return fallback
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return fallback
	}
	return clockTime{Hour: hour, Minute: minute}
}

// addHours returns the clock time h hours later, wrapping at midnight.
func (c clockTime) addHours(h int) clockTime {
	return clockTime{Hour: (c.Hour + h) % 24, Minute: c.Minute}
}

// activeRules filters rules down to those whose date range contains day and
// whose scope matches the employee, sorted descending by priority. Ties keep
// insertion order.
func activeRules(rules []rule.SpecialRule, emp employee.Employee, day calendar.Date) []rule.SpecialRule {
	var active []rule.SpecialRule
	for _, r := range rules {
		if r.ActiveOn(day) && r.AppliesTo(emp) {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority > active[j].Priority
	})
	return active
}

// resolveRules derives the evaluator flags and effective shift for one
// employee/day. The shift comes from the highest-priority custom_shift rule
// when one matches, otherwise the employee's own start (or the configured
// default) plus a fixed 8-hour shift length.
func resolveRules(rules []rule.SpecialRule, emp employee.Employee, day calendar.Date, defaultShiftStart string) ResolvedRules {
	active := activeRules(rules, emp, day)

	start := defaultShiftStart
	if emp.ShiftStart != nil && *emp.ShiftStart != "" {
		start = *emp.ShiftStart
	}
	resolved := ResolvedRules{
		ShiftStart: parseClock(start, clockTime{Hour: 9}),
	}
	resolved.ShiftEnd = resolved.ShiftStart.addHours(shiftDurationHours)

	shiftSet := false
	for _, r := range active {
		switch r.RuleType {
		case rule.TypeAttendanceExempt:
			resolved.Exempt = true
		case rule.TypeOvertimeOvernight:
			resolved.Overnight = true
		case rule.TypeCustomShift:
			if shiftSet {
				continue // a higher-priority custom_shift already won
			}
			shiftSet = true
			if r.Params.ShiftStart != "" {
				resolved.ShiftStart = parseClock(r.Params.ShiftStart, resolved.ShiftStart)
			}
			if r.Params.ShiftEnd != "" {
				resolved.ShiftEnd = parseClock(r.Params.ShiftEnd, resolved.ShiftStart.addHours(shiftDurationHours))
			} else {
				resolved.ShiftEnd = resolved.ShiftStart.addHours(shiftDurationHours)
			}
		}
	}
	return resolved
}
