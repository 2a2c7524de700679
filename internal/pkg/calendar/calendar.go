// Package calendar provides an explicit local-calendar-date value type and
// the conversions between local dates and UTC instants used by the
// attendance engine. A fixed client offset is applied uniformly; there is
// no daylight-saving adjustment.
//
// The offset follows the JavaScript getTimezoneOffset convention:
// UTC = local + offset minutes (Cairo, UTC+3, has offset -180).
package calendar

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a local calendar day, independent of any instant.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Compare returns -1, 0 or +1 comparing d to other chronologically.
func (d Date) Compare(other Date) int {
	a := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(other.Year, other.Month, other.Day, 0, 0, 0, 0, time.UTC)
	return a.Compare(b)
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) IsFriday() bool {
	return d.Weekday() == time.Friday
}

// At returns the UTC instant of the given local wall-clock time on d.
func (d Date) At(hour, minute, offsetMinutes int) time.Time {
	local := time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, time.UTC)
	return local.Add(time.Duration(offsetMinutes) * time.Minute)
}

// StartUTC returns the UTC instant at which the local day d begins.
func (d Date) StartUTC(offsetMinutes int) time.Time {
	return d.At(0, 0, offsetMinutes)
}

// EndUTC returns the last UTC instant still belonging to the local day d.
func (d Date) EndUTC(offsetMinutes int) time.Time {
	return d.StartUTC(offsetMinutes).Add(24*time.Hour - time.Nanosecond)
}

// DateOfInstant returns the local calendar date the UTC instant falls on.
// Inverse of StartUTC/EndUTC: for any instant t within the local day d,
// DateOfInstant(t, offset) == d.
func DateOfInstant(t time.Time, offsetMinutes int) Date {
	local := t.UTC().Add(-time.Duration(offsetMinutes) * time.Minute)
	return Date{Year: local.Year(), Month: local.Month(), Day: local.Day()}
}

// ParseLocalDateTime parses a timezone-naive "2006-01-02T15:04:05" wall-clock
// string and converts it to the UTC instant it denotes under the offset.
// Punch ingestion is the one boundary where this conversion happens.
func ParseLocalDateTime(s string, offsetMinutes int) (time.Time, error) {
	local, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid local datetime %q: %w", s, err)
	}
	return local.Add(time.Duration(offsetMinutes) * time.Minute), nil
}

// Month is a local calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Prev returns the preceding month.
func (m Month) Prev() Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// DaysIn returns the number of days in the month.
func (m Month) DaysIn() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// First returns the first day of the month.
func (m Month) First() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

// Last returns the last day of the month.
func (m Month) Last() Date {
	return Date{Year: m.Year, Month: m.Month, Day: m.DaysIn()}
}

// Date returns the given day of the month, or false when the day number
// does not exist in it (for example day 31 in April).
func (m Month) Date(day int) (Date, bool) {
	if day < 1 || day > m.DaysIn() {
		return Date{}, false
	}
	return Date{Year: m.Year, Month: m.Month, Day: day}, true
}

// Fridays lists the Fridays of the month in order.
func (m Month) Fridays() []Date {
	var fridays []Date
	for day := m.First(); !day.After(m.Last()); day = day.Next() {
		if day.IsFriday() {
			fridays = append(fridays, day)
		}
	}
	return fridays
}
