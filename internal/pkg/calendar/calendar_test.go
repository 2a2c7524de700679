package calendar

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"2025-01-31", true},
		{"2025-02-29", false},
		{"2025-13-01", false},
		{"31/01/2025", false},
		{"", false},
	}
	for _, c := range cases {
		_, err := ParseDate(c.input)
		if (err == nil) != c.valid {
			t.Errorf("ParseDate(%q) err = %v, want valid=%v", c.input, err, c.valid)
		}
	}
}

func TestDateStringRoundTrip(t *testing.T) {
	d, err := ParseDate("2025-03-07")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "2025-03-07" {
		t.Errorf("String() = %q, want 2025-03-07", d.String())
	}
}

func TestDateNextAcrossMonthAndYear(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2025-01-31", "2025-02-01"},
		{"2025-12-31", "2026-01-01"},
		{"2024-02-28", "2024-02-29"},
	}
	for _, c := range cases {
		d, _ := ParseDate(c.in)
		if got := d.Next().String(); got != c.want {
			t.Errorf("Next(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestDateOfInstantInverseOfDayWindow(t *testing.T) {
	// Cairo-style offset: UTC = local - 3h.
	const offset = -180
	day, _ := ParseDate("2025-06-15")

	start := day.StartUTC(offset)
	end := day.EndUTC(offset)

	if got := DateOfInstant(start, offset); got != day {
		t.Errorf("DateOfInstant(start) = %s, want %s", got, day)
	}
	if got := DateOfInstant(end, offset); got != day {
		t.Errorf("DateOfInstant(end) = %s, want %s", got, day)
	}
	if got := DateOfInstant(start.Add(-time.Nanosecond), offset); got == day {
		t.Error("instant before StartUTC must fall on the previous local day")
	}
	if got := DateOfInstant(end.Add(time.Nanosecond), offset); got == day {
		t.Error("instant after EndUTC must fall on the next local day")
	}
}

func TestDateAtAppliesOffset(t *testing.T) {
	day, _ := ParseDate("2025-06-15")
	// Local 09:00 at UTC+3 is 06:00 UTC.
	got := day.At(9, 0, -180)
	want := time.Date(2025, 6, 15, 6, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At(9,0,-180) = %v, want %v", got, want)
	}
	// Zero offset leaves the wall clock untouched.
	got = day.At(9, 0, 0)
	want = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At(9,0,0) = %v, want %v", got, want)
	}
}

func TestParseLocalDateTime(t *testing.T) {
	got, err := ParseLocalDateTime("2025-06-15T08:30:00", -180)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2025, 6, 15, 5, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseLocalDateTime = %v, want %v", got, want)
	}
	if _, err := ParseLocalDateTime("2025-06-15 08:30:00", 0); err == nil {
		t.Error("expected error for non-ISO separator")
	}
}

func TestIsFriday(t *testing.T) {
	friday, _ := ParseDate("2025-06-06")
	saturday, _ := ParseDate("2025-06-07")
	if !friday.IsFriday() {
		t.Error("2025-06-06 is a Friday")
	}
	if saturday.IsFriday() {
		t.Error("2025-06-07 is not a Friday")
	}
}

func TestMonthPrev(t *testing.T) {
	m, _ := ParseMonth("2025-01")
	if got := m.Prev().String(); got != "2024-12" {
		t.Errorf("Prev(2025-01) = %s, want 2024-12", got)
	}
}

func TestMonthFridays(t *testing.T) {
	m, _ := ParseMonth("2025-05")
	fridays := m.Fridays()
	want := []string{"2025-05-02", "2025-05-09", "2025-05-16", "2025-05-23", "2025-05-30"}
	if len(fridays) != len(want) {
		t.Fatalf("got %d Fridays, want %d", len(fridays), len(want))
	}
	for i, f := range fridays {
		if f.String() != want[i] {
			t.Errorf("friday[%d] = %s, want %s", i, f, want[i])
		}
	}
}

func TestMonthDateBounds(t *testing.T) {
	m, _ := ParseMonth("2025-04")
	if _, ok := m.Date(31); ok {
		t.Error("April has no day 31")
	}
	if d, ok := m.Date(30); !ok || d.String() != "2025-04-30" {
		t.Errorf("Date(30) = %v ok=%v", d, ok)
	}
	if _, ok := m.Date(0); ok {
		t.Error("day 0 must be rejected")
	}
}
