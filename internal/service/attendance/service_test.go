package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/adjustment"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/employee"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/punch"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/rule"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/calendar"
)

// cairoOffset is the JS getTimezoneOffset value for UTC+3.
const cairoOffset = -180

const collectionSector = "التحصيل"

// --- in-memory fakes ---

type fakeAttendanceRepo struct {
	records map[dayKey]attendance.Record
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[dayKey]attendance.Record)}
}

func (f *fakeAttendanceRepo) key(rec attendance.Record) dayKey {
	day, _ := calendar.ParseDate(rec.Date)
	return dayKey{EmployeeCode: rec.EmployeeCode, Date: day}
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	key := f.key(rec)
	if prior, ok := f.records[key]; ok {
		rec.ID = prior.ID
		rec.CreatedAt = prior.CreatedAt
	} else {
		f.nextID++
		rec.ID = fmt.Sprintf("rec-%d", f.nextID)
	}
	f.records[key] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) Update(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	for key, stored := range f.records {
		if stored.ID == rec.ID {
			f.records[key] = rec
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetRange(_ context.Context, startDate, endDate string) ([]attendance.Record, error) {
	start, _ := calendar.ParseDate(startDate)
	end, _ := calendar.ParseDate(endDate)
	var out []attendance.Record
	for key, rec := range f.records {
		if !key.Date.Before(start) && !key.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	recs, err := f.GetRange(context.Background(), filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, 0, err
	}
	var out []attendance.Record
	for _, rec := range recs {
		if filter.EmployeeCode != nil && rec.EmployeeCode != *filter.EmployeeCode {
			continue
		}
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Code == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) CreateBulk(_ context.Context, emps []employee.Employee) ([]employee.Employee, error) {
	f.employees = append(f.employees, emps...)
	return emps, nil
}

type fakeRuleRepo struct {
	rules []rule.SpecialRule
}

func (f *fakeRuleRepo) List(_ context.Context) ([]rule.SpecialRule, error) {
	return f.rules, nil
}

func (f *fakeRuleRepo) Create(_ context.Context, r rule.SpecialRule) (rule.SpecialRule, error) {
	f.rules = append(f.rules, r)
	return r, nil
}

func (f *fakeRuleRepo) Delete(_ context.Context, id string) error { return nil }

type fakeAdjustmentRepo struct {
	adjustments []adjustment.Adjustment
}

func (f *fakeAdjustmentRepo) List(_ context.Context) ([]adjustment.Adjustment, error) {
	return f.adjustments, nil
}

func (f *fakeAdjustmentRepo) Create(_ context.Context, adj adjustment.Adjustment) (adjustment.Adjustment, error) {
	f.adjustments = append(f.adjustments, adj)
	return adj, nil
}

type fakePunchRepo struct {
	punches []punch.BiometricPunch
}

func (f *fakePunchRepo) Create(_ context.Context, p punch.BiometricPunch) (punch.BiometricPunch, error) {
	f.punches = append(f.punches, p)
	return p, nil
}

func (f *fakePunchRepo) CreateBulk(_ context.Context, punches []punch.BiometricPunch) ([]punch.BiometricPunch, error) {
	f.punches = append(f.punches, punches...)
	return punches, nil
}

func (f *fakePunchRepo) ListBetween(_ context.Context, utcStart, utcEnd time.Time) ([]punch.BiometricPunch, error) {
	var out []punch.BiometricPunch
	for _, p := range f.punches {
		if !p.PunchAt.Before(utcStart) && !p.PunchAt.After(utcEnd) {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- fixtures ---

type fixture struct {
	attendance *fakeAttendanceRepo
	employees  *fakeEmployeeRepo
	rules      *fakeRuleRepo
	adjs       *fakeAdjustmentRepo
	punches    *fakePunchRepo
	service    attendance.AttendanceService
}

func newFixture(employees ...employee.Employee) *fixture {
	f := &fixture{
		attendance: newFakeAttendanceRepo(),
		employees:  &fakeEmployeeRepo{employees: employees},
		rules:      &fakeRuleRepo{},
		adjs:       &fakeAdjustmentRepo{},
		punches:    &fakePunchRepo{},
	}
	f.service = NewAttendanceService(
		f.attendance, f.employees, f.rules, f.adjs, f.punches,
		Config{CollectionSector: collectionSector, DefaultShiftStart: "09:00"},
	)
	return f
}

func strPtr(s string) *string { return &s }

// localPunch builds a punch from a local wall-clock time under cairoOffset.
func localPunch(code, localDateTime string) punch.BiometricPunch {
	at, err := calendar.ParseLocalDateTime(localDateTime, cairoOffset)
	if err != nil {
		panic(err)
	}
	return punch.BiometricPunch{EmployeeCode: code, PunchAt: at}
}

func officeEmployee(code string) employee.Employee {
	return employee.Employee{ID: "id-" + code, Code: code, Name: "Employee " + code}
}

func (f *fixture) record(t *testing.T, code, date string) attendance.Record {
	t.Helper()
	day, err := calendar.ParseDate(date)
	require.NoError(t, err)
	rec, ok := f.attendance.records[dayKey{EmployeeCode: code, Date: day}]
	require.True(t, ok, "no record for %s on %s", code, date)
	return rec
}

func (f *fixture) process(t *testing.T, start, end string) attendance.ProcessResponse {
	t.Helper()
	resp, err := f.service.ProcessRange(context.Background(), attendance.ProcessRequest{
		StartDate:             start,
		EndDate:               end,
		TimezoneOffsetMinutes: cairoOffset,
	})
	require.NoError(t, err)
	return resp
}

// --- tests ---

func TestProcessRangeOnTimeDay(t *testing.T) {
	f := newFixture(officeEmployee("E1"))
	f.punches.punches = []punch.BiometricPunch{
		localPunch("E1", "2025-03-03T09:05:00"),
		localPunch("E1", "2025-03-03T17:30:00"),
	}

	resp := f.process(t, "2025-03-03", "2025-03-03")
	assert.Equal(t, 1, resp.ProcessedCount)

	rec := f.record(t, "E1", "2025-03-03")
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, 8.42, rec.TotalHours)
	assert.Equal(t, 0.42, rec.OvertimeHours)
	assert.Empty(t, rec.Penalties)
	assert.False(t, rec.FridayCompLeave)
}

func TestProcessRangeLatenessTiers(t *testing.T) {
	tests := []struct {
		name        string
		checkIn     string
		wantStatus  string
		wantValue   float64
		wantMinutes int
	}{
		{"grace boundary at 15 minutes", "2025-03-03T09:15:00", attendance.StatusPresent, 0, 0},
		{"just past grace", "2025-03-03T09:16:00", attendance.StatusLate, 0.25, 16},
		{"past half hour", "2025-03-03T09:31:00", attendance.StatusLate, 0.5, 31},
		{"past full hour", "2025-03-03T10:01:00", attendance.StatusLate, 1.0, 61},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(officeEmployee("E1"))
			f.punches.punches = []punch.BiometricPunch{
				localPunch("E1", tt.checkIn),
				localPunch("E1", "2025-03-03T17:00:00"),
			}

			f.process(t, "2025-03-03", "2025-03-03")

			rec := f.record(t, "E1", "2025-03-03")
			assert.Equal(t, tt.wantStatus, rec.Status)
			if tt.wantStatus == attendance.StatusLate {
				require.Len(t, rec.Penalties, 1)
				assert.Equal(t, attendance.PenaltyLate, rec.Penalties[0].Type)
				assert.Equal(t, tt.wantValue, rec.Penalties[0].Value)
				assert.Equal(t, tt.wantMinutes, rec.Penalties[0].Minutes)
			} else {
				assert.Empty(t, rec.Penalties)
			}
		})
	}
}

func TestProcessRangeAbsentDay(t *testing.T) {
	f := newFixture(officeEmployee("E1"))

	f.process(t, "2025-03-03", "2025-03-03")

	rec := f.record(t, "E1", "2025-03-03")
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	require.Len(t, rec.Penalties, 1)
	assert.Equal(t, attendance.PenaltyAbsence, rec.Penalties[0].Type)
	assert.Equal(t, 1.0, rec.Penalties[0].Value)
	assert.Nil(t, rec.CheckIn)
	assert.Zero(t, rec.TotalHours)
}

func TestProcessRangeSinglePunchHasNoCheckOut(t *testing.T) {
	f := newFixture(officeEmployee("E1"))
	f.punches.punches = []punch.BiometricPunch{
		localPunch("E1", "2025-03-03T09:00:00"),
	}

	f.process(t, "2025-03-03", "2025-03-03")

	rec := f.record(t, "E1", "2025-03-03")
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.NotNil(t, rec.CheckIn)
	assert.Nil(t, rec.CheckOut)
	assert.Zero(t, rec.TotalHours)
	assert.Zero(t, rec.OvertimeHours)
}

func TestProcessRangeAdjustmentExcuses(t *testing.T) {
	f := newFixture(officeEmployee("E1"))
	day, _ := calendar.ParseDate("2025-03-03")
	f.adjs.adjustments = []adjustment.Adjustment{{
		ID: "adj-1", EmployeeCode: "E1", Type: adjustment.TypeAnnual,
		StartDate: day, EndDate: day,
	}}

	f.process(t, "2025-03-03", "2025-03-03")

	rec := f.record(t, "E1", "2025-03-03")
	assert.Equal(t, attendance.StatusExcused, rec.Status)
	assert.Empty(t, rec.Penalties)
}

func TestProcessRangeCollectionSectorFriday(t *testing.T) {
	emp := officeEmployee("C1")
	emp.Sector = strPtr(collectionSector)
	f := newFixture(emp)

	// 2025-03-07 is a Friday
	f.process(t, "2025-03-07", "2025-03-07")

	rec := f.record(t, "C1", "2025-03-07")
	assert.True(t, rec.FridayCompLeave)
	assert.False(t, rec.FridayCompLeaveManual)
	assert.Equal(t, attendance.StatusExcused, rec.Status)
	assert.Empty(t, rec.Penalties)
}

func TestProcessRangeNonCollectionFridayNotFlagged(t *testing.T) {
	f := newFixture(officeEmployee("E1"))

	f.process(t, "2025-03-07", "2025-03-07")

	rec := f.record(t, "E1", "2025-03-07")
	assert.False(t, rec.FridayCompLeave)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
}

func TestProcessRangeCustomShiftPriority(t *testing.T) {
	f := newFixture(officeEmployee("E1"))
	start, _ := calendar.ParseDate("2025-03-01")
	end, _ := calendar.ParseDate("2025-03-31")
	f.rules.rules = []rule.SpecialRule{
		{
			ID: "r-low", Name: "early shift", RuleType: rule.TypeCustomShift,
			Scope: rule.ScopeAll, StartDate: start, EndDate: end, Priority: 5,
			Params: rule.Params{ShiftStart: "07:00", ShiftEnd: "15:00"},
		},
		{
			ID: "r-high", Name: "late shift", RuleType: rule.TypeCustomShift,
			Scope: rule.ScopeAll, StartDate: start, EndDate: end, Priority: 10,
			Params: rule.Params{ShiftStart: "11:00", ShiftEnd: "19:00"},
		},
	}
	// 11:10 local: late for the priority-5 shift, on time for priority-10
	f.punches.punches = []punch.BiometricPunch{
		localPunch("E1", "2025-03-03T11:10:00"),
		localPunch("E1", "2025-03-03T19:00:00"),
	}

	f.process(t, "2025-03-03", "2025-03-03")

	rec := f.record(t, "E1", "2025-03-03")
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Empty(t, rec.Penalties)
}

func TestProcessRangeOvernightRuleSetsFlag(t *testing.T) {
	f := newFixture(officeEmployee("E1"))
	start, _ := calendar.ParseDate("2025-03-01")
	end, _ := calendar.ParseDate("2025-03-31")
	f.rules.rules = []rule.SpecialRule{{
		ID: "r-night", Name: "night crew", RuleType: rule.TypeOvertimeOvernight,
		Scope: "emp:E1", StartDate: start, EndDate: end,
	}}

	f.process(t, "2025-03-03", "2025-03-03")

	rec := f.record(t, "E1", "2025-03-03")
	assert.True(t, rec.IsOvernight)
}

func TestProcessRangeManualOverrideSurvivesReprocessing(t *testing.T) {
	emp := officeEmployee("C1")
	emp.Sector = strPtr(collectionSector)
	f := newFixture(emp)

	f.process(t, "2025-03-07", "2025-03-07")
	rec := f.record(t, "C1", "2025-03-07")
	require.True(t, rec.FridayCompLeave)

	_, err := f.service.ToggleFridayCompLeave(context.Background(), attendance.ToggleFridayCompLeaveRequest{
		RecordID: rec.ID,
		Enabled:  false,
		Note:     strPtr("worked on site"),
	})
	require.NoError(t, err)

	// Reprocessing must not resurrect the automatic Friday flag.
	f.process(t, "2025-03-07", "2025-03-07")

	rec = f.record(t, "C1", "2025-03-07")
	assert.False(t, rec.FridayCompLeave)
	assert.True(t, rec.FridayCompLeaveManual)
	assert.Equal(t, "worked on site", *rec.FridayCompLeaveNote)
}

func TestProcessRangeKeepsNoteWithoutManualFlag(t *testing.T) {
	f := newFixture(officeEmployee("E1"))
	f.punches.punches = []punch.BiometricPunch{
		localPunch("E1", "2025-03-03T09:05:00"),
		localPunch("E1", "2025-03-03T17:30:00"),
	}

	// A note and author without the manual flag set, as older data may carry.
	_, err := f.attendance.Upsert(context.Background(), attendance.Record{
		EmployeeCode:             "E1",
		Date:                     "2025-03-03",
		Status:                   attendance.StatusPresent,
		Penalties:                []attendance.Penalty{},
		FridayCompLeaveNote:      strPtr("shift swapped"),
		FridayCompLeaveUpdatedBy: strPtr("hr-admin"),
	})
	require.NoError(t, err)

	f.process(t, "2025-03-03", "2025-03-03")

	rec := f.record(t, "E1", "2025-03-03")
	assert.False(t, rec.FridayCompLeaveManual)
	assert.Equal(t, "shift swapped", *rec.FridayCompLeaveNote)
	assert.Equal(t, "hr-admin", *rec.FridayCompLeaveUpdatedBy)
}

func TestProcessRangeIdempotent(t *testing.T) {
	f := newFixture(officeEmployee("E1"), officeEmployee("E2"))
	f.punches.punches = []punch.BiometricPunch{
		localPunch("E1", "2025-03-03T09:05:00"),
		localPunch("E1", "2025-03-03T17:30:00"),
		localPunch("E2", "2025-03-04T10:45:00"),
	}

	resp := f.process(t, "2025-03-03", "2025-03-05")
	assert.Equal(t, 6, resp.ProcessedCount)
	first := make(map[dayKey]attendance.Record, len(f.attendance.records))
	for key, rec := range f.attendance.records {
		first[key] = rec
	}

	f.process(t, "2025-03-03", "2025-03-05")

	assert.Equal(t, first, f.attendance.records)
}

func TestProcessRangeRejectsInvertedRange(t *testing.T) {
	f := newFixture(officeEmployee("E1"))

	_, err := f.service.ProcessRange(context.Background(), attendance.ProcessRequest{
		StartDate: "2025-03-10",
		EndDate:   "2025-03-01",
	})
	assert.Error(t, err)
}

func TestProcessRangeGroupsPunchesByLocalDay(t *testing.T) {
	f := newFixture(officeEmployee("E1"))
	// 01:30 local on the 4th is 22:30 UTC on the 3rd; it must land on the
	// 4th, not the 3rd.
	f.punches.punches = []punch.BiometricPunch{
		localPunch("E1", "2025-03-03T09:00:00"),
		localPunch("E1", "2025-03-03T17:00:00"),
		localPunch("E1", "2025-03-04T01:30:00"),
	}

	f.process(t, "2025-03-03", "2025-03-04")

	day3 := f.record(t, "E1", "2025-03-03")
	assert.Equal(t, 8.0, day3.TotalHours)
	day4 := f.record(t, "E1", "2025-03-04")
	require.NotNil(t, day4.CheckIn)
	assert.Nil(t, day4.CheckOut)
}

func TestToggleFridayCompLeaveRoundTrip(t *testing.T) {
	f := newFixture(officeEmployee("E1"))
	f.punches.punches = []punch.BiometricPunch{
		localPunch("E1", "2025-03-03T09:00:00"),
		localPunch("E1", "2025-03-03T17:00:00"),
	}
	f.process(t, "2025-03-03", "2025-03-03")
	rec := f.record(t, "E1", "2025-03-03")
	require.Equal(t, attendance.StatusPresent, rec.Status)

	enabled, err := f.service.ToggleFridayCompLeave(context.Background(), attendance.ToggleFridayCompLeaveRequest{
		RecordID:  rec.ID,
		Enabled:   true,
		UpdatedBy: strPtr("hr-admin"),
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusExcused, enabled.Status)
	assert.True(t, enabled.FridayCompLeave)
	assert.True(t, enabled.FridayCompLeaveManual)
	assert.Empty(t, enabled.Penalties)

	disabled, err := f.service.ToggleFridayCompLeave(context.Background(), attendance.ToggleFridayCompLeaveRequest{
		RecordID: rec.ID,
		Enabled:  false,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, disabled.Status)
	assert.False(t, disabled.FridayCompLeave)
	assert.True(t, disabled.FridayCompLeaveManual)
	assert.Equal(t, "hr-admin", *disabled.FridayCompLeaveUpdatedBy)
}

func TestToggleFridayCompLeaveDisableWithoutCheckIn(t *testing.T) {
	emp := officeEmployee("C1")
	emp.Sector = strPtr(collectionSector)
	f := newFixture(emp)
	f.process(t, "2025-03-07", "2025-03-07")
	rec := f.record(t, "C1", "2025-03-07")

	disabled, err := f.service.ToggleFridayCompLeave(context.Background(), attendance.ToggleFridayCompLeaveRequest{
		RecordID: rec.ID,
		Enabled:  false,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, disabled.Status)
	require.Len(t, disabled.Penalties, 1)
	assert.Equal(t, attendance.PenaltyAbsence, disabled.Penalties[0].Type)
}

func TestToggleFridayCompLeaveIdempotent(t *testing.T) {
	f := newFixture(officeEmployee("E1"))
	f.punches.punches = []punch.BiometricPunch{
		localPunch("E1", "2025-03-03T09:00:00"),
		localPunch("E1", "2025-03-03T17:00:00"),
	}
	f.process(t, "2025-03-03", "2025-03-03")
	rec := f.record(t, "E1", "2025-03-03")

	req := attendance.ToggleFridayCompLeaveRequest{RecordID: rec.ID, Enabled: true}
	first, err := f.service.ToggleFridayCompLeave(context.Background(), req)
	require.NoError(t, err)
	second, err := f.service.ToggleFridayCompLeave(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestToggleFridayCompLeaveUnknownRecord(t *testing.T) {
	f := newFixture(officeEmployee("E1"))

	_, err := f.service.ToggleFridayCompLeave(context.Background(), attendance.ToggleFridayCompLeaveRequest{
		RecordID: "missing",
		Enabled:  true,
	})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestResolveRulesDefaultsTo8HourShift(t *testing.T) {
	emp := officeEmployee("E1")
	emp.ShiftStart = strPtr("10:30")
	day, _ := calendar.ParseDate("2025-03-03")

	resolved := resolveRules(nil, emp, day, "09:00")

	assert.Equal(t, clockTime{Hour: 10, Minute: 30}, resolved.ShiftStart)
	assert.Equal(t, clockTime{Hour: 18, Minute: 30}, resolved.ShiftEnd)
	assert.False(t, resolved.Exempt)
	assert.False(t, resolved.Overnight)
}

func TestResolveRulesExemptFlag(t *testing.T) {
	emp := officeEmployee("E1")
	emp.Department = strPtr("IT")
	day, _ := calendar.ParseDate("2025-03-03")
	start, _ := calendar.ParseDate("2025-03-01")
	end, _ := calendar.ParseDate("2025-03-31")
	rules := []rule.SpecialRule{
		{ID: "r1", RuleType: rule.TypeAttendanceExempt, Scope: "dept:IT", StartDate: start, EndDate: end},
		{ID: "r2", RuleType: rule.TypeAttendanceExempt, Scope: "dept:Sales", StartDate: start, EndDate: end},
	}

	resolved := resolveRules(rules, emp, day, "09:00")
	assert.True(t, resolved.Exempt)

	emp.Department = strPtr("Finance")
	resolved = resolveRules(rules, emp, day, "09:00")
	assert.False(t, resolved.Exempt)
}

func TestResolveRulesOutsideDateRange(t *testing.T) {
	emp := officeEmployee("E1")
	day, _ := calendar.ParseDate("2025-04-01")
	start, _ := calendar.ParseDate("2025-03-01")
	end, _ := calendar.ParseDate("2025-03-31")
	rules := []rule.SpecialRule{
		{ID: "r1", RuleType: rule.TypeCustomShift, Scope: rule.ScopeAll, StartDate: start, EndDate: end,
			Params: rule.Params{ShiftStart: "06:00"}},
	}

	resolved := resolveRules(rules, emp, day, "09:00")
	assert.Equal(t, clockTime{Hour: 9}, resolved.ShiftStart)
}
