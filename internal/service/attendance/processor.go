package attendance

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/adjustment"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/employee"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/punch"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/calendar"
)

// lateGraceMinutes is the threshold below which a late check-in still counts
// as Present. Strictly more than 15 minutes late earns a penalty.
const lateGraceMinutes = 15

// dayKey identifies one employee's reconciled day. A composite key rather
// than a concatenated string, so employee codes containing separators cannot
// collide.
type dayKey struct {
	EmployeeCode string
	Date         calendar.Date
}

// ProcessRange implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ProcessRange(ctx context.Context, req attendance.ProcessRequest) (attendance.ProcessResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ProcessResponse{}, err
	}

	start, err := calendar.ParseDate(req.StartDate)
	if err != nil {
		return attendance.ProcessResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := calendar.ParseDate(req.EndDate)
	if err != nil {
		return attendance.ProcessResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if end.Before(start) {
		return attendance.ProcessResponse{}, attendance.ErrInvalidDateRange
	}
	offset := req.TimezoneOffsetMinutes

	employees, err := a.EmployeeRepository.List(ctx)
	if err != nil {
		return attendance.ProcessResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	rules, err := a.RuleRepository.List(ctx)
	if err != nil {
		return attendance.ProcessResponse{}, fmt.Errorf("failed to list rules: %w", err)
	}
	adjustments, err := a.AdjustmentRepository.List(ctx)
	if err != nil {
		return attendance.ProcessResponse{}, fmt.Errorf("failed to list adjustments: %w", err)
	}

	punches, err := a.PunchRepository.ListBetween(ctx, start.StartUTC(offset), end.EndUTC(offset))
	if err != nil {
		return attendance.ProcessResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}
	punchesByDay := groupPunches(punches, offset)

	adjustmentsByEmployee := make(map[string][]adjustment.Adjustment)
	for _, adj := range adjustments {
		adjustmentsByEmployee[adj.EmployeeCode] = append(adjustmentsByEmployee[adj.EmployeeCode], adj)
	}

	// Re-read existing records just before evaluation so a concurrently
	// applied manual Friday override is respected.
	existingRecords, err := a.AttendanceRepository.GetRange(ctx, start.String(), end.String())
	if err != nil {
		return attendance.ProcessResponse{}, fmt.Errorf("failed to load existing records: %w", err)
	}
	existingByDay := make(map[dayKey]attendance.Record, len(existingRecords))
	for _, rec := range existingRecords {
		day, parseErr := calendar.ParseDate(rec.Date)
		if parseErr != nil {
			continue
		}
		existingByDay[dayKey{EmployeeCode: rec.EmployeeCode, Date: day}] = rec
	}

	processed := 0
	for _, emp := range employees {
		for day := start; !day.After(end); day = day.Next() {
			key := dayKey{EmployeeCode: emp.Code, Date: day}

			var existing *attendance.Record
			if prior, ok := existingByDay[key]; ok {
				existing = &prior
			}

			rec := evaluateDay(dayInput{
				Employee:      emp,
				Day:           day,
				Punches:       punchesByDay[key],
				Adjustment:    adjustment.ForDate(adjustmentsByEmployee[emp.Code], day),
				Rules:         resolveRules(rules, emp, day, a.defaultShiftStart),
				Existing:      existing,
				OffsetMinutes: offset,
			}, a.collectionSector)

			if _, err := a.AttendanceRepository.Upsert(ctx, rec); err != nil {
				return attendance.ProcessResponse{}, fmt.Errorf("failed to upsert record for %s on %s: %w", emp.Code, day, err)
			}
			processed++
		}
	}

	return attendance.ProcessResponse{ProcessedCount: processed}, nil
}

// groupPunches buckets punches by employee and the local calendar day their
// instant falls on, each bucket sorted ascending.
func groupPunches(punches []punch.BiometricPunch, offsetMinutes int) map[dayKey][]punch.BiometricPunch {
	grouped := make(map[dayKey][]punch.BiometricPunch)
	for _, p := range punches {
		key := dayKey{
			EmployeeCode: p.EmployeeCode,
			Date:         calendar.DateOfInstant(p.PunchAt, offsetMinutes),
		}
		grouped[key] = append(grouped[key], p)
	}
	for key := range grouped {
		bucket := grouped[key]
		sort.Slice(bucket, func(i, j int) bool {
			return bucket[i].PunchAt.Before(bucket[j].PunchAt)
		})
	}
	return grouped
}

type dayInput struct {
	Employee      employee.Employee
	Day           calendar.Date
	Punches       []punch.BiometricPunch
	Adjustment    *adjustment.Adjustment
	Rules         ResolvedRules
	Existing      *attendance.Record
	OffsetMinutes int
}

// evaluateDay reconciles one employee/day into a record. Pure: no I/O, no
// clock reads besides the inputs.
func evaluateDay(in dayInput, collectionSector string) attendance.Record {
	rec := attendance.Record{
		EmployeeCode: in.Employee.Code,
		Date:         in.Day.String(),
		IsOvernight:  in.Rules.Overnight,
		Penalties:    []attendance.Penalty{},
	}

	// First punch is the check-in; the last is the check-out only when more
	// than one exists.
	if len(in.Punches) > 0 {
		checkIn := in.Punches[0].PunchAt
		rec.CheckIn = &checkIn
		if len(in.Punches) > 1 {
			checkOut := in.Punches[len(in.Punches)-1].PunchAt
			rec.CheckOut = &checkOut
		}
	}

	// Friday compensatory leave: the note and author survive reprocessing
	// whenever present; a manual override additionally wins over the
	// automatic collection-sector Friday default.
	if in.Existing != nil {
		rec.FridayCompLeaveNote = in.Existing.FridayCompLeaveNote
		rec.FridayCompLeaveUpdatedBy = in.Existing.FridayCompLeaveUpdatedBy
	}
	if in.Existing != nil && in.Existing.FridayCompLeaveManual {
		rec.FridayCompLeave = in.Existing.FridayCompLeave
		rec.FridayCompLeaveManual = true
	} else if in.Day.IsFriday() && in.Employee.SectorName() == collectionSector {
		rec.FridayCompLeave = true
	}

	if rec.CheckIn != nil && rec.CheckOut != nil {
		rec.TotalHours = roundHours(rec.CheckOut.Sub(*rec.CheckIn))
	}
	rec.OvertimeHours = math.Max(0, roundTwo(rec.TotalHours-8))

	switch {
	case rec.FridayCompLeave, in.Adjustment != nil:
		rec.Status = attendance.StatusExcused
	case rec.CheckIn == nil:
		rec.Status = attendance.StatusAbsent
		rec.Penalties = append(rec.Penalties, attendance.Penalty{
			Type:  attendance.PenaltyAbsence,
			Value: 1,
		})
	default:
		expected := in.Day.At(in.Rules.ShiftStart.Hour, in.Rules.ShiftStart.Minute, in.OffsetMinutes)
		late := rec.CheckIn.Sub(expected)
		if late > lateGraceMinutes*time.Minute {
			rec.Status = attendance.StatusLate
			minutes := int(math.Ceil(late.Minutes()))
			rec.Penalties = append(rec.Penalties, attendance.Penalty{
				Type:    attendance.PenaltyLate,
				Value:   latePenaltyValue(minutes),
				Minutes: minutes,
			})
		} else {
			rec.Status = attendance.StatusPresent
		}
	}

	// A day marked as compensatory leave carries no penalties regardless of
	// how it scored.
	if rec.FridayCompLeave {
		rec.Penalties = []attendance.Penalty{}
	}

	return rec
}

// latePenaltyValue maps minutes late to the deduction in days.
func latePenaltyValue(minutes int) float64 {
	switch {
	case minutes > 60:
		return 1.0
	case minutes > 30:
		return 0.5
	default:
		return 0.25
	}
}

func roundHours(d time.Duration) float64 {
	return roundTwo(d.Hours())
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
