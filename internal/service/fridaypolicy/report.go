package fridaypolicy

import (
	"context"
	"fmt"
	"sort"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/adjustment"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/employee"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/fridaypolicy"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/calendar"
)

// creditBaseline shifts the credit formula so an employee meeting exactly
// the monthly minimum still earns one compensatory day.
const creditBaseline = 1

// recordKey identifies one employee's record day within the report window.
type recordKey struct {
	EmployeeCode string
	Date         calendar.Date
}

// BuildReport implements fridaypolicy.FridayPolicyService. Friday evidence
// is evaluated over the month before the report month; credit consumption
// over the report month itself. The ledger is derived on demand from
// attendance history, never stored.
func (f *FridayPolicyServiceImpl) BuildReport(ctx context.Context, req fridaypolicy.ReportRequest) (fridaypolicy.Report, error) {
	if err := req.Validate(); err != nil {
		return fridaypolicy.Report{}, err
	}

	month, err := calendar.ParseMonth(req.Month)
	if err != nil {
		return fridaypolicy.Report{}, fridaypolicy.ErrInvalidMonth
	}
	evidenceMonth := month.Prev()

	settings, err := f.SettingsRepository.Get(ctx)
	if err != nil {
		return fridaypolicy.Report{}, fmt.Errorf("failed to load friday policy settings: %w", err)
	}
	settings = settings.Normalized()

	report := fridaypolicy.Report{
		Month:         month.String(),
		EvidenceMonth: evidenceMonth.String(),
		Settings:      settings,
		Employees:     []fridaypolicy.EmployeeReport{},
	}

	// No included sectors means the policy applies to nobody.
	if len(settings.IncludedSectors) == 0 {
		return report, nil
	}

	employees, err := f.EmployeeRepository.List(ctx)
	if err != nil {
		return fridaypolicy.Report{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := f.AttendanceRepository.GetRange(ctx, evidenceMonth.First().String(), month.Last().String())
	if err != nil {
		return fridaypolicy.Report{}, fmt.Errorf("failed to load attendance history: %w", err)
	}
	recordsByDay := make(map[recordKey]attendance.Record, len(records))
	for _, rec := range records {
		day, parseErr := calendar.ParseDate(rec.Date)
		if parseErr != nil {
			continue
		}
		recordsByDay[recordKey{EmployeeCode: rec.EmployeeCode, Date: day}] = rec
	}

	adjustments, err := f.AdjustmentRepository.List(ctx)
	if err != nil {
		return fridaypolicy.Report{}, fmt.Errorf("failed to list adjustments: %w", err)
	}
	adjustmentsByEmployee := make(map[string][]adjustment.Adjustment)
	for _, adj := range adjustments {
		adjustmentsByEmployee[adj.EmployeeCode] = append(adjustmentsByEmployee[adj.EmployeeCode], adj)
	}

	for _, emp := range employees {
		if !settings.SectorIncluded(emp.SectorName()) {
			continue
		}
		report.Employees = append(report.Employees, f.buildEmployeeReport(
			emp, month, evidenceMonth, settings, recordsByDay, adjustmentsByEmployee[emp.Code],
		))
	}
	sort.Slice(report.Employees, func(i, j int) bool {
		return report.Employees[i].EmployeeCode < report.Employees[j].EmployeeCode
	})

	return report, nil
}

func (f *FridayPolicyServiceImpl) buildEmployeeReport(
	emp employee.Employee,
	month, evidenceMonth calendar.Month,
	settings fridaypolicy.Settings,
	recordsByDay map[recordKey]attendance.Record,
	adjustments []adjustment.Adjustment,
) fridaypolicy.EmployeeReport {
	out := fridaypolicy.EmployeeReport{
		EmployeeCode:  emp.Code,
		EmployeeName:  emp.Name,
		Sector:        emp.SectorName(),
		FridayDetails: []fridaypolicy.FridayDetail{},
		UsageDetails:  []fridaypolicy.UsageDetail{},
	}

	for _, friday := range evidenceMonth.Fridays() {
		var rec *attendance.Record
		if stored, ok := recordsByDay[recordKey{EmployeeCode: emp.Code, Date: friday}]; ok {
			rec = &stored
		}
		counted, reason := fridayEvidence(settings, rec, adjustment.ForDate(adjustments, friday))
		if counted {
			out.EligibleWorkedFridays++
		}
		out.FridayDetails = append(out.FridayDetails, fridaypolicy.FridayDetail{
			Date:    friday.String(),
			Counted: counted,
			Reason:  reason,
		})
	}

	out.CreditGranted = min(settings.MaxCreditPerMonth,
		max(0, out.EligibleWorkedFridays-settings.MonthlyMinimumFridaysRequired+creditBaseline))

	for _, dayNumber := range settings.AllowedOffDaysNextMonth {
		day, ok := month.Date(dayNumber)
		if !ok {
			continue
		}
		rec, ok := recordsByDay[recordKey{EmployeeCode: emp.Code, Date: day}]
		if !ok || !rec.FridayCompLeave {
			continue
		}
		out.UsedDaysCount++
		reason := "compensatory day off"
		if rec.FridayCompLeaveNote != nil && *rec.FridayCompLeaveNote != "" {
			reason = *rec.FridayCompLeaveNote
		}
		out.UsageDetails = append(out.UsageDetails, fridaypolicy.UsageDetail{
			Date:   day.String(),
			Action: "comp_leave_used",
			Reason: reason,
		})
	}

	out.RemainingCredit = max(0, out.CreditGranted-out.UsedDaysCount)
	out.TotalFridayPolicyDeductionDays = max(0, out.UsedDaysCount-out.CreditGranted)

	return out
}

// fridayEvidence decides whether one prior-month Friday counts as worked.
// Evidence kinds are checked in a fixed order so the reported reason is
// deterministic when several apply.
func fridayEvidence(settings fridaypolicy.Settings, rec *attendance.Record, adj *adjustment.Adjustment) (bool, string) {
	if settings.CountBiometricAsWorkedFriday && rec != nil && rec.CheckIn != nil {
		return true, "biometric punch recorded"
	}
	if adj != nil {
		switch adj.Type {
		case adjustment.TypeMission:
			if settings.CountMissionAsWorkedFriday {
				return true, "mission assignment"
			}
		case adjustment.TypePermission:
			if settings.CountPermissionOnlyAsWorkedFriday {
				return true, "permission granted"
			}
		default:
			if adj.IsLeave() && settings.CountLeaveAsWorkedFriday {
				return true, "approved leave"
			}
		}
		return false, "adjustment type not counted"
	}
	if settings.WeeklyRestFridayCounts {
		return true, "weekly rest day"
	}
	if settings.OfficialHolidayFridayCounts && rec != nil && rec.Status == attendance.StatusExcused {
		return true, "official holiday"
	}
	if rec == nil {
		return false, "no attendance evidence"
	}
	return false, "no qualifying evidence"
}
