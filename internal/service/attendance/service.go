package attendance

import (
	"context"
	"fmt"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/adjustment"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/employee"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/punch"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/rule"
)

// Config carries the engine policy knobs that come from deployment
// configuration rather than data.
type Config struct {
	// CollectionSector is the sector whose employees default to Friday
	// compensatory leave
	CollectionSector string

	// DefaultShiftStart ("HH:MM") applies to employees without a shift of
	// their own
	DefaultShiftStart string
}

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	rule.RuleRepository
	adjustment.AdjustmentRepository
	punch.PunchRepository

	collectionSector  string
	defaultShiftStart string
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	ruleRepository rule.RuleRepository,
	adjustmentRepository adjustment.AdjustmentRepository,
	punchRepository punch.PunchRepository,
	cfg Config,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		RuleRepository:       ruleRepository,
		AdjustmentRepository: adjustmentRepository,
		PunchRepository:      punchRepository,
		collectionSector:     cfg.CollectionSector,
		defaultShiftStart:    cfg.DefaultShiftStart,
	}
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.Filter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.MapRecordToResponse(rec))
	}

	return attendance.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}

// ToggleFridayCompLeave implements attendance.AttendanceService. Setting the
// flag always marks the record as manually overridden, including when
// disabling, so reprocessing never resurrects the automatic default.
func (a *AttendanceServiceImpl) ToggleFridayCompLeave(ctx context.Context, req attendance.ToggleFridayCompLeaveRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := a.AttendanceRepository.GetByID(ctx, req.RecordID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to load record: %w", err)
	}

	wasExcused := rec.Status == attendance.StatusExcused

	rec.FridayCompLeave = req.Enabled
	rec.FridayCompLeaveManual = true
	if req.Note != nil {
		rec.FridayCompLeaveNote = req.Note
	}
	if req.UpdatedBy != nil {
		rec.FridayCompLeaveUpdatedBy = req.UpdatedBy
	}

	if req.Enabled {
		rec.Status = attendance.StatusExcused
		rec.Penalties = []attendance.Penalty{}
	} else if wasExcused {
		// Revert only records that were excused; anything else keeps its
		// computed status and penalties.
		if rec.CheckIn != nil {
			rec.Status = attendance.StatusPresent
			rec.Penalties = []attendance.Penalty{}
		} else {
			rec.Status = attendance.StatusAbsent
			rec.Penalties = []attendance.Penalty{{
				Type:  attendance.PenaltyAbsence,
				Value: 1,
			}}
		}
	}

	updated, err := a.AttendanceRepository.Update(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update record: %w", err)
	}

	return attendance.MapRecordToResponse(updated), nil
}
