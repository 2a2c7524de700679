package punch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/punch"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/calendar"
)

type PunchServiceImpl struct {
	punch.PunchRepository
}

func NewPunchService(punchRepository punch.PunchRepository) punch.PunchService {
	return &PunchServiceImpl{PunchRepository: punchRepository}
}

// ImportPunches implements punch.PunchService. Wall-clock strings are
// converted to UTC instants here, the single ingestion boundary. Rows that
// fail conversion after validation are skipped rather than aborting the
// batch; import data quality problems must not lose the rest of the file.
func (p *PunchServiceImpl) ImportPunches(ctx context.Context, req punch.ImportPunchesRequest) (punch.ImportPunchesResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.ImportPunchesResponse{}, err
	}

	batch := make([]punch.BiometricPunch, 0, len(req.Punches))
	for _, in := range req.Punches {
		at, err := calendar.ParseLocalDateTime(in.PunchDatetime, req.TimezoneOffsetMinutes)
		if err != nil {
			slog.Warn("skipping unparseable punch",
				slog.String("employeeCode", in.EmployeeCode),
				slog.String("punchDatetime", in.PunchDatetime))
			continue
		}
		batch = append(batch, punch.BiometricPunch{
			EmployeeCode: in.EmployeeCode,
			PunchAt:      at,
		})
	}

	inserted, err := p.PunchRepository.CreateBulk(ctx, batch)
	if err != nil {
		return punch.ImportPunchesResponse{}, fmt.Errorf("failed to import punches: %w", err)
	}
	return punch.ImportPunchesResponse{Count: len(inserted)}, nil
}
