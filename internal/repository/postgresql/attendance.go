package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const recordColumns = `
	id, employee_code, date, check_in, check_out, total_hours, overtime_hours,
	status, penalties, is_overnight,
	friday_comp_leave, friday_comp_leave_manual, friday_comp_leave_note, friday_comp_leave_updated_by,
	created_at, updated_at
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var (
		rec       attendance.Record
		penalties []byte
	)
	err := row.Scan(
		&rec.ID, &rec.EmployeeCode, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.TotalHours, &rec.OvertimeHours, &rec.Status, &penalties, &rec.IsOvernight,
		&rec.FridayCompLeave, &rec.FridayCompLeaveManual,
		&rec.FridayCompLeaveNote, &rec.FridayCompLeaveUpdatedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}
	if len(penalties) > 0 {
		if err := json.Unmarshal(penalties, &rec.Penalties); err != nil {
			return attendance.Record{}, fmt.Errorf("failed to decode penalties: %w", err)
		}
	}
	if rec.Penalties == nil {
		rec.Penalties = []attendance.Penalty{}
	}
	if rec.CheckIn != nil {
		utc := rec.CheckIn.UTC()
		rec.CheckIn = &utc
	}
	if rec.CheckOut != nil {
		utc := rec.CheckOut.UTC()
		rec.CheckOut = &utc
	}
	return rec, nil
}

// Upsert implements attendance.AttendanceRepository. The (employee_code,
// date) key makes reprocessing overwrite rather than duplicate.
func (a *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	penalties, err := json.Marshal(rec.Penalties)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to encode penalties: %w", err)
	}

	query := `
		INSERT INTO attendance_records (
			id, employee_code, date, check_in, check_out, total_hours, overtime_hours,
			status, penalties, is_overnight,
			friday_comp_leave, friday_comp_leave_manual, friday_comp_leave_note, friday_comp_leave_updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		ON CONFLICT (employee_code, date) DO UPDATE SET
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			total_hours = EXCLUDED.total_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			status = EXCLUDED.status,
			penalties = EXCLUDED.penalties,
			is_overnight = EXCLUDED.is_overnight,
			friday_comp_leave = EXCLUDED.friday_comp_leave,
			friday_comp_leave_manual = EXCLUDED.friday_comp_leave_manual,
			friday_comp_leave_note = EXCLUDED.friday_comp_leave_note,
			friday_comp_leave_updated_by = EXCLUDED.friday_comp_leave_updated_by,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		uuid.NewString(), rec.EmployeeCode, rec.Date, rec.CheckIn, rec.CheckOut,
		rec.TotalHours, rec.OvertimeHours, rec.Status, penalties, rec.IsOvernight,
		rec.FridayCompLeave, rec.FridayCompLeaveManual,
		rec.FridayCompLeaveNote, rec.FridayCompLeaveUpdatedBy,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}
	return rec, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + recordColumns + ` FROM attendance_records WHERE id = $1`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	penalties, err := json.Marshal(rec.Penalties)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to encode penalties: %w", err)
	}

	query := `
		UPDATE attendance_records SET
			status = $2,
			penalties = $3,
			friday_comp_leave = $4,
			friday_comp_leave_manual = $5,
			friday_comp_leave_note = $6,
			friday_comp_leave_updated_by = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err = q.QueryRow(ctx, query,
		rec.ID, rec.Status, penalties,
		rec.FridayCompLeave, rec.FridayCompLeaveManual,
		rec.FridayCompLeaveNote, rec.FridayCompLeaveUpdatedBy,
	).Scan(&rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return rec, nil
}

// GetRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetRange(ctx context.Context, startDate, endDate string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, employee_code
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// List implements attendance.AttendanceRepository. Joins employee names in
// for display and paginates.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	where := `WHERE r.date BETWEEN $1 AND $2`
	args := []interface{}{filter.StartDate, filter.EndDate}
	if filter.EmployeeCode != nil {
		where += ` AND r.employee_code = $3`
		args = append(args, *filter.EmployeeCode)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance_records r ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT
			r.id, r.employee_code, r.date, r.check_in, r.check_out, r.total_hours, r.overtime_hours,
			r.status, r.penalties, r.is_overnight,
			r.friday_comp_leave, r.friday_comp_leave_manual, r.friday_comp_leave_note, r.friday_comp_leave_updated_by,
			r.created_at, r.updated_at,
			e.name
		FROM attendance_records r
		LEFT JOIN employees e ON e.code = r.employee_code
		%s
		ORDER BY r.date, r.employee_code
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var (
			rec       attendance.Record
			penalties []byte
		)
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeCode, &rec.Date, &rec.CheckIn, &rec.CheckOut,
			&rec.TotalHours, &rec.OvertimeHours, &rec.Status, &penalties, &rec.IsOvernight,
			&rec.FridayCompLeave, &rec.FridayCompLeaveManual,
			&rec.FridayCompLeaveNote, &rec.FridayCompLeaveUpdatedBy,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		if len(penalties) > 0 {
			if err := json.Unmarshal(penalties, &rec.Penalties); err != nil {
				return nil, 0, fmt.Errorf("failed to decode penalties: %w", err)
			}
		}
		if rec.Penalties == nil {
			rec.Penalties = []attendance.Penalty{}
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}
