package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chime/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
// A schedule and its periods are written atomically in one transaction.
type SQLiteScheduleRepo struct {
	db *sql.DB
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(db *sql.DB) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

// dayTokenSeparator joins SelectedDays into a single column value.
const dayTokenSeparator = ","

func (r *SQLiteScheduleRepo) Create(ctx context.Context, s *domain.Schedule) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO schedules (id, name, selected_days, has_break, break_start, break_end, has_lunch, lunch_start, lunch_end, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		s.ID,
		s.Name,
		strings.Join(s.SelectedDays, dayTokenSeparator),
		boolToInt(s.HasBreak),
		nullableStr(s.BreakStartTime),
		nullableStr(s.BreakEndTime),
		boolToInt(s.HasLunch),
		nullableStr(s.LunchStartTime),
		nullableStr(s.LunchEndTime),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule: %w", err)
	}

	if err := insertPeriods(ctx, tx, s.ID, s.Periods); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schedule: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	query := scheduleColumns + ` WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	s, err := r.scanSchedule(row)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("schedule not found")
	}
	if err := r.loadPeriods(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetByName matches case-insensitively. Returns (nil, nil) when no
// schedule has that name, so callers can use it as an existence check.
func (r *SQLiteScheduleRepo) GetByName(ctx context.Context, name string) (*domain.Schedule, error) {
	query := scheduleColumns + ` WHERE name = ? COLLATE NOCASE`
	row := r.db.QueryRowContext(ctx, query, name)
	s, err := r.scanSchedule(row)
	if err != nil || s == nil {
		return nil, err
	}
	if err := r.loadPeriods(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteScheduleRepo) List(ctx context.Context) ([]*domain.Schedule, error) {
	query := scheduleColumns + ` ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*domain.Schedule
	for rows.Next() {
		s, err := r.scanScheduleFromRows(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedules: %w", err)
	}

	for _, s := range schedules {
		if err := r.loadPeriods(ctx, s); err != nil {
			return nil, err
		}
	}
	return schedules, nil
}

func (r *SQLiteScheduleRepo) Update(ctx context.Context, s *domain.Schedule) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE schedules SET name = ?, selected_days = ?, has_break = ?, break_start = ?, break_end = ?, has_lunch = ?, lunch_start = ?, lunch_end = ?, updated_at = ?
		WHERE id = ?`
	_, err = tx.ExecContext(ctx, query,
		s.Name,
		strings.Join(s.SelectedDays, dayTokenSeparator),
		boolToInt(s.HasBreak),
		nullableStr(s.BreakStartTime),
		nullableStr(s.BreakEndTime),
		boolToInt(s.HasLunch),
		nullableStr(s.LunchStartTime),
		nullableStr(s.LunchEndTime),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating schedule: %w", err)
	}

	// Periods are replaced wholesale; position is input order.
	if _, err := tx.ExecContext(ctx, `DELETE FROM periods WHERE schedule_id = ?`, s.ID); err != nil {
		return fmt.Errorf("clearing periods: %w", err)
	}
	if err := insertPeriods(ctx, tx, s.ID, s.Periods); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schedule update: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM schedules WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}
	return nil
}

const scheduleColumns = `SELECT id, name, selected_days, has_break, break_start, break_end, has_lunch, lunch_start, lunch_end, created_at, updated_at
	FROM schedules`

func insertPeriods(ctx context.Context, tx *sql.Tx, scheduleID string, periods []domain.Period) error {
	query := `INSERT INTO periods (schedule_id, position, label, start_time, end_time) VALUES (?, ?, ?, ?, ?)`
	for i, p := range periods {
		if _, err := tx.ExecContext(ctx, query, scheduleID, i, p.Label, p.StartTime, p.EndTime); err != nil {
			return fmt.Errorf("inserting period %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteScheduleRepo) loadPeriods(ctx context.Context, s *domain.Schedule) error {
	query := `SELECT label, start_time, end_time FROM periods WHERE schedule_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, s.ID)
	if err != nil {
		return fmt.Errorf("loading periods: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Period
		if err := rows.Scan(&p.Label, &p.StartTime, &p.EndTime); err != nil {
			return fmt.Errorf("scanning period: %w", err)
		}
		s.Periods = append(s.Periods, p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating periods: %w", err)
	}
	return nil
}

// scanSchedule scans a single schedule row from a *sql.Row.
// Returns (nil, nil) on sql.ErrNoRows.
func (r *SQLiteScheduleRepo) scanSchedule(row *sql.Row) (*domain.Schedule, error) {
	var s domain.Schedule
	var daysStr, createdAtStr, updatedAtStr string
	var hasBreak, hasLunch int
	var breakStart, breakEnd, lunchStart, lunchEnd sql.NullString

	err := row.Scan(
		&s.ID, &s.Name, &daysStr,
		&hasBreak, &breakStart, &breakEnd,
		&hasLunch, &lunchStart, &lunchEnd,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning schedule: %w", err)
	}
	return fillSchedule(&s, daysStr, hasBreak, hasLunch, breakStart, breakEnd, lunchStart, lunchEnd, createdAtStr, updatedAtStr)
}

// scanScheduleFromRows scans a single schedule row from *sql.Rows.
func (r *SQLiteScheduleRepo) scanScheduleFromRows(rows *sql.Rows) (*domain.Schedule, error) {
	var s domain.Schedule
	var daysStr, createdAtStr, updatedAtStr string
	var hasBreak, hasLunch int
	var breakStart, breakEnd, lunchStart, lunchEnd sql.NullString

	err := rows.Scan(
		&s.ID, &s.Name, &daysStr,
		&hasBreak, &breakStart, &breakEnd,
		&hasLunch, &lunchStart, &lunchEnd,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning schedule row: %w", err)
	}
	return fillSchedule(&s, daysStr, hasBreak, hasLunch, breakStart, breakEnd, lunchStart, lunchEnd, createdAtStr, updatedAtStr)
}

func fillSchedule(
	s *domain.Schedule,
	daysStr string,
	hasBreak, hasLunch int,
	breakStart, breakEnd, lunchStart, lunchEnd sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.Schedule, error) {
	if daysStr != "" {
		s.SelectedDays = strings.Split(daysStr, dayTokenSeparator)
	}
	s.HasBreak = intToBool(hasBreak)
	s.HasLunch = intToBool(hasLunch)
	s.BreakStartTime = breakStart.String
	s.BreakEndTime = breakEnd.String
	s.LunchStartTime = lunchStart.String
	s.LunchEndTime = lunchEnd.String

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return s, nil
}

// nullableStr converts an empty string to SQL NULL.
func nullableStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
