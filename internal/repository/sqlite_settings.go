package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/chime/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
// Settings live in a single pinned row; Get returns defaults when the
// row has never been written.
type SQLiteSettingsRepo struct {
	db *sql.DB
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(db *sql.DB) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: db}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	var use24 int
	err := r.db.QueryRowContext(ctx, `SELECT use_24_hour FROM settings WHERE id = 1`).Scan(&use24)
	if err == sql.ErrNoRows {
		return &domain.Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return &domain.Settings{Use24HourClock: intToBool(use24)}, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `INSERT INTO settings (id, use_24_hour) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET use_24_hour = excluded.use_24_hour`
	if _, err := r.db.ExecContext(ctx, query, boolToInt(s.Use24HourClock)); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
