package attemptrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"luckywheel/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetAttempts returns the number of draws the user consumed on the given
// date (UTC, formatted 2006-01-02). A missing row counts as zero.
func (r *Repository) GetAttempts(ctx context.Context, userID string, date string) (int, error) {
	query := `
        SELECT attempts
        FROM lottery_attempts
        WHERE user_id = $1 AND date = $2
    `
	var attempts int
	err := r.db.QueryRow(ctx, query, userID, date).Scan(&attempts)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		zap.L().Error("can't get attempts", zap.Error(err))
		return 0, err
	}
	return attempts, nil
}

// Increment atomically consumes one attempt for (userID, date) as long as
// the stored count is below limit. It returns the new count and whether the
// attempt was granted. The whole check-and-increment is a single statement,
// so concurrent spins by the same user can't lose updates or overshoot the
// limit.
func (r *Repository) Increment(ctx context.Context, userID string, date string, limit int) (int, bool, error) {
	query := `
        INSERT INTO lottery_attempts (user_id, date, attempts)
        VALUES ($1, $2, 1)
        ON CONFLICT (user_id, date) DO UPDATE
        SET attempts = lottery_attempts.attempts + 1
        WHERE lottery_attempts.attempts < $3
        RETURNING attempts
    `
	var attempts int
	err := r.db.QueryRow(ctx, query, userID, date, limit).Scan(&attempts)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		zap.L().Error("can't increment attempts", zap.Error(err))
		return 0, false, err
	}
	return attempts, true, nil
}
