package settingsrepo

import (
	"context"

	"go.uber.org/zap"

	"luckywheel/internal/domain"
	"luckywheel/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// GetSettings returns the daily attempt limit and the prize catalog in its
// canonical order. Position defines the cumulative-scan order and the wheel
// segment each prize maps to, so rows are always read sorted by it.
func (r *Repository) GetSettings(ctx context.Context) (*domain.LotterySettings, error) {
	settings := &domain.LotterySettings{}

	row := r.db.QueryRow(ctx, `SELECT daily_attempts FROM lottery_settings WHERE id = 1`)
	if err := row.Scan(&settings.DailyAttempts); err != nil {
		zap.L().Error("can't get lottery settings", zap.Error(err))
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
        SELECT id, name, value, probability
        FROM prizes
        ORDER BY position
    `)
	if err != nil {
		zap.L().Error("can't get prize catalog", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var prize domain.Prize
		if err := rows.Scan(&prize.ID, &prize.Name, &prize.Value, &prize.Probability); err != nil {
			zap.L().Error("can't scan prize row", zap.Error(err))
			return nil, err
		}
		settings.Prizes = append(settings.Prizes, prize)
	}
	return settings, nil
}

// UpdateSettings replaces the catalog and the daily limit in one
// transaction, so a failed update leaves no partial mutation behind.
func (r *Repository) UpdateSettings(ctx context.Context, settings *domain.LotterySettings) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, `
            UPDATE lottery_settings
            SET daily_attempts = $1, updated_at = now()
            WHERE id = 1
        `, settings.DailyAttempts)
		if err != nil {
			zap.L().Error("can't update lottery settings", zap.Error(err))
			return err
		}

		if _, err := r.db.Exec(ctx, `DELETE FROM prizes`); err != nil {
			zap.L().Error("can't clear prize catalog", zap.Error(err))
			return err
		}

		for position, prize := range settings.Prizes {
			_, err := r.db.Exec(ctx, `
                INSERT INTO prizes (position, id, name, value, probability)
                VALUES ($1, $2, $3, $4, $5)
            `, position, prize.ID, prize.Name, prize.Value, prize.Probability)
			if err != nil {
				zap.L().Error("can't insert prize", zap.Error(err))
				return err
			}
		}
		return nil
	})
}
