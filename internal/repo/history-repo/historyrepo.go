package historyrepo

import (
	"context"

	"go.uber.org/zap"

	"luckywheel/internal/domain"
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

// Create appends one draw result. The history table is append-only: no
// update operation exists anywhere in the codebase.
func (r *Repository) Create(ctx context.Context, result *domain.DrawResult) error {
	query := `
        INSERT INTO draw_results (id, user_id, prize_id, prize_name, prize_value, code, created_at, verified)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		result.ID, result.UserID, result.PrizeID, result.PrizeName,
		result.PrizeValue, result.Code, result.Timestamp, result.Verified)
	if err != nil {
		zap.L().Error("can't save draw result", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.DrawResult, error) {
	query := `
        SELECT id, user_id, prize_id, prize_name, prize_value, code, created_at, verified
        FROM draw_results
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user draw results", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var results []domain.DrawResult
	for rows.Next() {
		var dr domain.DrawResult
		err := rows.Scan(&dr.ID, &dr.UserID, &dr.PrizeID, &dr.PrizeName, &dr.PrizeValue, &dr.Code, &dr.Timestamp, &dr.Verified)
		if err != nil {
			zap.L().Error("can't scan draw result row", zap.Error(err))
			return nil, err
		}
		results = append(results, dr)
	}
	return results, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.DrawResult, error) {
	query := `
        SELECT id, user_id, prize_id, prize_name, prize_value, code, created_at, verified
        FROM draw_results
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list draw results", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var results []domain.DrawResult
	for rows.Next() {
		var dr domain.DrawResult
		err := rows.Scan(&dr.ID, &dr.UserID, &dr.PrizeID, &dr.PrizeName, &dr.PrizeValue, &dr.Code, &dr.Timestamp, &dr.Verified)
		if err != nil {
			zap.L().Error("can't scan draw result row", zap.Error(err))
			return nil, err
		}
		results = append(results, dr)
	}
	return results, nil
}
