package ledgerrepo

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

func (r *Repository) Create(ctx context.Context, rc *domain.RedemptionCode) error {
	query := `
        INSERT INTO distributed_codes (id, code, value, prize_name, user_id, created_at, used)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query, rc.ID, rc.Code, rc.Value, rc.PrizeName, rc.UserID, rc.CreatedAt, rc.Used)
	if err != nil {
		zap.L().Error("can't save redemption code", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.RedemptionCode, error) {
	query := `
        SELECT id, code, value, prize_name, user_id, created_at, used
        FROM distributed_codes
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user redemption codes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var codes []domain.RedemptionCode
	for rows.Next() {
		var rc domain.RedemptionCode
		err := rows.Scan(&rc.ID, &rc.Code, &rc.Value, &rc.PrizeName, &rc.UserID, &rc.CreatedAt, &rc.Used)
		if err != nil {
			zap.L().Error("can't scan redemption code row", zap.Error(err))
			return nil, err
		}
		codes = append(codes, rc)
	}
	return codes, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.RedemptionCode, error) {
	query := `
        SELECT id, code, value, prize_name, user_id, created_at, used
        FROM distributed_codes
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list redemption codes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var codes []domain.RedemptionCode
	for rows.Next() {
		var rc domain.RedemptionCode
		err := rows.Scan(&rc.ID, &rc.Code, &rc.Value, &rc.PrizeName, &rc.UserID, &rc.CreatedAt, &rc.Used)
		if err != nil {
			zap.L().Error("can't scan redemption code row", zap.Error(err))
			return nil, err
		}
		codes = append(codes, rc)
	}
	return codes, nil
}

// DeleteByID is an admin-only inventory correction; the draw path never
// deletes ledger entries.
func (r *Repository) DeleteByID(ctx context.Context, id string) (bool, error) {
	query := `
        DELETE FROM distributed_codes
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete redemption code", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
