package banrepo

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

func (r *Repository) IsBanned(ctx context.Context, userID string) (bool, error) {
	query := `
        SELECT EXISTS (SELECT 1 FROM banned_users WHERE user_id = $1)
    `
	var banned bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&banned); err != nil {
		zap.L().Error("can't check ban status", zap.Error(err))
		return false, err
	}
	return banned, nil
}

func (r *Repository) Ban(ctx context.Context, ban *domain.BannedUser) error {
	query := `
        INSERT INTO banned_users (user_id, username, reason, banned_at, banned_by)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id) DO UPDATE
        SET username = $2, reason = $3, banned_at = $4, banned_by = $5
    `
	_, err := r.db.Exec(ctx, query, ban.UserID, ban.Username, ban.Reason, ban.BannedAt, ban.BannedBy)
	if err != nil {
		zap.L().Error("can't ban user", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Unban(ctx context.Context, userID string) (bool, error) {
	query := `
        DELETE FROM banned_users
        WHERE user_id = $1
    `
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't unban user", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.BannedUser, error) {
	query := `
        SELECT user_id, username, reason, banned_at, banned_by
        FROM banned_users
        ORDER BY banned_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list banned users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bans []domain.BannedUser
	for rows.Next() {
		var ban domain.BannedUser
		err := rows.Scan(&ban.UserID, &ban.Username, &ban.Reason, &ban.BannedAt, &ban.BannedBy)
		if err != nil {
			zap.L().Error("can't scan banned user row", zap.Error(err))
			return nil, err
		}
		bans = append(bans, ban)
	}
	return bans, nil
}
