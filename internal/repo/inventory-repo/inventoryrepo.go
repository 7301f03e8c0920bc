package inventoryrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

// Withdraw removes and returns the oldest unissued code for the tier, or ""
// when the tier's queue is empty. SKIP LOCKED makes concurrent withdrawals
// from the same tier claim distinct rows, so a code is issued at most once.
func (r *Repository) Withdraw(ctx context.Context, value int) (string, error) {
	query := `
        DELETE FROM available_codes
        WHERE id = (
            SELECT id FROM available_codes
            WHERE value = $1
            ORDER BY id
            FOR UPDATE SKIP LOCKED
            LIMIT 1
        )
        RETURNING code
    `
	var code string
	err := r.db.QueryRow(ctx, query, value).Scan(&code)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		zap.L().Error("can't withdraw code", zap.Error(err))
		return "", err
	}
	return code, nil
}

// AddCodes appends codes to the tier's queue, silently dropping entries that
// already exist there, and returns how many were actually inserted.
func (r *Repository) AddCodes(ctx context.Context, value int, codes []string) (int, error) {
	query := `
        INSERT INTO available_codes (value, code)
        SELECT $1, unnest($2::text[])
        ON CONFLICT (value, code) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, value, codes)
	if err != nil {
		zap.L().Error("can't import codes", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// AddCode inserts a single code and reports whether it was new. A false
// result with nil error means the code already exists in that tier.
func (r *Repository) AddCode(ctx context.Context, value int, code string) (bool, error) {
	query := `
        INSERT INTO available_codes (value, code)
        VALUES ($1, $2)
        ON CONFLICT (value, code) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, value, code)
	if err != nil {
		zap.L().Error("can't add code", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveCode deletes one matching unissued code; false if absent.
func (r *Repository) RemoveCode(ctx context.Context, value int, code string) (bool, error) {
	query := `
        DELETE FROM available_codes
        WHERE value = $1 AND code = $2
    `
	tag, err := r.db.Exec(ctx, query, value, code)
	if err != nil {
		zap.L().Error("can't remove code", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CountAvailable returns the queue length for one tier.
func (r *Repository) CountAvailable(ctx context.Context, value int) (int, error) {
	query := `
        SELECT count(*)
        FROM available_codes
        WHERE value = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, value).Scan(&count); err != nil {
		zap.L().Error("can't count available codes", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// ListAvailable returns the full inventory keyed by tier, each queue in FIFO
// order.
func (r *Repository) ListAvailable(ctx context.Context) (map[int][]string, error) {
	query := `
        SELECT value, code
        FROM available_codes
        ORDER BY value, id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list available codes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	available := make(map[int][]string)
	for rows.Next() {
		var value int
		var code string
		if err := rows.Scan(&value, &code); err != nil {
			zap.L().Error("can't scan available code row", zap.Error(err))
			return nil, err
		}
		available[value] = append(available[value], code)
	}
	return available, nil
}

// Stats aggregates available counts per tier plus the distributed total.
// Both tables are read by one statement, so the counts come from a single
// snapshot and a code mid-withdrawal is never counted twice.
func (r *Repository) Stats(ctx context.Context) (*domain.InventoryStats, error) {
	query := `
        SELECT value, count(*)::int, false
        FROM available_codes
        GROUP BY value
        UNION ALL
        SELECT 0, count(*)::int, true
        FROM distributed_codes
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't query inventory stats", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	stats := &domain.InventoryStats{
		Available: make(map[int]int),
	}
	availableTotal := 0
	for rows.Next() {
		var value, count int
		var distributed bool
		if err := rows.Scan(&value, &count, &distributed); err != nil {
			zap.L().Error("can't scan stats row", zap.Error(err))
			return nil, err
		}
		if distributed {
			stats.Distributed = count
			continue
		}
		stats.Available[value] = count
		availableTotal += count
	}

	stats.Total = availableTotal + stats.Distributed
	return stats, nil
}
