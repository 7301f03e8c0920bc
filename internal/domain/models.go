package domain

import "time"

// Prize is one catalog entry. ID 0 is the no-win sentinel; Value is the
// redemption tier (0 means no reward). Catalog order is significant: the
// wheel renders segments and the selector accumulates probability in the
// order rows are stored.
type Prize struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Value       int     `db:"value" json:"value"`
	Probability float64 `db:"probability" json:"probability"`
}

type AttemptRecord struct {
	UserID   string `db:"user_id"`
	Date     string `db:"date"`
	Attempts int    `db:"attempts"`
}

type RedemptionCode struct {
	ID        string    `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	Value     int       `db:"value" json:"value"`
	PrizeName string    `db:"prize_name" json:"prizeName"`
	UserID    string    `db:"user_id" json:"userId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	Used      bool      `db:"used" json:"used"`
}

type DrawResult struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"userId"`
	PrizeID    int       `db:"prize_id" json:"prizeId"`
	PrizeName  string    `db:"prize_name" json:"prizeName"`
	PrizeValue int       `db:"prize_value" json:"prizeValue"`
	Code       *string   `db:"code" json:"code"`
	Timestamp  time.Time `db:"created_at" json:"timestamp"`
	Verified   bool      `db:"verified" json:"verified"`
}

type LotterySettings struct {
	DailyAttempts int
	Prizes        []Prize
}

type BannedUser struct {
	UserID   string    `db:"user_id" json:"userId"`
	Username string    `db:"username" json:"username,omitempty"`
	Reason   string    `db:"reason" json:"reason"`
	BannedAt time.Time `db:"banned_at" json:"bannedAt"`
	BannedBy string    `db:"banned_by" json:"bannedBy"`
}

type InventoryStats struct {
	Available   map[int]int
	Distributed int
	Total       int
}
