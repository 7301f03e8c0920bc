package lotteryservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"luckywheel/internal/domain"
	"luckywheel/pkg/codegen"
)

type AttemptRepo interface {
	GetAttempts(ctx context.Context, userID string, date string) (int, error)
	Increment(ctx context.Context, userID string, date string, limit int) (int, bool, error)
}
type InventoryRepo interface {
	Withdraw(ctx context.Context, value int) (string, error)
}
type LedgerRepo interface {
	Create(ctx context.Context, rc *domain.RedemptionCode) error
	FindByUserID(ctx context.Context, userID string) ([]domain.RedemptionCode, error)
}
type HistoryRepo interface {
	Create(ctx context.Context, result *domain.DrawResult) error
	FindByUserID(ctx context.Context, userID string) ([]domain.DrawResult, error)
}
type SettingsRepo interface {
	GetSettings(ctx context.Context) (*domain.LotterySettings, error)
}
type BanRepo interface {
	IsBanned(ctx context.Context, userID string) (bool, error)
}

// Selector draws one weighted-random prize from an ordered catalog.
type Selector interface {
	Draw(catalog []domain.Prize) domain.Prize
}

type Service struct {
	attemptRepo   AttemptRepo
	inventoryRepo InventoryRepo
	ledgerRepo    LedgerRepo
	historyRepo   HistoryRepo
	settingsRepo  SettingsRepo
	banRepo       BanRepo
	selector      Selector
}

func New(
	attemptRepo AttemptRepo,
	inventoryRepo InventoryRepo,
	ledgerRepo LedgerRepo,
	historyRepo HistoryRepo,
	settingsRepo SettingsRepo,
	banRepo BanRepo,
	selector Selector,
) *Service {
	return &Service{
		attemptRepo:   attemptRepo,
		inventoryRepo: inventoryRepo,
		ledgerRepo:    ledgerRepo,
		historyRepo:   historyRepo,
		settingsRepo:  settingsRepo,
		banRepo:       banRepo,
		selector:      selector,
	}
}

var (
	ErrQuotaExhausted = errors.New("daily attempts exhausted")
	ErrBanned         = errors.New("banned")
	ErrEmptyCatalog   = errors.New("prize catalog is empty")
)

// Day boundaries follow the UTC calendar date.
const dateLayout = "2006-01-02"

func today() string {
	return time.Now().UTC().Format(dateLayout)
}

func newRecordID() string {
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

type SpinResult struct {
	Prize        domain.Prize
	Code         *string
	AttemptsLeft int
}

// Spin runs one draw attempt for the user: ban gate, attempt
// check-and-increment, weighted draw, code withdrawal (or synthesis on
// inventory exhaustion), ledger append, history append. A quota rejection
// mutates nothing and writes no history row. Once the attempt is
// incremented, later persistence failures fail the draw without rolling the
// consumed attempt back.
func (s *Service) Spin(ctx context.Context, userID string) (*SpinResult, error) {
	banned, err := s.banRepo.IsBanned(ctx, userID)
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, ErrBanned
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if len(settings.Prizes) == 0 {
		return nil, ErrEmptyCatalog
	}

	attempts, allowed, err := s.attemptRepo.Increment(ctx, userID, today(), settings.DailyAttempts)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrQuotaExhausted
	}

	prize := s.selector.Draw(settings.Prizes)

	var codePtr *string
	if prize.Value > 0 {
		code, err := s.inventoryRepo.Withdraw(ctx, prize.Value)
		if err != nil {
			return nil, err
		}
		if code == "" {
			code, err = codegen.Generate()
			if err != nil {
				return nil, err
			}
			zap.L().Info("inventory exhausted, synthesized code",
				zap.Int("value", prize.Value), zap.String("user_id", userID))
		}

		rc := &domain.RedemptionCode{
			ID:        newRecordID(),
			Code:      code,
			Value:     prize.Value,
			PrizeName: prize.Name,
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
			Used:      false,
		}
		if err := s.ledgerRepo.Create(ctx, rc); err != nil {
			return nil, err
		}
		codePtr = &code
	}

	result := &domain.DrawResult{
		ID:         newRecordID(),
		UserID:     userID,
		PrizeID:    prize.ID,
		PrizeName:  prize.Name,
		PrizeValue: prize.Value,
		Code:       codePtr,
		Timestamp:  time.Now().UTC(),
		Verified:   true,
	}
	if err := s.historyRepo.Create(ctx, result); err != nil {
		return nil, err
	}

	return &SpinResult{
		Prize:        prize,
		Code:         codePtr,
		AttemptsLeft: settings.DailyAttempts - attempts,
	}, nil
}

// GetAttemptsLeft reports the remaining quota without consuming an attempt.
func (s *Service) GetAttemptsLeft(ctx context.Context, userID string) (int, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return 0, err
	}
	attempts, err := s.attemptRepo.GetAttempts(ctx, userID, today())
	if err != nil {
		return 0, err
	}
	left := settings.DailyAttempts - attempts
	if left < 0 {
		left = 0
	}
	return left, nil
}

// GetPrizes returns the active catalog in its canonical order. Clients must
// render segments in this exact order.
func (s *Service) GetPrizes(ctx context.Context) ([]domain.Prize, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return settings.Prizes, nil
}

func (s *Service) GetHistory(ctx context.Context, userID string) ([]domain.DrawResult, error) {
	results, err := s.historyRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get draw history", zap.Error(err))
		return nil, err
	}
	return results, nil
}

func (s *Service) GetMyCodes(ctx context.Context, userID string) ([]domain.RedemptionCode, error) {
	codes, err := s.ledgerRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user codes", zap.Error(err))
		return nil, err
	}
	return codes, nil
}
