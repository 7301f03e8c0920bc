package adminservice

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"luckywheel/internal/domain"
	"luckywheel/pkg/auth"
)

type InventoryRepo interface {
	AddCodes(ctx context.Context, value int, codes []string) (int, error)
	AddCode(ctx context.Context, value int, code string) (bool, error)
	RemoveCode(ctx context.Context, value int, code string) (bool, error)
	CountAvailable(ctx context.Context, value int) (int, error)
	ListAvailable(ctx context.Context) (map[int][]string, error)
	Stats(ctx context.Context) (*domain.InventoryStats, error)
}
type LedgerRepo interface {
	FindAll(ctx context.Context) ([]domain.RedemptionCode, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
type HistoryRepo interface {
	FindAll(ctx context.Context) ([]domain.DrawResult, error)
}
type SettingsRepo interface {
	GetSettings(ctx context.Context) (*domain.LotterySettings, error)
	UpdateSettings(ctx context.Context, settings *domain.LotterySettings) error
}
type BanRepo interface {
	Ban(ctx context.Context, ban *domain.BannedUser) error
	Unban(ctx context.Context, userID string) (bool, error)
	List(ctx context.Context) ([]domain.BannedUser, error)
}

type Service struct {
	inventoryRepo InventoryRepo
	ledgerRepo    LedgerRepo
	historyRepo   HistoryRepo
	settingsRepo  SettingsRepo
	banRepo       BanRepo

	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	passwordHash string
}

func New(
	inventoryRepo InventoryRepo,
	ledgerRepo LedgerRepo,
	historyRepo HistoryRepo,
	settingsRepo SettingsRepo,
	banRepo BanRepo,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
	passwordHash string,
) *Service {
	return &Service{
		inventoryRepo: inventoryRepo,
		ledgerRepo:    ledgerRepo,
		historyRepo:   historyRepo,
		settingsRepo:  settingsRepo,
		banRepo:       banRepo,
		hashService:   hashService,
		jwtService:    jwtService,
		passwordHash:  passwordHash,
	}
}

var (
	ErrInvalidTier          = errors.New("invalid prize tier")
	ErrNoCodes              = errors.New("no codes provided")
	ErrEmptyCode            = errors.New("code cannot be empty")
	ErrCodeExists           = errors.New("code already exists")
	ErrCodeNotFound         = errors.New("code not found")
	ErrRecordNotFound       = errors.New("record not found")
	ErrUserNotBanned        = errors.New("user is not banned")
	ErrEmptyUserID          = errors.New("user id cannot be empty")
	ErrInvalidProbabilities = errors.New("probabilities must sum to 1")
	ErrInvalidDailyLimit    = errors.New("daily attempts must be between 1 and 20")
	ErrEmptyCatalog         = errors.New("prize catalog cannot be empty")
	ErrInvalidPassword      = errors.New("invalid admin password")
)

const adminTokenTTL = 24 * time.Hour

// Login checks the operator password against the configured bcrypt hash and
// mints an admin bearer token.
func (s *Service) Login(ctx context.Context, password string) (string, error) {
	if s.passwordHash == "" || !s.hashService.ComparePassword(s.passwordHash, password) {
		return "", ErrInvalidPassword
	}
	token, err := s.jwtService.GenerateJWT("admin", true, time.Now().Add(adminTokenTTL))
	if err != nil {
		zap.L().Error("can't generate admin token", zap.Error(err))
		return "", err
	}
	return token, nil
}

const probabilityTolerance = 0.01

// validTier accepts only tiers that a prize in the live catalog can award.
func (s *Service) validTier(ctx context.Context, value int) error {
	if value <= 0 {
		return ErrInvalidTier
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return err
	}
	for _, prize := range settings.Prizes {
		if prize.Value == value {
			return nil
		}
	}
	return ErrInvalidTier
}

// ImportCodes bulk-appends codes to a tier. Blank entries are dropped,
// duplicates against existing stock are silently skipped, and the count of
// codes actually inserted is returned along with the tier's new total.
func (s *Service) ImportCodes(ctx context.Context, value int, codes []string) (int, int, error) {
	if err := s.validTier(ctx, value); err != nil {
		return 0, 0, err
	}

	valid := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code != "" {
			valid = append(valid, code)
		}
	}
	if len(valid) == 0 {
		return 0, 0, ErrNoCodes
	}

	imported, err := s.inventoryRepo.AddCodes(ctx, value, valid)
	if err != nil {
		zap.L().Error("failed to import codes", zap.Error(err))
		return 0, 0, err
	}

	total, err := s.inventoryRepo.CountAvailable(ctx, value)
	if err != nil {
		return 0, 0, err
	}

	zap.L().Info("codes imported", zap.Int("value", value), zap.Int("imported", imported))
	return imported, total, nil
}

// AddCode inserts a single code, rejecting duplicates with ErrCodeExists.
func (s *Service) AddCode(ctx context.Context, value int, code string) (int, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, ErrEmptyCode
	}
	if err := s.validTier(ctx, value); err != nil {
		return 0, err
	}

	inserted, err := s.inventoryRepo.AddCode(ctx, value, code)
	if err != nil {
		zap.L().Error("failed to add code", zap.Error(err))
		return 0, err
	}
	if !inserted {
		return 0, ErrCodeExists
	}

	return s.inventoryRepo.CountAvailable(ctx, value)
}

func (s *Service) DeleteAvailableCode(ctx context.Context, value int, code string) error {
	removed, err := s.inventoryRepo.RemoveCode(ctx, value, code)
	if err != nil {
		zap.L().Error("failed to delete code", zap.Error(err))
		return err
	}
	if !removed {
		return ErrCodeNotFound
	}
	return nil
}

// DeleteDistributed force-deletes one ledger entry by id, an inventory
// correction outside the steady-state append-only path.
func (s *Service) DeleteDistributed(ctx context.Context, id string) error {
	removed, err := s.ledgerRepo.DeleteByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete distributed record", zap.Error(err))
		return err
	}
	if !removed {
		return ErrRecordNotFound
	}
	return nil
}

func (s *Service) GetStats(ctx context.Context) (*domain.InventoryStats, error) {
	stats, err := s.inventoryRepo.Stats(ctx)
	if err != nil {
		zap.L().Error("failed to get inventory stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

func (s *Service) ListCodes(ctx context.Context) (map[int][]string, []domain.RedemptionCode, error) {
	available, err := s.inventoryRepo.ListAvailable(ctx)
	if err != nil {
		return nil, nil, err
	}
	distributed, err := s.ledgerRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return available, distributed, nil
}

func (s *Service) ListRecords(ctx context.Context) ([]domain.DrawResult, error) {
	results, err := s.historyRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to list draw records", zap.Error(err))
		return nil, err
	}
	return results, nil
}

func (s *Service) GetSettings(ctx context.Context) (*domain.LotterySettings, error) {
	return s.settingsRepo.GetSettings(ctx)
}

// UpdateSettings validates and persists a new catalog and daily limit.
// Validation failures reject the whole update, no partial mutation.
func (s *Service) UpdateSettings(ctx context.Context, settings *domain.LotterySettings) error {
	if settings.DailyAttempts < 1 || settings.DailyAttempts > 20 {
		return ErrInvalidDailyLimit
	}
	if len(settings.Prizes) == 0 {
		return ErrEmptyCatalog
	}

	var sum float64
	for _, prize := range settings.Prizes {
		if prize.Value < 0 || prize.Probability < 0 {
			return ErrInvalidProbabilities
		}
		sum += prize.Probability
	}
	if math.Abs(sum-1) > probabilityTolerance {
		return ErrInvalidProbabilities
	}

	if err := s.settingsRepo.UpdateSettings(ctx, settings); err != nil {
		zap.L().Error("failed to update settings", zap.Error(err))
		return err
	}
	zap.L().Info("lottery settings updated", zap.Int("daily_attempts", settings.DailyAttempts))
	return nil
}

func (s *Service) BanUser(ctx context.Context, userID, username, reason, bannedBy string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	ban := &domain.BannedUser{
		UserID:   userID,
		Username: username,
		Reason:   reason,
		BannedAt: time.Now().UTC(),
		BannedBy: bannedBy,
	}
	if err := s.banRepo.Ban(ctx, ban); err != nil {
		zap.L().Error("failed to ban user", zap.Error(err))
		return err
	}
	zap.L().Info("user banned", zap.String("user_id", userID), zap.String("banned_by", bannedBy))
	return nil
}

func (s *Service) UnbanUser(ctx context.Context, userID string) error {
	removed, err := s.banRepo.Unban(ctx, userID)
	if err != nil {
		zap.L().Error("failed to unban user", zap.Error(err))
		return err
	}
	if !removed {
		return ErrUserNotBanned
	}
	return nil
}

func (s *Service) ListBanned(ctx context.Context) ([]domain.BannedUser, error) {
	return s.banRepo.List(ctx)
}
