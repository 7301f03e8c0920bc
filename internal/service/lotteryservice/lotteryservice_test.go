package lotteryservice

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"

	"luckywheel/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockAttemptRepo, *MockInventoryRepo, *MockLedgerRepo, *MockHistoryRepo, *MockSettingsRepo, *MockBanRepo, *MockSelector) {
	ctrl := gomock.NewController(t)
	attemptRepo := NewMockAttemptRepo(ctrl)
	inventoryRepo := NewMockInventoryRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	historyRepo := NewMockHistoryRepo(ctrl)
	settingsRepo := NewMockSettingsRepo(ctrl)
	banRepo := NewMockBanRepo(ctrl)
	selector := NewMockSelector(ctrl)

	service := New(attemptRepo, inventoryRepo, ledgerRepo, historyRepo, settingsRepo, banRepo, selector)
	defer ctrl.Finish()
	return service, attemptRepo, inventoryRepo, ledgerRepo, historyRepo, settingsRepo, banRepo, selector
}

func testSettings() *domain.LotterySettings {
	return &domain.LotterySettings{
		DailyAttempts: 5,
		Prizes: []domain.Prize{
			{ID: 1, Name: "一等奖", Value: 40, Probability: 0.05},
			{ID: 2, Name: "二等奖", Value: 30, Probability: 0.10},
			{ID: 3, Name: "三等奖", Value: 20, Probability: 0.15},
			{ID: 4, Name: "四等奖", Value: 10, Probability: 0.20},
			{ID: 0, Name: "谢谢惠顾", Value: 0, Probability: 0.50},
		},
	}
}

func TestSpin(t *testing.T) {
	service, attemptRepo, inventoryRepo, ledgerRepo, historyRepo, settingsRepo, banRepo, selector := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  *string
		expectedLeft  int
		expectedError error
	}{
		{
			name: "Winning draw with issued code",
			prepareMock: func() {
				banRepo.EXPECT().IsBanned(ctx, "user-1").Return(false, nil)
				settingsRepo.EXPECT().GetSettings(ctx).Return(testSettings(), nil)
				attemptRepo.EXPECT().Increment(ctx, "user-1", gomock.Any(), 5).Return(1, true, nil)
				selector.EXPECT().Draw(gomock.Any()).Return(domain.Prize{ID: 1, Name: "一等奖", Value: 40, Probability: 0.05})
				inventoryRepo.EXPECT().Withdraw(ctx, 40).Return("CODE40A", nil)
				ledgerRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, rc *domain.RedemptionCode) error {
					assert.Equal(t, "CODE40A", rc.Code)
					assert.Equal(t, 40, rc.Value)
					assert.Equal(t, "user-1", rc.UserID)
					assert.False(t, rc.Used)
					return nil
				})
				historyRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, result *domain.DrawResult) error {
					assert.Equal(t, 1, result.PrizeID)
					assert.NotNil(t, result.Code)
					assert.True(t, result.Verified)
					return nil
				})
			},
			expectedCode: strPtr("CODE40A"),
			expectedLeft: 4,
		},
		{
			name: "Winning draw with synthesized code on empty inventory",
			prepareMock: func() {
				banRepo.EXPECT().IsBanned(ctx, "user-1").Return(false, nil)
				settingsRepo.EXPECT().GetSettings(ctx).Return(testSettings(), nil)
				attemptRepo.EXPECT().Increment(ctx, "user-1", gomock.Any(), 5).Return(2, true, nil)
				selector.EXPECT().Draw(gomock.Any()).Return(domain.Prize{ID: 4, Name: "四等奖", Value: 10, Probability: 0.20})
				inventoryRepo.EXPECT().Withdraw(ctx, 10).Return("", nil)
				ledgerRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, rc *domain.RedemptionCode) error {
					assert.Len(t, rc.Code, 12)
					return nil
				})
				historyRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			},
			expectedLeft: 3,
		},
		{
			name: "Losing draw issues no code",
			prepareMock: func() {
				banRepo.EXPECT().IsBanned(ctx, "user-1").Return(false, nil)
				settingsRepo.EXPECT().GetSettings(ctx).Return(testSettings(), nil)
				attemptRepo.EXPECT().Increment(ctx, "user-1", gomock.Any(), 5).Return(3, true, nil)
				selector.EXPECT().Draw(gomock.Any()).Return(domain.Prize{ID: 0, Name: "谢谢惠顾", Value: 0, Probability: 0.50})
				historyRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, result *domain.DrawResult) error {
					assert.Nil(t, result.Code)
					assert.Equal(t, 0, result.PrizeValue)
					return nil
				})
			},
			expectedCode: nil,
			expectedLeft: 2,
		},
		{
			name: "Banned user is rejected",
			prepareMock: func() {
				banRepo.EXPECT().IsBanned(ctx, "user-1").Return(true, nil)
			},
			expectedError: ErrBanned,
		},
		{
			name: "Quota exhausted writes no history",
			prepareMock: func() {
				banRepo.EXPECT().IsBanned(ctx, "user-1").Return(false, nil)
				settingsRepo.EXPECT().GetSettings(ctx).Return(testSettings(), nil)
				attemptRepo.EXPECT().Increment(ctx, "user-1", gomock.Any(), 5).Return(0, false, nil)
			},
			expectedError: ErrQuotaExhausted,
		},
		{
			name: "Empty catalog",
			prepareMock: func() {
				banRepo.EXPECT().IsBanned(ctx, "user-1").Return(false, nil)
				settingsRepo.EXPECT().GetSettings(ctx).Return(&domain.LotterySettings{DailyAttempts: 5}, nil)
			},
			expectedError: ErrEmptyCatalog,
		},
		{
			name: "Ledger failure fails the draw",
			prepareMock: func() {
				banRepo.EXPECT().IsBanned(ctx, "user-1").Return(false, nil)
				settingsRepo.EXPECT().GetSettings(ctx).Return(testSettings(), nil)
				attemptRepo.EXPECT().Increment(ctx, "user-1", gomock.Any(), 5).Return(1, true, nil)
				selector.EXPECT().Draw(gomock.Any()).Return(domain.Prize{ID: 2, Name: "二等奖", Value: 30, Probability: 0.10})
				inventoryRepo.EXPECT().Withdraw(ctx, 30).Return("CODE30A", nil)
				ledgerRepo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "History failure fails the draw",
			prepareMock: func() {
				banRepo.EXPECT().IsBanned(ctx, "user-1").Return(false, nil)
				settingsRepo.EXPECT().GetSettings(ctx).Return(testSettings(), nil)
				attemptRepo.EXPECT().Increment(ctx, "user-1", gomock.Any(), 5).Return(1, true, nil)
				selector.EXPECT().Draw(gomock.Any()).Return(domain.Prize{ID: 0, Name: "谢谢惠顾", Value: 0, Probability: 0.50})
				historyRepo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Ban check failure",
			prepareMock: func() {
				banRepo.EXPECT().IsBanned(ctx, "user-1").Return(false, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.Spin(ctx, "user-1")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedLeft, result.AttemptsLeft)
				if tt.expectedCode != nil {
					assert.Equal(t, *tt.expectedCode, *result.Code)
				}
			}
		})
	}
}

func TestSpinCountdown(t *testing.T) {
	service, attemptRepo, _, _, historyRepo, settingsRepo, banRepo, selector := NewMock(t)
	ctx := context.Background()

	losing := domain.Prize{ID: 0, Name: "谢谢惠顾", Value: 0, Probability: 0.50}
	banRepo.EXPECT().IsBanned(ctx, "user-1").Return(false, nil).Times(6)
	settingsRepo.EXPECT().GetSettings(ctx).Return(testSettings(), nil).Times(6)
	selector.EXPECT().Draw(gomock.Any()).Return(losing).Times(5)
	historyRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(5)

	for i := 1; i <= 5; i++ {
		attemptRepo.EXPECT().Increment(ctx, "user-1", gomock.Any(), 5).Return(i, true, nil)
	}
	attemptRepo.EXPECT().Increment(ctx, "user-1", gomock.Any(), 5).Return(0, false, nil)

	for want := 4; want >= 0; want-- {
		result, err := service.Spin(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, want, result.AttemptsLeft)
	}

	result, err := service.Spin(ctx, "user-1")
	assert.ErrorIs(t, err, ErrQuotaExhausted)
	assert.Nil(t, result)
}

// contendedAttemptRepo mimics the atomic check-and-increment under
// concurrent access.
type contendedAttemptRepo struct {
	mu       sync.Mutex
	attempts int
}

func (r *contendedAttemptRepo) GetAttempts(ctx context.Context, userID, date string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts, nil
}

func (r *contendedAttemptRepo) Increment(ctx context.Context, userID, date string, limit int) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.attempts >= limit {
		return 0, false, nil
	}
	r.attempts++
	return r.attempts, true, nil
}

func TestSpinConcurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attemptRepo := &contendedAttemptRepo{}
	inventoryRepo := NewMockInventoryRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	historyRepo := NewMockHistoryRepo(ctrl)
	settingsRepo := NewMockSettingsRepo(ctrl)
	banRepo := NewMockBanRepo(ctrl)
	selector := NewMockSelector(ctrl)

	banRepo.EXPECT().IsBanned(gomock.Any(), "user-1").Return(false, nil).AnyTimes()
	settingsRepo.EXPECT().GetSettings(gomock.Any()).Return(testSettings(), nil).AnyTimes()
	selector.EXPECT().Draw(gomock.Any()).Return(domain.Prize{ID: 0, Name: "谢谢惠顾", Value: 0, Probability: 0.50}).AnyTimes()
	historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(attemptRepo, inventoryRepo, ledgerRepo, historyRepo, settingsRepo, banRepo, selector)

	var successes, rejections int64
	var mu sync.Mutex
	g := new(errgroup.Group)
	for i := 0; i < 20; i++ {
		g.Go(func() error {
			_, err := service.Spin(context.Background(), "user-1")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrQuotaExhausted):
				rejections++
			default:
				return err
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())

	assert.EqualValues(t, 5, successes, "exactly the daily limit must succeed")
	assert.EqualValues(t, 15, rejections)
}

func TestGetAttemptsLeft(t *testing.T) {
	service, attemptRepo, _, _, _, settingsRepo, _, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedLeft  int
		expectedError error
	}{
		{
			name: "Fresh day",
			prepareMock: func() {
				settingsRepo.EXPECT().GetSettings(ctx).Return(testSettings(), nil)
				attemptRepo.EXPECT().GetAttempts(ctx, "user-1", gomock.Any()).Return(0, nil)
			},
			expectedLeft: 5,
		},
		{
			name: "Partially used",
			prepareMock: func() {
				settingsRepo.EXPECT().GetSettings(ctx).Return(testSettings(), nil)
				attemptRepo.EXPECT().GetAttempts(ctx, "user-1", gomock.Any()).Return(3, nil)
			},
			expectedLeft: 2,
		},
		{
			name: "Lowered limit clamps at zero",
			prepareMock: func() {
				settingsRepo.EXPECT().GetSettings(ctx).Return(&domain.LotterySettings{DailyAttempts: 2, Prizes: testSettings().Prizes}, nil)
				attemptRepo.EXPECT().GetAttempts(ctx, "user-1", gomock.Any()).Return(5, nil)
			},
			expectedLeft: 0,
		},
		{
			name: "Repo error",
			prepareMock: func() {
				settingsRepo.EXPECT().GetSettings(ctx).Return(testSettings(), nil)
				attemptRepo.EXPECT().GetAttempts(ctx, "user-1", gomock.Any()).Return(0, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			left, err := service.GetAttemptsLeft(ctx, "user-1")

			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedLeft, left)
			}
		})
	}
}

func TestGetPrizes(t *testing.T) {
	service, _, _, _, _, settingsRepo, _, _ := NewMock(t)
	ctx := context.Background()

	settings := testSettings()
	settingsRepo.EXPECT().GetSettings(ctx).Return(settings, nil)

	prizes, err := service.GetPrizes(ctx)

	assert.NoError(t, err)
	assert.Equal(t, settings.Prizes, prizes)
	// Canonical order is part of the contract.
	assert.Equal(t, 1, prizes[0].ID)
	assert.Equal(t, 0, prizes[len(prizes)-1].ID)
}

func TestGetHistory(t *testing.T) {
	service, _, _, _, historyRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	expected := []domain.DrawResult{
		{ID: "2_b", UserID: "user-1", PrizeID: 0},
		{ID: "1_a", UserID: "user-1", PrizeID: 1},
	}
	historyRepo.EXPECT().FindByUserID(ctx, "user-1").Return(expected, nil)

	results, err := service.GetHistory(ctx, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, expected, results)
}

func TestGetMyCodes(t *testing.T) {
	service, _, _, ledgerRepo, _, _, _, _ := NewMock(t)
	ctx := context.Background()

	expected := []domain.RedemptionCode{{ID: "1_a", Code: "CODE40A", Value: 40, UserID: "user-1"}}
	ledgerRepo.EXPECT().FindByUserID(ctx, "user-1").Return(expected, nil)

	codes, err := service.GetMyCodes(ctx, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, expected, codes)
}

func strPtr(s string) *string { return &s }
