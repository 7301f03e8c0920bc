package settingsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"luckywheel/internal/domain"
	"luckywheel/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_GetSettings(t *testing.T) {
	repo, mock, _ := NewMock(t)

	limitRows := pgxmock.NewRows([]string{"daily_attempts"}).AddRow(5)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT daily_attempts FROM lottery_settings WHERE id = 1")).
		WillReturnRows(limitRows)

	prizeRows := pgxmock.NewRows([]string{"id", "name", "value", "probability"}).
		AddRow(1, "一等奖", 40, 0.05).
		AddRow(2, "二等奖", 30, 0.10).
		AddRow(3, "三等奖", 20, 0.15).
		AddRow(4, "四等奖", 10, 0.20).
		AddRow(0, "谢谢惠顾", 0, 0.50)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY position")).
		WillReturnRows(prizeRows)

	settings, err := repo.GetSettings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 5, settings.DailyAttempts)
	assert.Len(t, settings.Prizes, 5)
	assert.Equal(t, 1, settings.Prizes[0].ID)
	assert.Equal(t, 0, settings.Prizes[4].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateSettings(t *testing.T) {
	repo, mock, mockTxManager := NewMock(t)

	settings := &domain.LotterySettings{
		DailyAttempts: 3,
		Prizes: []domain.Prize{
			{ID: 1, Name: "一等奖", Value: 40, Probability: 0.5},
			{ID: 0, Name: "谢谢惠顾", Value: 0, Probability: 0.5},
		},
	}

	mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})

	mock.ExpectExec(regexp.QuoteMeta("UPDATE lottery_settings")).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM prizes")).
		WillReturnResult(pgxmock.NewResult("DELETE", 5))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO prizes")).
		WithArgs(0, 1, "一等奖", 40, 0.5).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO prizes")).
		WithArgs(1, 0, "谢谢惠顾", 0, 0.5).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.UpdateSettings(context.Background(), settings)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateSettingsError(t *testing.T) {
	repo, mock, mockTxManager := NewMock(t)

	mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})

	mock.ExpectExec(regexp.QuoteMeta("UPDATE lottery_settings")).
		WithArgs(3).
		WillReturnError(errors.New("database error"))

	err := repo.UpdateSettings(context.Background(), &domain.LotterySettings{DailyAttempts: 3})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
