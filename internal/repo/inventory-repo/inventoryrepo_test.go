package inventoryrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Withdraw(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  string
	}{
		{
			name: "Code available",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"code"}).AddRow("CODE40A")
				mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM available_codes")).
					WithArgs(40).
					WillReturnRows(rows)
			},
			expected: "CODE40A",
		},
		{
			name: "Tier exhausted",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM available_codes")).
					WithArgs(40).
					WillReturnError(pgx.ErrNoRows)
			},
			expected: "",
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM available_codes")).
					WithArgs(40).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			code, err := repo.Withdraw(context.Background(), 40)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, code)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AddCodes(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		codes     []string
		mockSetup func()
		expectErr bool
		expected  int
	}{
		{
			name:  "Duplicates skipped",
			codes: []string{"AAA", "BBB", "AAA"},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO available_codes")).
					WithArgs(40, []string{"AAA", "BBB", "AAA"}).
					WillReturnResult(pgxmock.NewResult("INSERT", 2))
			},
			expected: 2,
		},
		{
			name:  "Database error",
			codes: []string{"AAA"},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO available_codes")).
					WithArgs(40, []string{"AAA"}).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			inserted, err := repo.AddCodes(context.Background(), 40, tt.codes)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, inserted)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AddCode(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO available_codes")).
		WithArgs(40, "NEWCODE").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	inserted, err := repo.AddCode(context.Background(), 40, "NEWCODE")
	assert.NoError(t, err)
	assert.True(t, inserted)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO available_codes")).
		WithArgs(40, "DUPE").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	inserted, err = repo.AddCode(context.Background(), 40, "DUPE")
	assert.NoError(t, err)
	assert.False(t, inserted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RemoveCode(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM available_codes")).
		WithArgs(40, "GONE").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	removed, err := repo.RemoveCode(context.Background(), 40, "GONE")
	assert.NoError(t, err)
	assert.True(t, removed)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM available_codes")).
		WithArgs(40, "MISSING").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	removed, err = repo.RemoveCode(context.Background(), 40, "MISSING")
	assert.NoError(t, err)
	assert.False(t, removed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountAvailable(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"count"}).AddRow(7)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*)")).
		WithArgs(40).
		WillReturnRows(rows)

	count, err := repo.CountAvailable(context.Background(), 40)
	assert.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListAvailable(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"value", "code"}).
		AddRow(10, "AAA").
		AddRow(10, "BBB").
		AddRow(40, "CCC")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value, code")).
		WillReturnRows(rows)

	available, err := repo.ListAvailable(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[int][]string{10: {"AAA", "BBB"}, 40: {"CCC"}}, available)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Stats(t *testing.T) {
	repo, mock := NewMock(t)

	// Single expectation: both tables must be read by one statement so the
	// counts share a snapshot. A second round trip would trip the mock.
	rows := pgxmock.NewRows([]string{"value", "count", "distributed"}).
		AddRow(40, 3, false).
		AddRow(10, 5, false).
		AddRow(0, 7, true)
	mock.ExpectQuery(regexp.QuoteMeta("UNION ALL")).
		WillReturnRows(rows)

	stats, err := repo.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[int]int{40: 3, 10: 5}, stats.Available)
	assert.Equal(t, 7, stats.Distributed)
	assert.Equal(t, 15, stats.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_StatsError(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("UNION ALL")).
		WillReturnError(errors.New("database error"))

	stats, err := repo.Stats(context.Background())
	assert.Error(t, err)
	assert.Nil(t, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}
