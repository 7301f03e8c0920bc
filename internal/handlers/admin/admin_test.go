package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"luckywheel/internal/domain"
	"luckywheel/internal/dto"
	"luckywheel/internal/service/adminservice"
	"luckywheel/pkg/auth"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func jsonRequest(method, target string, body any) *http.Request {
	buf, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         any
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Valid password",
			body: dto.AdminLoginRequestDTO{Password: "secret"},
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), "secret").Return("admin-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Wrong password",
			body: dto.AdminLoginRequestDTO{Password: "wrong"},
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), "wrong").Return("", adminservice.ErrInvalidPassword)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := jsonRequest(http.MethodPost, "/api/admin/login", tt.body)
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.AdminLoginResponseDTO
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "admin-token", resp.Token)
			}
		})
	}
}

func TestImportCodesHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         any
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful import",
			body: dto.ImportCodesRequestDTO{Value: 40, Codes: []string{"AAA", "BBB", "AAA"}},
			prepareMock: func() {
				service.EXPECT().ImportCodes(gomock.Any(), 40, []string{"AAA", "BBB", "AAA"}).Return(2, 10, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Empty codes array",
			body:         dto.ImportCodesRequestDTO{Value: 40},
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown tier",
			body: dto.ImportCodesRequestDTO{Value: 25, Codes: []string{"AAA"}},
			prepareMock: func() {
				service.EXPECT().ImportCodes(gomock.Any(), 25, []string{"AAA"}).Return(0, 0, adminservice.ErrInvalidTier)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service failure",
			body: dto.ImportCodesRequestDTO{Value: 40, Codes: []string{"AAA"}},
			prepareMock: func() {
				service.EXPECT().ImportCodes(gomock.Any(), 40, []string{"AAA"}).Return(0, 0, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := jsonRequest(http.MethodPost, "/api/admin/codes/import", tt.body)
			rr := httptest.NewRecorder()

			handler.ImportCodes(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.ImportCodesResponseDTO
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, 2, resp.Imported)
				assert.Equal(t, 10, resp.Total)
			}
		})
	}
}

func TestAddCodeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         any
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "New code added",
			body: dto.AddCodeRequestDTO{Value: 40, Code: "NEWCODE"},
			prepareMock: func() {
				service.EXPECT().AddCode(gomock.Any(), 40, "NEWCODE").Return(11, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Duplicate code",
			body: dto.AddCodeRequestDTO{Value: 40, Code: "DUPE"},
			prepareMock: func() {
				service.EXPECT().AddCode(gomock.Any(), 40, "DUPE").Return(0, adminservice.ErrCodeExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Empty code",
			body: dto.AddCodeRequestDTO{Value: 40},
			prepareMock: func() {
				service.EXPECT().AddCode(gomock.Any(), 40, "").Return(0, adminservice.ErrEmptyCode)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := jsonRequest(http.MethodPost, "/api/admin/codes/add", tt.body)
			rr := httptest.NewRecorder()

			handler.AddCode(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteCodeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         any
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Delete available code",
			body: dto.DeleteCodeRequestDTO{Scope: "available", Value: 40, Code: "GONE"},
			prepareMock: func() {
				service.EXPECT().DeleteAvailableCode(gomock.Any(), 40, "GONE").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Delete distributed record",
			body: dto.DeleteCodeRequestDTO{Scope: "distributed", ID: "1_a"},
			prepareMock: func() {
				service.EXPECT().DeleteDistributed(gomock.Any(), "1_a").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Available code not found",
			body: dto.DeleteCodeRequestDTO{Scope: "available", Value: 40, Code: "MISSING"},
			prepareMock: func() {
				service.EXPECT().DeleteAvailableCode(gomock.Any(), 40, "MISSING").Return(adminservice.ErrCodeNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Unknown scope",
			body:         dto.DeleteCodeRequestDTO{Scope: "bogus"},
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing code for available scope",
			body:         dto.DeleteCodeRequestDTO{Scope: "available", Value: 40},
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing id for distributed scope",
			body:         dto.DeleteCodeRequestDTO{Scope: "distributed"},
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := jsonRequest(http.MethodPost, "/api/admin/codes/delete", tt.body)
			rr := httptest.NewRecorder()

			handler.DeleteCode(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetCodesHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now().UTC()

	service.EXPECT().ListCodes(gomock.Any()).Return(
		map[int][]string{40: {"AAA"}, 10: {"BBB"}},
		[]domain.RedemptionCode{{ID: "1_a", Code: "CCC", Value: 20, UserID: "user-1", CreatedAt: now}},
		nil,
	)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/codes", nil)
	rr := httptest.NewRecorder()

	handler.GetCodes(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.CodesListResponseDTO
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{"AAA"}, resp.Available["40"])
	assert.Len(t, resp.Distributed, 1)
}

func TestGetStatsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetStats(gomock.Any()).Return(&domain.InventoryStats{
		Available:   map[int]int{40: 3},
		Distributed: 7,
		Total:       10,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/codes/stats", nil)
	rr := httptest.NewRecorder()

	handler.GetStats(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.StatsResponseDTO
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Available["40"])
	assert.Equal(t, 7, resp.Distributed)
	assert.Equal(t, 10, resp.Total)
}

func TestUpdateSettingsHandler(t *testing.T) {
	handler, service := NewMock(t)

	validBody := dto.SettingsDTO{
		DailyAttempts: 5,
		Prizes: []dto.CatalogPrizeDTO{
			{ID: 1, Name: "一等奖", Value: 40, Probability: 0.5},
			{ID: 0, Name: "谢谢惠顾", Value: 0, Probability: 0.5},
		},
	}

	tests := []struct {
		name         string
		body         any
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Valid update",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, settings *domain.LotterySettings) error {
						assert.Equal(t, 5, settings.DailyAttempts)
						assert.Len(t, settings.Prizes, 2)
						return nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid probabilities",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Return(adminservice.ErrInvalidProbabilities)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid daily limit",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Return(adminservice.ErrInvalidDailyLimit)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := jsonRequest(http.MethodPost, "/api/admin/settings", tt.body)
			rr := httptest.NewRecorder()

			handler.UpdateSettings(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetSettingsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetSettings(gomock.Any()).Return(&domain.LotterySettings{
		DailyAttempts: 5,
		Prizes:        []domain.Prize{{ID: 1, Name: "一等奖", Value: 40, Probability: 0.05}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
	rr := httptest.NewRecorder()

	handler.GetSettings(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.SettingsDTO
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.DailyAttempts)
	assert.Len(t, resp.Prizes, 1)
}

func TestBanUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         any
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful ban",
			body: dto.BanRequestDTO{UserID: "user-42", Username: "alice", Reason: "abuse"},
			prepareMock: func() {
				service.EXPECT().BanUser(gomock.Any(), "user-42", "alice", "abuse", "admin").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Missing user id",
			body: dto.BanRequestDTO{Reason: "abuse"},
			prepareMock: func() {
				service.EXPECT().BanUser(gomock.Any(), "", "", "abuse", "admin").Return(adminservice.ErrEmptyUserID)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := jsonRequest(http.MethodPost, "/api/admin/bans", tt.body)
			ctx := context.WithValue(req.Context(), auth.UserIDKey, "admin")
			rr := httptest.NewRecorder()

			handler.BanUser(rr, req.WithContext(ctx))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUnbanUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Successful unban",
			userID: "user-42",
			prepareMock: func() {
				service.EXPECT().UnbanUser(gomock.Any(), "user-42").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "User not banned",
			userID: "user-43",
			prepareMock: func() {
				service.EXPECT().UnbanUser(gomock.Any(), "user-43").Return(adminservice.ErrUserNotBanned)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodDelete, "/api/admin/bans/"+tt.userID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userID", tt.userID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler.UnbanUser(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListBansHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now().UTC()

	service.EXPECT().ListBanned(gomock.Any()).Return([]domain.BannedUser{
		{UserID: "user-42", Username: "alice", Reason: "abuse", BannedAt: now, BannedBy: "admin"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bans", nil)
	rr := httptest.NewRecorder()

	handler.ListBans(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.BannedUsersResponseDTO
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Users, 1)
	assert.Equal(t, "user-42", resp.Users[0].UserID)
}

func TestGetRecordsHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now().UTC()

	service.EXPECT().ListRecords(gomock.Any()).Return([]domain.DrawResult{
		{ID: "1_a", UserID: "user-1", PrizeID: 1, Timestamp: now, Verified: true},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/records", nil)
	rr := httptest.NewRecorder()

	handler.GetRecords(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.HistoryResponseDTO
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Results, 1)
}
