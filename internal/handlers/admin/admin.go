package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"luckywheel/internal/domain"
	"luckywheel/internal/dto"
	"luckywheel/internal/service/adminservice"
	"luckywheel/pkg/auth"
	"luckywheel/pkg/utils"
)

type Service interface {
	Login(ctx context.Context, password string) (string, error)
	ImportCodes(ctx context.Context, value int, codes []string) (int, int, error)
	AddCode(ctx context.Context, value int, code string) (int, error)
	DeleteAvailableCode(ctx context.Context, value int, code string) error
	DeleteDistributed(ctx context.Context, id string) error
	GetStats(ctx context.Context) (*domain.InventoryStats, error)
	ListCodes(ctx context.Context) (map[int][]string, []domain.RedemptionCode, error)
	ListRecords(ctx context.Context) ([]domain.DrawResult, error)
	GetSettings(ctx context.Context) (*domain.LotterySettings, error)
	UpdateSettings(ctx context.Context, settings *domain.LotterySettings) error
	BanUser(ctx context.Context, userID, username, reason, bannedBy string) error
	UnbanUser(ctx context.Context, userID string) error
	ListBanned(ctx context.Context) ([]domain.BannedUser, error)
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// Login godoc
//
//	@Summary		Admin console login
//	@Description	Exchange the operator password for an admin bearer token.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdminLoginRequestDTO	true	"Operator password"
//	@Success		200		{object}	dto.AdminLoginResponseDTO
//	@Failure		400		{object}	utils.ErrorResponse	"Invalid request body"
//	@Failure		401		{object}	utils.ErrorResponse	"Invalid password"
//	@Router			/api/admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminLoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.adminService.Login(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, adminservice.ErrInvalidPassword) {
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminLoginResponseDTO{Token: token})
}

// ImportCodes godoc
//
//	@Summary		Bulk-import redemption codes
//	@Description	Append codes to a tier's inventory, silently dropping duplicates.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ImportCodesRequestDTO	true	"Codes and tier"
//	@Success		200		{object}	dto.ImportCodesResponseDTO
//	@Failure		400		{object}	utils.ErrorResponse	"Invalid codes or tier"
//	@Failure		401		{object}	utils.ErrorResponse	"Not authorized"
//	@Failure		403		{object}	utils.ErrorResponse	"Admin access required"
//	@Failure		500		{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/admin/codes/import [post]
func (h *AdminHandler) ImportCodes(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportCodesRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Codes) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid codes array")
		return
	}

	imported, total, err := h.adminService.ImportCodes(r.Context(), req.Value, req.Codes)
	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrInvalidTier), errors.Is(err, adminservice.ErrNoCodes):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ImportCodesResponseDTO{Imported: imported, Total: total})
}

// AddCode godoc
//
//	@Summary		Add a single redemption code
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddCodeRequestDTO	true	"Tier and code"
//	@Success		200		{object}	dto.AddCodeResponseDTO
//	@Failure		400		{object}	utils.ErrorResponse	"Invalid value or code"
//	@Failure		409		{object}	utils.ErrorResponse	"Code already exists"
//	@Failure		500		{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/admin/codes/add [post]
func (h *AdminHandler) AddCode(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCodeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	total, err := h.adminService.AddCode(r.Context(), req.Value, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrCodeExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, adminservice.ErrInvalidTier), errors.Is(err, adminservice.ErrEmptyCode):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AddCodeResponseDTO{Success: true, Total: total})
}

// DeleteCode godoc
//
//	@Summary		Delete a code or a distributed record
//	@Description	Scope "available" removes an unissued code by tier and value; scope "distributed" force-deletes a ledger record by id.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DeleteCodeRequestDTO	true	"Deletion target"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.ErrorResponse	"Invalid parameters"
//	@Failure		404		{object}	utils.ErrorResponse	"Code or record not found"
//	@Failure		500		{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/admin/codes/delete [post]
func (h *AdminHandler) DeleteCode(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteCodeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var err error
	switch req.Scope {
	case "available":
		if req.Code == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid parameters")
			return
		}
		err = h.adminService.DeleteAvailableCode(r.Context(), req.Value, req.Code)
	case "distributed":
		if req.ID == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid parameters")
			return
		}
		err = h.adminService.DeleteDistributed(r.Context(), req.ID)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "invalid parameters")
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrCodeNotFound), errors.Is(err, adminservice.ErrRecordNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "deleted"})
}

// GetCodes godoc
//
//	@Summary		List the full code inventory
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CodesListResponseDTO
//	@Failure		500	{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/admin/codes [get]
func (h *AdminHandler) GetCodes(w http.ResponseWriter, r *http.Request) {
	available, distributed, err := h.adminService.ListCodes(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.CodesListResponseDTO{
		Available:   make(map[string][]string, len(available)),
		Distributed: make([]dto.RedemptionCodeDTO, len(distributed)),
	}
	for value, codes := range available {
		response.Available[strconv.Itoa(value)] = codes
	}
	for i, code := range distributed {
		response.Distributed[i] = dto.RedemptionCodeDTO{
			ID:        code.ID,
			Code:      code.Code,
			Value:     code.Value,
			PrizeName: code.PrizeName,
			UserID:    code.UserID,
			CreatedAt: code.CreatedAt,
			Used:      code.Used,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetStats godoc
//
//	@Summary		Inventory statistics
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.StatsResponseDTO
//	@Failure		500	{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/admin/codes/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.GetStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.StatsResponseDTO{
		Available:   make(map[string]int, len(stats.Available)),
		Distributed: stats.Distributed,
		Total:       stats.Total,
	}
	for value, count := range stats.Available {
		response.Available[strconv.Itoa(value)] = count
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRecords godoc
//
//	@Summary		Full draw history
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.HistoryResponseDTO
//	@Failure		500	{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/admin/records [get]
func (h *AdminHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	results, err := h.adminService.ListRecords(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.HistoryResponseDTO{Results: make([]dto.DrawResultDTO, len(results))}
	for i, result := range results {
		response.Results[i] = dto.DrawResultDTO{
			ID:         result.ID,
			UserID:     result.UserID,
			PrizeID:    result.PrizeID,
			PrizeName:  result.PrizeName,
			PrizeValue: result.PrizeValue,
			Code:       result.Code,
			Timestamp:  result.Timestamp,
			Verified:   result.Verified,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetSettings godoc
//
//	@Summary		Get lottery settings
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SettingsDTO
//	@Failure		500	{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/admin/settings [get]
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.adminService.GetSettings(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.SettingsDTO{
		DailyAttempts: settings.DailyAttempts,
		Prizes:        make([]dto.CatalogPrizeDTO, len(settings.Prizes)),
	}
	for i, prize := range settings.Prizes {
		response.Prizes[i] = dto.CatalogPrizeDTO{
			ID:          prize.ID,
			Name:        prize.Name,
			Value:       prize.Value,
			Probability: prize.Probability,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateSettings godoc
//
//	@Summary		Update lottery settings
//	@Description	Replace the prize catalog and daily limit. Probabilities must sum to 1 (±0.01) and the limit must be in [1,20].
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SettingsDTO	true	"New settings"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.ErrorResponse	"Validation failure"
//	@Failure		500		{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/admin/settings [post]
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings := &domain.LotterySettings{
		DailyAttempts: req.DailyAttempts,
		Prizes:        make([]domain.Prize, len(req.Prizes)),
	}
	for i, prize := range req.Prizes {
		settings.Prizes[i] = domain.Prize{
			ID:          prize.ID,
			Name:        prize.Name,
			Value:       prize.Value,
			Probability: prize.Probability,
		}
	}

	if err := h.adminService.UpdateSettings(r.Context(), settings); err != nil {
		switch {
		case errors.Is(err, adminservice.ErrInvalidProbabilities),
			errors.Is(err, adminservice.ErrInvalidDailyLimit),
			errors.Is(err, adminservice.ErrEmptyCatalog):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "settings updated"})
}

// ListBans godoc
//
//	@Summary		List banned users
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BannedUsersResponseDTO
//	@Failure		500	{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/admin/bans [get]
func (h *AdminHandler) ListBans(w http.ResponseWriter, r *http.Request) {
	bans, err := h.adminService.ListBanned(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.BannedUsersResponseDTO{Users: make([]dto.BannedUserDTO, len(bans))}
	for i, ban := range bans {
		response.Users[i] = dto.BannedUserDTO{
			UserID:   ban.UserID,
			Username: ban.Username,
			Reason:   ban.Reason,
			BannedAt: ban.BannedAt.Format(time.RFC3339),
			BannedBy: ban.BannedBy,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// BanUser godoc
//
//	@Summary		Ban a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BanRequestDTO	true	"User to ban"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.ErrorResponse	"Invalid request"
//	@Failure		500		{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/admin/bans [post]
func (h *AdminHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	var req dto.BanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bannedBy := r.Context().Value(auth.UserIDKey).(string)
	if err := h.adminService.BanUser(r.Context(), req.UserID, req.Username, req.Reason, bannedBy); err != nil {
		if errors.Is(err, adminservice.ErrEmptyUserID) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "user banned"})
}

// UnbanUser godoc
//
//	@Summary		Unban a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		string	true	"User id"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.ErrorResponse	"User is not banned"
//	@Failure		500		{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/admin/bans/{userID} [delete]
func (h *AdminHandler) UnbanUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if err := h.adminService.UnbanUser(r.Context(), userID); err != nil {
		if errors.Is(err, adminservice.ErrUserNotBanned) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "user unbanned"})
}
