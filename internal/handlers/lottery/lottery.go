package lottery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"luckywheel/internal/domain"
	"luckywheel/internal/dto"
	"luckywheel/internal/service/lotteryservice"
	"luckywheel/pkg/auth"
	"luckywheel/pkg/utils"
)

type Service interface {
	Spin(ctx context.Context, userID string) (*lotteryservice.SpinResult, error)
	GetAttemptsLeft(ctx context.Context, userID string) (int, error)
	GetPrizes(ctx context.Context) ([]domain.Prize, error)
	GetHistory(ctx context.Context, userID string) ([]domain.DrawResult, error)
	GetMyCodes(ctx context.Context, userID string) ([]domain.RedemptionCode, error)
}

type LotteryHandler struct {
	lotteryService Service
}

func New(lotteryService Service) *LotteryHandler {
	return &LotteryHandler{
		lotteryService: lotteryService,
	}
}

// Spin godoc
//
//	@Summary		Spin the wheel
//	@Description	Consume one daily attempt, draw a weighted-random prize and, for winning draws, issue a redemption code.
//	@Tags			Lottery
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SpinResponseDTO	"Draw outcome"
//	@Failure		400	{object}	utils.ErrorResponse		"Daily attempts exhausted"
//	@Failure		401	{object}	utils.ErrorResponse		"User not authorized"
//	@Failure		403	{object}	utils.ErrorResponse		"User is banned"
//	@Failure		500	{object}	utils.ErrorResponse		"Internal server error"
//	@Router			/api/lottery/spin [post]
func (h *LotteryHandler) Spin(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	result, err := h.lotteryService.Spin(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, lotteryservice.ErrQuotaExhausted):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, lotteryservice.ErrBanned):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SpinResponseDTO{
		Prize: dto.PrizeDTO{
			ID:    result.Prize.ID,
			Name:  result.Prize.Name,
			Value: result.Prize.Value,
		},
		Code:         result.Code,
		AttemptsLeft: result.AttemptsLeft,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}

// GetAttempts godoc
//
//	@Summary		Get remaining attempts
//	@Description	Report how many draws the user has left today without consuming one.
//	@Tags			Lottery
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AttemptsResponseDTO
//	@Failure		401	{object}	utils.ErrorResponse	"User not authorized"
//	@Failure		500	{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/lottery/attempts [get]
func (h *LotteryHandler) GetAttempts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	left, err := h.lotteryService.GetAttemptsLeft(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AttemptsResponseDTO{AttemptsLeft: left})
}

// GetPrizes godoc
//
//	@Summary		Get the prize catalog
//	@Description	Return the active catalog in its canonical order. Clients must render wheel segments in exactly this order.
//	@Tags			Lottery
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PrizesResponseDTO
//	@Failure		401	{object}	utils.ErrorResponse	"User not authorized"
//	@Failure		500	{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/lottery/prizes [get]
func (h *LotteryHandler) GetPrizes(w http.ResponseWriter, r *http.Request) {
	prizes, err := h.lotteryService.GetPrizes(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.PrizesResponseDTO{Prizes: make([]dto.CatalogPrizeDTO, len(prizes))}
	for i, prize := range prizes {
		response.Prizes[i] = dto.CatalogPrizeDTO{
			ID:          prize.ID,
			Name:        prize.Name,
			Value:       prize.Value,
			Probability: prize.Probability,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetHistory godoc
//
//	@Summary		Get draw history
//	@Description	Return the user's draw results, newest first.
//	@Tags			Lottery
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.HistoryResponseDTO
//	@Failure		401	{object}	utils.ErrorResponse	"User not authorized"
//	@Failure		500	{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/lottery/history [get]
func (h *LotteryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	results, err := h.lotteryService.GetHistory(r.Context(), userID)
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

// GetMyCodes godoc
//
//	@Summary		Get redemption codes
//	@Description	Return the redemption codes issued to the user, newest first.
//	@Tags			Lottery
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MyCodesResponseDTO
//	@Failure		401	{object}	utils.ErrorResponse	"User not authorized"
//	@Failure		500	{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/lottery/my-codes [get]
func (h *LotteryHandler) GetMyCodes(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	codes, err := h.lotteryService.GetMyCodes(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.MyCodesResponseDTO{Codes: make([]dto.RedemptionCodeDTO, len(codes))}
	for i, code := range codes {
		response.Codes[i] = dto.RedemptionCodeDTO{
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
