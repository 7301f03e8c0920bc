package dto

import "time"

type PrizeDTO struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"一等奖"`
	Value int    `json:"value" example:"40"`
}

type SpinResponseDTO struct {
	Prize        PrizeDTO `json:"prize"`
	Code         *string  `json:"code" example:"ABC123XYZ456"`
	AttemptsLeft int      `json:"attemptsLeft" example:"4"`
	Timestamp    string   `json:"timestamp" example:"2024-06-01T12:00:00Z"`
}

type AttemptsResponseDTO struct {
	AttemptsLeft int `json:"attemptsLeft" example:"5"`
}

type CatalogPrizeDTO struct {
	ID          int     `json:"id" example:"1"`
	Name        string  `json:"name" example:"一等奖"`
	Value       int     `json:"value" example:"40"`
	Probability float64 `json:"probability" example:"0.05"`
}

type PrizesResponseDTO struct {
	Prizes []CatalogPrizeDTO `json:"prizes"`
}

type DrawResultDTO struct {
	ID         string    `json:"id" example:"1717243200000_a1b2c3d4"`
	UserID     string    `json:"userId" example:"user-42"`
	PrizeID    int       `json:"prizeId" example:"1"`
	PrizeName  string    `json:"prizeName" example:"一等奖"`
	PrizeValue int       `json:"prizeValue" example:"40"`
	Code       *string   `json:"code" example:"ABC123XYZ456"`
	Timestamp  time.Time `json:"timestamp" example:"2024-06-01T12:00:00Z"`
	Verified   bool      `json:"verified" example:"true"`
}

type HistoryResponseDTO struct {
	Results []DrawResultDTO `json:"results"`
}

type RedemptionCodeDTO struct {
	ID        string    `json:"id" example:"1717243200000_a1b2c3d4"`
	Code      string    `json:"code" example:"ABC123XYZ456"`
	Value     int       `json:"value" example:"40"`
	PrizeName string    `json:"prizeName" example:"一等奖"`
	UserID    string    `json:"userId" example:"user-42"`
	CreatedAt time.Time `json:"createdAt" example:"2024-06-01T12:00:00Z"`
	Used      bool      `json:"used" example:"false"`
}

type MyCodesResponseDTO struct {
	Codes []RedemptionCodeDTO `json:"codes"`
}
