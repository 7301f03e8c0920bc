package dto

type AdminLoginRequestDTO struct {
	Password string `json:"password" example:"secret"`
}

type AdminLoginResponseDTO struct {
	Token string `json:"token"`
}

type ImportCodesRequestDTO struct {
	Codes []string `json:"codes"`
	Value int      `json:"value" example:"40"`
}

type ImportCodesResponseDTO struct {
	Imported int `json:"imported" example:"2"`
	Total    int `json:"total" example:"10"`
}

type AddCodeRequestDTO struct {
	Value int    `json:"value" example:"40"`
	Code  string `json:"code" example:"ABC123"`
}

type AddCodeResponseDTO struct {
	Success bool `json:"success" example:"true"`
	Total   int  `json:"total" example:"11"`
}

// DeleteCodeRequestDTO deletes either an available code (scope "available",
// value+code required) or a distributed ledger record (scope "distributed",
// id required).
type DeleteCodeRequestDTO struct {
	Scope string `json:"scope" example:"available"`
	Value int    `json:"value,omitempty" example:"40"`
	Code  string `json:"code,omitempty" example:"ABC123"`
	ID    string `json:"id,omitempty" example:"1717243200000_a1b2c3d4"`
}

type CodesListResponseDTO struct {
	Available   map[string][]string `json:"available"`
	Distributed []RedemptionCodeDTO `json:"distributed"`
}

type StatsResponseDTO struct {
	Available   map[string]int `json:"available"`
	Distributed int            `json:"distributed" example:"7"`
	Total       int            `json:"total" example:"42"`
}

type SettingsDTO struct {
	DailyAttempts int               `json:"dailyAttempts" example:"5"`
	Prizes        []CatalogPrizeDTO `json:"prizes"`
}

type BanRequestDTO struct {
	UserID   string `json:"userId" example:"user-42"`
	Username string `json:"username,omitempty" example:"alice"`
	Reason   string `json:"reason" example:"abuse"`
}

type BannedUserDTO struct {
	UserID   string `json:"userId" example:"user-42"`
	Username string `json:"username,omitempty" example:"alice"`
	Reason   string `json:"reason" example:"abuse"`
	BannedAt string `json:"bannedAt" example:"2024-06-01T12:00:00Z"`
	BannedBy string `json:"bannedBy" example:"admin"`
}

type BannedUsersResponseDTO struct {
	Users []BannedUserDTO `json:"users"`
}
