package service

import (
	"luckywheel/internal/config"
	"luckywheel/internal/handlers/admin"
	"luckywheel/internal/handlers/lottery"
	"luckywheel/internal/repo"
	"luckywheel/internal/service/adminservice"
	"luckywheel/internal/service/lotteryservice"
	pkgauth "luckywheel/pkg/auth"
	"luckywheel/pkg/wheel"
)

type Services struct {
	LotteryService lottery.Service
	AdminService   admin.Service
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	lotteryService := lotteryservice.New(
		repo.Attempts,
		repo.Inventory,
		repo.Ledger,
		repo.History,
		repo.Settings,
		repo.Bans,
		wheel.NewSelector(),
	)
	adminService := adminservice.New(
		repo.Inventory,
		repo.Ledger,
		repo.History,
		repo.Settings,
		repo.Bans,
		&pkgauth.HashService{},
		&pkgauth.JWTService{},
		cfg.AdminPasswordHash,
	)

	return &Services{
		LotteryService: lotteryService,
		AdminService:   adminService,
	}
}
