package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "luckywheel/docs"
	adminhandlers "luckywheel/internal/handlers/admin"
	lotteryhandlers "luckywheel/internal/handlers/lottery"
	"luckywheel/internal/service"
	"luckywheel/pkg/auth"
)

type LotteryHandler interface {
	Spin(w http.ResponseWriter, r *http.Request)
	GetAttempts(w http.ResponseWriter, r *http.Request)
	GetPrizes(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetMyCodes(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	ImportCodes(w http.ResponseWriter, r *http.Request)
	AddCode(w http.ResponseWriter, r *http.Request)
	DeleteCode(w http.ResponseWriter, r *http.Request)
	GetCodes(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetRecords(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	ListBans(w http.ResponseWriter, r *http.Request)
	BanUser(w http.ResponseWriter, r *http.Request)
	UnbanUser(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	LotteryHandler LotteryHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		LotteryHandler: lotteryhandlers.New(s.LotteryService),
		AdminHandler:   adminhandlers.New(s.AdminService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/admin/login", h.AdminHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/lottery", func(r chi.Router) {
				r.Post("/spin", h.LotteryHandler.Spin)
				r.Get("/attempts", h.LotteryHandler.GetAttempts)
				r.Get("/prizes", h.LotteryHandler.GetPrizes)
				r.Get("/history", h.LotteryHandler.GetHistory)
				r.Get("/my-codes", h.LotteryHandler.GetMyCodes)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminMiddleware)
				r.Route("/codes", func(r chi.Router) {
					r.Get("/", h.AdminHandler.GetCodes)
					r.Post("/import", h.AdminHandler.ImportCodes)
					r.Post("/add", h.AdminHandler.AddCode)
					r.Post("/delete", h.AdminHandler.DeleteCode)
					r.Get("/stats", h.AdminHandler.GetStats)
				})
				r.Get("/records", h.AdminHandler.GetRecords)
				r.Route("/settings", func(r chi.Router) {
					r.Get("/", h.AdminHandler.GetSettings)
					r.Post("/", h.AdminHandler.UpdateSettings)
				})
				r.Route("/bans", func(r chi.Router) {
					r.Get("/", h.AdminHandler.ListBans)
					r.Post("/", h.AdminHandler.BanUser)
					r.Delete("/{userID}", h.AdminHandler.UnbanUser)
				})
			})
		})
	})

	return r
}
