package handlers

import (
	"net/http"

	_ "github.com/washhub/washhub/docs"
	authhandlers "github.com/washhub/washhub/internal/handlers/auth"
	ordershandlers "github.com/washhub/washhub/internal/handlers/orders"
	pincodehandlers "github.com/washhub/washhub/internal/handlers/pincode"
	settingshandlers "github.com/washhub/washhub/internal/handlers/settings"
	wallethandlers "github.com/washhub/washhub/internal/handlers/wallet"
	"github.com/washhub/washhub/internal/service"
	"github.com/washhub/washhub/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	RequestOTP(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByCustomer(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	Adjust(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
}

type SettingsHandler interface {
	GetCharges(w http.ResponseWriter, r *http.Request)
	UpdateCharges(w http.ResponseWriter, r *http.Request)
	GetWalletSettings(w http.ResponseWriter, r *http.Request)
	UpdateWalletSettings(w http.ResponseWriter, r *http.Request)
}

type PincodeHandler interface {
	Lookup(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	OrderHandler    OrderHandler
	WalletHandler   WalletHandler
	SettingsHandler SettingsHandler
	PincodeHandler  PincodeHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		OrderHandler:    ordershandlers.New(s.OrderService),
		WalletHandler:   wallethandlers.New(s.LedgerService),
		SettingsHandler: settingshandlers.New(s.SettingsService),
		PincodeHandler:  pincodehandlers.New(s.PincodeService),
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
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/otp", h.AuthHandler.RequestOTP)
		})
		r.Get("/pincode/{pincode}", h.PincodeHandler.Lookup)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole())
			r.Post("/orders", h.OrderHandler.Create)
			r.Get("/orders/{id}", h.OrderHandler.Get)
			r.Get("/customers/{id}/orders", h.OrderHandler.ListByCustomer)
			r.Get("/customers/{id}/transactions", h.WalletHandler.ListTransactions)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleAdmin, auth.RolePartner))
			r.Patch("/orders/{id}", h.OrderHandler.Update)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleAdmin))
			r.Delete("/orders/{id}", h.OrderHandler.Delete)
			r.Post("/wallet/adjust", h.WalletHandler.Adjust)
			r.Route("/settings", func(r chi.Router) {
				r.Get("/charges", h.SettingsHandler.GetCharges)
				r.Patch("/charges", h.SettingsHandler.UpdateCharges)
				r.Get("/wallet", h.SettingsHandler.GetWalletSettings)
				r.Patch("/wallet", h.SettingsHandler.UpdateWalletSettings)
			})
		})
	})

	return r
}
