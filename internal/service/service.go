package service

import (
	authhandlers "github.com/washhub/washhub/internal/handlers/auth"
	ordershandlers "github.com/washhub/washhub/internal/handlers/orders"
	pincodehandlers "github.com/washhub/washhub/internal/handlers/pincode"
	settingshandlers "github.com/washhub/washhub/internal/handlers/settings"
	wallethandlers "github.com/washhub/washhub/internal/handlers/wallet"

	pkgauth "github.com/washhub/washhub/pkg/auth"
	"github.com/washhub/washhub/pkg/clients"

	"github.com/washhub/washhub/internal/config"
	"github.com/washhub/washhub/internal/pg"
	"github.com/washhub/washhub/internal/pincode"
	"github.com/washhub/washhub/internal/repo"
	authservice "github.com/washhub/washhub/internal/service/authservice"
	ledgerservice "github.com/washhub/washhub/internal/service/ledgerservice"
	orderservice "github.com/washhub/washhub/internal/service/orderservice"
	settingsservice "github.com/washhub/washhub/internal/service/settingsservice"
)

type Services struct {
	AuthService     authhandlers.Service
	OrderService    ordershandlers.Service
	LedgerService   wallethandlers.Service
	SettingsService settingshandlers.Service
	PincodeService  pincodehandlers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	ledgerService := ledgerservice.New(repo.CustomerRepo, repo.TransactionRepo, repo.NotificationRepo, txManager)
	settingsService := settingsservice.New(repo.SettingsRepo)
	orderService := orderservice.New(repo.OrderRepo, repo.CustomerRepo, repo.HubRepo, ledgerService, settingsService, txManager)
	authService := authservice.New(repo.CustomerRepo, ledgerService, settingsService,
		&pkgauth.HashService{}, &pkgauth.JWTService{}, clients.NewSMSClient(cfg.SMSAddress))
	pincodeService := pincode.New(cfg, clients.NewHTTPClient())

	return &Services{
		AuthService:     authService,
		OrderService:    orderService,
		LedgerService:   ledgerService,
		SettingsService: settingsService,
		PincodeService:  pincodeService,
	}
}
