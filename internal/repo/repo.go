package repo

import (
	"github.com/washhub/washhub/internal/pg"
	customerrepo "github.com/washhub/washhub/internal/repo/customer-repo"
	hubrepo "github.com/washhub/washhub/internal/repo/hub-repo"
	notificationrepo "github.com/washhub/washhub/internal/repo/notification-repo"
	orderrepo "github.com/washhub/washhub/internal/repo/order-repo"
	settingsrepo "github.com/washhub/washhub/internal/repo/settings-repo"
	transactionrepo "github.com/washhub/washhub/internal/repo/transaction-repo"
)

// Repositories exposes concrete repo types so each service can bind the
// subset of methods it declares.
type Repositories struct {
	CustomerRepo     *customerrepo.Repository
	OrderRepo        *orderrepo.Repository
	TransactionRepo  *transactionrepo.Repository
	SettingsRepo     *settingsrepo.Repository
	HubRepo          *hubrepo.Repository
	NotificationRepo *notificationrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		CustomerRepo:     customerrepo.New(conn, txManager),
		OrderRepo:        orderrepo.New(conn, txManager),
		TransactionRepo:  transactionrepo.New(conn),
		SettingsRepo:     settingsrepo.New(conn, txManager),
		HubRepo:          hubrepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
	}
}
