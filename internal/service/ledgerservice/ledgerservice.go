package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/washhub/washhub/internal/domain"
	"github.com/washhub/washhub/internal/pg"
	"go.uber.org/zap"
)

const (
	FieldBalance = "balance"
	FieldPoints  = "points"

	ActionIncrease = "increase"
	ActionDecrease = "decrease"

	ActorSystem = "System"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrUnknownField     = errors.New("unknown ledger field")
	ErrInvalidAction    = errors.New("invalid adjustment action")
)

type CustomerRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	UpdateWallet(ctx context.Context, customer *domain.Customer) error
	ClearDue(ctx context.Context, id int) error
}

type TransactionRepo interface {
	Append(ctx context.Context, txn *domain.WalletTransaction) error
	ListByCustomerID(ctx context.Context, customerID int) ([]domain.WalletTransaction, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type Service struct {
	customerRepo     CustomerRepo
	transactionRepo  TransactionRepo
	notificationRepo NotificationRepo
	txManager        pg.TXManager
}

func New(customerRepo CustomerRepo, transactionRepo TransactionRepo, notificationRepo NotificationRepo, txManager pg.TXManager) *Service {
	return &Service{
		customerRepo:     customerRepo,
		transactionRepo:  transactionRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
	}
}

// Adjust applies a signed delta to the customer's wallet balance or loyalty
// points and appends exactly one audit row. Decreases clamp at zero; the
// customer row and the log row are written in one transaction.
func (s *Service) Adjust(ctx context.Context, customerID int, field string, delta float64, reason, actor string) (float64, float64, error) {
	var previous, current float64

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		customer, err := s.customerRepo.GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return ErrCustomerNotFound
		}

		switch field {
		case FieldBalance:
			previous = customer.WalletBalance
			current = math.Max(0, previous+delta)
			customer.WalletBalance = current
		case FieldPoints:
			previous = float64(customer.LoyaltyPoints)
			current = math.Max(0, previous+delta)
			customer.LoyaltyPoints = int(current)
		default:
			return ErrUnknownField
		}

		if err := s.customerRepo.UpdateWallet(ctx, customer); err != nil {
			return err
		}

		action := ActionIncrease
		if delta < 0 {
			action = ActionDecrease
		}
		// The recorded amount is the effective change, not the requested
		// delta: a clamped decrease moves the value by less than asked.
		return s.transactionRepo.Append(ctx, &domain.WalletTransaction{
			CustomerID:    customerID,
			Type:          field,
			Action:        action,
			Amount:        math.Abs(current - previous),
			Reason:        reason,
			PreviousValue: previous,
			NewValue:      current,
			AdjustedBy:    actor,
		})
	})
	if err != nil {
		if !errors.Is(err, ErrCustomerNotFound) {
			zap.L().Error("failed to adjust ledger", zap.Int("customerID", customerID), zap.Error(err))
		}
		return 0, 0, err
	}
	return previous, current, nil
}

// SettleFee charges a fee against the customer. A wallet that covers the fee
// is debited in full; a short wallet is emptied and the shortfall moves to
// the due amount. The recorded reason distinguishes a partial split from an
// entirely-due settlement. Returns the reason text that was logged.
func (s *Service) SettleFee(ctx context.Context, customerID int, fee float64, cause, actor string) (string, error) {
	var reason string

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		customer, err := s.customerRepo.GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return ErrCustomerNotFound
		}

		previous := customer.WalletBalance
		walletPortion := math.Min(previous, fee)
		shortfall := fee - walletPortion

		switch {
		case shortfall == 0:
			reason = cause
		case walletPortion > 0:
			reason = fmt.Sprintf("%s (partial: %.2f from wallet, %.2f due)", cause, walletPortion, shortfall)
		default:
			reason = fmt.Sprintf("%s (insufficient wallet, %.2f due)", cause, fee)
		}

		customer.WalletBalance = previous - walletPortion
		customer.DueAmount += shortfall

		if err := s.customerRepo.UpdateWallet(ctx, customer); err != nil {
			return err
		}

		return s.transactionRepo.Append(ctx, &domain.WalletTransaction{
			CustomerID:    customerID,
			Type:          FieldBalance,
			Action:        ActionDecrease,
			Amount:        walletPortion,
			Reason:        reason,
			PreviousValue: previous,
			NewValue:      customer.WalletBalance,
			AdjustedBy:    actor,
		})
	})
	if err != nil {
		if !errors.Is(err, ErrCustomerNotFound) {
			zap.L().Error("failed to settle fee", zap.Int("customerID", customerID), zap.Float64("fee", fee), zap.Error(err))
		}
		return "", err
	}
	return reason, nil
}

// RecordDueCleared zeroes the due amount and writes a zero-amount increase
// entry naming the cleared figure in the reason. The wallet balance itself
// does not move.
func (s *Service) RecordDueCleared(ctx context.Context, customerID int, cleared float64, orderCode, actor string) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		customer, err := s.customerRepo.GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return ErrCustomerNotFound
		}

		if err := s.customerRepo.ClearDue(ctx, customerID); err != nil {
			return err
		}

		return s.transactionRepo.Append(ctx, &domain.WalletTransaction{
			CustomerID:    customerID,
			Type:          FieldBalance,
			Action:        ActionIncrease,
			Amount:        0,
			Reason:        fmt.Sprintf("Due of %.2f cleared with order %s", cleared, orderCode),
			PreviousValue: customer.WalletBalance,
			NewValue:      customer.WalletBalance,
			AdjustedBy:    actor,
		})
	})
	if err != nil {
		zap.L().Error("failed to record due clearance", zap.Int("customerID", customerID), zap.Error(err))
	}
	return err
}

// ManualAdjust is the admin-triggered adjustment. It routes through Adjust
// so the audit log stays complete, then notifies the customer. A failed
// notification does not undo the committed ledger write.
func (s *Service) ManualAdjust(ctx context.Context, customerID int, field, action string, amount float64, reason, actor string) (float64, float64, error) {
	if action != ActionIncrease && action != ActionDecrease {
		return 0, 0, ErrInvalidAction
	}
	if field != FieldBalance && field != FieldPoints {
		return 0, 0, ErrUnknownField
	}

	delta := amount
	if action == ActionDecrease {
		delta = -amount
	}

	previous, current, err := s.Adjust(ctx, customerID, field, delta, reason, actor)
	if err != nil {
		return 0, 0, err
	}

	title, message := notificationText(field, action, amount, reason)
	notifErr := s.notificationRepo.Create(ctx, &domain.Notification{
		Title:      title,
		Message:    message,
		Audience:   "customer",
		CustomerID: &customerID,
	})
	if notifErr != nil {
		zap.L().Error("failed to create adjustment notification", zap.Int("customerID", customerID), zap.Error(notifErr))
	}

	return previous, current, nil
}

func (s *Service) ListTransactions(ctx context.Context, customerID int) ([]domain.WalletTransaction, error) {
	txns, err := s.transactionRepo.ListByCustomerID(ctx, customerID)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

func notificationText(field, action string, amount float64, reason string) (string, string) {
	switch {
	case field == FieldBalance && action == ActionIncrease:
		return "Wallet credited", fmt.Sprintf("Your wallet was credited with %.2f. Reason: %s", amount, reason)
	case field == FieldBalance && action == ActionDecrease:
		return "Wallet debited", fmt.Sprintf("Your wallet was debited by %.2f. Reason: %s", amount, reason)
	case field == FieldPoints && action == ActionIncrease:
		return "Points added", fmt.Sprintf("%.0f loyalty points were added to your account. Reason: %s", amount, reason)
	default:
		return "Points deducted", fmt.Sprintf("%.0f loyalty points were deducted from your account. Reason: %s", amount, reason)
	}
}
