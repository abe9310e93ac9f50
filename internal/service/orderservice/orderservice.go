package orderservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/washhub/washhub/internal/domain"
	"github.com/washhub/washhub/internal/pg"
	"go.uber.org/zap"
)

const (
	StatusPending          = "pending"
	StatusReachedLocation  = "reached_location"
	StatusPickedUp         = "picked_up"
	StatusDeliveredToHub   = "delivered_to_hub"
	StatusProcessing       = "processing"
	StatusIroning          = "ironing"
	StatusProcessCompleted = "process_completed"
	StatusReady            = "ready"
	StatusOutForDelivery   = "out_for_delivery"
	StatusDelivered        = "delivered"
	StatusCancelled        = "cancelled"
	StatusDeliveryFailed   = "delivery_failed"
	StatusSuspended        = "suspended"
)

const (
	defaultActor              = "system"
	codeAttempts              = 5
	defaultDeliveryFailureFee = 150
)

var knownStatuses = map[string]struct{}{
	StatusPending: {}, StatusReachedLocation: {}, StatusPickedUp: {},
	StatusDeliveredToHub: {}, StatusProcessing: {}, StatusIroning: {},
	StatusProcessCompleted: {}, StatusReady: {}, StatusOutForDelivery: {},
	StatusDelivered: {}, StatusCancelled: {}, StatusDeliveryFailed: {},
	StatusSuspended: {},
}

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrVoucherAlreadyUsed = errors.New("voucher already used by customer")
	ErrInsufficientWallet = errors.New("wallet balance does not cover requested amount")
	ErrUnknownStatus      = errors.New("unknown order status")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrCodeGeneration     = errors.New("could not generate a unique order code")
)

type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByCode(ctx context.Context, code string) (*domain.Order, error)
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByCustomerID(ctx context.Context, customerID int) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id int) (bool, error)
	AddItems(ctx context.Context, orderID int, items []domain.OrderItem) error
	AppendStatusHistory(ctx context.Context, orderID int, status, updatedBy string) error
	GetStatusHistory(ctx context.Context, orderID int) ([]domain.StatusEntry, error)
}

type CustomerRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	IncrementTotalOrders(ctx context.Context, id int) error
	HasUsedVoucher(ctx context.Context, customerID int, voucherCode string) (bool, error)
	AddUsedVoucher(ctx context.Context, customerID int, voucherCode string, orderID int) error
	FindReferralCode(ctx context.Context, code string) (*domain.ReferralCode, error)
	MarkReferralCodeUsed(ctx context.Context, codeID, usedBy int) error
}

type HubRepo interface {
	FindByPincode(ctx context.Context, pincode string) (*domain.Hub, error)
}

type Ledger interface {
	Adjust(ctx context.Context, customerID int, field string, delta float64, reason, actor string) (float64, float64, error)
	SettleFee(ctx context.Context, customerID int, fee float64, cause, actor string) (string, error)
	RecordDueCleared(ctx context.Context, customerID int, cleared float64, orderCode, actor string) error
}

type Settings interface {
	GetOrderCharges(ctx context.Context) (*domain.OrderCharges, error)
	GetWalletSettings(ctx context.Context) (*domain.WalletSettings, error)
}

type Service struct {
	orderRepo    OrderRepo
	customerRepo CustomerRepo
	hubRepo      HubRepo
	ledger       Ledger
	settings     Settings
	txManager    pg.TXManager
}

func New(orderRepo OrderRepo, customerRepo CustomerRepo, hubRepo HubRepo, ledger Ledger, settings Settings, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		hubRepo:      hubRepo,
		ledger:       ledger,
		settings:     settings,
		txManager:    txManager,
	}
}

type CreateOrderInput struct {
	CustomerID         int
	Items              []domain.OrderItem
	TotalAmount        float64
	PaymentMethod      string
	PaymentStatus      string
	WalletUsed         float64
	AppliedVoucherCode string
	PickupAddress      string
	PickupPincode      string
	DeliveryAddress    string
	Notes              string
}

type UpdateOrderInput struct {
	Status             *string
	DeliveryFailureFee *float64
	FailureReason      string
	PartnerID          *int
	HubID              *int
	PaymentStatus      *string
	Notes              *string
	ReachedLocationAt  *time.Time
	PickedUpAt         *time.Time
	DeliveredToHubAt   *time.Time
	OutForDeliveryAt   *time.Time
}

type UpdateResult struct {
	Order   *domain.Order
	Fee     float64
	Message string
}

// CreateOrder persists a new pending order and applies its initial ledger
// effects. The base order save and the wallet payment are atomic; bonus
// crediting after the commit is logged but never rolls the order back.
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput, actor string) (*domain.Order, error) {
	customer, err := s.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	if in.AppliedVoucherCode != "" {
		used, err := s.customerRepo.HasUsedVoucher(ctx, in.CustomerID, in.AppliedVoucherCode)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, ErrVoucherAlreadyUsed
		}
	}

	if in.WalletUsed > 0 && customer.WalletBalance < in.WalletUsed {
		return nil, ErrInsufficientWallet
	}

	order := &domain.Order{
		CustomerID:         in.CustomerID,
		Status:             StatusPending,
		TotalAmount:        in.TotalAmount,
		PaymentMethod:      in.PaymentMethod,
		PaymentStatus:      in.PaymentStatus,
		WalletUsed:         in.WalletUsed,
		AppliedVoucherCode: in.AppliedVoucherCode,
		PickupAddress:      in.PickupAddress,
		PickupPincode:      in.PickupPincode,
		DeliveryAddress:    in.DeliveryAddress,
		Notes:              in.Notes,
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = "pending"
	}

	if err := s.assignCode(ctx, order); err != nil {
		return nil, err
	}

	if in.PickupPincode != "" {
		hub, err := s.hubRepo.FindByPincode(ctx, in.PickupPincode)
		if err != nil {
			return nil, err
		}
		if hub != nil {
			order.HubID = &hub.ID
		}
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.Save(ctx, order); err != nil {
			return err
		}
		if len(in.Items) > 0 {
			if err := s.orderRepo.AddItems(ctx, order.ID, in.Items); err != nil {
				return err
			}
		}
		if err := s.orderRepo.AppendStatusHistory(ctx, order.ID, StatusPending, actor); err != nil {
			return err
		}
		if in.WalletUsed > 0 {
			_, _, err := s.ledger.Adjust(ctx, in.CustomerID, "balance", -in.WalletUsed,
				fmt.Sprintf("Payment for order %s", order.Code), actor)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}

	s.applyCreationBonuses(ctx, customer, order, in, actor)

	return order, nil
}

// applyCreationBonuses runs the post-commit side effects of order creation.
// Each failure is logged and swallowed; the saved order already counts as a
// success for the caller.
func (s *Service) applyCreationBonuses(ctx context.Context, customer *domain.Customer, order *domain.Order, in CreateOrderInput, actor string) {
	if in.AppliedVoucherCode != "" {
		if err := s.customerRepo.AddUsedVoucher(ctx, customer.ID, in.AppliedVoucherCode, order.ID); err != nil {
			zap.L().Error("failed to record voucher use", zap.String("order", order.Code), zap.Error(err))
		}
	}

	if order.PaymentStatus == "paid" && customer.DueAmount > 0 {
		if err := s.ledger.RecordDueCleared(ctx, customer.ID, customer.DueAmount, order.Code, actor); err != nil {
			zap.L().Error("failed to clear due amount", zap.String("order", order.Code), zap.Error(err))
		}
	}

	settings, err := s.settings.GetWalletSettings(ctx)
	if err != nil {
		zap.L().Error("failed to load wallet settings, skipping bonuses", zap.String("order", order.Code), zap.Error(err))
		return
	}

	_, _, err = s.ledger.Adjust(ctx, customer.ID, "points", float64(settings.OrderCompletionPoints),
		fmt.Sprintf("Points for order %s", order.Code), actor)
	if err != nil {
		zap.L().Error("failed to award order points", zap.String("order", order.Code), zap.Error(err))
	}
	if err := s.customerRepo.IncrementTotalOrders(ctx, customer.ID); err != nil {
		zap.L().Error("failed to increment total orders", zap.String("order", order.Code), zap.Error(err))
	}

	if customer.TotalOrders == 0 && customer.ReferredBy != "" {
		s.applyReferral(ctx, customer, settings, actor)
	}
}

// applyReferral credits both sides of a referral on the referee's first
// order. Marking the code used first keeps the award single-shot even if a
// concurrent request races the same code.
func (s *Service) applyReferral(ctx context.Context, customer *domain.Customer, settings *domain.WalletSettings, actor string) {
	code, err := s.customerRepo.FindReferralCode(ctx, customer.ReferredBy)
	if err != nil {
		zap.L().Error("failed to look up referral code", zap.String("code", customer.ReferredBy), zap.Error(err))
		return
	}
	if code == nil || code.Used || code.CustomerID == customer.ID {
		return
	}

	if err := s.customerRepo.MarkReferralCodeUsed(ctx, code.ID, customer.ID); err != nil {
		zap.L().Error("failed to mark referral code used", zap.String("code", code.Code), zap.Error(err))
		return
	}

	_, _, err = s.ledger.Adjust(ctx, customer.ID, "points", float64(settings.SignupBonusPoints),
		fmt.Sprintf("Referral signup bonus (code %s)", code.Code), actor)
	if err != nil {
		zap.L().Error("failed to award referral signup bonus", zap.Error(err))
	}

	_, _, err = s.ledger.Adjust(ctx, code.CustomerID, "points", float64(settings.ReferralPoints),
		fmt.Sprintf("Referral bonus: code %s redeemed", code.Code), actor)
	if err != nil {
		zap.L().Error("failed to award referrer bonus", zap.Error(err))
	}
}

func (s *Service) assignCode(ctx context.Context, order *domain.Order) error {
	for attempt := 0; attempt < codeAttempts; attempt++ {
		code := generateCode()
		existing, err := s.orderRepo.FindByCode(ctx, code)
		if err != nil {
			return err
		}
		if existing == nil {
			order.Code = code
			return nil
		}
	}
	return ErrCodeGeneration
}

// UpdateOrder drives the order state machine. Fees, history, delivery
// awards and the order row itself are written in one transaction.
func (s *Service) UpdateOrder(ctx context.Context, idOrCode string, in UpdateOrderInput, actor string) (*UpdateResult, error) {
	order, err := s.resolve(ctx, idOrCode)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if actor == "" {
		actor = defaultActor
	}

	result := &UpdateResult{}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		prevStatus := order.Status

		if in.PartnerID != nil {
			order.PartnerID = in.PartnerID
		}
		if in.HubID != nil {
			order.HubID = in.HubID
		}
		if in.PaymentStatus != nil {
			order.PaymentStatus = *in.PaymentStatus
		}
		if in.Notes != nil {
			order.Notes = *in.Notes
		}
		if in.ReachedLocationAt != nil {
			order.ReachedLocationAt = in.ReachedLocationAt
		}
		if in.PickedUpAt != nil {
			order.PickedUpAt = in.PickedUpAt
		}
		if in.DeliveredToHubAt != nil {
			order.DeliveredToHubAt = in.DeliveredToHubAt
		}
		if in.OutForDeliveryAt != nil {
			order.OutForDeliveryAt = in.OutForDeliveryAt
		}

		if in.Status != nil {
			status := *in.Status
			if _, ok := knownStatuses[status]; !ok {
				return ErrUnknownStatus
			}
			now := time.Now()

			switch status {
			case StatusCancelled:
				if prevStatus == StatusDelivered || prevStatus == StatusCancelled || prevStatus == StatusSuspended {
					return ErrInvalidTransition
				}
				fee, err := s.cancellationFee(ctx, order)
				if err != nil {
					return err
				}
				if fee > 0 {
					cause := fmt.Sprintf("Cancellation fee for order %s", order.Code)
					if _, err := s.ledger.SettleFee(ctx, order.CustomerID, fee, cause, actor); err != nil {
						return err
					}
					order.CancellationFee = fee
					result.Fee = fee
					result.Message = fmt.Sprintf("Cancellation fee of %.2f charged", fee)
				}
				order.CancelledAt = &now

			case StatusDeliveryFailed:
				fee, err := s.deliveryFailureFee(ctx, in)
				if err != nil {
					return err
				}
				cause := fmt.Sprintf("Delivery failure fee for order %s", order.Code)
				if in.FailureReason != "" {
					cause = fmt.Sprintf("%s (%s)", cause, in.FailureReason)
				}
				if _, err := s.ledger.SettleFee(ctx, order.CustomerID, fee, cause, actor); err != nil {
					return err
				}
				order.DeliveryFailureFee = fee
				result.Fee = fee
				result.Message = fmt.Sprintf("Delivery failure fee of %.2f charged", fee)
				// second failed attempt suspends the order
				if order.DeliveryFailedAt != nil {
					status = StatusSuspended
				}
				order.DeliveryFailedAt = &now

			case StatusDelivered:
				order.DeliveredAt = &now
			}

			order.Status = status
			if err := s.orderRepo.AppendStatusHistory(ctx, order.ID, status, actor); err != nil {
				return err
			}

			if status == StatusDelivered && prevStatus != StatusDelivered {
				settings, err := s.settings.GetWalletSettings(ctx)
				if err != nil {
					return err
				}
				_, _, err = s.ledger.Adjust(ctx, order.CustomerID, "points", float64(settings.OrderCompletionPoints),
					fmt.Sprintf("Points for completing order %s", order.Code), actor)
				if err != nil {
					return err
				}
				if err := s.customerRepo.IncrementTotalOrders(ctx, order.CustomerID); err != nil {
					return err
				}
			}
		}

		return s.orderRepo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	result.Order = order
	return result, nil
}

// cancellationFee is zero when no partner was ever assigned; otherwise the
// live percentage from the fee schedule applies.
func (s *Service) cancellationFee(ctx context.Context, order *domain.Order) (float64, error) {
	if order.PartnerID == nil {
		return 0, nil
	}
	charges, err := s.settings.GetOrderCharges(ctx)
	if err != nil {
		return 0, err
	}
	return math.Round(order.TotalAmount * charges.CancellationPercentage / 100), nil
}

func (s *Service) deliveryFailureFee(ctx context.Context, in UpdateOrderInput) (float64, error) {
	if in.DeliveryFailureFee != nil {
		return *in.DeliveryFailureFee, nil
	}
	charges, err := s.settings.GetOrderCharges(ctx)
	if err != nil {
		return 0, err
	}
	switch in.FailureReason {
	case "customer_unavailable":
		return charges.CustomerUnavailable, nil
	case "incorrect_address":
		return charges.IncorrectAddress, nil
	case "refusal_to_accept":
		return charges.RefusalToAccept, nil
	}
	return defaultDeliveryFailureFee, nil
}

// resolve looks an order up by its business-facing code first and falls
// back to the storage id.
func (s *Service) resolve(ctx context.Context, idOrCode string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByCode(ctx, idOrCode)
	if err != nil {
		return nil, err
	}
	if order != nil {
		return order, nil
	}
	id, convErr := strconv.Atoi(idOrCode)
	if convErr != nil {
		return nil, nil
	}
	return s.orderRepo.FindByID(ctx, id)
}

func (s *Service) GetOrder(ctx context.Context, idOrCode string) (*domain.Order, []domain.StatusEntry, error) {
	order, err := s.resolve(ctx, idOrCode)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, ErrOrderNotFound
	}
	history, err := s.orderRepo.GetStatusHistory(ctx, order.ID)
	if err != nil {
		return nil, nil, err
	}
	return order, history, nil
}

func (s *Service) GetOrdersByCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) DeleteOrder(ctx context.Context, idOrCode string) error {
	order, err := s.resolve(ctx, idOrCode)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	deleted, err := s.orderRepo.Delete(ctx, order.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOrderNotFound
	}
	return nil
}
