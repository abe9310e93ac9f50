package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/washhub/washhub/internal/domain"
	"github.com/washhub/washhub/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const orderColumns = `id, code, customer_id, partner_id, hub_id, status, total_amount, cancellation_fee, delivery_failure_fee, payment_method, payment_status, wallet_used, applied_voucher_code, pickup_address, pickup_pincode, delivery_address, notes, reached_location_at, picked_up_at, delivered_to_hub_at, out_for_delivery_at, delivered_at, cancelled_at, delivery_failed_at, created_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.Code, &o.CustomerID, &o.PartnerID, &o.HubID, &o.Status,
		&o.TotalAmount, &o.CancellationFee, &o.DeliveryFailureFee, &o.PaymentMethod,
		&o.PaymentStatus, &o.WalletUsed, &o.AppliedVoucherCode, &o.PickupAddress,
		&o.PickupPincode, &o.DeliveryAddress, &o.Notes, &o.ReachedLocationAt,
		&o.PickedUpAt, &o.DeliveredToHubAt, &o.OutForDeliveryAt, &o.DeliveredAt,
		&o.CancelledAt, &o.DeliveryFailedAt, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE code = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order by code", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order by id", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByCustomerID(ctx context.Context, customerID int) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE customer_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (code, customer_id, partner_id, hub_id, status, total_amount,
            payment_method, payment_status, wallet_used, applied_voucher_code,
            pickup_address, pickup_pincode, delivery_address, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, order.Code, order.CustomerID, order.PartnerID,
			order.HubID, order.Status, order.TotalAmount, order.PaymentMethod,
			order.PaymentStatus, order.WalletUsed, order.AppliedVoucherCode,
			order.PickupAddress, order.PickupPincode, order.DeliveryAddress, order.Notes)
		if err := row.Scan(&order.ID, &order.CreatedAt); err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	query := `
        UPDATE orders
        SET partner_id = $1, hub_id = $2, status = $3, cancellation_fee = $4,
            delivery_failure_fee = $5, payment_status = $6, notes = $7,
            reached_location_at = $8, picked_up_at = $9, delivered_to_hub_at = $10,
            out_for_delivery_at = $11, delivered_at = $12, cancelled_at = $13,
            delivery_failed_at = $14
        WHERE id = $15
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, order.PartnerID, order.HubID, order.Status,
			order.CancellationFee, order.DeliveryFailureFee, order.PaymentStatus,
			order.Notes, order.ReachedLocationAt, order.PickedUpAt,
			order.DeliveredToHubAt, order.OutForDeliveryAt, order.DeliveredAt,
			order.CancelledAt, order.DeliveryFailedAt, order.ID)
		if err != nil {
			zap.L().Error("failed to update order", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	query := `
        DELETE FROM orders
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to delete order", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) AddItems(ctx context.Context, orderID int, items []domain.OrderItem) error {
	query := `
        INSERT INTO order_items (order_id, name, quantity, price)
        VALUES ($1, $2, $3, $4)
    `
	for _, item := range items {
		if _, err := r.db.Exec(ctx, query, orderID, item.Name, item.Quantity, item.Price); err != nil {
			zap.L().Error("failed to add order item", zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) GetItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	query := `
        SELECT id, order_id, name, quantity, price
        FROM order_items
        WHERE order_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.Name, &item.Quantity, &item.Price); err != nil {
			zap.L().Error("can't scan order item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// AppendStatusHistory adds one history row; rows are never updated or removed.
func (r *Repository) AppendStatusHistory(ctx context.Context, orderID int, status, updatedBy string) error {
	query := `
        INSERT INTO order_status_history (order_id, status, updated_by, created_at)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.db.Exec(ctx, query, orderID, status, updatedBy, time.Now())
	if err != nil {
		zap.L().Error("failed to append status history", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetStatusHistory(ctx context.Context, orderID int) ([]domain.StatusEntry, error) {
	query := `
        SELECT id, order_id, status, updated_by, created_at
        FROM order_status_history
        WHERE order_id = $1
        ORDER BY created_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get status history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.StatusEntry
	for rows.Next() {
		var e domain.StatusEntry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.Status, &e.UpdatedBy, &e.CreatedAt); err != nil {
			zap.L().Error("can't scan status history row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
