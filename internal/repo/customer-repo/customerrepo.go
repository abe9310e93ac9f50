package customerrepo

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

const customerColumns = `id, phone, name, password_hash, wallet_balance, due_amount, loyalty_points, total_orders, referred_by, created_at`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Phone, &c.Name, &c.PasswordHash, &c.WalletBalance, &c.DueAmount,
		&c.LoyaltyPoints, &c.TotalOrders, &c.ReferredBy, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	query := `
        SELECT ` + customerColumns + `
        FROM customers
        WHERE id = $1
    `
	customer, err := scanCustomer(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get customer", zap.Error(err))
		return nil, err
	}
	return customer, nil
}

func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	query := `
        SELECT ` + customerColumns + `
        FROM customers
        WHERE phone = $1
    `
	customer, err := scanCustomer(r.db.QueryRow(ctx, query, phone))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get customer by phone", zap.Error(err))
		return nil, err
	}
	return customer, nil
}

func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `
        INSERT INTO customers (phone, name, password_hash, referred_by)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + customerColumns + `
    `
	created, err := scanCustomer(r.db.QueryRow(ctx, query, customer.Phone, customer.Name, customer.PasswordHash, customer.ReferredBy))
	if err != nil {
		zap.L().Error("failed to create customer", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// UpdateWallet persists the ledger-backed fields of the customer row.
func (r *Repository) UpdateWallet(ctx context.Context, customer *domain.Customer) error {
	query := `
        UPDATE customers
        SET wallet_balance = $1, due_amount = $2, loyalty_points = $3
        WHERE id = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, customer.WalletBalance, customer.DueAmount, customer.LoyaltyPoints, customer.ID)
		if err != nil {
			zap.L().Error("failed to update customer wallet", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) IncrementTotalOrders(ctx context.Context, id int) error {
	query := `
        UPDATE customers
        SET total_orders = total_orders + 1
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to increment total orders", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ClearDue(ctx context.Context, id int) error {
	query := `
        UPDATE customers
        SET due_amount = 0
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to clear due amount", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) HasUsedVoucher(ctx context.Context, customerID int, voucherCode string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM used_vouchers
            WHERE customer_id = $1 AND voucher_code = $2
        )
    `
	var used bool
	err := r.db.QueryRow(ctx, query, customerID, voucherCode).Scan(&used)
	if err != nil {
		zap.L().Error("failed to check voucher usage", zap.Error(err))
		return false, err
	}
	return used, nil
}

func (r *Repository) AddUsedVoucher(ctx context.Context, customerID int, voucherCode string, orderID int) error {
	query := `
        INSERT INTO used_vouchers (customer_id, voucher_code, order_id, used_at)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.db.Exec(ctx, query, customerID, voucherCode, orderID, time.Now())
	if err != nil {
		zap.L().Error("failed to record used voucher", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateReferralCode(ctx context.Context, customerID int, code string) error {
	query := `
        INSERT INTO referral_codes (customer_id, code)
        VALUES ($1, $2)
    `
	_, err := r.db.Exec(ctx, query, customerID, code)
	if err != nil {
		zap.L().Error("failed to create referral code", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindReferralCode(ctx context.Context, code string) (*domain.ReferralCode, error) {
	query := `
        SELECT id, customer_id, code, used, used_by, used_at
        FROM referral_codes
        WHERE code = $1
    `
	row := r.db.QueryRow(ctx, query, code)

	var rc domain.ReferralCode
	err := row.Scan(&rc.ID, &rc.CustomerID, &rc.Code, &rc.Used, &rc.UsedBy, &rc.UsedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find referral code", zap.Error(err))
		return nil, err
	}
	return &rc, nil
}

func (r *Repository) MarkReferralCodeUsed(ctx context.Context, codeID int, usedBy int) error {
	query := `
        UPDATE referral_codes
        SET used = TRUE, used_by = $1, used_at = $2
        WHERE id = $3 AND used = FALSE
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, usedBy, time.Now(), codeID)
		if err != nil {
			zap.L().Error("failed to mark referral code used", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return errors.New("referral code already used")
		}
		return nil
	})
	return err
}
