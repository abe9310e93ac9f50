package settingsrepo

import (
	"context"

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

// Both policy tables are singletons keyed by id=1. The lazy default is
// created with an upsert so two concurrent first reads cannot both insert.

func (r *Repository) GetOrderCharges(ctx context.Context) (*domain.OrderCharges, error) {
	upsert := `
        INSERT INTO order_charges (id)
        VALUES (1)
        ON CONFLICT (id) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, upsert); err != nil {
		zap.L().Error("failed to ensure order charges", zap.Error(err))
		return nil, err
	}

	query := `
        SELECT id, cancellation_percentage, customer_unavailable, incorrect_address, refusal_to_accept
        FROM order_charges
        WHERE id = 1
    `
	var c domain.OrderCharges
	err := r.db.QueryRow(ctx, query).Scan(&c.ID, &c.CancellationPercentage,
		&c.CustomerUnavailable, &c.IncorrectAddress, &c.RefusalToAccept)
	if err != nil {
		zap.L().Error("failed to get order charges", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) UpdateOrderCharges(ctx context.Context, charges *domain.OrderCharges) error {
	query := `
        UPDATE order_charges
        SET cancellation_percentage = $1, customer_unavailable = $2,
            incorrect_address = $3, refusal_to_accept = $4
        WHERE id = 1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, charges.CancellationPercentage,
			charges.CustomerUnavailable, charges.IncorrectAddress, charges.RefusalToAccept)
		if err != nil {
			zap.L().Error("failed to update order charges", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) GetWalletSettings(ctx context.Context) (*domain.WalletSettings, error) {
	upsert := `
        INSERT INTO wallet_settings (id)
        VALUES (1)
        ON CONFLICT (id) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, upsert); err != nil {
		zap.L().Error("failed to ensure wallet settings", zap.Error(err))
		return nil, err
	}

	query := `
        SELECT id, points_per_rupee, min_redeem_points, referral_points, signup_bonus_points, order_completion_points, min_order_price
        FROM wallet_settings
        WHERE id = 1
    `
	var s domain.WalletSettings
	err := r.db.QueryRow(ctx, query).Scan(&s.ID, &s.PointsPerRupee, &s.MinRedeemPoints,
		&s.ReferralPoints, &s.SignupBonusPoints, &s.OrderCompletionPoints, &s.MinOrderPrice)
	if err != nil {
		zap.L().Error("failed to get wallet settings", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) UpdateWalletSettings(ctx context.Context, settings *domain.WalletSettings) error {
	query := `
        UPDATE wallet_settings
        SET points_per_rupee = $1, min_redeem_points = $2, referral_points = $3,
            signup_bonus_points = $4, order_completion_points = $5, min_order_price = $6
        WHERE id = 1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, settings.PointsPerRupee, settings.MinRedeemPoints,
			settings.ReferralPoints, settings.SignupBonusPoints,
			settings.OrderCompletionPoints, settings.MinOrderPrice)
		if err != nil {
			zap.L().Error("failed to update wallet settings", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}
