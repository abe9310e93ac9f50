package transactionrepo

import (
	"context"
	"time"

	"github.com/washhub/washhub/internal/domain"
	"github.com/washhub/washhub/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Append writes one ledger row. The log is append-only; there is no update
// or single-row delete path.
func (r *Repository) Append(ctx context.Context, txn *domain.WalletTransaction) error {
	query := `
        INSERT INTO wallet_transactions (customer_id, type, action, amount, reason,
            previous_value, new_value, adjusted_by, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query, txn.CustomerID, txn.Type, txn.Action, txn.Amount,
		txn.Reason, txn.PreviousValue, txn.NewValue, txn.AdjustedBy, time.Now())
	if err := row.Scan(&txn.ID); err != nil {
		zap.L().Error("failed to append wallet transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByCustomerID(ctx context.Context, customerID int) ([]domain.WalletTransaction, error) {
	query := `
        SELECT id, customer_id, type, action, amount, reason, previous_value, new_value, adjusted_by, created_at
        FROM wallet_transactions
        WHERE customer_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		zap.L().Error("failed to list wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.WalletTransaction
	for rows.Next() {
		var t domain.WalletTransaction
		err := rows.Scan(&t.ID, &t.CustomerID, &t.Type, &t.Action, &t.Amount, &t.Reason,
			&t.PreviousValue, &t.NewValue, &t.AdjustedBy, &t.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan wallet transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, nil
}
