package settingsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/washhub/washhub/internal/domain"
	"github.com/washhub/washhub/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func passThrough(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

const (
	chargesUpsert = `INSERT INTO order_charges (id) VALUES (1) ON CONFLICT (id) DO NOTHING`
	chargesSelect = `SELECT id, cancellation_percentage, customer_unavailable, incorrect_address, refusal_to_accept FROM order_charges WHERE id = 1`

	walletUpsert = `INSERT INTO wallet_settings (id) VALUES (1) ON CONFLICT (id) DO NOTHING`
	walletSelect = `SELECT id, points_per_rupee, min_redeem_points, referral_points, signup_bonus_points, order_completion_points, min_order_price FROM wallet_settings WHERE id = 1`
)

func TestRepository_GetOrderCharges(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Ensures the singleton row then reads it", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(chargesUpsert)).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery(regexp.QuoteMeta(chargesSelect)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "cancellation_percentage", "customer_unavailable", "incorrect_address", "refusal_to_accept"}).
				AddRow(1, 20.0, 150.0, 150.0, 150.0))

		charges, err := repo.GetOrderCharges(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 20.0, charges.CancellationPercentage)
		assert.Equal(t, 150.0, charges.RefusalToAccept)
	})

	t.Run("Upsert failure", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(chargesUpsert)).
			WillReturnError(errors.New("database error"))

		_, err := repo.GetOrderCharges(context.Background())
		assert.Error(t, err)
	})
}

func TestRepository_UpdateOrderCharges(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	query := `UPDATE order_charges SET cancellation_percentage = $1, customer_unavailable = $2, incorrect_address = $3, refusal_to_accept = $4 WHERE id = 1`

	passThrough(txManager)
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(25.0, 150.0, 150.0, 200.0).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateOrderCharges(context.Background(), &domain.OrderCharges{
		ID: 1, CancellationPercentage: 25, CustomerUnavailable: 150,
		IncorrectAddress: 150, RefusalToAccept: 200,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWalletSettings(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(walletUpsert)).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectQuery(regexp.QuoteMeta(walletSelect)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "points_per_rupee", "min_redeem_points", "referral_points", "signup_bonus_points", "order_completion_points", "min_order_price"}).
			AddRow(1, 1.0, 100, 50, 25, 10, 0.0))

	settings, err := repo.GetWalletSettings(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1.0, settings.PointsPerRupee)
	assert.Equal(t, 50, settings.ReferralPoints)
}

func TestRepository_UpdateWalletSettings(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	query := `UPDATE wallet_settings SET points_per_rupee = $1, min_redeem_points = $2, referral_points = $3, signup_bonus_points = $4, order_completion_points = $5, min_order_price = $6 WHERE id = 1`

	passThrough(txManager)
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(2.0, 200, 50, 25, 10, 100.0).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateWalletSettings(context.Background(), &domain.WalletSettings{
		ID: 1, PointsPerRupee: 2, MinRedeemPoints: 200, ReferralPoints: 50,
		SignupBonusPoints: 25, OrderCompletionPoints: 10, MinOrderPrice: 100,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
