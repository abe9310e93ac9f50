package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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

var orderColumnNames = []string{
	"id", "code", "customer_id", "partner_id", "hub_id", "status", "total_amount",
	"cancellation_fee", "delivery_failure_fee", "payment_method", "payment_status",
	"wallet_used", "applied_voucher_code", "pickup_address", "pickup_pincode",
	"delivery_address", "notes", "reached_location_at", "picked_up_at",
	"delivered_to_hub_at", "out_for_delivery_at", "delivered_at", "cancelled_at",
	"delivery_failed_at", "created_at",
}

func orderRow(created time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(orderColumnNames).
		AddRow(1, "AB12C", 5, nil, nil, "pending", 500.0,
			0.0, 0.0, "upi", "pending",
			0.0, "", "12 Lake Road", "600001",
			"12 Lake Road", "", nil, nil,
			nil, nil, nil, nil,
			nil, created)
}

func TestRepository_FindByCode(t *testing.T) {
	repo, mock, _ := NewMock(t)
	created := time.Now()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE code = $1`

	tests := []struct {
		name      string
		code      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing order",
			code: "AB12C",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("AB12C").
					WillReturnRows(orderRow(created))
			},
			found: true,
		},
		{
			name: "Missing order returns nil",
			code: "ZZZZZ",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("ZZZZZ").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			code: "AB12C",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("AB12C").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			order, err := repo.FindByCode(context.Background(), tt.code)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, "AB12C", order.Code)
				assert.Equal(t, 5, order.CustomerID)
				assert.Nil(t, order.PartnerID)
			} else {
				assert.Nil(t, order)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(1).
		WillReturnRows(orderRow(time.Now()))

	order, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, order.ID)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(77).
		WillReturnError(pgx.ErrNoRows)

	order, err = repo.FindByID(context.Background(), 77)
	assert.NoError(t, err)
	assert.Nil(t, order)
}

func TestRepository_FindByCustomerID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(5).
		WillReturnRows(orderRow(time.Now()))

	orders, err := repo.FindByCustomerID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "AB12C", orders[0].Code)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(6).
		WillReturnRows(pgxmock.NewRows(orderColumnNames))

	orders, err = repo.FindByCustomerID(context.Background(), 6)
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestRepository_Save(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	created := time.Now()

	query := `INSERT INTO orders (code, customer_id, partner_id, hub_id, status, total_amount, payment_method, payment_status, wallet_used, applied_voucher_code, pickup_address, pickup_pincode, delivery_address, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id, created_at`

	passThrough(txManager)
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("AB12C", 5, (*int)(nil), (*int)(nil), "pending", 500.0, "upi", "pending", 0.0, "",
			"12 Lake Road", "600001", "12 Lake Road", "").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, created))

	order := &domain.Order{
		Code: "AB12C", CustomerID: 5, Status: "pending", TotalAmount: 500,
		PaymentMethod: "upi", PaymentStatus: "pending",
		PickupAddress: "12 Lake Road", PickupPincode: "600001", DeliveryAddress: "12 Lake Road",
	}
	err := repo.Save(context.Background(), order)
	assert.NoError(t, err)
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, created, order.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	query := `UPDATE orders SET partner_id = $1, hub_id = $2, status = $3, cancellation_fee = $4, delivery_failure_fee = $5, payment_status = $6, notes = $7, reached_location_at = $8, picked_up_at = $9, delivered_to_hub_at = $10, out_for_delivery_at = $11, delivered_at = $12, cancelled_at = $13, delivery_failed_at = $14 WHERE id = $15`

	partnerID := 3
	cancelledAt := time.Now()

	passThrough(txManager)
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(&partnerID, (*int)(nil), "cancelled", 100.0, 0.0, "pending", "",
			(*time.Time)(nil), (*time.Time)(nil), (*time.Time)(nil), (*time.Time)(nil),
			(*time.Time)(nil), &cancelledAt, (*time.Time)(nil), 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &domain.Order{
		ID: 1, PartnerID: &partnerID, Status: "cancelled",
		CancellationFee: 100, PaymentStatus: "pending", CancelledAt: &cancelledAt,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `DELETE FROM orders WHERE id = $1`

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.Delete(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err = repo.Delete(context.Background(), 99)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestRepository_AddItems(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `INSERT INTO order_items (order_id, name, quantity, price) VALUES ($1, $2, $3, $4)`

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(1, "Shirt", 3, 50.0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(1, "Bedsheet", 1, 120.0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.AddItems(context.Background(), 1, []domain.OrderItem{
		{Name: "Shirt", Quantity: 3, Price: 50},
		{Name: "Bedsheet", Quantity: 1, Price: 120},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetItems(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `SELECT id, order_id, name, quantity, price FROM order_items WHERE order_id = $1 ORDER BY id ASC`

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "name", "quantity", "price"}).
			AddRow(1, 1, "Shirt", 3, 50.0).
			AddRow(2, 1, "Bedsheet", 1, 120.0))

	items, err := repo.GetItems(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Bedsheet", items[1].Name)
}

func TestRepository_StatusHistory(t *testing.T) {
	repo, mock, _ := NewMock(t)
	created := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO order_status_history (order_id, status, updated_by, created_at) VALUES ($1, $2, $3, $4)`)).
		WithArgs(1, "picked_up", "partner:3", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.AppendStatusHistory(context.Background(), 1, "picked_up", "partner:3"))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, order_id, status, updated_by, created_at FROM order_status_history WHERE order_id = $1 ORDER BY created_at ASC, id ASC`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "status", "updated_by", "created_at"}).
			AddRow(1, 1, "pending", "system", created).
			AddRow(2, 1, "picked_up", "partner:3", created))

	entries, err := repo.GetStatusHistory(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "picked_up", entries[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
