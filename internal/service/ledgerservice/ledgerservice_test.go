package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/washhub/washhub/internal/domain"
	"github.com/washhub/washhub/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockCustomerRepo, *MockTransactionRepo, *MockNotificationRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	customerRepo := NewMockCustomerRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	notificationRepo := NewMockNotificationRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	service := New(customerRepo, transactionRepo, notificationRepo, txManager)
	defer ctrl.Finish()
	return service, customerRepo, transactionRepo, notificationRepo, txManager
}

func passThrough(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()
}

func TestAdjust(t *testing.T) {
	service, customerRepo, transactionRepo, _, txManager := NewMock(t)
	passThrough(txManager)

	tests := []struct {
		name             string
		customerID       int
		field            string
		delta            float64
		prepareMock      func()
		expectedPrevious float64
		expectedCurrent  float64
		expectedError    error
	}{
		{
			name:       "Balance increase",
			customerID: 1,
			field:      FieldBalance,
			delta:      100,
			prepareMock: func() {
				customerRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Customer{ID: 1, WalletBalance: 50}, nil)
				customerRepo.EXPECT().UpdateWallet(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *domain.Customer) error {
						assert.Equal(t, 150.0, c.WalletBalance)
						return nil
					})
				transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, txn *domain.WalletTransaction) error {
						assert.Equal(t, ActionIncrease, txn.Action)
						assert.Equal(t, 100.0, txn.Amount)
						assert.Equal(t, 50.0, txn.PreviousValue)
						assert.Equal(t, 150.0, txn.NewValue)
						return nil
					})
			},
			expectedPrevious: 50,
			expectedCurrent:  150,
		},
		{
			name:       "Decrease clamps at zero",
			customerID: 1,
			field:      FieldBalance,
			delta:      -200,
			prepareMock: func() {
				customerRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Customer{ID: 1, WalletBalance: 120}, nil)
				customerRepo.EXPECT().UpdateWallet(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *domain.Customer) error {
						assert.Equal(t, 0.0, c.WalletBalance)
						return nil
					})
				transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, txn *domain.WalletTransaction) error {
						assert.Equal(t, ActionDecrease, txn.Action)
						assert.Equal(t, 120.0, txn.Amount)
						assert.Equal(t, txn.PreviousValue-txn.NewValue, txn.Amount)
						assert.Equal(t, 120.0, txn.PreviousValue)
						assert.Equal(t, 0.0, txn.NewValue)
						return nil
					})
			},
			expectedPrevious: 120,
			expectedCurrent:  0,
		},
		{
			name:       "Points adjustment",
			customerID: 2,
			field:      FieldPoints,
			delta:      25,
			prepareMock: func() {
				customerRepo.EXPECT().GetByID(gomock.Any(), 2).Return(&domain.Customer{ID: 2, LoyaltyPoints: 10}, nil)
				customerRepo.EXPECT().UpdateWallet(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *domain.Customer) error {
						assert.Equal(t, 35, c.LoyaltyPoints)
						return nil
					})
				transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedPrevious: 10,
			expectedCurrent:  35,
		},
		{
			name:       "Unknown field",
			customerID: 1,
			field:      "karma",
			delta:      10,
			prepareMock: func() {
				customerRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Customer{ID: 1}, nil)
			},
			expectedError: ErrUnknownField,
		},
		{
			name:       "Customer not found",
			customerID: 99,
			field:      FieldBalance,
			delta:      10,
			prepareMock: func() {
				customerRepo.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrCustomerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			previous, current, err := service.Adjust(context.Background(), tt.customerID, tt.field, tt.delta, "test", ActorSystem)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPrevious, previous)
				assert.Equal(t, tt.expectedCurrent, current)
			}
		})
	}
}

func TestSettleFee(t *testing.T) {
	service, customerRepo, transactionRepo, _, txManager := NewMock(t)
	passThrough(txManager)

	tests := []struct {
		name            string
		wallet          float64
		fee             float64
		expectedReason  string
		expectedBalance float64
		expectedDue     float64
		expectedAmount  float64
	}{
		{
			name:            "Wallet covers the fee",
			wallet:          500,
			fee:             200,
			expectedReason:  "Cancellation fee for order AB12C",
			expectedBalance: 300,
			expectedDue:     0,
			expectedAmount:  200,
		},
		{
			name:            "Wallet covers part of the fee",
			wallet:          80,
			fee:             200,
			expectedReason:  "Cancellation fee for order AB12C (partial: 80.00 from wallet, 120.00 due)",
			expectedBalance: 0,
			expectedDue:     120,
			expectedAmount:  80,
		},
		{
			name:            "Empty wallet moves the whole fee to due",
			wallet:          0,
			fee:             150,
			expectedReason:  "Cancellation fee for order AB12C (insufficient wallet, 150.00 due)",
			expectedBalance: 0,
			expectedDue:     150,
			expectedAmount:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customerRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Customer{ID: 1, WalletBalance: tt.wallet}, nil)
			customerRepo.EXPECT().UpdateWallet(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, c *domain.Customer) error {
					assert.Equal(t, tt.expectedBalance, c.WalletBalance)
					assert.Equal(t, tt.expectedDue, c.DueAmount)
					return nil
				})
			transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, txn *domain.WalletTransaction) error {
					assert.Equal(t, ActionDecrease, txn.Action)
					assert.Equal(t, tt.expectedAmount, txn.Amount)
					assert.Equal(t, tt.expectedReason, txn.Reason)
					return nil
				})

			reason, err := service.SettleFee(context.Background(), 1, tt.fee, "Cancellation fee for order AB12C", ActorSystem)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedReason, reason)
		})
	}
}

func TestSettleFeeCustomerNotFound(t *testing.T) {
	service, customerRepo, _, _, txManager := NewMock(t)
	passThrough(txManager)

	customerRepo.EXPECT().GetByID(gomock.Any(), 7).Return(nil, nil)

	_, err := service.SettleFee(context.Background(), 7, 100, "fee", ActorSystem)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestRecordDueCleared(t *testing.T) {
	service, customerRepo, transactionRepo, _, txManager := NewMock(t)
	passThrough(txManager)

	customerRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Customer{ID: 1, WalletBalance: 40, DueAmount: 150}, nil)
	customerRepo.EXPECT().ClearDue(gomock.Any(), 1).Return(nil)
	transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.WalletTransaction) error {
			assert.Equal(t, ActionIncrease, txn.Action)
			assert.Equal(t, 0.0, txn.Amount)
			assert.Equal(t, "Due of 150.00 cleared with order AB12C", txn.Reason)
			assert.Equal(t, 40.0, txn.PreviousValue)
			assert.Equal(t, 40.0, txn.NewValue)
			return nil
		})

	err := service.RecordDueCleared(context.Background(), 1, 150, "AB12C", ActorSystem)
	assert.NoError(t, err)
}

func TestManualAdjust(t *testing.T) {
	service, customerRepo, transactionRepo, notificationRepo, txManager := NewMock(t)
	passThrough(txManager)

	tests := []struct {
		name          string
		field         string
		action        string
		amount        float64
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Invalid action",
			field:         FieldBalance,
			action:        "reset",
			amount:        10,
			prepareMock:   func() {},
			expectedError: ErrInvalidAction,
		},
		{
			name:          "Unknown field",
			field:         "karma",
			action:        ActionIncrease,
			amount:        10,
			prepareMock:   func() {},
			expectedError: ErrUnknownField,
		},
		{
			name:   "Decrease routes through the ledger and notifies",
			field:  FieldBalance,
			action: ActionDecrease,
			amount: 30,
			prepareMock: func() {
				customerRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Customer{ID: 1, WalletBalance: 100}, nil)
				customerRepo.EXPECT().UpdateWallet(gomock.Any(), gomock.Any()).Return(nil)
				transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, txn *domain.WalletTransaction) error {
						assert.Equal(t, ActionDecrease, txn.Action)
						assert.Equal(t, 30.0, txn.Amount)
						assert.Equal(t, "admin:2", txn.AdjustedBy)
						return nil
					})
				notificationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, n *domain.Notification) error {
						assert.Equal(t, "Wallet debited", n.Title)
						assert.Equal(t, "customer", n.Audience)
						return nil
					})
			},
		},
		{
			name:   "Failed notification does not fail the adjustment",
			field:  FieldPoints,
			action: ActionIncrease,
			amount: 10,
			prepareMock: func() {
				customerRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Customer{ID: 1, LoyaltyPoints: 5}, nil)
				customerRepo.EXPECT().UpdateWallet(gomock.Any(), gomock.Any()).Return(nil)
				transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				notificationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("notification store down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			_, _, err := service.ManualAdjust(context.Background(), 1, tt.field, tt.action, tt.amount, "support ticket", "admin:2")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListTransactions(t *testing.T) {
	service, _, transactionRepo, _, _ := NewMock(t)

	expected := []domain.WalletTransaction{
		{ID: 2, CustomerID: 1, Type: FieldBalance, Action: ActionDecrease, Amount: 50},
		{ID: 1, CustomerID: 1, Type: FieldPoints, Action: ActionIncrease, Amount: 25},
	}
	transactionRepo.EXPECT().ListByCustomerID(gomock.Any(), 1).Return(expected, nil)

	txns, err := service.ListTransactions(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, txns)

	transactionRepo.EXPECT().ListByCustomerID(gomock.Any(), 2).Return(nil, errors.New("some error"))
	_, err = service.ListTransactions(context.Background(), 2)
	assert.Error(t, err)
}
