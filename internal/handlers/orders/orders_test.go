package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/washhub/washhub/internal/domain"
	"github.com/washhub/washhub/internal/dto"
	orderservice "github.com/washhub/washhub/internal/service/orderservice"
	"github.com/washhub/washhub/pkg/auth"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"customer_id":5,"total_amount":500,"payment_method":"upi","pickup_pincode":"600001","items":[{"name":"Shirt","quantity":3,"price":50}]}`,
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any(), "customer:5").
					DoAndReturn(func(_ context.Context, in orderservice.CreateOrderInput, _ string) (*domain.Order, error) {
						assert.Equal(t, 5, in.CustomerID)
						assert.Equal(t, 500.0, in.TotalAmount)
						assert.Len(t, in.Items, 1)
						return &domain.Order{ID: 1, Code: "AB12C", CustomerID: 5, Status: "pending", TotalAmount: 500}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"customer_id":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Unknown field rejected",
			body:          `{"customer_id":5,"total_amount":500,"surprise":true}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Missing total amount",
			body:          `{"customer_id":5}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "customer_id and total_amount are required",
		},
		{
			name: "Customer not found",
			body: `{"customer_id":9,"total_amount":500}`,
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any(), "customer:5").
					Return(nil, orderservice.ErrCustomerNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Voucher already used",
			body: `{"customer_id":5,"total_amount":500,"applied_voucher_code":"WELCOME50"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any(), "customer:5").
					Return(nil, orderservice.ErrVoucherAlreadyUsed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Insufficient wallet",
			body: `{"customer_id":5,"total_amount":500,"wallet_used":900}`,
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any(), "customer:5").
					Return(nil, orderservice.ErrInsufficientWallet)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"customer_id":5,"total_amount":500}`,
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any(), "customer:5").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(tt.body))
			ctx := context.WithValue(r.Context(), auth.RoleKey, auth.RoleCustomer)
			ctx = context.WithValue(ctx, auth.ActorIDKey, 5)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.OrderResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "AB12C", body.Code)
				assert.Equal(t, "pending", body.Status)
			}
		})
	}
}

func TestUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedFee  float64
	}{
		{
			name: "Cancellation with fee",
			body: `{"status":"cancelled"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateOrder(gomock.Any(), "AB12C", gomock.Any(), "admin:2").
					Return(&orderservice.UpdateResult{
						Order:   &domain.Order{ID: 1, Code: "AB12C", Status: "cancelled", CancellationFee: 100},
						Fee:     100,
						Message: "order cancelled",
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedFee:  100,
		},
		{
			name:         "Invalid request body",
			body:         `{"status":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Order not found",
			body: `{"status":"cancelled"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateOrder(gomock.Any(), "AB12C", gomock.Any(), "admin:2").
					Return(nil, orderservice.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Unknown status",
			body: `{"status":"teleported"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateOrder(gomock.Any(), "AB12C", gomock.Any(), "admin:2").
					Return(nil, orderservice.ErrUnknownStatus)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid transition",
			body: `{"status":"cancelled"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateOrder(gomock.Any(), "AB12C", gomock.Any(), "admin:2").
					Return(nil, orderservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"status":"cancelled"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateOrder(gomock.Any(), "AB12C", gomock.Any(), "admin:2").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPatch, "/api/orders/AB12C", bytes.NewBufferString(tt.body))
			ctx := context.WithValue(r.Context(), auth.RoleKey, auth.RoleAdmin)
			ctx = context.WithValue(ctx, auth.ActorIDKey, 2)
			r = withURLParam(r.WithContext(ctx), "id", "AB12C")
			w := httptest.NewRecorder()

			handler.Update(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.UpdateOrderResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "cancelled", body.Order.Status)
				assert.Equal(t, tt.expectedFee, body.Fee)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Order with history", func(t *testing.T) {
		service.EXPECT().
			GetOrder(gomock.Any(), "AB12C").
			Return(&domain.Order{ID: 1, Code: "AB12C", Status: "delivered"},
				[]domain.StatusEntry{
					{Status: "pending", UpdatedBy: "system"},
					{Status: "delivered", UpdatedBy: "partner:3"},
				}, nil)

		r := withURLParam(httptest.NewRequest(http.MethodGet, "/api/orders/AB12C", nil), "id", "AB12C")
		w := httptest.NewRecorder()

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.GetOrderResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, "AB12C", body.Order.Code)
		assert.Len(t, body.History, 2)
		assert.Equal(t, "partner:3", body.History[1].UpdatedBy)
	})

	t.Run("Order not found", func(t *testing.T) {
		service.EXPECT().
			GetOrder(gomock.Any(), "ZZZZZ").
			Return(nil, nil, orderservice.ErrOrderNotFound)

		r := withURLParam(httptest.NewRequest(http.MethodGet, "/api/orders/ZZZZZ", nil), "id", "ZZZZZ")
		w := httptest.NewRecorder()

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListByCustomerHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		customerID   string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:       "Successful retrieval",
			customerID: "5",
			prepareMock: func() {
				service.EXPECT().GetOrdersByCustomer(gomock.Any(), 5).
					Return([]domain.Order{{ID: 1, Code: "AB12C", CustomerID: 5}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:       "No orders",
			customerID: "6",
			prepareMock: func() {
				service.EXPECT().GetOrdersByCustomer(gomock.Any(), 6).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Invalid customer id",
			customerID:   "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:       "Internal server error",
			customerID: "5",
			prepareMock: func() {
				service.EXPECT().GetOrdersByCustomer(gomock.Any(), 5).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withURLParam(httptest.NewRequest(http.MethodGet, "/api/customers/"+tt.customerID+"/orders", nil), "id", tt.customerID)
			w := httptest.NewRecorder()

			handler.ListByCustomer(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Order deleted", func(t *testing.T) {
		service.EXPECT().DeleteOrder(gomock.Any(), "AB12C").Return(nil)

		r := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/orders/AB12C", nil), "id", "AB12C")
		w := httptest.NewRecorder()

		handler.Delete(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "order deleted")
	})

	t.Run("Order not found", func(t *testing.T) {
		service.EXPECT().DeleteOrder(gomock.Any(), "ZZZZZ").Return(orderservice.ErrOrderNotFound)

		r := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/orders/ZZZZZ", nil), "id", "ZZZZZ")
		w := httptest.NewRecorder()

		handler.Delete(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
