package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/washhub/washhub/internal/domain"
	"github.com/washhub/washhub/internal/dto"
	orderservice "github.com/washhub/washhub/internal/service/orderservice"
	"github.com/washhub/washhub/pkg/auth"
	"github.com/washhub/washhub/pkg/utils"
)

type Service interface {
	CreateOrder(ctx context.Context, in orderservice.CreateOrderInput, actor string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, idOrCode string, in orderservice.UpdateOrderInput, actor string) (*orderservice.UpdateResult, error)
	GetOrder(ctx context.Context, idOrCode string) (*domain.Order, []domain.StatusEntry, error)
	GetOrdersByCustomer(ctx context.Context, customerID int) ([]domain.Order, error)
	DeleteOrder(ctx context.Context, idOrCode string) error
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Create godoc
//
//	@Summary		Create a new order
//	@Description	Create a pending order, resolve its hub, charge wallet usage and apply initial bonuses.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order payload"
//	@Success		201		{object}	dto.OrderResponseDTO		"Order created"
//	@Failure		400		{object}	utils.Response				"Invalid request body or insufficient wallet"
//	@Failure		404		{object}	utils.Response				"Customer not found"
//	@Failure		409		{object}	utils.Response				"Voucher already used"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CustomerID == 0 || req.TotalAmount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "customer_id and total_amount are required")
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItem{Name: item.Name, Quantity: item.Quantity, Price: item.Price})
	}

	order, err := h.orderService.CreateOrder(r.Context(), orderservice.CreateOrderInput{
		CustomerID:         req.CustomerID,
		Items:              items,
		TotalAmount:        req.TotalAmount,
		PaymentMethod:      req.PaymentMethod,
		PaymentStatus:      req.PaymentStatus,
		WalletUsed:         req.WalletUsed,
		AppliedVoucherCode: req.AppliedVoucherCode,
		PickupAddress:      req.PickupAddress,
		PickupPincode:      req.PickupPincode,
		DeliveryAddress:    req.DeliveryAddress,
		Notes:              req.Notes,
	}, actorFrom(r))
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrCustomerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrVoucherAlreadyUsed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, orderservice.ErrInsufficientWallet):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toOrderDTO(order))
}

// Update godoc
//
//	@Summary		Update an order
//	@Description	Drive the order state machine: status transitions, fee settlement, history append and delivery awards.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Order code or id"
//	@Param			request	body		dto.UpdateOrderRequestDTO	true	"Partial update"
//	@Success		200		{object}	dto.UpdateOrderResponseDTO	"Updated order with fee info"
//	@Failure		400		{object}	utils.Response				"Unknown status or field"
//	@Failure		404		{object}	utils.Response				"Order not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/orders/{id} [patch]
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	idOrCode := chi.URLParam(r, "id")

	var req dto.UpdateOrderRequestDTO
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.orderService.UpdateOrder(r.Context(), idOrCode, orderservice.UpdateOrderInput{
		Status:             req.Status,
		DeliveryFailureFee: req.DeliveryFailureFee,
		FailureReason:      req.FailureReason,
		PartnerID:          req.PartnerID,
		HubID:              req.HubID,
		PaymentStatus:      req.PaymentStatus,
		Notes:              req.Notes,
		ReachedLocationAt:  req.ReachedLocationAt,
		PickedUpAt:         req.PickedUpAt,
		DeliveredToHubAt:   req.DeliveredToHubAt,
		OutForDeliveryAt:   req.OutForDeliveryAt,
	}, actorFrom(r))
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrUnknownStatus), errors.Is(err, orderservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.UpdateOrderResponseDTO{
		Order:   toOrderDTO(result.Order),
		Fee:     result.Fee,
		Message: result.Message,
	})
}

// Get godoc
//
//	@Summary		Get an order
//	@Description	Fetch one order with its status history, by code or id.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Order code or id"
//	@Success		200	{object}	dto.GetOrderResponseDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	idOrCode := chi.URLParam(r, "id")

	order, history, err := h.orderService.GetOrder(r.Context(), idOrCode)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	entries := make([]dto.StatusEntryDTO, 0, len(history))
	for _, e := range history {
		entries = append(entries, dto.StatusEntryDTO{
			Status:    e.Status,
			UpdatedBy: e.UpdatedBy,
			CreatedAt: e.CreatedAt,
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.GetOrderResponseDTO{
		Order:   toOrderDTO(order),
		History: entries,
	})
}

// ListByCustomer godoc
//
//	@Summary		List a customer's orders
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Customer id"
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Success		204	{object}	utils.Response	"No orders"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{id}/orders [get]
func (h *OrderHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	orders, err := h.orderService.GetOrdersByCustomer(r.Context(), customerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No orders found")
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderDTO(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Delete godoc
//
//	@Summary		Delete an order
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Order code or id"
//	@Success		200	{object}	utils.Response	"Order deleted"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [delete]
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idOrCode := chi.URLParam(r, "id")

	if err := h.orderService.DeleteOrder(r.Context(), idOrCode); err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "order deleted"})
}

func toOrderDTO(order *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:                 order.ID,
		Code:               order.Code,
		CustomerID:         order.CustomerID,
		PartnerID:          order.PartnerID,
		HubID:              order.HubID,
		Status:             order.Status,
		TotalAmount:        order.TotalAmount,
		CancellationFee:    order.CancellationFee,
		DeliveryFailureFee: order.DeliveryFailureFee,
		PaymentMethod:      order.PaymentMethod,
		PaymentStatus:      order.PaymentStatus,
		WalletUsed:         order.WalletUsed,
		AppliedVoucherCode: order.AppliedVoucherCode,
		CancelledAt:        order.CancelledAt,
		DeliveredAt:        order.DeliveredAt,
		DeliveryFailedAt:   order.DeliveryFailedAt,
		CreatedAt:          order.CreatedAt,
	}
}

// actorFrom derives the history attribution from the caller's token.
func actorFrom(r *http.Request) string {
	role, _ := r.Context().Value(auth.RoleKey).(string)
	actorID, _ := r.Context().Value(auth.ActorIDKey).(int)
	if role == "" || actorID == 0 {
		return "system"
	}
	return fmt.Sprintf("%s:%d", role, actorID)
}
