package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/washhub/washhub/internal/domain"
	"github.com/washhub/washhub/internal/dto"
	ledgerservice "github.com/washhub/washhub/internal/service/ledgerservice"
	"github.com/washhub/washhub/pkg/auth"
	"github.com/washhub/washhub/pkg/utils"
)

type Service interface {
	ManualAdjust(ctx context.Context, customerID int, field, action string, amount float64, reason, actor string) (float64, float64, error)
	ListTransactions(ctx context.Context, customerID int) ([]domain.WalletTransaction, error)
}

type WalletHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *WalletHandler {
	return &WalletHandler{
		ledgerService: ledgerService,
	}
}

// Adjust godoc
//
//	@Summary		Manually adjust a customer ledger
//	@Description	Admin adjustment of wallet balance or loyalty points; writes the audit log and notifies the customer.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdjustWalletRequestDTO	true	"Adjustment payload"
//	@Success		200		{object}	dto.AdjustWalletResponseDTO	"Old and new values"
//	@Failure		400		{object}	utils.Response				"Missing or invalid fields"
//	@Failure		404		{object}	utils.Response				"Customer not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/adjust [post]
func (h *WalletHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustWalletRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CustomerID == 0 || req.Type == "" || req.Action == "" || req.Amount <= 0 || req.Reason == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "customer_id, type, action, amount and reason are required")
		return
	}

	oldValue, newValue, err := h.ledgerService.ManualAdjust(r.Context(), req.CustomerID, req.Type, req.Action, req.Amount, req.Reason, adminActor(r))
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrCustomerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ledgerservice.ErrUnknownField), errors.Is(err, ledgerservice.ErrInvalidAction):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AdjustWalletResponseDTO{
		OldValue: oldValue,
		NewValue: newValue,
	})
}

// ListTransactions godoc
//
//	@Summary		Get a customer's wallet transaction history
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Customer id"
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Success		204	{object}	utils.Response	"No transactions"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{id}/transactions [get]
func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	txns, err := h.ledgerService.ListTransactions(r.Context(), customerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(txns) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions found")
		return
	}

	response := make([]dto.TransactionResponseDTO, 0, len(txns))
	for _, t := range txns {
		response = append(response, dto.TransactionResponseDTO{
			Type:          t.Type,
			Action:        t.Action,
			Amount:        t.Amount,
			Reason:        t.Reason,
			PreviousValue: t.PreviousValue,
			NewValue:      t.NewValue,
			AdjustedBy:    t.AdjustedBy,
			CreatedAt:     t.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func adminActor(r *http.Request) string {
	if id, ok := r.Context().Value(auth.ActorIDKey).(int); ok && id != 0 {
		return "admin:" + strconv.Itoa(id)
	}
	return "System"
}
