package settings

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/washhub/washhub/internal/domain"
	"github.com/washhub/washhub/internal/dto"
	settingsservice "github.com/washhub/washhub/internal/service/settingsservice"
	"github.com/washhub/washhub/pkg/utils"
)

type Service interface {
	GetOrderCharges(ctx context.Context) (*domain.OrderCharges, error)
	UpdateOrderCharges(ctx context.Context, in settingsservice.UpdateChargesInput) (*domain.OrderCharges, error)
	GetWalletSettings(ctx context.Context) (*domain.WalletSettings, error)
	UpdateWalletSettings(ctx context.Context, in settingsservice.UpdateWalletSettingsInput) (*domain.WalletSettings, error)
}

type SettingsHandler struct {
	settingsService Service
}

func New(settingsService Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetCharges godoc
//
//	@Summary		Get the order fee schedule
//	@Description	Returns the fee schedule, creating defaults on first read.
//	@Tags			Settings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.OrderChargesDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/settings/charges [get]
func (h *SettingsHandler) GetCharges(w http.ResponseWriter, r *http.Request) {
	charges, err := h.settingsService.GetOrderCharges(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toChargesDTO(charges))
}

// UpdateCharges godoc
//
//	@Summary		Update the order fee schedule
//	@Tags			Settings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateOrderChargesRequestDTO	true	"Partial fee schedule"
//	@Success		200		{object}	dto.OrderChargesDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/settings/charges [patch]
func (h *SettingsHandler) UpdateCharges(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateOrderChargesRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	charges, err := h.settingsService.UpdateOrderCharges(r.Context(), settingsservice.UpdateChargesInput{
		CancellationPercentage: req.CancellationPercentage,
		CustomerUnavailable:    req.CustomerUnavailable,
		IncorrectAddress:       req.IncorrectAddress,
		RefusalToAccept:        req.RefusalToAccept,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toChargesDTO(charges))
}

// GetWalletSettings godoc
//
//	@Summary		Get the wallet/loyalty settings
//	@Description	Returns the loyalty policy, creating defaults on first read.
//	@Tags			Settings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletSettingsDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/settings/wallet [get]
func (h *SettingsHandler) GetWalletSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetWalletSettings(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWalletSettingsDTO(settings))
}

// UpdateWalletSettings godoc
//
//	@Summary		Update the wallet/loyalty settings
//	@Tags			Settings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateWalletSettingsRequestDTO	true	"Partial settings"
//	@Success		200		{object}	dto.WalletSettingsDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/settings/wallet [patch]
func (h *SettingsHandler) UpdateWalletSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateWalletSettingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateWalletSettings(r.Context(), settingsservice.UpdateWalletSettingsInput{
		PointsPerRupee:        req.PointsPerRupee,
		MinRedeemPoints:       req.MinRedeemPoints,
		ReferralPoints:        req.ReferralPoints,
		SignupBonusPoints:     req.SignupBonusPoints,
		OrderCompletionPoints: req.OrderCompletionPoints,
		MinOrderPrice:         req.MinOrderPrice,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWalletSettingsDTO(settings))
}

func toChargesDTO(charges *domain.OrderCharges) dto.OrderChargesDTO {
	return dto.OrderChargesDTO{
		CancellationPercentage: charges.CancellationPercentage,
		CustomerUnavailable:    charges.CustomerUnavailable,
		IncorrectAddress:       charges.IncorrectAddress,
		RefusalToAccept:        charges.RefusalToAccept,
	}
}

func toWalletSettingsDTO(settings *domain.WalletSettings) dto.WalletSettingsDTO {
	return dto.WalletSettingsDTO{
		PointsPerRupee:        settings.PointsPerRupee,
		MinRedeemPoints:       settings.MinRedeemPoints,
		ReferralPoints:        settings.ReferralPoints,
		SignupBonusPoints:     settings.SignupBonusPoints,
		OrderCompletionPoints: settings.OrderCompletionPoints,
		MinOrderPrice:         settings.MinOrderPrice,
	}
}
