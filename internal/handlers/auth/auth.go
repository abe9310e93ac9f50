package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/washhub/washhub/internal/domain"
	"github.com/washhub/washhub/internal/dto"
	authservice "github.com/washhub/washhub/internal/service/authservice"
	"github.com/washhub/washhub/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, phone, name, password, referredBy string) (*domain.Customer, error)
	Login(ctx context.Context, phone, password string) (string, error)
	RequestOTP(ctx context.Context, phone string) error
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new customer
//	@Description	Create a customer account with its referral code and signup bonus.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Registration payload"
//	@Success		201		{object}	dto.RegisterResponseDTO	"Customer created"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		409		{object}	utils.Response			"Phone already registered"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Phone == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "phone and password are required")
		return
	}

	customer, err := h.authService.Register(r.Context(), req.Phone, req.Name, req.Password, req.ReferredBy)
	if err != nil {
		if errors.Is(err, authservice.ErrPhoneAlreadyExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterResponseDTO{
		ID:      customer.ID,
		Phone:   customer.Phone,
		Message: "registration successful",
	})
}

// Login godoc
//
//	@Summary		Log a customer in
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO		true	"Login payload"
//	@Success		200		{object}	dto.LoginResponseDTO	"Bearer token"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"Invalid credentials"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authService.Login(r.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{Token: token})
}

// RequestOTP godoc
//
//	@Summary		Request a login OTP
//	@Description	Generates a one-time code and hands it to the SMS gateway. The request succeeds even when delivery fails.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OTPRequestDTO	true	"Phone number"
//	@Success		200		{object}	utils.Response		"OTP generated"
//	@Failure		400		{object}	utils.Response		"Invalid request body"
//	@Router			/api/auth/otp [post]
func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.OTPRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Phone == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "phone is required")
		return
	}

	if err := h.authService.RequestOTP(r.Context(), req.Phone); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "OTP generated"})
}
