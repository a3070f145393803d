package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"
	"hospital-management/pkg/validator"
)

type AuthHandler struct {
	authUsecase    usecase.AuthUsecase
	sessionUsecase usecase.SessionUsecase
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	sessionUsecase usecase.SessionUsecase,
	profileUsecase usecase.ProfileUsecase,
	validator *validator.CustomValidator,
) *AuthHandler {
	return &AuthHandler{
		authUsecase:    authUsecase,
		sessionUsecase: sessionUsecase,
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

// Register handles patient and doctor sign-up
// @Summary Register a new account
// @Description Register a patient or doctor account together with its profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	account, err := h.authUsecase.Register(r.Context(), converter.RegisterRequestToRegistration(&req))
	if err != nil {
		var fieldErr *usecase.RequiredFieldError
		switch {
		case errors.As(err, &fieldErr):
			response.Error(w, http.StatusBadRequest, fieldErr.Message, map[string]string{fieldErr.Field: fieldErr.Message})
		case errors.Is(err, usecase.ErrPasswordMismatch):
			response.Error(w, http.StatusBadRequest, "Passwords don't match", map[string]string{"confirm_password": "Passwords don't match"})
		case errors.Is(err, usecase.ErrUnknownRole):
			response.BadRequest(w, "Invalid user type")
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			response.Conflict(w, "A user with this email already exists")
		default:
			response.InternalServerError(w, "Failed to register user")
		}
		return
	}

	response.Success(w, http.StatusCreated, "User registered successfully", account)
}

// Login handles account login
// @Summary Login
// @Description Login with email, password and the user type being signed in as
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	account, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingCredentials):
			response.BadRequest(w, "Must include email and password")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid credentials")
		case errors.Is(err, usecase.ErrRoleMismatch):
			response.Unauthorized(w, "Invalid user type")
		case errors.Is(err, usecase.ErrAccountDisabled):
			response.Forbidden(w, "User account is disabled")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	tokens, err := h.sessionUsecase.Issue(r.Context(), account)
	if err != nil {
		response.InternalServerError(w, "Failed to login")
		return
	}

	response.Success(w, http.StatusOK, "Login successful", &dto.LoginResponse{
		Tokens: tokens,
		User:   converter.AccountToResponse(account),
	})
}

// Logout handles account logout
// @Summary Logout
// @Description Revoke the current access token and, if supplied, its refresh token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	// The body is optional
	var req dto.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.sessionUsecase.Revoke(r.Context(), accountID, tokenID, req.RefreshToken); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Get a new token pair using a refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.sessionUsecase.Refresh(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidToken), errors.Is(err, usecase.ErrTokenRevoked), errors.Is(err, usecase.ErrAccountNotFound):
			response.Unauthorized(w, err.Error())
		case errors.Is(err, usecase.ErrAccountDisabled):
			response.Forbidden(w, "User account is disabled")
		default:
			response.InternalServerError(w, "Failed to refresh token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
}

// GetCurrentAccount handles getting the signed-in account
// @Summary Get current account
// @Description Get the authenticated account and its patient or doctor profile
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	account, err := h.profileUsecase.GetAccount(r.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAccountNotFound):
			response.NotFound(w, "Account not found")
		default:
			response.InternalServerError(w, "Failed to get account info")
		}
		return
	}

	response.Success(w, http.StatusOK, "Account retrieved successfully", account)
}
