package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/usecase"
	"hospital-management/internal/usecase/mocks"
	"hospital-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authHandlerMocks struct {
	auth    *mocks.MockAuthUsecase
	session *mocks.MockSessionUsecase
	profile *mocks.MockProfileUsecase
}

func newAuthHandler(t *testing.T) (*AuthHandler, authHandlerMocks) {
	ctrl := gomock.NewController(t)
	m := authHandlerMocks{
		auth:    mocks.NewMockAuthUsecase(ctrl),
		session: mocks.NewMockSessionUsecase(ctrl),
		profile: mocks.NewMockProfileUsecase(ctrl),
	}
	return NewAuthHandler(m.auth, m.session, m.profile, validator.NewValidator()), m
}

func validPatientForm() map[string]any {
	return map[string]any{
		"email":               "jane@example.com",
		"first_name":          "Jane",
		"last_name":           "Doe",
		"mobile":              "0812345678",
		"user_type":           "patient",
		"password":            "s3cret-pass",
		"confirm_password":    "s3cret-pass",
		"father_name":         "John Doe",
		"illness_description": "Migraine",
		"specialization":      "ignored for patients",
	}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, m := newAuthHandler(t)
		id := uuid.New()
		m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reg *entity.Registration) (*dto.AccountResponse, error) {
				details, ok := reg.Details.(entity.PatientDetails)
				require.True(t, ok)
				assert.Equal(t, "Migraine", details.IllnessDescription)
				return &dto.AccountResponse{ID: id, Username: reg.Email, Email: reg.Email, UserType: "patient"}, nil
			})

		rec := httptest.NewRecorder()
		h.Register(rec, jsonRequest(t, http.MethodPost, "/api/v1/auth/register", validPatientForm()))

		assert.Equal(t, http.StatusCreated, rec.Code)
		env := decode(t, rec)
		assert.True(t, env.Success)
		assert.Contains(t, string(env.Data), id.String())
		assert.NotContains(t, string(env.Data), "password")
	})

	t.Run("validation errors never reach the workflow", func(t *testing.T) {
		h, _ := newAuthHandler(t)
		form := validPatientForm()
		form["email"] = "not-an-email"
		form["user_type"] = "nurse"

		rec := httptest.NewRecorder()
		h.Register(rec, jsonRequest(t, http.MethodPost, "/api/v1/auth/register", form))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Contains(t, string(env.Error), "email must be a valid email address")
		assert.Contains(t, string(env.Error), "user_type must be one of patient, doctor")
	})

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"password mismatch", usecase.ErrPasswordMismatch, http.StatusBadRequest, "Passwords don't match"},
		{"missing illness description", &usecase.RequiredFieldError{Field: "illness_description", Message: "Illness description is required for patients"}, http.StatusBadRequest, "Illness description is required for patients"},
		{"duplicate email", usecase.ErrEmailAlreadyExists, http.StatusConflict, "A user with this email already exists"},
		{"store failure", errors.New("boom"), http.StatusInternalServerError, "Failed to register user"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newAuthHandler(t)
			m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.NewRecorder()
			h.Register(rec, jsonRequest(t, http.MethodPost, "/api/v1/auth/register", validPatientForm()))

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.message, decode(t, rec).Message)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newAuthHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("{"))

		rec := httptest.NewRecorder()
		h.Register(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	body := dto.LoginRequest{Email: "jane@example.com", Password: "s3cret-pass", UserType: "patient"}

	t.Run("issues tokens", func(t *testing.T) {
		h, m := newAuthHandler(t)
		account := &entity.Account{ID: uuid.New(), Email: body.Email, Username: body.Email, Role: entity.RolePatient, IsActive: true}
		m.auth.EXPECT().Login(gomock.Any(), &body).Return(account, nil)
		m.session.EXPECT().Issue(gomock.Any(), account).Return(&dto.TokenResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900}, nil)

		rec := httptest.NewRecorder()
		h.Login(rec, jsonRequest(t, http.MethodPost, "/api/v1/auth/login", body))

		require.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		assert.Contains(t, string(env.Data), `"access_token":"a"`)
		assert.Contains(t, string(env.Data), `"user_type":"patient"`)
	})

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"missing credentials", usecase.ErrMissingCredentials, http.StatusBadRequest, "Must include email and password"},
		{"invalid credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"role mismatch", usecase.ErrRoleMismatch, http.StatusUnauthorized, "Invalid user type"},
		{"disabled", usecase.ErrAccountDisabled, http.StatusForbidden, "User account is disabled"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newAuthHandler(t)
			m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.NewRecorder()
			h.Login(rec, jsonRequest(t, http.MethodPost, "/api/v1/auth/login", body))

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.message, decode(t, rec).Message)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("revokes current tokens", func(t *testing.T) {
		h, m := newAuthHandler(t)
		accountID := uuid.New()
		m.session.EXPECT().Revoke(gomock.Any(), accountID, "access-id", "refresh-token").Return(nil)

		req := jsonRequest(t, http.MethodPost, "/api/v1/auth/logout", dto.LogoutRequest{RefreshToken: "refresh-token"})
		rec := httptest.NewRecorder()
		h.Logout(rec, authenticated(req, accountID, entity.RolePatient, "access-id"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("body is optional", func(t *testing.T) {
		h, m := newAuthHandler(t)
		accountID := uuid.New()
		m.session.EXPECT().Revoke(gomock.Any(), accountID, "access-id", "").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		rec := httptest.NewRecorder()
		h.Logout(rec, authenticated(req, accountID, entity.RoleDoctor, "access-id"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("without identity", func(t *testing.T) {
		h, _ := newAuthHandler(t)
		rec := httptest.NewRecorder()
		h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	t.Run("revoked", func(t *testing.T) {
		h, m := newAuthHandler(t)
		m.session.EXPECT().Refresh(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrTokenRevoked)

		rec := httptest.NewRecorder()
		h.RefreshToken(rec, jsonRequest(t, http.MethodPost, "/api/v1/auth/refresh-token", dto.RefreshTokenRequest{RefreshToken: "r"}))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing token is a validation error", func(t *testing.T) {
		h, _ := newAuthHandler(t)
		rec := httptest.NewRecorder()
		h.RefreshToken(rec, jsonRequest(t, http.MethodPost, "/api/v1/auth/refresh-token", map[string]string{}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_GetCurrentAccount(t *testing.T) {
	h, m := newAuthHandler(t)
	accountID := uuid.New()
	m.profile.EXPECT().GetAccount(gomock.Any(), accountID).Return(&dto.MeResponse{
		User:   &dto.AccountResponse{ID: accountID, UserType: "doctor"},
		Doctor: &dto.DoctorResponse{Specialization: "Radiology"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	h.GetCurrentAccount(rec, authenticated(req, accountID, entity.RoleDoctor, "access-id"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), "Radiology")
}
