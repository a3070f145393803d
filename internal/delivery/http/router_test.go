package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/delivery/http/handler"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/infrastructure/metrics"
	"hospital-management/internal/usecase/mocks"
	"hospital-management/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, corsOrigin string) (*mux.Router, *mocks.MockProfileUsecase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthUsecase(ctrl)
	sessions := mocks.NewMockSessionUsecase(ctrl)
	profiles := mocks.NewMockProfileUsecase(ctrl)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	registry := prometheus.NewRegistry()

	router := NewRouter(
		handler.NewAuthHandler(auth, sessions, profiles, validator.NewValidator()),
		handler.NewDoctorHandler(profiles),
		handler.NewPatientHandler(profiles),
		middleware.NewAuthMiddleware(sessions),
		middleware.NewCORSMiddleware(corsOrigin),
		middleware.NewRequestLogger(log, metrics.New(registry)),
		registry,
	)
	return router.Setup(), profiles
}

func TestRouter_Preflight(t *testing.T) {
	router, _ := newTestRouter(t, "http://localhost:3000")

	for _, path := range []string{
		"/api/v1/auth/register",
		"/api/v1/auth/login",
		"/api/v1/auth/me",
		"/api/v1/doctors",
		"/api/v1/doctors/0b7f6a3e-7a51-4c59-9d55-5c7c1f0e2a11/patients",
	} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, path, nil)
			req.Header.Set("Origin", "http://localhost:3000")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "Content-Type, Authorization")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
		})
	}
}

func TestRouter_CORSHeadersOnRoutedRequest(t *testing.T) {
	router, profiles := newTestRouter(t, "")
	profiles.EXPECT().ListDoctors(gomock.Any(), "").Return(&dto.DoctorListResponse{Doctors: []dto.DoctorResponse{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_ProtectedRouteRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_OtherUnroutedMethodsAreNotPreflight(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/auth/login", nil))

	assert.Contains(t, []int{http.StatusNotFound, http.StatusMethodNotAllowed}, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_UnknownPathIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
