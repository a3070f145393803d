package handler

import (
	"errors"
	"net/http"
	"strings"

	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	profileUsecase usecase.ProfileUsecase
}

func NewDoctorHandler(profileUsecase usecase.ProfileUsecase) *DoctorHandler {
	return &DoctorHandler{
		profileUsecase: profileUsecase,
	}
}

// ListDoctors lists doctors for the registration form
// @Summary List doctors
// @Tags Doctors
// @Produce json
// @Param specialization query string false "Specialization filter (substring, case-insensitive)"
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	specialization := strings.TrimSpace(r.URL.Query().Get("specialization"))

	doctors, err := h.profileUsecase.ListDoctors(r.Context(), specialization)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GetDoctor returns a doctor profile
// @Summary Get doctor
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor account ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [get]
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.profileUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// ListAssignedPatients lists the patients assigned to the signed-in doctor
// @Summary List assigned patients
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor account ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /doctors/{id}/patients [get]
func (h *DoctorHandler) ListAssignedPatients(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	callerID, ok := middleware.GetAccountIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if callerID != doctorID {
		response.Forbidden(w, "You can only view your own patients")
		return
	}

	patients, err := h.profileUsecase.ListAssignedPatients(r.Context(), doctorID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get patients")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}
