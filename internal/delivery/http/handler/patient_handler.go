package handler

import (
	"errors"
	"net/http"

	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	profileUsecase usecase.ProfileUsecase
}

func NewPatientHandler(profileUsecase usecase.ProfileUsecase) *PatientHandler {
	return &PatientHandler{
		profileUsecase: profileUsecase,
	}
}

// GetPatient returns a patient profile. Patients may only read their own;
// doctors may read any.
// @Summary Get patient
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Patient account ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [get]
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	callerID, ok := middleware.GetAccountIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())
	if role != entity.RoleDoctor && callerID != patientID {
		response.Forbidden(w, "You can only view your own profile")
		return
	}

	patient, err := h.profileUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}
