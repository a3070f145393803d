package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile with its preloaded
// Account and AssignedDoctor.Account to PatientResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	response := &dto.PatientResponse{
		User:               AccountToResponse(&profile.Account),
		FatherName:         profile.FatherName,
		AssignedDoctor:     profile.AssignedDoctorID,
		IllnessDescription: profile.IllnessDescription,
	}

	if profile.AssignedDoctor != nil {
		response.AssignedDoctorName = profile.AssignedDoctor.Account.FullName()
		response.AssignedDoctorSpecialization = profile.AssignedDoctor.Specialization
	}

	return response
}

// PatientProfilesToResponses converts a slice of PatientProfile entities
func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(profiles))
	for i := range profiles {
		responses[i] = *PatientProfileToResponse(&profiles[i])
	}
	return responses
}
