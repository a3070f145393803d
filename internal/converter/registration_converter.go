package converter

import (
	"strings"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

// RegisterRequestToRegistration keeps only the fields that belong to the
// requested user type. Text fields are trimmed; passwords are passed as sent.
// An unknown user type yields a Registration with nil Details.
func RegisterRequestToRegistration(req *dto.RegisterRequest) *entity.Registration {
	if req == nil {
		return nil
	}

	registration := &entity.Registration{
		Email:           strings.TrimSpace(req.Email),
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Mobile:          strings.TrimSpace(req.Mobile),
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}

	switch entity.Role(req.UserType) {
	case entity.RolePatient:
		registration.Details = entity.PatientDetails{
			FatherName:         strings.TrimSpace(req.FatherName),
			IllnessDescription: strings.TrimSpace(req.IllnessDescription),
			AssignedDoctorID:   req.AssignedDoctorID,
		}
	case entity.RoleDoctor:
		registration.Details = entity.DoctorDetails{
			Specialization: strings.TrimSpace(req.Specialization),
		}
	}

	return registration
}
