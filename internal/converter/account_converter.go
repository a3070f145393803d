package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

// AccountToResponse converts an Account entity to AccountResponse DTO
func AccountToResponse(account *entity.Account) *dto.AccountResponse {
	if account == nil {
		return nil
	}

	return &dto.AccountResponse{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Mobile:    account.Mobile,
		UserType:  account.Role.String(),
		CreatedAt: account.CreatedAt,
	}
}

// AccountToMeResponse converts an Account with its preloaded profile.
// The profile's Account is not preloaded from this side, so it is filled in here.
func AccountToMeResponse(account *entity.Account) *dto.MeResponse {
	if account == nil {
		return nil
	}

	response := &dto.MeResponse{
		User: AccountToResponse(account),
	}

	if account.PatientProfile != nil {
		profile := *account.PatientProfile
		profile.Account = *account
		response.Patient = PatientProfileToResponse(&profile)
	}

	if account.DoctorProfile != nil {
		profile := *account.DoctorProfile
		profile.Account = *account
		response.Doctor = DoctorProfileToResponse(&profile)
	}

	return response
}
