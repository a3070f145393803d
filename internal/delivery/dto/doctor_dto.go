package dto

type DoctorResponse struct {
	User           *AccountResponse `json:"user"`
	Specialization string           `json:"specialization"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
