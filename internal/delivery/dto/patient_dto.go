package dto

import "github.com/google/uuid"

// PatientResponse represents a patient profile with its account. The two
// assigned_doctor_* convenience fields are omitted when no doctor is assigned.
type PatientResponse struct {
	User                         *AccountResponse `json:"user"`
	FatherName                   string           `json:"father_name"`
	AssignedDoctor               *uuid.UUID       `json:"assigned_doctor"`
	AssignedDoctorName           string           `json:"assigned_doctor_name,omitempty"`
	AssignedDoctorSpecialization string           `json:"assigned_doctor_specialization,omitempty"`
	IllnessDescription           string           `json:"illness_description"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
