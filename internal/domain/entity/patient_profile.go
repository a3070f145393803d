package entity

import "github.com/google/uuid"

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	AccountID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"account_id"`
	FatherName         string     `gorm:"type:varchar(100);not null" json:"father_name"`
	IllnessDescription string     `gorm:"type:text;not null" json:"illness_description"`
	AssignedDoctorID   *uuid.UUID `gorm:"type:uuid;index" json:"assigned_doctor_id,omitempty"`

	// Relationships
	Account        Account        `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"account,omitempty"`
	AssignedDoctor *DoctorProfile `gorm:"foreignKey:AssignedDoctorID;references:AccountID;constraint:OnDelete:SET NULL" json:"assigned_doctor,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
