package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	AccountID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"account_id"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`

	// Relationships
	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"account,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
