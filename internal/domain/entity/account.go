package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is the identity record every patient and doctor logs in with
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username  string    `gorm:"type:varchar(255);not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:uq_accounts_email;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FirstName string    `gorm:"type:varchar(150);not null;default:''" json:"first_name"`
	LastName  string    `gorm:"type:varchar(150);not null;default:''" json:"last_name"`
	Mobile    string    `gorm:"type:varchar(15);not null" json:"mobile"`
	Role      Role      `gorm:"type:varchar(10);not null;index" json:"user_type"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	PatientProfile *PatientProfile `gorm:"foreignKey:AccountID" json:"patient_profile,omitempty"`
	DoctorProfile  *DoctorProfile  `gorm:"foreignKey:AccountID" json:"doctor_profile,omitempty"`
}

func (Account) TableName() string {
	return "accounts"
}

// FullName joins first and last name, skipping whichever is blank.
func (a *Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
