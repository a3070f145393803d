package repository

import (
	"context"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patientProfileRepository struct{}

func NewPatientProfileRepository() domainRepo.PatientProfileRepository {
	return &patientProfileRepository{}
}

func (r *patientProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.PatientProfile) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error
}

func (r *patientProfileRepository) FindByAccountID(ctx context.Context, db *gorm.DB, accountID uuid.UUID) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := db.WithContext(ctx).
		Preload("Account").
		Preload("AssignedDoctor.Account").
		Where("account_id = ?", accountID).
		First(&profile).Error
	return notFoundAsNil(&profile, err)
}

func (r *patientProfileRepository) FindByAssignedDoctor(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.PatientProfile, error) {
	var profiles []entity.PatientProfile
	err := db.WithContext(ctx).
		Joins("Account").
		Preload("AssignedDoctor.Account").
		Where("patient_profiles.assigned_doctor_id = ?", doctorID).
		Order(`"Account".last_name, "Account".first_name`).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
