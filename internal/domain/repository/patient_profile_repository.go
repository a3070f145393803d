package repository

import (
	"context"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=patient_profile_repository.go -destination=mocks/patient_profile_repository_mock.go -package=mocks

type PatientProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.PatientProfile) error
	FindByAccountID(ctx context.Context, db *gorm.DB, accountID uuid.UUID) (*entity.PatientProfile, error)
	FindByAssignedDoctor(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.PatientProfile, error)
}
