package repository

import (
	"context"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=doctor_profile_repository.go -destination=mocks/doctor_profile_repository_mock.go -package=mocks

type DoctorProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error
	FindByAccountID(ctx context.Context, db *gorm.DB, accountID uuid.UUID) (*entity.DoctorProfile, error)
	FindAll(ctx context.Context, db *gorm.DB, specialization string) ([]entity.DoctorProfile, error)
}
