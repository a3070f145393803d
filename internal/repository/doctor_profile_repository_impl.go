package repository

import (
	"context"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error
}

func (r *doctorProfileRepository) FindByAccountID(ctx context.Context, db *gorm.DB, accountID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.WithContext(ctx).Preload("Account").Where("account_id = ?", accountID).First(&profile).Error
	return notFoundAsNil(&profile, err)
}

// FindAll lists doctors ordered by name. A non-empty specialization filters
// case-insensitively on a substring match.
func (r *doctorProfileRepository) FindAll(ctx context.Context, db *gorm.DB, specialization string) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	query := db.WithContext(ctx).Joins("Account")
	if specialization != "" {
		query = query.Where("doctor_profiles.specialization ILIKE ?", "%"+specialization+"%")
	}
	err := query.Order(`"Account".last_name, "Account".first_name`).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
