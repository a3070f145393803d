package repository

import (
	"context"
	"errors"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct{}

func NewAccountRepository() domainRepo.AccountRepository {
	return &accountRepository{}
}

func (r *accountRepository) Create(ctx context.Context, db *gorm.DB, account *entity.Account) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(account).Error
}

func (r *accountRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	return notFoundAsNil(&account, err)
}

func (r *accountRepository) FindByIDWithProfile(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := db.WithContext(ctx).
		Preload("PatientProfile.AssignedDoctor.Account").
		Preload("DoctorProfile").
		Where("id = ?", id).
		First(&account).Error
	return notFoundAsNil(&account, err)
}

func (r *accountRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Account, error) {
	var account entity.Account
	err := db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	return notFoundAsNil(&account, err)
}

func (r *accountRepository) ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Account{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// notFoundAsNil maps gorm.ErrRecordNotFound to a nil result without error
func notFoundAsNil[T any](record *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}
