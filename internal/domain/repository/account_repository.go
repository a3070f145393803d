package repository

import (
	"context"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=account_repository.go -destination=mocks/account_repository_mock.go -package=mocks

// AccountRepository is the identity store. Finders return (nil, nil) when no row matches.
type AccountRepository interface {
	Create(ctx context.Context, db *gorm.DB, account *entity.Account) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Account, error)
	FindByIDWithProfile(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Account, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Account, error)
	ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error)
}
