package repository

import (
	"context"
	"time"

	"hospital-management/pkg/jwt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=session_repository.go -destination=mocks/session_repository_mock.go -package=mocks

// SessionRepository keeps the allow-list of issued token ids. A token whose id
// is absent has been revoked or has expired.
type SessionRepository interface {
	Save(ctx context.Context, tokenType jwt.TokenType, accountID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, tokenType jwt.TokenType, accountID uuid.UUID, tokenID string) (bool, error)
	Delete(ctx context.Context, tokenType jwt.TokenType, accountID uuid.UUID, tokenID string) error
	DeleteAll(ctx context.Context, accountID uuid.UUID) error
}
