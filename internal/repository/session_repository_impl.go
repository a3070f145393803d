package repository

import (
	"context"
	"fmt"
	"time"

	domainRepo "hospital-management/internal/domain/repository"
	"hospital-management/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionScanCount = 100

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) domainRepo.SessionRepository {
	return &sessionRepository{client: client}
}

// sessionKey renders access_token:{account}:{jti} or refresh_token:{account}:{jti}
func sessionKey(tokenType jwt.TokenType, accountID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s_token:%s:%s", tokenType, accountID.String(), tokenID)
}

func (r *sessionRepository) Save(ctx context.Context, tokenType jwt.TokenType, accountID uuid.UUID, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(tokenType, accountID, tokenID), "valid", ttl).Err()
}

func (r *sessionRepository) Exists(ctx context.Context, tokenType jwt.TokenType, accountID uuid.UUID, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, sessionKey(tokenType, accountID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *sessionRepository) Delete(ctx context.Context, tokenType jwt.TokenType, accountID uuid.UUID, tokenID string) error {
	return r.client.Del(ctx, sessionKey(tokenType, accountID, tokenID)).Err()
}

func (r *sessionRepository) DeleteAll(ctx context.Context, accountID uuid.UUID) error {
	for _, tokenType := range []jwt.TokenType{jwt.AccessToken, jwt.RefreshToken} {
		pattern := sessionKey(tokenType, accountID, "*")
		iter := r.client.Scan(ctx, 0, pattern, sessionScanCount).Iterator()

		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}
		if len(keys) == 0 {
			continue
		}
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	return nil
}
