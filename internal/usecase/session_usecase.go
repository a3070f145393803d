package usecase

import (
	"context"
	"errors"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:generate mockgen -source=session_usecase.go -destination=mocks/session_usecase_mock.go -package=mocks

// SessionUsecase issues and revokes token pairs for an authenticated account.
// Every issued token id is kept in the session store until it expires or is
// revoked; a token whose id is gone is rejected even if its signature is valid.
type SessionUsecase interface {
	Issue(ctx context.Context, account *entity.Account) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	Revoke(ctx context.Context, accountID uuid.UUID, accessTokenID, refreshToken string) error
	Authenticate(ctx context.Context, accessToken string) (*jwt.Claims, error)
}

type sessionUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	jwtService  *jwt.JWTService
	sessionRepo repository.SessionRepository
	accountRepo repository.AccountRepository
}

func NewSessionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	jwtService *jwt.JWTService,
	sessionRepo repository.SessionRepository,
	accountRepo repository.AccountRepository,
) SessionUsecase {
	return &sessionUsecase{
		db:          db,
		log:         log,
		jwtService:  jwtService,
		sessionRepo: sessionRepo,
		accountRepo: accountRepo,
	}
}

func (u *sessionUsecase) Issue(ctx context.Context, account *entity.Account) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(account.ID, account.Email, account.Role.String())
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(account.ID, account.Email, account.Role.String())
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.sessionRepo.Save(ctx, jwt.AccessToken, account.ID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	if err := u.sessionRepo.Save(ctx, jwt.RefreshToken, account.ID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// Refresh rotates the refresh token. The account is re-read so a disabled
// account cannot keep extending its session; every session it still holds is
// dropped instead.
func (u *sessionUsecase) Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.sessionRepo.Exists(ctx, jwt.RefreshToken, claims.AccountID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	account, err := u.accountRepo.FindByID(ctx, u.db, claims.AccountID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if !account.IsActive {
		if err := u.sessionRepo.DeleteAll(ctx, account.ID); err != nil {
			u.log.Warnf("Failed to revoke sessions of disabled account: %+v", err)
		}
		return nil, ErrAccountDisabled
	}

	if err := u.sessionRepo.Delete(ctx, jwt.RefreshToken, claims.AccountID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.Issue(ctx, account)
}

// Revoke drops the current access token and, when supplied, the refresh token
// paired with it. A refresh token that is malformed or belongs to another
// account is ignored.
func (u *sessionUsecase) Revoke(ctx context.Context, accountID uuid.UUID, accessTokenID, refreshToken string) error {
	if err := u.sessionRepo.Delete(ctx, jwt.AccessToken, accountID, accessTokenID); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	if refreshToken == "" {
		return nil
	}

	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken || claims.AccountID != accountID {
		u.log.WithField("account_id", accountID.String()).Debug("Ignoring unusable refresh token on logout")
		return nil
	}

	if err := u.sessionRepo.Delete(ctx, jwt.RefreshToken, accountID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete refresh token: %+v", err)
		return err
	}

	return nil
}

func (u *sessionUsecase) Authenticate(ctx context.Context, accessToken string) (*jwt.Claims, error) {
	claims, err := u.jwtService.ValidateToken(accessToken)
	if err != nil {
		if errors.Is(err, jwt.ErrInvalidToken) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if claims.TokenType != jwt.AccessToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.sessionRepo.Exists(ctx, jwt.AccessToken, claims.AccountID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check token validity: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}
