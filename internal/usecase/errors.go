package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Registration rejections
var (
	ErrPasswordMismatch     = errors.New("passwords don't match")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrEmailAlreadyExists   = errors.New("a user with this email already exists")
	ErrUnknownRole          = errors.New("user type must be patient or doctor")
)

// Login and session rejections
var (
	ErrMissingCredentials = errors.New("must include email and password")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleMismatch       = errors.New("invalid user type")
	ErrAccountDisabled    = errors.New("user account is disabled")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

// Lookups
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrDoctorNotFound  = errors.New("doctor not found")
)

// RequiredFieldError names the role-specific field left empty. It matches
// ErrMissingRequiredField under errors.Is.
type RequiredFieldError struct {
	Field   string
	Message string
}

func (e *RequiredFieldError) Error() string {
	return e.Message
}

func (e *RequiredFieldError) Unwrap() error {
	return ErrMissingRequiredField
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
