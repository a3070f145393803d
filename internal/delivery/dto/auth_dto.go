package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// RegisterRequest is the sign-up form. Patient fields (father_name,
// illness_description, assigned_doctor_id) and the doctor field
// (specialization) are only read for the matching user_type.
type RegisterRequest struct {
	Email              string     `json:"email" validate:"required,email,max=255"`
	FirstName          string     `json:"first_name" validate:"omitempty,max=150"`
	LastName           string     `json:"last_name" validate:"omitempty,max=150"`
	Mobile             string     `json:"mobile" validate:"required,max=15"`
	UserType           string     `json:"user_type" validate:"required,usertype"`
	Password           string     `json:"password" validate:"required"`
	ConfirmPassword    string     `json:"confirm_password" validate:"required"`
	FatherName         string     `json:"father_name" validate:"omitempty,max=100"`
	IllnessDescription string     `json:"illness_description"`
	AssignedDoctorID   *uuid.UUID `json:"assigned_doctor_id"`
	Specialization     string     `json:"specialization" validate:"omitempty,max=100"`
}

// LoginRequest is checked by the login workflow itself so that missing
// credentials and a wrong user type get their own messages.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type LoginResponse struct {
	Tokens *TokenResponse   `json:"tokens"`
	User   *AccountResponse `json:"user"`
}

// AccountResponse never carries the password hash
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Mobile    string    `json:"mobile"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}

// MeResponse is the signed-in account with whichever profile it owns
type MeResponse struct {
	User    *AccountResponse `json:"user"`
	Patient *PatientResponse `json:"patient,omitempty"`
	Doctor  *DoctorResponse  `json:"doctor,omitempty"`
}
