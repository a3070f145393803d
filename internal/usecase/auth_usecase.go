package usecase

import (
	"context"
	"errors"
	"strings"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/infrastructure/metrics"
	"hospital-management/pkg/password"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_usecase.go -destination=mocks/auth_usecase_mock.go -package=mocks

type AuthUsecase interface {
	Register(ctx context.Context, registration *entity.Registration) (*dto.AccountResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*entity.Account, error)
}

type authUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	transactor         repository.Transactor
	accountRepo        repository.AccountRepository
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	hasher             *password.Hasher
	metrics            *metrics.Metrics
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	transactor repository.Transactor,
	accountRepo repository.AccountRepository,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	hasher *password.Hasher,
	metrics *metrics.Metrics,
) AuthUsecase {
	return &authUsecase{
		db:                 db,
		log:                log,
		transactor:         transactor,
		accountRepo:        accountRepo,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
		hasher:             hasher,
		metrics:            metrics,
	}
}

// Register validates the registration, then creates the account and exactly
// one profile for its role in a single transaction. Nothing is written when
// validation fails.
//
// The duplicate-email check is a plain read before the transaction, so two
// concurrent sign-ups can both pass it. The unique index on accounts.email
// turns the losing insert into ErrEmailAlreadyExists.
func (u *authUsecase) Register(ctx context.Context, registration *entity.Registration) (*dto.AccountResponse, error) {
	role := "unknown"
	if registration != nil && registration.Details != nil {
		role = registration.Details.Role().String()
	}

	account, err := u.register(ctx, registration)
	u.metrics.ObserveRegistration(role, registrationOutcome(err))
	if err != nil {
		return nil, err
	}

	return converter.AccountToResponse(account), nil
}

func (u *authUsecase) register(ctx context.Context, registration *entity.Registration) (*entity.Account, error) {
	if err := validateRegistration(registration); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(registration.Email)

	exists, err := u.accountRepo.ExistsByEmail(ctx, u.db, email)
	if err != nil {
		u.log.Warnf("Failed to check email availability: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := u.hasher.Hash(registration.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	account := &entity.Account{
		ID:        uuid.New(),
		Username:  email,
		Email:     email,
		Password:  hashedPassword,
		FirstName: registration.FirstName,
		LastName:  registration.LastName,
		Mobile:    registration.Mobile,
		Role:      registration.Details.Role(),
		IsActive:  true,
	}

	err = u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.accountRepo.Create(ctx, tx, account); err != nil {
			if isDuplicateKeyError(err, "email") {
				return ErrEmailAlreadyExists
			}
			u.log.Warnf("Failed to create account: %+v", err)
			return err
		}

		switch details := registration.Details.(type) {
		case entity.PatientDetails:
			return u.createPatientProfile(ctx, tx, account, details)
		case entity.DoctorDetails:
			return u.createDoctorProfile(ctx, tx, account, details)
		default:
			return ErrUnknownRole
		}
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (u *authUsecase) createPatientProfile(ctx context.Context, tx *gorm.DB, account *entity.Account, details entity.PatientDetails) error {
	var assignedDoctorID *uuid.UUID
	if details.AssignedDoctorID != nil {
		doctor, err := u.doctorProfileRepo.FindByAccountID(ctx, tx, *details.AssignedDoctorID)
		if err != nil {
			u.log.Warnf("Failed to find assigned doctor: %+v", err)
			return err
		}
		if doctor != nil {
			assignedDoctorID = &doctor.AccountID
		} else {
			// An unknown doctor is dropped, the patient is registered unassigned.
			u.log.WithField("assigned_doctor_id", details.AssignedDoctorID.String()).
				Debug("Assigned doctor not found, registering patient without one")
		}
	}

	profile := &entity.PatientProfile{
		AccountID:          account.ID,
		FatherName:         details.FatherName,
		IllnessDescription: details.IllnessDescription,
		AssignedDoctorID:   assignedDoctorID,
	}

	if err := u.patientProfileRepo.Create(ctx, tx, profile); err != nil {
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return err
	}

	account.PatientProfile = profile
	return nil
}

func (u *authUsecase) createDoctorProfile(ctx context.Context, tx *gorm.DB, account *entity.Account, details entity.DoctorDetails) error {
	profile := &entity.DoctorProfile{
		AccountID:      account.ID,
		Specialization: details.Specialization,
	}

	if err := u.doctorProfileRepo.Create(ctx, tx, profile); err != nil {
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return err
	}

	account.DoctorProfile = profile
	return nil
}

func validateRegistration(registration *entity.Registration) error {
	if registration == nil {
		return ErrUnknownRole
	}

	if registration.Password != registration.ConfirmPassword {
		return ErrPasswordMismatch
	}

	switch details := registration.Details.(type) {
	case entity.PatientDetails:
		if isBlank(details.FatherName) {
			return &RequiredFieldError{Field: "father_name", Message: "Father name is required for patients"}
		}
		if isBlank(details.IllnessDescription) {
			return &RequiredFieldError{Field: "illness_description", Message: "Illness description is required for patients"}
		}
	case entity.DoctorDetails:
		if isBlank(details.Specialization) {
			return &RequiredFieldError{Field: "specialization", Message: "Specialization is required for doctors"}
		}
	default:
		return ErrUnknownRole
	}

	return nil
}

// Login verifies the email/password pair and the role the caller claims.
// A disabled account is reported as such whether or not the password matches;
// a wrong role is reported separately from bad credentials.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*entity.Account, error) {
	account, err := u.login(ctx, req)
	u.metrics.ObserveLogin(loginOutcome(err))
	return account, err
}

func (u *authUsecase) login(ctx context.Context, req *dto.LoginRequest) (*entity.Account, error) {
	if req == nil || isBlank(req.Email) || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	// Read-only, no transaction needed
	account, err := u.accountRepo.FindByEmail(ctx, u.db, strings.TrimSpace(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := u.hasher.Compare(account.Password, req.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Failed to verify password: %+v", err)
		return nil, err
	}

	if account.Role != entity.Role(req.UserType) {
		return nil, ErrRoleMismatch
	}

	return account, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func registrationOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrMissingRequiredField),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrUnknownRole):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}

func loginOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrMissingCredentials),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrRoleMismatch),
		errors.Is(err, ErrAccountDisabled):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
