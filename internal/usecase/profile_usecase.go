package usecase

import (
	"context"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_usecase.go -destination=mocks/profile_usecase_mock.go -package=mocks

type ProfileUsecase interface {
	GetPatient(ctx context.Context, accountID uuid.UUID) (*dto.PatientResponse, error)
	GetDoctor(ctx context.Context, accountID uuid.UUID) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context, specialization string) (*dto.DoctorListResponse, error)
	ListAssignedPatients(ctx context.Context, doctorID uuid.UUID) (*dto.PatientListResponse, error)
	GetAccount(ctx context.Context, accountID uuid.UUID) (*dto.MeResponse, error)
}

type profileUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	accountRepo        repository.AccountRepository
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
) ProfileUsecase {
	return &profileUsecase{
		db:                 db,
		log:                log,
		accountRepo:        accountRepo,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
	}
}

func (u *profileUsecase) GetPatient(ctx context.Context, accountID uuid.UUID) (*dto.PatientResponse, error) {
	profile, err := u.patientProfileRepo.FindByAccountID(ctx, u.db, accountID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientProfileToResponse(profile), nil
}

func (u *profileUsecase) GetDoctor(ctx context.Context, accountID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorProfileRepo.FindByAccountID(ctx, u.db, accountID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *profileUsecase) ListDoctors(ctx context.Context, specialization string) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorProfileRepo.FindAll(ctx, u.db, specialization)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

// ListAssignedPatients returns the patients assigned to doctorID. An unknown
// doctor is ErrDoctorNotFound rather than an empty list.
func (u *profileUsecase) ListAssignedPatients(ctx context.Context, doctorID uuid.UUID) (*dto.PatientListResponse, error) {
	doctor, err := u.doctorProfileRepo.FindByAccountID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	profiles, err := u.patientProfileRepo.FindByAssignedDoctor(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list assigned patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientProfilesToResponses(profiles),
		Total:    len(profiles),
	}, nil
}

func (u *profileUsecase) GetAccount(ctx context.Context, accountID uuid.UUID) (*dto.MeResponse, error) {
	account, err := u.accountRepo.FindByIDWithProfile(ctx, u.db, accountID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	return converter.AccountToMeResponse(account), nil
}
