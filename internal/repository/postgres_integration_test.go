//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/infrastructure/database"
	"hospital-management/internal/infrastructure/metrics"
	"hospital-management/internal/repository"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/password"
	"hospital-management/pkg/testutil/containers"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type PostgresRepositorySuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	auth     usecase.AuthUsecase
}

func TestPostgresRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresRepositorySuite))
}

func (s *PostgresRepositorySuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())

	log := logrus.New()
	log.SetOutput(io.Discard)

	s.auth = usecase.NewAuthUsecase(
		s.postgres.DB,
		log,
		database.NewTransactor(s.postgres.DB),
		repository.NewAccountRepository(),
		repository.NewPatientProfileRepository(),
		repository.NewDoctorProfileRepository(),
		password.NewHasher(bcrypt.MinCost),
		metrics.New(prometheus.NewRegistry()),
	)
}

func (s *PostgresRepositorySuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "accounts"))
}

func (s *PostgresRepositorySuite) registerDoctor(email, lastName, specialization string) uuid.UUID {
	resp, err := s.auth.Register(context.Background(), &entity.Registration{
		Email:           email,
		FirstName:       "Dr",
		LastName:        lastName,
		Mobile:          "0800000000",
		Password:        "pw",
		ConfirmPassword: "pw",
		Details:         entity.DoctorDetails{Specialization: specialization},
	})
	s.Require().NoError(err)
	return resp.ID
}

func (s *PostgresRepositorySuite) registerPatient(email, lastName string, doctorID *uuid.UUID) uuid.UUID {
	resp, err := s.auth.Register(context.Background(), &entity.Registration{
		Email:           email,
		FirstName:       "Pat",
		LastName:        lastName,
		Mobile:          "0811111111",
		Password:        "pw",
		ConfirmPassword: "pw",
		Details: entity.PatientDetails{
			FatherName:         "Father " + lastName,
			IllnessDescription: "Cough",
			AssignedDoctorID:   doctorID,
		},
	})
	s.Require().NoError(err)
	return resp.ID
}

// TestConcurrentRegistrationWithSameEmail verifies that concurrent sign-ups
// with one email result in exactly one account.
func (s *PostgresRepositorySuite) TestConcurrentRegistrationWithSameEmail() {
	ctx := context.Background()
	const goroutines = 20

	var wg sync.WaitGroup
	var successCount atomic.Int32
	var conflictCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := s.auth.Register(ctx, &entity.Registration{
				Email:           "race@example.com",
				Mobile:          "0800000000",
				Password:        "pw",
				ConfirmPassword: "pw",
				Details:         entity.DoctorDetails{Specialization: "Triage"},
			})
			if err == nil {
				successCount.Add(1)
			} else if errors.Is(err, usecase.ErrEmailAlreadyExists) {
				conflictCount.Add(1)
			}
		}()
	}

	wg.Wait()

	s.Equal(int32(1), successCount.Load(), "exactly one registration should succeed")
	s.Equal(int32(goroutines-1), conflictCount.Load(), "all others should get a duplicate email error")

	var accounts, profiles int64
	s.Require().NoError(s.postgres.DB.Model(&entity.Account{}).Where("email = ?", "race@example.com").Count(&accounts).Error)
	s.Require().NoError(s.postgres.DB.Model(&entity.DoctorProfile{}).Count(&profiles).Error)
	s.Equal(int64(1), accounts)
	s.Equal(int64(1), profiles, "a failed registration must not leave a profile behind")
}

func (s *PostgresRepositorySuite) TestAccountFinders() {
	ctx := context.Background()
	repo := repository.NewAccountRepository()
	doctorID := s.registerDoctor("grey@example.com", "Grey", "Surgery")
	patientID := s.registerPatient("pat@example.com", "Smith", &doctorID)

	found, err := repo.FindByEmail(ctx, s.postgres.DB, "grey@example.com")
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(doctorID, found.ID)
	s.Equal("grey@example.com", found.Username)
	s.True(found.IsActive)

	missing, err := repo.FindByEmail(ctx, s.postgres.DB, "nobody@example.com")
	s.NoError(err)
	s.Nil(missing)

	exists, err := repo.ExistsByEmail(ctx, s.postgres.DB, "pat@example.com")
	s.NoError(err)
	s.True(exists)

	withProfile, err := repo.FindByIDWithProfile(ctx, s.postgres.DB, patientID)
	s.Require().NoError(err)
	s.Require().NotNil(withProfile.PatientProfile)
	s.Nil(withProfile.DoctorProfile)
	s.Require().NotNil(withProfile.PatientProfile.AssignedDoctor)
	s.Equal("Surgery", withProfile.PatientProfile.AssignedDoctor.Specialization)
	s.Equal("Dr Grey", withProfile.PatientProfile.AssignedDoctor.Account.FullName())
}

func (s *PostgresRepositorySuite) TestUnknownAssignedDoctorIsDropped() {
	ctx := context.Background()
	ghost := uuid.New()
	patientID := s.registerPatient("solo@example.com", "Solo", &ghost)

	profile, err := repository.NewPatientProfileRepository().FindByAccountID(ctx, s.postgres.DB, patientID)
	s.Require().NoError(err)
	s.Require().NotNil(profile)
	s.Nil(profile.AssignedDoctorID)
	s.Nil(profile.AssignedDoctor)
	s.Equal(patientID, profile.Account.ID)
}

func (s *PostgresRepositorySuite) TestAssignedPatientsOrderedByName() {
	ctx := context.Background()
	doctorID := s.registerDoctor("house@example.com", "House", "Diagnostics")
	for i, lastName := range []string{"Zimmer", "Adams", "Miller"} {
		s.registerPatient(fmt.Sprintf("p%d@example.com", i), lastName, &doctorID)
	}
	s.registerPatient("unassigned@example.com", "Baker", nil)

	profiles, err := repository.NewPatientProfileRepository().FindByAssignedDoctor(ctx, s.postgres.DB, doctorID)
	s.Require().NoError(err)
	s.Require().Len(profiles, 3)
	s.Equal("Adams", profiles[0].Account.LastName)
	s.Equal("Miller", profiles[1].Account.LastName)
	s.Equal("Zimmer", profiles[2].Account.LastName)
}

func (s *PostgresRepositorySuite) TestDoctorDeletionUnassignsPatients() {
	ctx := context.Background()
	doctorID := s.registerDoctor("leaving@example.com", "Leaving", "Dermatology")
	patientID := s.registerPatient("stays@example.com", "Stays", &doctorID)

	s.Require().NoError(s.postgres.DB.Exec("DELETE FROM accounts WHERE id = ?", doctorID).Error)

	profile, err := repository.NewPatientProfileRepository().FindByAccountID(ctx, s.postgres.DB, patientID)
	s.Require().NoError(err)
	s.Require().NotNil(profile)
	s.Nil(profile.AssignedDoctorID)

	doctor, err := repository.NewDoctorProfileRepository().FindByAccountID(ctx, s.postgres.DB, doctorID)
	s.NoError(err)
	s.Nil(doctor, "doctor profile is removed with its account")
}

func (s *PostgresRepositorySuite) TestFindAllDoctorsFiltersBySpecialization() {
	ctx := context.Background()
	s.registerDoctor("a@example.com", "Cole", "Cardiology")
	s.registerDoctor("b@example.com", "Baker", "Pediatric Cardiology")
	s.registerDoctor("c@example.com", "Ames", "Neurology")

	repo := repository.NewDoctorProfileRepository()

	all, err := repo.FindAll(ctx, s.postgres.DB, "")
	s.Require().NoError(err)
	s.Len(all, 3)
	s.Equal("Ames", all[0].Account.LastName)

	cardio, err := repo.FindAll(ctx, s.postgres.DB, "cardio")
	s.Require().NoError(err)
	s.Require().Len(cardio, 2)
	s.Equal("Baker", cardio[0].Account.LastName)
}

func (s *PostgresRepositorySuite) TestDisabledAccountCannotLogIn() {
	ctx := context.Background()
	id := s.registerDoctor("off@example.com", "Off", "Radiology")
	s.Require().NoError(s.postgres.DB.Model(&entity.Account{}).Where("id = ?", id).Update("is_active", false).Error)

	_, err := s.auth.Login(ctx, &dto.LoginRequest{Email: "off@example.com", Password: "wrong", UserType: "doctor"})
	s.ErrorIs(err, usecase.ErrAccountDisabled)
}
