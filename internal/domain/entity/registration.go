package entity

import "github.com/google/uuid"

// Registration is the sign-up input. Role-specific fields live in Details so a
// patient registration cannot carry a specialization and vice versa.
type Registration struct {
	Email           string
	FirstName       string
	LastName        string
	Mobile          string
	Password        string
	ConfirmPassword string
	Details         RoleDetails
}

// RoleDetails is implemented by PatientDetails and DoctorDetails only.
type RoleDetails interface {
	Role() Role
	roleDetails()
}

type PatientDetails struct {
	FatherName         string
	IllnessDescription string
	AssignedDoctorID   *uuid.UUID
}

func (PatientDetails) Role() Role { return RolePatient }
func (PatientDetails) roleDetails() {}

type DoctorDetails struct {
	Specialization string
}

func (DoctorDetails) Role() Role { return RoleDoctor }
func (DoctorDetails) roleDetails() {}
