package entity

// Role tags an account as a patient or a doctor. It decides which profile kind
// may exist for the account and is never reassigned after registration.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleDoctor:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
