package patient

import (
	"time"

	"github.com/clinic/clinic/pkg/civil"
)

// Patient maps to the patients table. RegistrationDate is assigned by the
// store on insert and never written by clients.
type Patient struct {
	ID               int64      `db:"patient_id" json:"patient_id"`
	FirstName        string     `db:"first_name" json:"first_name"`
	LastName         string     `db:"last_name" json:"last_name"`
	DateOfBirth      civil.Date `db:"date_of_birth" json:"date_of_birth"`
	Gender           string     `db:"gender" json:"gender,omitempty"`
	Address          string     `db:"address" json:"address,omitempty"`
	City             string     `db:"city" json:"city,omitempty"`
	State            string     `db:"state" json:"state,omitempty"`
	ZipCode          string     `db:"zip_code" json:"zip_code,omitempty"`
	PhoneNumber      string     `db:"phone_number" json:"phone_number,omitempty"`
	Email            string     `db:"email" json:"email"`
	RegistrationDate time.Time  `db:"registration_date" json:"registration_date"`
}
