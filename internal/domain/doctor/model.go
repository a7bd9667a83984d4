package doctor

// Doctor maps to the doctors table.
type Doctor struct {
	ID             int64  `db:"doctor_id" json:"doctor_id"`
	FirstName      string `db:"first_name" json:"first_name"`
	LastName       string `db:"last_name" json:"last_name"`
	Specialization string `db:"specialization" json:"specialization"`
	PhoneNumber    string `db:"phone_number" json:"phone_number,omitempty"`
	Email          string `db:"email" json:"email,omitempty"`
}
