package appointment

import "github.com/clinic/clinic/pkg/civil"

// Appointment statuses. The store defaults new rows to StatusScheduled.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

var validStatuses = map[string]bool{
	StatusScheduled: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// ValidStatus reports whether s is one of the recognized status values.
// Matching is case-sensitive.
func ValidStatus(s string) bool { return validStatuses[s] }

// Appointment maps to the appointments table. Overlapping bookings for the
// same doctor or patient are not rejected.
type Appointment struct {
	ID              int64           `db:"appointment_id" json:"appointment_id"`
	PatientID       int64           `db:"patient_id" json:"patient_id"`
	DoctorID        int64           `db:"doctor_id" json:"doctor_id"`
	AppointmentDate civil.Date      `db:"appointment_date" json:"appointment_date"`
	AppointmentTime civil.TimeOfDay `db:"appointment_time" json:"appointment_time"`
	Reason          string          `db:"reason" json:"reason"`
	Status          string          `db:"status" json:"status"`
}
