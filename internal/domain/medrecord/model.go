package medrecord

import "time"

// MedicalRecord maps to the medical_history table. DoctorID is nil when no
// doctor is attached to the entry; RecordDate is assigned by the store on
// insert and never written by clients.
type MedicalRecord struct {
	ID         int64     `db:"record_id" json:"record_id"`
	PatientID  int64     `db:"patient_id" json:"patient_id"`
	DoctorID   *int64    `db:"doctor_id" json:"doctor_id,omitempty"`
	RecordDate time.Time `db:"record_date" json:"record_date"`
	Diagnosis  string    `db:"diagnosis" json:"diagnosis"`
	Treatment  string    `db:"treatment" json:"treatment,omitempty"`
	Notes      string    `db:"notes" json:"notes,omitempty"`
}
