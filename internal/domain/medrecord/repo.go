package medrecord

import "context"

// Repository is the data-access contract for medical records. GetByID, Update
// and Delete report a missing row with db.ErrNotFound. ListByPatient returns
// the patient's history most recent first.
type Repository interface {
	Create(ctx context.Context, m *MedicalRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*MedicalRecord, error)
	GetAll(ctx context.Context) ([]*MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error)
	Update(ctx context.Context, m *MedicalRecord) error
	Delete(ctx context.Context, id int64) error
}
