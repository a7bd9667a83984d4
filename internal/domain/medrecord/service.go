package medrecord

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrValidation marks errors raised before any store call.
var ErrValidation = errors.New("invalid medical record")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validate(m *MedicalRecord) error {
	if m.PatientID <= 0 {
		return fmt.Errorf("%w: patient_id is required", ErrValidation)
	}
	if m.DoctorID != nil && *m.DoctorID <= 0 {
		return fmt.Errorf("%w: doctor_id must be positive when set", ErrValidation)
	}
	if strings.TrimSpace(m.Diagnosis) == "" {
		return fmt.Errorf("%w: diagnosis is required", ErrValidation)
	}
	return nil
}

// Create writes the record. A nil DoctorID is stored as NULL; the store
// stamps record_date.
func (s *Service) Create(ctx context.Context, m *MedicalRecord) (int64, error) {
	if err := validate(m); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, id int64) (*MedicalRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*MedicalRecord, error) {
	return s.repo.GetAll(ctx)
}

// ListByPatient returns the patient's history, most recent entry first.
func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error) {
	if patientID <= 0 {
		return nil, fmt.Errorf("%w: patient_id is required", ErrValidation)
	}
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) Update(ctx context.Context, m *MedicalRecord) error {
	if m.ID <= 0 {
		return fmt.Errorf("%w: record_id is required", ErrValidation)
	}
	if err := validate(m); err != nil {
		return err
	}
	return s.repo.Update(ctx, m)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
