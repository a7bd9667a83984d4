package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrValidation marks errors raised before any store call.
var ErrValidation = errors.New("invalid appointment")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validate(a *Appointment) error {
	if a.PatientID <= 0 {
		return fmt.Errorf("%w: patient_id is required", ErrValidation)
	}
	if a.DoctorID <= 0 {
		return fmt.Errorf("%w: doctor_id is required", ErrValidation)
	}
	if a.AppointmentDate.IsZero() {
		return fmt.Errorf("%w: appointment_date is required", ErrValidation)
	}
	// A zero TimeOfDay is indistinguishable from midnight; the clinic does
	// not book midnight slots, so it is treated as missing.
	if a.AppointmentTime.IsZero() {
		return fmt.Errorf("%w: appointment_time is required", ErrValidation)
	}
	if strings.TrimSpace(a.Reason) == "" {
		return fmt.Errorf("%w: reason is required", ErrValidation)
	}
	if a.Status != "" && !ValidStatus(a.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, a.Status)
	}
	return nil
}

// Create books an appointment. An empty status defaults to Scheduled before
// the row is written.
func (s *Service) Create(ctx context.Context, a *Appointment) (int64, error) {
	if err := validate(a); err != nil {
		return 0, err
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Update(ctx context.Context, a *Appointment) error {
	if a.ID <= 0 {
		return fmt.Errorf("%w: appointment_id is required", ErrValidation)
	}
	if err := validate(a); err != nil {
		return err
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	return s.repo.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
