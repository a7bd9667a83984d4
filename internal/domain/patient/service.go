package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrValidation marks errors raised before any store call.
var ErrValidation = errors.New("invalid patient")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validate(p *Patient) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("%w: first_name is required", ErrValidation)
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("%w: last_name is required", ErrValidation)
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("%w: date_of_birth is required", ErrValidation)
	}
	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	return nil
}

// Create validates the mandatory fields, inserts the patient, and returns the
// store-generated identifier (also set on p).
func (s *Service) Create(ctx context.Context, p *Patient) (int64, error) {
	if err := validate(p); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.GetAll(ctx)
}

// Update overwrites the full row identified by p.ID. Last write wins; there is
// no version check.
func (s *Service) Update(ctx context.Context, p *Patient) error {
	if p.ID <= 0 {
		return fmt.Errorf("%w: patient_id is required", ErrValidation)
	}
	if err := validate(p); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Search matches term case-insensitively against first name, last name, email
// and phone number. A blank term lists everything.
func (s *Service) Search(ctx context.Context, term string) ([]*Patient, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.repo.GetAll(ctx)
	}
	return s.repo.Search(ctx, term)
}
