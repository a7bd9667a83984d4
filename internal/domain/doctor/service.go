package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrValidation marks errors raised before any store call.
var ErrValidation = errors.New("invalid doctor")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validate(d *Doctor) error {
	if strings.TrimSpace(d.FirstName) == "" {
		return fmt.Errorf("%w: first_name is required", ErrValidation)
	}
	if strings.TrimSpace(d.LastName) == "" {
		return fmt.Errorf("%w: last_name is required", ErrValidation)
	}
	if strings.TrimSpace(d.Specialization) == "" {
		return fmt.Errorf("%w: specialization is required", ErrValidation)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, d *Doctor) (int64, error) {
	if err := validate(d); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id int64) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Update(ctx context.Context, d *Doctor) error {
	if d.ID <= 0 {
		return fmt.Errorf("%w: doctor_id is required", ErrValidation)
	}
	if err := validate(d); err != nil {
		return err
	}
	return s.repo.Update(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
