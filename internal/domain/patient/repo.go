package patient

import "context"

// Repository is the data-access contract for patients. GetByID, Update and
// Delete report a missing row with db.ErrNotFound; GetAll and Search return
// an empty slice when nothing matches.
type Repository interface {
	Create(ctx context.Context, p *Patient) (int64, error)
	GetByID(ctx context.Context, id int64) (*Patient, error)
	GetAll(ctx context.Context) ([]*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]*Patient, error)
}
