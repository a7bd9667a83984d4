package doctor

import "context"

// Repository is the data-access contract for doctors. GetByID, Update and
// Delete report a missing row with db.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, d *Doctor) (int64, error)
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	GetAll(ctx context.Context) ([]*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	Delete(ctx context.Context, id int64) error
}
