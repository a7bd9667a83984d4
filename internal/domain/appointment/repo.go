package appointment

import "context"

// Repository is the data-access contract for appointments. GetByID, Update
// and Delete report a missing row with db.ErrNotFound; inserts referencing a
// missing patient or doctor surface the store's foreign-key error.
type Repository interface {
	Create(ctx context.Context, a *Appointment) (int64, error)
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	GetAll(ctx context.Context) ([]*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id int64) error
}
