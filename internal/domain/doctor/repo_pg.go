package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinic/clinic/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const doctorCols = `doctor_id, first_name, last_name, specialization, phone_number, email`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Specialization, &d.PhoneNumber, &d.Email)
	return &d, err
}

func (r *repoPG) Create(ctx context.Context, d *Doctor) (int64, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO doctors (first_name, last_name, specialization, phone_number, email)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING doctor_id`,
		d.FirstName, d.LastName, d.Specialization, d.PhoneNumber, d.Email).Scan(&d.ID)
	if err != nil {
		return 0, fmt.Errorf("insert doctor: %w", err)
	}
	return d.ID, nil
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	d, err := scanDoctor(r.pool.QueryRow(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE doctor_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("doctor %d: %w", id, db.ErrNotFound)
		}
		return nil, fmt.Errorf("get doctor %d: %w", id, err)
	}
	return d, nil
}

func (r *repoPG) GetAll(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+doctorCols+` FROM doctors`)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	items := make([]*Doctor, 0)
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate doctors: %w", err)
	}
	return items, nil
}

func (r *repoPG) Update(ctx context.Context, d *Doctor) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE doctors SET first_name=$2, last_name=$3, specialization=$4, phone_number=$5, email=$6
		WHERE doctor_id = $1`,
		d.ID, d.FirstName, d.LastName, d.Specialization, d.PhoneNumber, d.Email)
	if err != nil {
		return fmt.Errorf("update doctor %d: %w", d.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update doctor %d: %w", d.ID, db.ErrNotFound)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM doctors WHERE doctor_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete doctor %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete doctor %d: %w", id, db.ErrNotFound)
	}
	return nil
}
