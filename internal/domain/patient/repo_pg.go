package patient

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

// Date columns are selected with a ::text cast so the civil types control the
// representation on both sides of the boundary.
const patientCols = `patient_id, first_name, last_name, date_of_birth::text, gender,
	address, city, state, zip_code, phone_number, email, registration_date`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender,
		&p.Address, &p.City, &p.State, &p.ZipCode, &p.PhoneNumber, &p.Email, &p.RegistrationDate)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) (int64, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO patients (first_name, last_name, date_of_birth, gender,
			address, city, state, zip_code, phone_number, email)
		VALUES ($1,$2,$3::date,$4,$5,$6,$7,$8,$9,$10)
		RETURNING patient_id`,
		p.FirstName, p.LastName, p.DateOfBirth, p.Gender,
		p.Address, p.City, p.State, p.ZipCode, p.PhoneNumber, p.Email).Scan(&p.ID)
	if err != nil {
		return 0, fmt.Errorf("insert patient: %w", err)
	}
	return p.ID, nil
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE patient_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("patient %d: %w", id, db.ErrNotFound)
		}
		return nil, fmt.Errorf("get patient %d: %w", id, err)
	}
	return p, nil
}

func (r *repoPG) GetAll(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patients`)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()
	return collectPatients(rows)
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patients SET first_name=$2, last_name=$3, date_of_birth=$4::date, gender=$5,
			address=$6, city=$7, state=$8, zip_code=$9, phone_number=$10, email=$11
		WHERE patient_id = $1`,
		p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender,
		p.Address, p.City, p.State, p.ZipCode, p.PhoneNumber, p.Email)
	if err != nil {
		return fmt.Errorf("update patient %d: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update patient %d: %w", p.ID, db.ErrNotFound)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE patient_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patient %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete patient %d: %w", id, db.ErrNotFound)
	}
	return nil
}

func (r *repoPG) Search(ctx context.Context, term string) ([]*Patient, error) {
	pattern := "%" + term + "%"
	rows, err := r.pool.Query(ctx, `
		SELECT `+patientCols+` FROM patients
		WHERE first_name ILIKE $1 OR last_name ILIKE $1
		   OR email ILIKE $1 OR phone_number ILIKE $1`,
		pattern)
	if err != nil {
		return nil, fmt.Errorf("search patients %q: %w", term, err)
	}
	defer rows.Close()
	return collectPatients(rows)
}

func collectPatients(rows pgx.Rows) ([]*Patient, error) {
	items := make([]*Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patients: %w", err)
	}
	return items, nil
}
