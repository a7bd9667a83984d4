package medrecord

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

const recordCols = `record_id, patient_id, doctor_id, record_date, diagnosis, treatment, notes`

func scanRecord(row pgx.Row) (*MedicalRecord, error) {
	var m MedicalRecord
	err := row.Scan(&m.ID, &m.PatientID, &m.DoctorID, &m.RecordDate,
		&m.Diagnosis, &m.Treatment, &m.Notes)
	return &m, err
}

// Create inserts the record; record_date is filled in by the store and read
// back so the caller sees the stamped value.
func (r *repoPG) Create(ctx context.Context, m *MedicalRecord) (int64, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO medical_history (patient_id, doctor_id, diagnosis, treatment, notes)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING record_id, record_date`,
		m.PatientID, m.DoctorID, m.Diagnosis, m.Treatment, m.Notes).Scan(&m.ID, &m.RecordDate)
	if err != nil {
		return 0, fmt.Errorf("insert medical record: %w", err)
	}
	return m.ID, nil
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*MedicalRecord, error) {
	m, err := scanRecord(r.pool.QueryRow(ctx,
		`SELECT `+recordCols+` FROM medical_history WHERE record_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("medical record %d: %w", id, db.ErrNotFound)
		}
		return nil, fmt.Errorf("get medical record %d: %w", id, err)
	}
	return m, nil
}

func (r *repoPG) GetAll(ctx context.Context) ([]*MedicalRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+recordCols+` FROM medical_history`)
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+recordCols+` FROM medical_history
		WHERE patient_id = $1
		ORDER BY record_date DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list medical records for patient %d: %w", patientID, err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (r *repoPG) Update(ctx context.Context, m *MedicalRecord) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE medical_history SET patient_id=$2, doctor_id=$3, diagnosis=$4, treatment=$5, notes=$6
		WHERE record_id = $1`,
		m.ID, m.PatientID, m.DoctorID, m.Diagnosis, m.Treatment, m.Notes)
	if err != nil {
		return fmt.Errorf("update medical record %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update medical record %d: %w", m.ID, db.ErrNotFound)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM medical_history WHERE record_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medical record %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete medical record %d: %w", id, db.ErrNotFound)
	}
	return nil
}

func collectRecords(rows pgx.Rows) ([]*MedicalRecord, error) {
	items := make([]*MedicalRecord, 0)
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan medical record: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate medical records: %w", err)
	}
	return items, nil
}
