package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const appointmentCols = `a.id, a.patient_id, a.physician_id,
	to_char(a.date, 'YYYY-MM-DD HH24:MI:SS'), a.reason, a.notes, a.status,
	pa.first_name || ' ' || pa.last_name,
	da.first_name || ' ' || da.last_name,
	a.created_at`

const appointmentFrom = ` FROM appointment a
	JOIN account pa ON pa.id = a.patient_id
	JOIN account da ON da.id = a.physician_id`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.PhysicianID, &a.Date, &a.Reason,
		&a.Notes, &a.Status, &a.PatientName, &a.PhysicianName, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment (id, patient_id, physician_id, date, reason, notes, status)
		VALUES ($1, $2, $3, to_timestamp($4, 'YYYY-MM-DD HH24:MI:SS'), $5, $6, $7)`,
		a.ID, a.PatientID, a.PhysicianID, a.Date, a.Reason, a.Notes, a.Status)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+appointmentCols+appointmentFrom+` WHERE a.id = $1`, id)
	return scanAppointment(row)
}

func (r *repoPG) list(ctx context.Context, where string, arg any) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+appointmentCols+appointmentFrom+` WHERE `+where+` ORDER BY a.date DESC`, arg)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	return r.list(ctx, `a.patient_id = $1`, patientID)
}

func (r *repoPG) ListByPhysician(ctx context.Context, physicianID uuid.UUID) ([]*Appointment, error) {
	return r.list(ctx, `a.physician_id = $1`, physicianID)
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE appointment SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}

func (r *repoPG) CountByStatus(ctx context.Context, physicianID uuid.UUID) (map[Status]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, COUNT(*) FROM appointment
		WHERE physician_id = $1 GROUP BY status`, physicianID)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}
	defer rows.Close()

	counts := make(map[Status]int)
	for rows.Next() {
		var st Status
		var n int
		if err := rows.Scan(&st, &n); err != nil {
			return nil, err
		}
		counts[st] = n
	}
	return counts, rows.Err()
}
