package activitylog

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

// -- Clinical entries --

const clinicalCols = `e.id, e.patient_id, e.physician_id, e.activity_type,
	e.description, e.notes, to_char(e.activity_date, 'YYYY-MM-DD'),
	pa.first_name || ' ' || pa.last_name, e.created_at`

const clinicalFrom = ` FROM clinical_activity e
	JOIN account pa ON pa.id = e.patient_id`

func scanClinical(row pgx.Row) (*ClinicalEntry, error) {
	var e ClinicalEntry
	err := row.Scan(&e.ID, &e.PatientID, &e.PhysicianID, &e.ActivityType,
		&e.Description, &e.Notes, &e.ActivityDate, &e.PatientName, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repoPG) CreateClinical(ctx context.Context, e *ClinicalEntry) error {
	e.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO clinical_activity (id, patient_id, physician_id, activity_type, description, notes, activity_date)
		VALUES ($1, $2, $3, $4, $5, $6, to_date($7, 'YYYY-MM-DD'))`,
		e.ID, e.PatientID, e.PhysicianID, e.ActivityType, e.Description, e.Notes, e.ActivityDate)
	if err != nil {
		return fmt.Errorf("insert clinical activity: %w", err)
	}
	return nil
}

func (r *repoPG) GetClinical(ctx context.Context, id uuid.UUID) (*ClinicalEntry, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+clinicalCols+clinicalFrom+` WHERE e.id = $1`, id)
	return scanClinical(row)
}

func (r *repoPG) UpdateClinical(ctx context.Context, e *ClinicalEntry) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE clinical_activity
		SET activity_type = $1, description = $2, notes = $3, activity_date = to_date($4, 'YYYY-MM-DD')
		WHERE id = $5`,
		e.ActivityType, e.Description, e.Notes, e.ActivityDate, e.ID)
	if err != nil {
		return fmt.Errorf("update clinical activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("clinical activity %s not found", e.ID)
	}
	return nil
}

func (r *repoPG) listClinical(ctx context.Context, where string, args ...any) ([]*ClinicalEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+clinicalCols+clinicalFrom+` WHERE `+where+` ORDER BY e.activity_date DESC, e.created_at DESC`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("list clinical activity: %w", err)
	}
	defer rows.Close()

	var items []*ClinicalEntry
	for rows.Next() {
		e, err := scanClinical(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *repoPG) ListClinicalByPhysician(ctx context.Context, physicianID uuid.UUID) ([]*ClinicalEntry, error) {
	return r.listClinical(ctx, `e.physician_id = $1`, physicianID)
}

func (r *repoPG) ListClinicalByPatient(ctx context.Context, physicianID, patientID uuid.UUID) ([]*ClinicalEntry, error) {
	return r.listClinical(ctx, `e.physician_id = $1 AND e.patient_id = $2`, physicianID, patientID)
}

// -- Fitness logs --

const fitnessCols = `id, patient_id, to_char(log_date, 'YYYY-MM-DD'), weight, bp,
	calories, duration_of_physical_activity, created_at`

func scanFitness(row pgx.Row) (*FitnessLog, error) {
	var l FitnessLog
	err := row.Scan(&l.ID, &l.PatientID, &l.LogDate, &l.Weight, &l.BP,
		&l.Calories, &l.Duration, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repoPG) CreateFitness(ctx context.Context, l *FitnessLog) error {
	l.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO fitness_log (id, patient_id, log_date, weight, bp, calories, duration_of_physical_activity)
		VALUES ($1, $2, to_date($3, 'YYYY-MM-DD'), $4, $5, $6, $7)`,
		l.ID, l.PatientID, l.LogDate, l.Weight, l.BP, l.Calories, l.Duration)
	if err != nil {
		return fmt.Errorf("insert fitness log: %w", err)
	}
	return nil
}

func (r *repoPG) GetFitness(ctx context.Context, id uuid.UUID) (*FitnessLog, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+fitnessCols+` FROM fitness_log WHERE id = $1`, id)
	return scanFitness(row)
}

func (r *repoPG) UpdateFitness(ctx context.Context, l *FitnessLog) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE fitness_log
		SET log_date = to_date($1, 'YYYY-MM-DD'), weight = $2, bp = $3,
			calories = $4, duration_of_physical_activity = $5
		WHERE id = $6`,
		l.LogDate, l.Weight, l.BP, l.Calories, l.Duration, l.ID)
	if err != nil {
		return fmt.Errorf("update fitness log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("fitness log %s not found", l.ID)
	}
	return nil
}

func (r *repoPG) DeleteFitness(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM fitness_log WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fitness log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("fitness log %s not found", id)
	}
	return nil
}

func (r *repoPG) ListFitnessByPatient(ctx context.Context, patientID uuid.UUID) ([]*FitnessLog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+fitnessCols+` FROM fitness_log WHERE patient_id = $1 ORDER BY log_date DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list fitness logs: %w", err)
	}
	defer rows.Close()

	var items []*FitnessLog
	for rows.Next() {
		l, err := scanFitness(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}
