package healthrecord

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

const headerCols = `h.id, h.patient_id, h.physician_id,
	to_char(h.visit_date, 'YYYY-MM-DD'), h.diagnosis, h.symptoms,
	h.lab_results, h.follow_up_required, h.notes,
	pa.first_name || ' ' || pa.last_name,
	da.first_name || ' ' || da.last_name,
	h.created_at`

const headerFrom = ` FROM health_record h
	JOIN account pa ON pa.id = h.patient_id
	JOIN account da ON da.id = h.physician_id`

func scanHeader(row pgx.Row) (*HealthRecord, error) {
	var h HealthRecord
	err := row.Scan(&h.ID, &h.PatientID, &h.PhysicianID, &h.VisitDate, &h.Diagnosis,
		&h.Symptoms, &h.LabResults, &h.FollowUpRequired,
		&h.Notes, &h.PatientName, &h.PhysicianName, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *repoPG) Create(ctx context.Context, rec *HealthRecord, prescriptions []PrescriptionInput) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	rec.ID = uuid.New()
	_, err = tx.Exec(ctx, `
		INSERT INTO health_record
			(id, patient_id, physician_id, visit_date, diagnosis, symptoms, lab_results, follow_up_required, notes)
		VALUES ($1, $2, $3, to_date($4, 'YYYY-MM-DD'), $5, $6, $7, $8, $9)`,
		rec.ID, rec.PatientID, rec.PhysicianID, rec.VisitDate, rec.Diagnosis,
		rec.Symptoms, rec.LabResults, rec.FollowUpRequired, rec.Notes)
	if err != nil {
		return fmt.Errorf("insert health record: %w", err)
	}

	for pi, p := range prescriptions {
		prescriptionID := uuid.New()
		_, err = tx.Exec(ctx, `
			INSERT INTO prescription (id, record_id, notes, position)
			VALUES ($1, $2, $3, $4)`,
			prescriptionID, rec.ID, p.Notes, pi)
		if err != nil {
			return fmt.Errorf("insert prescription: %w", err)
		}
		for mi, m := range p.Medicines {
			_, err = tx.Exec(ctx, `
				INSERT INTO prescription_medication
					(prescription_id, medication_id, dosage, frequency, duration, instructions, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				prescriptionID, m.MedicationID, m.Dosage, m.Frequency, m.Duration, m.Instructions, mi)
			if err != nil {
				return fmt.Errorf("insert prescription medication: %w", err)
			}
		}
	}

	return tx.Commit(ctx)
}

func (r *repoPG) GetHeader(ctx context.Context, recordID uuid.UUID) (*HealthRecord, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+headerCols+headerFrom+` WHERE h.id = $1`, recordID)
	return scanHeader(row)
}

// GetFlatRows returns the record detail as the raw join product. Row order
// follows prescription then medicine insertion order so the client can
// rebuild the tree without sorting.
func (r *repoPG) GetFlatRows(ctx context.Context, recordID uuid.UUID) ([]*FlatRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT h.id, h.patient_id, h.physician_id,
			to_char(h.visit_date, 'YYYY-MM-DD'), h.diagnosis, h.symptoms,
			h.lab_results, h.follow_up_required, h.notes,
			da.first_name || ' ' || da.last_name,
			p.id, p.notes,
			pm.medication_id, m.medication_name,
			pm.dosage, pm.frequency, pm.duration, pm.instructions
		FROM health_record h
		JOIN account da ON da.id = h.physician_id
		LEFT JOIN prescription p ON p.record_id = h.id
		LEFT JOIN prescription_medication pm ON pm.prescription_id = p.id
		LEFT JOIN medication m ON m.id = pm.medication_id
		WHERE h.id = $1
		ORDER BY p.position, pm.position`, recordID)
	if err != nil {
		return nil, fmt.Errorf("query record detail: %w", err)
	}
	defer rows.Close()

	var items []*FlatRow
	for rows.Next() {
		var fr FlatRow
		err := rows.Scan(&fr.RecordID, &fr.PatientID, &fr.PhysicianID, &fr.VisitDate,
			&fr.Diagnosis, &fr.Symptoms, &fr.LabResults, &fr.FollowUpRequired,
			&fr.Notes, &fr.PhysicianName,
			&fr.PrescriptionID, &fr.PrescriptionNotes,
			&fr.MedicationID, &fr.MedicationName,
			&fr.Dosage, &fr.Frequency, &fr.Duration, &fr.Instructions)
		if err != nil {
			return nil, err
		}
		items = append(items, &fr)
	}
	return items, rows.Err()
}

func (r *repoPG) list(ctx context.Context, where string, args ...any) ([]*HealthRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+headerCols+headerFrom+` WHERE `+where+` ORDER BY h.visit_date DESC, h.created_at DESC`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("list health records: %w", err)
	}
	defer rows.Close()

	var items []*HealthRecord
	for rows.Next() {
		h, err := scanHeader(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*HealthRecord, error) {
	return r.list(ctx, `h.patient_id = $1`, patientID)
}

func (r *repoPG) ListVisits(ctx context.Context, physicianID, patientID uuid.UUID) ([]*HealthRecord, error) {
	return r.list(ctx, `h.physician_id = $1 AND h.patient_id = $2`, physicianID, patientID)
}
