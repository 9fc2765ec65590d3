package healthrecord

import (
	"time"

	"github.com/google/uuid"
)

// HealthRecord is the visit header row. PhysicianName is denormalized from
// account for the patient-facing listings.
type HealthRecord struct {
	ID          uuid.UUID `db:"id" json:"record_id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patient_id"`
	PhysicianID uuid.UUID `db:"physician_id" json:"physician_id"`
	VisitDate   string    `db:"visit_date" json:"visit_date"`
	Diagnosis   string    `db:"diagnosis" json:"diagnosis"`
	Symptoms    string    `db:"symptoms" json:"symptoms"`
	LabResults  string    `db:"lab_results" json:"lab_results"`
	// FollowUpRequired stays on the wire as the form literal "Yes" or "No".
	FollowUpRequired string `db:"follow_up_required" json:"follow_up_required"`
	Notes            string `db:"notes" json:"notes,omitempty"`

	PatientName   string `db:"patient_name" json:"patient_name,omitempty"`
	PhysicianName string `db:"physician_name" json:"physician_name,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// FlatRow is one row of the record detail join. A record with two
// prescriptions of three medicines each produces six rows, all repeating the
// header columns. Prescriptions written without medicines leave MedicationID
// and the medicine columns null.
type FlatRow struct {
	RecordID         uuid.UUID `json:"record_id"`
	PatientID        uuid.UUID `json:"patient_id"`
	PhysicianID      uuid.UUID `json:"physician_id"`
	VisitDate        string    `json:"visit_date"`
	Diagnosis        string    `json:"diagnosis"`
	Symptoms         string    `json:"symptoms"`
	LabResults       string    `json:"lab_results"`
	FollowUpRequired string    `json:"follow_up_required"`
	Notes            string    `json:"notes,omitempty"`
	PhysicianName    string    `json:"physician_name"`

	PrescriptionID    *uuid.UUID `json:"prescription_id"`
	PrescriptionNotes *string    `json:"prescription_notes"`

	MedicationID   *uuid.UUID `json:"medication_id"`
	MedicationName *string    `json:"medication_name"`
	Dosage         *string    `json:"dosage"`
	Frequency      *string    `json:"frequency"`
	Duration       *string    `json:"duration"`
	Instructions   *string    `json:"instructions"`
}

// MedicineInput is one prescribed medicine in a create request.
type MedicineInput struct {
	MedicationID uuid.UUID `json:"medication_id"`
	Dosage       string    `json:"dosage"`
	Frequency    string    `json:"frequency"`
	Duration     string    `json:"duration"`
	Instructions string    `json:"instructions"`
}

type PrescriptionInput struct {
	Notes     string          `json:"notes"`
	Medicines []MedicineInput `json:"medicines"`
}
