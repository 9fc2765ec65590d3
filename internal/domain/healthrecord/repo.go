package healthrecord

import (
	"context"

	"github.com/google/uuid"
)

// Repository abstracts health record storage. Records are immutable once
// written; there are no update or delete operations.
type Repository interface {
	Create(ctx context.Context, rec *HealthRecord, prescriptions []PrescriptionInput) error
	GetHeader(ctx context.Context, recordID uuid.UUID) (*HealthRecord, error)
	GetFlatRows(ctx context.Context, recordID uuid.UUID) ([]*FlatRow, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*HealthRecord, error)
	ListVisits(ctx context.Context, physicianID, patientID uuid.UUID) ([]*HealthRecord, error)
}
