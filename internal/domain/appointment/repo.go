package appointment

import (
	"context"

	"github.com/google/uuid"
)

// Repository abstracts appointment storage.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error)
	ListByPhysician(ctx context.Context, physicianID uuid.UUID) ([]*Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	CountByStatus(ctx context.Context, physicianID uuid.UUID) (map[Status]int, error)
}
