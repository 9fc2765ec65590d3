package activitylog

import (
	"context"

	"github.com/google/uuid"
)

// Repository covers both log families. Clinical entries are
// physician-authored and never deleted; fitness logs are patient-owned CRUD.
type Repository interface {
	CreateClinical(ctx context.Context, e *ClinicalEntry) error
	GetClinical(ctx context.Context, id uuid.UUID) (*ClinicalEntry, error)
	UpdateClinical(ctx context.Context, e *ClinicalEntry) error
	ListClinicalByPhysician(ctx context.Context, physicianID uuid.UUID) ([]*ClinicalEntry, error)
	ListClinicalByPatient(ctx context.Context, physicianID, patientID uuid.UUID) ([]*ClinicalEntry, error)

	CreateFitness(ctx context.Context, l *FitnessLog) error
	GetFitness(ctx context.Context, id uuid.UUID) (*FitnessLog, error)
	UpdateFitness(ctx context.Context, l *FitnessLog) error
	DeleteFitness(ctx context.Context, id uuid.UUID) error
	ListFitnessByPatient(ctx context.Context, patientID uuid.UUID) ([]*FitnessLog, error)
}
