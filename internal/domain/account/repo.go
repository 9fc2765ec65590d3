package account

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error)
	GetAccountByUserName(ctx context.Context, userName, role string) (*Account, error)
	UserNameOrEmailExists(ctx context.Context, userName, email string) (bool, error)

	CreatePatient(ctx context.Context, p *Patient) error
	GetPatient(ctx context.Context, accountID uuid.UUID) (*Patient, error)
	UpdatePatient(ctx context.Context, p *Patient) error

	CreatePhysician(ctx context.Context, p *Physician) error
	GetPhysician(ctx context.Context, accountID uuid.UUID) (*Physician, error)

	ListPhysicians(ctx context.Context) ([]*PhysicianInfo, error)
	ListPatientsOfPhysician(ctx context.Context, physicianID uuid.UUID) ([]*PatientInfo, error)

	ListInsurances(ctx context.Context) ([]*Insurance, error)
	ListPharmacies(ctx context.Context) ([]*Pharmacy, error)
	ListSpecializations(ctx context.Context) ([]*Specialization, error)
	ListMedications(ctx context.Context) ([]*Medication, error)
}
