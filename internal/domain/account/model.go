package account

import (
	"time"

	"github.com/google/uuid"
)

// Account maps to the account table. One row per portal login, shared by
// both roles; the role column decides which profile table joins in.
type Account struct {
	ID        uuid.UUID `db:"id" json:"account_id"`
	UserName  string    `db:"user_name" json:"user_name"`
	Password  string    `db:"password" json:"-"`
	Role      string    `db:"role" json:"role"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// FullName returns the display name used in denormalized responses
// (physician_name on appointments, patient_name on clinical notes).
func (a *Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

// Patient maps to the patient table. All profile fields are optional at
// signup and editable afterwards.
type Patient struct {
	AccountID        uuid.UUID  `db:"account_id" json:"account_id"`
	DateOfBirth      *string    `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender           *string    `db:"gender" json:"gender,omitempty"`
	Address          *string    `db:"address" json:"address,omitempty"`
	InsuranceID      *uuid.UUID `db:"insurance_id" json:"insurance_id,omitempty"`
	PharmacyID       *uuid.UUID `db:"pharmacy_id" json:"pharmacy_id,omitempty"`
	EmergencyContact *string    `db:"emergency_contact" json:"emergency_contact,omitempty"`
}

// Physician maps to the physician table.
type Physician struct {
	AccountID        uuid.UUID  `db:"account_id" json:"account_id"`
	SpecializationID *uuid.UUID `db:"specialization_id" json:"specialization_id,omitempty"`
	LicenseNumber    *string    `db:"license_number" json:"license_number,omitempty"`
}

// PhysicianInfo is a directory entry shown to patients when booking.
type PhysicianInfo struct {
	AccountID          uuid.UUID `db:"account_id" json:"account_id"`
	PhysicianName      string    `db:"physician_name" json:"physician_name"`
	SpecializationName *string   `db:"specialization_name" json:"specialization_name,omitempty"`
}

// PatientInfo is a roster entry shown to physicians: patients who have at
// least one appointment with them.
type PatientInfo struct {
	AccountID   uuid.UUID `db:"account_id" json:"account_id"`
	PatientName string    `db:"patient_name" json:"patient_name"`
	Email       string    `db:"email" json:"email"`
	Phone       string    `db:"phone" json:"phone"`
}

// Catalog rows. Read-only reference data seeded by migrations.

type Insurance struct {
	ID           uuid.UUID `db:"id" json:"insurance_id"`
	ProviderName string    `db:"provider_name" json:"provider_name"`
}

type Pharmacy struct {
	ID           uuid.UUID `db:"id" json:"pharmacy_id"`
	PharmacyName string    `db:"pharmacy_name" json:"pharmacy_name"`
}

type Specialization struct {
	ID                 uuid.UUID `db:"id" json:"specialization_id"`
	SpecializationName string    `db:"specialization_name" json:"specialization_name"`
}

// Medication is a catalog entry physicians prescribe from.
type Medication struct {
	ID                  uuid.UUID `db:"id" json:"medication_id"`
	MedicationName      string    `db:"medication_name" json:"medication_name"`
	DosageForm          *string   `db:"dosage_form" json:"dosage_form,omitempty"`
	Description         *string   `db:"description" json:"description,omitempty"`
	StorageInstructions *string   `db:"storage_instructions" json:"storage_instructions,omitempty"`
	CommonSideEffects   *string   `db:"common_side_effects" json:"common_side_effects,omitempty"`
}
