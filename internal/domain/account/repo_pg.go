package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const accountCols = `id, user_name, password, role, first_name, last_name, email, phone, created_at`

func scanAccount(row pgx.Row) (*Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.UserName, &a.Password, &a.Role, &a.FirstName, &a.LastName,
		&a.Email, &a.Phone, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repoPG) CreateAccount(ctx context.Context, a *Account) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO account (id, user_name, password, role, first_name, last_name, email, phone)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.UserName, a.Password, a.Role, a.FirstName, a.LastName, a.Email, a.Phone)
	return err
}

func (r *repoPG) GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return scanAccount(r.pool.QueryRow(ctx, `SELECT `+accountCols+` FROM account WHERE id = $1`, id))
}

func (r *repoPG) GetAccountByUserName(ctx context.Context, userName, role string) (*Account, error) {
	return scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountCols+` FROM account WHERE user_name = $1 AND role = $2`, userName, role))
}

func (r *repoPG) UserNameOrEmailExists(ctx context.Context, userName, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM account WHERE user_name = $1 OR email = $2)`,
		userName, email).Scan(&exists)
	return exists, err
}

func (r *repoPG) CreatePatient(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient (account_id, date_of_birth, gender, address, insurance_id, pharmacy_id, emergency_contact)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.AccountID, p.DateOfBirth, p.Gender, p.Address, p.InsuranceID, p.PharmacyID, p.EmergencyContact)
	return err
}

func (r *repoPG) GetPatient(ctx context.Context, accountID uuid.UUID) (*Patient, error) {
	var p Patient
	err := r.pool.QueryRow(ctx, `
		SELECT account_id, date_of_birth, gender, address, insurance_id, pharmacy_id, emergency_contact
		FROM patient WHERE account_id = $1`, accountID).
		Scan(&p.AccountID, &p.DateOfBirth, &p.Gender, &p.Address, &p.InsuranceID, &p.PharmacyID, &p.EmergencyContact)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) UpdatePatient(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE patient SET date_of_birth=$2, gender=$3, address=$4, insurance_id=$5,
			pharmacy_id=$6, emergency_contact=$7
		WHERE account_id = $1`,
		p.AccountID, p.DateOfBirth, p.Gender, p.Address, p.InsuranceID, p.PharmacyID, p.EmergencyContact)
	return err
}

func (r *repoPG) CreatePhysician(ctx context.Context, p *Physician) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO physician (account_id, specialization_id, license_number)
		VALUES ($1,$2,$3)`,
		p.AccountID, p.SpecializationID, p.LicenseNumber)
	return err
}

func (r *repoPG) GetPhysician(ctx context.Context, accountID uuid.UUID) (*Physician, error) {
	var p Physician
	err := r.pool.QueryRow(ctx, `
		SELECT account_id, specialization_id, license_number
		FROM physician WHERE account_id = $1`, accountID).
		Scan(&p.AccountID, &p.SpecializationID, &p.LicenseNumber)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) ListPhysicians(ctx context.Context) ([]*PhysicianInfo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.account_id, a.first_name || ' ' || a.last_name AS physician_name, s.specialization_name
		FROM physician p
		INNER JOIN account a ON a.id = p.account_id
		LEFT JOIN specialization s ON s.id = p.specialization_id
		ORDER BY physician_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*PhysicianInfo
	for rows.Next() {
		var pi PhysicianInfo
		if err := rows.Scan(&pi.AccountID, &pi.PhysicianName, &pi.SpecializationName); err != nil {
			return nil, err
		}
		items = append(items, &pi)
	}
	return items, rows.Err()
}

func (r *repoPG) ListPatientsOfPhysician(ctx context.Context, physicianID uuid.UUID) ([]*PatientInfo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT p.account_id, a.first_name || ' ' || a.last_name AS patient_name, a.email, a.phone
		FROM patient p
		INNER JOIN account a ON a.id = p.account_id
		INNER JOIN appointment ap ON ap.patient_id = p.account_id
		WHERE ap.physician_id = $1
		ORDER BY patient_name`, physicianID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*PatientInfo
	for rows.Next() {
		var pi PatientInfo
		if err := rows.Scan(&pi.AccountID, &pi.PatientName, &pi.Email, &pi.Phone); err != nil {
			return nil, err
		}
		items = append(items, &pi)
	}
	return items, rows.Err()
}

func (r *repoPG) ListInsurances(ctx context.Context) ([]*Insurance, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, provider_name FROM insurance ORDER BY provider_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Insurance
	for rows.Next() {
		var ins Insurance
		if err := rows.Scan(&ins.ID, &ins.ProviderName); err != nil {
			return nil, err
		}
		items = append(items, &ins)
	}
	return items, rows.Err()
}

func (r *repoPG) ListPharmacies(ctx context.Context) ([]*Pharmacy, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, pharmacy_name FROM pharmacy ORDER BY pharmacy_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Pharmacy
	for rows.Next() {
		var ph Pharmacy
		if err := rows.Scan(&ph.ID, &ph.PharmacyName); err != nil {
			return nil, err
		}
		items = append(items, &ph)
	}
	return items, rows.Err()
}

func (r *repoPG) ListSpecializations(ctx context.Context) ([]*Specialization, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, specialization_name FROM specialization ORDER BY specialization_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Specialization
	for rows.Next() {
		var sp Specialization
		if err := rows.Scan(&sp.ID, &sp.SpecializationName); err != nil {
			return nil, err
		}
		items = append(items, &sp)
	}
	return items, rows.Err()
}

func (r *repoPG) ListMedications(ctx context.Context) ([]*Medication, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, medication_name, dosage_form, description, storage_instructions, common_side_effects
		FROM medication ORDER BY medication_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Medication
	for rows.Next() {
		var m Medication
		if err := rows.Scan(&m.ID, &m.MedicationName, &m.DosageForm, &m.Description,
			&m.StorageInstructions, &m.CommonSideEffects); err != nil {
			return nil, err
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}
