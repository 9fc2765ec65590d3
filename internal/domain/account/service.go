package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mediflow/mediflow/internal/platform/auth"
)

// ErrInvalidCredentials is returned by Login when no account matches the
// supplied user name, role and password combination.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

type Service struct {
	repo   Repository
	tokens *auth.TokenIssuer
}

func NewService(repo Repository, tokens *auth.TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// SignupRequest carries the shared signup fields plus the role-specific
// optional profile fields.
type SignupRequest struct {
	UserName  string `json:"user_name"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	// Patient profile (optional)
	DateOfBirth      *string    `json:"date_of_birth,omitempty"`
	Gender           *string    `json:"gender,omitempty"`
	Address          *string    `json:"address,omitempty"`
	InsuranceID      *uuid.UUID `json:"insurance_id,omitempty"`
	PharmacyID       *uuid.UUID `json:"pharmacy_id,omitempty"`
	EmergencyContact *string    `json:"emergency_contact,omitempty"`

	// Physician profile (optional)
	SpecializationID *uuid.UUID `json:"specialization_id,omitempty"`
	LicenseNumber    *string    `json:"license_number,omitempty"`
}

func (r *SignupRequest) validate() error {
	missing := []string{}
	for field, value := range map[string]string{
		"user_name":  r.UserName,
		"password":   r.Password,
		"first_name": r.FirstName,
		"last_name":  r.LastName,
		"email":      r.Email,
		"phone":      r.Phone,
	} {
		if value == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Signup creates an account plus its role profile row and returns a fresh
// bearer token so the caller is logged in immediately.
func (s *Service) Signup(ctx context.Context, role string, req *SignupRequest) (*Account, string, error) {
	if role != auth.RolePatient && role != auth.RolePhysician {
		return nil, "", fmt.Errorf("invalid role: %s", role)
	}
	if err := req.validate(); err != nil {
		return nil, "", err
	}

	exists, err := s.repo.UserNameOrEmailExists(ctx, req.UserName, req.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", fmt.Errorf("username/email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	acct := &Account{
		UserName:  req.UserName,
		Password:  string(hashed),
		Role:      role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.repo.CreateAccount(ctx, acct); err != nil {
		return nil, "", err
	}

	switch role {
	case auth.RolePatient:
		p := &Patient{
			AccountID:        acct.ID,
			DateOfBirth:      req.DateOfBirth,
			Gender:           req.Gender,
			Address:          req.Address,
			InsuranceID:      req.InsuranceID,
			PharmacyID:       req.PharmacyID,
			EmergencyContact: req.EmergencyContact,
		}
		if err := s.repo.CreatePatient(ctx, p); err != nil {
			return nil, "", err
		}
	case auth.RolePhysician:
		p := &Physician{
			AccountID:        acct.ID,
			SpecializationID: req.SpecializationID,
			LicenseNumber:    req.LicenseNumber,
		}
		if err := s.repo.CreatePhysician(ctx, p); err != nil {
			return nil, "", err
		}
	}

	token, err := s.tokens.Issue(acct.ID, role)
	if err != nil {
		return nil, "", err
	}
	return acct, token, nil
}

// Login checks the password for the role-scoped account and returns a
// bearer token. The role is part of the lookup: a patient cannot log in
// through the physician endpoint with the same user name.
func (s *Service) Login(ctx context.Context, role, userName, password string) (*Account, string, error) {
	if userName == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}
	acct, err := s.repo.GetAccountByUserName(ctx, userName, role)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(acct.ID, role)
	if err != nil {
		return nil, "", err
	}
	return acct, token, nil
}

func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccountByID(ctx, id)
}

func (s *Service) GetPatientProfile(ctx context.Context, accountID uuid.UUID) (*Patient, error) {
	return s.repo.GetPatient(ctx, accountID)
}

func (s *Service) UpdatePatientProfile(ctx context.Context, p *Patient) error {
	if p.AccountID == uuid.Nil {
		return fmt.Errorf("account_id is required")
	}
	return s.repo.UpdatePatient(ctx, p)
}

func (s *Service) GetPhysicianProfile(ctx context.Context, accountID uuid.UUID) (*Physician, error) {
	return s.repo.GetPhysician(ctx, accountID)
}

func (s *Service) ListPhysicians(ctx context.Context) ([]*PhysicianInfo, error) {
	return s.repo.ListPhysicians(ctx)
}

func (s *Service) ListPatientsOfPhysician(ctx context.Context, physicianID uuid.UUID) ([]*PatientInfo, error) {
	return s.repo.ListPatientsOfPhysician(ctx, physicianID)
}

func (s *Service) ListInsurances(ctx context.Context) ([]*Insurance, error) {
	return s.repo.ListInsurances(ctx)
}

func (s *Service) ListPharmacies(ctx context.Context) ([]*Pharmacy, error) {
	return s.repo.ListPharmacies(ctx)
}

func (s *Service) ListSpecializations(ctx context.Context) ([]*Specialization, error) {
	return s.repo.ListSpecializations(ctx)
}

func (s *Service) ListMedications(ctx context.Context) ([]*Medication, error) {
	return s.repo.ListMedications(ctx)
}
