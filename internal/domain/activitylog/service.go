package activitylog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("log entry not found")

const dateLayout = "2006-01-02"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// -- Clinical entries (physician) --

type ClinicalRequest struct {
	PatientID    uuid.UUID    `json:"patient_id"`
	ActivityType ActivityType `json:"activity_type"`
	Description  string       `json:"description"`
	Notes        *string      `json:"notes"`
	ActivityDate string       `json:"activity_date"`
}

func (r *ClinicalRequest) validate() error {
	if r.PatientID == uuid.Nil {
		return fmt.Errorf("missing fields: patient_id")
	}
	if !r.ActivityType.Valid() {
		return fmt.Errorf("invalid activity_type %q", r.ActivityType)
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("missing fields: description")
	}
	if r.ActivityDate != "" {
		if _, err := time.Parse(dateLayout, r.ActivityDate); err != nil {
			return fmt.Errorf("invalid activity_date %q: expected %s", r.ActivityDate, dateLayout)
		}
	}
	return nil
}

func (s *Service) CreateClinical(ctx context.Context, physicianID uuid.UUID, req *ClinicalRequest) (*ClinicalEntry, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	date := req.ActivityDate
	if date == "" {
		date = s.now().Format(dateLayout)
	}
	e := &ClinicalEntry{
		PatientID:    req.PatientID,
		PhysicianID:  physicianID,
		ActivityType: req.ActivityType,
		Description:  strings.TrimSpace(req.Description),
		Notes:        req.Notes,
		ActivityDate: date,
	}
	if err := s.repo.CreateClinical(ctx, e); err != nil {
		return nil, fmt.Errorf("create activity entry: %w", err)
	}
	return e, nil
}

// GetClinicalEntry returns one entry the physician authored.
func (s *Service) GetClinicalEntry(ctx context.Context, physicianID, entryID uuid.UUID) (*ClinicalEntry, error) {
	e, err := s.repo.GetClinical(ctx, entryID)
	if err != nil || e.PhysicianID != physicianID {
		return nil, ErrNotFound
	}
	return e, nil
}

// UpdateClinical rewrites an entry the physician authored. The patient an
// entry belongs to never changes.
func (s *Service) UpdateClinical(ctx context.Context, physicianID, entryID uuid.UUID, req *ClinicalRequest) (*ClinicalEntry, error) {
	e, err := s.repo.GetClinical(ctx, entryID)
	if err != nil || e.PhysicianID != physicianID {
		return nil, ErrNotFound
	}
	req.PatientID = e.PatientID
	if err := req.validate(); err != nil {
		return nil, err
	}
	e.ActivityType = req.ActivityType
	e.Description = strings.TrimSpace(req.Description)
	e.Notes = req.Notes
	if req.ActivityDate != "" {
		e.ActivityDate = req.ActivityDate
	}
	if err := s.repo.UpdateClinical(ctx, e); err != nil {
		return nil, fmt.Errorf("update activity entry: %w", err)
	}
	return e, nil
}

func (s *Service) ListClinical(ctx context.Context, physicianID uuid.UUID) ([]*ClinicalEntry, error) {
	return s.repo.ListClinicalByPhysician(ctx, physicianID)
}

func (s *Service) ListClinicalForPatient(ctx context.Context, physicianID, patientID uuid.UUID) ([]*ClinicalEntry, error) {
	return s.repo.ListClinicalByPatient(ctx, physicianID, patientID)
}

// -- Fitness logs (patient) --

type FitnessRequest struct {
	LogDate  string  `json:"log_date"`
	Weight   float64 `json:"weight"`
	BP       string  `json:"bp"`
	Calories int     `json:"calories"`
	Duration int     `json:"duration_of_physical_activity"`
}

func (r *FitnessRequest) validate() error {
	if r.LogDate == "" {
		return fmt.Errorf("missing fields: log_date")
	}
	if _, err := time.Parse(dateLayout, r.LogDate); err != nil {
		return fmt.Errorf("invalid log_date %q: expected %s", r.LogDate, dateLayout)
	}
	if r.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if _, _, err := ParseBP(r.BP); err != nil {
		return err
	}
	if r.Calories < 0 || r.Duration < 0 {
		return fmt.Errorf("calories and duration must not be negative")
	}
	return nil
}

func (s *Service) CreateFitness(ctx context.Context, patientID uuid.UUID, req *FitnessRequest) (*FitnessLog, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	l := &FitnessLog{
		PatientID: patientID,
		LogDate:   req.LogDate,
		Weight:    req.Weight,
		BP:        strings.TrimSpace(req.BP),
		Calories:  req.Calories,
		Duration:  req.Duration,
	}
	if err := s.repo.CreateFitness(ctx, l); err != nil {
		return nil, fmt.Errorf("create fitness log: %w", err)
	}
	return l, nil
}

func (s *Service) GetFitness(ctx context.Context, patientID, logID uuid.UUID) (*FitnessLog, error) {
	l, err := s.repo.GetFitness(ctx, logID)
	if err != nil || l.PatientID != patientID {
		return nil, ErrNotFound
	}
	return l, nil
}

func (s *Service) UpdateFitness(ctx context.Context, patientID, logID uuid.UUID, req *FitnessRequest) (*FitnessLog, error) {
	l, err := s.GetFitness(ctx, patientID, logID)
	if err != nil {
		return nil, err
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	l.LogDate = req.LogDate
	l.Weight = req.Weight
	l.BP = strings.TrimSpace(req.BP)
	l.Calories = req.Calories
	l.Duration = req.Duration
	if err := s.repo.UpdateFitness(ctx, l); err != nil {
		return nil, fmt.Errorf("update fitness log: %w", err)
	}
	return l, nil
}

func (s *Service) DeleteFitness(ctx context.Context, patientID, logID uuid.UUID) error {
	if _, err := s.GetFitness(ctx, patientID, logID); err != nil {
		return err
	}
	return s.repo.DeleteFitness(ctx, logID)
}

func (s *Service) ListFitness(ctx context.Context, patientID uuid.UUID) ([]*FitnessLog, error) {
	return s.repo.ListFitnessByPatient(ctx, patientID)
}
