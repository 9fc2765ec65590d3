package healthrecord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("health record not found")

const visitDateLayout = "2006-01-02"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateRequest struct {
	PatientID        uuid.UUID           `json:"patient_id"`
	VisitDate        string              `json:"visit_date"`
	Diagnosis        string              `json:"diagnosis"`
	Symptoms         string              `json:"symptoms"`
	LabResults       string              `json:"lab_results"`
	FollowUpRequired string              `json:"follow_up_required"`
	Notes            string              `json:"notes"`
	Prescriptions    []PrescriptionInput `json:"prescriptions"`
}

func (r *CreateRequest) validate() error {
	if r.PatientID == uuid.Nil {
		return fmt.Errorf("missing fields: patient_id")
	}
	var missing []string
	if strings.TrimSpace(r.Diagnosis) == "" {
		missing = append(missing, "diagnosis")
	}
	if strings.TrimSpace(r.Symptoms) == "" {
		missing = append(missing, "symptoms")
	}
	if strings.TrimSpace(r.LabResults) == "" {
		missing = append(missing, "lab_results")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}
	if r.FollowUpRequired != "Yes" && r.FollowUpRequired != "No" {
		return fmt.Errorf("follow_up_required must be %q or %q", "Yes", "No")
	}
	if r.VisitDate != "" {
		if _, err := time.Parse(visitDateLayout, r.VisitDate); err != nil {
			return fmt.Errorf("invalid visit_date %q: expected %s", r.VisitDate, visitDateLayout)
		}
	}
	if len(r.Prescriptions) == 0 {
		return fmt.Errorf("at least one prescription is required")
	}
	for i, p := range r.Prescriptions {
		seen := make(map[uuid.UUID]bool)
		for _, m := range p.Medicines {
			if err := m.validate(); err != nil {
				return fmt.Errorf("prescription %d: %w", i+1, err)
			}
			if seen[m.MedicationID] {
				return fmt.Errorf("prescription %d: duplicate medication", i+1)
			}
			seen[m.MedicationID] = true
		}
	}
	return nil
}

func (m *MedicineInput) validate() error {
	var missing []string
	if m.MedicationID == uuid.Nil {
		missing = append(missing, "medication_id")
	}
	if strings.TrimSpace(m.Dosage) == "" {
		missing = append(missing, "dosage")
	}
	if strings.TrimSpace(m.Frequency) == "" {
		missing = append(missing, "frequency")
	}
	if strings.TrimSpace(m.Duration) == "" {
		missing = append(missing, "duration")
	}
	if strings.TrimSpace(m.Instructions) == "" {
		missing = append(missing, "instructions")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Create writes a visit record with its prescriptions in one transaction.
// VisitDate defaults to today when omitted.
func (s *Service) Create(ctx context.Context, physicianID uuid.UUID, req *CreateRequest) (*HealthRecord, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	visitDate := req.VisitDate
	if visitDate == "" {
		visitDate = s.now().Format(visitDateLayout)
	}
	rec := &HealthRecord{
		PatientID:        req.PatientID,
		PhysicianID:      physicianID,
		VisitDate:        visitDate,
		Diagnosis:        strings.TrimSpace(req.Diagnosis),
		Symptoms:         strings.TrimSpace(req.Symptoms),
		LabResults:       strings.TrimSpace(req.LabResults),
		FollowUpRequired: req.FollowUpRequired,
		Notes:            strings.TrimSpace(req.Notes),
	}
	if err := s.repo.Create(ctx, rec, req.Prescriptions); err != nil {
		return nil, fmt.Errorf("create health record: %w", err)
	}
	return rec, nil
}

func (s *Service) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*HealthRecord, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListVisits(ctx context.Context, physicianID, patientID uuid.UUID) ([]*HealthRecord, error) {
	return s.repo.ListVisits(ctx, physicianID, patientID)
}

// DetailForPatient returns the flat detail rows of a record the patient owns.
func (s *Service) DetailForPatient(ctx context.Context, patientID, recordID uuid.UUID) ([]*FlatRow, error) {
	hdr, err := s.repo.GetHeader(ctx, recordID)
	if err != nil || hdr.PatientID != patientID {
		return nil, ErrNotFound
	}
	return s.repo.GetFlatRows(ctx, recordID)
}

// DetailForPhysician returns the flat detail rows of a record the physician
// authored.
func (s *Service) DetailForPhysician(ctx context.Context, physicianID, recordID uuid.UUID) ([]*FlatRow, error) {
	hdr, err := s.repo.GetHeader(ctx, recordID)
	if err != nil || hdr.PhysicianID != physicianID {
		return nil, ErrNotFound
	}
	return s.repo.GetFlatRows(ctx, recordID)
}
