package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type BookRequest struct {
	PhysicianID uuid.UUID `json:"physician_id"`
	Date        string    `json:"date"`
	Reason      string    `json:"reason"`
	Notes       string    `json:"notes"`
}

func (r *BookRequest) validate(now time.Time) error {
	var missing []string
	if r.PhysicianID == uuid.Nil {
		missing = append(missing, "physician_id")
	}
	if strings.TrimSpace(r.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(r.Reason) == "" {
		missing = append(missing, "reason")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}
	when, err := ParseWireTime(r.Date)
	if err != nil {
		return err
	}
	if !when.After(now) {
		return fmt.Errorf("appointment date must be in the future")
	}
	return nil
}

// Book creates a Pending appointment for the patient. The date must be a
// valid wire-format literal strictly after the current time.
func (s *Service) Book(ctx context.Context, patientID uuid.UUID, req *BookRequest) (*Appointment, error) {
	if err := req.validate(s.now()); err != nil {
		return nil, err
	}
	a := &Appointment{
		PatientID:   patientID,
		PhysicianID: req.PhysicianID,
		Date:        req.Date,
		Reason:      strings.TrimSpace(req.Reason),
		Notes:       strings.TrimSpace(req.Notes),
		Status:      StatusPending,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return a, nil
}

func (s *Service) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListForPhysician(ctx context.Context, physicianID uuid.UUID) ([]*Appointment, error) {
	return s.repo.ListByPhysician(ctx, physicianID)
}

// Cancel moves a patient's own Pending appointment to Cancelled.
func (s *Service) Cancel(ctx context.Context, patientID, appointmentID uuid.UUID) error {
	a, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return fmt.Errorf("appointment not found")
	}
	if a.PatientID != patientID {
		return fmt.Errorf("appointment does not belong to this patient")
	}
	if !a.Status.CanTransition(StatusCancelled) {
		return fmt.Errorf("cannot cancel a %s appointment", strings.ToLower(string(a.Status)))
	}
	return s.repo.UpdateStatus(ctx, appointmentID, StatusCancelled)
}

// SetStatus lets the treating physician move a Pending appointment to
// Completed or Cancelled. Any other transition is rejected.
func (s *Service) SetStatus(ctx context.Context, physicianID, appointmentID uuid.UUID, target Status) error {
	if !target.Valid() {
		return fmt.Errorf("invalid status %q", target)
	}
	a, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return fmt.Errorf("appointment not found")
	}
	if a.PhysicianID != physicianID {
		return fmt.Errorf("appointment does not belong to this physician")
	}
	if !a.Status.CanTransition(target) {
		return fmt.Errorf("cannot move a %s appointment to %s", strings.ToLower(string(a.Status)), target)
	}
	return s.repo.UpdateStatus(ctx, appointmentID, target)
}

// DashboardSummary returns per-status appointment counts for a physician.
func (s *Service) DashboardSummary(ctx context.Context, physicianID uuid.UUID) (map[Status]int, error) {
	counts, err := s.repo.CountByStatus(ctx, physicianID)
	if err != nil {
		return nil, err
	}
	for _, st := range []Status{StatusPending, StatusCompleted, StatusCancelled} {
		if _, ok := counts[st]; !ok {
			counts[st] = 0
		}
	}
	return counts, nil
}
