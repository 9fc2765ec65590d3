package healthrecord

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type storedRecord struct {
	rec           *HealthRecord
	prescriptions []PrescriptionInput
}

type mockRepo struct {
	records map[uuid.UUID]*storedRecord
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[uuid.UUID]*storedRecord)}
}

func (m *mockRepo) Create(_ context.Context, rec *HealthRecord, prescriptions []PrescriptionInput) error {
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	m.records[rec.ID] = &storedRecord{rec: rec, prescriptions: prescriptions}
	return nil
}

func (m *mockRepo) GetHeader(_ context.Context, recordID uuid.UUID) (*HealthRecord, error) {
	sr, ok := m.records[recordID]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return sr.rec, nil
}

func (m *mockRepo) GetFlatRows(_ context.Context, recordID uuid.UUID) ([]*FlatRow, error) {
	sr, ok := m.records[recordID]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	var rows []*FlatRow
	for _, p := range sr.prescriptions {
		pid := uuid.New()
		if len(p.Medicines) == 0 {
			rows = append(rows, m.flatRow(sr.rec, &pid, nil))
			continue
		}
		for i := range p.Medicines {
			rows = append(rows, m.flatRow(sr.rec, &pid, &p.Medicines[i]))
		}
	}
	return rows, nil
}

func (m *mockRepo) flatRow(rec *HealthRecord, prescriptionID *uuid.UUID, med *MedicineInput) *FlatRow {
	fr := &FlatRow{
		RecordID:         rec.ID,
		PatientID:        rec.PatientID,
		PhysicianID:      rec.PhysicianID,
		VisitDate:        rec.VisitDate,
		Diagnosis:        rec.Diagnosis,
		Symptoms:         rec.Symptoms,
		LabResults:       rec.LabResults,
		FollowUpRequired: rec.FollowUpRequired,
		Notes:            rec.Notes,
		PhysicianName:    rec.PhysicianName,
		PrescriptionID:   prescriptionID,
	}
	if med != nil {
		fr.MedicationID = &med.MedicationID
		fr.Dosage = &med.Dosage
		fr.Frequency = &med.Frequency
		fr.Duration = &med.Duration
		fr.Instructions = &med.Instructions
	}
	return fr
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*HealthRecord, error) {
	var out []*HealthRecord
	for _, sr := range m.records {
		if sr.rec.PatientID == patientID {
			out = append(out, sr.rec)
		}
	}
	return out, nil
}

func (m *mockRepo) ListVisits(_ context.Context, physicianID, patientID uuid.UUID) ([]*HealthRecord, error) {
	var out []*HealthRecord
	for _, sr := range m.records {
		if sr.rec.PhysicianID == physicianID && sr.rec.PatientID == patientID {
			out = append(out, sr.rec)
		}
	}
	return out, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func medInput() MedicineInput {
	return MedicineInput{
		MedicationID: uuid.New(),
		Dosage:       "500mg",
		Frequency:    "twice daily",
		Duration:     "7 days",
		Instructions: "take with food",
	}
}

func createReq() *CreateRequest {
	return &CreateRequest{
		PatientID:        uuid.New(),
		VisitDate:        "2026-01-15",
		Diagnosis:        "Seasonal allergies",
		Symptoms:         "Sneezing, itchy eyes",
		LabResults:       "IgE elevated",
		FollowUpRequired: "No",
		Prescriptions: []PrescriptionInput{
			{Notes: "first line", Medicines: []MedicineInput{medInput()}},
		},
	}
}

// -- Tests --

func TestCreate(t *testing.T) {
	svc, _ := newTestService()
	physicianID := uuid.New()

	rec, err := svc.Create(context.Background(), physicianID, createReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.PhysicianID != physicianID {
		t.Error("physician id not set")
	}
	if rec.ID == uuid.Nil {
		t.Error("record id not assigned")
	}
}

func TestCreate_DefaultsVisitDate(t *testing.T) {
	svc, _ := newTestService()
	req := createReq()
	req.VisitDate = ""

	rec, err := svc.Create(context.Background(), uuid.New(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.VisitDate != "2026-01-15" {
		t.Errorf("visit_date = %q, want today", rec.VisitDate)
	}
}

func TestCreate_RequiresDiagnosis(t *testing.T) {
	svc, _ := newTestService()
	req := createReq()
	req.Diagnosis = "  "
	if _, err := svc.Create(context.Background(), uuid.New(), req); err == nil {
		t.Error("expected error for blank diagnosis")
	}
}

func TestCreate_RequiresSymptomsAndLabResults(t *testing.T) {
	svc, _ := newTestService()

	req := createReq()
	req.Symptoms = ""
	if _, err := svc.Create(context.Background(), uuid.New(), req); err == nil {
		t.Error("expected error for blank symptoms")
	}

	req = createReq()
	req.LabResults = "  "
	if _, err := svc.Create(context.Background(), uuid.New(), req); err == nil {
		t.Error("expected error for blank lab results")
	}
}

func TestCreate_FollowUpFlag(t *testing.T) {
	svc, _ := newTestService()

	for _, bad := range []string{"", "yes", "maybe", "true"} {
		req := createReq()
		req.FollowUpRequired = bad
		if _, err := svc.Create(context.Background(), uuid.New(), req); err == nil {
			t.Errorf("follow_up_required %q should be rejected", bad)
		}
	}

	req := createReq()
	req.FollowUpRequired = "Yes"
	rec, err := svc.Create(context.Background(), uuid.New(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.FollowUpRequired != "Yes" {
		t.Errorf("follow_up_required = %q, want Yes", rec.FollowUpRequired)
	}
}

func TestCreate_RequiresPrescription(t *testing.T) {
	svc, _ := newTestService()
	req := createReq()
	req.Prescriptions = nil
	if _, err := svc.Create(context.Background(), uuid.New(), req); err == nil {
		t.Error("expected error for missing prescriptions")
	}
}

func TestCreate_IncompleteMedicine(t *testing.T) {
	svc, _ := newTestService()
	req := createReq()
	req.Prescriptions[0].Medicines[0].Frequency = ""
	if _, err := svc.Create(context.Background(), uuid.New(), req); err == nil {
		t.Error("expected error for incomplete medicine")
	}
}

func TestCreate_DuplicateMedication(t *testing.T) {
	svc, _ := newTestService()
	req := createReq()
	dup := req.Prescriptions[0].Medicines[0]
	req.Prescriptions[0].Medicines = append(req.Prescriptions[0].Medicines, dup)
	if _, err := svc.Create(context.Background(), uuid.New(), req); err == nil {
		t.Error("expected error for duplicate medication in one prescription")
	}
}

func TestCreate_BadVisitDate(t *testing.T) {
	svc, _ := newTestService()
	req := createReq()
	req.VisitDate = "15/01/2026"
	if _, err := svc.Create(context.Background(), uuid.New(), req); err == nil {
		t.Error("expected error for malformed visit date")
	}
}

func TestDetailForPatient(t *testing.T) {
	svc, _ := newTestService()
	req := createReq()
	rec, _ := svc.Create(context.Background(), uuid.New(), req)

	rows, err := svc.DetailForPatient(context.Background(), req.PatientID, rec.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 flat row, got %d", len(rows))
	}
	if rows[0].MedicationID == nil {
		t.Error("expected medication columns populated")
	}
	if rows[0].Symptoms != req.Symptoms || rows[0].LabResults != req.LabResults ||
		rows[0].FollowUpRequired != req.FollowUpRequired {
		t.Errorf("header columns dropped from flat row: %+v", rows[0])
	}
}

func TestDetailForPatient_NotOwner(t *testing.T) {
	svc, _ := newTestService()
	rec, _ := svc.Create(context.Background(), uuid.New(), createReq())

	if _, err := svc.DetailForPatient(context.Background(), uuid.New(), rec.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDetailForPhysician_NotAuthor(t *testing.T) {
	svc, _ := newTestService()
	rec, _ := svc.Create(context.Background(), uuid.New(), createReq())

	if _, err := svc.DetailForPhysician(context.Background(), uuid.New(), rec.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDetailForPhysician(t *testing.T) {
	svc, _ := newTestService()
	physicianID := uuid.New()
	req := createReq()
	req.Prescriptions = append(req.Prescriptions, PrescriptionInput{Notes: "no meds"})
	rec, _ := svc.Create(context.Background(), physicianID, req)

	rows, err := svc.DetailForPhysician(context.Background(), physicianID, rec.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// One row for the medicated prescription, one null-medicine row for the
	// empty one.
	if len(rows) != 2 {
		t.Fatalf("expected 2 flat rows, got %d", len(rows))
	}
	if rows[1].MedicationID != nil {
		t.Error("empty prescription row should have null medication")
	}
}
