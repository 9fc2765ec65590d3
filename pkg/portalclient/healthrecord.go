package portalclient

import (
	"context"
	"errors"
	"strings"
)

var ErrRecordNotFound = errors.New("portal: health record not found")

// RecordRow is one flat row of the record detail join as the server sends
// it. Prescription and medicine columns are null for prescriptions written
// without medicines.
type RecordRow struct {
	RecordID         string `json:"record_id"`
	PatientID        string `json:"patient_id"`
	PhysicianID      string `json:"physician_id"`
	VisitDate        string `json:"visit_date"`
	Diagnosis        string `json:"diagnosis"`
	Symptoms         string `json:"symptoms"`
	LabResults       string `json:"lab_results"`
	FollowUpRequired string `json:"follow_up_required"`
	Notes            string `json:"notes,omitempty"`
	PhysicianName    string `json:"physician_name"`

	PrescriptionID    *string `json:"prescription_id"`
	PrescriptionNotes *string `json:"prescription_notes"`

	MedicationID   *string `json:"medication_id"`
	MedicationName *string `json:"medication_name"`
	Dosage         *string `json:"dosage"`
	Frequency      *string `json:"frequency"`
	Duration       *string `json:"duration"`
	Instructions   *string `json:"instructions"`
}

// Medicine is one prescribed medicine in the assembled record view.
type Medicine struct {
	MedicationID   string `json:"medication_id"`
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	Duration       string `json:"duration"`
	Instructions   string `json:"instructions"`
}

type Prescription struct {
	ID        string     `json:"prescription_id"`
	Notes     string     `json:"notes,omitempty"`
	Medicines []Medicine `json:"medicines"`
}

// Record is the tree view the detail screens render.
type Record struct {
	ID               string         `json:"record_id"`
	PatientID        string         `json:"patient_id"`
	PhysicianID      string         `json:"physician_id"`
	VisitDate        string         `json:"visit_date"`
	Diagnosis        string         `json:"diagnosis"`
	Symptoms         string         `json:"symptoms"`
	LabResults       string         `json:"lab_results"`
	FollowUpRequired string         `json:"follow_up_required"`
	Notes            string         `json:"notes,omitempty"`
	PhysicianName    string         `json:"physician_name"`
	Prescriptions    []Prescription `json:"prescriptions"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// AggregateRecord rebuilds the record tree from the flat join rows. Header
// fields come from the first row. Prescriptions keep first-seen order and
// medicines keep row order; a prescription whose rows carry no medication
// gets an empty (non-nil) medicine list. Nil is returned for empty input.
//
// The function is pure: calling it twice on the same rows yields the same
// tree, and the input is never modified.
func AggregateRecord(rows []RecordRow) *Record {
	if len(rows) == 0 {
		return nil
	}
	first := rows[0]
	rec := &Record{
		ID:               first.RecordID,
		PatientID:        first.PatientID,
		PhysicianID:      first.PhysicianID,
		VisitDate:        first.VisitDate,
		Diagnosis:        first.Diagnosis,
		Symptoms:         first.Symptoms,
		LabResults:       first.LabResults,
		FollowUpRequired: first.FollowUpRequired,
		Notes:            first.Notes,
		PhysicianName:    first.PhysicianName,
		Prescriptions:    []Prescription{},
	}

	index := make(map[string]int)
	for _, row := range rows {
		if row.PrescriptionID == nil {
			continue
		}
		pid := *row.PrescriptionID
		pos, seen := index[pid]
		if !seen {
			pos = len(rec.Prescriptions)
			index[pid] = pos
			rec.Prescriptions = append(rec.Prescriptions, Prescription{
				ID:        pid,
				Notes:     deref(row.PrescriptionNotes),
				Medicines: []Medicine{},
			})
		}
		if row.MedicationID == nil {
			continue
		}
		rec.Prescriptions[pos].Medicines = append(rec.Prescriptions[pos].Medicines, Medicine{
			MedicationID:   *row.MedicationID,
			MedicationName: deref(row.MedicationName),
			Dosage:         deref(row.Dosage),
			Frequency:      deref(row.Frequency),
			Duration:       deref(row.Duration),
			Instructions:   deref(row.Instructions),
		})
	}
	return rec
}

// RecordHeader is one row of the record listings.
type RecordHeader struct {
	ID               string `json:"record_id"`
	PatientID        string `json:"patient_id"`
	PhysicianID      string `json:"physician_id"`
	VisitDate        string `json:"visit_date"`
	Diagnosis        string `json:"diagnosis"`
	Symptoms         string `json:"symptoms"`
	LabResults       string `json:"lab_results"`
	FollowUpRequired string `json:"follow_up_required"`
	Notes            string `json:"notes,omitempty"`
	PatientName      string `json:"patient_name,omitempty"`
	PhysicianName    string `json:"physician_name,omitempty"`
}

// FilterRecords applies the record list screen's three filters: a
// case-insensitive text search over diagnosis, symptoms, physician name and
// visit date, an exact follow-up flag match ("Yes"/"No", "" disables) and an
// exact physician-name match ("" disables). All three AND together. Filtering
// is pure and idempotent.
func FilterRecords(headers []RecordHeader, query, followUp, physicianName string) []RecordHeader {
	out := []RecordHeader{}
	q := strings.ToLower(query)
	for _, h := range headers {
		if q != "" {
			matched := false
			for _, field := range []string{h.Diagnosis, h.Symptoms, h.PhysicianName, h.VisitDate} {
				if strings.Contains(strings.ToLower(field), q) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if followUp != "" && h.FollowUpRequired != followUp {
			continue
		}
		if physicianName != "" && h.PhysicianName != physicianName {
			continue
		}
		out = append(out, h)
	}
	return out
}

// PatientHealthRecords lists the signed-in patient's visit headers.
func (c *Client) PatientHealthRecords(ctx context.Context) ([]RecordHeader, error) {
	var res struct {
		HealthRecords []RecordHeader `json:"healthrecords"`
	}
	if err := c.post(ctx, patientPrefix+"/healthRecord", struct{}{}, &res); err != nil {
		return nil, err
	}
	return res.HealthRecords, nil
}

func (c *Client) recordDetail(ctx context.Context, prefix, recordID string) (*Record, error) {
	var res struct {
		HealthRecord []RecordRow `json:"healthrecord"`
	}
	if err := c.get(ctx, prefix+"/healthRecord/record/"+recordID, &res); err != nil {
		return nil, err
	}
	rec := AggregateRecord(res.HealthRecord)
	if rec == nil {
		return nil, ErrRecordNotFound
	}
	return rec, nil
}

// PatientRecordDetail fetches and assembles one of the patient's records.
func (c *Client) PatientRecordDetail(ctx context.Context, recordID string) (*Record, error) {
	return c.recordDetail(ctx, patientPrefix, recordID)
}

// PhysicianRecordDetail fetches and assembles a record the physician wrote.
func (c *Client) PhysicianRecordDetail(ctx context.Context, recordID string) (*Record, error) {
	return c.recordDetail(ctx, physicianPrefix, recordID)
}

// PatientVisits lists a patient's visits with the signed-in physician.
func (c *Client) PatientVisits(ctx context.Context, patientID string) ([]RecordHeader, error) {
	var res struct {
		Visits []RecordHeader `json:"visits"`
	}
	if err := c.get(ctx, physicianPrefix+"/patient/"+patientID+"/visits", &res); err != nil {
		return nil, err
	}
	return res.Visits, nil
}
