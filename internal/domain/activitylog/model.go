package activitylog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies a clinical activity entry. The literal "all" is a
// query value meaning no filter, never a stored type.
type ActivityType string

const (
	TypeVisit            ActivityType = "visit"
	TypeMedicationChange ActivityType = "medication_change"
	TypeTestResult       ActivityType = "test_result"
	TypeConsultation     ActivityType = "consultation"
	TypeFollowUp         ActivityType = "follow_up"
	TypeOther            ActivityType = "other"
)

var validTypes = map[ActivityType]bool{
	TypeVisit:            true,
	TypeMedicationChange: true,
	TypeTestResult:       true,
	TypeConsultation:     true,
	TypeFollowUp:         true,
	TypeOther:            true,
}

func (t ActivityType) Valid() bool { return validTypes[t] }

// ClinicalEntry is a physician-authored activity log line for a patient.
// Notes is optional and stays null when the form leaves it blank.
type ClinicalEntry struct {
	ID           uuid.UUID    `db:"id" json:"entry_id"`
	PatientID    uuid.UUID    `db:"patient_id" json:"patient_id"`
	PhysicianID  uuid.UUID    `db:"physician_id" json:"physician_id"`
	ActivityType ActivityType `db:"activity_type" json:"activity_type"`
	Description  string       `db:"description" json:"description"`
	Notes        *string      `db:"notes" json:"notes,omitempty"`
	ActivityDate string       `db:"activity_date" json:"activity_date"`

	PatientName string `db:"patient_name" json:"patient_name,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// FitnessLog is a patient-maintained daily entry. BP stays on the wire as
// the literal "systolic/diastolic" string.
type FitnessLog struct {
	ID        uuid.UUID `db:"id" json:"log_id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	LogDate   string    `db:"log_date" json:"log_date"`
	Weight    float64   `db:"weight" json:"weight"`
	BP        string    `db:"bp" json:"bp"`
	Calories  int       `db:"calories" json:"calories"`
	Duration  int       `db:"duration_of_physical_activity" json:"duration_of_physical_activity"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ParseBP splits a "systolic/diastolic" reading into its two components.
func ParseBP(bp string) (systolic, diastolic int, err error) {
	parts := strings.Split(strings.TrimSpace(bp), "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid bp %q: expected systolic/diastolic", bp)
	}
	systolic, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid systolic value %q", parts[0])
	}
	diastolic, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid diastolic value %q", parts[1])
	}
	if systolic <= 0 || diastolic <= 0 {
		return 0, 0, fmt.Errorf("bp values must be positive")
	}
	return systolic, diastolic, nil
}
