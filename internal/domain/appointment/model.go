package appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the literal wire format for appointment date-times. The
// portal transmits and stores local clock time as a plain string, not a
// timezone-aware instant.
const TimeLayout = "2006-01-02 15:04:05"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an appointment may move from s to target.
// Transitions are one-directional: Pending may become Completed or
// Cancelled, and non-Pending appointments never change again.
func (s Status) CanTransition(target Status) bool {
	return s == StatusPending && (target == StatusCompleted || target == StatusCancelled)
}

// Appointment maps to the appointment table. The two *Name fields are
// denormalized from account at query time for the role-scoped listings.
type Appointment struct {
	ID          uuid.UUID `db:"id" json:"appointment_id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patient_id"`
	PhysicianID uuid.UUID `db:"physician_id" json:"physician_id"`
	Date        string    `db:"date" json:"date"`
	Reason      string    `db:"reason" json:"reason"`
	Notes       string    `db:"notes" json:"notes,omitempty"`
	Status      Status    `db:"status" json:"status"`

	PatientName   string `db:"patient_name" json:"patient_name,omitempty"`
	PhysicianName string `db:"physician_name" json:"physician_name,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ParseWireTime parses the literal wire format in the server's local zone.
func ParseWireTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s", s, TimeLayout)
	}
	return t, nil
}

// FormatWireTime renders a time in the literal wire format.
func FormatWireTime(t time.Time) string {
	return t.Format(TimeLayout)
}
