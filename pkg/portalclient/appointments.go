package portalclient

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Appointment statuses as they appear on the wire.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// TimeLayout is the literal date-time format the portal exchanges.
const TimeLayout = "2006-01-02 15:04:05"

type Appointment struct {
	ID            string `json:"appointment_id"`
	PatientID     string `json:"patient_id"`
	PhysicianID   string `json:"physician_id"`
	Date          string `json:"date"`
	Reason        string `json:"reason"`
	Notes         string `json:"notes,omitempty"`
	Status        string `json:"status"`
	PatientName   string `json:"patient_name,omitempty"`
	PhysicianName string `json:"physician_name,omitempty"`
}

type appointmentsResponse struct {
	Appointments []Appointment `json:"appointments"`
}

// PatientAppointments fetches the signed-in patient's appointments. The
// dashboard endpoint is POST-shaped with an empty body.
func (c *Client) PatientAppointments(ctx context.Context) ([]Appointment, error) {
	var res appointmentsResponse
	if err := c.post(ctx, patientPrefix+"/dashboard", struct{}{}, &res); err != nil {
		return nil, err
	}
	return res.Appointments, nil
}

func (c *Client) PhysicianAppointments(ctx context.Context) ([]Appointment, error) {
	var res appointmentsResponse
	if err := c.get(ctx, physicianPrefix+"/appointments", &res); err != nil {
		return nil, err
	}
	return res.Appointments, nil
}

// BookingForm is the typed booking input. The date converts to the wire
// literal at send time.
type BookingForm struct {
	PhysicianID string
	Date        time.Time
	Reason      string
	Notes       string
}

func (f *BookingForm) validate() error {
	var missing []string
	if f.PhysicianID == "" {
		missing = append(missing, "physician")
	}
	if f.Date.IsZero() {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(f.Reason) == "" {
		missing = append(missing, "reason")
	}
	if len(missing) > 0 {
		return fmt.Errorf("portal: missing booking fields: %s", strings.Join(missing, ", "))
	}
	if !f.Date.After(time.Now()) {
		return fmt.Errorf("portal: appointment date must be in the future")
	}
	return nil
}

// Book validates the form locally, converts the date to the wire literal and
// submits it. Local validation mirrors the server's so obvious mistakes fail
// before a round trip.
func (c *Client) Book(ctx context.Context, form BookingForm) (*Appointment, error) {
	if err := form.validate(); err != nil {
		return nil, err
	}
	req := map[string]string{
		"physician_id": form.PhysicianID,
		"date":         form.Date.Format(TimeLayout),
		"reason":       strings.TrimSpace(form.Reason),
		"notes":        strings.TrimSpace(form.Notes),
	}
	var res struct {
		Appointment *Appointment `json:"appointment"`
	}
	if err := c.post(ctx, patientPrefix+"/appointment/book", req, &res); err != nil {
		return nil, err
	}
	return res.Appointment, nil
}

func (c *Client) cancelAppointment(ctx context.Context, id string) error {
	return c.put(ctx, patientPrefix+"/appointment/"+id+"/cancel", struct{}{}, nil)
}

func (c *Client) setAppointmentStatus(ctx context.Context, id, status string) error {
	req := map[string]string{"status": status}
	return c.put(ctx, physicianPrefix+"/appointment/"+id+"/status", req, nil)
}

// ConfirmFunc asks the user before a destructive action. Returning false
// aborts without touching the list or the server.
type ConfirmFunc func(prompt string) bool

// Lifecycle applies optimistic status changes to an appointment list. The
// UI repaints from the returned slice immediately; if the server then says
// no, the follow-up slice has the row back at Pending.
type Lifecycle struct {
	client  *Client
	confirm ConfirmFunc
}

func NewLifecycle(client *Client, confirm ConfirmFunc) *Lifecycle {
	return &Lifecycle{client: client, confirm: confirm}
}

// withStatus returns a copy of the list with one appointment's status
// replaced. The input slice is never mutated.
func withStatus(appts []Appointment, id, status string) ([]Appointment, bool) {
	out := make([]Appointment, len(appts))
	copy(out, appts)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
			return out, true
		}
	}
	return out, false
}

func (l *Lifecycle) apply(ctx context.Context, appts []Appointment, id, status, prompt string,
	call func(context.Context, string) error) ([]Appointment, error) {

	prev := ""
	for i := range appts {
		if appts[i].ID == id {
			prev = appts[i].Status
			break
		}
	}
	if prev == "" {
		return appts, fmt.Errorf("portal: appointment %s not in list", id)
	}
	if l.confirm != nil && !l.confirm(prompt) {
		return appts, nil
	}
	optimistic, _ := withStatus(appts, id, status)
	if err := call(ctx, id); err != nil {
		rolledBack, _ := withStatus(appts, id, prev)
		return rolledBack, err
	}
	return optimistic, nil
}

// Cancel optimistically cancels a patient's appointment.
func (l *Lifecycle) Cancel(ctx context.Context, appts []Appointment, id string) ([]Appointment, error) {
	return l.apply(ctx, appts, id, StatusCancelled,
		"Are you sure you want to cancel this appointment?", l.client.cancelAppointment)
}

// Complete optimistically marks an appointment completed on behalf of the
// physician.
func (l *Lifecycle) Complete(ctx context.Context, appts []Appointment, id string) ([]Appointment, error) {
	return l.apply(ctx, appts, id, StatusCompleted,
		"Mark this appointment as completed?",
		func(ctx context.Context, id string) error {
			return l.client.setAppointmentStatus(ctx, id, StatusCompleted)
		})
}

// CancelAsPhysician optimistically cancels through the physician endpoint.
func (l *Lifecycle) CancelAsPhysician(ctx context.Context, appts []Appointment, id string) ([]Appointment, error) {
	return l.apply(ctx, appts, id, StatusCancelled,
		"Are you sure you want to cancel this appointment?",
		func(ctx context.Context, id string) error {
			return l.client.setAppointmentStatus(ctx, id, StatusCancelled)
		})
}

// matchesQuery is the shared free-text check: case-insensitive substring
// over reason, the counterparty name, the date literal and the notes. An
// empty query matches everything.
func (a *Appointment) matchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{a.Reason, a.PatientName, a.PhysicianName, a.Date, a.Notes} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterAppointments is the patient list filter: free text only.
func FilterAppointments(appts []Appointment, query string) []Appointment {
	out := []Appointment{}
	for _, a := range appts {
		if a.matchesQuery(query) {
			out = append(out, a)
		}
	}
	return out
}

// FilterPhysicianAppointments adds an exact status filter ANDed with the
// text match. An empty status (or "all") disables the status check.
func FilterPhysicianAppointments(appts []Appointment, query, status string) []Appointment {
	out := []Appointment{}
	for _, a := range appts {
		if !a.matchesQuery(query) {
			continue
		}
		if status != "" && status != "all" && a.Status != status {
			continue
		}
		out = append(out, a)
	}
	return out
}
