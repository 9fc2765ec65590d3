package portalclient

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

func sampleAppointments() []Appointment {
	return []Appointment{
		{ID: "a1", Date: "2026-02-01 09:00:00", Reason: "Annual checkup", PhysicianName: "Sarah Lin", Status: StatusPending},
		{ID: "a2", Date: "2026-02-03 14:30:00", Reason: "Back pain", PhysicianName: "Marcus Webb", Status: StatusCompleted, Notes: "MRI ordered"},
		{ID: "a3", Date: "2026-03-10 11:00:00", Reason: "Follow up", PhysicianName: "Sarah Lin", Status: StatusCancelled},
	}
}

func TestFilterAppointments(t *testing.T) {
	appts := sampleAppointments()

	if got := FilterAppointments(appts, ""); len(got) != 3 {
		t.Errorf("empty query should match all, got %d", len(got))
	}
	if got := FilterAppointments(appts, "sarah"); len(got) != 2 {
		t.Errorf("physician name match: got %d, want 2", len(got))
	}
	if got := FilterAppointments(appts, "BACK"); len(got) != 1 {
		t.Errorf("case-insensitive reason match: got %d, want 1", len(got))
	}
	if got := FilterAppointments(appts, "2026-02"); len(got) != 2 {
		t.Errorf("date substring match: got %d, want 2", len(got))
	}
	if got := FilterAppointments(appts, "mri"); len(got) != 1 {
		t.Errorf("notes match: got %d, want 1", len(got))
	}
	if got := FilterAppointments(appts, "zzz"); len(got) != 0 {
		t.Errorf("no match expected, got %d", len(got))
	}
}

func TestFilterAppointments_DoesNotMutate(t *testing.T) {
	appts := sampleAppointments()
	FilterAppointments(appts, "sarah")
	if appts[0].ID != "a1" || len(appts) != 3 {
		t.Error("input slice was mutated")
	}
}

func TestFilterPhysicianAppointments(t *testing.T) {
	appts := sampleAppointments()

	if got := FilterPhysicianAppointments(appts, "", StatusPending); len(got) != 1 {
		t.Errorf("status filter: got %d, want 1", len(got))
	}
	if got := FilterPhysicianAppointments(appts, "", "all"); len(got) != 3 {
		t.Errorf(`"all" disables the status filter, got %d`, len(got))
	}
	// Text and status compose with AND.
	if got := FilterPhysicianAppointments(appts, "sarah", StatusCancelled); len(got) != 1 {
		t.Errorf("combined filter: got %d, want 1", len(got))
	}
	if got := FilterPhysicianAppointments(appts, "sarah", StatusCompleted); len(got) != 0 {
		t.Errorf("combined filter mismatch: got %d, want 0", len(got))
	}
}

func TestLifecycle_CancelOptimistic(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	lc := NewLifecycle(client, nil)

	appts := sampleAppointments()
	got, err := lc.Cancel(context.Background(), appts, "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Status != StatusCancelled {
		t.Errorf("status = %s, want Cancelled", got[0].Status)
	}
	// The caller's slice is untouched.
	if appts[0].Status != StatusPending {
		t.Error("input slice was mutated")
	}
}

func TestLifecycle_RollbackOnServerRefusal(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "cannot cancel a completed appointment"})
	})
	lc := NewLifecycle(client, nil)

	got, err := lc.Cancel(context.Background(), sampleAppointments(), "a1")
	if err == nil {
		t.Fatal("expected error")
	}
	if got[0].Status != StatusPending {
		t.Errorf("status = %s, want rollback to Pending", got[0].Status)
	}
}

func TestLifecycle_RollbackOnTimeout(t *testing.T) {
	srv, store := newSlowServer(t)
	client := NewClient(srv, store, WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))
	lc := NewLifecycle(client, nil)

	got, err := lc.Complete(context.Background(), sampleAppointments(), "a1")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if got[0].Status != StatusPending {
		t.Errorf("status = %s, want rollback to Pending", got[0].Status)
	}
}

func TestLifecycle_ConfirmDeclined(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	lc := NewLifecycle(client, func(string) bool { return false })

	got, err := lc.Cancel(context.Background(), sampleAppointments(), "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Status != StatusPending {
		t.Error("declined confirm must leave the list unchanged")
	}
	if called {
		t.Error("declined confirm must not hit the server")
	}
}

func TestLifecycle_UnknownAppointment(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	lc := NewLifecycle(client, nil)

	if _, err := lc.Cancel(context.Background(), sampleAppointments(), "missing"); err == nil {
		t.Error("expected error for unknown appointment id")
	}
}

func TestBook_Validation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid form must not reach the server")
	})

	_, err := client.Book(context.Background(), BookingForm{Reason: "x"})
	if err == nil {
		t.Error("expected error for missing fields")
	}

	_, err = client.Book(context.Background(), BookingForm{
		PhysicianID: "p1",
		Date:        time.Now().Add(-time.Hour),
		Reason:      "checkup",
	})
	if err == nil {
		t.Error("expected error for past date")
	}
}

func TestBook_WireFormat(t *testing.T) {
	var sent map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "appointment": Appointment{ID: "new", Status: StatusPending}})
	})

	when := time.Date(2026, 12, 24, 9, 30, 0, 0, time.Local)
	a, err := client.Book(context.Background(), BookingForm{
		PhysicianID: "p1", Date: when, Reason: "  checkup  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent["date"] != "2026-12-24 09:30:00" {
		t.Errorf("date on wire = %q, want literal format", sent["date"])
	}
	if sent["reason"] != "checkup" {
		t.Errorf("reason = %q, want trimmed", sent["reason"])
	}
	if a.ID != "new" {
		t.Error("booked appointment not returned")
	}
}
