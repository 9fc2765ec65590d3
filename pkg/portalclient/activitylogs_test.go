package portalclient

import (
	"reflect"
	"testing"
)

func sampleActivities() []ClinicalActivity {
	return []ClinicalActivity{
		{ID: "e1", ActivityType: "visit", Description: "Routine visit", PatientName: "Jane Doe", ActivityDate: "2026-01-10"},
		{ID: "e2", ActivityType: "test_result", Description: "Lipid panel back", PatientName: "Omar Haddad", ActivityDate: "2026-01-12"},
		{ID: "e3", ActivityType: "visit", Description: "Walk-in consult", PatientName: "Jane Doe", ActivityDate: "2026-02-01"},
	}
}

func TestFilterActivities_ByType(t *testing.T) {
	entries := sampleActivities()

	if got := FilterActivities(entries, "visit", ""); len(got) != 2 {
		t.Errorf("type filter: got %d, want 2", len(got))
	}
	if got := FilterActivities(entries, ActivityTypeAll, ""); len(got) != 3 {
		t.Errorf(`"all" disables the type filter, got %d`, len(got))
	}
	if got := FilterActivities(entries, "", ""); len(got) != 3 {
		t.Errorf("empty type disables the filter, got %d", len(got))
	}
	if got := FilterActivities(entries, "medication_change", ""); len(got) != 0 {
		t.Errorf("unmatched type: got %d, want 0", len(got))
	}
}

func TestFilterActivities_ByText(t *testing.T) {
	entries := sampleActivities()

	if got := FilterActivities(entries, "", "jane"); len(got) != 2 {
		t.Errorf("patient name match: got %d, want 2", len(got))
	}
	if got := FilterActivities(entries, "", "LIPID"); len(got) != 1 {
		t.Errorf("case-insensitive description match: got %d, want 1", len(got))
	}
	if got := FilterActivities(entries, "", "2026-01"); len(got) != 2 {
		t.Errorf("date substring match: got %d, want 2", len(got))
	}
	if got := FilterActivities(entries, "", "test_result"); len(got) != 1 {
		t.Errorf("type text match: got %d, want 1", len(got))
	}
}

func TestFilterActivities_Combined(t *testing.T) {
	entries := sampleActivities()

	// Type and text AND together.
	got := FilterActivities(entries, "visit", "walk-in")
	if len(got) != 1 || got[0].ID != "e3" {
		t.Errorf("combined filter: got %+v", got)
	}
}

func TestFilterActivities_Idempotent(t *testing.T) {
	entries := sampleActivities()
	once := FilterActivities(entries, "visit", "jane")
	twice := FilterActivities(once, "visit", "jane")
	if !reflect.DeepEqual(once, twice) {
		t.Error("refiltering a filtered list must be a no-op")
	}
	if len(entries) != 3 {
		t.Error("input slice was mutated")
	}
}

func TestFilterActivities_NoMatchIsEmptyNotNil(t *testing.T) {
	got := FilterActivities(sampleActivities(), "other", "")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}
