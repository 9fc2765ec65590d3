package activitylog

import "testing"

func TestActivityTypeValid(t *testing.T) {
	for _, at := range []ActivityType{TypeVisit, TypeMedicationChange, TypeTestResult, TypeConsultation, TypeFollowUp, TypeOther} {
		if !at.Valid() {
			t.Errorf("%s should be valid", at)
		}
	}
	// "all" is a filter value, not a storable type.
	if ActivityType("all").Valid() {
		t.Error("all must not be a valid stored type")
	}
	if ActivityType("Visit").Valid() {
		t.Error("types are case-sensitive")
	}
}

func TestParseBP(t *testing.T) {
	sys, dia, err := ParseBP("120/80")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sys != 120 || dia != 80 {
		t.Errorf("got %d/%d, want 120/80", sys, dia)
	}

	sys, dia, err = ParseBP(" 118 / 76 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sys != 118 || dia != 76 {
		t.Errorf("got %d/%d, want 118/76", sys, dia)
	}
}

func TestParseBP_Invalid(t *testing.T) {
	for _, bad := range []string{"", "120", "120/80/60", "abc/80", "120/xyz", "-120/80", "120/0"} {
		if _, _, err := ParseBP(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
