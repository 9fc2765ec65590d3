package portalclient

import (
	"context"
	"strings"
)

// ActivityTypeAll is the filter literal meaning "no type filter". It is
// never a stored activity type.
const ActivityTypeAll = "all"

// ClinicalActivity is a physician-authored activity log entry. Notes is
// optional; entries saved without one carry null on the wire.
type ClinicalActivity struct {
	ID           string  `json:"entry_id"`
	PatientID    string  `json:"patient_id"`
	PhysicianID  string  `json:"physician_id"`
	ActivityType string  `json:"activity_type"`
	Description  string  `json:"description"`
	Notes        *string `json:"notes,omitempty"`
	ActivityDate string  `json:"activity_date"`
	PatientName  string  `json:"patient_name,omitempty"`
}

// FitnessLog is a patient's daily fitness entry.
type FitnessLog struct {
	ID       string  `json:"log_id"`
	LogDate  string  `json:"log_date"`
	Weight   float64 `json:"weight"`
	BP       string  `json:"bp"`
	Calories int     `json:"calories"`
	Duration int     `json:"duration_of_physical_activity"`
}

// FilterActivities applies the activity log screen's two filters: an exact
// type match (disabled by "" or "all") ANDed with a case-insensitive text
// search over description, patient name, type and date. Filtering is pure
// and idempotent; applying the same filter twice gives the same result.
func FilterActivities(entries []ClinicalActivity, activityType, query string) []ClinicalActivity {
	out := []ClinicalActivity{}
	q := strings.ToLower(query)
	for _, e := range entries {
		if activityType != "" && activityType != ActivityTypeAll && e.ActivityType != activityType {
			continue
		}
		if q != "" {
			matched := false
			for _, field := range []string{e.Description, e.PatientName, e.ActivityType, e.ActivityDate} {
				if strings.Contains(strings.ToLower(field), q) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// -- Physician clinical log --

func (c *Client) ClinicalActivities(ctx context.Context) ([]ClinicalActivity, error) {
	var res struct {
		Activities []ClinicalActivity `json:"activities"`
	}
	if err := c.get(ctx, physicianPrefix+"/activity-log", &res); err != nil {
		return nil, err
	}
	return res.Activities, nil
}

func (c *Client) PatientClinicalActivities(ctx context.Context, patientID string) ([]ClinicalActivity, error) {
	var res struct {
		Activities []ClinicalActivity `json:"activities"`
	}
	if err := c.get(ctx, physicianPrefix+"/activity-log/patient/"+patientID, &res); err != nil {
		return nil, err
	}
	return res.Activities, nil
}

type ClinicalActivityForm struct {
	PatientID    string  `json:"patient_id"`
	ActivityType string  `json:"activity_type"`
	Description  string  `json:"description"`
	Notes        *string `json:"notes,omitempty"`
	ActivityDate string  `json:"activity_date,omitempty"`
}

func (c *Client) RecordClinicalActivity(ctx context.Context, form ClinicalActivityForm) (*ClinicalActivity, error) {
	var res struct {
		Activity *ClinicalActivity `json:"activity"`
	}
	if err := c.post(ctx, physicianPrefix+"/activity-log/create", form, &res); err != nil {
		return nil, err
	}
	return res.Activity, nil
}

func (c *Client) UpdateClinicalActivity(ctx context.Context, id string, form ClinicalActivityForm) (*ClinicalActivity, error) {
	var res struct {
		Activity *ClinicalActivity `json:"activity"`
	}
	if err := c.put(ctx, physicianPrefix+"/activity-log/update/"+id, form, &res); err != nil {
		return nil, err
	}
	return res.Activity, nil
}

// -- Patient fitness log --

func (c *Client) FitnessLogs(ctx context.Context) ([]FitnessLog, error) {
	var res struct {
		ActivityLogs []FitnessLog `json:"activitylogs"`
	}
	if err := c.get(ctx, patientPrefix+"/activitylogs", &res); err != nil {
		return nil, err
	}
	return res.ActivityLogs, nil
}

type FitnessLogForm struct {
	LogDate  string  `json:"log_date"`
	Weight   float64 `json:"weight"`
	BP       string  `json:"bp"`
	Calories int     `json:"calories"`
	Duration int     `json:"duration_of_physical_activity"`
}

func (c *Client) CreateFitnessLog(ctx context.Context, form FitnessLogForm) (*FitnessLog, error) {
	var res struct {
		ActivityLog *FitnessLog `json:"activitylog"`
	}
	if err := c.post(ctx, patientPrefix+"/activitylog/new", form, &res); err != nil {
		return nil, err
	}
	return res.ActivityLog, nil
}

func (c *Client) UpdateFitnessLog(ctx context.Context, id string, form FitnessLogForm) (*FitnessLog, error) {
	var res struct {
		ActivityLog *FitnessLog `json:"activitylog"`
	}
	if err := c.put(ctx, patientPrefix+"/activitylog/"+id+"/edit", form, &res); err != nil {
		return nil, err
	}
	return res.ActivityLog, nil
}

func (c *Client) DeleteFitnessLog(ctx context.Context, id string) error {
	return c.delete(ctx, patientPrefix+"/activitylog/"+id+"/delete")
}
