package portalclient

import "context"

// PhysicianInfo is a booking-screen directory entry.
type PhysicianInfo struct {
	AccountID          string `json:"account_id"`
	PhysicianName      string `json:"physician_name"`
	SpecializationName string `json:"specialization_name,omitempty"`
}

type PatientInfo struct {
	AccountID   string `json:"account_id"`
	PatientName string `json:"patient_name"`
}

type MedicationInfo struct {
	ID             string `json:"id"`
	MedicationName string `json:"medication_name"`
	DosageForm     string `json:"dosage_form,omitempty"`
}

// Physicians lists the bookable physicians for the signed-in patient.
func (c *Client) Physicians(ctx context.Context) ([]PhysicianInfo, error) {
	var res struct {
		Physicians []PhysicianInfo `json:"physicians"`
	}
	if err := c.get(ctx, patientPrefix+"/physicians", &res); err != nil {
		return nil, err
	}
	return res.Physicians, nil
}

// Patients lists the physician's patients, derived from their appointments.
func (c *Client) Patients(ctx context.Context) ([]PatientInfo, error) {
	var res struct {
		Patients []PatientInfo `json:"patients"`
	}
	if err := c.get(ctx, physicianPrefix+"/patients", &res); err != nil {
		return nil, err
	}
	return res.Patients, nil
}

// Medications lists the prescribable medication catalog.
func (c *Client) Medications(ctx context.Context) ([]MedicationInfo, error) {
	var res struct {
		Medications []MedicationInfo `json:"medications"`
	}
	if err := c.get(ctx, physicianPrefix+"/medications", &res); err != nil {
		return nil, err
	}
	return res.Medications, nil
}
