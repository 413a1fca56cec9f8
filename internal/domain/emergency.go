package domain

import "time"

// UrgencyLevel describes how quickly blood is needed. The intake form offers
// these values but free-form labels are stored as-is.
type UrgencyLevel string

const (
	UrgencyCritical UrgencyLevel = "critical"
	UrgencyUrgent   UrgencyLevel = "urgent"
	UrgencyStandard UrgencyLevel = "standard"
)

// EmergencyRequest records a hospital-originated need for blood. Rows are
// immutable after insert; delivery of donor notifications is simulated and
// not tracked against the request.
type EmergencyRequest struct {
	ID              string       `json:"id"`
	PatientName     string       `json:"patient_name"`
	ContactPerson   string       `json:"contact_person"`
	Hospital        string       `json:"hospital"`
	HospitalCity    string       `json:"hospital_city"`
	HospitalAddress *string      `json:"hospital_address,omitempty"`
	BloodType       BloodType    `json:"blood_type"`
	Units           int          `json:"units"`
	Urgency         UrgencyLevel `json:"urgency"`
	ContactPhone    string       `json:"contact_phone"`
	Message         *string      `json:"message,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}
