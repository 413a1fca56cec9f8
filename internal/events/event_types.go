package events

import (
	"time"

	"github.com/bloodlink/donor-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDonorRegistered    EventType = "donor_registered"
	EventEmergencyRequested EventType = "emergency_requested"
	EventDonorsNotified     EventType = "donors_notified"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// DonorRegisteredPayload payload.
type DonorRegisteredPayload struct {
	DonorID   int64            `json:"donor_id"`
	BloodType domain.BloodType `json:"blood_type"`
	City      string           `json:"city"`
}

// EmergencyRequestedPayload payload.
type EmergencyRequestedPayload struct {
	EmergencyID  string              `json:"emergency_id"`
	BloodType    domain.BloodType    `json:"blood_type"`
	HospitalCity string              `json:"hospital_city"`
	Units        int                 `json:"units"`
	Urgency      domain.UrgencyLevel `json:"urgency"`
}

// DonorContact identifies a donor selected for notification.
type DonorContact struct {
	DonorID   int64            `json:"donor_id"`
	FullName  string           `json:"full_name"`
	Phone     string           `json:"phone"`
	BloodType domain.BloodType `json:"blood_type"`
	City      string           `json:"city"`
}

// DonorsNotifiedPayload payload.
type DonorsNotifiedPayload struct {
	EmergencyID  string         `json:"emergency_id"`
	HospitalCity string         `json:"hospital_city"`
	ContactPhone string         `json:"contact_phone"`
	Donors       []DonorContact `json:"donors"`
}
