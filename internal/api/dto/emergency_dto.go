package dto

import (
	"time"

	"github.com/bloodlink/donor-service/internal/domain"
)

// SubmitEmergencyRequest payload. All values arrive as form strings.
type SubmitEmergencyRequest struct {
	PatientName     string `json:"patientName" form:"patientName"`
	ContactPerson   string `json:"contactPerson" form:"contactPerson"`
	Hospital        string `json:"hospital" form:"hospital"`
	HospitalCity    string `json:"hospitalCity" form:"hospitalCity"`
	HospitalAddress string `json:"hospitalAddress" form:"hospitalAddress"`
	BloodType       string `json:"bloodType" form:"bloodType"`
	Units           string `json:"units" form:"units"`
	Urgency         string `json:"urgency" form:"urgency"`
	Contact         string `json:"contact" form:"contact"`
	Message         string `json:"message" form:"message"`
}

// EmergencySubmissionResponse composes the stored request with the match
// outcome.
type EmergencySubmissionResponse struct {
	Status          string                  `json:"status"`
	Message         string                  `json:"message"`
	EmergencyID     string                  `json:"emergency_id"`
	MatchingDonors  int                     `json:"matching_donors"`
	AvailableDonors int                     `json:"available_donors"`
	DonorsToContact []DonorResponse         `json:"donors_to_contact"`
	Request         domain.EmergencyRequest `json:"emergency_details"`
	Timestamp       time.Time               `json:"timestamp"`
}
