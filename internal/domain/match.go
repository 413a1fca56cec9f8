package domain

import "time"

// MatchResult is the derived outcome of an emergency donor search. It is
// never persisted. DonorsToContact holds at most the contact cap, ordered
// most recently registered first.
type MatchResult struct {
	BloodType       string    `json:"blood_type"`
	City            string    `json:"city"`
	MatchingDonors  int       `json:"matching_donors"`
	AvailableDonors int       `json:"available_donors"`
	DonorsToContact []Donor   `json:"donors_to_contact"`
	GeneratedAt     time.Time `json:"generated_at"`
}
