package domain

import "time"

// BloodType enumerates the eight standard ABO/Rh groups.
type BloodType string

const (
	BloodTypeAPositive  BloodType = "A+"
	BloodTypeANegative  BloodType = "A-"
	BloodTypeBPositive  BloodType = "B+"
	BloodTypeBNegative  BloodType = "B-"
	BloodTypeABPositive BloodType = "AB+"
	BloodTypeABNegative BloodType = "AB-"
	BloodTypeOPositive  BloodType = "O+"
	BloodTypeONegative  BloodType = "O-"
)

// Valid reports whether the value is one of the eight recognized groups.
func (b BloodType) Valid() bool {
	switch b {
	case BloodTypeAPositive, BloodTypeANegative,
		BloodTypeBPositive, BloodTypeBNegative,
		BloodTypeABPositive, BloodTypeABNegative,
		BloodTypeOPositive, BloodTypeONegative:
		return true
	}
	return false
}

// Donor is the registered-person aggregate. Records are created once at
// registration and read-only afterwards.
type Donor struct {
	ID           int64      `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Age          int        `json:"age"`
	BloodType    BloodType  `json:"blood_type"`
	Gender       string     `json:"gender"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	Pincode      string     `json:"pincode"`
	LastDonation *time.Time `json:"last_donation,omitempty"`
	Available    bool       `json:"available"`
	RegisteredAt time.Time  `json:"registration_date"`
}

// Donor age bounds accepted at registration.
const (
	MinDonorAge = 18
	MaxDonorAge = 65
)
