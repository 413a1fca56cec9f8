package dto

import (
	"time"

	"github.com/bloodlink/donor-service/internal/domain"
)

// RegisterDonorRequest payload. Field names mirror the registration form.
type RegisterDonorRequest struct {
	FullName     string `json:"fullName" form:"fullName"`
	Email        string `json:"email" form:"email"`
	Phone        string `json:"phone" form:"phone"`
	Age          int    `json:"age" form:"age"`
	BloodType    string `json:"bloodType" form:"bloodType"`
	Gender       string `json:"gender" form:"gender"`
	Address      string `json:"address" form:"address"`
	City         string `json:"city" form:"city"`
	State        string `json:"state" form:"state"`
	Pincode      string `json:"pincode" form:"pincode"`
	LastDonation string `json:"lastDonation" form:"lastDonation"`
	Available    *bool  `json:"available" form:"available"`
}

// DonorResponse representation returned to callers.
type DonorResponse struct {
	ID           int64            `json:"id"`
	FullName     string           `json:"full_name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	Age          int              `json:"age"`
	BloodType    domain.BloodType `json:"blood_type"`
	Gender       string           `json:"gender"`
	Address      string           `json:"address"`
	City         string           `json:"city"`
	State        string           `json:"state"`
	Pincode      string           `json:"pincode"`
	LastDonation *string          `json:"last_donation"`
	Available    bool             `json:"available"`
	RegisteredAt time.Time        `json:"registration_date"`
}

// NewDonorResponse maps a domain donor to its API shape. The last donation
// date keeps the form's YYYY-MM-DD representation.
func NewDonorResponse(donor *domain.Donor) DonorResponse {
	resp := DonorResponse{
		ID:           donor.ID,
		FullName:     donor.FullName,
		Email:        donor.Email,
		Phone:        donor.Phone,
		Age:          donor.Age,
		BloodType:    donor.BloodType,
		Gender:       donor.Gender,
		Address:      donor.Address,
		City:         donor.City,
		State:        donor.State,
		Pincode:      donor.Pincode,
		Available:    donor.Available,
		RegisteredAt: donor.RegisteredAt,
	}
	if donor.LastDonation != nil && !donor.LastDonation.IsZero() {
		formatted := donor.LastDonation.Format("2006-01-02")
		resp.LastDonation = &formatted
	}
	return resp
}
