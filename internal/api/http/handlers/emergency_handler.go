package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bloodlink/donor-service/internal/api/dto"
	"github.com/bloodlink/donor-service/internal/service"
	"github.com/bloodlink/donor-service/pkg/util/errorutil"
)

// EmergencyHandler manages emergency request intake.
type EmergencyHandler struct {
	service *service.EmergencyService
}

// NewEmergencyHandler constructs handler.
func NewEmergencyHandler(emergencyService *service.EmergencyService) *EmergencyHandler {
	return &EmergencyHandler{service: emergencyService}
}

// Submit POST /emergencies.
func (h *EmergencyHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitEmergencyRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	input := service.EmergencySubmitInput{
		PatientName:     req.PatientName,
		ContactPerson:   req.ContactPerson,
		Hospital:        req.Hospital,
		HospitalCity:    req.HospitalCity,
		HospitalAddress: req.HospitalAddress,
		BloodType:       req.BloodType,
		Units:           req.Units,
		Urgency:         req.Urgency,
		Contact:         req.Contact,
		Message:         req.Message,
	}
	submission, err := h.service.Submit(c.UserContext(), input)
	if err != nil {
		return err
	}

	contacts := make([]dto.DonorResponse, 0, len(submission.Match.DonorsToContact))
	for i := range submission.Match.DonorsToContact {
		contacts = append(contacts, dto.NewDonorResponse(&submission.Match.DonorsToContact[i]))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.EmergencySubmissionResponse{
		Status:          submission.Status,
		Message:         submission.Message,
		EmergencyID:     submission.EmergencyID,
		MatchingDonors:  submission.Match.MatchingDonors,
		AvailableDonors: submission.Match.AvailableDonors,
		DonorsToContact: contacts,
		Request:         submission.Request,
		Timestamp:       submission.Match.GeneratedAt,
	}})
}
