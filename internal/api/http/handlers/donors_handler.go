package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bloodlink/donor-service/internal/api/dto"
	"github.com/bloodlink/donor-service/internal/service"
	"github.com/bloodlink/donor-service/pkg/util/errorutil"
)

// DonorsHandler manages donor registration and listing endpoints.
type DonorsHandler struct {
	service *service.DonorService
}

// NewDonorsHandler constructs handler.
func NewDonorsHandler(donorService *service.DonorService) *DonorsHandler {
	return &DonorsHandler{service: donorService}
}

// Register POST /donors.
func (h *DonorsHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterDonorRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	input := service.DonorRegisterInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Age:          req.Age,
		BloodType:    req.BloodType,
		Gender:       req.Gender,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		LastDonation: req.LastDonation,
		Available:    req.Available,
	}
	donor, err := h.service.Register(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewDonorResponse(donor)})
}

// List GET /donors?bloodType=&city=.
func (h *DonorsHandler) List(c *fiber.Ctx) error {
	donors, err := h.service.List(c.UserContext(), c.Query("bloodType"), c.Query("city"))
	if err != nil {
		return err
	}
	items := make([]dto.DonorResponse, 0, len(donors))
	for i := range donors {
		items = append(items, dto.NewDonorResponse(&donors[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
