package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bloodlink/donor-service/internal/service"
)

// StatsHandler exposes the live donor counters.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{service: statsService}
}

// ActiveDonors GET /stats/active-donors.
func (h *StatsHandler) ActiveDonors(c *fiber.Ctx) error {
	count, err := h.service.ActiveDonors(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"active_donors": count}})
}
