package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bloodlink/donor-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Donors    *handlers.DonorsHandler
	Emergency *handlers.EmergencyHandler
	Stats     *handlers.StatsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/donors", cfg.Donors.Register)
	app.Get("/donors", cfg.Donors.List)

	app.Post("/emergencies", cfg.Emergency.Submit)

	app.Get("/stats/active-donors", cfg.Stats.ActiveDonors)
}
