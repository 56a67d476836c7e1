package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Francis1918/citamed_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(api fiber.Router, ph *handler.PatientHandler) {
	patients := api.Group("/patients")

	patients.Post("/", ph.Create)
	patients.Get("/:id", ph.Get)
	patients.Get("/:id/appointments", ph.ListAppointments)
}
