package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Francis1918/citamed_backend/internal/api/http/handler"
)

func (r *Router) registerDoctorRoutes(api fiber.Router, dh *handler.DoctorHandler) {
	doctors := api.Group("/doctors")

	doctors.Post("/", dh.Create)
	doctors.Get("/:id", dh.Get)

	// Availability and office hours
	doctors.Get("/:id/slots", dh.ListSlots)
	doctors.Get("/:id/schedule", dh.GetSchedule)
	doctors.Put("/:id/schedule", dh.PutSchedule)
}
