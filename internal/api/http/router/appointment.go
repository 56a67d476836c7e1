package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Francis1918/citamed_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(api fiber.Router, ah *handler.AppointmentHandler) {
	appointments := api.Group("/appointments")

	appointments.Post("/", ah.Book)
	appointments.Get("/", ah.ListDay)
	appointments.Get("/:code", ah.Get)

	// Lifecycle transitions
	appointments.Patch("/:code/reschedule", ah.Reschedule)
	appointments.Patch("/:code/cancel", ah.Cancel)
	appointments.Patch("/:code/attendance", ah.RecordAttendance)
}
