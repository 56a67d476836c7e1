package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Francis1918/citamed_backend/internal/api/http/handler"
)

func (r *Router) registerNotificationRoutes(api fiber.Router, nh *handler.NotificationHandler) {
	api.Get("/notifications", nh.List)
}
