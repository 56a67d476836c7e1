package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Francis1918/citamed_backend/internal/service/notification"
	"github.com/Francis1918/citamed_backend/internal/storage"
)

type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

type notificationResponse struct {
	Recipient string    `json:"recipient"`
	Channel   string    `json:"channel"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	SentAt    time.Time `json:"sent_at"`
}

func notificationViews(list []storage.Notification) []notificationResponse {
	out := make([]notificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, notificationResponse{
			Recipient: n.Recipient,
			Channel:   string(n.Channel),
			Message:   n.Message,
			Status:    string(n.Status),
			SentAt:    n.SentAt,
		})
	}
	return out
}

// GET /notifications?recipient=
func (h *NotificationHandler) List(c fiber.Ctx) error {
	recipient := c.Query("recipient")
	if recipient == "" {
		return badRequest(c, "recipient is required")
	}
	return ok(c, notificationViews(h.svc.History(c.Context(), recipient)))
}
