package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Francis1918/citamed_backend/internal/service/appointment"
	"github.com/Francis1918/citamed_backend/internal/service/schedule"
	"github.com/Francis1918/citamed_backend/internal/storage"
)

type AppointmentHandler struct {
	svc   appointment.Service
	sched schedule.Service
}

func NewAppointmentHandler(svc appointment.Service, sched schedule.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, sched: sched}
}

type appointmentResponse struct {
	Code        string    `json:"code"`
	PatientID   uuid.UUID `json:"patient_id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	StartTime   time.Time `json:"start_time"`
	Office      string    `json:"office,omitempty"`
	Status      string    `json:"status"`
	Comment     string    `json:"comment,omitempty"`
	ArrivalTime string    `json:"arrival_time,omitempty"`
}

func appointmentView(a storage.Appointment) appointmentResponse {
	return appointmentResponse{
		Code:        a.Code,
		PatientID:   a.PatientID,
		DoctorID:    a.DoctorID,
		StartTime:   a.StartTime,
		Office:      a.Office,
		Status:      string(a.Status),
		Comment:     a.Comment,
		ArrivalTime: a.ArrivalTime,
	}
}

func appointmentViews(list []storage.Appointment) []appointmentResponse {
	out := make([]appointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, appointmentView(a))
	}
	return out
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrInvalidPatientID):
		return badRequest(c, err.Error())
	case errors.Is(err, appointment.ErrPatientNotFound),
		errors.Is(err, appointment.ErrDoctorNotFound),
		errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrSlotTaken),
		errors.Is(err, appointment.ErrAlreadyCancelled):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrTooLate),
		errors.Is(err, appointment.ErrNotToday):
		return unprocessable(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	var body struct {
		PatientNationalID string    `json:"patient_national_id"`
		DoctorID          uuid.UUID `json:"doctor_id"`
		StartTime         time.Time `json:"start_time"`
		Comment           string    `json:"comment"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.StartTime.IsZero() {
		return badRequest(c, "start_time is required")
	}

	appt, err := h.svc.Book(c.Context(), appointment.BookRequest{
		PatientNationalID: body.PatientNationalID,
		DoctorID:          body.DoctorID,
		StartTime:         body.StartTime,
		Comment:           body.Comment,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, appointmentView(appt))
}

// GET /appointments/:code
func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	appt, err := h.svc.GetByCode(c.Context(), c.Params("code"))
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appointmentView(appt))
}

// GET /appointments?doctor_id=...&date=YYYY-MM-DD
func (h *AppointmentHandler) ListDay(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Query("doctor_id"))
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	// Parse in the engine timezone so the listed day matches the slot day.
	day, err := time.ParseInLocation("2006-01-02", c.Query("date"), h.sched.Location())
	if err != nil {
		return badRequest(c, "invalid date, use YYYY-MM-DD")
	}

	list, err := h.svc.ListByDoctorDay(c.Context(), doctorID, day)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appointmentViews(list))
}

// PATCH /appointments/:code/reschedule
func (h *AppointmentHandler) Reschedule(c fiber.Ctx) error {
	var body struct {
		StartTime time.Time `json:"start_time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.StartTime.IsZero() {
		return badRequest(c, "start_time is required")
	}

	appt, err := h.svc.Reschedule(c.Context(), c.Params("code"), appointment.RescheduleRequest{
		NewStartTime: body.StartTime,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appointmentView(appt))
}

// PATCH /appointments/:code/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	var body struct {
		Reason string `json:"reason"`
	}
	// An empty body is a valid cancellation without a reason.
	_ = c.Bind().JSON(&body)

	appt, err := h.svc.Cancel(c.Context(), c.Params("code"), appointment.CancelRequest{
		Reason: body.Reason,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appointmentView(appt))
}

// PATCH /appointments/:code/attendance
func (h *AppointmentHandler) RecordAttendance(c fiber.Ctx) error {
	var body struct {
		Status      string `json:"status"`
		ArrivalTime string `json:"arrival_time"`
		Comment     string `json:"comment"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.RecordAttendance(c.Context(), c.Params("code"), appointment.AttendanceRequest{
		Status:      storage.Status(body.Status),
		ArrivalTime: body.ArrivalTime,
		Comment:     body.Comment,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appointmentView(appt))
}
