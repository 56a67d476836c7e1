package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Francis1918/citamed_backend/internal/service/appointment"
	"github.com/Francis1918/citamed_backend/internal/service/registry"
	"github.com/Francis1918/citamed_backend/internal/storage"
)

type PatientHandler struct {
	reg   registry.Service
	appts appointment.Service
}

func NewPatientHandler(reg registry.Service, appts appointment.Service) *PatientHandler {
	return &PatientHandler{reg: reg, appts: appts}
}

type patientResponse struct {
	ID         uuid.UUID `json:"id"`
	NationalID string    `json:"national_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func patientView(p storage.Patient) patientResponse {
	return patientResponse{
		ID:         p.ID,
		NationalID: p.NationalID,
		FullName:   p.FullName,
		Email:      p.Email,
		Phone:      p.Phone,
		CreatedAt:  p.CreatedAt,
	}
}

func mapRegistryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, registry.ErrInvalidNationalID),
		errors.Is(err, registry.ErrNameRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, registry.ErrPatientExists):
		return conflict(c, err.Error())
	case errors.Is(err, registry.ErrPatientNotFound),
		errors.Is(err, registry.ErrDoctorNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		NationalID string `json:"national_id"`
		FullName   string `json:"full_name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patient, err := h.reg.CreatePatient(c.Context(), registry.CreatePatientRequest{
		NationalID: body.NationalID,
		FullName:   body.FullName,
		Email:      body.Email,
		Phone:      body.Phone,
	})
	if err != nil {
		return mapRegistryError(c, err)
	}
	return created(c, patientView(patient))
}

// GET /patients/:id  (id is the national id)
func (h *PatientHandler) Get(c fiber.Ctx) error {
	patient, err := h.reg.GetPatient(c.Context(), c.Params("id"))
	if err != nil {
		return mapRegistryError(c, err)
	}
	return ok(c, patientView(patient))
}

// GET /patients/:id/appointments
func (h *PatientHandler) ListAppointments(c fiber.Ctx) error {
	list, err := h.appts.ListByPatient(c.Context(), c.Params("id"))
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appointmentViews(list))
}
