package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Francis1918/citamed_backend/internal/service/registry"
	"github.com/Francis1918/citamed_backend/internal/service/schedule"
	"github.com/Francis1918/citamed_backend/internal/storage"
)

type DoctorHandler struct {
	reg   registry.Service
	sched schedule.Service
}

func NewDoctorHandler(reg registry.Service, sched schedule.Service) *DoctorHandler {
	return &DoctorHandler{reg: reg, sched: sched}
}

type doctorResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Specialty string    `json:"specialty,omitempty"`
	Office    string    `json:"office,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func doctorView(d storage.Doctor) doctorResponse {
	return doctorResponse{
		ID:        d.ID,
		FullName:  d.FullName,
		Specialty: d.Specialty,
		Office:    d.Office,
		Email:     d.Email,
		CreatedAt: d.CreatedAt,
	}
}

type officeHoursResponse struct {
	DoctorID  uuid.UUID `json:"doctor_id"`
	StartHour int       `json:"start_hour"`
	EndHour   int       `json:"end_hour"`
	Default   bool      `json:"default"`
}

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, schedule.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, schedule.ErrInvalidWindow):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func doctorIDParam(c fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// POST /doctors
func (h *DoctorHandler) Create(c fiber.Ctx) error {
	var body struct {
		FullName  string `json:"full_name"`
		Specialty string `json:"specialty"`
		Office    string `json:"office"`
		Email     string `json:"email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	doctor, err := h.reg.CreateDoctor(c.Context(), registry.CreateDoctorRequest{
		FullName:  body.FullName,
		Specialty: body.Specialty,
		Office:    body.Office,
		Email:     body.Email,
	})
	if err != nil {
		return mapRegistryError(c, err)
	}
	return created(c, doctorView(doctor))
}

// GET /doctors/:id
func (h *DoctorHandler) Get(c fiber.Ctx) error {
	id, err := doctorIDParam(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	doctor, err := h.reg.GetDoctor(c.Context(), id)
	if err != nil {
		return mapRegistryError(c, err)
	}
	return ok(c, doctorView(doctor))
}

// GET /doctors/:id/slots?date=YYYY-MM-DD
func (h *DoctorHandler) ListSlots(c fiber.Ctx) error {
	id, err := doctorIDParam(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	day, err := time.ParseInLocation("2006-01-02", c.Query("date"), h.sched.Location())
	if err != nil {
		return badRequest(c, "invalid date, use YYYY-MM-DD")
	}

	slots, err := h.sched.FreeSlots(c.Context(), id, day)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, slots)
}

// GET /doctors/:id/schedule
func (h *DoctorHandler) GetSchedule(c fiber.Ctx) error {
	id, err := doctorIDParam(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	hours, err := h.sched.GetOfficeHours(c.Context(), id)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, officeHoursResponse(hours))
}

// PUT /doctors/:id/schedule
func (h *DoctorHandler) PutSchedule(c fiber.Ctx) error {
	id, err := doctorIDParam(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		StartHour int `json:"start_hour"`
		EndHour   int `json:"end_hour"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	hours, err := h.sched.SetOfficeHours(c.Context(), id, body.StartHour, body.EndHour)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, officeHoursResponse(hours))
}
