package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francis1918/citamed_backend/config"
	"github.com/Francis1918/citamed_backend/internal/service/appointment"
	"github.com/Francis1918/citamed_backend/internal/service/notification"
	"github.com/Francis1918/citamed_backend/internal/service/schedule"
	"github.com/Francis1918/citamed_backend/internal/storage"
)

// TestListDayEngineTimezone lists a doctor's day through the HTTP handler
// with a non-UTC engine timezone. The date query must resolve to local
// midnight, not UTC midnight, or the previous local day gets listed.
func TestListDayEngineTimezone(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	schedCfg := config.SchedulerConfig{
		SlotMinutes:       60,
		DefaultStartHour:  9,
		DefaultEndHour:    17,
		CancelNoticeHours: 12,
		Timezone:          "America/Guayaquil",
	}
	codesCfg := config.CodesConfig{AppointmentPrefix: "CM", AppointmentLength: 6}

	sched, err := schedule.New(store, schedCfg, logger)
	require.NoError(t, err)
	svc := appointment.New(store, sched, notification.New(store, logger), schedCfg, codesCfg, logger)

	doctor, err := store.CreateDoctor(ctx, storage.Doctor{FullName: "Dra. Maria Salazar"})
	require.NoError(t, err)

	// 10:00 on 2026-03-10 in Guayaquil is 15:00 UTC.
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, sched.Location())
	_, err = store.InsertAppointment(ctx, storage.Appointment{
		Code: "CM-AAAAAA", PatientID: uuid.New(), DoctorID: doctor.ID,
		StartTime: start, Status: storage.StatusConfirmed,
	})
	require.NoError(t, err)

	app := fiber.New()
	h := NewAppointmentHandler(svc, sched)
	app.Get("/appointments", h.ListDay)

	req := httptest.NewRequest("GET", "/appointments?doctor_id="+doctor.ID.String()+"&date=2026-03-10", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []appointmentResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "CM-AAAAAA", body.Data[0].Code)
}
