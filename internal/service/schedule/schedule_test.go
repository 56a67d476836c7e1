package schedule

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francis1918/citamed_backend/config"
	"github.com/Francis1918/citamed_backend/internal/storage"
)

func testConfig() config.SchedulerConfig {
	return config.SchedulerConfig{
		SlotMinutes:       60,
		DefaultStartHour:  9,
		DefaultEndHour:    17,
		CancelNoticeHours: 12,
		Timezone:          "UTC",
	}
}

func newTestService(t *testing.T) (Service, *storage.MemStore) {
	t.Helper()
	store := storage.NewMemStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := New(store, testConfig(), logger)
	require.NoError(t, err)
	return svc, store
}

func newTestDoctor(t *testing.T, store *storage.MemStore) uuid.UUID {
	t.Helper()
	d, err := store.CreateDoctor(context.Background(), storage.Doctor{
		FullName:  "Dra. Maria Salazar",
		Specialty: "cardiologia",
		Office:    "consultorio 2",
	})
	require.NoError(t, err)
	return d.ID
}

func TestFreeSlotsDefaultWindow(t *testing.T) {
	svc, store := newTestService(t)
	doctorID := newTestDoctor(t, store)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	slots, err := svc.FreeSlots(context.Background(), doctorID, day)
	require.NoError(t, err)

	// Default window 09:00-17:00 with 60-minute slots: 09..16.
	require.Len(t, slots, 8)
	assert.Equal(t, day.Add(9*time.Hour), slots[0])
	assert.Equal(t, day.Add(16*time.Hour), slots[len(slots)-1])
}

func TestFreeSlotsSubtractsBooked(t *testing.T) {
	svc, store := newTestService(t)
	doctorID := newTestDoctor(t, store)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	_, err := store.InsertAppointment(ctx, storage.Appointment{
		Code: "CM-AAAAAA", PatientID: uuid.New(), DoctorID: doctorID,
		StartTime: day.Add(10 * time.Hour), Status: storage.StatusConfirmed,
	})
	require.NoError(t, err)

	slots, err := svc.FreeSlots(ctx, doctorID, day)
	require.NoError(t, err)
	assert.Len(t, slots, 7)
	assert.NotContains(t, slots, day.Add(10*time.Hour))
}

func TestFreeSlotsIgnoresCancelled(t *testing.T) {
	svc, store := newTestService(t)
	doctorID := newTestDoctor(t, store)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	_, err := store.InsertAppointment(ctx, storage.Appointment{
		Code: "CM-AAAAAA", PatientID: uuid.New(), DoctorID: doctorID,
		StartTime: day.Add(10 * time.Hour), Status: storage.StatusConfirmed,
	})
	require.NoError(t, err)
	cancelled := storage.StatusCancelled
	_, err = store.UpdateAppointment(ctx, "CM-AAAAAA", storage.AppointmentUpdate{Status: &cancelled})
	require.NoError(t, err)

	slots, err := svc.FreeSlots(ctx, doctorID, day)
	require.NoError(t, err)
	assert.Len(t, slots, 8)
	assert.Contains(t, slots, day.Add(10*time.Hour))
}

func TestFreeSlotsClosedStatusStillOccupies(t *testing.T) {
	svc, store := newTestService(t)
	doctorID := newTestDoctor(t, store)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	_, err := store.InsertAppointment(ctx, storage.Appointment{
		Code: "CM-AAAAAA", PatientID: uuid.New(), DoctorID: doctorID,
		StartTime: day.Add(10 * time.Hour), Status: storage.StatusConfirmed,
	})
	require.NoError(t, err)
	attended := storage.StatusAttended
	_, err = store.UpdateAppointment(ctx, "CM-AAAAAA", storage.AppointmentUpdate{Status: &attended})
	require.NoError(t, err)

	// The visit happened; the slot is not bookable again.
	slots, err := svc.FreeSlots(ctx, doctorID, day)
	require.NoError(t, err)
	assert.Len(t, slots, 7)
	assert.NotContains(t, slots, day.Add(10*time.Hour))
}

func TestFreeSlotsComplementOfOccupied(t *testing.T) {
	svc, store := newTestService(t)
	doctorID := newTestDoctor(t, store)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	// One open, one closed, one cancelled appointment in the window.
	for _, a := range []struct {
		code   string
		hour   int
		status storage.Status
	}{
		{"CM-OPENAA", 9, storage.StatusConfirmed},
		{"CM-DONEAA", 11, storage.StatusAttended},
		{"CM-GONEAA", 14, storage.StatusCancelled},
	} {
		_, err := store.InsertAppointment(ctx, storage.Appointment{
			Code: a.code, PatientID: uuid.New(), DoctorID: doctorID,
			StartTime: day.Add(time.Duration(a.hour) * time.Hour), Status: a.status,
		})
		require.NoError(t, err)
	}

	slots, err := svc.FreeSlots(ctx, doctorID, day)
	require.NoError(t, err)

	free := make(map[time.Time]bool, len(slots))
	for _, s := range slots {
		free[s] = true
	}
	booked, err := store.ListAppointmentsByDoctorDay(ctx, doctorID, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	occupied := make(map[time.Time]bool)
	for _, a := range booked {
		if a.Status.Occupies() {
			occupied[a.StartTime] = true
		}
	}

	// Every window slot is exactly one of free or occupied.
	for h := 9; h < 17; h++ {
		slot := day.Add(time.Duration(h) * time.Hour)
		assert.NotEqual(t, free[slot], occupied[slot], "slot %02d:00", h)
	}
	assert.Len(t, slots, 6)
}

func TestFreeSlotsCustomOfficeHours(t *testing.T) {
	svc, store := newTestService(t)
	doctorID := newTestDoctor(t, store)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	_, err := svc.SetOfficeHours(ctx, doctorID, 8, 12)
	require.NoError(t, err)

	slots, err := svc.FreeSlots(ctx, doctorID, day)
	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, day.Add(8*time.Hour), slots[0])
	assert.Equal(t, day.Add(11*time.Hour), slots[3])
}

func TestFreeSlotsExcludingOwnAppointment(t *testing.T) {
	svc, store := newTestService(t)
	doctorID := newTestDoctor(t, store)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	_, err := store.InsertAppointment(ctx, storage.Appointment{
		Code: "CM-AAAAAA", PatientID: uuid.New(), DoctorID: doctorID,
		StartTime: day.Add(10 * time.Hour), Status: storage.StatusConfirmed,
	})
	require.NoError(t, err)

	slots, err := svc.FreeSlotsExcluding(ctx, doctorID, day, "CM-AAAAAA")
	require.NoError(t, err)
	assert.Contains(t, slots, day.Add(10*time.Hour))
}

func TestFreeSlotsDoctorNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.FreeSlots(context.Background(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestSetOfficeHoursInvalidWindow(t *testing.T) {
	svc, store := newTestService(t)
	doctorID := newTestDoctor(t, store)
	ctx := context.Background()

	for _, tc := range [][2]int{{12, 12}, {17, 9}, {-1, 10}, {9, 25}} {
		_, err := svc.SetOfficeHours(ctx, doctorID, tc[0], tc[1])
		assert.ErrorIs(t, err, ErrInvalidWindow, "window %d-%d", tc[0], tc[1])
	}
}

func TestGetOfficeHoursDefaultFlag(t *testing.T) {
	svc, store := newTestService(t)
	doctorID := newTestDoctor(t, store)
	ctx := context.Background()

	hours, err := svc.GetOfficeHours(ctx, doctorID)
	require.NoError(t, err)
	assert.True(t, hours.Default)
	assert.Equal(t, 9, hours.StartHour)
	assert.Equal(t, 17, hours.EndHour)

	_, err = svc.SetOfficeHours(ctx, doctorID, 10, 14)
	require.NoError(t, err)

	hours, err = svc.GetOfficeHours(ctx, doctorID)
	require.NoError(t, err)
	assert.False(t, hours.Default)
	assert.Equal(t, 10, hours.StartHour)
	assert.Equal(t, 14, hours.EndHour)
}
