package appointment

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francis1918/citamed_backend/config"
	"github.com/Francis1918/citamed_backend/internal/service/notification"
	"github.com/Francis1918/citamed_backend/internal/service/schedule"
	"github.com/Francis1918/citamed_backend/internal/storage"
)

const (
	anaID  = "0926687856"
	joseID = "1710034065"
)

type fixture struct {
	svc      Service
	store    *storage.MemStore
	notifier notification.Service
	doctorID uuid.UUID
	now      time.Time
}

// newFixture wires the service against the in-memory store with a frozen
// clock and one registered doctor and two patients.
func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	schedCfg := config.SchedulerConfig{
		SlotMinutes:       60,
		DefaultStartHour:  9,
		DefaultEndHour:    17,
		CancelNoticeHours: 12,
		Timezone:          "UTC",
	}
	codesCfg := config.CodesConfig{AppointmentPrefix: "CM", AppointmentLength: 6}

	sched, err := schedule.New(store, schedCfg, logger)
	require.NoError(t, err)
	notifier := notification.New(store, logger)
	svc := NewWithClock(store, sched, notifier, schedCfg, codesCfg, logger, func() time.Time { return now })

	doctor, err := store.CreateDoctor(ctx, storage.Doctor{
		FullName:  "Dra. Maria Salazar",
		Specialty: "cardiologia",
		Office:    "consultorio 2",
		Email:     "msalazar@clinica.ec",
	})
	require.NoError(t, err)

	_, err = store.CreatePatient(ctx, storage.Patient{
		NationalID: anaID, FullName: "Ana Paredes", Email: "ana@example.com",
	})
	require.NoError(t, err)
	_, err = store.CreatePatient(ctx, storage.Patient{
		NationalID: joseID, FullName: "Jose Vera", Phone: "0991234567",
	})
	require.NoError(t, err)

	return &fixture{svc: svc, store: store, notifier: notifier, doctorID: doctor.ID, now: now}
}

var codePattern = regexp.MustCompile(`^CM-[A-Z0-9]{6}$`)

func TestBook(t *testing.T) {
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	appt, err := f.svc.Book(ctx, BookRequest{
		PatientNationalID: anaID,
		DoctorID:          f.doctorID,
		StartTime:         start,
		Comment:           "control anual",
	})
	require.NoError(t, err)

	assert.Regexp(t, codePattern, appt.Code)
	assert.Equal(t, storage.StatusConfirmed, appt.Status)
	assert.Equal(t, start, appt.StartTime)
	assert.Equal(t, "consultorio 2", appt.Office)

	// The booking comment is persisted, not just echoed.
	stored, err := f.store.FindAppointmentByCode(ctx, appt.Code)
	require.NoError(t, err)
	assert.Equal(t, "control anual", stored.Comment)

	// Both parties got a log entry.
	assert.Len(t, f.notifier.History(ctx, "ana@example.com"), 1)
	assert.Len(t, f.notifier.History(ctx, f.doctorID.String()), 1)
}

func TestBookValidation(t *testing.T) {
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	_, err := f.svc.Book(ctx, BookRequest{
		PatientNationalID: "0926687855", // bad check digit
		DoctorID:          f.doctorID,
		StartTime:         start,
	})
	assert.ErrorIs(t, err, ErrInvalidPatientID)

	_, err = f.svc.Book(ctx, BookRequest{
		PatientNationalID: "2400000002", // valid cedula, not registered
		DoctorID:          f.doctorID,
		StartTime:         start,
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = f.svc.Book(ctx, BookRequest{
		PatientNationalID: anaID,
		DoctorID:          uuid.New(),
		StartTime:         start,
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestBookSlotConflict(t *testing.T) {
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	_, err := f.svc.Book(ctx, BookRequest{
		PatientNationalID: anaID, DoctorID: f.doctorID, StartTime: start,
	})
	require.NoError(t, err)

	_, err = f.svc.Book(ctx, BookRequest{
		PatientNationalID: joseID, DoctorID: f.doctorID, StartTime: start,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestBookOutsideOfficeHours(t *testing.T) {
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()

	// 18:00 is past the default 09-17 window.
	_, err := f.svc.Book(ctx, BookRequest{
		PatientNationalID: anaID,
		DoctorID:          f.doctorID,
		StartTime:         time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// So is a time that is not slot-aligned.
	_, err = f.svc.Book(ctx, BookRequest{
		PatientNationalID: anaID,
		DoctorID:          f.doctorID,
		StartTime:         time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestReschedule(t *testing.T) {
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()

	t10 := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	t11 := t10.Add(time.Hour)

	appt, err := f.svc.Book(ctx, BookRequest{
		PatientNationalID: anaID, DoctorID: f.doctorID, StartTime: t10,
	})
	require.NoError(t, err)

	updated, err := f.svc.Reschedule(ctx, appt.Code, RescheduleRequest{NewStartTime: t11})
	require.NoError(t, err)
	assert.Equal(t, storage.StatusRescheduled, updated.Status)
	assert.Equal(t, t11, updated.StartTime)

	// The vacated slot can be taken by someone else.
	_, err = f.svc.Book(ctx, BookRequest{
		PatientNationalID: joseID, DoctorID: f.doctorID, StartTime: t10,
	})
	assert.NoError(t, err)
}

func TestRescheduleIntoOwnSlot(t *testing.T) {
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()
	t10 := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	appt, err := f.svc.Book(ctx, BookRequest{
		PatientNationalID: anaID, DoctorID: f.doctorID, StartTime: t10,
	})
	require.NoError(t, err)

	// Re-confirming the same time is not a conflict with itself.
	updated, err := f.svc.Reschedule(ctx, appt.Code, RescheduleRequest{NewStartTime: t10})
	require.NoError(t, err)
	assert.Equal(t, t10, updated.StartTime)
}

func TestRescheduleAdvanceNotice(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{"well before the window", start.Add(-48 * time.Hour), nil},
		{"exactly at the notice boundary", start.Add(-12 * time.Hour), nil},
		{"inside the notice window", start.Add(-11 * time.Hour), ErrTooLate},
		{"after the appointment started", start.Add(time.Hour), ErrTooLate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.now)
			ctx := context.Background()

			// Seed directly so booking is not itself subject to the clock.
			_, err := f.store.InsertAppointment(ctx, storage.Appointment{
				Code: "CM-SEEDED", PatientID: uuid.New(), DoctorID: f.doctorID,
				StartTime: start, Status: storage.StatusConfirmed,
			})
			require.NoError(t, err)

			_, err = f.svc.Reschedule(ctx, "CM-SEEDED", RescheduleRequest{
				NewStartTime: start.Add(time.Hour),
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()
	t10 := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	appt, err := f.svc.Book(ctx, BookRequest{
		PatientNationalID: anaID, DoctorID: f.doctorID, StartTime: t10,
	})
	require.NoError(t, err)

	cancelled, err := f.svc.Cancel(ctx, appt.Code, CancelRequest{Reason: "viaje imprevisto"})
	require.NoError(t, err)
	assert.Equal(t, storage.StatusCancelled, cancelled.Status)
	assert.Equal(t, "viaje imprevisto", cancelled.Comment)

	// Cancelling twice is rejected.
	_, err = f.svc.Cancel(ctx, appt.Code, CancelRequest{})
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	// The slot is free again.
	_, err = f.svc.Book(ctx, BookRequest{
		PatientNationalID: joseID, DoctorID: f.doctorID, StartTime: t10,
	})
	assert.NoError(t, err)
}

func TestCancelTooLate(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	f := newFixture(t, start.Add(-2*time.Hour))
	ctx := context.Background()

	_, err := f.store.InsertAppointment(ctx, storage.Appointment{
		Code: "CM-SEEDED", PatientID: uuid.New(), DoctorID: f.doctorID,
		StartTime: start, Status: storage.StatusConfirmed,
	})
	require.NoError(t, err)

	_, err = f.svc.Cancel(ctx, "CM-SEEDED", CancelRequest{})
	assert.ErrorIs(t, err, ErrTooLate)
}

func TestRecordAttendance(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	seed := func(t *testing.T, f *fixture) {
		t.Helper()
		_, err := f.store.InsertAppointment(context.Background(), storage.Appointment{
			Code: "CM-SEEDED", PatientID: uuid.New(), DoctorID: f.doctorID,
			StartTime: start, Status: storage.StatusConfirmed,
		})
		require.NoError(t, err)
	}

	t.Run("attended", func(t *testing.T) {
		f := newFixture(t, start.Add(5*time.Minute))
		seed(t, f)
		appt, err := f.svc.RecordAttendance(context.Background(), "CM-SEEDED", AttendanceRequest{
			Status: storage.StatusAttended,
		})
		require.NoError(t, err)
		assert.Equal(t, storage.StatusAttended, appt.Status)
	})

	t.Run("late with arrival time", func(t *testing.T) {
		f := newFixture(t, start.Add(25*time.Minute))
		seed(t, f)
		appt, err := f.svc.RecordAttendance(context.Background(), "CM-SEEDED", AttendanceRequest{
			Status:      storage.StatusLate,
			ArrivalTime: "10:25",
		})
		require.NoError(t, err)
		assert.Equal(t, storage.StatusLate, appt.Status)
		assert.Equal(t, "10:25", appt.ArrivalTime)
	})

	t.Run("malformed arrival time", func(t *testing.T) {
		f := newFixture(t, start.Add(25*time.Minute))
		seed(t, f)
		_, err := f.svc.RecordAttendance(context.Background(), "CM-SEEDED", AttendanceRequest{
			Status:      storage.StatusLate,
			ArrivalTime: "25:99",
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("absence may be recorded after the fact", func(t *testing.T) {
		f := newFixture(t, start.AddDate(0, 0, 1))
		seed(t, f)
		appt, err := f.svc.RecordAttendance(context.Background(), "CM-SEEDED", AttendanceRequest{
			Status:  storage.StatusAbsent,
			Comment: "no acudio a la consulta",
		})
		require.NoError(t, err)
		assert.Equal(t, storage.StatusAbsent, appt.Status)
		assert.Equal(t, "no acudio a la consulta", appt.Comment)
	})

	t.Run("status outside attendance set", func(t *testing.T) {
		f := newFixture(t, start.Add(5*time.Minute))
		seed(t, f)
		_, err := f.svc.RecordAttendance(context.Background(), "CM-SEEDED", AttendanceRequest{
			Status: storage.StatusCancelled,
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("wrong day", func(t *testing.T) {
		f := newFixture(t, start.AddDate(0, 0, 1))
		seed(t, f)
		_, err := f.svc.RecordAttendance(context.Background(), "CM-SEEDED", AttendanceRequest{
			Status: storage.StatusAttended,
		})
		assert.ErrorIs(t, err, ErrNotToday)
	})

	t.Run("already closed", func(t *testing.T) {
		f := newFixture(t, start.Add(5*time.Minute))
		seed(t, f)
		_, err := f.svc.RecordAttendance(context.Background(), "CM-SEEDED", AttendanceRequest{
			Status: storage.StatusAttended,
		})
		require.NoError(t, err)
		_, err = f.svc.RecordAttendance(context.Background(), "CM-SEEDED", AttendanceRequest{
			Status: storage.StatusAbsent,
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestQueries(t *testing.T) {
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	var codes []string
	for _, h := range []int{9, 11, 14} {
		appt, err := f.svc.Book(ctx, BookRequest{
			PatientNationalID: anaID, DoctorID: f.doctorID,
			StartTime: day.Add(time.Duration(h) * time.Hour),
		})
		require.NoError(t, err)
		codes = append(codes, appt.Code)
	}

	got, err := f.svc.GetByCode(ctx, codes[0])
	require.NoError(t, err)
	assert.Equal(t, codes[0], got.Code)

	// Lookup is case-insensitive on the code.
	got, err = f.svc.GetByCode(ctx, "  "+strings.ToLower(codes[1])+" ")
	require.NoError(t, err)
	assert.Equal(t, codes[1], got.Code)

	_, err = f.svc.GetByCode(ctx, "CM-ZZZZZZ")
	assert.ErrorIs(t, err, ErrNotFound)

	byDay, err := f.svc.ListByDoctorDay(ctx, f.doctorID, day.Add(13*time.Hour))
	require.NoError(t, err)
	assert.Len(t, byDay, 3)

	byPatient, err := f.svc.ListByPatient(ctx, anaID)
	require.NoError(t, err)
	assert.Len(t, byPatient, 3)

	_, err = f.svc.ListByPatient(ctx, "2400000002")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

// Full booking walk-through: a 9-11 window yields two slots, the second
// booking of the same slot loses, a cancellation inside the notice window
// is refused, and a timely cancellation frees the slot again.
func TestBookingScenario(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	schedCfg := config.SchedulerConfig{
		SlotMinutes:       60,
		DefaultStartHour:  9,
		DefaultEndHour:    17,
		CancelNoticeHours: 12,
		Timezone:          "UTC",
	}
	codesCfg := config.CodesConfig{AppointmentPrefix: "CM", AppointmentLength: 6}

	sched, err := schedule.New(store, schedCfg, logger)
	require.NoError(t, err)
	notifier := notification.New(store, logger)

	doctor, err := store.CreateDoctor(ctx, storage.Doctor{FullName: "Dr. Luis Ortega"})
	require.NoError(t, err)
	_, err = store.CreatePatient(ctx, storage.Patient{NationalID: anaID, FullName: "Ana Paredes"})
	require.NoError(t, err)
	_, err = store.CreatePatient(ctx, storage.Patient{NationalID: joseID, FullName: "Jose Vera"})
	require.NoError(t, err)

	_, err = sched.SetOfficeHours(ctx, doctor.ID, 9, 11)
	require.NoError(t, err)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	slot10 := day.Add(10 * time.Hour)

	slots, err := sched.FreeSlots(ctx, doctor.ID, day)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day.Add(9 * time.Hour), slot10}, slots)

	at := func(now time.Time) Service {
		return NewWithClock(store, sched, notifier, schedCfg, codesCfg, logger, func() time.Time { return now })
	}

	dayBefore := at(slot10.Add(-24 * time.Hour))
	appt, err := dayBefore.Book(ctx, BookRequest{
		PatientNationalID: anaID, DoctorID: doctor.ID, StartTime: slot10,
	})
	require.NoError(t, err)
	assert.Equal(t, storage.StatusConfirmed, appt.Status)
	assert.Regexp(t, codePattern, appt.Code)

	_, err = dayBefore.Book(ctx, BookRequest{
		PatientNationalID: joseID, DoctorID: doctor.ID, StartTime: slot10,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// One hour before the visit the policy gate refuses the cancellation.
	_, err = at(slot10.Add(-time.Hour)).Cancel(ctx, appt.Code, CancelRequest{})
	assert.ErrorIs(t, err, ErrTooLate)

	// Thirteen hours before, it goes through and the slot reopens.
	cancelled, err := at(slot10.Add(-13*time.Hour)).Cancel(ctx, appt.Code, CancelRequest{})
	require.NoError(t, err)
	assert.Equal(t, storage.StatusCancelled, cancelled.Status)

	slots, err = sched.FreeSlots(ctx, doctor.ID, day)
	require.NoError(t, err)
	assert.Contains(t, slots, slot10)

	// The record survives cancellation.
	kept, err := dayBefore.GetByCode(ctx, appt.Code)
	require.NoError(t, err)
	assert.Equal(t, storage.StatusCancelled, kept.Status)
}
