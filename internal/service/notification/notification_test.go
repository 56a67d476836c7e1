package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francis1918/citamed_backend/internal/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChannelFor(t *testing.T) {
	tests := []struct {
		name  string
		email string
		phone string
		want  storage.Channel
	}{
		{"email wins", "ana@example.com", "0991234567", storage.ChannelEmail},
		{"sms when no email", "", "0991234567", storage.ChannelSMS},
		{"interno when nothing usable", "", "", storage.ChannelInterno},
		{"malformed email falls through", "not-an-email", "0991234567", storage.ChannelSMS},
		{"short phone is not sms", "", "12345", storage.ChannelInterno},
		{"six digits is enough for sms", "", "123456", storage.ChannelSMS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChannelFor(tt.email, tt.phone))
		})
	}
}

func TestAppointmentBookedRecordsBothParties(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStore()
	svc := New(store, discardLogger())

	doctor := storage.Doctor{ID: uuid.New(), FullName: "Dra. Maria Salazar"}
	patient := storage.Patient{
		NationalID: "0926687856",
		FullName:   "Ana Paredes",
		Email:      "ana@example.com",
	}
	appt := storage.Appointment{
		Code:      "CM-AAAAAA",
		DoctorID:  doctor.ID,
		StartTime: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		Status:    storage.StatusConfirmed,
	}

	svc.AppointmentBooked(ctx, appt, patient, doctor)

	toPatient := svc.History(ctx, "ana@example.com")
	require.Len(t, toPatient, 1)
	assert.Equal(t, storage.ChannelEmail, toPatient[0].Channel)
	assert.Contains(t, toPatient[0].Message, "CM-AAAAAA")
	assert.Contains(t, toPatient[0].Message, "2026-03-10 10:00")

	toDoctor := svc.History(ctx, doctor.ID.String())
	require.Len(t, toDoctor, 1)
	assert.Equal(t, storage.ChannelInterno, toDoctor[0].Channel)
	assert.Contains(t, toDoctor[0].Message, "Ana Paredes")
}

func TestPatientRecipientFollowsChannel(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStore()
	svc := New(store, discardLogger())

	doctor := storage.Doctor{ID: uuid.New(), FullName: "Dr. Luis Ortega"}
	appt := storage.Appointment{Code: "CM-BBBBBB", StartTime: time.Now(), Status: storage.StatusConfirmed}

	// No email, usable phone: recorded against the phone over sms.
	svc.AppointmentBooked(ctx, appt, storage.Patient{
		NationalID: "1710034065", FullName: "Jose Vera", Phone: "0991234567",
	}, doctor)
	bySMS := svc.History(ctx, "0991234567")
	require.Len(t, bySMS, 1)
	assert.Equal(t, storage.ChannelSMS, bySMS[0].Channel)

	// No contact details at all: recorded against the national id, interno.
	svc.AppointmentBooked(ctx, appt, storage.Patient{
		NationalID: "2400000002", FullName: "Rosa Mina",
	}, doctor)
	byID := svc.History(ctx, "2400000002")
	require.Len(t, byID, 1)
	assert.Equal(t, storage.ChannelInterno, byID[0].Channel)
}

func TestAttendanceMessages(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStore()
	svc := New(store, discardLogger())

	doctor := storage.Doctor{ID: uuid.New(), FullName: "Dra. Maria Salazar"}
	patient := storage.Patient{NationalID: "0100000009", FullName: "Luz Carrillo"}

	appt := storage.Appointment{Code: "CM-CCCCCC", Status: storage.StatusLate, ArrivalTime: "10:20"}
	svc.AttendanceRecorded(ctx, appt, patient, doctor)

	got := svc.History(ctx, "0100000009")
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "10:20")
}

type failingStore struct {
	*storage.MemStore
}

func (f *failingStore) AppendNotification(context.Context, storage.Notification) error {
	return errors.New("log unavailable")
}

func (f *failingStore) ListNotifications(context.Context, string) ([]storage.Notification, error) {
	return nil, errors.New("log unavailable")
}

func TestRecordingIsBestEffort(t *testing.T) {
	ctx := context.Background()
	svc := New(&failingStore{storage.NewMemStore()}, discardLogger())

	doctor := storage.Doctor{ID: uuid.New()}
	patient := storage.Patient{NationalID: "0926687856"}
	appt := storage.Appointment{Code: "CM-DDDDDD", StartTime: time.Now(), Status: storage.StatusConfirmed}

	// Must not panic or propagate the failure.
	svc.AppointmentBooked(ctx, appt, patient, doctor)

	// History degrades to an empty slice.
	got := svc.History(ctx, "0926687856")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
