package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Francis1918/citamed_backend/internal/storage"
)

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

// Service keeps the append-only notification log. Every lifecycle event
// records one entry for the patient and one for the doctor. Recording is
// best-effort: a failed append is logged and never fails the operation
// that triggered it.
type Service interface {
	AppointmentBooked(ctx context.Context, appt storage.Appointment, patient storage.Patient, doctor storage.Doctor)
	AppointmentRescheduled(ctx context.Context, appt storage.Appointment, previous time.Time, patient storage.Patient, doctor storage.Doctor)
	AppointmentCancelled(ctx context.Context, appt storage.Appointment, patient storage.Patient, doctor storage.Doctor)
	AttendanceRecorded(ctx context.Context, appt storage.Appointment, patient storage.Patient, doctor storage.Doctor)

	// History lists the recorded notifications for a recipient. On a log
	// read failure it degrades to an empty list.
	History(ctx context.Context, recipient string) []storage.Notification
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notificationService struct {
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time
}

func New(store storage.Store, logger *slog.Logger) Service {
	return &notificationService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// ChannelFor picks the delivery channel from the recipient's contact
// details: email wins, then SMS, then the in-app inbox.
func ChannelFor(email, phone string) storage.Channel {
	if strings.Contains(email, "@") {
		return storage.ChannelEmail
	}
	if len(phone) > 5 {
		return storage.ChannelSMS
	}
	return storage.ChannelInterno
}

func (s *notificationService) AppointmentBooked(ctx context.Context, appt storage.Appointment, patient storage.Patient, doctor storage.Doctor) {
	when := appt.StartTime.Format("2006-01-02 15:04")
	s.recordForPatient(ctx, patient,
		fmt.Sprintf("Su cita %s con %s ha sido confirmada para el %s.", appt.Code, doctor.FullName, when))
	s.recordForDoctor(ctx, doctor,
		fmt.Sprintf("Nueva cita %s con el paciente %s para el %s.", appt.Code, patient.FullName, when))
}

func (s *notificationService) AppointmentRescheduled(ctx context.Context, appt storage.Appointment, previous time.Time, patient storage.Patient, doctor storage.Doctor) {
	from := previous.Format("2006-01-02 15:04")
	to := appt.StartTime.Format("2006-01-02 15:04")
	s.recordForPatient(ctx, patient,
		fmt.Sprintf("Su cita %s ha sido reprogramada del %s al %s.", appt.Code, from, to))
	s.recordForDoctor(ctx, doctor,
		fmt.Sprintf("La cita %s con el paciente %s fue reprogramada al %s.", appt.Code, patient.FullName, to))
}

func (s *notificationService) AppointmentCancelled(ctx context.Context, appt storage.Appointment, patient storage.Patient, doctor storage.Doctor) {
	when := appt.StartTime.Format("2006-01-02 15:04")
	s.recordForPatient(ctx, patient,
		fmt.Sprintf("Su cita %s del %s ha sido cancelada.", appt.Code, when))
	s.recordForDoctor(ctx, doctor,
		fmt.Sprintf("La cita %s con el paciente %s del %s fue cancelada.", appt.Code, patient.FullName, when))
}

func (s *notificationService) AttendanceRecorded(ctx context.Context, appt storage.Appointment, patient storage.Patient, doctor storage.Doctor) {
	var text string
	switch appt.Status {
	case storage.StatusAttended:
		text = fmt.Sprintf("Se registro su asistencia a la cita %s.", appt.Code)
	case storage.StatusLate:
		text = fmt.Sprintf("Se registro su llegada tardia a la cita %s (hora de llegada %s).", appt.Code, appt.ArrivalTime)
	case storage.StatusAbsent:
		text = fmt.Sprintf("Se registro su inasistencia a la cita %s.", appt.Code)
	default:
		return
	}
	s.recordForPatient(ctx, patient, text)
	s.recordForDoctor(ctx, doctor,
		fmt.Sprintf("Asistencia registrada para la cita %s: %s.", appt.Code, appt.Status))
}

func (s *notificationService) History(ctx context.Context, recipient string) []storage.Notification {
	list, err := s.store.ListNotifications(ctx, recipient)
	if err != nil {
		s.logger.Warn("notification history read failed", "recipient", recipient, "error", err)
		return []storage.Notification{}
	}
	return list
}

// ---------------------------------------------------------------------------
// Recording
// ---------------------------------------------------------------------------

func (s *notificationService) recordForPatient(ctx context.Context, patient storage.Patient, message string) {
	channel := ChannelFor(patient.Email, patient.Phone)
	recipient := patient.NationalID
	switch channel {
	case storage.ChannelEmail:
		recipient = patient.Email
	case storage.ChannelSMS:
		recipient = patient.Phone
	}
	s.record(ctx, recipient, channel, message)
}

// Doctors are staff, they read their notifications in the system itself.
func (s *notificationService) recordForDoctor(ctx context.Context, doctor storage.Doctor, message string) {
	s.record(ctx, doctor.ID.String(), storage.ChannelInterno, message)
}

func (s *notificationService) record(ctx context.Context, recipient string, channel storage.Channel, message string) {
	err := s.store.AppendNotification(ctx, storage.Notification{
		Recipient: recipient,
		Channel:   channel,
		Message:   message,
		Status:    storage.NotificationSent,
		SentAt:    s.now().UTC(),
	})
	if err != nil {
		s.logger.Warn("notification append failed",
			"recipient", recipient,
			"channel", channel,
			"error", err,
		)
	}
}
