package appointment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Francis1918/citamed_backend/config"
	"github.com/Francis1918/citamed_backend/internal/service/notification"
	"github.com/Francis1918/citamed_backend/internal/service/schedule"
	"github.com/Francis1918/citamed_backend/internal/storage"
	"github.com/Francis1918/citamed_backend/pkg/cedula"
	"github.com/Francis1918/citamed_backend/pkg/codes"
)

// codeRetries bounds the generate-insert loop on code collisions.
const codeRetries = 5

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type BookRequest struct {
	PatientNationalID string
	DoctorID          uuid.UUID
	StartTime         time.Time
	Comment           string
}

type RescheduleRequest struct {
	NewStartTime time.Time
}

type CancelRequest struct {
	Reason string
}

type AttendanceRequest struct {
	Status      storage.Status // attended | absent | late
	ArrivalTime string         // HH:MM, optional
	Comment     string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Book(ctx context.Context, req BookRequest) (storage.Appointment, error)
	Reschedule(ctx context.Context, code string, req RescheduleRequest) (storage.Appointment, error)
	Cancel(ctx context.Context, code string, req CancelRequest) (storage.Appointment, error)
	RecordAttendance(ctx context.Context, code string, req AttendanceRequest) (storage.Appointment, error)

	GetByCode(ctx context.Context, code string) (storage.Appointment, error)
	ListByDoctorDay(ctx context.Context, doctorID uuid.UUID, day time.Time) ([]storage.Appointment, error)
	ListByPatient(ctx context.Context, nationalID string) ([]storage.Appointment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	store    storage.Store
	sched    schedule.Service
	notifier notification.Service
	codesCfg codes.Config
	notice   time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

func New(
	store storage.Store,
	sched schedule.Service,
	notifier notification.Service,
	schedCfg config.SchedulerConfig,
	codesCfg config.CodesConfig,
	logger *slog.Logger,
) Service {
	return NewWithClock(store, sched, notifier, schedCfg, codesCfg, logger, time.Now)
}

// NewWithClock injects the time source so advance-notice policy can be
// tested against a fixed clock.
func NewWithClock(
	store storage.Store,
	sched schedule.Service,
	notifier notification.Service,
	schedCfg config.SchedulerConfig,
	codesCfg config.CodesConfig,
	logger *slog.Logger,
	now func() time.Time,
) Service {
	return &appointmentService{
		store:    store,
		sched:    sched,
		notifier: notifier,
		codesCfg: codes.Config{
			Prefix: codesCfg.AppointmentPrefix,
			Length: codesCfg.AppointmentLength,
		},
		notice: time.Duration(schedCfg.CancelNoticeHours) * time.Hour,
		logger: logger,
		now:    now,
	}
}

// ---------------------------------------------------------------------------
// Booking
// ---------------------------------------------------------------------------

func (s *appointmentService) Book(ctx context.Context, req BookRequest) (storage.Appointment, error) {
	if err := cedula.Validate(req.PatientNationalID); err != nil {
		return storage.Appointment{}, fmt.Errorf("%w: %w", ErrInvalidPatientID, err)
	}

	patient, err := s.store.FindPatientByNationalID(ctx, req.PatientNationalID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Appointment{}, ErrPatientNotFound
		}
		return storage.Appointment{}, fmt.Errorf("find patient: %w", err)
	}

	doctor, err := s.store.FindDoctor(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Appointment{}, ErrDoctorNotFound
		}
		return storage.Appointment{}, fmt.Errorf("find doctor: %w", err)
	}

	if err := s.checkSlotAvailable(ctx, req.DoctorID, req.StartTime, ""); err != nil {
		return storage.Appointment{}, err
	}

	appt := storage.Appointment{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		StartTime: req.StartTime.UTC(),
		Office:    doctor.Office,
		Status:    storage.StatusConfirmed,
		Comment:   req.Comment,
	}

	created, err := s.insertWithFreshCode(ctx, appt)
	if err != nil {
		return storage.Appointment{}, err
	}

	s.logger.Info("appointment booked",
		"code", created.Code,
		"doctor_id", created.DoctorID,
		"start_time", created.StartTime,
	)
	s.notifier.AppointmentBooked(ctx, created, patient, doctor)
	return created, nil
}

// insertWithFreshCode generates a confirmation code and inserts, retrying
// only on code collisions. A lost slot race surfaces as ErrSlotTaken.
func (s *appointmentService) insertWithFreshCode(ctx context.Context, appt storage.Appointment) (storage.Appointment, error) {
	for i := 0; i < codeRetries; i++ {
		code, err := codes.NewAppointmentCode(s.codesCfg)
		if err != nil {
			return storage.Appointment{}, fmt.Errorf("generate code: %w", err)
		}
		appt.Code = code

		created, err := s.store.InsertAppointment(ctx, appt)
		switch {
		case err == nil:
			return created, nil
		case errors.Is(err, storage.ErrSlotTaken):
			return storage.Appointment{}, ErrSlotTaken
		case errors.Is(err, storage.ErrDuplicate):
			continue
		default:
			return storage.Appointment{}, fmt.Errorf("insert appointment: %w", err)
		}
	}
	return storage.Appointment{}, fmt.Errorf("generate code: exhausted %d attempts", codeRetries)
}

// ---------------------------------------------------------------------------
// Reschedule and cancel
// ---------------------------------------------------------------------------

func (s *appointmentService) Reschedule(ctx context.Context, code string, req RescheduleRequest) (storage.Appointment, error) {
	appt, err := s.GetByCode(ctx, code)
	if err != nil {
		return storage.Appointment{}, err
	}
	if appt.Status == storage.StatusCancelled {
		return storage.Appointment{}, ErrAlreadyCancelled
	}
	if err := s.checkNotice(appt); err != nil {
		return storage.Appointment{}, err
	}
	if err := s.checkSlotAvailable(ctx, appt.DoctorID, req.NewStartTime, code); err != nil {
		return storage.Appointment{}, err
	}

	previous := appt.StartTime
	newStart := req.NewStartTime.UTC()
	status := storage.StatusRescheduled
	updated, err := s.store.UpdateAppointment(ctx, code, storage.AppointmentUpdate{
		StartTime: &newStart,
		Status:    &status,
	})
	if err != nil {
		if errors.Is(err, storage.ErrSlotTaken) {
			return storage.Appointment{}, ErrSlotTaken
		}
		return storage.Appointment{}, fmt.Errorf("reschedule appointment: %w", err)
	}

	s.logger.Info("appointment rescheduled",
		"code", code,
		"from", previous,
		"to", updated.StartTime,
	)
	s.notifyParties(ctx, updated, func(patient storage.Patient, doctor storage.Doctor) {
		s.notifier.AppointmentRescheduled(ctx, updated, previous, patient, doctor)
	})
	return updated, nil
}

func (s *appointmentService) Cancel(ctx context.Context, code string, req CancelRequest) (storage.Appointment, error) {
	appt, err := s.GetByCode(ctx, code)
	if err != nil {
		return storage.Appointment{}, err
	}
	if appt.Status == storage.StatusCancelled {
		return storage.Appointment{}, ErrAlreadyCancelled
	}
	if err := s.checkNotice(appt); err != nil {
		return storage.Appointment{}, err
	}

	status := storage.StatusCancelled
	upd := storage.AppointmentUpdate{Status: &status}
	if req.Reason != "" {
		upd.Comment = &req.Reason
	}
	updated, err := s.store.UpdateAppointment(ctx, code, upd)
	if err != nil {
		return storage.Appointment{}, fmt.Errorf("cancel appointment: %w", err)
	}

	s.logger.Info("appointment cancelled", "code", code, "reason", req.Reason)
	s.notifyParties(ctx, updated, func(patient storage.Patient, doctor storage.Doctor) {
		s.notifier.AppointmentCancelled(ctx, updated, patient, doctor)
	})
	return updated, nil
}

// checkNotice enforces the advance-notice policy: no changes inside the
// notice window before the appointment, and none after it started.
func (s *appointmentService) checkNotice(appt storage.Appointment) error {
	if s.now().After(appt.StartTime.Add(-s.notice)) {
		return ErrTooLate
	}
	return nil
}

// ---------------------------------------------------------------------------
// Attendance
// ---------------------------------------------------------------------------

func (s *appointmentService) RecordAttendance(ctx context.Context, code string, req AttendanceRequest) (storage.Appointment, error) {
	switch req.Status {
	case storage.StatusAttended, storage.StatusAbsent, storage.StatusLate:
	default:
		return storage.Appointment{}, ErrInvalidStatus
	}
	if req.ArrivalTime != "" && !validArrivalTime(req.ArrivalTime) {
		return storage.Appointment{}, ErrInvalidStatus
	}

	appt, err := s.GetByCode(ctx, code)
	if err != nil {
		return storage.Appointment{}, err
	}
	if !appt.Status.Open() {
		return storage.Appointment{}, ErrInvalidStatus
	}
	// Presence can only be confirmed on the day of the visit; absences
	// and late arrivals may be recorded after the fact.
	if req.Status == storage.StatusAttended && !s.sameDay(appt.StartTime, s.now()) {
		return storage.Appointment{}, ErrNotToday
	}

	upd := storage.AppointmentUpdate{Status: &req.Status}
	if req.ArrivalTime != "" {
		upd.ArrivalTime = &req.ArrivalTime
	}
	if req.Comment != "" {
		upd.Comment = &req.Comment
	}
	updated, err := s.store.UpdateAppointment(ctx, code, upd)
	if err != nil {
		return storage.Appointment{}, fmt.Errorf("record attendance: %w", err)
	}

	s.logger.Info("attendance recorded", "code", code, "status", req.Status)
	s.notifyParties(ctx, updated, func(patient storage.Patient, doctor storage.Doctor) {
		s.notifier.AttendanceRecorded(ctx, updated, patient, doctor)
	})
	return updated, nil
}

func validArrivalTime(v string) bool {
	_, err := time.Parse("15:04", v)
	return err == nil
}

func (s *appointmentService) sameDay(a, b time.Time) bool {
	loc := s.sched.Location()
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func (s *appointmentService) GetByCode(ctx context.Context, code string) (storage.Appointment, error) {
	appt, err := s.store.FindAppointmentByCode(ctx, codes.NormalizeCode(code))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Appointment{}, ErrNotFound
		}
		return storage.Appointment{}, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) ListByDoctorDay(ctx context.Context, doctorID uuid.UUID, day time.Time) ([]storage.Appointment, error) {
	if _, err := s.store.FindDoctor(ctx, doctorID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}

	loc := s.sched.Location()
	local := day.In(loc)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return s.store.ListAppointmentsByDoctorDay(ctx, doctorID, dayStart, dayStart.AddDate(0, 0, 1))
}

func (s *appointmentService) ListByPatient(ctx context.Context, nationalID string) ([]storage.Appointment, error) {
	patient, err := s.store.FindPatientByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return s.store.ListAppointmentsByPatient(ctx, patient.ID)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// checkSlotAvailable verifies the requested time is one of the doctor's
// free slots for that day. The store's uniqueness rule still arbitrates
// concurrent writers, this is the fast synchronous check.
func (s *appointmentService) checkSlotAvailable(ctx context.Context, doctorID uuid.UUID, start time.Time, excludeCode string) error {
	free, err := s.sched.FreeSlotsExcluding(ctx, doctorID, start, excludeCode)
	if err != nil {
		if errors.Is(err, schedule.ErrDoctorNotFound) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("compute free slots: %w", err)
	}
	for _, slot := range free {
		if slot.Equal(start) {
			return nil
		}
	}
	return ErrSlotTaken
}

// notifyParties loads both parties and hands them to the recorder. Lookup
// failures only cost the notification, never the operation.
func (s *appointmentService) notifyParties(ctx context.Context, appt storage.Appointment, record func(storage.Patient, storage.Doctor)) {
	patient, err := s.store.FindPatient(ctx, appt.PatientID)
	if err != nil {
		s.logger.Warn("notify: patient lookup failed", "code", appt.Code, "error", err)
		return
	}
	doctor, err := s.store.FindDoctor(ctx, appt.DoctorID)
	if err != nil {
		s.logger.Warn("notify: doctor lookup failed", "code", appt.Code, "error", err)
		return
	}
	record(patient, doctor)
}
