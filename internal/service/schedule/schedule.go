package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Francis1918/citamed_backend/config"
	"github.com/Francis1918/citamed_backend/internal/storage"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// OfficeHours is a doctor's daily booking window, [StartHour, EndHour)
// in whole hours of the engine's configured timezone.
type OfficeHours struct {
	DoctorID  uuid.UUID
	StartHour int
	EndHour   int
	Default   bool // true when no schedule is stored and the engine default applied
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// FreeSlots returns the bookable slot start times for a doctor on the
	// day containing `day`, in ascending order. A slot is free when no
	// non-cancelled appointment occupies its exact start time.
	FreeSlots(ctx context.Context, doctorID uuid.UUID, day time.Time) ([]time.Time, error)

	// FreeSlotsExcluding is FreeSlots with one appointment ignored, so a
	// reschedule can move into the slot it currently holds.
	FreeSlotsExcluding(ctx context.Context, doctorID uuid.UUID, day time.Time, excludeCode string) ([]time.Time, error)

	GetOfficeHours(ctx context.Context, doctorID uuid.UUID) (OfficeHours, error)
	SetOfficeHours(ctx context.Context, doctorID uuid.UUID, startHour, endHour int) (OfficeHours, error)

	// SlotDuration is the engine's slot granularity.
	SlotDuration() time.Duration

	// Location is the timezone all daily windows are computed in.
	Location() *time.Location
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type scheduleService struct {
	store  storage.Store
	cfg    config.SchedulerConfig
	loc    *time.Location
	logger *slog.Logger
}

func New(store storage.Store, cfg config.SchedulerConfig, logger *slog.Logger) (Service, error) {
	if cfg.SlotMinutes <= 0 {
		return nil, fmt.Errorf("slot_minutes must be positive, got %d", cfg.SlotMinutes)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	return &scheduleService{
		store:  store,
		cfg:    cfg,
		loc:    loc,
		logger: logger,
	}, nil
}

func (s *scheduleService) SlotDuration() time.Duration {
	return time.Duration(s.cfg.SlotMinutes) * time.Minute
}

func (s *scheduleService) Location() *time.Location {
	return s.loc
}

func (s *scheduleService) FreeSlots(ctx context.Context, doctorID uuid.UUID, day time.Time) ([]time.Time, error) {
	return s.FreeSlotsExcluding(ctx, doctorID, day, "")
}

func (s *scheduleService) FreeSlotsExcluding(ctx context.Context, doctorID uuid.UUID, day time.Time, excludeCode string) ([]time.Time, error) {
	if _, err := s.store.FindDoctor(ctx, doctorID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}

	hours, err := s.GetOfficeHours(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := s.dayBounds(day)
	booked, err := s.store.ListAppointmentsByDoctorDay(ctx, doctorID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("list booked slots: %w", err)
	}

	// Occupied means any non-cancelled appointment, closed ones included.
	occupied := make(map[int64]struct{}, len(booked))
	for _, a := range booked {
		if !a.Status.Occupies() {
			continue
		}
		if excludeCode != "" && a.Code == excludeCode {
			continue
		}
		occupied[a.StartTime.Unix()] = struct{}{}
	}

	windowStart := dayStart.Add(time.Duration(hours.StartHour) * time.Hour)
	windowEnd := dayStart.Add(time.Duration(hours.EndHour) * time.Hour)
	step := s.SlotDuration()

	var free []time.Time
	for t := windowStart; !t.Add(step).After(windowEnd); t = t.Add(step) {
		if _, taken := occupied[t.Unix()]; taken {
			continue
		}
		free = append(free, t)
	}
	return free, nil
}

func (s *scheduleService) GetOfficeHours(ctx context.Context, doctorID uuid.UUID) (OfficeHours, error) {
	sched, err := s.store.GetDoctorSchedule(ctx, doctorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return OfficeHours{
				DoctorID:  doctorID,
				StartHour: s.cfg.DefaultStartHour,
				EndHour:   s.cfg.DefaultEndHour,
				Default:   true,
			}, nil
		}
		return OfficeHours{}, fmt.Errorf("get office hours: %w", err)
	}
	return OfficeHours{
		DoctorID:  sched.DoctorID,
		StartHour: sched.StartHour,
		EndHour:   sched.EndHour,
	}, nil
}

func (s *scheduleService) SetOfficeHours(ctx context.Context, doctorID uuid.UUID, startHour, endHour int) (OfficeHours, error) {
	if _, err := s.store.FindDoctor(ctx, doctorID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return OfficeHours{}, ErrDoctorNotFound
		}
		return OfficeHours{}, fmt.Errorf("find doctor: %w", err)
	}

	sched, err := storage.NewDoctorSchedule(doctorID, startHour, endHour)
	if err != nil {
		return OfficeHours{}, ErrInvalidWindow
	}
	if err := s.store.SetDoctorSchedule(ctx, sched); err != nil {
		return OfficeHours{}, fmt.Errorf("set office hours: %w", err)
	}

	s.logger.Info("office hours updated",
		"doctor_id", doctorID,
		"start_hour", startHour,
		"end_hour", endHour,
	)
	return OfficeHours{DoctorID: doctorID, StartHour: startHour, EndHour: endHour}, nil
}

// dayBounds returns local midnight of the day containing t and the
// following midnight, in the engine timezone.
func (s *scheduleService) dayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(s.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 0, 1)
}
