// Package storage defines the narrow persistence boundary the scheduling
// engine consumes, plus its adapters: an ent/PostgreSQL implementation for
// production and a mutex-guarded in-memory implementation for tests.
//
// The store, not the engine, is the arbiter of booking races: implementations
// must guarantee at most one non-cancelled appointment per (doctor, slot)
// and report the loser with ErrSlotTaken.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Store interface {
	// Registry lookups and creation.
	CreatePatient(ctx context.Context, p Patient) (Patient, error)
	FindPatient(ctx context.Context, id uuid.UUID) (Patient, error)
	FindPatientByNationalID(ctx context.Context, nationalID string) (Patient, error)
	CreateDoctor(ctx context.Context, d Doctor) (Doctor, error)
	FindDoctor(ctx context.Context, id uuid.UUID) (Doctor, error)

	// Office-hours configuration. GetDoctorSchedule returns ErrNotFound
	// for doctors without a configured window; SetDoctorSchedule upserts.
	GetDoctorSchedule(ctx context.Context, doctorID uuid.UUID) (DoctorSchedule, error)
	SetDoctorSchedule(ctx context.Context, s DoctorSchedule) error

	// Appointments. InsertAppointment and UpdateAppointment return
	// ErrSlotTaken when the target slot is held by another non-cancelled
	// appointment.
	InsertAppointment(ctx context.Context, a Appointment) (Appointment, error)
	UpdateAppointment(ctx context.Context, code string, upd AppointmentUpdate) (Appointment, error)
	FindAppointmentByCode(ctx context.Context, code string) (Appointment, error)
	ListAppointmentsByDoctorDay(ctx context.Context, doctorID uuid.UUID, dayStart, dayEnd time.Time) ([]Appointment, error)
	ListAppointmentsByPatient(ctx context.Context, patientID uuid.UUID) ([]Appointment, error)

	// Append-only notification log.
	AppendNotification(ctx context.Context, n Notification) error
	ListNotifications(ctx context.Context, recipient string) ([]Notification, error)
}
