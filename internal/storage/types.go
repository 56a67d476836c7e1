package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the appointment lifecycle state. Cancelled is terminal;
// attended, absent and late close the attendance sub-flow.
type Status string

const (
	StatusConfirmed   Status = "confirmed"
	StatusRescheduled Status = "rescheduled"
	StatusCancelled   Status = "cancelled"
	StatusAttended    Status = "attended"
	StatusAbsent      Status = "absent"
	StatusLate        Status = "late"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusRescheduled, StatusCancelled,
		StatusAttended, StatusAbsent, StatusLate:
		return true
	}
	return false
}

// Open reports whether the appointment can still be rescheduled or have
// attendance recorded.
func (s Status) Open() bool {
	return s == StatusConfirmed || s == StatusRescheduled
}

// Occupies reports whether the appointment holds its (doctor, start time)
// slot. Only cancellation releases a slot; a recorded attendance keeps it,
// matching the partial unique index WHERE status <> 'cancelled'.
func (s Status) Occupies() bool {
	return s != StatusCancelled
}

// Channel is the audit-log channel a notification was directed to.
type Channel string

const (
	ChannelEmail   Channel = "email"
	ChannelSMS     Channel = "sms"
	ChannelInterno Channel = "interno"
)

// NotificationStatus marks whether the audit row records a delivery attempt
// that succeeded or failed.
type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

type Appointment struct {
	ID          uuid.UUID
	Code        string
	PatientID   uuid.UUID
	DoctorID    uuid.UUID
	StartTime   time.Time
	Office      string
	Status      Status
	Comment     string
	ArrivalTime string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AppointmentUpdate carries the mutable fields of an update; nil means
// "leave unchanged".
type AppointmentUpdate struct {
	StartTime   *time.Time
	Status      *Status
	Comment     *string
	ArrivalTime *string
}

type DoctorSchedule struct {
	DoctorID  uuid.UUID
	StartHour int
	EndHour   int
}

// NewDoctorSchedule validates the working window at construction time.
func NewDoctorSchedule(doctorID uuid.UUID, startHour, endHour int) (DoctorSchedule, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return DoctorSchedule{}, fmt.Errorf("invalid office hours %d-%d: start must be before end within 0-24", startHour, endHour)
	}
	return DoctorSchedule{DoctorID: doctorID, StartHour: startHour, EndHour: endHour}, nil
}

type Notification struct {
	ID          uuid.UUID
	Recipient   string
	Channel     Channel
	Message     string
	Status      NotificationStatus
	ErrorDetail string
	SentAt      time.Time
}

type Patient struct {
	ID         uuid.UUID
	NationalID string
	FullName   string
	Email      string
	Phone      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Doctor struct {
	ID        uuid.UUID
	FullName  string
	Specialty string
	Office    string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
