package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Francis1918/citamed_backend/internal/repo"
	entappt "github.com/Francis1918/citamed_backend/internal/repo/appointment"
	entsched "github.com/Francis1918/citamed_backend/internal/repo/doctorschedule"
	entnotif "github.com/Francis1918/citamed_backend/internal/repo/notification"
	entpatient "github.com/Francis1918/citamed_backend/internal/repo/patient"
)

// EntStore is the PostgreSQL-backed Store. The partial unique index on
// (doctor_id, start_time) WHERE status <> 'cancelled' makes the database
// the single arbiter of concurrent bookings across engine instances.
type EntStore struct {
	db *repo.Client
}

func NewEntStore(db *repo.Client) *EntStore {
	return &EntStore{db: db}
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

func (s *EntStore) CreatePatient(ctx context.Context, p Patient) (Patient, error) {
	row, err := s.db.Patient.Create().
		SetNationalID(p.NationalID).
		SetFullName(p.FullName).
		SetEmail(p.Email).
		SetPhone(p.Phone).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return Patient{}, ErrDuplicate
		}
		return Patient{}, fmt.Errorf("create patient: %w", err)
	}
	return patientFromEnt(row), nil
}

func (s *EntStore) FindPatient(ctx context.Context, id uuid.UUID) (Patient, error) {
	row, err := s.db.Patient.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return Patient{}, ErrNotFound
		}
		return Patient{}, fmt.Errorf("get patient: %w", err)
	}
	return patientFromEnt(row), nil
}

func (s *EntStore) FindPatientByNationalID(ctx context.Context, nationalID string) (Patient, error) {
	row, err := s.db.Patient.Query().
		Where(entpatient.NationalID(nationalID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return Patient{}, ErrNotFound
		}
		return Patient{}, fmt.Errorf("get patient by national id: %w", err)
	}
	return patientFromEnt(row), nil
}

func (s *EntStore) CreateDoctor(ctx context.Context, d Doctor) (Doctor, error) {
	row, err := s.db.Doctor.Create().
		SetFullName(d.FullName).
		SetSpecialty(d.Specialty).
		SetOffice(d.Office).
		SetEmail(d.Email).
		Save(ctx)
	if err != nil {
		return Doctor{}, fmt.Errorf("create doctor: %w", err)
	}
	return doctorFromEnt(row), nil
}

func (s *EntStore) FindDoctor(ctx context.Context, id uuid.UUID) (Doctor, error) {
	row, err := s.db.Doctor.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return Doctor{}, ErrNotFound
		}
		return Doctor{}, fmt.Errorf("get doctor: %w", err)
	}
	return doctorFromEnt(row), nil
}

// ---------------------------------------------------------------------------
// Office hours
// ---------------------------------------------------------------------------

func (s *EntStore) GetDoctorSchedule(ctx context.Context, doctorID uuid.UUID) (DoctorSchedule, error) {
	row, err := s.db.DoctorSchedule.Query().
		Where(entsched.DoctorID(doctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return DoctorSchedule{}, ErrNotFound
		}
		return DoctorSchedule{}, fmt.Errorf("get doctor schedule: %w", err)
	}
	return DoctorSchedule{
		DoctorID:  row.DoctorID,
		StartHour: row.StartHour,
		EndHour:   row.EndHour,
	}, nil
}

func (s *EntStore) SetDoctorSchedule(ctx context.Context, sched DoctorSchedule) error {
	existing, err := s.db.DoctorSchedule.Query().
		Where(entsched.DoctorID(sched.DoctorID)).
		Only(ctx)
	if err != nil {
		if !repo.IsNotFound(err) {
			return fmt.Errorf("get doctor schedule: %w", err)
		}
		_, cErr := s.db.DoctorSchedule.Create().
			SetDoctorID(sched.DoctorID).
			SetStartHour(sched.StartHour).
			SetEndHour(sched.EndHour).
			Save(ctx)
		if cErr != nil {
			return fmt.Errorf("create doctor schedule: %w", cErr)
		}
		return nil
	}

	if err := s.db.DoctorSchedule.UpdateOne(existing).
		SetStartHour(sched.StartHour).
		SetEndHour(sched.EndHour).
		Exec(ctx); err != nil {
		return fmt.Errorf("update doctor schedule: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Appointments
// ---------------------------------------------------------------------------

func (s *EntStore) InsertAppointment(ctx context.Context, a Appointment) (Appointment, error) {
	c := s.db.Appointment.Create().
		SetCode(a.Code).
		SetPatientID(a.PatientID).
		SetDoctorID(a.DoctorID).
		SetStartTime(a.StartTime).
		SetOffice(a.Office).
		SetStatus(entappt.Status(a.Status))
	if a.Comment != "" {
		c = c.SetComment(a.Comment)
	}

	row, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return Appointment{}, classifyConstraint(err)
		}
		return Appointment{}, fmt.Errorf("insert appointment: %w", err)
	}
	return appointmentFromEnt(row), nil
}

func (s *EntStore) UpdateAppointment(ctx context.Context, code string, upd AppointmentUpdate) (Appointment, error) {
	existing, err := s.db.Appointment.Query().
		Where(entappt.Code(code)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return Appointment{}, ErrNotFound
		}
		return Appointment{}, fmt.Errorf("get appointment: %w", err)
	}

	u := s.db.Appointment.UpdateOne(existing)
	if upd.StartTime != nil {
		u = u.SetStartTime(*upd.StartTime)
	}
	if upd.Status != nil {
		u = u.SetStatus(entappt.Status(*upd.Status))
	}
	if upd.Comment != nil {
		u = u.SetComment(*upd.Comment)
	}
	if upd.ArrivalTime != nil {
		u = u.SetArrivalTime(*upd.ArrivalTime)
	}

	row, err := u.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return Appointment{}, classifyConstraint(err)
		}
		return Appointment{}, fmt.Errorf("update appointment: %w", err)
	}
	return appointmentFromEnt(row), nil
}

func (s *EntStore) FindAppointmentByCode(ctx context.Context, code string) (Appointment, error) {
	row, err := s.db.Appointment.Query().
		Where(entappt.Code(code)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return Appointment{}, ErrNotFound
		}
		return Appointment{}, fmt.Errorf("get appointment: %w", err)
	}
	return appointmentFromEnt(row), nil
}

func (s *EntStore) ListAppointmentsByDoctorDay(ctx context.Context, doctorID uuid.UUID, dayStart, dayEnd time.Time) ([]Appointment, error) {
	rows, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.StartTimeGTE(dayStart),
			entappt.StartTimeLT(dayEnd),
		).
		Order(entappt.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointmentsFromEnt(rows), nil
}

func (s *EntStore) ListAppointmentsByPatient(ctx context.Context, patientID uuid.UUID) ([]Appointment, error) {
	rows, err := s.db.Appointment.Query().
		Where(entappt.PatientID(patientID)).
		Order(entappt.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patient appointments: %w", err)
	}
	return appointmentsFromEnt(rows), nil
}

// ---------------------------------------------------------------------------
// Notification log
// ---------------------------------------------------------------------------

func (s *EntStore) AppendNotification(ctx context.Context, n Notification) error {
	err := s.db.Notification.Create().
		SetRecipient(n.Recipient).
		SetChannel(entnotif.Channel(n.Channel)).
		SetMessage(n.Message).
		SetStatus(entnotif.Status(n.Status)).
		SetErrorDetail(n.ErrorDetail).
		SetSentAt(n.SentAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("append notification: %w", err)
	}
	return nil
}

func (s *EntStore) ListNotifications(ctx context.Context, recipient string) ([]Notification, error) {
	rows, err := s.db.Notification.Query().
		Where(entnotif.Recipient(recipient)).
		Order(entnotif.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	out := make([]Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, Notification{
			ID:          row.ID,
			Recipient:   row.Recipient,
			Channel:     Channel(row.Channel),
			Message:     row.Message,
			Status:      NotificationStatus(row.Status),
			ErrorDetail: row.ErrorDetail,
			SentAt:      row.SentAt,
		})
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

// classifyConstraint distinguishes a lost slot race from other unique
// collisions by the violated constraint's name.
func classifyConstraint(err error) error {
	if strings.Contains(err.Error(), "doctor_id_start_time") {
		return ErrSlotTaken
	}
	return ErrDuplicate
}

func patientFromEnt(row *repo.Patient) Patient {
	return Patient{
		ID:         row.ID,
		NationalID: row.NationalID,
		FullName:   row.FullName,
		Email:      row.Email,
		Phone:      row.Phone,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func doctorFromEnt(row *repo.Doctor) Doctor {
	return Doctor{
		ID:        row.ID,
		FullName:  row.FullName,
		Specialty: row.Specialty,
		Office:    row.Office,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func appointmentFromEnt(row *repo.Appointment) Appointment {
	a := Appointment{
		ID:        row.ID,
		Code:      row.Code,
		PatientID: row.PatientID,
		DoctorID:  row.DoctorID,
		StartTime: row.StartTime,
		Office:    row.Office,
		Status:    Status(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Comment != nil {
		a.Comment = *row.Comment
	}
	if row.ArrivalTime != nil {
		a.ArrivalTime = *row.ArrivalTime
	}
	return a
}

func appointmentsFromEnt(rows []*repo.Appointment) []Appointment {
	out := make([]Appointment, 0, len(rows))
	for _, row := range rows {
		out = append(out, appointmentFromEnt(row))
	}
	return out
}
