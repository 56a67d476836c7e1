package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore is a mutex-guarded in-memory Store. It enforces the same
// uniqueness rules as the database adapter, including the slot rule:
// at most one non-cancelled appointment per (doctor, start time).
type MemStore struct {
	mu sync.Mutex

	patients      map[uuid.UUID]Patient
	byNationalID  map[string]uuid.UUID
	doctors       map[uuid.UUID]Doctor
	schedules     map[uuid.UUID]DoctorSchedule
	appointments  map[string]Appointment // keyed by code
	slots         map[string]string      // doctorID|RFC3339 -> code, non-cancelled only
	notifications []Notification
}

func NewMemStore() *MemStore {
	return &MemStore{
		patients:     make(map[uuid.UUID]Patient),
		byNationalID: make(map[string]uuid.UUID),
		doctors:      make(map[uuid.UUID]Doctor),
		schedules:    make(map[uuid.UUID]DoctorSchedule),
		appointments: make(map[string]Appointment),
		slots:        make(map[string]string),
	}
}

func slotKey(doctorID uuid.UUID, t time.Time) string {
	return doctorID.String() + "|" + t.UTC().Format(time.RFC3339)
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

func (s *MemStore) CreatePatient(_ context.Context, p Patient) (Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byNationalID[p.NationalID]; ok {
		return Patient{}, ErrDuplicate
	}
	p.ID = uuid.New()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.patients[p.ID] = p
	s.byNationalID[p.NationalID] = p.ID
	return p, nil
}

func (s *MemStore) FindPatient(_ context.Context, id uuid.UUID) (Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[id]
	if !ok {
		return Patient{}, ErrNotFound
	}
	return p, nil
}

func (s *MemStore) FindPatientByNationalID(_ context.Context, nationalID string) (Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byNationalID[nationalID]
	if !ok {
		return Patient{}, ErrNotFound
	}
	return s.patients[id], nil
}

func (s *MemStore) CreateDoctor(_ context.Context, d Doctor) (Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = uuid.New()
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	s.doctors[d.ID] = d
	return d, nil
}

func (s *MemStore) FindDoctor(_ context.Context, id uuid.UUID) (Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.doctors[id]
	if !ok {
		return Doctor{}, ErrNotFound
	}
	return d, nil
}

// ---------------------------------------------------------------------------
// Office hours
// ---------------------------------------------------------------------------

func (s *MemStore) GetDoctorSchedule(_ context.Context, doctorID uuid.UUID) (DoctorSchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sched, ok := s.schedules[doctorID]
	if !ok {
		return DoctorSchedule{}, ErrNotFound
	}
	return sched, nil
}

func (s *MemStore) SetDoctorSchedule(_ context.Context, sched DoctorSchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schedules[sched.DoctorID] = sched
	return nil
}

// ---------------------------------------------------------------------------
// Appointments
// ---------------------------------------------------------------------------

func (s *MemStore) InsertAppointment(_ context.Context, a Appointment) (Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[a.Code]; ok {
		return Appointment{}, ErrDuplicate
	}
	key := slotKey(a.DoctorID, a.StartTime)
	if a.Status.Occupies() {
		if _, taken := s.slots[key]; taken {
			return Appointment{}, ErrSlotTaken
		}
	}

	a.ID = uuid.New()
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	s.appointments[a.Code] = a
	if a.Status.Occupies() {
		s.slots[key] = a.Code
	}
	return a, nil
}

func (s *MemStore) UpdateAppointment(_ context.Context, code string, upd AppointmentUpdate) (Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[code]
	if !ok {
		return Appointment{}, ErrNotFound
	}

	next := a
	if upd.StartTime != nil {
		next.StartTime = *upd.StartTime
	}
	if upd.Status != nil {
		next.Status = *upd.Status
	}
	if upd.Comment != nil {
		next.Comment = *upd.Comment
	}
	if upd.ArrivalTime != nil {
		next.ArrivalTime = *upd.ArrivalTime
	}

	oldKey := slotKey(a.DoctorID, a.StartTime)
	newKey := slotKey(next.DoctorID, next.StartTime)
	if next.Status.Occupies() && (newKey != oldKey || !a.Status.Occupies()) {
		if holder, taken := s.slots[newKey]; taken && holder != code {
			return Appointment{}, ErrSlotTaken
		}
	}

	if a.Status.Occupies() {
		delete(s.slots, oldKey)
	}
	if next.Status.Occupies() {
		s.slots[newKey] = code
	}
	next.UpdatedAt = time.Now().UTC()
	s.appointments[code] = next
	return next, nil
}

func (s *MemStore) FindAppointmentByCode(_ context.Context, code string) (Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[code]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (s *MemStore) ListAppointmentsByDoctorDay(_ context.Context, doctorID uuid.UUID, dayStart, dayEnd time.Time) ([]Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Appointment
	for _, a := range s.appointments {
		if a.DoctorID != doctorID {
			continue
		}
		if a.StartTime.Before(dayStart) || !a.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (s *MemStore) ListAppointmentsByPatient(_ context.Context, patientID uuid.UUID) ([]Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Appointment
	for _, a := range s.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

// ---------------------------------------------------------------------------
// Notification log
// ---------------------------------------------------------------------------

func (s *MemStore) AppendNotification(_ context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = uuid.New()
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *MemStore) ListNotifications(_ context.Context, recipient string) ([]Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Notification
	for _, n := range s.notifications {
		if n.Recipient == recipient {
			out = append(out, n)
		}
	}
	return out, nil
}
