package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMemStoreSlotConflict(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	doctorID := uuid.New()
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	_, err := store.InsertAppointment(ctx, Appointment{
		Code:      "CM-AAAAAA",
		PatientID: uuid.New(),
		DoctorID:  doctorID,
		StartTime: start,
		Status:    StatusConfirmed,
	})
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}

	_, err = store.InsertAppointment(ctx, Appointment{
		Code:      "CM-BBBBBB",
		PatientID: uuid.New(),
		DoctorID:  doctorID,
		StartTime: start,
		Status:    StatusConfirmed,
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	// Same time with a different doctor is fine.
	_, err = store.InsertAppointment(ctx, Appointment{
		Code:      "CM-CCCCCC",
		PatientID: uuid.New(),
		DoctorID:  uuid.New(),
		StartTime: start,
		Status:    StatusConfirmed,
	})
	if err != nil {
		t.Fatalf("other doctor, same time: %v", err)
	}
}

func TestMemStoreCancelFreesSlot(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	doctorID := uuid.New()
	start := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)

	if _, err := store.InsertAppointment(ctx, Appointment{
		Code:      "CM-AAAAAA",
		PatientID: uuid.New(),
		DoctorID:  doctorID,
		StartTime: start,
		Status:    StatusConfirmed,
	}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	cancelled := StatusCancelled
	if _, err := store.UpdateAppointment(ctx, "CM-AAAAAA", AppointmentUpdate{Status: &cancelled}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := store.InsertAppointment(ctx, Appointment{
		Code:      "CM-BBBBBB",
		PatientID: uuid.New(),
		DoctorID:  doctorID,
		StartTime: start,
		Status:    StatusConfirmed,
	}); err != nil {
		t.Fatalf("slot should be free after cancellation: %v", err)
	}
}

func TestMemStoreClosedStatusKeepsSlot(t *testing.T) {
	ctx := context.Background()

	// Recording attendance closes the appointment but the visit still
	// happened at that time; only cancellation releases the slot.
	for _, closed := range []Status{StatusAttended, StatusAbsent, StatusLate} {
		t.Run(string(closed), func(t *testing.T) {
			store := NewMemStore()
			doctorID := uuid.New()
			start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

			if _, err := store.InsertAppointment(ctx, Appointment{
				Code: "CM-AAAAAA", PatientID: uuid.New(), DoctorID: doctorID,
				StartTime: start, Status: StatusConfirmed,
			}); err != nil {
				t.Fatalf("insert: %v", err)
			}

			status := closed
			if _, err := store.UpdateAppointment(ctx, "CM-AAAAAA", AppointmentUpdate{Status: &status}); err != nil {
				t.Fatalf("close: %v", err)
			}

			_, err := store.InsertAppointment(ctx, Appointment{
				Code: "CM-BBBBBB", PatientID: uuid.New(), DoctorID: doctorID,
				StartTime: start, Status: StatusConfirmed,
			})
			if !errors.Is(err, ErrSlotTaken) {
				t.Fatalf("slot must stay held after %s, got %v", closed, err)
			}
		})
	}
}

func TestMemStoreRescheduleMovesSlot(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	doctorID := uuid.New()
	t10 := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	t11 := t10.Add(time.Hour)

	if _, err := store.InsertAppointment(ctx, Appointment{
		Code: "CM-AAAAAA", PatientID: uuid.New(), DoctorID: doctorID,
		StartTime: t10, Status: StatusConfirmed,
	}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	status := StatusRescheduled
	if _, err := store.UpdateAppointment(ctx, "CM-AAAAAA", AppointmentUpdate{
		StartTime: &t11, Status: &status,
	}); err != nil {
		t.Fatalf("reschedule: %v", err)
	}

	// Old slot is free, new slot is held.
	if _, err := store.InsertAppointment(ctx, Appointment{
		Code: "CM-BBBBBB", PatientID: uuid.New(), DoctorID: doctorID,
		StartTime: t10, Status: StatusConfirmed,
	}); err != nil {
		t.Fatalf("old slot should be free: %v", err)
	}
	_, err := store.InsertAppointment(ctx, Appointment{
		Code: "CM-DDDDDD", PatientID: uuid.New(), DoctorID: doctorID,
		StartTime: t11, Status: StatusConfirmed,
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("new slot should be held, got %v", err)
	}
}

func TestMemStoreConcurrentBooking(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	doctorID := uuid.New()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	const workers = 32
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.InsertAppointment(ctx, Appointment{
				Code:      fmt.Sprintf("CM-%06d", i),
				PatientID: uuid.New(),
				DoctorID:  doctorID,
				StartTime: start,
				Status:    StatusConfirmed,
			})
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var won, lost int
	for err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrSlotTaken):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if won != 1 {
		t.Fatalf("expected exactly one winner, got %d (lost %d)", won, lost)
	}
}

func TestMemStorePatientUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	if _, err := store.CreatePatient(ctx, Patient{NationalID: "0926687856", FullName: "Ana Paredes"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := store.CreatePatient(ctx, Patient{NationalID: "0926687856", FullName: "Otra Persona"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestMemStoreListByDoctorDay(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	doctorID := uuid.New()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, h := range []int{14, 9, 11} {
		if _, err := store.InsertAppointment(ctx, Appointment{
			Code:      fmt.Sprintf("CM-H%05d", h),
			PatientID: uuid.New(),
			DoctorID:  doctorID,
			StartTime: day.Add(time.Duration(h) * time.Hour),
			Status:    StatusConfirmed,
		}); err != nil {
			t.Fatalf("insert %d: %v", h, err)
		}
	}
	// Next day, should not appear.
	if _, err := store.InsertAppointment(ctx, Appointment{
		Code: "CM-NEXTDY", PatientID: uuid.New(), DoctorID: doctorID,
		StartTime: day.Add(33 * time.Hour), Status: StatusConfirmed,
	}); err != nil {
		t.Fatalf("insert next day: %v", err)
	}

	got, err := store.ListAppointmentsByDoctorDay(ctx, doctorID, day, day.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].StartTime.Before(got[i-1].StartTime) {
			t.Fatalf("appointments not ordered by start time")
		}
	}
}
