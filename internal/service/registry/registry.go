package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Francis1918/citamed_backend/internal/storage"
	"github.com/Francis1918/citamed_backend/pkg/cedula"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreatePatientRequest struct {
	NationalID string
	FullName   string
	Email      string
	Phone      string
}

type CreateDoctorRequest struct {
	FullName  string
	Specialty string
	Office    string
	Email     string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	CreatePatient(ctx context.Context, req CreatePatientRequest) (storage.Patient, error)
	GetPatient(ctx context.Context, nationalID string) (storage.Patient, error)

	CreateDoctor(ctx context.Context, req CreateDoctorRequest) (storage.Doctor, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (storage.Doctor, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type registryService struct {
	store  storage.Store
	logger *slog.Logger
}

func New(store storage.Store, logger *slog.Logger) Service {
	return &registryService{store: store, logger: logger}
}

func (s *registryService) CreatePatient(ctx context.Context, req CreatePatientRequest) (storage.Patient, error) {
	req.NationalID = strings.TrimSpace(req.NationalID)
	if err := cedula.Validate(req.NationalID); err != nil {
		return storage.Patient{}, fmt.Errorf("%w: %w", ErrInvalidNationalID, err)
	}
	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		return storage.Patient{}, ErrNameRequired
	}

	patient, err := s.store.CreatePatient(ctx, storage.Patient{
		NationalID: req.NationalID,
		FullName:   req.FullName,
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return storage.Patient{}, ErrPatientExists
		}
		return storage.Patient{}, fmt.Errorf("create patient: %w", err)
	}

	s.logger.Info("patient registered", "patient_id", patient.ID)
	return patient, nil
}

func (s *registryService) GetPatient(ctx context.Context, nationalID string) (storage.Patient, error) {
	patient, err := s.store.FindPatientByNationalID(ctx, strings.TrimSpace(nationalID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Patient{}, ErrPatientNotFound
		}
		return storage.Patient{}, fmt.Errorf("get patient: %w", err)
	}
	return patient, nil
}

func (s *registryService) CreateDoctor(ctx context.Context, req CreateDoctorRequest) (storage.Doctor, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		return storage.Doctor{}, ErrNameRequired
	}

	doctor, err := s.store.CreateDoctor(ctx, storage.Doctor{
		FullName:  req.FullName,
		Specialty: strings.TrimSpace(req.Specialty),
		Office:    strings.TrimSpace(req.Office),
		Email:     strings.TrimSpace(req.Email),
	})
	if err != nil {
		return storage.Doctor{}, fmt.Errorf("create doctor: %w", err)
	}

	s.logger.Info("doctor registered", "doctor_id", doctor.ID, "specialty", doctor.Specialty)
	return doctor, nil
}

func (s *registryService) GetDoctor(ctx context.Context, id uuid.UUID) (storage.Doctor, error) {
	doctor, err := s.store.FindDoctor(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Doctor{}, ErrDoctorNotFound
		}
		return storage.Doctor{}, fmt.Errorf("get doctor: %w", err)
	}
	return doctor, nil
}
