package registry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francis1918/citamed_backend/internal/storage"
)

func newTestService() Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(storage.NewMemStore(), logger)
}

func TestCreatePatient(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.CreatePatient(ctx, CreatePatientRequest{
		NationalID: " 0926687856 ",
		FullName:   "Ana Paredes",
		Email:      "ana@example.com",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "0926687856", p.NationalID)

	got, err := svc.GetPatient(ctx, "0926687856")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestCreatePatientValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreatePatientRequest
		wantErr error
	}{
		{"bad check digit", CreatePatientRequest{NationalID: "0926687855", FullName: "X"}, ErrInvalidNationalID},
		{"bad region", CreatePatientRequest{NationalID: "2526687856", FullName: "X"}, ErrInvalidNationalID},
		{"too short", CreatePatientRequest{NationalID: "12345", FullName: "X"}, ErrInvalidNationalID},
		{"missing name", CreatePatientRequest{NationalID: "0926687856"}, ErrNameRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePatient(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreatePatientDuplicate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreatePatient(ctx, CreatePatientRequest{NationalID: "1710034065", FullName: "Jose Vera"})
	require.NoError(t, err)

	_, err = svc.CreatePatient(ctx, CreatePatientRequest{NationalID: "1710034065", FullName: "Otro Nombre"})
	assert.ErrorIs(t, err, ErrPatientExists)
}

func TestGetPatientNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetPatient(context.Background(), "2400000002")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestCreateDoctor(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	d, err := svc.CreateDoctor(ctx, CreateDoctorRequest{
		FullName:  "Dra. Maria Salazar",
		Specialty: "cardiologia",
		Office:    "consultorio 2",
	})
	require.NoError(t, err)

	got, err := svc.GetDoctor(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "cardiologia", got.Specialty)

	_, err = svc.CreateDoctor(ctx, CreateDoctorRequest{})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.GetDoctor(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
