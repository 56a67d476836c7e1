package registry

import "errors"

var (
	ErrInvalidNationalID = errors.New("invalid national id")
	ErrNameRequired      = errors.New("full name is required")
	ErrPatientExists     = errors.New("patient already registered")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrDoctorNotFound    = errors.New("doctor not found")
)
