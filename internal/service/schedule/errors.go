package schedule

import "errors"

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidWindow  = errors.New("invalid office hours window")
)
