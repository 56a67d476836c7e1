package appointment

import "errors"

var (
	ErrInvalidPatientID = errors.New("invalid patient national id")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrNotFound         = errors.New("appointment not found")
	ErrSlotTaken        = errors.New("requested time already taken")
	ErrTooLate          = errors.New("cannot modify within 12 hours of appointment")
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrInvalidStatus    = errors.New("invalid attendance status")
	ErrNotToday         = errors.New("attendance can only be recorded on the appointment day")
)
