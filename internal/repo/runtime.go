// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/Francis1918/citamed_backend/internal/repo/appointment"
	"github.com/Francis1918/citamed_backend/internal/repo/doctor"
	"github.com/Francis1918/citamed_backend/internal/repo/doctorschedule"
	"github.com/Francis1918/citamed_backend/internal/repo/notification"
	"github.com/Francis1918/citamed_backend/internal/repo/patient"
	"github.com/Francis1918/citamed_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescCode is the schema descriptor for code field.
	appointmentDescCode := appointmentFields[0].Descriptor()
	// appointment.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	appointment.CodeValidator = appointmentDescCode.Validators[0].(func(string) error)
	// appointmentDescOffice is the schema descriptor for office field.
	appointmentDescOffice := appointmentFields[4].Descriptor()
	// appointment.DefaultOffice holds the default value on creation for the office field.
	appointment.DefaultOffice = appointmentDescOffice.Default.(string)
	// appointment.OfficeValidator is a validator for the "office" field. It is called by the builders before save.
	appointment.OfficeValidator = appointmentDescOffice.Validators[0].(func(string) error)
	// appointmentDescArrivalTime is the schema descriptor for arrival_time field.
	appointmentDescArrivalTime := appointmentFields[7].Descriptor()
	// appointment.ArrivalTimeValidator is a validator for the "arrival_time" field. It is called by the builders before save.
	appointment.ArrivalTimeValidator = appointmentDescArrivalTime.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	doctorMixin := schema.Doctor{}.Mixin()
	doctorMixinFields0 := doctorMixin[0].Fields()
	_ = doctorMixinFields0
	doctorMixinFields1 := doctorMixin[1].Fields()
	_ = doctorMixinFields1
	doctorFields := schema.Doctor{}.Fields()
	_ = doctorFields
	// doctorDescCreatedAt is the schema descriptor for created_at field.
	doctorDescCreatedAt := doctorMixinFields1[0].Descriptor()
	// doctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctor.DefaultCreatedAt = doctorDescCreatedAt.Default.(func() time.Time)
	// doctorDescUpdatedAt is the schema descriptor for updated_at field.
	doctorDescUpdatedAt := doctorMixinFields1[1].Descriptor()
	// doctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctor.DefaultUpdatedAt = doctorDescUpdatedAt.Default.(func() time.Time)
	// doctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctor.UpdateDefaultUpdatedAt = doctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorDescFullName is the schema descriptor for full_name field.
	doctorDescFullName := doctorFields[0].Descriptor()
	// doctor.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	doctor.FullNameValidator = doctorDescFullName.Validators[0].(func(string) error)
	// doctorDescSpecialty is the schema descriptor for specialty field.
	doctorDescSpecialty := doctorFields[1].Descriptor()
	// doctor.DefaultSpecialty holds the default value on creation for the specialty field.
	doctor.DefaultSpecialty = doctorDescSpecialty.Default.(string)
	// doctor.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	doctor.SpecialtyValidator = doctorDescSpecialty.Validators[0].(func(string) error)
	// doctorDescOffice is the schema descriptor for office field.
	doctorDescOffice := doctorFields[2].Descriptor()
	// doctor.DefaultOffice holds the default value on creation for the office field.
	doctor.DefaultOffice = doctorDescOffice.Default.(string)
	// doctor.OfficeValidator is a validator for the "office" field. It is called by the builders before save.
	doctor.OfficeValidator = doctorDescOffice.Validators[0].(func(string) error)
	// doctorDescEmail is the schema descriptor for email field.
	doctorDescEmail := doctorFields[3].Descriptor()
	// doctor.DefaultEmail holds the default value on creation for the email field.
	doctor.DefaultEmail = doctorDescEmail.Default.(string)
	// doctor.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	doctor.EmailValidator = doctorDescEmail.Validators[0].(func(string) error)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	doctorscheduleMixin := schema.DoctorSchedule{}.Mixin()
	doctorscheduleMixinFields0 := doctorscheduleMixin[0].Fields()
	_ = doctorscheduleMixinFields0
	doctorscheduleMixinFields1 := doctorscheduleMixin[1].Fields()
	_ = doctorscheduleMixinFields1
	doctorscheduleFields := schema.DoctorSchedule{}.Fields()
	_ = doctorscheduleFields
	// doctorscheduleDescCreatedAt is the schema descriptor for created_at field.
	doctorscheduleDescCreatedAt := doctorscheduleMixinFields1[0].Descriptor()
	// doctorschedule.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctorschedule.DefaultCreatedAt = doctorscheduleDescCreatedAt.Default.(func() time.Time)
	// doctorscheduleDescUpdatedAt is the schema descriptor for updated_at field.
	doctorscheduleDescUpdatedAt := doctorscheduleMixinFields1[1].Descriptor()
	// doctorschedule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctorschedule.DefaultUpdatedAt = doctorscheduleDescUpdatedAt.Default.(func() time.Time)
	// doctorschedule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctorschedule.UpdateDefaultUpdatedAt = doctorscheduleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorscheduleDescStartHour is the schema descriptor for start_hour field.
	doctorscheduleDescStartHour := doctorscheduleFields[1].Descriptor()
	// doctorschedule.StartHourValidator is a validator for the "start_hour" field. It is called by the builders before save.
	doctorschedule.StartHourValidator = func() func(int) error {
		validators := doctorscheduleDescStartHour.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(start_hour int) error {
			for _, fn := range fns {
				if err := fn(start_hour); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorscheduleDescEndHour is the schema descriptor for end_hour field.
	doctorscheduleDescEndHour := doctorscheduleFields[2].Descriptor()
	// doctorschedule.EndHourValidator is a validator for the "end_hour" field. It is called by the builders before save.
	doctorschedule.EndHourValidator = func() func(int) error {
		validators := doctorscheduleDescEndHour.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(end_hour int) error {
			for _, fn := range fns {
				if err := fn(end_hour); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorscheduleDescID is the schema descriptor for id field.
	doctorscheduleDescID := doctorscheduleMixinFields0[0].Descriptor()
	// doctorschedule.DefaultID holds the default value on creation for the id field.
	doctorschedule.DefaultID = doctorscheduleDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescRecipient is the schema descriptor for recipient field.
	notificationDescRecipient := notificationFields[0].Descriptor()
	// notification.RecipientValidator is a validator for the "recipient" field. It is called by the builders before save.
	notification.RecipientValidator = notificationDescRecipient.Validators[0].(func(string) error)
	// notificationDescErrorDetail is the schema descriptor for error_detail field.
	notificationDescErrorDetail := notificationFields[4].Descriptor()
	// notification.DefaultErrorDetail holds the default value on creation for the error_detail field.
	notification.DefaultErrorDetail = notificationDescErrorDetail.Default.(string)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescNationalID is the schema descriptor for national_id field.
	patientDescNationalID := patientFields[0].Descriptor()
	// patient.NationalIDValidator is a validator for the "national_id" field. It is called by the builders before save.
	patient.NationalIDValidator = patientDescNationalID.Validators[0].(func(string) error)
	// patientDescFullName is the schema descriptor for full_name field.
	patientDescFullName := patientFields[1].Descriptor()
	// patient.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	patient.FullNameValidator = patientDescFullName.Validators[0].(func(string) error)
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[2].Descriptor()
	// patient.DefaultEmail holds the default value on creation for the email field.
	patient.DefaultEmail = patientDescEmail.Default.(string)
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = patientDescEmail.Validators[0].(func(string) error)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[3].Descriptor()
	// patient.DefaultPhone holds the default value on creation for the phone field.
	patient.DefaultPhone = patientDescPhone.Default.(string)
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
}
