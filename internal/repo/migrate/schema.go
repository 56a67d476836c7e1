// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "code", Type: field.TypeString, Unique: true, Size: 16},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "office", Type: field.TypeString, Size: 255, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"confirmed", "rescheduled", "cancelled", "attended", "absent", "late"}, Default: "confirmed"},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "arrival_time", Type: field.TypeString, Nullable: true, Size: 5},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_doctor_id_start_time",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[5], AppointmentsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status <> 'cancelled'",
				},
			},
			{
				Name:    "appointment_patient_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_doctor_id_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[5], AppointmentsColumns[8], AppointmentsColumns[6]},
			},
		},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "full_name", Type: field.TypeString, Size: 255},
		{Name: "specialty", Type: field.TypeString, Size: 255, Default: ""},
		{Name: "office", Type: field.TypeString, Size: 255, Default: ""},
		{Name: "email", Type: field.TypeString, Size: 255, Default: ""},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
	}
	// DoctorSchedulesColumns holds the columns for the "doctor_schedules" table.
	DoctorSchedulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID, Unique: true},
		{Name: "start_hour", Type: field.TypeInt},
		{Name: "end_hour", Type: field.TypeInt},
	}
	// DoctorSchedulesTable holds the schema information for the "doctor_schedules" table.
	DoctorSchedulesTable = &schema.Table{
		Name:       "doctor_schedules",
		Columns:    DoctorSchedulesColumns,
		PrimaryKey: []*schema.Column{DoctorSchedulesColumns[0]},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "recipient", Type: field.TypeString, Size: 64},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"email", "sms", "interno"}},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"sent", "failed"}, Default: "sent"},
		{Name: "error_detail", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "sent_at", Type: field.TypeTime},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_recipient_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[1]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "national_id", Type: field.TypeString, Unique: true, Size: 10},
		{Name: "full_name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Size: 255, Default: ""},
		{Name: "phone", Type: field.TypeString, Size: 32, Default: ""},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		DoctorsTable,
		DoctorSchedulesTable,
		NotificationsTable,
		PatientsTable,
	}
)

func init() {
}
