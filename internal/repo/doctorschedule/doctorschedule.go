// Code generated by ent, DO NOT EDIT.

package doctorschedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the doctorschedule type in the database.
	Label = "doctor_schedule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldStartHour holds the string denoting the start_hour field in the database.
	FieldStartHour = "start_hour"
	// FieldEndHour holds the string denoting the end_hour field in the database.
	FieldEndHour = "end_hour"
	// Table holds the table name of the doctorschedule in the database.
	Table = "doctor_schedules"
)

// Columns holds all SQL columns for doctorschedule fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDoctorID,
	FieldStartHour,
	FieldEndHour,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// StartHourValidator is a validator for the "start_hour" field. It is called by the builders before save.
	StartHourValidator func(int) error
	// EndHourValidator is a validator for the "end_hour" field. It is called by the builders before save.
	EndHourValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DoctorSchedule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByStartHour orders the results by the start_hour field.
func ByStartHour(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartHour, opts...).ToFunc()
}

// ByEndHour orders the results by the end_hour field.
func ByEndHour(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndHour, opts...).ToFunc()
}
