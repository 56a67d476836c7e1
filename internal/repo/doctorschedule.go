// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Francis1918/citamed_backend/internal/repo/doctorschedule"
	"github.com/google/uuid"
)

// DoctorSchedule is the model entity for the DoctorSchedule schema.
type DoctorSchedule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → doctors.id; one window per doctor
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// StartHour holds the value of the "start_hour" field.
	StartHour int `json:"start_hour,omitempty"`
	// EndHour holds the value of the "end_hour" field.
	EndHour      int `json:"end_hour,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DoctorSchedule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case doctorschedule.FieldStartHour, doctorschedule.FieldEndHour:
			values[i] = new(sql.NullInt64)
		case doctorschedule.FieldCreatedAt, doctorschedule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case doctorschedule.FieldID, doctorschedule.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DoctorSchedule fields.
func (_m *DoctorSchedule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case doctorschedule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case doctorschedule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case doctorschedule.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case doctorschedule.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case doctorschedule.FieldStartHour:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_hour", values[i])
			} else if value.Valid {
				_m.StartHour = int(value.Int64)
			}
		case doctorschedule.FieldEndHour:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_hour", values[i])
			} else if value.Valid {
				_m.EndHour = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DoctorSchedule.
// This includes values selected through modifiers, order, etc.
func (_m *DoctorSchedule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DoctorSchedule.
// Note that you need to call DoctorSchedule.Unwrap() before calling this method if this DoctorSchedule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DoctorSchedule) Update() *DoctorScheduleUpdateOne {
	return NewDoctorScheduleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DoctorSchedule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DoctorSchedule) Unwrap() *DoctorSchedule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DoctorSchedule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DoctorSchedule) String() string {
	var builder strings.Builder
	builder.WriteString("DoctorSchedule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("start_hour=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartHour))
	builder.WriteString(", ")
	builder.WriteString("end_hour=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndHour))
	builder.WriteByte(')')
	return builder.String()
}

// DoctorSchedules is a parsable slice of DoctorSchedule.
type DoctorSchedules []*DoctorSchedule
