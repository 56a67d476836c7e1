package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked consultation between a doctor and a patient.
// Records are never deleted: cancellation is a status transition.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").
			MaxLen(16).
			Unique().
			Immutable().
			Comment("Human-readable identifier, e.g. CM-7K2Q9X"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.Time("start_time").
			Comment("Slot start, stored in UTC"),

		field.String("office").
			MaxLen(255).
			Default("").
			Comment("Location; defaulted from the doctor's registered office"),

		field.Enum("status").
			Values("confirmed", "rescheduled", "cancelled", "attended", "absent", "late").
			Default("confirmed"),

		field.Text("comment").
			Optional().
			Nillable(),

		field.String("arrival_time").
			MaxLen(5).
			Optional().
			Nillable().
			Comment("HH:MM, set by attendance recording"),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		// The no-double-booking arbiter: at most one non-cancelled
		// appointment per doctor and slot, enforced by the database so
		// concurrent bookings resolve to one winner.
		index.Fields("doctor_id", "start_time").
			Unique().
			Annotations(entsql.IndexWhere("status <> 'cancelled'")),

		index.Fields("patient_id", "start_time"),
		index.Fields("doctor_id", "status", "start_time"),
	}
}
