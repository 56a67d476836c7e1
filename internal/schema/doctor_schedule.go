package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// DoctorSchedule is a doctor's working window for slot generation.
// A doctor without a record falls back to the configured default window.
type DoctorSchedule struct {
	ent.Schema
}

func (DoctorSchedule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DoctorSchedule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Unique().
			Comment("FK → doctors.id; one window per doctor"),

		field.Int("start_hour").
			Min(0).
			Max(23),

		field.Int("end_hour").
			Min(1).
			Max(24),
	}
}
