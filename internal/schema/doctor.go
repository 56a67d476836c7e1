package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Doctor is a registry record. The office field is the default location
// stamped onto appointments booked with this doctor.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.String("full_name").
			MaxLen(255),

		field.String("specialty").
			MaxLen(255).
			Default(""),

		field.String("office").
			MaxLen(255).
			Default(""),

		field.String("email").
			MaxLen(255).
			Default(""),
	}
}
