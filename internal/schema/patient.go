package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Patient is a registry record; the national id is the external lookup key
// used by booking requests and is checksum-validated before insertion.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("national_id").
			MaxLen(10).
			Unique(),

		field.String("full_name").
			MaxLen(255),

		field.String("email").
			MaxLen(255).
			Default(""),

		field.String("phone").
			MaxLen(32).
			Default(""),
	}
}
