package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification is one row of the append-only audit log written by every
// successful lifecycle operation. Rows are never updated or deleted;
// delivery itself happens elsewhere.
type Notification struct {
	ent.Schema
}

func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("recipient").
			MaxLen(64).
			Comment("Patient national id or doctor id"),

		field.Enum("channel").
			Values("email", "sms", "interno"),

		field.Text("message"),

		field.Enum("status").
			Values("sent", "failed").
			Default("sent"),

		field.Text("error_detail").
			Optional().
			Default(""),

		field.Time("sent_at"),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient", "created_at"),
	}
}
