// Code generated by ent, DO NOT EDIT.

package doctorschedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Francis1918/citamed_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldDoctorID, v))
}

// StartHour applies equality check predicate on the "start_hour" field. It's identical to StartHourEQ.
func StartHour(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldStartHour, v))
}

// EndHour applies equality check predicate on the "end_hour" field. It's identical to EndHourEQ.
func EndHour(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldEndHour, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldUpdatedAt, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldDoctorID, v))
}

// StartHourEQ applies the EQ predicate on the "start_hour" field.
func StartHourEQ(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldStartHour, v))
}

// StartHourNEQ applies the NEQ predicate on the "start_hour" field.
func StartHourNEQ(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldStartHour, v))
}

// StartHourIn applies the In predicate on the "start_hour" field.
func StartHourIn(vs ...int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldStartHour, vs...))
}

// StartHourNotIn applies the NotIn predicate on the "start_hour" field.
func StartHourNotIn(vs ...int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldStartHour, vs...))
}

// StartHourGT applies the GT predicate on the "start_hour" field.
func StartHourGT(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldStartHour, v))
}

// StartHourGTE applies the GTE predicate on the "start_hour" field.
func StartHourGTE(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldStartHour, v))
}

// StartHourLT applies the LT predicate on the "start_hour" field.
func StartHourLT(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldStartHour, v))
}

// StartHourLTE applies the LTE predicate on the "start_hour" field.
func StartHourLTE(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldStartHour, v))
}

// EndHourEQ applies the EQ predicate on the "end_hour" field.
func EndHourEQ(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldEndHour, v))
}

// EndHourNEQ applies the NEQ predicate on the "end_hour" field.
func EndHourNEQ(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldEndHour, v))
}

// EndHourIn applies the In predicate on the "end_hour" field.
func EndHourIn(vs ...int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldEndHour, vs...))
}

// EndHourNotIn applies the NotIn predicate on the "end_hour" field.
func EndHourNotIn(vs ...int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldEndHour, vs...))
}

// EndHourGT applies the GT predicate on the "end_hour" field.
func EndHourGT(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldEndHour, v))
}

// EndHourGTE applies the GTE predicate on the "end_hour" field.
func EndHourGTE(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldEndHour, v))
}

// EndHourLT applies the LT predicate on the "end_hour" field.
func EndHourLT(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldEndHour, v))
}

// EndHourLTE applies the LTE predicate on the "end_hour" field.
func EndHourLTE(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldEndHour, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DoctorSchedule) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DoctorSchedule) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DoctorSchedule) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.NotPredicates(p))
}
