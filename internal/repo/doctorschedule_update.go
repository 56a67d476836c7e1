// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Francis1918/citamed_backend/internal/repo/doctorschedule"
	"github.com/Francis1918/citamed_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// DoctorScheduleUpdate is the builder for updating DoctorSchedule entities.
type DoctorScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorScheduleMutation
}

// Where appends a list predicates to the DoctorScheduleUpdate builder.
func (_u *DoctorScheduleUpdate) Where(ps ...predicate.DoctorSchedule) *DoctorScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorScheduleUpdate) SetUpdatedAt(v time.Time) *DoctorScheduleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorScheduleUpdate) SetDoctorID(v uuid.UUID) *DoctorScheduleUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorScheduleUpdate) SetNillableDoctorID(v *uuid.UUID) *DoctorScheduleUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *DoctorScheduleUpdate) SetStartHour(v int) *DoctorScheduleUpdate {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *DoctorScheduleUpdate) SetNillableStartHour(v *int) *DoctorScheduleUpdate {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *DoctorScheduleUpdate) AddStartHour(v int) *DoctorScheduleUpdate {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetEndHour sets the "end_hour" field.
func (_u *DoctorScheduleUpdate) SetEndHour(v int) *DoctorScheduleUpdate {
	_u.mutation.ResetEndHour()
	_u.mutation.SetEndHour(v)
	return _u
}

// SetNillableEndHour sets the "end_hour" field if the given value is not nil.
func (_u *DoctorScheduleUpdate) SetNillableEndHour(v *int) *DoctorScheduleUpdate {
	if v != nil {
		_u.SetEndHour(*v)
	}
	return _u
}

// AddEndHour adds value to the "end_hour" field.
func (_u *DoctorScheduleUpdate) AddEndHour(v int) *DoctorScheduleUpdate {
	_u.mutation.AddEndHour(v)
	return _u
}

// Mutation returns the DoctorScheduleMutation object of the builder.
func (_u *DoctorScheduleUpdate) Mutation() *DoctorScheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorScheduleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorScheduleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorScheduleUpdate) check() error {
	if v, ok := _u.mutation.StartHour(); ok {
		if err := doctorschedule.StartHourValidator(v); err != nil {
			return &ValidationError{Name: "start_hour", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.start_hour": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndHour(); ok {
		if err := doctorschedule.EndHourValidator(v); err != nil {
			return &ValidationError{Name: "end_hour", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.end_hour": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorschedule.Table, doctorschedule.Columns, sqlgraph.NewFieldSpec(doctorschedule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(doctorschedule.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(doctorschedule.FieldStartHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(doctorschedule.FieldStartHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndHour(); ok {
		_spec.SetField(doctorschedule.FieldEndHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndHour(); ok {
		_spec.AddField(doctorschedule.FieldEndHour, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorScheduleUpdateOne is the builder for updating a single DoctorSchedule entity.
type DoctorScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorScheduleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorScheduleUpdateOne) SetUpdatedAt(v time.Time) *DoctorScheduleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorScheduleUpdateOne) SetDoctorID(v uuid.UUID) *DoctorScheduleUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorScheduleUpdateOne) SetNillableDoctorID(v *uuid.UUID) *DoctorScheduleUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *DoctorScheduleUpdateOne) SetStartHour(v int) *DoctorScheduleUpdateOne {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *DoctorScheduleUpdateOne) SetNillableStartHour(v *int) *DoctorScheduleUpdateOne {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *DoctorScheduleUpdateOne) AddStartHour(v int) *DoctorScheduleUpdateOne {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetEndHour sets the "end_hour" field.
func (_u *DoctorScheduleUpdateOne) SetEndHour(v int) *DoctorScheduleUpdateOne {
	_u.mutation.ResetEndHour()
	_u.mutation.SetEndHour(v)
	return _u
}

// SetNillableEndHour sets the "end_hour" field if the given value is not nil.
func (_u *DoctorScheduleUpdateOne) SetNillableEndHour(v *int) *DoctorScheduleUpdateOne {
	if v != nil {
		_u.SetEndHour(*v)
	}
	return _u
}

// AddEndHour adds value to the "end_hour" field.
func (_u *DoctorScheduleUpdateOne) AddEndHour(v int) *DoctorScheduleUpdateOne {
	_u.mutation.AddEndHour(v)
	return _u
}

// Mutation returns the DoctorScheduleMutation object of the builder.
func (_u *DoctorScheduleUpdateOne) Mutation() *DoctorScheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoctorScheduleUpdate builder.
func (_u *DoctorScheduleUpdateOne) Where(ps ...predicate.DoctorSchedule) *DoctorScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorScheduleUpdateOne) Select(field string, fields ...string) *DoctorScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoctorSchedule entity.
func (_u *DoctorScheduleUpdateOne) Save(ctx context.Context) (*DoctorSchedule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorScheduleUpdateOne) SaveX(ctx context.Context) *DoctorSchedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorScheduleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorScheduleUpdateOne) check() error {
	if v, ok := _u.mutation.StartHour(); ok {
		if err := doctorschedule.StartHourValidator(v); err != nil {
			return &ValidationError{Name: "start_hour", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.start_hour": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndHour(); ok {
		if err := doctorschedule.EndHourValidator(v); err != nil {
			return &ValidationError{Name: "end_hour", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.end_hour": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorScheduleUpdateOne) sqlSave(ctx context.Context) (_node *DoctorSchedule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorschedule.Table, doctorschedule.Columns, sqlgraph.NewFieldSpec(doctorschedule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DoctorSchedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctorschedule.FieldID)
		for _, f := range fields {
			if !doctorschedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctorschedule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(doctorschedule.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(doctorschedule.FieldStartHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(doctorschedule.FieldStartHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndHour(); ok {
		_spec.SetField(doctorschedule.FieldEndHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndHour(); ok {
		_spec.AddField(doctorschedule.FieldEndHour, field.TypeInt, value)
	}
	_node = &DoctorSchedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
