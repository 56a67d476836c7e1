// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Francis1918/citamed_backend/internal/repo/doctorschedule"
	"github.com/google/uuid"
)

// DoctorScheduleCreate is the builder for creating a DoctorSchedule entity.
type DoctorScheduleCreate struct {
	config
	mutation *DoctorScheduleMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorScheduleCreate) SetCreatedAt(v time.Time) *DoctorScheduleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorScheduleCreate) SetNillableCreatedAt(v *time.Time) *DoctorScheduleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorScheduleCreate) SetUpdatedAt(v time.Time) *DoctorScheduleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorScheduleCreate) SetNillableUpdatedAt(v *time.Time) *DoctorScheduleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *DoctorScheduleCreate) SetDoctorID(v uuid.UUID) *DoctorScheduleCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetStartHour sets the "start_hour" field.
func (_c *DoctorScheduleCreate) SetStartHour(v int) *DoctorScheduleCreate {
	_c.mutation.SetStartHour(v)
	return _c
}

// SetEndHour sets the "end_hour" field.
func (_c *DoctorScheduleCreate) SetEndHour(v int) *DoctorScheduleCreate {
	_c.mutation.SetEndHour(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorScheduleCreate) SetID(v uuid.UUID) *DoctorScheduleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorScheduleCreate) SetNillableID(v *uuid.UUID) *DoctorScheduleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DoctorScheduleMutation object of the builder.
func (_c *DoctorScheduleCreate) Mutation() *DoctorScheduleMutation {
	return _c.mutation
}

// Save creates the DoctorSchedule in the database.
func (_c *DoctorScheduleCreate) Save(ctx context.Context) (*DoctorSchedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorScheduleCreate) SaveX(ctx context.Context) *DoctorSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorScheduleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctorschedule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctorschedule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctorschedule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorScheduleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DoctorSchedule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DoctorSchedule.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "DoctorSchedule.doctor_id"`)}
	}
	if _, ok := _c.mutation.StartHour(); !ok {
		return &ValidationError{Name: "start_hour", err: errors.New(`repo: missing required field "DoctorSchedule.start_hour"`)}
	}
	if v, ok := _c.mutation.StartHour(); ok {
		if err := doctorschedule.StartHourValidator(v); err != nil {
			return &ValidationError{Name: "start_hour", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.start_hour": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndHour(); !ok {
		return &ValidationError{Name: "end_hour", err: errors.New(`repo: missing required field "DoctorSchedule.end_hour"`)}
	}
	if v, ok := _c.mutation.EndHour(); ok {
		if err := doctorschedule.EndHourValidator(v); err != nil {
			return &ValidationError{Name: "end_hour", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.end_hour": %w`, err)}
		}
	}
	return nil
}

func (_c *DoctorScheduleCreate) sqlSave(ctx context.Context) (*DoctorSchedule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DoctorScheduleCreate) createSpec() (*DoctorSchedule, *sqlgraph.CreateSpec) {
	var (
		_node = &DoctorSchedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctorschedule.Table, sqlgraph.NewFieldSpec(doctorschedule.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctorschedule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorschedule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(doctorschedule.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.StartHour(); ok {
		_spec.SetField(doctorschedule.FieldStartHour, field.TypeInt, value)
		_node.StartHour = value
	}
	if value, ok := _c.mutation.EndHour(); ok {
		_spec.SetField(doctorschedule.FieldEndHour, field.TypeInt, value)
		_node.EndHour = value
	}
	return _node, _spec
}

// DoctorScheduleCreateBulk is the builder for creating many DoctorSchedule entities in bulk.
type DoctorScheduleCreateBulk struct {
	config
	err      error
	builders []*DoctorScheduleCreate
}

// Save creates the DoctorSchedule entities in the database.
func (_c *DoctorScheduleCreateBulk) Save(ctx context.Context) ([]*DoctorSchedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DoctorSchedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorScheduleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DoctorScheduleCreateBulk) SaveX(ctx context.Context) []*DoctorSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
