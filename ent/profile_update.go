// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/keiaapp/keia/ent/predicate"
	"github.com/keiaapp/keia/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdate) SetEmail(v string) *ProfileUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableEmail(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *ProfileUpdate) SetUsername(v string) *ProfileUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableUsername(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProfileUpdate) SetLevel(v string) *ProfileUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLevel(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *ProfileUpdate) SetXp(v int) *ProfileUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableXp(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *ProfileUpdate) AddXp(v int) *ProfileUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ProfileUpdate) SetStreak(v int) *ProfileUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableStreak(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ProfileUpdate) AddStreak(v int) *ProfileUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetSkills sets the "skills" field.
func (_u *ProfileUpdate) SetSkills(v map[string]int) *ProfileUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *ProfileUpdate) ClearSkills() *ProfileUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// SetLastTestDate sets the "last_test_date" field.
func (_u *ProfileUpdate) SetLastTestDate(v time.Time) *ProfileUpdate {
	_u.mutation.SetLastTestDate(v)
	return _u
}

// SetNillableLastTestDate sets the "last_test_date" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLastTestDate(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetLastTestDate(*v)
	}
	return _u
}

// ClearLastTestDate clears the value of the "last_test_date" field.
func (_u *ProfileUpdate) ClearLastTestDate() *ProfileUpdate {
	_u.mutation.ClearLastTestDate()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.Xp(); ok {
		if err := profile.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "Profile.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := profile.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Profile.streak": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(profile.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(profile.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(profile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(profile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(profile.FieldSkills, field.TypeJSON, value)
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(profile.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastTestDate(); ok {
		_spec.SetField(profile.FieldLastTestDate, field.TypeTime, value)
	}
	if _u.mutation.LastTestDateCleared() {
		_spec.ClearField(profile.FieldLastTestDate, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdateOne) SetEmail(v string) *ProfileUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableEmail(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *ProfileUpdateOne) SetUsername(v string) *ProfileUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableUsername(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProfileUpdateOne) SetLevel(v string) *ProfileUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLevel(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *ProfileUpdateOne) SetXp(v int) *ProfileUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableXp(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *ProfileUpdateOne) AddXp(v int) *ProfileUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ProfileUpdateOne) SetStreak(v int) *ProfileUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableStreak(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ProfileUpdateOne) AddStreak(v int) *ProfileUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetSkills sets the "skills" field.
func (_u *ProfileUpdateOne) SetSkills(v map[string]int) *ProfileUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *ProfileUpdateOne) ClearSkills() *ProfileUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// SetLastTestDate sets the "last_test_date" field.
func (_u *ProfileUpdateOne) SetLastTestDate(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetLastTestDate(v)
	return _u
}

// SetNillableLastTestDate sets the "last_test_date" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLastTestDate(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetLastTestDate(*v)
	}
	return _u
}

// ClearLastTestDate clears the value of the "last_test_date" field.
func (_u *ProfileUpdateOne) ClearLastTestDate() *ProfileUpdateOne {
	_u.mutation.ClearLastTestDate()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Xp(); ok {
		if err := profile.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "Profile.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := profile.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Profile.streak": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(profile.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(profile.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(profile.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(profile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(profile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(profile.FieldSkills, field.TypeJSON, value)
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(profile.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastTestDate(); ok {
		_spec.SetField(profile.FieldLastTestDate, field.TypeTime, value)
	}
	if _u.mutation.LastTestDateCleared() {
		_spec.ClearField(profile.FieldLastTestDate, field.TypeTime)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
