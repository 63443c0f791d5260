// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/zhenweng/contract-parser/gen/ent/documentfile"
	"github.com/zhenweng/contract-parser/gen/ent/parsejob"
	"github.com/zhenweng/contract-parser/gen/ent/predicate"
	"github.com/zhenweng/contract-parser/gen/ent/project"
)

// ParseJobUpdate is the builder for updating ParseJob entities.
type ParseJobUpdate struct {
	config
	hooks    []Hook
	mutation *ParseJobMutation
}

// Where appends a list predicates to the ParseJobUpdate builder.
func (_u *ParseJobUpdate) Where(ps ...predicate.ParseJob) *ParseJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *ParseJobUpdate) SetFileID(v uuid.UUID) *ParseJobUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableFileID(v *uuid.UUID) *ParseJobUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ParseJobUpdate) SetProjectID(v uuid.UUID) *ParseJobUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableProjectID(v *uuid.UUID) *ParseJobUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ParseJobUpdate) SetKind(v string) *ParseJobUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableKind(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ParseJobUpdate) SetFormat(v string) *ParseJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableFormat(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ParseJobUpdate) SetStartedAt(v time.Time) *ParseJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableStartedAt(v *time.Time) *ParseJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ParseJobUpdate) SetFinishedAt(v time.Time) *ParseJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableFinishedAt(v *time.Time) *ParseJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ParseJobUpdate) ClearFinishedAt() *ParseJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParseJobUpdate) SetStatus(v string) *ParseJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableStatus(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ParseJobUpdate) SetErrorMessage(v string) *ParseJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableErrorMessage(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ParseJobUpdate) ClearErrorMessage() *ParseJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetParseStatus sets the "parse_status" field.
func (_u *ParseJobUpdate) SetParseStatus(v string) *ParseJobUpdate {
	_u.mutation.SetParseStatus(v)
	return _u
}

// SetNillableParseStatus sets the "parse_status" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableParseStatus(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetParseStatus(*v)
	}
	return _u
}

// ClearParseStatus clears the value of the "parse_status" field.
func (_u *ParseJobUpdate) ClearParseStatus() *ParseJobUpdate {
	_u.mutation.ClearParseStatus()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ParseJobUpdate) SetNeedsReview(v bool) *ParseJobUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableNeedsReview(v *bool) *ParseJobUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ParseJobUpdate) SetRawText(v string) *ParseJobUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableRawText(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ParseJobUpdate) ClearRawText() *ParseJobUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *ParseJobUpdate) SetResultJSON(v json.RawMessage) *ParseJobUpdate {
	_u.mutation.SetResultJSON(v)
	return _u
}

// AppendResultJSON appends value to the "result_json" field.
func (_u *ParseJobUpdate) AppendResultJSON(v json.RawMessage) *ParseJobUpdate {
	_u.mutation.AppendResultJSON(v)
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *ParseJobUpdate) ClearResultJSON() *ParseJobUpdate {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetFile sets the "file" edge to the DocumentFile entity.
func (_u *ParseJobUpdate) SetFile(v *DocumentFile) *ParseJobUpdate {
	return _u.SetFileID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ParseJobUpdate) SetProject(v *Project) *ParseJobUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ParseJobMutation object of the builder.
func (_u *ParseJobUpdate) Mutation() *ParseJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the DocumentFile entity.
func (_u *ParseJobUpdate) ClearFile() *ParseJobUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ParseJobUpdate) ClearProject() *ParseJobUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParseJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParseJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseJobUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := parsejob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ParseJob.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := parsejob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ParseJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := parsejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ParseJob.status": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseJob.file"`)
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseJob.project"`)
	}
	return nil
}

func (_u *ParseJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parsejob.Table, parsejob.Columns, sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(parsejob.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(parsejob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(parsejob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(parsejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(parsejob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(parsejob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(parsejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(parsejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ParseStatus(); ok {
		_spec.SetField(parsejob.FieldParseStatus, field.TypeString, value)
	}
	if _u.mutation.ParseStatusCleared() {
		_spec.ClearField(parsejob.FieldParseStatus, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(parsejob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(parsejob.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(parsejob.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(parsejob.FieldResultJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parsejob.FieldResultJSON, value)
		})
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(parsejob.FieldResultJSON, field.TypeJSON)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.FileTable,
			Columns: []string{parsejob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.FileTable,
			Columns: []string{parsejob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.ProjectTable,
			Columns: []string{parsejob.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.ProjectTable,
			Columns: []string{parsejob.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parsejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParseJobUpdateOne is the builder for updating a single ParseJob entity.
type ParseJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParseJobMutation
}

// SetFileID sets the "file_id" field.
func (_u *ParseJobUpdateOne) SetFileID(v uuid.UUID) *ParseJobUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableFileID(v *uuid.UUID) *ParseJobUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ParseJobUpdateOne) SetProjectID(v uuid.UUID) *ParseJobUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableProjectID(v *uuid.UUID) *ParseJobUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ParseJobUpdateOne) SetKind(v string) *ParseJobUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableKind(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ParseJobUpdateOne) SetFormat(v string) *ParseJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableFormat(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ParseJobUpdateOne) SetStartedAt(v time.Time) *ParseJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableStartedAt(v *time.Time) *ParseJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ParseJobUpdateOne) SetFinishedAt(v time.Time) *ParseJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ParseJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ParseJobUpdateOne) ClearFinishedAt() *ParseJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParseJobUpdateOne) SetStatus(v string) *ParseJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableStatus(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ParseJobUpdateOne) SetErrorMessage(v string) *ParseJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableErrorMessage(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ParseJobUpdateOne) ClearErrorMessage() *ParseJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetParseStatus sets the "parse_status" field.
func (_u *ParseJobUpdateOne) SetParseStatus(v string) *ParseJobUpdateOne {
	_u.mutation.SetParseStatus(v)
	return _u
}

// SetNillableParseStatus sets the "parse_status" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableParseStatus(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetParseStatus(*v)
	}
	return _u
}

// ClearParseStatus clears the value of the "parse_status" field.
func (_u *ParseJobUpdateOne) ClearParseStatus() *ParseJobUpdateOne {
	_u.mutation.ClearParseStatus()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ParseJobUpdateOne) SetNeedsReview(v bool) *ParseJobUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableNeedsReview(v *bool) *ParseJobUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ParseJobUpdateOne) SetRawText(v string) *ParseJobUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableRawText(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ParseJobUpdateOne) ClearRawText() *ParseJobUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *ParseJobUpdateOne) SetResultJSON(v json.RawMessage) *ParseJobUpdateOne {
	_u.mutation.SetResultJSON(v)
	return _u
}

// AppendResultJSON appends value to the "result_json" field.
func (_u *ParseJobUpdateOne) AppendResultJSON(v json.RawMessage) *ParseJobUpdateOne {
	_u.mutation.AppendResultJSON(v)
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *ParseJobUpdateOne) ClearResultJSON() *ParseJobUpdateOne {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetFile sets the "file" edge to the DocumentFile entity.
func (_u *ParseJobUpdateOne) SetFile(v *DocumentFile) *ParseJobUpdateOne {
	return _u.SetFileID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ParseJobUpdateOne) SetProject(v *Project) *ParseJobUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ParseJobMutation object of the builder.
func (_u *ParseJobUpdateOne) Mutation() *ParseJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the DocumentFile entity.
func (_u *ParseJobUpdateOne) ClearFile() *ParseJobUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ParseJobUpdateOne) ClearProject() *ParseJobUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the ParseJobUpdate builder.
func (_u *ParseJobUpdateOne) Where(ps ...predicate.ParseJob) *ParseJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParseJobUpdateOne) Select(field string, fields ...string) *ParseJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParseJob entity.
func (_u *ParseJobUpdateOne) Save(ctx context.Context) (*ParseJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseJobUpdateOne) SaveX(ctx context.Context) *ParseJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParseJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseJobUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := parsejob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ParseJob.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := parsejob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ParseJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := parsejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ParseJob.status": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseJob.file"`)
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseJob.project"`)
	}
	return nil
}

func (_u *ParseJobUpdateOne) sqlSave(ctx context.Context) (_node *ParseJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parsejob.Table, parsejob.Columns, sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParseJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parsejob.FieldID)
		for _, f := range fields {
			if !parsejob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parsejob.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(parsejob.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(parsejob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(parsejob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(parsejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(parsejob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(parsejob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(parsejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(parsejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ParseStatus(); ok {
		_spec.SetField(parsejob.FieldParseStatus, field.TypeString, value)
	}
	if _u.mutation.ParseStatusCleared() {
		_spec.ClearField(parsejob.FieldParseStatus, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(parsejob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(parsejob.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(parsejob.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(parsejob.FieldResultJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parsejob.FieldResultJSON, value)
		})
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(parsejob.FieldResultJSON, field.TypeJSON)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.FileTable,
			Columns: []string{parsejob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.FileTable,
			Columns: []string{parsejob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.ProjectTable,
			Columns: []string{parsejob.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.ProjectTable,
			Columns: []string{parsejob.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ParseJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parsejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
