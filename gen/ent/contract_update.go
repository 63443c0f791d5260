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
	"github.com/zhenweng/contract-parser/gen/ent/contract"
	"github.com/zhenweng/contract-parser/gen/ent/documentfile"
	"github.com/zhenweng/contract-parser/gen/ent/predicate"
	"github.com/zhenweng/contract-parser/gen/ent/project"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ContractUpdate) SetProjectID(v uuid.UUID) *ContractUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableProjectID(v *uuid.UUID) *ContractUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetContractNumber sets the "contract_number" field.
func (_u *ContractUpdate) SetContractNumber(v string) *ContractUpdate {
	_u.mutation.SetContractNumber(v)
	return _u
}

// SetNillableContractNumber sets the "contract_number" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableContractNumber(v *string) *ContractUpdate {
	if v != nil {
		_u.SetContractNumber(*v)
	}
	return _u
}

// ClearContractNumber clears the value of the "contract_number" field.
func (_u *ContractUpdate) ClearContractNumber() *ContractUpdate {
	_u.mutation.ClearContractNumber()
	return _u
}

// SetContractName sets the "contract_name" field.
func (_u *ContractUpdate) SetContractName(v string) *ContractUpdate {
	_u.mutation.SetContractName(v)
	return _u
}

// SetNillableContractName sets the "contract_name" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableContractName(v *string) *ContractUpdate {
	if v != nil {
		_u.SetContractName(*v)
	}
	return _u
}

// ClearContractName clears the value of the "contract_name" field.
func (_u *ContractUpdate) ClearContractName() *ContractUpdate {
	_u.mutation.ClearContractName()
	return _u
}

// SetPartyA sets the "party_a" field.
func (_u *ContractUpdate) SetPartyA(v string) *ContractUpdate {
	_u.mutation.SetPartyA(v)
	return _u
}

// SetNillablePartyA sets the "party_a" field if the given value is not nil.
func (_u *ContractUpdate) SetNillablePartyA(v *string) *ContractUpdate {
	if v != nil {
		_u.SetPartyA(*v)
	}
	return _u
}

// ClearPartyA clears the value of the "party_a" field.
func (_u *ContractUpdate) ClearPartyA() *ContractUpdate {
	_u.mutation.ClearPartyA()
	return _u
}

// SetPartyB sets the "party_b" field.
func (_u *ContractUpdate) SetPartyB(v string) *ContractUpdate {
	_u.mutation.SetPartyB(v)
	return _u
}

// SetNillablePartyB sets the "party_b" field if the given value is not nil.
func (_u *ContractUpdate) SetNillablePartyB(v *string) *ContractUpdate {
	if v != nil {
		_u.SetPartyB(*v)
	}
	return _u
}

// ClearPartyB clears the value of the "party_b" field.
func (_u *ContractUpdate) ClearPartyB() *ContractUpdate {
	_u.mutation.ClearPartyB()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ContractUpdate) SetAmount(v float64) *ContractUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableAmount(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ContractUpdate) AddAmount(v float64) *ContractUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *ContractUpdate) ClearAmount() *ContractUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetSignDate sets the "sign_date" field.
func (_u *ContractUpdate) SetSignDate(v time.Time) *ContractUpdate {
	_u.mutation.SetSignDate(v)
	return _u
}

// SetNillableSignDate sets the "sign_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableSignDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetSignDate(*v)
	}
	return _u
}

// ClearSignDate clears the value of the "sign_date" field.
func (_u *ContractUpdate) ClearSignDate() *ContractUpdate {
	_u.mutation.ClearSignDate()
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *ContractUpdate) SetEffectiveDate(v time.Time) *ContractUpdate {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableEffectiveDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *ContractUpdate) ClearEffectiveDate() *ContractUpdate {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *ContractUpdate) SetExpiryDate(v time.Time) *ContractUpdate {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableExpiryDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *ContractUpdate) ClearExpiryDate() *ContractUpdate {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ContractUpdate) SetFilePath(v string) *ContractUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableFilePath(v *string) *ContractUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *ContractUpdate) ClearFilePath() *ContractUpdate {
	_u.mutation.ClearFilePath()
	return _u
}

// SetParsedData sets the "parsed_data" field.
func (_u *ContractUpdate) SetParsedData(v json.RawMessage) *ContractUpdate {
	_u.mutation.SetParsedData(v)
	return _u
}

// AppendParsedData appends value to the "parsed_data" field.
func (_u *ContractUpdate) AppendParsedData(v json.RawMessage) *ContractUpdate {
	_u.mutation.AppendParsedData(v)
	return _u
}

// ClearParsedData clears the value of the "parsed_data" field.
func (_u *ContractUpdate) ClearParsedData() *ContractUpdate {
	_u.mutation.ClearParsedData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdate) SetCreatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCreatedAt(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdate) SetUpdatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ContractUpdate) SetProject(v *Project) *ContractUpdate {
	return _u.SetProjectID(v.ID)
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by IDs.
func (_u *ContractUpdate) AddFileIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the DocumentFile entity.
func (_u *ContractUpdate) AddFiles(v ...*DocumentFile) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ContractUpdate) ClearProject() *ContractUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearFiles clears all "files" edges to the DocumentFile entity.
func (_u *ContractUpdate) ClearFiles() *ContractUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to DocumentFile entities by IDs.
func (_u *ContractUpdate) RemoveFileIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to DocumentFile entities.
func (_u *ContractUpdate) RemoveFiles(v ...*DocumentFile) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contract.project"`)
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContractNumber(); ok {
		_spec.SetField(contract.FieldContractNumber, field.TypeString, value)
	}
	if _u.mutation.ContractNumberCleared() {
		_spec.ClearField(contract.FieldContractNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ContractName(); ok {
		_spec.SetField(contract.FieldContractName, field.TypeString, value)
	}
	if _u.mutation.ContractNameCleared() {
		_spec.ClearField(contract.FieldContractName, field.TypeString)
	}
	if value, ok := _u.mutation.PartyA(); ok {
		_spec.SetField(contract.FieldPartyA, field.TypeString, value)
	}
	if _u.mutation.PartyACleared() {
		_spec.ClearField(contract.FieldPartyA, field.TypeString)
	}
	if value, ok := _u.mutation.PartyB(); ok {
		_spec.SetField(contract.FieldPartyB, field.TypeString, value)
	}
	if _u.mutation.PartyBCleared() {
		_spec.ClearField(contract.FieldPartyB, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(contract.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(contract.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(contract.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SignDate(); ok {
		_spec.SetField(contract.FieldSignDate, field.TypeTime, value)
	}
	if _u.mutation.SignDateCleared() {
		_spec.ClearField(contract.FieldSignDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(contract.FieldEffectiveDate, field.TypeTime, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(contract.FieldEffectiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(contract.FieldExpiryDate, field.TypeTime, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(contract.FieldExpiryDate, field.TypeTime)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(contract.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(contract.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedData(); ok {
		_spec.SetField(contract.FieldParsedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParsedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldParsedData, value)
		})
	}
	if _u.mutation.ParsedDataCleared() {
		_spec.ClearField(contract.FieldParsedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.ProjectTable,
			Columns: []string{contract.ProjectColumn},
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
			Table:   contract.ProjectTable,
			Columns: []string{contract.ProjectColumn},
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
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.FilesTable,
			Columns: []string{contract.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.FilesTable,
			Columns: []string{contract.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.FilesTable,
			Columns: []string{contract.FilesColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ContractUpdateOne) SetProjectID(v uuid.UUID) *ContractUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableProjectID(v *uuid.UUID) *ContractUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetContractNumber sets the "contract_number" field.
func (_u *ContractUpdateOne) SetContractNumber(v string) *ContractUpdateOne {
	_u.mutation.SetContractNumber(v)
	return _u
}

// SetNillableContractNumber sets the "contract_number" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableContractNumber(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetContractNumber(*v)
	}
	return _u
}

// ClearContractNumber clears the value of the "contract_number" field.
func (_u *ContractUpdateOne) ClearContractNumber() *ContractUpdateOne {
	_u.mutation.ClearContractNumber()
	return _u
}

// SetContractName sets the "contract_name" field.
func (_u *ContractUpdateOne) SetContractName(v string) *ContractUpdateOne {
	_u.mutation.SetContractName(v)
	return _u
}

// SetNillableContractName sets the "contract_name" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableContractName(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetContractName(*v)
	}
	return _u
}

// ClearContractName clears the value of the "contract_name" field.
func (_u *ContractUpdateOne) ClearContractName() *ContractUpdateOne {
	_u.mutation.ClearContractName()
	return _u
}

// SetPartyA sets the "party_a" field.
func (_u *ContractUpdateOne) SetPartyA(v string) *ContractUpdateOne {
	_u.mutation.SetPartyA(v)
	return _u
}

// SetNillablePartyA sets the "party_a" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillablePartyA(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetPartyA(*v)
	}
	return _u
}

// ClearPartyA clears the value of the "party_a" field.
func (_u *ContractUpdateOne) ClearPartyA() *ContractUpdateOne {
	_u.mutation.ClearPartyA()
	return _u
}

// SetPartyB sets the "party_b" field.
func (_u *ContractUpdateOne) SetPartyB(v string) *ContractUpdateOne {
	_u.mutation.SetPartyB(v)
	return _u
}

// SetNillablePartyB sets the "party_b" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillablePartyB(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetPartyB(*v)
	}
	return _u
}

// ClearPartyB clears the value of the "party_b" field.
func (_u *ContractUpdateOne) ClearPartyB() *ContractUpdateOne {
	_u.mutation.ClearPartyB()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ContractUpdateOne) SetAmount(v float64) *ContractUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableAmount(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ContractUpdateOne) AddAmount(v float64) *ContractUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *ContractUpdateOne) ClearAmount() *ContractUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetSignDate sets the "sign_date" field.
func (_u *ContractUpdateOne) SetSignDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetSignDate(v)
	return _u
}

// SetNillableSignDate sets the "sign_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableSignDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetSignDate(*v)
	}
	return _u
}

// ClearSignDate clears the value of the "sign_date" field.
func (_u *ContractUpdateOne) ClearSignDate() *ContractUpdateOne {
	_u.mutation.ClearSignDate()
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *ContractUpdateOne) SetEffectiveDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableEffectiveDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *ContractUpdateOne) ClearEffectiveDate() *ContractUpdateOne {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *ContractUpdateOne) SetExpiryDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableExpiryDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *ContractUpdateOne) ClearExpiryDate() *ContractUpdateOne {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ContractUpdateOne) SetFilePath(v string) *ContractUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableFilePath(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *ContractUpdateOne) ClearFilePath() *ContractUpdateOne {
	_u.mutation.ClearFilePath()
	return _u
}

// SetParsedData sets the "parsed_data" field.
func (_u *ContractUpdateOne) SetParsedData(v json.RawMessage) *ContractUpdateOne {
	_u.mutation.SetParsedData(v)
	return _u
}

// AppendParsedData appends value to the "parsed_data" field.
func (_u *ContractUpdateOne) AppendParsedData(v json.RawMessage) *ContractUpdateOne {
	_u.mutation.AppendParsedData(v)
	return _u
}

// ClearParsedData clears the value of the "parsed_data" field.
func (_u *ContractUpdateOne) ClearParsedData() *ContractUpdateOne {
	_u.mutation.ClearParsedData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdateOne) SetCreatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCreatedAt(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdateOne) SetUpdatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ContractUpdateOne) SetProject(v *Project) *ContractUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by IDs.
func (_u *ContractUpdateOne) AddFileIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the DocumentFile entity.
func (_u *ContractUpdateOne) AddFiles(v ...*DocumentFile) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ContractUpdateOne) ClearProject() *ContractUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearFiles clears all "files" edges to the DocumentFile entity.
func (_u *ContractUpdateOne) ClearFiles() *ContractUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to DocumentFile entities by IDs.
func (_u *ContractUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to DocumentFile entities.
func (_u *ContractUpdateOne) RemoveFiles(v ...*DocumentFile) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contract.project"`)
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
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
	if value, ok := _u.mutation.ContractNumber(); ok {
		_spec.SetField(contract.FieldContractNumber, field.TypeString, value)
	}
	if _u.mutation.ContractNumberCleared() {
		_spec.ClearField(contract.FieldContractNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ContractName(); ok {
		_spec.SetField(contract.FieldContractName, field.TypeString, value)
	}
	if _u.mutation.ContractNameCleared() {
		_spec.ClearField(contract.FieldContractName, field.TypeString)
	}
	if value, ok := _u.mutation.PartyA(); ok {
		_spec.SetField(contract.FieldPartyA, field.TypeString, value)
	}
	if _u.mutation.PartyACleared() {
		_spec.ClearField(contract.FieldPartyA, field.TypeString)
	}
	if value, ok := _u.mutation.PartyB(); ok {
		_spec.SetField(contract.FieldPartyB, field.TypeString, value)
	}
	if _u.mutation.PartyBCleared() {
		_spec.ClearField(contract.FieldPartyB, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(contract.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(contract.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(contract.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SignDate(); ok {
		_spec.SetField(contract.FieldSignDate, field.TypeTime, value)
	}
	if _u.mutation.SignDateCleared() {
		_spec.ClearField(contract.FieldSignDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(contract.FieldEffectiveDate, field.TypeTime, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(contract.FieldEffectiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(contract.FieldExpiryDate, field.TypeTime, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(contract.FieldExpiryDate, field.TypeTime)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(contract.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(contract.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedData(); ok {
		_spec.SetField(contract.FieldParsedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParsedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldParsedData, value)
		})
	}
	if _u.mutation.ParsedDataCleared() {
		_spec.ClearField(contract.FieldParsedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.ProjectTable,
			Columns: []string{contract.ProjectColumn},
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
			Table:   contract.ProjectTable,
			Columns: []string{contract.ProjectColumn},
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
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.FilesTable,
			Columns: []string{contract.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.FilesTable,
			Columns: []string{contract.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.FilesTable,
			Columns: []string{contract.FilesColumn},
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
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
