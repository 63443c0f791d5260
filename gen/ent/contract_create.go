// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/zhenweng/contract-parser/gen/ent/contract"
	"github.com/zhenweng/contract-parser/gen/ent/documentfile"
	"github.com/zhenweng/contract-parser/gen/ent/project"
)

// ContractCreate is the builder for creating a Contract entity.
type ContractCreate struct {
	config
	mutation *ContractMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *ContractCreate) SetProjectID(v uuid.UUID) *ContractCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetContractNumber sets the "contract_number" field.
func (_c *ContractCreate) SetContractNumber(v string) *ContractCreate {
	_c.mutation.SetContractNumber(v)
	return _c
}

// SetNillableContractNumber sets the "contract_number" field if the given value is not nil.
func (_c *ContractCreate) SetNillableContractNumber(v *string) *ContractCreate {
	if v != nil {
		_c.SetContractNumber(*v)
	}
	return _c
}

// SetContractName sets the "contract_name" field.
func (_c *ContractCreate) SetContractName(v string) *ContractCreate {
	_c.mutation.SetContractName(v)
	return _c
}

// SetNillableContractName sets the "contract_name" field if the given value is not nil.
func (_c *ContractCreate) SetNillableContractName(v *string) *ContractCreate {
	if v != nil {
		_c.SetContractName(*v)
	}
	return _c
}

// SetPartyA sets the "party_a" field.
func (_c *ContractCreate) SetPartyA(v string) *ContractCreate {
	_c.mutation.SetPartyA(v)
	return _c
}

// SetNillablePartyA sets the "party_a" field if the given value is not nil.
func (_c *ContractCreate) SetNillablePartyA(v *string) *ContractCreate {
	if v != nil {
		_c.SetPartyA(*v)
	}
	return _c
}

// SetPartyB sets the "party_b" field.
func (_c *ContractCreate) SetPartyB(v string) *ContractCreate {
	_c.mutation.SetPartyB(v)
	return _c
}

// SetNillablePartyB sets the "party_b" field if the given value is not nil.
func (_c *ContractCreate) SetNillablePartyB(v *string) *ContractCreate {
	if v != nil {
		_c.SetPartyB(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ContractCreate) SetAmount(v float64) *ContractCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *ContractCreate) SetNillableAmount(v *float64) *ContractCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetSignDate sets the "sign_date" field.
func (_c *ContractCreate) SetSignDate(v time.Time) *ContractCreate {
	_c.mutation.SetSignDate(v)
	return _c
}

// SetNillableSignDate sets the "sign_date" field if the given value is not nil.
func (_c *ContractCreate) SetNillableSignDate(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetSignDate(*v)
	}
	return _c
}

// SetEffectiveDate sets the "effective_date" field.
func (_c *ContractCreate) SetEffectiveDate(v time.Time) *ContractCreate {
	_c.mutation.SetEffectiveDate(v)
	return _c
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_c *ContractCreate) SetNillableEffectiveDate(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetEffectiveDate(*v)
	}
	return _c
}

// SetExpiryDate sets the "expiry_date" field.
func (_c *ContractCreate) SetExpiryDate(v time.Time) *ContractCreate {
	_c.mutation.SetExpiryDate(v)
	return _c
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_c *ContractCreate) SetNillableExpiryDate(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetExpiryDate(*v)
	}
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *ContractCreate) SetFilePath(v string) *ContractCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_c *ContractCreate) SetNillableFilePath(v *string) *ContractCreate {
	if v != nil {
		_c.SetFilePath(*v)
	}
	return _c
}

// SetParsedData sets the "parsed_data" field.
func (_c *ContractCreate) SetParsedData(v json.RawMessage) *ContractCreate {
	_c.mutation.SetParsedData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContractCreate) SetCreatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCreatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContractCreate) SetUpdatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableUpdatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContractCreate) SetID(v uuid.UUID) *ContractCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableID(v *uuid.UUID) *ContractCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ContractCreate) SetProject(v *Project) *ContractCreate {
	return _c.SetProjectID(v.ID)
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by IDs.
func (_c *ContractCreate) AddFileIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the DocumentFile entity.
func (_c *ContractCreate) AddFiles(v ...*DocumentFile) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_c *ContractCreate) Mutation() *ContractMutation {
	return _c.mutation
}

// Save creates the Contract in the database.
func (_c *ContractCreate) Save(ctx context.Context) (*Contract, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractCreate) SaveX(ctx context.Context) *Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contract.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contract.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contract.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Contract.project_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contract.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contract.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Contract.project"`)}
	}
	return nil
}

func (_c *ContractCreate) sqlSave(ctx context.Context) (*Contract, error) {
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

func (_c *ContractCreate) createSpec() (*Contract, *sqlgraph.CreateSpec) {
	var (
		_node = &Contract{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contract.Table, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ContractNumber(); ok {
		_spec.SetField(contract.FieldContractNumber, field.TypeString, value)
		_node.ContractNumber = &value
	}
	if value, ok := _c.mutation.ContractName(); ok {
		_spec.SetField(contract.FieldContractName, field.TypeString, value)
		_node.ContractName = &value
	}
	if value, ok := _c.mutation.PartyA(); ok {
		_spec.SetField(contract.FieldPartyA, field.TypeString, value)
		_node.PartyA = &value
	}
	if value, ok := _c.mutation.PartyB(); ok {
		_spec.SetField(contract.FieldPartyB, field.TypeString, value)
		_node.PartyB = &value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(contract.FieldAmount, field.TypeFloat64, value)
		_node.Amount = &value
	}
	if value, ok := _c.mutation.SignDate(); ok {
		_spec.SetField(contract.FieldSignDate, field.TypeTime, value)
		_node.SignDate = &value
	}
	if value, ok := _c.mutation.EffectiveDate(); ok {
		_spec.SetField(contract.FieldEffectiveDate, field.TypeTime, value)
		_node.EffectiveDate = &value
	}
	if value, ok := _c.mutation.ExpiryDate(); ok {
		_spec.SetField(contract.FieldExpiryDate, field.TypeTime, value)
		_node.ExpiryDate = &value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(contract.FieldFilePath, field.TypeString, value)
		_node.FilePath = &value
	}
	if value, ok := _c.mutation.ParsedData(); ok {
		_spec.SetField(contract.FieldParsedData, field.TypeJSON, value)
		_node.ParsedData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContractCreateBulk is the builder for creating many Contract entities in bulk.
type ContractCreateBulk struct {
	config
	err      error
	builders []*ContractCreate
}

// Save creates the Contract entities in the database.
func (_c *ContractCreateBulk) Save(ctx context.Context) ([]*Contract, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contract, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractMutation)
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
func (_c *ContractCreateBulk) SaveX(ctx context.Context) []*Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
