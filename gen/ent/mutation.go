// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/zhenweng/contract-parser/gen/ent/contract"
	"github.com/zhenweng/contract-parser/gen/ent/documentfile"
	"github.com/zhenweng/contract-parser/gen/ent/invoice"
	"github.com/zhenweng/contract-parser/gen/ent/parsejob"
	"github.com/zhenweng/contract-parser/gen/ent/predicate"
	"github.com/zhenweng/contract-parser/gen/ent/project"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContract     = "Contract"
	TypeDocumentFile = "DocumentFile"
	TypeInvoice      = "Invoice"
	TypeParseJob     = "ParseJob"
	TypeProject      = "Project"
)

// ContractMutation represents an operation that mutates the Contract nodes in the graph.
type ContractMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	contract_number   *string
	contract_name     *string
	party_a           *string
	party_b           *string
	amount            *float64
	addamount         *float64
	sign_date         *time.Time
	effective_date    *time.Time
	expiry_date       *time.Time
	file_path         *string
	parsed_data       *json.RawMessage
	appendparsed_data json.RawMessage
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	project           *uuid.UUID
	clearedproject    bool
	files             map[uuid.UUID]struct{}
	removedfiles      map[uuid.UUID]struct{}
	clearedfiles      bool
	done              bool
	oldValue          func(context.Context) (*Contract, error)
	predicates        []predicate.Contract
}

var _ ent.Mutation = (*ContractMutation)(nil)

// contractOption allows management of the mutation configuration using functional options.
type contractOption func(*ContractMutation)

// newContractMutation creates new mutation for the Contract entity.
func newContractMutation(c config, op Op, opts ...contractOption) *ContractMutation {
	m := &ContractMutation{
		config:        c,
		op:            op,
		typ:           TypeContract,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractID sets the ID field of the mutation.
func withContractID(id uuid.UUID) contractOption {
	return func(m *ContractMutation) {
		var (
			err   error
			once  sync.Once
			value *Contract
		)
		m.oldValue = func(ctx context.Context) (*Contract, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contract.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContract sets the old Contract of the mutation.
func withContract(node *Contract) contractOption {
	return func(m *ContractMutation) {
		m.oldValue = func(context.Context) (*Contract, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contract entities.
func (m *ContractMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contract.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ContractMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ContractMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ContractMutation) ResetProjectID() {
	m.project = nil
}

// SetContractNumber sets the "contract_number" field.
func (m *ContractMutation) SetContractNumber(s string) {
	m.contract_number = &s
}

// ContractNumber returns the value of the "contract_number" field in the mutation.
func (m *ContractMutation) ContractNumber() (r string, exists bool) {
	v := m.contract_number
	if v == nil {
		return
	}
	return *v, true
}

// OldContractNumber returns the old "contract_number" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldContractNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractNumber: %w", err)
	}
	return oldValue.ContractNumber, nil
}

// ClearContractNumber clears the value of the "contract_number" field.
func (m *ContractMutation) ClearContractNumber() {
	m.contract_number = nil
	m.clearedFields[contract.FieldContractNumber] = struct{}{}
}

// ContractNumberCleared returns if the "contract_number" field was cleared in this mutation.
func (m *ContractMutation) ContractNumberCleared() bool {
	_, ok := m.clearedFields[contract.FieldContractNumber]
	return ok
}

// ResetContractNumber resets all changes to the "contract_number" field.
func (m *ContractMutation) ResetContractNumber() {
	m.contract_number = nil
	delete(m.clearedFields, contract.FieldContractNumber)
}

// SetContractName sets the "contract_name" field.
func (m *ContractMutation) SetContractName(s string) {
	m.contract_name = &s
}

// ContractName returns the value of the "contract_name" field in the mutation.
func (m *ContractMutation) ContractName() (r string, exists bool) {
	v := m.contract_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContractName returns the old "contract_name" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldContractName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractName: %w", err)
	}
	return oldValue.ContractName, nil
}

// ClearContractName clears the value of the "contract_name" field.
func (m *ContractMutation) ClearContractName() {
	m.contract_name = nil
	m.clearedFields[contract.FieldContractName] = struct{}{}
}

// ContractNameCleared returns if the "contract_name" field was cleared in this mutation.
func (m *ContractMutation) ContractNameCleared() bool {
	_, ok := m.clearedFields[contract.FieldContractName]
	return ok
}

// ResetContractName resets all changes to the "contract_name" field.
func (m *ContractMutation) ResetContractName() {
	m.contract_name = nil
	delete(m.clearedFields, contract.FieldContractName)
}

// SetPartyA sets the "party_a" field.
func (m *ContractMutation) SetPartyA(s string) {
	m.party_a = &s
}

// PartyA returns the value of the "party_a" field in the mutation.
func (m *ContractMutation) PartyA() (r string, exists bool) {
	v := m.party_a
	if v == nil {
		return
	}
	return *v, true
}

// OldPartyA returns the old "party_a" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldPartyA(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartyA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartyA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartyA: %w", err)
	}
	return oldValue.PartyA, nil
}

// ClearPartyA clears the value of the "party_a" field.
func (m *ContractMutation) ClearPartyA() {
	m.party_a = nil
	m.clearedFields[contract.FieldPartyA] = struct{}{}
}

// PartyACleared returns if the "party_a" field was cleared in this mutation.
func (m *ContractMutation) PartyACleared() bool {
	_, ok := m.clearedFields[contract.FieldPartyA]
	return ok
}

// ResetPartyA resets all changes to the "party_a" field.
func (m *ContractMutation) ResetPartyA() {
	m.party_a = nil
	delete(m.clearedFields, contract.FieldPartyA)
}

// SetPartyB sets the "party_b" field.
func (m *ContractMutation) SetPartyB(s string) {
	m.party_b = &s
}

// PartyB returns the value of the "party_b" field in the mutation.
func (m *ContractMutation) PartyB() (r string, exists bool) {
	v := m.party_b
	if v == nil {
		return
	}
	return *v, true
}

// OldPartyB returns the old "party_b" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldPartyB(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartyB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartyB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartyB: %w", err)
	}
	return oldValue.PartyB, nil
}

// ClearPartyB clears the value of the "party_b" field.
func (m *ContractMutation) ClearPartyB() {
	m.party_b = nil
	m.clearedFields[contract.FieldPartyB] = struct{}{}
}

// PartyBCleared returns if the "party_b" field was cleared in this mutation.
func (m *ContractMutation) PartyBCleared() bool {
	_, ok := m.clearedFields[contract.FieldPartyB]
	return ok
}

// ResetPartyB resets all changes to the "party_b" field.
func (m *ContractMutation) ResetPartyB() {
	m.party_b = nil
	delete(m.clearedFields, contract.FieldPartyB)
}

// SetAmount sets the "amount" field.
func (m *ContractMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *ContractMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *ContractMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *ContractMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmount clears the value of the "amount" field.
func (m *ContractMutation) ClearAmount() {
	m.amount = nil
	m.addamount = nil
	m.clearedFields[contract.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *ContractMutation) AmountCleared() bool {
	_, ok := m.clearedFields[contract.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *ContractMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
	delete(m.clearedFields, contract.FieldAmount)
}

// SetSignDate sets the "sign_date" field.
func (m *ContractMutation) SetSignDate(t time.Time) {
	m.sign_date = &t
}

// SignDate returns the value of the "sign_date" field in the mutation.
func (m *ContractMutation) SignDate() (r time.Time, exists bool) {
	v := m.sign_date
	if v == nil {
		return
	}
	return *v, true
}

// OldSignDate returns the old "sign_date" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldSignDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignDate: %w", err)
	}
	return oldValue.SignDate, nil
}

// ClearSignDate clears the value of the "sign_date" field.
func (m *ContractMutation) ClearSignDate() {
	m.sign_date = nil
	m.clearedFields[contract.FieldSignDate] = struct{}{}
}

// SignDateCleared returns if the "sign_date" field was cleared in this mutation.
func (m *ContractMutation) SignDateCleared() bool {
	_, ok := m.clearedFields[contract.FieldSignDate]
	return ok
}

// ResetSignDate resets all changes to the "sign_date" field.
func (m *ContractMutation) ResetSignDate() {
	m.sign_date = nil
	delete(m.clearedFields, contract.FieldSignDate)
}

// SetEffectiveDate sets the "effective_date" field.
func (m *ContractMutation) SetEffectiveDate(t time.Time) {
	m.effective_date = &t
}

// EffectiveDate returns the value of the "effective_date" field in the mutation.
func (m *ContractMutation) EffectiveDate() (r time.Time, exists bool) {
	v := m.effective_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveDate returns the old "effective_date" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldEffectiveDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveDate: %w", err)
	}
	return oldValue.EffectiveDate, nil
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (m *ContractMutation) ClearEffectiveDate() {
	m.effective_date = nil
	m.clearedFields[contract.FieldEffectiveDate] = struct{}{}
}

// EffectiveDateCleared returns if the "effective_date" field was cleared in this mutation.
func (m *ContractMutation) EffectiveDateCleared() bool {
	_, ok := m.clearedFields[contract.FieldEffectiveDate]
	return ok
}

// ResetEffectiveDate resets all changes to the "effective_date" field.
func (m *ContractMutation) ResetEffectiveDate() {
	m.effective_date = nil
	delete(m.clearedFields, contract.FieldEffectiveDate)
}

// SetExpiryDate sets the "expiry_date" field.
func (m *ContractMutation) SetExpiryDate(t time.Time) {
	m.expiry_date = &t
}

// ExpiryDate returns the value of the "expiry_date" field in the mutation.
func (m *ContractMutation) ExpiryDate() (r time.Time, exists bool) {
	v := m.expiry_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiryDate returns the old "expiry_date" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldExpiryDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiryDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiryDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiryDate: %w", err)
	}
	return oldValue.ExpiryDate, nil
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (m *ContractMutation) ClearExpiryDate() {
	m.expiry_date = nil
	m.clearedFields[contract.FieldExpiryDate] = struct{}{}
}

// ExpiryDateCleared returns if the "expiry_date" field was cleared in this mutation.
func (m *ContractMutation) ExpiryDateCleared() bool {
	_, ok := m.clearedFields[contract.FieldExpiryDate]
	return ok
}

// ResetExpiryDate resets all changes to the "expiry_date" field.
func (m *ContractMutation) ResetExpiryDate() {
	m.expiry_date = nil
	delete(m.clearedFields, contract.FieldExpiryDate)
}

// SetFilePath sets the "file_path" field.
func (m *ContractMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *ContractMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldFilePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ClearFilePath clears the value of the "file_path" field.
func (m *ContractMutation) ClearFilePath() {
	m.file_path = nil
	m.clearedFields[contract.FieldFilePath] = struct{}{}
}

// FilePathCleared returns if the "file_path" field was cleared in this mutation.
func (m *ContractMutation) FilePathCleared() bool {
	_, ok := m.clearedFields[contract.FieldFilePath]
	return ok
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *ContractMutation) ResetFilePath() {
	m.file_path = nil
	delete(m.clearedFields, contract.FieldFilePath)
}

// SetParsedData sets the "parsed_data" field.
func (m *ContractMutation) SetParsedData(jm json.RawMessage) {
	m.parsed_data = &jm
	m.appendparsed_data = nil
}

// ParsedData returns the value of the "parsed_data" field in the mutation.
func (m *ContractMutation) ParsedData() (r json.RawMessage, exists bool) {
	v := m.parsed_data
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedData returns the old "parsed_data" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldParsedData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedData: %w", err)
	}
	return oldValue.ParsedData, nil
}

// AppendParsedData adds jm to the "parsed_data" field.
func (m *ContractMutation) AppendParsedData(jm json.RawMessage) {
	m.appendparsed_data = append(m.appendparsed_data, jm...)
}

// AppendedParsedData returns the list of values that were appended to the "parsed_data" field in this mutation.
func (m *ContractMutation) AppendedParsedData() (json.RawMessage, bool) {
	if len(m.appendparsed_data) == 0 {
		return nil, false
	}
	return m.appendparsed_data, true
}

// ClearParsedData clears the value of the "parsed_data" field.
func (m *ContractMutation) ClearParsedData() {
	m.parsed_data = nil
	m.appendparsed_data = nil
	m.clearedFields[contract.FieldParsedData] = struct{}{}
}

// ParsedDataCleared returns if the "parsed_data" field was cleared in this mutation.
func (m *ContractMutation) ParsedDataCleared() bool {
	_, ok := m.clearedFields[contract.FieldParsedData]
	return ok
}

// ResetParsedData resets all changes to the "parsed_data" field.
func (m *ContractMutation) ResetParsedData() {
	m.parsed_data = nil
	m.appendparsed_data = nil
	delete(m.clearedFields, contract.FieldParsedData)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContractMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContractMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContractMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContractMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContractMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContractMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ContractMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[contract.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ContractMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ContractMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ContractMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by ids.
func (m *ContractMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the DocumentFile entity.
func (m *ContractMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the DocumentFile entity was cleared.
func (m *ContractMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the DocumentFile entity by IDs.
func (m *ContractMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the DocumentFile entity.
func (m *ContractMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *ContractMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *ContractMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// Where appends a list predicates to the ContractMutation builder.
func (m *ContractMutation) Where(ps ...predicate.Contract) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contract, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contract).
func (m *ContractMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.project != nil {
		fields = append(fields, contract.FieldProjectID)
	}
	if m.contract_number != nil {
		fields = append(fields, contract.FieldContractNumber)
	}
	if m.contract_name != nil {
		fields = append(fields, contract.FieldContractName)
	}
	if m.party_a != nil {
		fields = append(fields, contract.FieldPartyA)
	}
	if m.party_b != nil {
		fields = append(fields, contract.FieldPartyB)
	}
	if m.amount != nil {
		fields = append(fields, contract.FieldAmount)
	}
	if m.sign_date != nil {
		fields = append(fields, contract.FieldSignDate)
	}
	if m.effective_date != nil {
		fields = append(fields, contract.FieldEffectiveDate)
	}
	if m.expiry_date != nil {
		fields = append(fields, contract.FieldExpiryDate)
	}
	if m.file_path != nil {
		fields = append(fields, contract.FieldFilePath)
	}
	if m.parsed_data != nil {
		fields = append(fields, contract.FieldParsedData)
	}
	if m.created_at != nil {
		fields = append(fields, contract.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contract.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldProjectID:
		return m.ProjectID()
	case contract.FieldContractNumber:
		return m.ContractNumber()
	case contract.FieldContractName:
		return m.ContractName()
	case contract.FieldPartyA:
		return m.PartyA()
	case contract.FieldPartyB:
		return m.PartyB()
	case contract.FieldAmount:
		return m.Amount()
	case contract.FieldSignDate:
		return m.SignDate()
	case contract.FieldEffectiveDate:
		return m.EffectiveDate()
	case contract.FieldExpiryDate:
		return m.ExpiryDate()
	case contract.FieldFilePath:
		return m.FilePath()
	case contract.FieldParsedData:
		return m.ParsedData()
	case contract.FieldCreatedAt:
		return m.CreatedAt()
	case contract.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contract.FieldProjectID:
		return m.OldProjectID(ctx)
	case contract.FieldContractNumber:
		return m.OldContractNumber(ctx)
	case contract.FieldContractName:
		return m.OldContractName(ctx)
	case contract.FieldPartyA:
		return m.OldPartyA(ctx)
	case contract.FieldPartyB:
		return m.OldPartyB(ctx)
	case contract.FieldAmount:
		return m.OldAmount(ctx)
	case contract.FieldSignDate:
		return m.OldSignDate(ctx)
	case contract.FieldEffectiveDate:
		return m.OldEffectiveDate(ctx)
	case contract.FieldExpiryDate:
		return m.OldExpiryDate(ctx)
	case contract.FieldFilePath:
		return m.OldFilePath(ctx)
	case contract.FieldParsedData:
		return m.OldParsedData(ctx)
	case contract.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contract.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contract field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contract.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case contract.FieldContractNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractNumber(v)
		return nil
	case contract.FieldContractName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractName(v)
		return nil
	case contract.FieldPartyA:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartyA(v)
		return nil
	case contract.FieldPartyB:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartyB(v)
		return nil
	case contract.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case contract.FieldSignDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignDate(v)
		return nil
	case contract.FieldEffectiveDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveDate(v)
		return nil
	case contract.FieldExpiryDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiryDate(v)
		return nil
	case contract.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case contract.FieldParsedData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedData(v)
		return nil
	case contract.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contract.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, contract.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contract.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Contract numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contract.FieldContractNumber) {
		fields = append(fields, contract.FieldContractNumber)
	}
	if m.FieldCleared(contract.FieldContractName) {
		fields = append(fields, contract.FieldContractName)
	}
	if m.FieldCleared(contract.FieldPartyA) {
		fields = append(fields, contract.FieldPartyA)
	}
	if m.FieldCleared(contract.FieldPartyB) {
		fields = append(fields, contract.FieldPartyB)
	}
	if m.FieldCleared(contract.FieldAmount) {
		fields = append(fields, contract.FieldAmount)
	}
	if m.FieldCleared(contract.FieldSignDate) {
		fields = append(fields, contract.FieldSignDate)
	}
	if m.FieldCleared(contract.FieldEffectiveDate) {
		fields = append(fields, contract.FieldEffectiveDate)
	}
	if m.FieldCleared(contract.FieldExpiryDate) {
		fields = append(fields, contract.FieldExpiryDate)
	}
	if m.FieldCleared(contract.FieldFilePath) {
		fields = append(fields, contract.FieldFilePath)
	}
	if m.FieldCleared(contract.FieldParsedData) {
		fields = append(fields, contract.FieldParsedData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractMutation) ClearField(name string) error {
	switch name {
	case contract.FieldContractNumber:
		m.ClearContractNumber()
		return nil
	case contract.FieldContractName:
		m.ClearContractName()
		return nil
	case contract.FieldPartyA:
		m.ClearPartyA()
		return nil
	case contract.FieldPartyB:
		m.ClearPartyB()
		return nil
	case contract.FieldAmount:
		m.ClearAmount()
		return nil
	case contract.FieldSignDate:
		m.ClearSignDate()
		return nil
	case contract.FieldEffectiveDate:
		m.ClearEffectiveDate()
		return nil
	case contract.FieldExpiryDate:
		m.ClearExpiryDate()
		return nil
	case contract.FieldFilePath:
		m.ClearFilePath()
		return nil
	case contract.FieldParsedData:
		m.ClearParsedData()
		return nil
	}
	return fmt.Errorf("unknown Contract nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractMutation) ResetField(name string) error {
	switch name {
	case contract.FieldProjectID:
		m.ResetProjectID()
		return nil
	case contract.FieldContractNumber:
		m.ResetContractNumber()
		return nil
	case contract.FieldContractName:
		m.ResetContractName()
		return nil
	case contract.FieldPartyA:
		m.ResetPartyA()
		return nil
	case contract.FieldPartyB:
		m.ResetPartyB()
		return nil
	case contract.FieldAmount:
		m.ResetAmount()
		return nil
	case contract.FieldSignDate:
		m.ResetSignDate()
		return nil
	case contract.FieldEffectiveDate:
		m.ResetEffectiveDate()
		return nil
	case contract.FieldExpiryDate:
		m.ResetExpiryDate()
		return nil
	case contract.FieldFilePath:
		m.ResetFilePath()
		return nil
	case contract.FieldParsedData:
		m.ResetParsedData()
		return nil
	case contract.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contract.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, contract.EdgeProject)
	}
	if m.files != nil {
		edges = append(edges, contract.EdgeFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case contract.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfiles != nil {
		edges = append(edges, contract.EdgeFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, contract.EdgeProject)
	}
	if m.clearedfiles {
		edges = append(edges, contract.EdgeFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractMutation) EdgeCleared(name string) bool {
	switch name {
	case contract.EdgeProject:
		return m.clearedproject
	case contract.EdgeFiles:
		return m.clearedfiles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractMutation) ClearEdge(name string) error {
	switch name {
	case contract.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Contract unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractMutation) ResetEdge(name string) error {
	switch name {
	case contract.EdgeProject:
		m.ResetProject()
		return nil
	case contract.EdgeFiles:
		m.ResetFiles()
		return nil
	}
	return fmt.Errorf("unknown Contract edge %s", name)
}

// DocumentFileMutation represents an operation that mutates the DocumentFile nodes in the graph.
type DocumentFileMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	kind            *string
	source_path     *string
	content_hash    *[]byte
	filename        *string
	file_ext        *string
	file_size       *int
	addfile_size    *int
	uploaded_at     *time.Time
	clearedFields   map[string]struct{}
	project         *uuid.UUID
	clearedproject  bool
	contract        *uuid.UUID
	clearedcontract bool
	invoice         *uuid.UUID
	clearedinvoice  bool
	jobs            map[uuid.UUID]struct{}
	removedjobs     map[uuid.UUID]struct{}
	clearedjobs     bool
	done            bool
	oldValue        func(context.Context) (*DocumentFile, error)
	predicates      []predicate.DocumentFile
}

var _ ent.Mutation = (*DocumentFileMutation)(nil)

// documentfileOption allows management of the mutation configuration using functional options.
type documentfileOption func(*DocumentFileMutation)

// newDocumentFileMutation creates new mutation for the DocumentFile entity.
func newDocumentFileMutation(c config, op Op, opts ...documentfileOption) *DocumentFileMutation {
	m := &DocumentFileMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentFileID sets the ID field of the mutation.
func withDocumentFileID(id uuid.UUID) documentfileOption {
	return func(m *DocumentFileMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentFile
		)
		m.oldValue = func(ctx context.Context) (*DocumentFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentFile sets the old DocumentFile of the mutation.
func withDocumentFile(node *DocumentFile) documentfileOption {
	return func(m *DocumentFileMutation) {
		m.oldValue = func(context.Context) (*DocumentFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentFile entities.
func (m *DocumentFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *DocumentFileMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *DocumentFileMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *DocumentFileMutation) ResetProjectID() {
	m.project = nil
}

// SetContractID sets the "contract_id" field.
func (m *DocumentFileMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *DocumentFileMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldContractID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ClearContractID clears the value of the "contract_id" field.
func (m *DocumentFileMutation) ClearContractID() {
	m.contract = nil
	m.clearedFields[documentfile.FieldContractID] = struct{}{}
}

// ContractIDCleared returns if the "contract_id" field was cleared in this mutation.
func (m *DocumentFileMutation) ContractIDCleared() bool {
	_, ok := m.clearedFields[documentfile.FieldContractID]
	return ok
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *DocumentFileMutation) ResetContractID() {
	m.contract = nil
	delete(m.clearedFields, documentfile.FieldContractID)
}

// SetInvoiceID sets the "invoice_id" field.
func (m *DocumentFileMutation) SetInvoiceID(u uuid.UUID) {
	m.invoice = &u
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *DocumentFileMutation) InvoiceID() (r uuid.UUID, exists bool) {
	v := m.invoice
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldInvoiceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (m *DocumentFileMutation) ClearInvoiceID() {
	m.invoice = nil
	m.clearedFields[documentfile.FieldInvoiceID] = struct{}{}
}

// InvoiceIDCleared returns if the "invoice_id" field was cleared in this mutation.
func (m *DocumentFileMutation) InvoiceIDCleared() bool {
	_, ok := m.clearedFields[documentfile.FieldInvoiceID]
	return ok
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *DocumentFileMutation) ResetInvoiceID() {
	m.invoice = nil
	delete(m.clearedFields, documentfile.FieldInvoiceID)
}

// SetKind sets the "kind" field.
func (m *DocumentFileMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *DocumentFileMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *DocumentFileMutation) ResetKind() {
	m.kind = nil
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DocumentFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DocumentFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DocumentFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *DocumentFileMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[documentfile.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *DocumentFileMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *DocumentFileMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *DocumentFileMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *DocumentFileMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[documentfile.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *DocumentFileMutation) ContractCleared() bool {
	return m.ContractIDCleared() || m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *DocumentFileMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *DocumentFileMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (m *DocumentFileMutation) ClearInvoice() {
	m.clearedinvoice = true
	m.clearedFields[documentfile.FieldInvoiceID] = struct{}{}
}

// InvoiceCleared reports if the "invoice" edge to the Invoice entity was cleared.
func (m *DocumentFileMutation) InvoiceCleared() bool {
	return m.InvoiceIDCleared() || m.clearedinvoice
}

// InvoiceIDs returns the "invoice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvoiceID instead. It exists only for internal usage by the builders.
func (m *DocumentFileMutation) InvoiceIDs() (ids []uuid.UUID) {
	if id := m.invoice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvoice resets all changes to the "invoice" edge.
func (m *DocumentFileMutation) ResetInvoice() {
	m.invoice = nil
	m.clearedinvoice = false
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by ids.
func (m *DocumentFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ParseJob entity.
func (m *DocumentFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ParseJob entity was cleared.
func (m *DocumentFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ParseJob entity by IDs.
func (m *DocumentFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ParseJob entity.
func (m *DocumentFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *DocumentFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *DocumentFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the DocumentFileMutation builder.
func (m *DocumentFileMutation) Where(ps ...predicate.DocumentFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentFile).
func (m *DocumentFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentFileMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.project != nil {
		fields = append(fields, documentfile.FieldProjectID)
	}
	if m.contract != nil {
		fields = append(fields, documentfile.FieldContractID)
	}
	if m.invoice != nil {
		fields = append(fields, documentfile.FieldInvoiceID)
	}
	if m.kind != nil {
		fields = append(fields, documentfile.FieldKind)
	}
	if m.source_path != nil {
		fields = append(fields, documentfile.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, documentfile.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, documentfile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, documentfile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, documentfile.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, documentfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentfile.FieldProjectID:
		return m.ProjectID()
	case documentfile.FieldContractID:
		return m.ContractID()
	case documentfile.FieldInvoiceID:
		return m.InvoiceID()
	case documentfile.FieldKind:
		return m.Kind()
	case documentfile.FieldSourcePath:
		return m.SourcePath()
	case documentfile.FieldContentHash:
		return m.ContentHash()
	case documentfile.FieldFilename:
		return m.Filename()
	case documentfile.FieldFileExt:
		return m.FileExt()
	case documentfile.FieldFileSize:
		return m.FileSize()
	case documentfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentfile.FieldProjectID:
		return m.OldProjectID(ctx)
	case documentfile.FieldContractID:
		return m.OldContractID(ctx)
	case documentfile.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case documentfile.FieldKind:
		return m.OldKind(ctx)
	case documentfile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case documentfile.FieldContentHash:
		return m.OldContentHash(ctx)
	case documentfile.FieldFilename:
		return m.OldFilename(ctx)
	case documentfile.FieldFileExt:
		return m.OldFileExt(ctx)
	case documentfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case documentfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentfile.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case documentfile.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case documentfile.FieldInvoiceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case documentfile.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case documentfile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case documentfile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case documentfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case documentfile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case documentfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case documentfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, documentfile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentfile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentfile.FieldContractID) {
		fields = append(fields, documentfile.FieldContractID)
	}
	if m.FieldCleared(documentfile.FieldInvoiceID) {
		fields = append(fields, documentfile.FieldInvoiceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentFileMutation) ClearField(name string) error {
	switch name {
	case documentfile.FieldContractID:
		m.ClearContractID()
		return nil
	case documentfile.FieldInvoiceID:
		m.ClearInvoiceID()
		return nil
	}
	return fmt.Errorf("unknown DocumentFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentFileMutation) ResetField(name string) error {
	switch name {
	case documentfile.FieldProjectID:
		m.ResetProjectID()
		return nil
	case documentfile.FieldContractID:
		m.ResetContractID()
		return nil
	case documentfile.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case documentfile.FieldKind:
		m.ResetKind()
		return nil
	case documentfile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case documentfile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case documentfile.FieldFilename:
		m.ResetFilename()
		return nil
	case documentfile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case documentfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case documentfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.project != nil {
		edges = append(edges, documentfile.EdgeProject)
	}
	if m.contract != nil {
		edges = append(edges, documentfile.EdgeContract)
	}
	if m.invoice != nil {
		edges = append(edges, documentfile.EdgeInvoice)
	}
	if m.jobs != nil {
		edges = append(edges, documentfile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentfile.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case documentfile.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	case documentfile.EdgeInvoice:
		if id := m.invoice; id != nil {
			return []ent.Value{*id}
		}
	case documentfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedjobs != nil {
		edges = append(edges, documentfile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case documentfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedproject {
		edges = append(edges, documentfile.EdgeProject)
	}
	if m.clearedcontract {
		edges = append(edges, documentfile.EdgeContract)
	}
	if m.clearedinvoice {
		edges = append(edges, documentfile.EdgeInvoice)
	}
	if m.clearedjobs {
		edges = append(edges, documentfile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentFileMutation) EdgeCleared(name string) bool {
	switch name {
	case documentfile.EdgeProject:
		return m.clearedproject
	case documentfile.EdgeContract:
		return m.clearedcontract
	case documentfile.EdgeInvoice:
		return m.clearedinvoice
	case documentfile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentFileMutation) ClearEdge(name string) error {
	switch name {
	case documentfile.EdgeProject:
		m.ClearProject()
		return nil
	case documentfile.EdgeContract:
		m.ClearContract()
		return nil
	case documentfile.EdgeInvoice:
		m.ClearInvoice()
		return nil
	}
	return fmt.Errorf("unknown DocumentFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentFileMutation) ResetEdge(name string) error {
	switch name {
	case documentfile.EdgeProject:
		m.ResetProject()
		return nil
	case documentfile.EdgeContract:
		m.ResetContract()
		return nil
	case documentfile.EdgeInvoice:
		m.ResetInvoice()
		return nil
	case documentfile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown DocumentFile edge %s", name)
}

// InvoiceMutation represents an operation that mutates the Invoice nodes in the graph.
type InvoiceMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	invoice_number    *string
	invoice_code      *string
	amount            *float64
	addamount         *float64
	invoice_date      *time.Time
	seller            *string
	buyer             *string
	tax_amount        *float64
	addtax_amount     *float64
	remark            *string
	file_path         *string
	parsed_data       *json.RawMessage
	appendparsed_data json.RawMessage
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	project           *uuid.UUID
	clearedproject    bool
	files             map[uuid.UUID]struct{}
	removedfiles      map[uuid.UUID]struct{}
	clearedfiles      bool
	done              bool
	oldValue          func(context.Context) (*Invoice, error)
	predicates        []predicate.Invoice
}

var _ ent.Mutation = (*InvoiceMutation)(nil)

// invoiceOption allows management of the mutation configuration using functional options.
type invoiceOption func(*InvoiceMutation)

// newInvoiceMutation creates new mutation for the Invoice entity.
func newInvoiceMutation(c config, op Op, opts ...invoiceOption) *InvoiceMutation {
	m := &InvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceID sets the ID field of the mutation.
func withInvoiceID(id uuid.UUID) invoiceOption {
	return func(m *InvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Invoice
		)
		m.oldValue = func(ctx context.Context) (*Invoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoice sets the old Invoice of the mutation.
func withInvoice(node *Invoice) invoiceOption {
	return func(m *InvoiceMutation) {
		m.oldValue = func(context.Context) (*Invoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invoice entities.
func (m *InvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *InvoiceMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *InvoiceMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *InvoiceMutation) ResetProjectID() {
	m.project = nil
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *InvoiceMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *InvoiceMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (m *InvoiceMutation) ClearInvoiceNumber() {
	m.invoice_number = nil
	m.clearedFields[invoice.FieldInvoiceNumber] = struct{}{}
}

// InvoiceNumberCleared returns if the "invoice_number" field was cleared in this mutation.
func (m *InvoiceMutation) InvoiceNumberCleared() bool {
	_, ok := m.clearedFields[invoice.FieldInvoiceNumber]
	return ok
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *InvoiceMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
	delete(m.clearedFields, invoice.FieldInvoiceNumber)
}

// SetInvoiceCode sets the "invoice_code" field.
func (m *InvoiceMutation) SetInvoiceCode(s string) {
	m.invoice_code = &s
}

// InvoiceCode returns the value of the "invoice_code" field in the mutation.
func (m *InvoiceMutation) InvoiceCode() (r string, exists bool) {
	v := m.invoice_code
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceCode returns the old "invoice_code" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceCode: %w", err)
	}
	return oldValue.InvoiceCode, nil
}

// ClearInvoiceCode clears the value of the "invoice_code" field.
func (m *InvoiceMutation) ClearInvoiceCode() {
	m.invoice_code = nil
	m.clearedFields[invoice.FieldInvoiceCode] = struct{}{}
}

// InvoiceCodeCleared returns if the "invoice_code" field was cleared in this mutation.
func (m *InvoiceMutation) InvoiceCodeCleared() bool {
	_, ok := m.clearedFields[invoice.FieldInvoiceCode]
	return ok
}

// ResetInvoiceCode resets all changes to the "invoice_code" field.
func (m *InvoiceMutation) ResetInvoiceCode() {
	m.invoice_code = nil
	delete(m.clearedFields, invoice.FieldInvoiceCode)
}

// SetAmount sets the "amount" field.
func (m *InvoiceMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *InvoiceMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *InvoiceMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *InvoiceMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmount clears the value of the "amount" field.
func (m *InvoiceMutation) ClearAmount() {
	m.amount = nil
	m.addamount = nil
	m.clearedFields[invoice.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *InvoiceMutation) AmountCleared() bool {
	_, ok := m.clearedFields[invoice.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *InvoiceMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
	delete(m.clearedFields, invoice.FieldAmount)
}

// SetInvoiceDate sets the "invoice_date" field.
func (m *InvoiceMutation) SetInvoiceDate(t time.Time) {
	m.invoice_date = &t
}

// InvoiceDate returns the value of the "invoice_date" field in the mutation.
func (m *InvoiceMutation) InvoiceDate() (r time.Time, exists bool) {
	v := m.invoice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDate returns the old "invoice_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDate: %w", err)
	}
	return oldValue.InvoiceDate, nil
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (m *InvoiceMutation) ClearInvoiceDate() {
	m.invoice_date = nil
	m.clearedFields[invoice.FieldInvoiceDate] = struct{}{}
}

// InvoiceDateCleared returns if the "invoice_date" field was cleared in this mutation.
func (m *InvoiceMutation) InvoiceDateCleared() bool {
	_, ok := m.clearedFields[invoice.FieldInvoiceDate]
	return ok
}

// ResetInvoiceDate resets all changes to the "invoice_date" field.
func (m *InvoiceMutation) ResetInvoiceDate() {
	m.invoice_date = nil
	delete(m.clearedFields, invoice.FieldInvoiceDate)
}

// SetSeller sets the "seller" field.
func (m *InvoiceMutation) SetSeller(s string) {
	m.seller = &s
}

// Seller returns the value of the "seller" field in the mutation.
func (m *InvoiceMutation) Seller() (r string, exists bool) {
	v := m.seller
	if v == nil {
		return
	}
	return *v, true
}

// OldSeller returns the old "seller" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldSeller(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeller is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeller requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeller: %w", err)
	}
	return oldValue.Seller, nil
}

// ClearSeller clears the value of the "seller" field.
func (m *InvoiceMutation) ClearSeller() {
	m.seller = nil
	m.clearedFields[invoice.FieldSeller] = struct{}{}
}

// SellerCleared returns if the "seller" field was cleared in this mutation.
func (m *InvoiceMutation) SellerCleared() bool {
	_, ok := m.clearedFields[invoice.FieldSeller]
	return ok
}

// ResetSeller resets all changes to the "seller" field.
func (m *InvoiceMutation) ResetSeller() {
	m.seller = nil
	delete(m.clearedFields, invoice.FieldSeller)
}

// SetBuyer sets the "buyer" field.
func (m *InvoiceMutation) SetBuyer(s string) {
	m.buyer = &s
}

// Buyer returns the value of the "buyer" field in the mutation.
func (m *InvoiceMutation) Buyer() (r string, exists bool) {
	v := m.buyer
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyer returns the old "buyer" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldBuyer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyer: %w", err)
	}
	return oldValue.Buyer, nil
}

// ClearBuyer clears the value of the "buyer" field.
func (m *InvoiceMutation) ClearBuyer() {
	m.buyer = nil
	m.clearedFields[invoice.FieldBuyer] = struct{}{}
}

// BuyerCleared returns if the "buyer" field was cleared in this mutation.
func (m *InvoiceMutation) BuyerCleared() bool {
	_, ok := m.clearedFields[invoice.FieldBuyer]
	return ok
}

// ResetBuyer resets all changes to the "buyer" field.
func (m *InvoiceMutation) ResetBuyer() {
	m.buyer = nil
	delete(m.clearedFields, invoice.FieldBuyer)
}

// SetTaxAmount sets the "tax_amount" field.
func (m *InvoiceMutation) SetTaxAmount(f float64) {
	m.tax_amount = &f
	m.addtax_amount = nil
}

// TaxAmount returns the value of the "tax_amount" field in the mutation.
func (m *InvoiceMutation) TaxAmount() (r float64, exists bool) {
	v := m.tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxAmount returns the old "tax_amount" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTaxAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxAmount: %w", err)
	}
	return oldValue.TaxAmount, nil
}

// AddTaxAmount adds f to the "tax_amount" field.
func (m *InvoiceMutation) AddTaxAmount(f float64) {
	if m.addtax_amount != nil {
		*m.addtax_amount += f
	} else {
		m.addtax_amount = &f
	}
}

// AddedTaxAmount returns the value that was added to the "tax_amount" field in this mutation.
func (m *InvoiceMutation) AddedTaxAmount() (r float64, exists bool) {
	v := m.addtax_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (m *InvoiceMutation) ClearTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	m.clearedFields[invoice.FieldTaxAmount] = struct{}{}
}

// TaxAmountCleared returns if the "tax_amount" field was cleared in this mutation.
func (m *InvoiceMutation) TaxAmountCleared() bool {
	_, ok := m.clearedFields[invoice.FieldTaxAmount]
	return ok
}

// ResetTaxAmount resets all changes to the "tax_amount" field.
func (m *InvoiceMutation) ResetTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	delete(m.clearedFields, invoice.FieldTaxAmount)
}

// SetRemark sets the "remark" field.
func (m *InvoiceMutation) SetRemark(s string) {
	m.remark = &s
}

// Remark returns the value of the "remark" field in the mutation.
func (m *InvoiceMutation) Remark() (r string, exists bool) {
	v := m.remark
	if v == nil {
		return
	}
	return *v, true
}

// OldRemark returns the old "remark" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldRemark(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemark is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemark requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemark: %w", err)
	}
	return oldValue.Remark, nil
}

// ClearRemark clears the value of the "remark" field.
func (m *InvoiceMutation) ClearRemark() {
	m.remark = nil
	m.clearedFields[invoice.FieldRemark] = struct{}{}
}

// RemarkCleared returns if the "remark" field was cleared in this mutation.
func (m *InvoiceMutation) RemarkCleared() bool {
	_, ok := m.clearedFields[invoice.FieldRemark]
	return ok
}

// ResetRemark resets all changes to the "remark" field.
func (m *InvoiceMutation) ResetRemark() {
	m.remark = nil
	delete(m.clearedFields, invoice.FieldRemark)
}

// SetFilePath sets the "file_path" field.
func (m *InvoiceMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *InvoiceMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldFilePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ClearFilePath clears the value of the "file_path" field.
func (m *InvoiceMutation) ClearFilePath() {
	m.file_path = nil
	m.clearedFields[invoice.FieldFilePath] = struct{}{}
}

// FilePathCleared returns if the "file_path" field was cleared in this mutation.
func (m *InvoiceMutation) FilePathCleared() bool {
	_, ok := m.clearedFields[invoice.FieldFilePath]
	return ok
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *InvoiceMutation) ResetFilePath() {
	m.file_path = nil
	delete(m.clearedFields, invoice.FieldFilePath)
}

// SetParsedData sets the "parsed_data" field.
func (m *InvoiceMutation) SetParsedData(jm json.RawMessage) {
	m.parsed_data = &jm
	m.appendparsed_data = nil
}

// ParsedData returns the value of the "parsed_data" field in the mutation.
func (m *InvoiceMutation) ParsedData() (r json.RawMessage, exists bool) {
	v := m.parsed_data
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedData returns the old "parsed_data" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldParsedData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedData: %w", err)
	}
	return oldValue.ParsedData, nil
}

// AppendParsedData adds jm to the "parsed_data" field.
func (m *InvoiceMutation) AppendParsedData(jm json.RawMessage) {
	m.appendparsed_data = append(m.appendparsed_data, jm...)
}

// AppendedParsedData returns the list of values that were appended to the "parsed_data" field in this mutation.
func (m *InvoiceMutation) AppendedParsedData() (json.RawMessage, bool) {
	if len(m.appendparsed_data) == 0 {
		return nil, false
	}
	return m.appendparsed_data, true
}

// ClearParsedData clears the value of the "parsed_data" field.
func (m *InvoiceMutation) ClearParsedData() {
	m.parsed_data = nil
	m.appendparsed_data = nil
	m.clearedFields[invoice.FieldParsedData] = struct{}{}
}

// ParsedDataCleared returns if the "parsed_data" field was cleared in this mutation.
func (m *InvoiceMutation) ParsedDataCleared() bool {
	_, ok := m.clearedFields[invoice.FieldParsedData]
	return ok
}

// ResetParsedData resets all changes to the "parsed_data" field.
func (m *InvoiceMutation) ResetParsedData() {
	m.parsed_data = nil
	m.appendparsed_data = nil
	delete(m.clearedFields, invoice.FieldParsedData)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvoiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvoiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InvoiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *InvoiceMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[invoice.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *InvoiceMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *InvoiceMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *InvoiceMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by ids.
func (m *InvoiceMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the DocumentFile entity.
func (m *InvoiceMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the DocumentFile entity was cleared.
func (m *InvoiceMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the DocumentFile entity by IDs.
func (m *InvoiceMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the DocumentFile entity.
func (m *InvoiceMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *InvoiceMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *InvoiceMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// Where appends a list predicates to the InvoiceMutation builder.
func (m *InvoiceMutation) Where(ps ...predicate.Invoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invoice).
func (m *InvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.project != nil {
		fields = append(fields, invoice.FieldProjectID)
	}
	if m.invoice_number != nil {
		fields = append(fields, invoice.FieldInvoiceNumber)
	}
	if m.invoice_code != nil {
		fields = append(fields, invoice.FieldInvoiceCode)
	}
	if m.amount != nil {
		fields = append(fields, invoice.FieldAmount)
	}
	if m.invoice_date != nil {
		fields = append(fields, invoice.FieldInvoiceDate)
	}
	if m.seller != nil {
		fields = append(fields, invoice.FieldSeller)
	}
	if m.buyer != nil {
		fields = append(fields, invoice.FieldBuyer)
	}
	if m.tax_amount != nil {
		fields = append(fields, invoice.FieldTaxAmount)
	}
	if m.remark != nil {
		fields = append(fields, invoice.FieldRemark)
	}
	if m.file_path != nil {
		fields = append(fields, invoice.FieldFilePath)
	}
	if m.parsed_data != nil {
		fields = append(fields, invoice.FieldParsedData)
	}
	if m.created_at != nil {
		fields = append(fields, invoice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, invoice.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldProjectID:
		return m.ProjectID()
	case invoice.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case invoice.FieldInvoiceCode:
		return m.InvoiceCode()
	case invoice.FieldAmount:
		return m.Amount()
	case invoice.FieldInvoiceDate:
		return m.InvoiceDate()
	case invoice.FieldSeller:
		return m.Seller()
	case invoice.FieldBuyer:
		return m.Buyer()
	case invoice.FieldTaxAmount:
		return m.TaxAmount()
	case invoice.FieldRemark:
		return m.Remark()
	case invoice.FieldFilePath:
		return m.FilePath()
	case invoice.FieldParsedData:
		return m.ParsedData()
	case invoice.FieldCreatedAt:
		return m.CreatedAt()
	case invoice.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoice.FieldProjectID:
		return m.OldProjectID(ctx)
	case invoice.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case invoice.FieldInvoiceCode:
		return m.OldInvoiceCode(ctx)
	case invoice.FieldAmount:
		return m.OldAmount(ctx)
	case invoice.FieldInvoiceDate:
		return m.OldInvoiceDate(ctx)
	case invoice.FieldSeller:
		return m.OldSeller(ctx)
	case invoice.FieldBuyer:
		return m.OldBuyer(ctx)
	case invoice.FieldTaxAmount:
		return m.OldTaxAmount(ctx)
	case invoice.FieldRemark:
		return m.OldRemark(ctx)
	case invoice.FieldFilePath:
		return m.OldFilePath(ctx)
	case invoice.FieldParsedData:
		return m.OldParsedData(ctx)
	case invoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case invoice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Invoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case invoice.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case invoice.FieldInvoiceCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceCode(v)
		return nil
	case invoice.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case invoice.FieldInvoiceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDate(v)
		return nil
	case invoice.FieldSeller:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeller(v)
		return nil
	case invoice.FieldBuyer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyer(v)
		return nil
	case invoice.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxAmount(v)
		return nil
	case invoice.FieldRemark:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemark(v)
		return nil
	case invoice.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case invoice.FieldParsedData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedData(v)
		return nil
	case invoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case invoice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, invoice.FieldAmount)
	}
	if m.addtax_amount != nil {
		fields = append(fields, invoice.FieldTaxAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldAmount:
		return m.AddedAmount()
	case invoice.FieldTaxAmount:
		return m.AddedTaxAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case invoice.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoice.FieldInvoiceNumber) {
		fields = append(fields, invoice.FieldInvoiceNumber)
	}
	if m.FieldCleared(invoice.FieldInvoiceCode) {
		fields = append(fields, invoice.FieldInvoiceCode)
	}
	if m.FieldCleared(invoice.FieldAmount) {
		fields = append(fields, invoice.FieldAmount)
	}
	if m.FieldCleared(invoice.FieldInvoiceDate) {
		fields = append(fields, invoice.FieldInvoiceDate)
	}
	if m.FieldCleared(invoice.FieldSeller) {
		fields = append(fields, invoice.FieldSeller)
	}
	if m.FieldCleared(invoice.FieldBuyer) {
		fields = append(fields, invoice.FieldBuyer)
	}
	if m.FieldCleared(invoice.FieldTaxAmount) {
		fields = append(fields, invoice.FieldTaxAmount)
	}
	if m.FieldCleared(invoice.FieldRemark) {
		fields = append(fields, invoice.FieldRemark)
	}
	if m.FieldCleared(invoice.FieldFilePath) {
		fields = append(fields, invoice.FieldFilePath)
	}
	if m.FieldCleared(invoice.FieldParsedData) {
		fields = append(fields, invoice.FieldParsedData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceMutation) ClearField(name string) error {
	switch name {
	case invoice.FieldInvoiceNumber:
		m.ClearInvoiceNumber()
		return nil
	case invoice.FieldInvoiceCode:
		m.ClearInvoiceCode()
		return nil
	case invoice.FieldAmount:
		m.ClearAmount()
		return nil
	case invoice.FieldInvoiceDate:
		m.ClearInvoiceDate()
		return nil
	case invoice.FieldSeller:
		m.ClearSeller()
		return nil
	case invoice.FieldBuyer:
		m.ClearBuyer()
		return nil
	case invoice.FieldTaxAmount:
		m.ClearTaxAmount()
		return nil
	case invoice.FieldRemark:
		m.ClearRemark()
		return nil
	case invoice.FieldFilePath:
		m.ClearFilePath()
		return nil
	case invoice.FieldParsedData:
		m.ClearParsedData()
		return nil
	}
	return fmt.Errorf("unknown Invoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceMutation) ResetField(name string) error {
	switch name {
	case invoice.FieldProjectID:
		m.ResetProjectID()
		return nil
	case invoice.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case invoice.FieldInvoiceCode:
		m.ResetInvoiceCode()
		return nil
	case invoice.FieldAmount:
		m.ResetAmount()
		return nil
	case invoice.FieldInvoiceDate:
		m.ResetInvoiceDate()
		return nil
	case invoice.FieldSeller:
		m.ResetSeller()
		return nil
	case invoice.FieldBuyer:
		m.ResetBuyer()
		return nil
	case invoice.FieldTaxAmount:
		m.ResetTaxAmount()
		return nil
	case invoice.FieldRemark:
		m.ResetRemark()
		return nil
	case invoice.FieldFilePath:
		m.ResetFilePath()
		return nil
	case invoice.FieldParsedData:
		m.ResetParsedData()
		return nil
	case invoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case invoice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, invoice.EdgeProject)
	}
	if m.files != nil {
		edges = append(edges, invoice.EdgeFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case invoice.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfiles != nil {
		edges = append(edges, invoice.EdgeFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, invoice.EdgeProject)
	}
	if m.clearedfiles {
		edges = append(edges, invoice.EdgeFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceMutation) EdgeCleared(name string) bool {
	switch name {
	case invoice.EdgeProject:
		return m.clearedproject
	case invoice.EdgeFiles:
		return m.clearedfiles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceMutation) ClearEdge(name string) error {
	switch name {
	case invoice.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Invoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceMutation) ResetEdge(name string) error {
	switch name {
	case invoice.EdgeProject:
		m.ResetProject()
		return nil
	case invoice.EdgeFiles:
		m.ResetFiles()
		return nil
	}
	return fmt.Errorf("unknown Invoice edge %s", name)
}

// ParseJobMutation represents an operation that mutates the ParseJob nodes in the graph.
type ParseJobMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	kind              *string
	format            *string
	started_at        *time.Time
	finished_at       *time.Time
	status            *string
	error_message     *string
	parse_status      *string
	needs_review      *bool
	raw_text          *string
	result_json       *json.RawMessage
	appendresult_json json.RawMessage
	clearedFields     map[string]struct{}
	file              *uuid.UUID
	clearedfile       bool
	project           *uuid.UUID
	clearedproject    bool
	done              bool
	oldValue          func(context.Context) (*ParseJob, error)
	predicates        []predicate.ParseJob
}

var _ ent.Mutation = (*ParseJobMutation)(nil)

// parsejobOption allows management of the mutation configuration using functional options.
type parsejobOption func(*ParseJobMutation)

// newParseJobMutation creates new mutation for the ParseJob entity.
func newParseJobMutation(c config, op Op, opts ...parsejobOption) *ParseJobMutation {
	m := &ParseJobMutation{
		config:        c,
		op:            op,
		typ:           TypeParseJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParseJobID sets the ID field of the mutation.
func withParseJobID(id uuid.UUID) parsejobOption {
	return func(m *ParseJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ParseJob
		)
		m.oldValue = func(ctx context.Context) (*ParseJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParseJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParseJob sets the old ParseJob of the mutation.
func withParseJob(node *ParseJob) parsejobOption {
	return func(m *ParseJobMutation) {
		m.oldValue = func(context.Context) (*ParseJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParseJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParseJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ParseJob entities.
func (m *ParseJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParseJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParseJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParseJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ParseJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ParseJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ParseJobMutation) ResetFileID() {
	m.file = nil
}

// SetProjectID sets the "project_id" field.
func (m *ParseJobMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ParseJobMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ParseJobMutation) ResetProjectID() {
	m.project = nil
}

// SetKind sets the "kind" field.
func (m *ParseJobMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ParseJobMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ParseJobMutation) ResetKind() {
	m.kind = nil
}

// SetFormat sets the "format" field.
func (m *ParseJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ParseJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ParseJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ParseJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ParseJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ParseJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ParseJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ParseJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ParseJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[parsejob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ParseJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ParseJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, parsejob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ParseJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ParseJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ParseJobMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ParseJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ParseJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ParseJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[parsejob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ParseJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ParseJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, parsejob.FieldErrorMessage)
}

// SetParseStatus sets the "parse_status" field.
func (m *ParseJobMutation) SetParseStatus(s string) {
	m.parse_status = &s
}

// ParseStatus returns the value of the "parse_status" field in the mutation.
func (m *ParseJobMutation) ParseStatus() (r string, exists bool) {
	v := m.parse_status
	if v == nil {
		return
	}
	return *v, true
}

// OldParseStatus returns the old "parse_status" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldParseStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParseStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParseStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParseStatus: %w", err)
	}
	return oldValue.ParseStatus, nil
}

// ClearParseStatus clears the value of the "parse_status" field.
func (m *ParseJobMutation) ClearParseStatus() {
	m.parse_status = nil
	m.clearedFields[parsejob.FieldParseStatus] = struct{}{}
}

// ParseStatusCleared returns if the "parse_status" field was cleared in this mutation.
func (m *ParseJobMutation) ParseStatusCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldParseStatus]
	return ok
}

// ResetParseStatus resets all changes to the "parse_status" field.
func (m *ParseJobMutation) ResetParseStatus() {
	m.parse_status = nil
	delete(m.clearedFields, parsejob.FieldParseStatus)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ParseJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ParseJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ParseJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetRawText sets the "raw_text" field.
func (m *ParseJobMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ParseJobMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ParseJobMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[parsejob.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ParseJobMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ParseJobMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, parsejob.FieldRawText)
}

// SetResultJSON sets the "result_json" field.
func (m *ParseJobMutation) SetResultJSON(jm json.RawMessage) {
	m.result_json = &jm
	m.appendresult_json = nil
}

// ResultJSON returns the value of the "result_json" field in the mutation.
func (m *ParseJobMutation) ResultJSON() (r json.RawMessage, exists bool) {
	v := m.result_json
	if v == nil {
		return
	}
	return *v, true
}

// OldResultJSON returns the old "result_json" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldResultJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultJSON: %w", err)
	}
	return oldValue.ResultJSON, nil
}

// AppendResultJSON adds jm to the "result_json" field.
func (m *ParseJobMutation) AppendResultJSON(jm json.RawMessage) {
	m.appendresult_json = append(m.appendresult_json, jm...)
}

// AppendedResultJSON returns the list of values that were appended to the "result_json" field in this mutation.
func (m *ParseJobMutation) AppendedResultJSON() (json.RawMessage, bool) {
	if len(m.appendresult_json) == 0 {
		return nil, false
	}
	return m.appendresult_json, true
}

// ClearResultJSON clears the value of the "result_json" field.
func (m *ParseJobMutation) ClearResultJSON() {
	m.result_json = nil
	m.appendresult_json = nil
	m.clearedFields[parsejob.FieldResultJSON] = struct{}{}
}

// ResultJSONCleared returns if the "result_json" field was cleared in this mutation.
func (m *ParseJobMutation) ResultJSONCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldResultJSON]
	return ok
}

// ResetResultJSON resets all changes to the "result_json" field.
func (m *ParseJobMutation) ResetResultJSON() {
	m.result_json = nil
	m.appendresult_json = nil
	delete(m.clearedFields, parsejob.FieldResultJSON)
}

// ClearFile clears the "file" edge to the DocumentFile entity.
func (m *ParseJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[parsejob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the DocumentFile entity was cleared.
func (m *ParseJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ParseJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ParseJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ParseJobMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[parsejob.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ParseJobMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ParseJobMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ParseJobMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the ParseJobMutation builder.
func (m *ParseJobMutation) Where(ps ...predicate.ParseJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParseJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParseJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParseJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParseJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParseJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParseJob).
func (m *ParseJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParseJobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.file != nil {
		fields = append(fields, parsejob.FieldFileID)
	}
	if m.project != nil {
		fields = append(fields, parsejob.FieldProjectID)
	}
	if m.kind != nil {
		fields = append(fields, parsejob.FieldKind)
	}
	if m.format != nil {
		fields = append(fields, parsejob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, parsejob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, parsejob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, parsejob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, parsejob.FieldErrorMessage)
	}
	if m.parse_status != nil {
		fields = append(fields, parsejob.FieldParseStatus)
	}
	if m.needs_review != nil {
		fields = append(fields, parsejob.FieldNeedsReview)
	}
	if m.raw_text != nil {
		fields = append(fields, parsejob.FieldRawText)
	}
	if m.result_json != nil {
		fields = append(fields, parsejob.FieldResultJSON)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParseJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case parsejob.FieldFileID:
		return m.FileID()
	case parsejob.FieldProjectID:
		return m.ProjectID()
	case parsejob.FieldKind:
		return m.Kind()
	case parsejob.FieldFormat:
		return m.Format()
	case parsejob.FieldStartedAt:
		return m.StartedAt()
	case parsejob.FieldFinishedAt:
		return m.FinishedAt()
	case parsejob.FieldStatus:
		return m.Status()
	case parsejob.FieldErrorMessage:
		return m.ErrorMessage()
	case parsejob.FieldParseStatus:
		return m.ParseStatus()
	case parsejob.FieldNeedsReview:
		return m.NeedsReview()
	case parsejob.FieldRawText:
		return m.RawText()
	case parsejob.FieldResultJSON:
		return m.ResultJSON()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParseJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case parsejob.FieldFileID:
		return m.OldFileID(ctx)
	case parsejob.FieldProjectID:
		return m.OldProjectID(ctx)
	case parsejob.FieldKind:
		return m.OldKind(ctx)
	case parsejob.FieldFormat:
		return m.OldFormat(ctx)
	case parsejob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case parsejob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case parsejob.FieldStatus:
		return m.OldStatus(ctx)
	case parsejob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case parsejob.FieldParseStatus:
		return m.OldParseStatus(ctx)
	case parsejob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case parsejob.FieldRawText:
		return m.OldRawText(ctx)
	case parsejob.FieldResultJSON:
		return m.OldResultJSON(ctx)
	}
	return nil, fmt.Errorf("unknown ParseJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case parsejob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case parsejob.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case parsejob.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case parsejob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case parsejob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case parsejob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case parsejob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case parsejob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case parsejob.FieldParseStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParseStatus(v)
		return nil
	case parsejob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case parsejob.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case parsejob.FieldResultJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultJSON(v)
		return nil
	}
	return fmt.Errorf("unknown ParseJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParseJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParseJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ParseJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParseJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(parsejob.FieldFinishedAt) {
		fields = append(fields, parsejob.FieldFinishedAt)
	}
	if m.FieldCleared(parsejob.FieldErrorMessage) {
		fields = append(fields, parsejob.FieldErrorMessage)
	}
	if m.FieldCleared(parsejob.FieldParseStatus) {
		fields = append(fields, parsejob.FieldParseStatus)
	}
	if m.FieldCleared(parsejob.FieldRawText) {
		fields = append(fields, parsejob.FieldRawText)
	}
	if m.FieldCleared(parsejob.FieldResultJSON) {
		fields = append(fields, parsejob.FieldResultJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParseJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParseJobMutation) ClearField(name string) error {
	switch name {
	case parsejob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case parsejob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case parsejob.FieldParseStatus:
		m.ClearParseStatus()
		return nil
	case parsejob.FieldRawText:
		m.ClearRawText()
		return nil
	case parsejob.FieldResultJSON:
		m.ClearResultJSON()
		return nil
	}
	return fmt.Errorf("unknown ParseJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParseJobMutation) ResetField(name string) error {
	switch name {
	case parsejob.FieldFileID:
		m.ResetFileID()
		return nil
	case parsejob.FieldProjectID:
		m.ResetProjectID()
		return nil
	case parsejob.FieldKind:
		m.ResetKind()
		return nil
	case parsejob.FieldFormat:
		m.ResetFormat()
		return nil
	case parsejob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case parsejob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case parsejob.FieldStatus:
		m.ResetStatus()
		return nil
	case parsejob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case parsejob.FieldParseStatus:
		m.ResetParseStatus()
		return nil
	case parsejob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case parsejob.FieldRawText:
		m.ResetRawText()
		return nil
	case parsejob.FieldResultJSON:
		m.ResetResultJSON()
		return nil
	}
	return fmt.Errorf("unknown ParseJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParseJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.file != nil {
		edges = append(edges, parsejob.EdgeFile)
	}
	if m.project != nil {
		edges = append(edges, parsejob.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParseJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case parsejob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case parsejob.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParseJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParseJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParseJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfile {
		edges = append(edges, parsejob.EdgeFile)
	}
	if m.clearedproject {
		edges = append(edges, parsejob.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParseJobMutation) EdgeCleared(name string) bool {
	switch name {
	case parsejob.EdgeFile:
		return m.clearedfile
	case parsejob.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParseJobMutation) ClearEdge(name string) error {
	switch name {
	case parsejob.EdgeFile:
		m.ClearFile()
		return nil
	case parsejob.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ParseJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParseJobMutation) ResetEdge(name string) error {
	switch name {
	case parsejob.EdgeFile:
		m.ResetFile()
		return nil
	case parsejob.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown ParseJob edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	description      *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	contracts        map[uuid.UUID]struct{}
	removedcontracts map[uuid.UUID]struct{}
	clearedcontracts bool
	invoices         map[uuid.UUID]struct{}
	removedinvoices  map[uuid.UUID]struct{}
	clearedinvoices  bool
	files            map[uuid.UUID]struct{}
	removedfiles     map[uuid.UUID]struct{}
	clearedfiles     bool
	jobs             map[uuid.UUID]struct{}
	removedjobs      map[uuid.UUID]struct{}
	clearedjobs      bool
	done             bool
	oldValue         func(context.Context) (*Project, error)
	predicates       []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id uuid.UUID) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddContractIDs adds the "contracts" edge to the Contract entity by ids.
func (m *ProjectMutation) AddContractIDs(ids ...uuid.UUID) {
	if m.contracts == nil {
		m.contracts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.contracts[ids[i]] = struct{}{}
	}
}

// ClearContracts clears the "contracts" edge to the Contract entity.
func (m *ProjectMutation) ClearContracts() {
	m.clearedcontracts = true
}

// ContractsCleared reports if the "contracts" edge to the Contract entity was cleared.
func (m *ProjectMutation) ContractsCleared() bool {
	return m.clearedcontracts
}

// RemoveContractIDs removes the "contracts" edge to the Contract entity by IDs.
func (m *ProjectMutation) RemoveContractIDs(ids ...uuid.UUID) {
	if m.removedcontracts == nil {
		m.removedcontracts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.contracts, ids[i])
		m.removedcontracts[ids[i]] = struct{}{}
	}
}

// RemovedContracts returns the removed IDs of the "contracts" edge to the Contract entity.
func (m *ProjectMutation) RemovedContractsIDs() (ids []uuid.UUID) {
	for id := range m.removedcontracts {
		ids = append(ids, id)
	}
	return
}

// ContractsIDs returns the "contracts" edge IDs in the mutation.
func (m *ProjectMutation) ContractsIDs() (ids []uuid.UUID) {
	for id := range m.contracts {
		ids = append(ids, id)
	}
	return
}

// ResetContracts resets all changes to the "contracts" edge.
func (m *ProjectMutation) ResetContracts() {
	m.contracts = nil
	m.clearedcontracts = false
	m.removedcontracts = nil
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by ids.
func (m *ProjectMutation) AddInvoiceIDs(ids ...uuid.UUID) {
	if m.invoices == nil {
		m.invoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.invoices[ids[i]] = struct{}{}
	}
}

// ClearInvoices clears the "invoices" edge to the Invoice entity.
func (m *ProjectMutation) ClearInvoices() {
	m.clearedinvoices = true
}

// InvoicesCleared reports if the "invoices" edge to the Invoice entity was cleared.
func (m *ProjectMutation) InvoicesCleared() bool {
	return m.clearedinvoices
}

// RemoveInvoiceIDs removes the "invoices" edge to the Invoice entity by IDs.
func (m *ProjectMutation) RemoveInvoiceIDs(ids ...uuid.UUID) {
	if m.removedinvoices == nil {
		m.removedinvoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.invoices, ids[i])
		m.removedinvoices[ids[i]] = struct{}{}
	}
}

// RemovedInvoices returns the removed IDs of the "invoices" edge to the Invoice entity.
func (m *ProjectMutation) RemovedInvoicesIDs() (ids []uuid.UUID) {
	for id := range m.removedinvoices {
		ids = append(ids, id)
	}
	return
}

// InvoicesIDs returns the "invoices" edge IDs in the mutation.
func (m *ProjectMutation) InvoicesIDs() (ids []uuid.UUID) {
	for id := range m.invoices {
		ids = append(ids, id)
	}
	return
}

// ResetInvoices resets all changes to the "invoices" edge.
func (m *ProjectMutation) ResetInvoices() {
	m.invoices = nil
	m.clearedinvoices = false
	m.removedinvoices = nil
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by ids.
func (m *ProjectMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the DocumentFile entity.
func (m *ProjectMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the DocumentFile entity was cleared.
func (m *ProjectMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the DocumentFile entity by IDs.
func (m *ProjectMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the DocumentFile entity.
func (m *ProjectMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *ProjectMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *ProjectMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by ids.
func (m *ProjectMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ParseJob entity.
func (m *ProjectMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ParseJob entity was cleared.
func (m *ProjectMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ParseJob entity by IDs.
func (m *ProjectMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ParseJob entity.
func (m *ProjectMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ProjectMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ProjectMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldDescription:
		return m.Description()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.contracts != nil {
		edges = append(edges, project.EdgeContracts)
	}
	if m.invoices != nil {
		edges = append(edges, project.EdgeInvoices)
	}
	if m.files != nil {
		edges = append(edges, project.EdgeFiles)
	}
	if m.jobs != nil {
		edges = append(edges, project.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeContracts:
		ids := make([]ent.Value, 0, len(m.contracts))
		for id := range m.contracts {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.invoices))
		for id := range m.invoices {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedcontracts != nil {
		edges = append(edges, project.EdgeContracts)
	}
	if m.removedinvoices != nil {
		edges = append(edges, project.EdgeInvoices)
	}
	if m.removedfiles != nil {
		edges = append(edges, project.EdgeFiles)
	}
	if m.removedjobs != nil {
		edges = append(edges, project.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeContracts:
		ids := make([]ent.Value, 0, len(m.removedcontracts))
		for id := range m.removedcontracts {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.removedinvoices))
		for id := range m.removedinvoices {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedcontracts {
		edges = append(edges, project.EdgeContracts)
	}
	if m.clearedinvoices {
		edges = append(edges, project.EdgeInvoices)
	}
	if m.clearedfiles {
		edges = append(edges, project.EdgeFiles)
	}
	if m.clearedjobs {
		edges = append(edges, project.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeContracts:
		return m.clearedcontracts
	case project.EdgeInvoices:
		return m.clearedinvoices
	case project.EdgeFiles:
		return m.clearedfiles
	case project.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeContracts:
		m.ResetContracts()
		return nil
	case project.EdgeInvoices:
		m.ResetInvoices()
		return nil
	case project.EdgeFiles:
		m.ResetFiles()
		return nil
	case project.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}
