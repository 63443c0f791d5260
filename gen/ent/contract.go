// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/zhenweng/contract-parser/gen/ent/contract"
	"github.com/zhenweng/contract-parser/gen/ent/project"
)

// Contract is the model entity for the Contract schema.
type Contract struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID uuid.UUID `json:"project_id,omitempty"`
	// ContractNumber holds the value of the "contract_number" field.
	ContractNumber *string `json:"contract_number,omitempty"`
	// ContractName holds the value of the "contract_name" field.
	ContractName *string `json:"contract_name,omitempty"`
	// PartyA holds the value of the "party_a" field.
	PartyA *string `json:"party_a,omitempty"`
	// PartyB holds the value of the "party_b" field.
	PartyB *string `json:"party_b,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount *float64 `json:"amount,omitempty"`
	// SignDate holds the value of the "sign_date" field.
	SignDate *time.Time `json:"sign_date,omitempty"`
	// EffectiveDate holds the value of the "effective_date" field.
	EffectiveDate *time.Time `json:"effective_date,omitempty"`
	// ExpiryDate holds the value of the "expiry_date" field.
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath *string `json:"file_path,omitempty"`
	// ParsedData holds the value of the "parsed_data" field.
	ParsedData json.RawMessage `json:"parsed_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContractQuery when eager-loading is set.
	Edges        ContractEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContractEdges holds the relations/edges for other nodes in the graph.
type ContractEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Files holds the value of the files edge.
	Files []*DocumentFile `json:"files,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContractEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) FilesOrErr() ([]*DocumentFile, error) {
	if e.loadedTypes[1] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contract) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contract.FieldParsedData:
			values[i] = new([]byte)
		case contract.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case contract.FieldContractNumber, contract.FieldContractName, contract.FieldPartyA, contract.FieldPartyB, contract.FieldFilePath:
			values[i] = new(sql.NullString)
		case contract.FieldSignDate, contract.FieldEffectiveDate, contract.FieldExpiryDate, contract.FieldCreatedAt, contract.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case contract.FieldID, contract.FieldProjectID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contract fields.
func (_m *Contract) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contract.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contract.FieldProjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value != nil {
				_m.ProjectID = *value
			}
		case contract.FieldContractNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_number", values[i])
			} else if value.Valid {
				_m.ContractNumber = new(string)
				*_m.ContractNumber = value.String
			}
		case contract.FieldContractName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_name", values[i])
			} else if value.Valid {
				_m.ContractName = new(string)
				*_m.ContractName = value.String
			}
		case contract.FieldPartyA:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field party_a", values[i])
			} else if value.Valid {
				_m.PartyA = new(string)
				*_m.PartyA = value.String
			}
		case contract.FieldPartyB:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field party_b", values[i])
			} else if value.Valid {
				_m.PartyB = new(string)
				*_m.PartyB = value.String
			}
		case contract.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = new(float64)
				*_m.Amount = value.Float64
			}
		case contract.FieldSignDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sign_date", values[i])
			} else if value.Valid {
				_m.SignDate = new(time.Time)
				*_m.SignDate = value.Time
			}
		case contract.FieldEffectiveDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field effective_date", values[i])
			} else if value.Valid {
				_m.EffectiveDate = new(time.Time)
				*_m.EffectiveDate = value.Time
			}
		case contract.FieldExpiryDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expiry_date", values[i])
			} else if value.Valid {
				_m.ExpiryDate = new(time.Time)
				*_m.ExpiryDate = value.Time
			}
		case contract.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = new(string)
				*_m.FilePath = value.String
			}
		case contract.FieldParsedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ParsedData); err != nil {
					return fmt.Errorf("unmarshal field parsed_data: %w", err)
				}
			}
		case contract.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contract.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Contract.
// This includes values selected through modifiers, order, etc.
func (_m *Contract) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Contract entity.
func (_m *Contract) QueryProject() *ProjectQuery {
	return NewContractClient(_m.config).QueryProject(_m)
}

// QueryFiles queries the "files" edge of the Contract entity.
func (_m *Contract) QueryFiles() *DocumentFileQuery {
	return NewContractClient(_m.config).QueryFiles(_m)
}

// Update returns a builder for updating this Contract.
// Note that you need to call Contract.Unwrap() before calling this method if this Contract
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Contract) Update() *ContractUpdateOne {
	return NewContractClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Contract entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Contract) Unwrap() *Contract {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contract is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Contract) String() string {
	var builder strings.Builder
	builder.WriteString("Contract(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	if v := _m.ContractNumber; v != nil {
		builder.WriteString("contract_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContractName; v != nil {
		builder.WriteString("contract_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PartyA; v != nil {
		builder.WriteString("party_a=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PartyB; v != nil {
		builder.WriteString("party_b=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Amount; v != nil {
		builder.WriteString("amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SignDate; v != nil {
		builder.WriteString("sign_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EffectiveDate; v != nil {
		builder.WriteString("effective_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExpiryDate; v != nil {
		builder.WriteString("expiry_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FilePath; v != nil {
		builder.WriteString("file_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("parsed_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParsedData))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Contracts is a parsable slice of Contract.
type Contracts []*Contract
