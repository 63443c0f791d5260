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
	"github.com/zhenweng/contract-parser/gen/ent/invoice"
	"github.com/zhenweng/contract-parser/gen/ent/predicate"
	"github.com/zhenweng/contract-parser/gen/ent/project"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *InvoiceUpdate) SetProjectID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableProjectID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdate) ClearInvoiceNumber() *InvoiceUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceCode sets the "invoice_code" field.
func (_u *InvoiceUpdate) SetInvoiceCode(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceCode(v)
	return _u
}

// SetNillableInvoiceCode sets the "invoice_code" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceCode(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceCode(*v)
	}
	return _u
}

// ClearInvoiceCode clears the value of the "invoice_code" field.
func (_u *InvoiceUpdate) ClearInvoiceCode() *InvoiceUpdate {
	_u.mutation.ClearInvoiceCode()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *InvoiceUpdate) SetAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *InvoiceUpdate) AddAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *InvoiceUpdate) ClearAmount() *InvoiceUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdate) ClearInvoiceDate() *InvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetSeller sets the "seller" field.
func (_u *InvoiceUpdate) SetSeller(v string) *InvoiceUpdate {
	_u.mutation.SetSeller(v)
	return _u
}

// SetNillableSeller sets the "seller" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSeller(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSeller(*v)
	}
	return _u
}

// ClearSeller clears the value of the "seller" field.
func (_u *InvoiceUpdate) ClearSeller() *InvoiceUpdate {
	_u.mutation.ClearSeller()
	return _u
}

// SetBuyer sets the "buyer" field.
func (_u *InvoiceUpdate) SetBuyer(v string) *InvoiceUpdate {
	_u.mutation.SetBuyer(v)
	return _u
}

// SetNillableBuyer sets the "buyer" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableBuyer(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetBuyer(*v)
	}
	return _u
}

// ClearBuyer clears the value of the "buyer" field.
func (_u *InvoiceUpdate) ClearBuyer() *InvoiceUpdate {
	_u.mutation.ClearBuyer()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceUpdate) SetTaxAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTaxAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceUpdate) AddTaxAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *InvoiceUpdate) ClearTaxAmount() *InvoiceUpdate {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetRemark sets the "remark" field.
func (_u *InvoiceUpdate) SetRemark(v string) *InvoiceUpdate {
	_u.mutation.SetRemark(v)
	return _u
}

// SetNillableRemark sets the "remark" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableRemark(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetRemark(*v)
	}
	return _u
}

// ClearRemark clears the value of the "remark" field.
func (_u *InvoiceUpdate) ClearRemark() *InvoiceUpdate {
	_u.mutation.ClearRemark()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *InvoiceUpdate) SetFilePath(v string) *InvoiceUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFilePath(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *InvoiceUpdate) ClearFilePath() *InvoiceUpdate {
	_u.mutation.ClearFilePath()
	return _u
}

// SetParsedData sets the "parsed_data" field.
func (_u *InvoiceUpdate) SetParsedData(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.SetParsedData(v)
	return _u
}

// AppendParsedData appends value to the "parsed_data" field.
func (_u *InvoiceUpdate) AppendParsedData(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.AppendParsedData(v)
	return _u
}

// ClearParsedData clears the value of the "parsed_data" field.
func (_u *InvoiceUpdate) ClearParsedData() *InvoiceUpdate {
	_u.mutation.ClearParsedData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *InvoiceUpdate) SetProject(v *Project) *InvoiceUpdate {
	return _u.SetProjectID(v.ID)
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by IDs.
func (_u *InvoiceUpdate) AddFileIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the DocumentFile entity.
func (_u *InvoiceUpdate) AddFiles(v ...*DocumentFile) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *InvoiceUpdate) ClearProject() *InvoiceUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearFiles clears all "files" edges to the DocumentFile entity.
func (_u *InvoiceUpdate) ClearFiles() *InvoiceUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to DocumentFile entities by IDs.
func (_u *InvoiceUpdate) RemoveFileIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to DocumentFile entities.
func (_u *InvoiceUpdate) RemoveFiles(v ...*DocumentFile) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.project"`)
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceCode(); ok {
		_spec.SetField(invoice.FieldInvoiceCode, field.TypeString, value)
	}
	if _u.mutation.InvoiceCodeCleared() {
		_spec.ClearField(invoice.FieldInvoiceCode, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(invoice.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Seller(); ok {
		_spec.SetField(invoice.FieldSeller, field.TypeString, value)
	}
	if _u.mutation.SellerCleared() {
		_spec.ClearField(invoice.FieldSeller, field.TypeString)
	}
	if value, ok := _u.mutation.Buyer(); ok {
		_spec.SetField(invoice.FieldBuyer, field.TypeString, value)
	}
	if _u.mutation.BuyerCleared() {
		_spec.ClearField(invoice.FieldBuyer, field.TypeString)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(invoice.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Remark(); ok {
		_spec.SetField(invoice.FieldRemark, field.TypeString, value)
	}
	if _u.mutation.RemarkCleared() {
		_spec.ClearField(invoice.FieldRemark, field.TypeString)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(invoice.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(invoice.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedData(); ok {
		_spec.SetField(invoice.FieldParsedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParsedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldParsedData, value)
		})
	}
	if _u.mutation.ParsedDataCleared() {
		_spec.ClearField(invoice.FieldParsedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProjectTable,
			Columns: []string{invoice.ProjectColumn},
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
			Table:   invoice.ProjectTable,
			Columns: []string{invoice.ProjectColumn},
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
			Table:   invoice.FilesTable,
			Columns: []string{invoice.FilesColumn},
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
			Table:   invoice.FilesTable,
			Columns: []string{invoice.FilesColumn},
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
			Table:   invoice.FilesTable,
			Columns: []string{invoice.FilesColumn},
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
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetProjectID sets the "project_id" field.
func (_u *InvoiceUpdateOne) SetProjectID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableProjectID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdateOne) ClearInvoiceNumber() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceCode sets the "invoice_code" field.
func (_u *InvoiceUpdateOne) SetInvoiceCode(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceCode(v)
	return _u
}

// SetNillableInvoiceCode sets the "invoice_code" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceCode(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceCode(*v)
	}
	return _u
}

// ClearInvoiceCode clears the value of the "invoice_code" field.
func (_u *InvoiceUpdateOne) ClearInvoiceCode() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceCode()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *InvoiceUpdateOne) SetAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *InvoiceUpdateOne) AddAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *InvoiceUpdateOne) ClearAmount() *InvoiceUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdateOne) ClearInvoiceDate() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetSeller sets the "seller" field.
func (_u *InvoiceUpdateOne) SetSeller(v string) *InvoiceUpdateOne {
	_u.mutation.SetSeller(v)
	return _u
}

// SetNillableSeller sets the "seller" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSeller(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSeller(*v)
	}
	return _u
}

// ClearSeller clears the value of the "seller" field.
func (_u *InvoiceUpdateOne) ClearSeller() *InvoiceUpdateOne {
	_u.mutation.ClearSeller()
	return _u
}

// SetBuyer sets the "buyer" field.
func (_u *InvoiceUpdateOne) SetBuyer(v string) *InvoiceUpdateOne {
	_u.mutation.SetBuyer(v)
	return _u
}

// SetNillableBuyer sets the "buyer" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableBuyer(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetBuyer(*v)
	}
	return _u
}

// ClearBuyer clears the value of the "buyer" field.
func (_u *InvoiceUpdateOne) ClearBuyer() *InvoiceUpdateOne {
	_u.mutation.ClearBuyer()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceUpdateOne) SetTaxAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTaxAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceUpdateOne) AddTaxAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *InvoiceUpdateOne) ClearTaxAmount() *InvoiceUpdateOne {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetRemark sets the "remark" field.
func (_u *InvoiceUpdateOne) SetRemark(v string) *InvoiceUpdateOne {
	_u.mutation.SetRemark(v)
	return _u
}

// SetNillableRemark sets the "remark" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableRemark(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetRemark(*v)
	}
	return _u
}

// ClearRemark clears the value of the "remark" field.
func (_u *InvoiceUpdateOne) ClearRemark() *InvoiceUpdateOne {
	_u.mutation.ClearRemark()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *InvoiceUpdateOne) SetFilePath(v string) *InvoiceUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFilePath(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *InvoiceUpdateOne) ClearFilePath() *InvoiceUpdateOne {
	_u.mutation.ClearFilePath()
	return _u
}

// SetParsedData sets the "parsed_data" field.
func (_u *InvoiceUpdateOne) SetParsedData(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.SetParsedData(v)
	return _u
}

// AppendParsedData appends value to the "parsed_data" field.
func (_u *InvoiceUpdateOne) AppendParsedData(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.AppendParsedData(v)
	return _u
}

// ClearParsedData clears the value of the "parsed_data" field.
func (_u *InvoiceUpdateOne) ClearParsedData() *InvoiceUpdateOne {
	_u.mutation.ClearParsedData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *InvoiceUpdateOne) SetProject(v *Project) *InvoiceUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by IDs.
func (_u *InvoiceUpdateOne) AddFileIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the DocumentFile entity.
func (_u *InvoiceUpdateOne) AddFiles(v ...*DocumentFile) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *InvoiceUpdateOne) ClearProject() *InvoiceUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearFiles clears all "files" edges to the DocumentFile entity.
func (_u *InvoiceUpdateOne) ClearFiles() *InvoiceUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to DocumentFile entities by IDs.
func (_u *InvoiceUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to DocumentFile entities.
func (_u *InvoiceUpdateOne) RemoveFiles(v ...*DocumentFile) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.project"`)
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceCode(); ok {
		_spec.SetField(invoice.FieldInvoiceCode, field.TypeString, value)
	}
	if _u.mutation.InvoiceCodeCleared() {
		_spec.ClearField(invoice.FieldInvoiceCode, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(invoice.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Seller(); ok {
		_spec.SetField(invoice.FieldSeller, field.TypeString, value)
	}
	if _u.mutation.SellerCleared() {
		_spec.ClearField(invoice.FieldSeller, field.TypeString)
	}
	if value, ok := _u.mutation.Buyer(); ok {
		_spec.SetField(invoice.FieldBuyer, field.TypeString, value)
	}
	if _u.mutation.BuyerCleared() {
		_spec.ClearField(invoice.FieldBuyer, field.TypeString)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(invoice.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Remark(); ok {
		_spec.SetField(invoice.FieldRemark, field.TypeString, value)
	}
	if _u.mutation.RemarkCleared() {
		_spec.ClearField(invoice.FieldRemark, field.TypeString)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(invoice.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(invoice.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedData(); ok {
		_spec.SetField(invoice.FieldParsedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParsedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldParsedData, value)
		})
	}
	if _u.mutation.ParsedDataCleared() {
		_spec.ClearField(invoice.FieldParsedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProjectTable,
			Columns: []string{invoice.ProjectColumn},
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
			Table:   invoice.ProjectTable,
			Columns: []string{invoice.ProjectColumn},
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
			Table:   invoice.FilesTable,
			Columns: []string{invoice.FilesColumn},
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
			Table:   invoice.FilesTable,
			Columns: []string{invoice.FilesColumn},
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
			Table:   invoice.FilesTable,
			Columns: []string{invoice.FilesColumn},
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
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
