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
	"github.com/akaraszi/billscan/gen/ent/bill"
	"github.com/akaraszi/billscan/gen/ent/extractjob"
	"github.com/akaraszi/billscan/gen/ent/predicate"
	"github.com/akaraszi/billscan/gen/ent/profile"
	"github.com/google/uuid"
)

// BillUpdate is the builder for updating Bill entities.
type BillUpdate struct {
	config
	hooks    []Hook
	mutation *BillMutation
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdate) Where(ps ...predicate.Bill) *BillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *BillUpdate) SetProfileID(v uuid.UUID) *BillUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *BillUpdate) SetNillableProfileID(v *uuid.UUID) *BillUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *BillUpdate) SetVendor(v string) *BillUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *BillUpdate) SetNillableVendor(v *string) *BillUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// ClearVendor clears the value of the "vendor" field.
func (_u *BillUpdate) ClearVendor() *BillUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillUpdate) SetAmount(v float64) *BillUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillUpdate) SetNillableAmount(v *float64) *BillUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BillUpdate) AddAmount(v float64) *BillUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *BillUpdate) ClearAmount() *BillUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *BillUpdate) SetCurrencyCode(v string) *BillUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCurrencyCode(v *string) *BillUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *BillUpdate) ClearCurrencyCode() *BillUpdate {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *BillUpdate) SetIssueDate(v time.Time) *BillUpdate {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *BillUpdate) SetNillableIssueDate(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// ClearIssueDate clears the value of the "issue_date" field.
func (_u *BillUpdate) ClearIssueDate() *BillUpdate {
	_u.mutation.ClearIssueDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *BillUpdate) SetDueDate(v time.Time) *BillUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *BillUpdate) SetNillableDueDate(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *BillUpdate) ClearDueDate() *BillUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetAccountNumber sets the "account_number" field.
func (_u *BillUpdate) SetAccountNumber(v string) *BillUpdate {
	_u.mutation.SetAccountNumber(v)
	return _u
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_u *BillUpdate) SetNillableAccountNumber(v *string) *BillUpdate {
	if v != nil {
		_u.SetAccountNumber(*v)
	}
	return _u
}

// ClearAccountNumber clears the value of the "account_number" field.
func (_u *BillUpdate) ClearAccountNumber() *BillUpdate {
	_u.mutation.ClearAccountNumber()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *BillUpdate) SetInvoiceNumber(v string) *BillUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *BillUpdate) SetNillableInvoiceNumber(v *string) *BillUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *BillUpdate) ClearInvoiceNumber() *BillUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetCategory sets the "category" field.
func (_u *BillUpdate) SetCategory(v string) *BillUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCategory(v *string) *BillUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *BillUpdate) ClearCategory() *BillUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetDynamicFields sets the "dynamic_fields" field.
func (_u *BillUpdate) SetDynamicFields(v json.RawMessage) *BillUpdate {
	_u.mutation.SetDynamicFields(v)
	return _u
}

// AppendDynamicFields appends value to the "dynamic_fields" field.
func (_u *BillUpdate) AppendDynamicFields(v json.RawMessage) *BillUpdate {
	_u.mutation.AppendDynamicFields(v)
	return _u
}

// ClearDynamicFields clears the value of the "dynamic_fields" field.
func (_u *BillUpdate) ClearDynamicFields() *BillUpdate {
	_u.mutation.ClearDynamicFields()
	return _u
}

// SetProvenance sets the "provenance" field.
func (_u *BillUpdate) SetProvenance(v json.RawMessage) *BillUpdate {
	_u.mutation.SetProvenance(v)
	return _u
}

// AppendProvenance appends value to the "provenance" field.
func (_u *BillUpdate) AppendProvenance(v json.RawMessage) *BillUpdate {
	_u.mutation.AppendProvenance(v)
	return _u
}

// ClearProvenance clears the value of the "provenance" field.
func (_u *BillUpdate) ClearProvenance() *BillUpdate {
	_u.mutation.ClearProvenance()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillUpdate) SetCreatedAt(v time.Time) *BillUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCreatedAt(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BillUpdate) SetUpdatedAt(v time.Time) *BillUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *BillUpdate) SetProfile(v *Profile) *BillUpdate {
	return _u.SetProfileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *BillUpdate) AddJobIDs(ids ...uuid.UUID) *BillUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *BillUpdate) AddJobs(v ...*ExtractJob) *BillUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdate) Mutation() *BillMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *BillUpdate) ClearProfile() *BillUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *BillUpdate) ClearJobs() *BillUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *BillUpdate) RemoveJobIDs(ids ...uuid.UUID) *BillUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *BillUpdate) RemoveJobs(v ...*ExtractJob) *BillUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BillUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bill.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdate) check() error {
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := bill.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Bill.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := bill.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Bill.category": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bill.profile"`)
	}
	return nil
}

func (_u *BillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(bill.FieldVendor, field.TypeString, value)
	}
	if _u.mutation.VendorCleared() {
		_spec.ClearField(bill.FieldVendor, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(bill.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(bill.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(bill.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(bill.FieldIssueDate, field.TypeTime, value)
	}
	if _u.mutation.IssueDateCleared() {
		_spec.ClearField(bill.FieldIssueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(bill.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(bill.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AccountNumber(); ok {
		_spec.SetField(bill.FieldAccountNumber, field.TypeString, value)
	}
	if _u.mutation.AccountNumberCleared() {
		_spec.ClearField(bill.FieldAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(bill.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(bill.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(bill.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(bill.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.DynamicFields(); ok {
		_spec.SetField(bill.FieldDynamicFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDynamicFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bill.FieldDynamicFields, value)
		})
	}
	if _u.mutation.DynamicFieldsCleared() {
		_spec.ClearField(bill.FieldDynamicFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Provenance(); ok {
		_spec.SetField(bill.FieldProvenance, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProvenance(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bill.FieldProvenance, value)
		})
	}
	if _u.mutation.ProvenanceCleared() {
		_spec.ClearField(bill.FieldProvenance, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bill.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.ProfileTable,
			Columns: []string{bill.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.ProfileTable,
			Columns: []string{bill.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bill.JobsTable,
			Columns: []string{bill.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bill.JobsTable,
			Columns: []string{bill.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bill.JobsTable,
			Columns: []string{bill.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillUpdateOne is the builder for updating a single Bill entity.
type BillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *BillUpdateOne) SetProfileID(v uuid.UUID) *BillUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableProfileID(v *uuid.UUID) *BillUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *BillUpdateOne) SetVendor(v string) *BillUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableVendor(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// ClearVendor clears the value of the "vendor" field.
func (_u *BillUpdateOne) ClearVendor() *BillUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillUpdateOne) SetAmount(v float64) *BillUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableAmount(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BillUpdateOne) AddAmount(v float64) *BillUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *BillUpdateOne) ClearAmount() *BillUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *BillUpdateOne) SetCurrencyCode(v string) *BillUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCurrencyCode(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *BillUpdateOne) ClearCurrencyCode() *BillUpdateOne {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *BillUpdateOne) SetIssueDate(v time.Time) *BillUpdateOne {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableIssueDate(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// ClearIssueDate clears the value of the "issue_date" field.
func (_u *BillUpdateOne) ClearIssueDate() *BillUpdateOne {
	_u.mutation.ClearIssueDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *BillUpdateOne) SetDueDate(v time.Time) *BillUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableDueDate(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *BillUpdateOne) ClearDueDate() *BillUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetAccountNumber sets the "account_number" field.
func (_u *BillUpdateOne) SetAccountNumber(v string) *BillUpdateOne {
	_u.mutation.SetAccountNumber(v)
	return _u
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableAccountNumber(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetAccountNumber(*v)
	}
	return _u
}

// ClearAccountNumber clears the value of the "account_number" field.
func (_u *BillUpdateOne) ClearAccountNumber() *BillUpdateOne {
	_u.mutation.ClearAccountNumber()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *BillUpdateOne) SetInvoiceNumber(v string) *BillUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableInvoiceNumber(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *BillUpdateOne) ClearInvoiceNumber() *BillUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetCategory sets the "category" field.
func (_u *BillUpdateOne) SetCategory(v string) *BillUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCategory(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *BillUpdateOne) ClearCategory() *BillUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetDynamicFields sets the "dynamic_fields" field.
func (_u *BillUpdateOne) SetDynamicFields(v json.RawMessage) *BillUpdateOne {
	_u.mutation.SetDynamicFields(v)
	return _u
}

// AppendDynamicFields appends value to the "dynamic_fields" field.
func (_u *BillUpdateOne) AppendDynamicFields(v json.RawMessage) *BillUpdateOne {
	_u.mutation.AppendDynamicFields(v)
	return _u
}

// ClearDynamicFields clears the value of the "dynamic_fields" field.
func (_u *BillUpdateOne) ClearDynamicFields() *BillUpdateOne {
	_u.mutation.ClearDynamicFields()
	return _u
}

// SetProvenance sets the "provenance" field.
func (_u *BillUpdateOne) SetProvenance(v json.RawMessage) *BillUpdateOne {
	_u.mutation.SetProvenance(v)
	return _u
}

// AppendProvenance appends value to the "provenance" field.
func (_u *BillUpdateOne) AppendProvenance(v json.RawMessage) *BillUpdateOne {
	_u.mutation.AppendProvenance(v)
	return _u
}

// ClearProvenance clears the value of the "provenance" field.
func (_u *BillUpdateOne) ClearProvenance() *BillUpdateOne {
	_u.mutation.ClearProvenance()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillUpdateOne) SetCreatedAt(v time.Time) *BillUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCreatedAt(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BillUpdateOne) SetUpdatedAt(v time.Time) *BillUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *BillUpdateOne) SetProfile(v *Profile) *BillUpdateOne {
	return _u.SetProfileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *BillUpdateOne) AddJobIDs(ids ...uuid.UUID) *BillUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *BillUpdateOne) AddJobs(v ...*ExtractJob) *BillUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdateOne) Mutation() *BillMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *BillUpdateOne) ClearProfile() *BillUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *BillUpdateOne) ClearJobs() *BillUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *BillUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *BillUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *BillUpdateOne) RemoveJobs(v ...*ExtractJob) *BillUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdateOne) Where(ps ...predicate.Bill) *BillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillUpdateOne) Select(field string, fields ...string) *BillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bill entity.
func (_u *BillUpdateOne) Save(ctx context.Context) (*Bill, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdateOne) SaveX(ctx context.Context) *Bill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BillUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bill.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdateOne) check() error {
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := bill.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Bill.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := bill.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Bill.category": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bill.profile"`)
	}
	return nil
}

func (_u *BillUpdateOne) sqlSave(ctx context.Context) (_node *Bill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bill.FieldID)
		for _, f := range fields {
			if !bill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bill.FieldID {
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
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(bill.FieldVendor, field.TypeString, value)
	}
	if _u.mutation.VendorCleared() {
		_spec.ClearField(bill.FieldVendor, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(bill.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(bill.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(bill.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(bill.FieldIssueDate, field.TypeTime, value)
	}
	if _u.mutation.IssueDateCleared() {
		_spec.ClearField(bill.FieldIssueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(bill.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(bill.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AccountNumber(); ok {
		_spec.SetField(bill.FieldAccountNumber, field.TypeString, value)
	}
	if _u.mutation.AccountNumberCleared() {
		_spec.ClearField(bill.FieldAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(bill.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(bill.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(bill.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(bill.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.DynamicFields(); ok {
		_spec.SetField(bill.FieldDynamicFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDynamicFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bill.FieldDynamicFields, value)
		})
	}
	if _u.mutation.DynamicFieldsCleared() {
		_spec.ClearField(bill.FieldDynamicFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Provenance(); ok {
		_spec.SetField(bill.FieldProvenance, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProvenance(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bill.FieldProvenance, value)
		})
	}
	if _u.mutation.ProvenanceCleared() {
		_spec.ClearField(bill.FieldProvenance, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bill.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.ProfileTable,
			Columns: []string{bill.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.ProfileTable,
			Columns: []string{bill.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bill.JobsTable,
			Columns: []string{bill.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bill.JobsTable,
			Columns: []string{bill.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bill.JobsTable,
			Columns: []string{bill.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Bill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
