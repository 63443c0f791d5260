// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/zhenweng/contract-parser/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldProjectID, v))
}

// ContractNumber applies equality check predicate on the "contract_number" field. It's identical to ContractNumberEQ.
func ContractNumber(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractNumber, v))
}

// ContractName applies equality check predicate on the "contract_name" field. It's identical to ContractNameEQ.
func ContractName(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractName, v))
}

// PartyA applies equality check predicate on the "party_a" field. It's identical to PartyAEQ.
func PartyA(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPartyA, v))
}

// PartyB applies equality check predicate on the "party_b" field. It's identical to PartyBEQ.
func PartyB(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPartyB, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldAmount, v))
}

// SignDate applies equality check predicate on the "sign_date" field. It's identical to SignDateEQ.
func SignDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSignDate, v))
}

// EffectiveDate applies equality check predicate on the "effective_date" field. It's identical to EffectiveDateEQ.
func EffectiveDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldEffectiveDate, v))
}

// ExpiryDate applies equality check predicate on the "expiry_date" field. It's identical to ExpiryDateEQ.
func ExpiryDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldExpiryDate, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldFilePath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldProjectID, vs...))
}

// ContractNumberEQ applies the EQ predicate on the "contract_number" field.
func ContractNumberEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractNumber, v))
}

// ContractNumberNEQ applies the NEQ predicate on the "contract_number" field.
func ContractNumberNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldContractNumber, v))
}

// ContractNumberIn applies the In predicate on the "contract_number" field.
func ContractNumberIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldContractNumber, vs...))
}

// ContractNumberNotIn applies the NotIn predicate on the "contract_number" field.
func ContractNumberNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldContractNumber, vs...))
}

// ContractNumberGT applies the GT predicate on the "contract_number" field.
func ContractNumberGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldContractNumber, v))
}

// ContractNumberGTE applies the GTE predicate on the "contract_number" field.
func ContractNumberGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldContractNumber, v))
}

// ContractNumberLT applies the LT predicate on the "contract_number" field.
func ContractNumberLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldContractNumber, v))
}

// ContractNumberLTE applies the LTE predicate on the "contract_number" field.
func ContractNumberLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldContractNumber, v))
}

// ContractNumberContains applies the Contains predicate on the "contract_number" field.
func ContractNumberContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldContractNumber, v))
}

// ContractNumberHasPrefix applies the HasPrefix predicate on the "contract_number" field.
func ContractNumberHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldContractNumber, v))
}

// ContractNumberHasSuffix applies the HasSuffix predicate on the "contract_number" field.
func ContractNumberHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldContractNumber, v))
}

// ContractNumberIsNil applies the IsNil predicate on the "contract_number" field.
func ContractNumberIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldContractNumber))
}

// ContractNumberNotNil applies the NotNil predicate on the "contract_number" field.
func ContractNumberNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldContractNumber))
}

// ContractNumberEqualFold applies the EqualFold predicate on the "contract_number" field.
func ContractNumberEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldContractNumber, v))
}

// ContractNumberContainsFold applies the ContainsFold predicate on the "contract_number" field.
func ContractNumberContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldContractNumber, v))
}

// ContractNameEQ applies the EQ predicate on the "contract_name" field.
func ContractNameEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractName, v))
}

// ContractNameNEQ applies the NEQ predicate on the "contract_name" field.
func ContractNameNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldContractName, v))
}

// ContractNameIn applies the In predicate on the "contract_name" field.
func ContractNameIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldContractName, vs...))
}

// ContractNameNotIn applies the NotIn predicate on the "contract_name" field.
func ContractNameNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldContractName, vs...))
}

// ContractNameGT applies the GT predicate on the "contract_name" field.
func ContractNameGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldContractName, v))
}

// ContractNameGTE applies the GTE predicate on the "contract_name" field.
func ContractNameGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldContractName, v))
}

// ContractNameLT applies the LT predicate on the "contract_name" field.
func ContractNameLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldContractName, v))
}

// ContractNameLTE applies the LTE predicate on the "contract_name" field.
func ContractNameLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldContractName, v))
}

// ContractNameContains applies the Contains predicate on the "contract_name" field.
func ContractNameContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldContractName, v))
}

// ContractNameHasPrefix applies the HasPrefix predicate on the "contract_name" field.
func ContractNameHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldContractName, v))
}

// ContractNameHasSuffix applies the HasSuffix predicate on the "contract_name" field.
func ContractNameHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldContractName, v))
}

// ContractNameIsNil applies the IsNil predicate on the "contract_name" field.
func ContractNameIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldContractName))
}

// ContractNameNotNil applies the NotNil predicate on the "contract_name" field.
func ContractNameNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldContractName))
}

// ContractNameEqualFold applies the EqualFold predicate on the "contract_name" field.
func ContractNameEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldContractName, v))
}

// ContractNameContainsFold applies the ContainsFold predicate on the "contract_name" field.
func ContractNameContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldContractName, v))
}

// PartyAEQ applies the EQ predicate on the "party_a" field.
func PartyAEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPartyA, v))
}

// PartyANEQ applies the NEQ predicate on the "party_a" field.
func PartyANEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldPartyA, v))
}

// PartyAIn applies the In predicate on the "party_a" field.
func PartyAIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldPartyA, vs...))
}

// PartyANotIn applies the NotIn predicate on the "party_a" field.
func PartyANotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldPartyA, vs...))
}

// PartyAGT applies the GT predicate on the "party_a" field.
func PartyAGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldPartyA, v))
}

// PartyAGTE applies the GTE predicate on the "party_a" field.
func PartyAGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldPartyA, v))
}

// PartyALT applies the LT predicate on the "party_a" field.
func PartyALT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldPartyA, v))
}

// PartyALTE applies the LTE predicate on the "party_a" field.
func PartyALTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldPartyA, v))
}

// PartyAContains applies the Contains predicate on the "party_a" field.
func PartyAContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldPartyA, v))
}

// PartyAHasPrefix applies the HasPrefix predicate on the "party_a" field.
func PartyAHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldPartyA, v))
}

// PartyAHasSuffix applies the HasSuffix predicate on the "party_a" field.
func PartyAHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldPartyA, v))
}

// PartyAIsNil applies the IsNil predicate on the "party_a" field.
func PartyAIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldPartyA))
}

// PartyANotNil applies the NotNil predicate on the "party_a" field.
func PartyANotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldPartyA))
}

// PartyAEqualFold applies the EqualFold predicate on the "party_a" field.
func PartyAEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldPartyA, v))
}

// PartyAContainsFold applies the ContainsFold predicate on the "party_a" field.
func PartyAContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldPartyA, v))
}

// PartyBEQ applies the EQ predicate on the "party_b" field.
func PartyBEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPartyB, v))
}

// PartyBNEQ applies the NEQ predicate on the "party_b" field.
func PartyBNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldPartyB, v))
}

// PartyBIn applies the In predicate on the "party_b" field.
func PartyBIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldPartyB, vs...))
}

// PartyBNotIn applies the NotIn predicate on the "party_b" field.
func PartyBNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldPartyB, vs...))
}

// PartyBGT applies the GT predicate on the "party_b" field.
func PartyBGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldPartyB, v))
}

// PartyBGTE applies the GTE predicate on the "party_b" field.
func PartyBGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldPartyB, v))
}

// PartyBLT applies the LT predicate on the "party_b" field.
func PartyBLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldPartyB, v))
}

// PartyBLTE applies the LTE predicate on the "party_b" field.
func PartyBLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldPartyB, v))
}

// PartyBContains applies the Contains predicate on the "party_b" field.
func PartyBContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldPartyB, v))
}

// PartyBHasPrefix applies the HasPrefix predicate on the "party_b" field.
func PartyBHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldPartyB, v))
}

// PartyBHasSuffix applies the HasSuffix predicate on the "party_b" field.
func PartyBHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldPartyB, v))
}

// PartyBIsNil applies the IsNil predicate on the "party_b" field.
func PartyBIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldPartyB))
}

// PartyBNotNil applies the NotNil predicate on the "party_b" field.
func PartyBNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldPartyB))
}

// PartyBEqualFold applies the EqualFold predicate on the "party_b" field.
func PartyBEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldPartyB, v))
}

// PartyBContainsFold applies the ContainsFold predicate on the "party_b" field.
func PartyBContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldPartyB, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldAmount, v))
}

// AmountIsNil applies the IsNil predicate on the "amount" field.
func AmountIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldAmount))
}

// AmountNotNil applies the NotNil predicate on the "amount" field.
func AmountNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldAmount))
}

// SignDateEQ applies the EQ predicate on the "sign_date" field.
func SignDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSignDate, v))
}

// SignDateNEQ applies the NEQ predicate on the "sign_date" field.
func SignDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldSignDate, v))
}

// SignDateIn applies the In predicate on the "sign_date" field.
func SignDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldSignDate, vs...))
}

// SignDateNotIn applies the NotIn predicate on the "sign_date" field.
func SignDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldSignDate, vs...))
}

// SignDateGT applies the GT predicate on the "sign_date" field.
func SignDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldSignDate, v))
}

// SignDateGTE applies the GTE predicate on the "sign_date" field.
func SignDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldSignDate, v))
}

// SignDateLT applies the LT predicate on the "sign_date" field.
func SignDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldSignDate, v))
}

// SignDateLTE applies the LTE predicate on the "sign_date" field.
func SignDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldSignDate, v))
}

// SignDateIsNil applies the IsNil predicate on the "sign_date" field.
func SignDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldSignDate))
}

// SignDateNotNil applies the NotNil predicate on the "sign_date" field.
func SignDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldSignDate))
}

// EffectiveDateEQ applies the EQ predicate on the "effective_date" field.
func EffectiveDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldEffectiveDate, v))
}

// EffectiveDateNEQ applies the NEQ predicate on the "effective_date" field.
func EffectiveDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldEffectiveDate, v))
}

// EffectiveDateIn applies the In predicate on the "effective_date" field.
func EffectiveDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldEffectiveDate, vs...))
}

// EffectiveDateNotIn applies the NotIn predicate on the "effective_date" field.
func EffectiveDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldEffectiveDate, vs...))
}

// EffectiveDateGT applies the GT predicate on the "effective_date" field.
func EffectiveDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldEffectiveDate, v))
}

// EffectiveDateGTE applies the GTE predicate on the "effective_date" field.
func EffectiveDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldEffectiveDate, v))
}

// EffectiveDateLT applies the LT predicate on the "effective_date" field.
func EffectiveDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldEffectiveDate, v))
}

// EffectiveDateLTE applies the LTE predicate on the "effective_date" field.
func EffectiveDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldEffectiveDate, v))
}

// EffectiveDateIsNil applies the IsNil predicate on the "effective_date" field.
func EffectiveDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldEffectiveDate))
}

// EffectiveDateNotNil applies the NotNil predicate on the "effective_date" field.
func EffectiveDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldEffectiveDate))
}

// ExpiryDateEQ applies the EQ predicate on the "expiry_date" field.
func ExpiryDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldExpiryDate, v))
}

// ExpiryDateNEQ applies the NEQ predicate on the "expiry_date" field.
func ExpiryDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldExpiryDate, v))
}

// ExpiryDateIn applies the In predicate on the "expiry_date" field.
func ExpiryDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldExpiryDate, vs...))
}

// ExpiryDateNotIn applies the NotIn predicate on the "expiry_date" field.
func ExpiryDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldExpiryDate, vs...))
}

// ExpiryDateGT applies the GT predicate on the "expiry_date" field.
func ExpiryDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldExpiryDate, v))
}

// ExpiryDateGTE applies the GTE predicate on the "expiry_date" field.
func ExpiryDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldExpiryDate, v))
}

// ExpiryDateLT applies the LT predicate on the "expiry_date" field.
func ExpiryDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldExpiryDate, v))
}

// ExpiryDateLTE applies the LTE predicate on the "expiry_date" field.
func ExpiryDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldExpiryDate, v))
}

// ExpiryDateIsNil applies the IsNil predicate on the "expiry_date" field.
func ExpiryDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldExpiryDate))
}

// ExpiryDateNotNil applies the NotNil predicate on the "expiry_date" field.
func ExpiryDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldExpiryDate))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathIsNil applies the IsNil predicate on the "file_path" field.
func FilePathIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldFilePath))
}

// FilePathNotNil applies the NotNil predicate on the "file_path" field.
func FilePathNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldFilePath))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldFilePath, v))
}

// ParsedDataIsNil applies the IsNil predicate on the "parsed_data" field.
func ParsedDataIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldParsedData))
}

// ParsedDataNotNil applies the NotNil predicate on the "parsed_data" field.
func ParsedDataNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldParsedData))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.DocumentFile) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.NotPredicates(p))
}
