// Code generated by ent, DO NOT EDIT.

package class

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/nmt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Class {
	return predicate.Class(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Class {
	return predicate.Class(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Class {
	return predicate.Class(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Class {
	return predicate.Class(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Class {
	return predicate.Class(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Class {
	return predicate.Class(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Class {
	return predicate.Class(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Class {
	return predicate.Class(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Class {
	return predicate.Class(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Class {
	return predicate.Class(sql.FieldEQ(FieldName, v))
}

// JoinCode applies equality check predicate on the "join_code" field. It's identical to JoinCodeEQ.
func JoinCode(v string) predicate.Class {
	return predicate.Class(sql.FieldEQ(FieldJoinCode, v))
}

// JoinCodeExpiresAt applies equality check predicate on the "join_code_expires_at" field. It's identical to JoinCodeExpiresAtEQ.
func JoinCodeExpiresAt(v time.Time) predicate.Class {
	return predicate.Class(sql.FieldEQ(FieldJoinCodeExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Class {
	return predicate.Class(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Class {
	return predicate.Class(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Class {
	return predicate.Class(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Class {
	return predicate.Class(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Class {
	return predicate.Class(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Class {
	return predicate.Class(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Class {
	return predicate.Class(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Class {
	return predicate.Class(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Class {
	return predicate.Class(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Class {
	return predicate.Class(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Class {
	return predicate.Class(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Class {
	return predicate.Class(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Class {
	return predicate.Class(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Class {
	return predicate.Class(sql.FieldContainsFold(FieldName, v))
}

// JoinCodeEQ applies the EQ predicate on the "join_code" field.
func JoinCodeEQ(v string) predicate.Class {
	return predicate.Class(sql.FieldEQ(FieldJoinCode, v))
}

// JoinCodeNEQ applies the NEQ predicate on the "join_code" field.
func JoinCodeNEQ(v string) predicate.Class {
	return predicate.Class(sql.FieldNEQ(FieldJoinCode, v))
}

// JoinCodeIn applies the In predicate on the "join_code" field.
func JoinCodeIn(vs ...string) predicate.Class {
	return predicate.Class(sql.FieldIn(FieldJoinCode, vs...))
}

// JoinCodeNotIn applies the NotIn predicate on the "join_code" field.
func JoinCodeNotIn(vs ...string) predicate.Class {
	return predicate.Class(sql.FieldNotIn(FieldJoinCode, vs...))
}

// JoinCodeGT applies the GT predicate on the "join_code" field.
func JoinCodeGT(v string) predicate.Class {
	return predicate.Class(sql.FieldGT(FieldJoinCode, v))
}

// JoinCodeGTE applies the GTE predicate on the "join_code" field.
func JoinCodeGTE(v string) predicate.Class {
	return predicate.Class(sql.FieldGTE(FieldJoinCode, v))
}

// JoinCodeLT applies the LT predicate on the "join_code" field.
func JoinCodeLT(v string) predicate.Class {
	return predicate.Class(sql.FieldLT(FieldJoinCode, v))
}

// JoinCodeLTE applies the LTE predicate on the "join_code" field.
func JoinCodeLTE(v string) predicate.Class {
	return predicate.Class(sql.FieldLTE(FieldJoinCode, v))
}

// JoinCodeContains applies the Contains predicate on the "join_code" field.
func JoinCodeContains(v string) predicate.Class {
	return predicate.Class(sql.FieldContains(FieldJoinCode, v))
}

// JoinCodeHasPrefix applies the HasPrefix predicate on the "join_code" field.
func JoinCodeHasPrefix(v string) predicate.Class {
	return predicate.Class(sql.FieldHasPrefix(FieldJoinCode, v))
}

// JoinCodeHasSuffix applies the HasSuffix predicate on the "join_code" field.
func JoinCodeHasSuffix(v string) predicate.Class {
	return predicate.Class(sql.FieldHasSuffix(FieldJoinCode, v))
}

// JoinCodeIsNil applies the IsNil predicate on the "join_code" field.
func JoinCodeIsNil() predicate.Class {
	return predicate.Class(sql.FieldIsNull(FieldJoinCode))
}

// JoinCodeNotNil applies the NotNil predicate on the "join_code" field.
func JoinCodeNotNil() predicate.Class {
	return predicate.Class(sql.FieldNotNull(FieldJoinCode))
}

// JoinCodeEqualFold applies the EqualFold predicate on the "join_code" field.
func JoinCodeEqualFold(v string) predicate.Class {
	return predicate.Class(sql.FieldEqualFold(FieldJoinCode, v))
}

// JoinCodeContainsFold applies the ContainsFold predicate on the "join_code" field.
func JoinCodeContainsFold(v string) predicate.Class {
	return predicate.Class(sql.FieldContainsFold(FieldJoinCode, v))
}

// JoinCodeExpiresAtEQ applies the EQ predicate on the "join_code_expires_at" field.
func JoinCodeExpiresAtEQ(v time.Time) predicate.Class {
	return predicate.Class(sql.FieldEQ(FieldJoinCodeExpiresAt, v))
}

// JoinCodeExpiresAtNEQ applies the NEQ predicate on the "join_code_expires_at" field.
func JoinCodeExpiresAtNEQ(v time.Time) predicate.Class {
	return predicate.Class(sql.FieldNEQ(FieldJoinCodeExpiresAt, v))
}

// JoinCodeExpiresAtIn applies the In predicate on the "join_code_expires_at" field.
func JoinCodeExpiresAtIn(vs ...time.Time) predicate.Class {
	return predicate.Class(sql.FieldIn(FieldJoinCodeExpiresAt, vs...))
}

// JoinCodeExpiresAtNotIn applies the NotIn predicate on the "join_code_expires_at" field.
func JoinCodeExpiresAtNotIn(vs ...time.Time) predicate.Class {
	return predicate.Class(sql.FieldNotIn(FieldJoinCodeExpiresAt, vs...))
}

// JoinCodeExpiresAtGT applies the GT predicate on the "join_code_expires_at" field.
func JoinCodeExpiresAtGT(v time.Time) predicate.Class {
	return predicate.Class(sql.FieldGT(FieldJoinCodeExpiresAt, v))
}

// JoinCodeExpiresAtGTE applies the GTE predicate on the "join_code_expires_at" field.
func JoinCodeExpiresAtGTE(v time.Time) predicate.Class {
	return predicate.Class(sql.FieldGTE(FieldJoinCodeExpiresAt, v))
}

// JoinCodeExpiresAtLT applies the LT predicate on the "join_code_expires_at" field.
func JoinCodeExpiresAtLT(v time.Time) predicate.Class {
	return predicate.Class(sql.FieldLT(FieldJoinCodeExpiresAt, v))
}

// JoinCodeExpiresAtLTE applies the LTE predicate on the "join_code_expires_at" field.
func JoinCodeExpiresAtLTE(v time.Time) predicate.Class {
	return predicate.Class(sql.FieldLTE(FieldJoinCodeExpiresAt, v))
}

// JoinCodeExpiresAtIsNil applies the IsNil predicate on the "join_code_expires_at" field.
func JoinCodeExpiresAtIsNil() predicate.Class {
	return predicate.Class(sql.FieldIsNull(FieldJoinCodeExpiresAt))
}

// JoinCodeExpiresAtNotNil applies the NotNil predicate on the "join_code_expires_at" field.
func JoinCodeExpiresAtNotNil() predicate.Class {
	return predicate.Class(sql.FieldNotNull(FieldJoinCodeExpiresAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Class {
	return predicate.Class(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Class {
	return predicate.Class(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Class {
	return predicate.Class(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Class {
	return predicate.Class(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Class {
	return predicate.Class(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Class {
	return predicate.Class(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Class {
	return predicate.Class(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Class {
	return predicate.Class(sql.FieldLTE(FieldCreatedAt, v))
}

// HasStudents applies the HasEdge predicate on the "students" edge.
func HasStudents() predicate.Class {
	return predicate.Class(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StudentsTable, StudentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudentsWith applies the HasEdge predicate on the "students" edge with a given conditions (other predicates).
func HasStudentsWith(preds ...predicate.Student) predicate.Class {
	return predicate.Class(func(s *sql.Selector) {
		step := newStudentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Class) predicate.Class {
	return predicate.Class(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Class) predicate.Class {
	return predicate.Class(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Class) predicate.Class {
	return predicate.Class(sql.NotPredicates(p))
}
