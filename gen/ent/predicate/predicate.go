// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Contract is the predicate function for contract builders.
type Contract func(*sql.Selector)

// DocumentFile is the predicate function for documentfile builders.
type DocumentFile func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// ParseJob is the predicate function for parsejob builders.
type ParseJob func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)
