// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Bill is the predicate function for bill builders.
type Bill func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// FieldSchema is the predicate function for fieldschema builders.
type FieldSchema func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)
