// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "dataset: ..." so it can be grepped in logs.
// Match with errors.Is; extract column context with errors.As(*SchemaError).
var (
	// ErrColumnNotFound indicates a referenced column is absent from the schema.
	ErrColumnNotFound = errors.New("dataset: column not found")

	// ErrColumnKind indicates a column exists but has the wrong kind for the request.
	ErrColumnKind = errors.New("dataset: wrong column kind")

	// ErrDuplicateColumn is returned when a schema declares the same name twice.
	ErrDuplicateColumn = errors.New("dataset: duplicate column")

	// ErrEmptyName is returned for a column declared with an empty name.
	ErrEmptyName = errors.New("dataset: empty column name")

	// ErrNoColumns is returned when a schema or builder declares no columns.
	ErrNoColumns = errors.New("dataset: no columns")

	// ErrEmpty is returned when a dataset would have zero rows.
	ErrEmpty = errors.New("dataset: dataset is empty")

	// ErrLengthMismatch is returned when columns differ in length.
	ErrLengthMismatch = errors.New("dataset: column length mismatch")

	// ErrUnknownLevel is returned when a categorical level does not occur in a column.
	ErrUnknownLevel = errors.New("dataset: unknown level")

	// ErrMissingValue is returned for NaN/±Inf numerics or empty categorical levels.
	ErrMissingValue = errors.New("dataset: missing value")
)

// SchemaError reports a schema violation for a single column.
// It unwraps to one of the sentinels above.
type SchemaError struct {
	Column string
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%v (column %q)", e.Err, e.Column)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func schemaErr(column string, err error) error {
	return &SchemaError{Column: column, Err: err}
}
