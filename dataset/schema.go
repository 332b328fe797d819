// SPDX-License-Identifier: MIT

package dataset

import "fmt"

// Kind is the value type of a column.
type Kind uint8

const (
	// Categorical columns hold string levels.
	Categorical Kind = iota + 1
	// Numeric columns hold finite float64 values.
	Numeric
)

// String returns the lower-case kind name used in config files and storage.
func (k Kind) String() string {
	switch k {
	case Categorical:
		return "categorical"
	case Numeric:
		return "numeric"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "categorical":
		return Categorical, nil
	case "numeric":
		return Numeric, nil
	default:
		return 0, fmt.Errorf("dataset: unknown column kind %q", s)
	}
}

// Column declares one named, typed column.
type Column struct {
	Name string
	Kind Kind
}

// Schema is a fixed ordered list of columns with a name index.
// The zero value is not usable; build one with NewSchema.
type Schema struct {
	cols  []Column
	index map[string]int
}

// NewSchema validates cols and returns the schema.
// Errors: ErrNoColumns, ErrEmptyName, ErrDuplicateColumn (as *SchemaError),
// or an unknown kind.
func NewSchema(cols ...Column) (*Schema, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	s := &Schema{
		cols:  make([]Column, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if c.Name == "" {
			return nil, schemaErr(c.Name, ErrEmptyName)
		}
		if c.Kind != Categorical && c.Kind != Numeric {
			return nil, fmt.Errorf("dataset: column %q: unknown kind %v", c.Name, c.Kind)
		}
		if _, dup := s.index[c.Name]; dup {
			return nil, schemaErr(c.Name, ErrDuplicateColumn)
		}
		s.index[c.Name] = i
		s.cols[i] = c
	}

	return s, nil
}

// Len returns the number of columns.
func (s *Schema) Len() int { return len(s.cols) }

// Columns returns a copy of the ordered column list.
func (s *Schema) Columns() []Column {
	out := make([]Column, len(s.cols))
	copy(out, s.cols)

	return out
}

// Names returns column names in schema order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.cols))
	for i, c := range s.cols {
		out[i] = c.Name
	}

	return out
}

// Lookup returns the column and its position, or a *SchemaError wrapping
// ErrColumnNotFound.
func (s *Schema) Lookup(name string) (Column, int, error) {
	i, ok := s.index[name]
	if !ok {
		return Column{}, -1, schemaErr(name, ErrColumnNotFound)
	}

	return s.cols[i], i, nil
}

// Require looks up name and checks its kind.
func (s *Schema) Require(name string, kind Kind) (int, error) {
	c, i, err := s.Lookup(name)
	if err != nil {
		return -1, err
	}
	if c.Kind != kind {
		return -1, &SchemaError{Column: name, Err: fmt.Errorf("%w: want %v, have %v", ErrColumnKind, kind, c.Kind)}
	}

	return i, nil
}
