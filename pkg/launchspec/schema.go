// SPDX-License-Identifier: MPL-2.0

package launchspec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateParameter is the sentinel error wrapped by DuplicateParameterError.
var ErrDuplicateParameter = errors.New("duplicate parameter")

type (
	// Schema is an ordered, name-unique collection of parameter declarations.
	// It is immutable after construction: re-declaring always builds a fresh
	// schema via NewSchema or Merge.
	Schema struct {
		title string
		decls []Declaration
		index map[string]int
	}

	// DuplicateParameterError is returned when two declarations share a name,
	// either within a single schema or across the schemas passed to Merge.
	// It wraps ErrDuplicateParameter for errors.Is() compatibility.
	DuplicateParameterError struct {
		// Name is the colliding parameter name.
		Name string
		// Sources are the titles of the schemas that declare Name.
		// Empty for collisions within a single declaration list.
		Sources []string
	}
)

// Error implements the error interface.
func (e *DuplicateParameterError) Error() string {
	if len(e.Sources) > 0 {
		return fmt.Sprintf("duplicate parameter %q declared in: %s", e.Name, strings.Join(e.Sources, ", "))
	}
	return fmt.Sprintf("duplicate parameter %q", e.Name)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *DuplicateParameterError) Unwrap() error {
	return ErrDuplicateParameter
}

// NewSchema builds a schema from the given declarations, preserving their
// order. It fails with a DuplicateParameterError if two declarations share a
// name (case-sensitive exact match), or with the declaration's own validation
// error if a declaration is malformed.
func NewSchema(title string, decls ...Declaration) (*Schema, error) {
	s := &Schema{
		title: title,
		decls: make([]Declaration, 0, len(decls)),
		index: make(map[string]int, len(decls)),
	}
	for _, d := range decls {
		if valid, errs := d.IsValid(); !valid {
			return nil, errs[0]
		}
		if _, exists := s.index[d.Name]; exists {
			return nil, &DuplicateParameterError{Name: d.Name}
		}
		s.index[d.Name] = len(s.decls)
		s.decls = append(s.decls, d)
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error. It is intended for
// static declaration tables built at process start, where a failure is a
// programming bug rather than a runtime condition.
func MustSchema(title string, decls ...Declaration) *Schema {
	s, err := NewSchema(title, decls...)
	if err != nil {
		panic(fmt.Sprintf("launchspec: invalid static schema %q: %v", title, err))
	}
	return s
}

// Merge combines multiple schemas into one, concatenating declarations in
// input order. A name appearing in more than one input schema is always a
// DuplicateParameterError naming the colliding schemas; merging composes
// disjoint namespaces and never lets a later schema shadow an earlier one.
// Effective-value changes belong to the override mechanism, not to Merge.
func Merge(title string, schemas ...*Schema) (*Schema, error) {
	total := 0
	for _, in := range schemas {
		total += in.Len()
	}
	merged := &Schema{
		title: title,
		decls: make([]Declaration, 0, total),
		index: make(map[string]int, total),
	}
	source := make(map[string]string, total)
	for _, in := range schemas {
		for _, d := range in.decls {
			if _, exists := merged.index[d.Name]; exists {
				return nil, &DuplicateParameterError{
					Name:    d.Name,
					Sources: []string{source[d.Name], in.title},
				}
			}
			source[d.Name] = in.title
			merged.index[d.Name] = len(merged.decls)
			merged.decls = append(merged.decls, d)
		}
	}
	return merged, nil
}

// Title returns the schema's human-readable title.
func (s *Schema) Title() string {
	return s.title
}

// Len returns the number of declarations in the schema.
func (s *Schema) Len() int {
	return len(s.decls)
}

// Names returns the declared parameter names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.decls))
	for i, d := range s.decls {
		names[i] = d.Name
	}
	return names
}

// Declarations returns a copy of the declarations in declaration order.
func (s *Schema) Declarations() []Declaration {
	out := make([]Declaration, len(s.decls))
	copy(out, s.decls)
	return out
}

// Lookup returns the declaration for name and whether it exists.
func (s *Schema) Lookup(name string) (Declaration, bool) {
	i, ok := s.index[name]
	if !ok {
		return Declaration{}, false
	}
	return s.decls[i], true
}

// Has reports whether the schema declares name.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}
