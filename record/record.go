/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package record

import (
	"fmt"
	"sort"
)

// Record is an ordered mapping from field name to Value. Fields keep
// the position of their first Set; overwriting a field does not move it.
type Record struct {
	fields []string
	values map[string]Value
}

// New returns an empty Record.
func New() *Record {
	return &Record{values: make(map[string]Value)}
}

// FromMap builds a Record from a loosely-typed map. Field order is the
// sorted field-name order, since Go maps carry none of their own.
func FromMap(in map[string]any) (*Record, error) {
	names := make([]string, 0, len(in))
	for name := range in {
		names = append(names, name)
	}
	sort.Strings(names)

	r := New()
	for _, name := range names {
		v, err := FromAny(in[name])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		r.Set(name, v)
	}
	return r, nil
}

// Set stores v under name, appending the field if it is new and keeping
// its original position if it is not.
func (r *Record) Set(name string, v Value) *Record {
	if _, exists := r.values[name]; !exists {
		r.fields = append(r.fields, name)
	}
	r.values[name] = v
	return r
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Has reports whether name is set.
func (r *Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Fields returns the field names in set order. The returned slice is a
// copy.
func (r *Record) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Clone returns an independent copy of r.
func (r *Record) Clone() *Record {
	out := &Record{
		fields: make([]string, len(r.fields)),
		values: make(map[string]Value, len(r.values)),
	}
	copy(out.fields, r.fields)
	for name, v := range r.values {
		out.values[name] = v
	}
	return out
}

// String renders the record as name=value pairs in field order.
func (r *Record) String() string {
	s := "{"
	for i, name := range r.fields {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%s", name, r.values[name])
	}
	return s + "}"
}
