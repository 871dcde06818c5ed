/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package marshal

import (
	"github.com/jakefolio/Aura.Marshal/record"
)

// Ref is a live reference to a storage slot of a type. Collections hold
// refs, never entity values, so a slot materialized or mutated through
// any view is observed through every view sharing the offset.
type Ref struct {
	t      *Type
	offset int
}

// Offset returns the slot offset the ref points at.
func (r Ref) Offset() int {
	return r.offset
}

// Entity dereferences the ref through the slot store, materializing the
// slot on first read. This is a side-effecting read, not a pure
// accessor.
func (r Ref) Entity() Entity {
	if r.t == nil {
		return nil
	}
	return r.t.entityAt(r.offset)
}

// Collection is an ordered, possibly-aliased view of slots.
type Collection interface {
	// Len returns the number of elements.
	Len() int
	// Entity returns the element at position i, materializing its slot
	// if needed.
	Entity(i int) Entity
}

// CollectionBuilder wraps an ordered list of slot refs into a
// collection object.
type CollectionBuilder interface {
	NewInstance(refs []Ref) Collection
}

// GenericCollection is the default collection over a list of slot refs.
type GenericCollection struct {
	refs []Ref
}

// NewGenericCollection wraps refs without copying slot values.
func NewGenericCollection(refs []Ref) *GenericCollection {
	return &GenericCollection{refs: refs}
}

// Len returns the number of elements.
func (c *GenericCollection) Len() int {
	return len(c.refs)
}

// Entity returns the element at position i.
func (c *GenericCollection) Entity(i int) Entity {
	return c.refs[i].Entity()
}

// Entities materializes and returns every element in order.
func (c *GenericCollection) Entities() []Entity {
	out := make([]Entity, len(c.refs))
	for i, r := range c.refs {
		out[i] = r.Entity()
	}
	return out
}

// GetIdentityValues returns the normalized identity value of each
// element in order.
func (c *GenericCollection) GetIdentityValues() []record.Value {
	out := make([]record.Value, len(c.refs))
	for i, r := range c.refs {
		out[i] = record.Null()
		if r.t == nil {
			continue
		}
		if v, ok := r.Entity().GetField(r.t.GetIdentityField()); ok {
			out[i] = v.Normalize()
		}
	}
	return out
}

// GetFieldValues returns the value of one field per element in order;
// elements without the field yield null.
func (c *GenericCollection) GetFieldValues(field string) []record.Value {
	out := make([]record.Value, len(c.refs))
	for i, r := range c.refs {
		out[i] = record.Null()
		if v, ok := r.Entity().GetField(field); ok {
			out[i] = v
		}
	}
	return out
}

// GenericCollectionBuilder builds GenericCollection instances. It is
// the default collection builder installed by NewType.
type GenericCollectionBuilder struct{}

// NewInstance wraps refs in a GenericCollection.
func (GenericCollectionBuilder) NewInstance(refs []Ref) Collection {
	return NewGenericCollection(refs)
}
