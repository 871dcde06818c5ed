/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package marshal

import (
	"github.com/jakefolio/Aura.Marshal/errors"
	"github.com/jakefolio/Aura.Marshal/record"
)

// GetEntity returns the entity loaded under the given identity value,
// materializing its slot if this is the first read. A value never
// loaded is no result, not an error.
func (t *Type) GetEntity(id record.Value) (Entity, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	off, ok := t.identityOffsets[id.Key()]
	if !ok {
		return nil, false
	}
	return t.materialize(off), true
}

// GetEntityByField returns the first entity whose field matches value.
//
// Dispatch is three-tiered: the identity field uses the identity index;
// a secondary-indexed field returns the first offset registered for the
// value (first-loaded wins); any other field falls back to a linear
// scan of the loaded slots in load order, materializing each slot it
// inspects. The scan is a deliberate performance cliff — correctness
// over speed for unindexed fields. Directly-created entities join no
// index and are never returned here.
func (t *Type) GetEntityByField(field string, value record.Value) (Entity, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if field == t.identityField {
		off, ok := t.identityOffsets[value.Key()]
		if !ok {
			return nil, false
		}
		return t.materialize(off), true
	}

	if idx, ok := t.indexes[field]; ok {
		offs := idx[value.Key()]
		if len(offs) == 0 {
			return nil, false
		}
		return t.materialize(offs[0]), true
	}

	for _, off := range t.loadedOffsets {
		e := t.materialize(off)
		if v, ok := e.GetField(field); ok && record.LooseEqual(v, value) {
			return e, true
		}
	}
	return nil, false
}

// GetCollection returns a collection aliasing the slot of each identity
// value, in the order given. Any identity value never loaded fails the
// whole call: a collection cannot alias a slot that does not exist.
func (t *Type) GetCollection(ids []record.Value) (Collection, error) {
	t.mu.Lock()
	refs := make([]Ref, 0, len(ids))
	for _, id := range ids {
		off, ok := t.identityOffsets[id.Key()]
		if !ok {
			t.mu.Unlock()
			return nil, errors.NewUnknownIdentityError(id.String())
		}
		refs = append(refs, Ref{t: t, offset: off})
	}
	builder := t.collectionBuilder
	t.mu.Unlock()

	return builder.NewInstance(refs), nil
}

// GetCollectionByField returns a collection of every entity whose field
// matches one of the acceptable values.
//
// Ordering differs by dispatch tier and is a documented contract: the
// identity and secondary-index paths follow the order of the supplied
// values, while the linear-scan path follows slot load order. Values
// with no match contribute nothing; the result may be empty.
func (t *Type) GetCollectionByField(field string, values []record.Value) Collection {
	t.mu.Lock()

	var refs []Ref
	switch {
	case field == t.identityField:
		for _, v := range values {
			if off, ok := t.identityOffsets[v.Key()]; ok {
				refs = append(refs, Ref{t: t, offset: off})
			}
		}

	case t.indexes[field] != nil:
		idx := t.indexes[field]
		for _, v := range values {
			for _, off := range idx[v.Key()] {
				refs = append(refs, Ref{t: t, offset: off})
			}
		}

	default:
		for _, off := range t.loadedOffsets {
			e := t.materialize(off)
			v, ok := e.GetField(field)
			if !ok {
				continue
			}
			for _, want := range values {
				if record.LooseEqual(v, want) {
					refs = append(refs, Ref{t: t, offset: off})
					break
				}
			}
		}
	}
	builder := t.collectionBuilder
	t.mu.Unlock()

	return builder.NewInstance(refs)
}

// GetIdentityValues returns the normalized identity values of the
// loaded slots in load order. Repeated loads of one identity never grow
// the result.
func (t *Type) GetIdentityValues() []record.Value {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]record.Value(nil), t.identityValues...)
}

// GetFieldValues returns one value per loaded slot for the given field,
// aligned with GetIdentityValues. Raw slots are read in place — this
// path never materializes. Slots without the field yield null.
func (t *Type) GetFieldValues(field string) []record.Value {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]record.Value, len(t.loadedOffsets))
	for i, off := range t.loadedOffsets {
		out[i] = record.Null()
		s := t.slots[off]
		if s.entity != nil {
			if v, ok := s.entity.GetField(field); ok {
				out[i] = v
			}
			continue
		}
		if v, ok := s.raw.Get(field); ok {
			out[i] = v
		}
	}
	return out
}
