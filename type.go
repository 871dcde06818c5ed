/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package marshal

import (
	"sync"

	"github.com/jakefolio/Aura.Marshal/errors"
	"github.com/jakefolio/Aura.Marshal/record"
)

// slot is one positional cell of a type's storage arena. It holds
// either a raw record or a materialized entity, never both.
type slot struct {
	raw    *record.Record
	entity Entity
}

// Type is the identity map for a single entity type: an append-only
// slot store, an identity index, secondary indexes, snapshot and
// new-entity registries, and a relation registry.
//
// All mutation happens synchronously inside the call that triggers it.
// A single mutex makes the whole facade one critical section, since
// materialization mutates storage as a side effect of reads.
type Type struct {
	mu sync.Mutex

	identityField     string
	indexFields       []string
	entityBuilder     EntityBuilder
	collectionBuilder CollectionBuilder

	slots []slot

	// identityOffsets maps canonical identity keys to slot offsets;
	// loadedOffsets and identityValues record load order.
	identityOffsets map[string]int
	loadedOffsets   []int
	identityValues  []record.Value

	// indexes holds one value-key → offsets mapping per configured
	// secondary-index field, populated once per slot at load time.
	indexes map[string]map[string][]int

	// snapshots keeps the raw record a slot was materialized from,
	// keyed by offset; entityOffsets finds the offset for an entity.
	snapshots     map[int]*record.Record
	entityOffsets map[Entity]int

	newOffsets []int

	relations     map[string]Relation
	relationNames []string
}

// NewType creates a Type keyed on the given identity field, with the
// generic entity and collection builders installed.
func NewType(identityField string) *Type {
	return &Type{
		identityField:     identityField,
		entityBuilder:     GenericEntityBuilder{},
		collectionBuilder: GenericCollectionBuilder{},
		identityOffsets:   make(map[string]int),
		indexes:           make(map[string]map[string][]int),
		snapshots:         make(map[int]*record.Record),
		entityOffsets:     make(map[Entity]int),
		relations:         make(map[string]Relation),
	}
}

// SetIdentityField changes the identity field for future loads. Slots
// already loaded keep their existing identity entries.
func (t *Type) SetIdentityField(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.identityField = name
}

// GetIdentityField returns the configured identity field name.
func (t *Type) GetIdentityField() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.identityField
}

// SetIndexFields configures the secondary-index fields for future
// loads. Indexes are populated exactly once per slot at load time and
// never rebuilt, so fields must be configured before loading.
func (t *Type) SetIndexFields(names []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.indexFields = append([]string(nil), names...)
	for _, name := range names {
		if _, ok := t.indexes[name]; !ok {
			t.indexes[name] = make(map[string][]int)
		}
	}
}

// GetIndexFields returns the configured secondary-index field names.
func (t *Type) GetIndexFields() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.indexFields...)
}

// SetEntityBuilder replaces the entity builder. Builders run inside the
// type's critical section and must not call back into it.
func (t *Type) SetEntityBuilder(b EntityBuilder) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entityBuilder = b
}

// SetCollectionBuilder replaces the collection builder.
func (t *Type) SetCollectionBuilder(b CollectionBuilder) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.collectionBuilder = b
}

// Load appends raw records to the slot store without materializing
// them: identity and secondary indexes are built from the raw field
// values, and entity construction is deferred until a read path touches
// the slot. Records whose identity value was already loaded are
// discarded, keeping the first-loaded slot.
//
// It returns the normalized identity value of each input record in
// input order. A record lacking the identity field fails the call;
// records loaded before the failure stay loaded.
func (t *Type) Load(recs []*record.Record) ([]record.Value, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]record.Value, 0, len(recs))
	for _, rec := range recs {
		idv, _, err := t.loadOne(rec, false)
		if err != nil {
			return ids, err
		}
		ids = append(ids, idv)
	}
	return ids, nil
}

// LoadEntity loads a single record and returns its entity, converting
// the record immediately. A reload of an already-loaded identity value
// is a no-op returning the existing entity; the new raw data is
// discarded.
func (t *Type) LoadEntity(rec *record.Record) (Entity, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, off, err := t.loadOne(rec, true)
	if err != nil {
		return nil, err
	}
	return t.materialize(off), nil
}

// LoadCollection loads records like LoadEntity, one by one, and returns
// a collection aliasing their slots in input order — even when some
// records were already loaded at other offsets.
func (t *Type) LoadCollection(recs []*record.Record) (Collection, error) {
	t.mu.Lock()
	refs := make([]Ref, 0, len(recs))
	for _, rec := range recs {
		_, off, err := t.loadOne(rec, true)
		if err != nil {
			t.mu.Unlock()
			return nil, err
		}
		t.materialize(off)
		refs = append(refs, Ref{t: t, offset: off})
	}
	builder := t.collectionBuilder
	t.mu.Unlock()

	return builder.NewInstance(refs), nil
}

// NewEntity builds an entity directly from initial field values and
// appends a slot for it. The entity joins no index and gets no
// snapshot: it is invisible to every lookup and reported only by
// GetNewEntities, with all of its fields counting as changed.
func (t *Type) NewEntity(fields *record.Record) Entity {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.entityBuilder.NewInstance(fields)
	off := len(t.slots)
	t.slots = append(t.slots, slot{entity: e})
	t.entityOffsets[e] = off
	t.newOffsets = append(t.newOffsets, off)
	return e
}

// GetNewEntities returns the directly-created entities in creation
// order.
func (t *Type) GetNewEntities() []Entity {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Entity, len(t.newOffsets))
	for i, off := range t.newOffsets {
		out[i] = t.slots[off].entity
	}
	return out
}

// loadOne appends a slot for rec unless its identity value is already
// present. Eager loads materialize before indexing so secondary values
// come from the entity; lazy loads index the raw record. The caller
// holds the lock.
func (t *Type) loadOne(rec *record.Record, eager bool) (record.Value, int, error) {
	idv, ok := rec.Get(t.identityField)
	if !ok || idv.IsNull() {
		return record.Null(), 0, errors.NewMissingIdentityFieldError(t.identityField)
	}

	key := idv.Key()
	if off, exists := t.identityOffsets[key]; exists {
		return idv.Normalize(), off, nil
	}

	off := len(t.slots)
	t.slots = append(t.slots, slot{raw: rec})
	t.identityOffsets[key] = off
	t.loadedOffsets = append(t.loadedOffsets, off)
	t.identityValues = append(t.identityValues, idv.Normalize())

	if eager {
		t.indexFieldsOf(off, t.materialize(off).GetField)
	} else {
		t.indexFieldsOf(off, rec.Get)
	}
	return idv.Normalize(), off, nil
}

// indexFieldsOf appends off to each configured secondary index, reading
// field values through get. Slots without an index field are simply not
// indexed under it.
func (t *Type) indexFieldsOf(off int, get func(string) (record.Value, bool)) {
	for _, field := range t.indexFields {
		v, ok := get(field)
		if !ok || v.IsNull() {
			continue
		}
		t.indexes[field][v.Key()] = append(t.indexes[field][v.Key()], off)
	}
}

// materialize converts the slot at off exactly once: the raw record
// moves into the snapshot registry and the slot holds the built entity
// from then on. The caller holds the lock.
func (t *Type) materialize(off int) Entity {
	s := &t.slots[off]
	if s.entity != nil {
		return s.entity
	}

	raw := s.raw
	e := t.entityBuilder.NewInstance(raw)
	t.snapshots[off] = raw
	t.entityOffsets[e] = off
	s.entity = e
	s.raw = nil
	return e
}

// entityAt is the dereference point for Refs.
func (t *Type) entityAt(off int) Entity {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.materialize(off)
}
