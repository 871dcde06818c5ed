/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package marshal

import (
	"github.com/jakefolio/Aura.Marshal/record"
)

// GetChangedFields returns an ordered mapping of field name to current
// value for every field of e that differs from its load-time snapshot.
// An empty result means unchanged.
//
// Entities without a snapshot — created by NewEntity, or foreign to
// this type — report every current field as changed. Fields absent from
// the snapshot are changed. Otherwise values compare under the loose
// rule: numeric-typed operands compare numerically ("5" equals 5), all
// others strictly.
func (t *Type) GetChangedFields(e Entity) *record.Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.changedFields(e)
}

// GetChangedEntities returns every loaded entity with at least one
// changed field, keyed by normalized identity value. It walks the
// identity index — never the new-entity registry — and materializes
// each slot before diffing, so builder-applied coercions are diffed
// like caller mutations.
func (t *Type) GetChangedEntities() map[record.Value]Entity {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[record.Value]Entity)
	for i, off := range t.loadedOffsets {
		e := t.materialize(off)
		if t.changedFields(e).Len() > 0 {
			out[t.identityValues[i]] = e
		}
	}
	return out
}

// GetInitialData returns a copy of the raw record e was materialized
// from. Entities without a snapshot have no initial data.
func (t *Type) GetInitialData(e Entity) (*record.Record, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	off, ok := t.entityOffsets[e]
	if !ok {
		return nil, false
	}
	snap, ok := t.snapshots[off]
	if !ok {
		return nil, false
	}
	return snap.Clone(), true
}

// changedFields diffs e against its snapshot. The caller holds the lock.
func (t *Type) changedFields(e Entity) *record.Record {
	var snap *record.Record
	if off, ok := t.entityOffsets[e]; ok {
		snap = t.snapshots[off]
	}

	changed := record.New()
	for _, name := range e.FieldNames() {
		cur, _ := e.GetField(name)
		if snap == nil {
			changed.Set(name, cur)
			continue
		}
		old, ok := snap.Get(name)
		if !ok || !record.LooseEqual(old, cur) {
			changed.Set(name, cur)
		}
	}
	return changed
}
