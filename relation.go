/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package marshal

import (
	"github.com/jakefolio/Aura.Marshal/errors"
)

// Relation resolves the related entity or collection for an owning
// entity. The core is agnostic to cardinality and fetch strategy; the
// result is either an Entity, a Collection, or nil for no result.
type Relation interface {
	GetForEntity(e Entity) (any, error)
}

// SetRelation registers a relation definition under a field name.
// Relations are write-once: a second registration of the same name
// fails rather than silently overwriting.
func (t *Type) SetRelation(name string, rel Relation) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.relations[name]; exists {
		return errors.NewDuplicateRelationError(name)
	}
	t.relations[name] = rel
	t.relationNames = append(t.relationNames, name)
	return nil
}

// GetRelation returns the relation registered under name.
func (t *Type) GetRelation(name string) (Relation, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rel, ok := t.relations[name]
	return rel, ok
}

// GetRelationNames returns the registered relation names in
// registration order.
func (t *Type) GetRelationNames() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.relationNames...)
}

// GetRelated resolves the named relation for e. The definition runs
// outside the type's critical section, so it may freely read this type
// or others.
func (t *Type) GetRelated(e Entity, name string) (any, error) {
	t.mu.Lock()
	rel, ok := t.relations[name]
	t.mu.Unlock()

	if !ok {
		return nil, errors.NewUnknownRelationError(name)
	}
	return rel.GetForEntity(e)
}
