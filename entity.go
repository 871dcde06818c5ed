/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package marshal

import (
	"github.com/jakefolio/Aura.Marshal/record"
)

// Entity is a materialized domain object held by a type's slot store.
// Implementations must be reference types (pointers), because the type
// facade tracks entities by identity to find their snapshots.
type Entity interface {
	// GetField returns the current value of a field.
	GetField(name string) (record.Value, bool)
	// FieldNames returns the entity's current field names in order.
	FieldNames() []string
}

// EntityBuilder converts a raw record into an entity instance. Builders
// must be deterministic and must not call back into the type that
// invokes them; materialization happens inside the type's critical
// section.
type EntityBuilder interface {
	NewInstance(raw *record.Record) Entity
}

// GenericEntity is the default entity: a mutable ordered property bag
// over its own copy of the source record.
type GenericEntity struct {
	rec *record.Record
}

// NewGenericEntity wraps a copy of rec.
func NewGenericEntity(rec *record.Record) *GenericEntity {
	return &GenericEntity{rec: rec.Clone()}
}

// GetField returns the current value of a field.
func (e *GenericEntity) GetField(name string) (record.Value, bool) {
	return e.rec.Get(name)
}

// SetField sets a field to a new value. Setting a field never re-indexes
// the entity; indexes reflect load-time values only.
func (e *GenericEntity) SetField(name string, v record.Value) {
	e.rec.Set(name, v)
}

// FieldNames returns the entity's field names in set order.
func (e *GenericEntity) FieldNames() []string {
	return e.rec.Fields()
}

// GenericEntityBuilder builds GenericEntity instances. It is the
// default entity builder installed by NewType.
type GenericEntityBuilder struct{}

// NewInstance returns a GenericEntity over a copy of raw.
func (GenericEntityBuilder) NewInstance(raw *record.Record) Entity {
	return NewGenericEntity(raw)
}
