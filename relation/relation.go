/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package relation

import (
	marshal "github.com/jakefolio/Aura.Marshal"
	"github.com/jakefolio/Aura.Marshal/record"
)

// nativeValue reads the owning side's match value. A missing or null
// native field resolves the relation to no result, not an error.
func nativeValue(e marshal.Entity, field string) (record.Value, bool) {
	v, ok := e.GetField(field)
	if !ok || v.IsNull() {
		return record.Null(), false
	}
	return v, true
}

// BelongsTo resolves the single foreign entity the owning entity points
// at: the first foreign slot whose ForeignField matches the owner's
// NativeField value.
type BelongsTo struct {
	types        *marshal.Manager
	foreignType  string
	nativeField  string
	foreignField string
}

// NewBelongsTo creates a belongs-to definition resolving through types.
func NewBelongsTo(types *marshal.Manager, foreignType, nativeField, foreignField string) *BelongsTo {
	return &BelongsTo{
		types:        types,
		foreignType:  foreignType,
		nativeField:  nativeField,
		foreignField: foreignField,
	}
}

// GetForEntity returns the related entity, or nil when the owner has no
// native value or nothing matches.
func (r *BelongsTo) GetForEntity(e marshal.Entity) (any, error) {
	v, ok := nativeValue(e, r.nativeField)
	if !ok {
		return nil, nil
	}
	ft, err := r.types.GetType(r.foreignType)
	if err != nil {
		return nil, err
	}
	related, ok := ft.GetEntityByField(r.foreignField, v)
	if !ok {
		return nil, nil
	}
	return related, nil
}

// HasOne resolves the single foreign entity that points back at the
// owning entity. Mechanically it matches like BelongsTo; the ownership
// direction is the caller's modeling choice.
type HasOne struct {
	types        *marshal.Manager
	foreignType  string
	nativeField  string
	foreignField string
}

// NewHasOne creates a has-one definition resolving through types.
func NewHasOne(types *marshal.Manager, foreignType, nativeField, foreignField string) *HasOne {
	return &HasOne{
		types:        types,
		foreignType:  foreignType,
		nativeField:  nativeField,
		foreignField: foreignField,
	}
}

// GetForEntity returns the related entity, or nil for no result.
func (r *HasOne) GetForEntity(e marshal.Entity) (any, error) {
	v, ok := nativeValue(e, r.nativeField)
	if !ok {
		return nil, nil
	}
	ft, err := r.types.GetType(r.foreignType)
	if err != nil {
		return nil, err
	}
	related, ok := ft.GetEntityByField(r.foreignField, v)
	if !ok {
		return nil, nil
	}
	return related, nil
}

// HasMany resolves the collection of foreign entities whose
// ForeignField matches the owner's NativeField value.
type HasMany struct {
	types        *marshal.Manager
	foreignType  string
	nativeField  string
	foreignField string
}

// NewHasMany creates a has-many definition resolving through types.
func NewHasMany(types *marshal.Manager, foreignType, nativeField, foreignField string) *HasMany {
	return &HasMany{
		types:        types,
		foreignType:  foreignType,
		nativeField:  nativeField,
		foreignField: foreignField,
	}
}

// GetForEntity returns the related collection; owners with no native
// value get an empty collection.
func (r *HasMany) GetForEntity(e marshal.Entity) (any, error) {
	ft, err := r.types.GetType(r.foreignType)
	if err != nil {
		return nil, err
	}
	v, ok := nativeValue(e, r.nativeField)
	if !ok {
		return ft.GetCollectionByField(r.foreignField, nil), nil
	}
	return ft.GetCollectionByField(r.foreignField, []record.Value{v}), nil
}

// HasManyThrough resolves a many-to-many association via an
// association type: the owner's NativeField value selects association
// rows on ThroughNativeField, their ThroughForeignField values select
// the foreign collection on ForeignField.
type HasManyThrough struct {
	types               *marshal.Manager
	foreignType         string
	throughType         string
	nativeField         string
	throughNativeField  string
	throughForeignField string
	foreignField        string
}

// NewHasManyThrough creates a has-many-through definition resolving
// through types.
func NewHasManyThrough(types *marshal.Manager, foreignType, throughType, nativeField, throughNativeField, throughForeignField, foreignField string) *HasManyThrough {
	return &HasManyThrough{
		types:               types,
		foreignType:         foreignType,
		throughType:         throughType,
		nativeField:         nativeField,
		throughNativeField:  throughNativeField,
		throughForeignField: throughForeignField,
		foreignField:        foreignField,
	}
}

// GetForEntity returns the related collection, preserving the
// association rows' order of the foreign key values.
func (r *HasManyThrough) GetForEntity(e marshal.Entity) (any, error) {
	ft, err := r.types.GetType(r.foreignType)
	if err != nil {
		return nil, err
	}
	tt, err := r.types.GetType(r.throughType)
	if err != nil {
		return nil, err
	}

	v, ok := nativeValue(e, r.nativeField)
	if !ok {
		return ft.GetCollectionByField(r.foreignField, nil), nil
	}

	through := tt.GetCollectionByField(r.throughNativeField, []record.Value{v})
	foreignValues := make([]record.Value, 0, through.Len())
	for i := 0; i < through.Len(); i++ {
		fv, ok := through.Entity(i).GetField(r.throughForeignField)
		if !ok || fv.IsNull() {
			continue
		}
		foreignValues = append(foreignValues, fv)
	}
	return ft.GetCollectionByField(r.foreignField, foreignValues), nil
}
