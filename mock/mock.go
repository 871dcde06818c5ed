/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

// Package mock provides instrumented collaborator implementations for
// testing code built on the identity map: an EntityBuilder that counts
// conversions and a Relation with scripted results.
package mock

import (
	"sync"

	marshal "github.com/jakefolio/Aura.Marshal"
	"github.com/jakefolio/Aura.Marshal/record"
)

// EntityBuilder wraps a delegate builder and records every conversion,
// making laziness observable: zero conversions until a slot is read,
// exactly one per slot after.
type EntityBuilder struct {
	mu          sync.Mutex
	delegate    marshal.EntityBuilder
	conversions int
	raws        []*record.Record
}

// NewEntityBuilder creates an EntityBuilder delegating to the generic
// builder.
func NewEntityBuilder() *EntityBuilder {
	return &EntityBuilder{delegate: marshal.GenericEntityBuilder{}}
}

// WithDelegate sets the builder conversions are forwarded to.
func (b *EntityBuilder) WithDelegate(d marshal.EntityBuilder) *EntityBuilder {
	b.delegate = d
	return b
}

// NewInstance forwards to the delegate and records the conversion.
func (b *EntityBuilder) NewInstance(raw *record.Record) marshal.Entity {
	b.mu.Lock()
	b.conversions++
	b.raws = append(b.raws, raw)
	b.mu.Unlock()
	return b.delegate.NewInstance(raw)
}

// Conversions returns how many records have been converted.
func (b *EntityBuilder) Conversions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conversions
}

// Raws returns the raw records seen, in conversion order.
func (b *EntityBuilder) Raws() []*record.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*record.Record(nil), b.raws...)
}

// Relation is a scripted marshal.Relation recording the entities it was
// resolved for.
type Relation struct {
	mu     sync.Mutex
	result any
	err    error
	calls  []marshal.Entity
}

// NewRelation creates a Relation resolving to nil.
func NewRelation() *Relation {
	return &Relation{}
}

// WithResult sets the value every resolution returns.
func (r *Relation) WithResult(result any) *Relation {
	r.result = result
	return r
}

// WithError makes every resolution fail.
func (r *Relation) WithError(err error) *Relation {
	r.err = err
	return r
}

// GetForEntity records the owning entity and returns the scripted
// result.
func (r *Relation) GetForEntity(e marshal.Entity) (any, error) {
	r.mu.Lock()
	r.calls = append(r.calls, e)
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}

// Calls returns the entities the relation was resolved for, in order.
func (r *Relation) Calls() []marshal.Entity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]marshal.Entity(nil), r.calls...)
}
