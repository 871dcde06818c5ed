/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package marshal

import (
	"sync"

	"github.com/jakefolio/Aura.Marshal/errors"
)

// Manager composes named Type facades — one identity map per entity
// type — so relation definitions can resolve across types.
type Manager struct {
	mu    sync.RWMutex
	types map[string]*Type
	names []string
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{
		types: make(map[string]*Type),
	}
}

// SetType registers a Type under the given name (for example, "posts"
// or "authors").
func (m *Manager) SetType(name string, t *Type) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.types[name]; exists {
		return errors.NewDuplicateTypeError(name)
	}
	m.types[name] = t
	m.names = append(m.names, name)
	return nil
}

// GetType retrieves the Type registered under the given name.
func (m *Manager) GetType(name string) (*Type, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, exists := m.types[name]
	if !exists {
		return nil, errors.NewUnknownTypeError(name)
	}
	return t, nil
}

// TypeNames returns all registered type names in registration order.
func (m *Manager) TypeNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.names...)
}

// SetRelation registers a relation on the named type.
func (m *Manager) SetRelation(typeName, relationName string, rel Relation) error {
	t, err := m.GetType(typeName)
	if err != nil {
		return err
	}
	return t.SetRelation(relationName, rel)
}
