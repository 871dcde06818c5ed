/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	marshal "github.com/jakefolio/Aura.Marshal"
	"github.com/jakefolio/Aura.Marshal/relation"
)

// File is the top-level YAML document: one TypeDef per type name.
type File struct {
	Types map[string]TypeDef `yaml:"types"`
}

// TypeDef declares one identity-map type.
type TypeDef struct {
	IdentityField string                 `yaml:"identity_field"`
	IndexFields   []string               `yaml:"index_fields"`
	Relations     map[string]RelationDef `yaml:"relations"`
}

// RelationDef declares one relation on a type. Kind selects the
// definition; the through fields apply to has_many_through only.
type RelationDef struct {
	Kind                string `yaml:"kind"`
	ForeignType         string `yaml:"foreign_type"`
	NativeField         string `yaml:"native_field"`
	ForeignField        string `yaml:"foreign_field"`
	ThroughType         string `yaml:"through_type"`
	ThroughNativeField  string `yaml:"through_native_field"`
	ThroughForeignField string `yaml:"through_foreign_field"`
}

// Relation kinds accepted in type definitions.
const (
	KindBelongsTo      = "belongs_to"
	KindHasOne         = "has_one"
	KindHasMany        = "has_many"
	KindHasManyThrough = "has_many_through"
)

// Load parses a YAML type-definition document and returns a Manager
// with every type and relation wired. Types register in sorted name
// order. A missing identity field, an unknown relation kind, or a
// relation naming an undeclared type fails the load.
func Load(data []byte) (*marshal.Manager, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing type definitions: %w", err)
	}
	return Build(f)
}

// Build wires a Manager from an already-parsed File.
func Build(f File) (*marshal.Manager, error) {
	m := marshal.NewManager()

	typeNames := sortedKeys(f.Types)
	for _, name := range typeNames {
		def := f.Types[name]
		if def.IdentityField == "" {
			return nil, fmt.Errorf("type %q: identity_field is required", name)
		}
		t := marshal.NewType(def.IdentityField)
		t.SetIndexFields(def.IndexFields)
		if err := m.SetType(name, t); err != nil {
			return nil, err
		}
	}

	// Relations wire in a second pass so definitions may point at types
	// declared later in the document.
	for _, name := range typeNames {
		def := f.Types[name]
		for _, relName := range sortedKeys(def.Relations) {
			rel, err := buildRelation(m, name, def.Relations[relName])
			if err != nil {
				return nil, fmt.Errorf("type %q relation %q: %w", name, relName, err)
			}
			if err := m.SetRelation(name, relName, rel); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func buildRelation(m *marshal.Manager, typeName string, def RelationDef) (marshal.Relation, error) {
	if def.ForeignType == "" {
		return nil, fmt.Errorf("foreign_type is required")
	}
	if _, err := m.GetType(def.ForeignType); err != nil {
		return nil, err
	}

	switch def.Kind {
	case KindBelongsTo:
		return relation.NewBelongsTo(m, def.ForeignType, def.NativeField, def.ForeignField), nil
	case KindHasOne:
		return relation.NewHasOne(m, def.ForeignType, def.NativeField, def.ForeignField), nil
	case KindHasMany:
		return relation.NewHasMany(m, def.ForeignType, def.NativeField, def.ForeignField), nil
	case KindHasManyThrough:
		if def.ThroughType == "" {
			return nil, fmt.Errorf("through_type is required for %s", KindHasManyThrough)
		}
		if _, err := m.GetType(def.ThroughType); err != nil {
			return nil, err
		}
		return relation.NewHasManyThrough(m, def.ForeignType, def.ThroughType,
			def.NativeField, def.ThroughNativeField, def.ThroughForeignField, def.ForeignField), nil
	default:
		return nil, fmt.Errorf("unknown relation kind %q", def.Kind)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
