/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package marshal_test

import (
	"testing"

	marshal "github.com/jakefolio/Aura.Marshal"
	"github.com/jakefolio/Aura.Marshal/config"
	"github.com/jakefolio/Aura.Marshal/mock"
	"github.com/jakefolio/Aura.Marshal/record"
)

const integrationTypes = `
types:
  authors:
    identity_field: id
    relations:
      posts:
        kind: has_many
        foreign_type: posts
        native_field: id
        foreign_field: author_id
  posts:
    identity_field: id
    index_fields: [author_id, status]
    relations:
      author:
        kind: belongs_to
        foreign_type: authors
        native_field: author_id
        foreign_field: id
`

func rec(pairs ...any) *record.Record {
	r := record.New()
	for i := 0; i < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1].(record.Value))
	}
	return r
}

// TestEndToEnd walks a full session: configure from YAML, bulk-load raw
// rows, read through collections and relations, mutate, and query the
// change registries.
func TestEndToEnd(t *testing.T) {
	m, err := config.Load([]byte(integrationTypes))
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	authors, err := m.GetType("authors")
	if err != nil {
		t.Fatalf("GetType(authors): %v", err)
	}
	posts, err := m.GetType("posts")
	if err != nil {
		t.Fatalf("GetType(posts): %v", err)
	}

	// Instrument the post builder so laziness stays observable.
	builder := mock.NewEntityBuilder()
	posts.SetEntityBuilder(builder)

	if _, err := authors.Load([]*record.Record{
		rec("id", record.Number(1), "name", record.String("Anna")),
		rec("id", record.Number(2), "name", record.String("Bela")),
	}); err != nil {
		t.Fatalf("authors.Load: %v", err)
	}
	if _, err := posts.Load([]*record.Record{
		rec("id", record.Number(10), "author_id", record.Number(1), "status", record.String("live"), "views", record.String("5")),
		rec("id", record.Number(11), "author_id", record.Number(2), "status", record.String("draft"), "views", record.Number(0)),
		rec("id", record.Number(12), "author_id", record.Number(1), "status", record.String("live"), "views", record.Number(9)),
	}); err != nil {
		t.Fatalf("posts.Load: %v", err)
	}

	if builder.Conversions() != 0 {
		t.Fatalf("Loading must not materialize: %d conversions", builder.Conversions())
	}

	// Relation resolution materializes exactly the slots it returns.
	anna, ok := authors.GetEntity(record.Number(1))
	if !ok {
		t.Fatal("Expected author 1")
	}
	related, err := authors.GetRelated(anna, "posts")
	if err != nil {
		t.Fatalf("GetRelated: %v", err)
	}
	annasPosts := related.(marshal.Collection)
	if annasPosts.Len() != 2 {
		t.Fatalf("Expected 2 posts for Anna, got %d", annasPosts.Len())
	}
	first := annasPosts.Entity(0)
	if builder.Conversions() != 1 {
		t.Errorf("Expected 1 conversion after reading one element, got %d", builder.Conversions())
	}

	// The collection element and the direct lookup are one instance.
	direct, _ := posts.GetEntity(record.Number(10))
	if direct != first {
		t.Fatal("Collection element should alias the identity-map slot")
	}

	// Mutate through the relation's view; change detection sees it, and
	// numeric coercion keeps the untouched "5"-vs-5 field quiet.
	first.(*marshal.GenericEntity).SetField("views", record.Number(5))
	first.(*marshal.GenericEntity).SetField("status", record.String("archived"))

	changed := posts.GetChangedEntities()
	if len(changed) != 1 {
		t.Fatalf("Expected 1 changed post, got %d", len(changed))
	}
	fields := posts.GetChangedFields(changed[record.Number(10)])
	if fields.Has("views") {
		t.Error("views \"5\" -> 5 should not count as changed")
	}
	if !fields.Has("status") {
		t.Error("status mutation should count as changed")
	}

	// Index entries reflect load-time values: the archived post is
	// still filed under live.
	live := posts.GetCollectionByField("status", []record.Value{record.String("live")})
	if live.Len() != 2 {
		t.Errorf("Expected load-time index to keep 2 live posts, got %d", live.Len())
	}

	// A scripted relation slots into the same facade.
	pinned := mock.NewRelation().WithResult(direct)
	if err := posts.SetRelation("pinned", pinned); err != nil {
		t.Fatalf("SetRelation: %v", err)
	}
	got, err := posts.GetRelated(direct, "pinned")
	if err != nil {
		t.Fatalf("GetRelated(pinned): %v", err)
	}
	if got != any(direct) {
		t.Error("Scripted relation should return its result")
	}
	if calls := pinned.Calls(); len(calls) != 1 || calls[0] != direct {
		t.Error("Scripted relation should record the owning entity")
	}
}
