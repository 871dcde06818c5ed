/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	marshal "github.com/jakefolio/Aura.Marshal"
	"github.com/jakefolio/Aura.Marshal/record"
	"github.com/jakefolio/Aura.Marshal/relation"
)

func row(pairs ...any) *record.Record {
	r := record.New()
	for i := 0; i < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1].(record.Value))
	}
	return r
}

// blogManager wires authors, posts, tags and the post_tags association.
func blogManager(t *testing.T) *marshal.Manager {
	t.Helper()
	m := marshal.NewManager()

	authors := marshal.NewType("id")
	posts := marshal.NewType("id")
	posts.SetIndexFields([]string{"author_id"})
	tags := marshal.NewType("id")
	postTags := marshal.NewType("id")
	postTags.SetIndexFields([]string{"post_id"})

	require.NoError(t, m.SetType("authors", authors))
	require.NoError(t, m.SetType("posts", posts))
	require.NoError(t, m.SetType("tags", tags))
	require.NoError(t, m.SetType("post_tags", postTags))

	_, err := authors.Load([]*record.Record{
		row("id", record.Number(1), "name", record.String("Anna")),
		row("id", record.Number(2), "name", record.String("Bela")),
	})
	require.NoError(t, err)

	_, err = posts.Load([]*record.Record{
		row("id", record.Number(10), "author_id", record.Number(1), "title", record.String("first")),
		row("id", record.Number(11), "author_id", record.Number(2), "title", record.String("hello")),
		row("id", record.Number(12), "author_id", record.Number(1), "title", record.String("second")),
	})
	require.NoError(t, err)

	_, err = tags.Load([]*record.Record{
		row("id", record.Number(100), "name", record.String("go")),
		row("id", record.Number(101), "name", record.String("orm")),
		row("id", record.Number(102), "name", record.String("testing")),
	})
	require.NoError(t, err)

	_, err = postTags.Load([]*record.Record{
		row("id", record.Number(1000), "post_id", record.Number(10), "tag_id", record.Number(101)),
		row("id", record.Number(1001), "post_id", record.Number(10), "tag_id", record.Number(100)),
		row("id", record.Number(1002), "post_id", record.Number(11), "tag_id", record.Number(102)),
	})
	require.NoError(t, err)

	return m
}

func field(t *testing.T, e marshal.Entity, name string) record.Value {
	t.Helper()
	v, ok := e.GetField(name)
	require.True(t, ok, "field %s", name)
	return v
}

func TestBelongsTo(t *testing.T) {
	m := blogManager(t)
	posts, err := m.GetType("posts")
	require.NoError(t, err)

	rel := relation.NewBelongsTo(m, "authors", "author_id", "id")

	post, ok := posts.GetEntity(record.Number(11))
	require.True(t, ok)

	got, err := rel.GetForEntity(post)
	require.NoError(t, err)
	author, ok := got.(marshal.Entity)
	require.True(t, ok, "expected an entity, got %T", got)
	assert.True(t, field(t, author, "name").Equal(record.String("Bela")))
}

func TestBelongsToNoResult(t *testing.T) {
	m := blogManager(t)
	posts, err := m.GetType("posts")
	require.NoError(t, err)

	orphan, err := posts.LoadEntity(row("id", record.Number(13), "title", record.String("orphan")))
	require.NoError(t, err)

	rel := relation.NewBelongsTo(m, "authors", "author_id", "id")
	got, err := rel.GetForEntity(orphan)
	require.NoError(t, err)
	assert.Nil(t, got, "a missing native field resolves to no result")
}

func TestHasOne(t *testing.T) {
	m := blogManager(t)
	authors, err := m.GetType("authors")
	require.NoError(t, err)

	rel := relation.NewHasOne(m, "posts", "id", "author_id")

	anna, ok := authors.GetEntity(record.Number(1))
	require.True(t, ok)

	got, err := rel.GetForEntity(anna)
	require.NoError(t, err)
	post, ok := got.(marshal.Entity)
	require.True(t, ok, "expected an entity, got %T", got)
	// First-loaded wins on the indexed foreign field.
	assert.True(t, field(t, post, "id").Equal(record.Number(10)))
}

func TestHasMany(t *testing.T) {
	m := blogManager(t)
	authors, err := m.GetType("authors")
	require.NoError(t, err)

	rel := relation.NewHasMany(m, "posts", "id", "author_id")

	anna, ok := authors.GetEntity(record.Number(1))
	require.True(t, ok)

	got, err := rel.GetForEntity(anna)
	require.NoError(t, err)
	coll, ok := got.(marshal.Collection)
	require.True(t, ok, "expected a collection, got %T", got)
	require.Equal(t, 2, coll.Len())
	assert.True(t, field(t, coll.Entity(0), "id").Equal(record.Number(10)))
	assert.True(t, field(t, coll.Entity(1), "id").Equal(record.Number(12)))
}

func TestHasManyThrough(t *testing.T) {
	m := blogManager(t)
	posts, err := m.GetType("posts")
	require.NoError(t, err)

	rel := relation.NewHasManyThrough(m, "tags", "post_tags", "id", "post_id", "tag_id", "id")

	post, ok := posts.GetEntity(record.Number(10))
	require.True(t, ok)

	got, err := rel.GetForEntity(post)
	require.NoError(t, err)
	coll, ok := got.(marshal.Collection)
	require.True(t, ok, "expected a collection, got %T", got)
	require.Equal(t, 2, coll.Len())
	// Association-row order drives the result: orm before go.
	assert.True(t, field(t, coll.Entity(0), "name").Equal(record.String("orm")))
	assert.True(t, field(t, coll.Entity(1), "name").Equal(record.String("go")))

	// A post with no association rows gets an empty collection.
	bare, ok := posts.GetEntity(record.Number(12))
	require.True(t, ok)
	got, err = rel.GetForEntity(bare)
	require.NoError(t, err)
	assert.Equal(t, 0, got.(marshal.Collection).Len())
}

func TestRelationUnknownForeignType(t *testing.T) {
	m := blogManager(t)
	posts, err := m.GetType("posts")
	require.NoError(t, err)
	post, ok := posts.GetEntity(record.Number(10))
	require.True(t, ok)

	rel := relation.NewBelongsTo(m, "ghosts", "author_id", "id")
	_, err = rel.GetForEntity(post)
	assert.Error(t, err)
}

func TestRegisteredThroughFacade(t *testing.T) {
	m := blogManager(t)
	posts, err := m.GetType("posts")
	require.NoError(t, err)

	require.NoError(t, m.SetRelation("posts", "author",
		relation.NewBelongsTo(m, "authors", "author_id", "id")))

	post, ok := posts.GetEntity(record.Number(10))
	require.True(t, ok)

	got, err := posts.GetRelated(post, "author")
	require.NoError(t, err)
	author := got.(marshal.Entity)
	assert.True(t, field(t, author, "name").Equal(record.String("Anna")))
}
