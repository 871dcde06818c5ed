/*
Package marshal is an in-process identity map: it stores loaded records
exactly once per identity value, converts them into entity objects
lazily on first access, maintains secondary indexes for fast lookup,
tracks which entities changed since load, and composes entities into
ordered collections that alias the same underlying storage slots.

It is the data-integrity core of a data-mapper layer sitting between a
raw data source and application code. The package performs no I/O and
generates no queries; all data for a type is loaded from memory as
record.Record values.

Basic Usage:

	posts := marshal.NewType("id")
	posts.SetIndexFields([]string{"author_id"})

	// Lazy bulk load: slots hold raw records until first read.
	ids, _ := posts.Load(rows)

	// Reads materialize slots exactly once; every view of an offset
	// sees the same entity instance.
	post, _ := posts.GetEntity(record.Number(1))
	byAuthor := posts.GetCollectionByField("author_id", authors)

	// Mutations are detected against load-time snapshots.
	post.(*marshal.GenericEntity).SetField("title", record.String("edited"))
	changed := posts.GetChangedEntities()

A Manager composes several types so relation definitions (package
relation) can resolve related entities and collections across them.
Materialization is a side-effecting read: the first access through any
path replaces the slot's raw record with the built entity and files the
record away as the entity's snapshot. Types are internally locked as a
single critical section; collaborating builders must not call back into
the type that invokes them.
*/
package marshal
