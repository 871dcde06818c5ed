/*
Package relation provides the concrete relation definitions an identity
map resolves related data with: BelongsTo, HasOne, HasMany and
HasManyThrough.

Definitions hold field names, never data. Resolution is lazy — each
GetForEntity call reads the owning entity's native field and looks the
related slots up through a marshal.Manager at that moment, so it always
observes the current state of the foreign type's identity map.

Register definitions on the owning type and resolve through it:

	m.SetRelation("posts", "author",
	    relation.NewBelongsTo(m, "authors", "author_id", "id"))

	author, _ := posts.GetRelated(post, "author")
*/
package relation
