/*
Package config builds a fully wired marshal.Manager from YAML type
definitions — the runtime analog of annotating a schema once and
generating the plumbing.

A document declares identity fields, secondary-index fields and
relations per type:

	types:
	  authors:
	    identity_field: id
	  posts:
	    identity_field: id
	    index_fields: [author_id]
	    relations:
	      author:
	        kind: belongs_to
	        foreign_type: authors
	        native_field: author_id
	        foreign_field: id

Load validates eagerly: every type needs an identity_field, every
relation a known kind and declared foreign (and through) types.
*/
package config
