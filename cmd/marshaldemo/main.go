/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	marshal "github.com/jakefolio/Aura.Marshal"
	"github.com/jakefolio/Aura.Marshal/config"
	"github.com/jakefolio/Aura.Marshal/record"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

const sampleTypes = `
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
    index_fields: [author_id]
    relations:
      author:
        kind: belongs_to
        foreign_type: authors
        native_field: author_id
        foreign_field: id
`

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := marshal.GetVersionInfo()
		fmt.Printf("Aura.Marshal marshaldemo version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// MARSHAL_TYPES may point at a YAML type-definition file, via the
	// environment or a .env file; the embedded sample is the fallback.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	defs := []byte(sampleTypes)
	if path := os.Getenv("MARSHAL_TYPES"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		defs = data
	}

	m, err := config.Load(defs)
	if err != nil {
		return err
	}

	authors, err := m.GetType("authors")
	if err != nil {
		return err
	}
	posts, err := m.GetType("posts")
	if err != nil {
		return err
	}

	if _, err := authors.Load([]*record.Record{
		record.New().Set("id", record.Number(1)).Set("name", record.String("Anna")),
		record.New().Set("id", record.Number(2)).Set("name", record.String("Bela")),
	}); err != nil {
		return err
	}
	if _, err := posts.Load([]*record.Record{
		record.New().Set("id", record.Number(10)).Set("author_id", record.Number(1)).Set("title", record.String("First post")),
		record.New().Set("id", record.Number(11)).Set("author_id", record.Number(2)).Set("title", record.String("Hello")),
		record.New().Set("id", record.Number(12)).Set("author_id", record.Number(1)).Set("title", record.String("Second post")),
	}); err != nil {
		return err
	}

	post, _ := posts.GetEntity(record.Number(10))
	fmt.Println("post 10 title:", mustField(post, "title"))

	author, err := posts.GetRelated(post, "author")
	if err != nil {
		return err
	}
	fmt.Println("post 10 author:", mustField(author.(marshal.Entity), "name"))

	anna, _ := authors.GetEntity(record.Number(1))
	related, err := authors.GetRelated(anna, "posts")
	if err != nil {
		return err
	}
	coll := related.(marshal.Collection)
	fmt.Println("posts by Anna:", coll.Len())

	post.(*marshal.GenericEntity).SetField("title", record.String("First post, edited"))
	for id, e := range posts.GetChangedEntities() {
		fmt.Printf("changed post %s: %s\n", id, posts.GetChangedFields(e))
	}

	draft := posts.NewEntity(record.New().Set("title", record.String("Draft")))
	fmt.Println("new entities:", len(posts.GetNewEntities()))
	fmt.Println("draft changed fields:", posts.GetChangedFields(draft))
	return nil
}

func mustField(e marshal.Entity, name string) string {
	v, _ := e.GetField(name)
	return v.String()
}
