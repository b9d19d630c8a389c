package store

import (
	"context"
	"errors"
)

// Collections of the remote document store. Every document is keyed by
// its id field and replaced wholesale on save; there is no partial-field
// update protocol.
const (
	CollectionUsers    = "users"
	CollectionCourses  = "courses"
	CollectionSessions = "sessions"
	CollectionProjects = "projects"
	CollectionArticles = "articles"
	CollectionEvents   = "events"
	CollectionPartners = "partners"
)

var ErrNotFound = errors.New("document not found")

// DocumentStore is the persistence boundary of the platform: JSON
// documents grouped into collections.
type DocumentStore interface {
	// List returns every document in a collection, keyed by id.
	List(ctx context.Context, collection string) (map[string][]byte, error)
	// Get returns a single document or ErrNotFound.
	Get(ctx context.Context, collection, id string) ([]byte, error)
	// Put inserts or fully replaces a document.
	Put(ctx context.Context, collection, id string, doc []byte) error
	// Delete removes a document; deleting a missing document is a no-op.
	Delete(ctx context.Context, collection, id string) error
}
