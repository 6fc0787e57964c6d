// Package store persists computed layouts so they can be fetched again by id.
//
// A [Record] holds the tree document a layout was computed from, the
// viewport, and the resulting geometry. Records are addressed by random
// UUIDs. Backends:
//   - memory: In-memory storage for development and tests
//   - file: One JSON file per record, for single-machine deployments
//   - mongo: MongoDB collection for shared deployments
//
// # Usage
//
//	st, err := store.Open(ctx, store.Options{Backend: store.BackendMongo, MongoURI: uri})
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	rec := store.NewRecord(viewport, doc, treeHash, l)
//	if err := st.Put(ctx, rec); err != nil {
//	    return err
//	}
//	rec, err = st.Get(ctx, rec.ID)
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/boxlayout/pkg/errors"
	"github.com/matzehuels/boxlayout/pkg/geom"
	"github.com/matzehuels/boxlayout/pkg/layout"
)

// Record is one stored layout.
type Record struct {
	ID        string          `json:"id"`
	Viewport  geom.Rect       `json:"viewport"`
	Tree      json.RawMessage `json:"tree"`
	TreeHash  string          `json:"tree_hash,omitempty"`
	Layout    layout.Layout   `json:"layout"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewRecord creates a record with a fresh id. tree is the canonical JSON
// encoding of the box tree.
func NewRecord(viewport geom.Rect, tree []byte, treeHash string, l layout.Layout) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Viewport:  viewport,
		Tree:      json.RawMessage(tree),
		TreeHash:  treeHash,
		Layout:    l,
		CreatedAt: time.Now().UTC(),
	}
}

// Store is the interface for record storage backends.
type Store interface {
	// Get retrieves a record by id. A missing record is an error with
	// code LAYOUT_NOT_FOUND.
	Get(ctx context.Context, id string) (*Record, error)

	// Put stores a record, replacing any record with the same id.
	Put(ctx context.Context, rec *Record) error

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	Close() error
}

// ValidateID checks that id is a UUID.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid layout id %q", id)
	}
	return nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", id)
}
