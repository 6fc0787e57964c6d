package cache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketEntries = "entries"

// BoltCache keeps entries in a single bbolt database file.
type BoltCache struct {
	db *bolt.DB
}

// NewBoltCache opens (creating if needed) the database at path.
// bbolt holds an exclusive file lock; a second process waits up to one
// second before failing.
func NewBoltCache(path string) (*BoltCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketEntries))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltCache{db: db}, nil
}

// Path returns the database file path.
func (c *BoltCache) Path() string { return c.db.Path() }

// Get retrieves a value from the cache. Expired entries are removed lazily.
func (c *BoltCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var raw []byte
	err := c.view(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketEntries)).Get([]byte(key)); v != nil {
			// v is only valid inside the transaction
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if raw == nil {
		return nil, false, nil
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil || e.expired(time.Now()) {
		_ = c.Delete(ctx, key)
		return nil, false, nil
	}
	return e.Data, true, nil
}

// Set stores a value in the cache.
func (c *BoltCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	raw, err := json.Marshal(newEntry(data, ttl))
	if err != nil {
		return err
	}
	return c.update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketEntries)).Put([]byte(key), raw)
	})
}

// Delete removes a value from the cache.
func (c *BoltCache) Delete(ctx context.Context, key string) error {
	return c.update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketEntries)).Delete([]byte(key))
	})
}

// Clear drops every entry.
func (c *BoltCache) Clear(ctx context.Context) error {
	return c.update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketEntries)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(bucketEntries))
		return err
	})
}

// Len returns the number of stored entries, expired ones included.
func (c *BoltCache) Len() (int, error) {
	var n int
	err := c.view(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(bucketEntries)).Stats().KeyN
		return nil
	})
	return n, err
}

// Close releases the database file.
func (c *BoltCache) Close() error {
	return c.db.Close()
}

func (c *BoltCache) view(fn func(*bolt.Tx) error) error {
	return closedAs(c.db.View(fn))
}

func (c *BoltCache) update(fn func(*bolt.Tx) error) error {
	return closedAs(c.db.Update(fn))
}

// closedAs reports use of a closed database as [ErrClosed].
func closedAs(err error) error {
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return ErrClosed
	}
	return err
}

var (
	_ Cache   = (*BoltCache)(nil)
	_ Clearer = (*BoltCache)(nil)
)
