package store

import (
	"context"
	"fmt"
)

// Backend names accepted by [Open].
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendMongo  = "mongo"
)

// Options select and configure a store backend.
type Options struct {
	Backend       string // memory (default), file or mongo
	Dir           string // file store directory
	MongoURI      string
	MongoDatabase string
}

// Open constructs the backend named by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		s, err := NewFileStore(opts.Dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendMongo:
		if opts.MongoURI == "" {
			return nil, fmt.Errorf("mongo store: uri required")
		}
		s, err := NewMongoStore(ctx, opts.MongoURI, opts.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (want memory, file or mongo)", opts.Backend)
	}
}
