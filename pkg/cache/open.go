package cache

import (
	"context"
	"fmt"
	"path/filepath"
)

// Backend names accepted by [Open].
const (
	BackendFile  = "file"
	BackendBolt  = "bolt"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Options select and configure a cache backend.
type Options struct {
	Backend  string // file (default), bolt, redis or none
	Dir      string // file cache directory; bolt database lives here when BoltPath is empty
	BoltPath string
	RedisURL string
}

// Open constructs the backend named by opts.Backend.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "", BackendFile:
		if opts.Dir == "" {
			return nil, fmt.Errorf("file cache: directory required")
		}
		c, err := NewFileCache(opts.Dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendBolt:
		path := opts.BoltPath
		if path == "" {
			if opts.Dir == "" {
				return nil, fmt.Errorf("bolt cache: path required")
			}
			path = filepath.Join(opts.Dir, "cache.db")
		}
		c, err := NewBoltCache(path)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendRedis:
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("redis cache: url required")
		}
		c, err := NewRedisCache(ctx, opts.RedisURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendNone:
		return NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want file, bolt, redis or none)", opts.Backend)
	}
}
