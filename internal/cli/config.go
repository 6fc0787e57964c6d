package cli

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/boxlayout/pkg/cache"
	"github.com/matzehuels/boxlayout/pkg/errors"
	"github.com/matzehuels/boxlayout/pkg/pipeline"
	"github.com/matzehuels/boxlayout/pkg/store"
)

// defaultAddr is the API listen address used when none is configured.
const defaultAddr = ":8080"

// Config is the optional config file. Command-line flags override its values.
//
//	[viewport]
//	width = 1280
//	height = 720
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//	scope = "staging"
//
//	[store]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
//
//	[server]
//	addr = ":9000"
type Config struct {
	Viewport ViewportConfig `toml:"viewport"`
	Cache    CacheConfig    `toml:"cache"`
	Store    StoreConfig    `toml:"store"`
	Server   ServerConfig   `toml:"server"`
}

type ViewportConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type CacheConfig struct {
	Backend  string `toml:"backend"` // file, bolt, redis or none
	Dir      string `toml:"dir"`
	BoltPath string `toml:"bolt_path"`
	RedisURL string `toml:"redis_url"`
	Scope    string `toml:"scope"` // key prefix for caches shared between deployments
}

type StoreConfig struct {
	Backend       string `toml:"backend"` // memory, file or mongo
	Dir           string `toml:"dir"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Viewport: ViewportConfig{Width: pipeline.DefaultWidth, Height: pipeline.DefaultHeight},
		Cache:    CacheConfig{Backend: cache.BackendFile},
		Store:    StoreConfig{Backend: store.BackendMemory, MongoDatabase: store.DefaultMongoDatabase},
		Server:   ServerConfig{Addr: defaultAddr},
	}
}

// LoadConfig reads the TOML file at path on top of [DefaultConfig]. A missing
// file yields the defaults unless required is set. Unknown keys are an error.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if required {
				return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return DefaultConfig(), nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return errors.New(errors.ErrCodeInvalidViewport, "viewport size must not be negative")
	}
	switch c.Cache.Backend {
	case "", cache.BackendFile, cache.BackendBolt, cache.BackendRedis, cache.BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case "", store.BackendMemory, store.BackendFile, store.BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q", c.Store.Backend)
	}
	return nil
}
