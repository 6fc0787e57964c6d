package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxlayout/pkg/api"
	"github.com/matzehuels/boxlayout/pkg/cache"
	"github.com/matzehuels/boxlayout/pkg/store"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr         string
		storeBackend string
		storeDir     string
		mongoURI     string
		mongoDB      string
		cacheBackend string
		redisURL     string
		noCache      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

Routes:
  GET    /healthz
  POST   /v1/layouts                {"viewport": {...}, "tree": {...}}
  GET    /v1/layouts/{id}
  DELETE /v1/layouts/{id}
  GET    /v1/layouts/{id}/{format}  json, svg, dot, tree, png or pdf

Layout records are kept in memory unless --store names a persistent backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg := &c.Config
			if flags.Changed("addr") {
				cfg.Server.Addr = addr
			}
			if flags.Changed("store") {
				cfg.Store.Backend = storeBackend
			}
			if flags.Changed("store-dir") {
				cfg.Store.Dir = storeDir
			}
			if flags.Changed("mongo-uri") {
				cfg.Store.MongoURI = mongoURI
			}
			if flags.Changed("mongo-db") {
				cfg.Store.MongoDatabase = mongoDB
			}
			if flags.Changed("cache") {
				cfg.Cache.Backend = cacheBackend
			}
			if flags.Changed("redis-url") {
				cfg.Cache.RedisURL = redisURL
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&storeBackend, "store", store.BackendMemory, "layout store: memory, file, mongo")
	cmd.Flags().StringVar(&storeDir, "store-dir", "", "file store directory (default: ~/.config/boxlayout/layouts)")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection URI")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", store.DefaultMongoDatabase, "MongoDB database")
	cmd.Flags().StringVar(&cacheBackend, "cache", cache.BackendFile, "cache backend: file, bolt, redis, none")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL for the redis cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, noCache bool) error {
	runner := c.newRunner(ctx, noCache)
	defer runner.Close()

	st, err := store.Open(ctx, store.Options{
		Backend:       c.Config.Store.Backend,
		Dir:           c.Config.Store.Dir,
		MongoURI:      c.Config.Store.MongoURI,
		MongoDatabase: c.Config.Store.MongoDatabase,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	printInfo("Serving layout API")
	printKeyValue("address", c.Config.Server.Addr)
	printKeyValue("store", describeStore(c.Config.Store))
	printKeyValue("cache", describeCache(c.Config.Cache, noCache))
	printNewline()

	return api.New(runner, st, c.Logger).ListenAndServe(ctx, c.Config.Server.Addr)
}

func describeStore(cfg StoreConfig) string {
	switch cfg.Backend {
	case store.BackendFile:
		if cfg.Dir != "" {
			return "file " + cfg.Dir
		}
		return "file"
	case store.BackendMongo:
		return "mongo " + cfg.MongoDatabase
	default:
		return store.BackendMemory
	}
}

func describeCache(cfg CacheConfig, noCache bool) string {
	switch {
	case noCache || cfg.Backend == cache.BackendNone:
		return "disabled"
	case cfg.Backend == cache.BackendRedis:
		return cache.BackendRedis
	case cfg.Backend == cache.BackendBolt:
		if cfg.BoltPath != "" {
			return "bolt " + cfg.BoltPath
		}
		dir := cfg.Dir
		if dir == "" {
			dir, _ = cacheDir()
		}
		return "bolt " + filepath.Join(dir, "cache.db")
	default:
		return cache.BackendFile
	}
}
