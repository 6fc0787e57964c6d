package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxlayout/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached layout and artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCacheClear(cmd.Context())
		},
	}
}

func (c *CLI) runCacheClear(ctx context.Context) error {
	opts := c.cacheOptions()
	switch opts.Backend {
	case cache.BackendNone:
		printInfo("Caching is disabled")
		return nil
	case "", cache.BackendFile:
		dir, err := c.cachePath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			printInfo("Cache is empty")
			return nil
		}
	}

	ch, err := c.openCache(ctx)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer ch.Close()

	clearer, ok := ch.(cache.Clearer)
	if !ok {
		return fmt.Errorf("%s cache cannot be cleared", opts.Backend)
	}
	if err := clearer.Clear(ctx); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	printSuccess("Cache cleared")
	if path, err := c.cachePath(); err == nil {
		printDetail("Location: %s", path)
	}
	return nil
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache lives",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.cachePath()
			if err != nil {
				return fmt.Errorf("get cache path: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// cachePath describes the configured cache location: a directory, a bolt
// database file or a redis URL.
func (c *CLI) cachePath() (string, error) {
	cfg := c.Config.Cache
	switch cfg.Backend {
	case cache.BackendRedis:
		return cfg.RedisURL, nil
	case cache.BackendBolt:
		if cfg.BoltPath != "" {
			return cfg.BoltPath, nil
		}
	}
	dir := cfg.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return "", err
		}
	}
	if cfg.Backend == cache.BackendBolt {
		return filepath.Join(dir, "cache.db"), nil
	}
	return dir, nil
}
