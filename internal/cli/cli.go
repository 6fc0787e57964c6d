// Package cli implements the boxlayout command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxlayout/pkg/buildinfo"
	"github.com/matzehuels/boxlayout/pkg/cache"
	"github.com/matzehuels/boxlayout/pkg/observability"
	"github.com/matzehuels/boxlayout/pkg/pipeline"
)

const appName = "boxlayout"

// Log levels for main.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI is the state shared by every command: the logger and the loaded config.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
}

func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level. At debug level pipeline and cache
// events are logged as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		observability.SetAll(&logHooks{logger: c.Logger})
	}
}

// RootCommand returns the root command with every subcommand attached.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "boxlayout computes the geometry of UI box trees",
		Long:         `boxlayout reads a tree of UI boxes (anchored content, flex, grid, size and leaf boxes) and computes the local and absolute rectangle of every box inside a viewport.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/boxlayout/config.toml)")

	root.AddCommand(
		c.layoutCommand(),
		c.renderCommand(),
		c.inspectCommand(),
		c.convertCommand(),
		c.serveCommand(),
		c.cacheCommand(),
		c.completionCommand(),
	)

	return root
}

// loadConfig reads the config file named by --config, or the default one if
// it exists.
func (c *CLI) loadConfig() error {
	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return nil
		}
		path = p
	}
	cfg, err := LoadConfig(path, explicit)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "path", path)
	return nil
}

// newRunner builds a runner over the configured cache, scoping keys when the
// config names a scope.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	var keyer cache.Keyer
	if scope := c.Config.Cache.Scope; scope != "" {
		keyer = cache.NewScopedKeyer(nil, scope)
	}
	return pipeline.NewRunner(c.newCache(ctx, noCache), keyer, c.Logger)
}

// newCache opens the configured cache backend. A backend that cannot be
// opened degrades to no caching.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	ch, err := c.openCache(ctx)
	if err != nil {
		printWarning("cache disabled: %v", err)
		return cache.NewNullCache()
	}
	return ch
}

func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	opts := c.cacheOptions()
	if opts.Dir == "" && (opts.Backend == "" || opts.Backend == cache.BackendFile || opts.Backend == cache.BackendBolt) {
		dir, err := cacheDir()
		if err != nil {
			return nil, err
		}
		opts.Dir = dir
	}
	return cache.Open(ctx, opts)
}

func (c *CLI) cacheOptions() cache.Options {
	return cache.Options{
		Backend:  c.Config.Cache.Backend,
		Dir:      c.Config.Cache.Dir,
		BoltPath: c.Config.Cache.BoltPath,
		RedisURL: c.Config.Cache.RedisURL,
	}
}

// viewportFlags binds the viewport flags shared by layout, render and inspect.
func viewportFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().Float64Var(&opts.Width, "width", pipeline.DefaultWidth, "viewport width")
	cmd.Flags().Float64Var(&opts.Height, "height", pipeline.DefaultHeight, "viewport height")
	cmd.Flags().Float64Var(&opts.Left, "left", 0, "viewport left edge")
	cmd.Flags().Float64Var(&opts.Top, "top", 0, "viewport top edge")
}

// applyConfig fills viewport options the user did not set on the command line
// from the config file.
func (c *CLI) applyConfig(cmd *cobra.Command, opts *pipeline.Options) {
	if !cmd.Flags().Changed("width") && c.Config.Viewport.Width > 0 {
		opts.Width = c.Config.Viewport.Width
	}
	if !cmd.Flags().Changed("height") && c.Config.Viewport.Height > 0 {
		opts.Height = c.Config.Viewport.Height
	}
	opts.Logger = c.Logger
}
