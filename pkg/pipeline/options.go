package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxlayout/pkg/cache"
	"github.com/matzehuels/boxlayout/pkg/errors"
	"github.com/matzehuels/boxlayout/pkg/geom"
	treeio "github.com/matzehuels/boxlayout/pkg/io"
)

// Defaults shared by the CLI flags and the API.
const (
	DefaultWidth  = 1024.0
	DefaultHeight = 576.0
	DefaultScale  = 2.0

	DefaultTreeFormat = treeio.FormatJSON
)

// Options configures a pipeline run. Zero fields take the defaults above
// once validated; the JSON tags let API requests carry them directly.
type Options struct {
	Format treeio.Format `json:"format,omitempty"`

	// Viewport origin and extent.
	Left   float64 `json:"left,omitempty"`
	Top    float64 `json:"top,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	Formats  []string `json:"formats,omitempty"`
	Labels   bool     `json:"labels,omitempty"`   // identities on the wireframe
	Detailed bool     `json:"detailed,omitempty"` // rectangles in DOT labels
	Scale    float64  `json:"scale,omitempty"`    // PNG only

	NoCache bool `json:"no_cache,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults prepares o for a full run. Repeated calls are
// no-ops.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForDecode(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForDecode normalizes the tree format, so "yml" becomes "yaml".
func (o *Options) ValidateForDecode() error {
	o.ensureLogger()
	if o.Format == "" {
		o.Format = DefaultTreeFormat
	}
	f, err := treeio.ParseFormat(string(o.Format))
	if err != nil {
		return err
	}
	o.Format = f
	return nil
}

func (o *Options) ValidateForLayout() error {
	o.ensureLogger()
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	return errors.ValidateViewport(o.Left, o.Top, o.Width, o.Height)
}

func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	switch {
	case o.Scale == 0:
		o.Scale = DefaultScale
	case o.Scale < 0:
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

func (o *Options) ensureLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Viewport is the rectangle the root box is laid out in.
func (o *Options) Viewport() geom.Rect {
	return geom.Rect{Left: o.Left, Right: o.Left + o.Width, Top: o.Top, Bottom: o.Top + o.Height}
}

func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Left: o.Left, Top: o.Top, Width: o.Width, Height: o.Height}
}

// ArtifactKeyOpts keys an artifact only on the options that change its
// bytes, so toggling labels does not invalidate a cached DOT file.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG, FormatPDF:
		opts.Labels = o.Labels
	case FormatPNG:
		opts.Labels = o.Labels
		opts.Scale = o.Scale
	case FormatDOT, FormatTree:
		opts.Detailed = o.Detailed
	}
	return opts
}
