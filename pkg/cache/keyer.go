package cache

// LayoutKeyOpts are the inputs besides the tree that determine a layout.
type LayoutKeyOpts struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ArtifactKeyOpts are the inputs besides the layout that determine an artifact.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Scale    float64 `json:"scale,omitempty"`
	Labels   bool    `json:"labels,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey keys a layout by the hash of its tree document and the viewport.
	LayoutKey(treeHash string, opts LayoutKeyOpts) string
	// ArtifactKey keys a rendered artifact by the hash of its layout and format.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "layout:<sha>" and "artifact:<sha>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey implements [Keyer].
func (DefaultKeyer) LayoutKey(treeHash string, opts LayoutKeyOpts) string {
	return keyFor(KindLayout, treeHash, opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return keyFor(KindArtifact, layoutHash, opts)
}
