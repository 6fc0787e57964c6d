package cache

import "strings"

// ScopedKeyer prefixes every key with a scope so that several deployments can
// share one Redis instance or bolt file without colliding:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging")
//	keyer.LayoutKey(h, opts) // "staging:layout:<sha>"
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil. A
// trailing ":" is added to scope when missing; an empty scope adds nothing.
func NewScopedKeyer(inner Keyer, scope string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	if scope != "" && !strings.HasSuffix(scope, ":") {
		scope += ":"
	}
	return &ScopedKeyer{inner: inner, prefix: scope}
}

// Scope returns the prefix added to keys, including its trailing colon.
func (k *ScopedKeyer) Scope() string { return k.prefix }

func (k *ScopedKeyer) LayoutKey(treeHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(treeHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
