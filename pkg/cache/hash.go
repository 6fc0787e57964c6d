package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// KeyKind names what a cache key addresses.
type KeyKind string

const (
	KindLayout   KeyKind = "layout"
	KindArtifact KeyKind = "artifact"
)

// keyFor builds "<kind>:<sha256 of parts as JSON>".
func keyFor(kind KeyKind, parts ...any) string {
	data, _ := json.Marshal(parts)
	return string(kind) + ":" + Hash(data)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// KindOf returns the kind segment of a key built by a [Keyer], looking past
// any scope prefix. Keys of another shape report "".
func KindOf(key string) KeyKind {
	parts := strings.Split(key, ":")
	if len(parts) < 2 {
		return ""
	}
	switch k := KeyKind(parts[len(parts)-2]); k {
	case KindLayout, KindArtifact:
		return k
	}
	return ""
}
