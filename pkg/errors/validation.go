package errors

import (
	"math"
	"unicode"
)

// MaxViewportExtent bounds viewport width and height.
const MaxViewportExtent = 1 << 20

// ValidateViewport checks a viewport size before it reaches the layout core.
//
// Width and height must be finite, non-negative and at most
// [MaxViewportExtent]. The origin may be anywhere but must be finite.
func ValidateViewport(left, top, width, height float64) error {
	for _, v := range []float64{left, top, width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidViewport, "viewport values must be finite")
		}
	}
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidViewport, "viewport size cannot be negative (%gx%g)", width, height)
	}
	if width > MaxViewportExtent || height > MaxViewportExtent {
		return New(ErrCodeInvalidViewport, "viewport too large (max %d per side)", MaxViewportExtent)
	}
	return nil
}

// ValidateNodeID validates a node identity read from a tree document.
// Empty identities are allowed; they simply share one map slot.
func ValidateNodeID(id string) error {
	if len(id) > 256 {
		return New(ErrCodeInvalidTree, "node id too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTree, "node id %q contains control characters", id)
		}
	}
	return nil
}
