package box

// Kind tags which variant of the box union a [Unit] is.
type Kind int

const (
	KindNone Kind = iota
	KindContent
	KindFlex
	KindGrid
	KindSize
	KindImage
	KindText
)

var kindNames = map[Kind]string{
	KindNone:    "none",
	KindContent: "content",
	KindFlex:    "flex",
	KindGrid:    "grid",
	KindSize:    "size",
	KindImage:   "image",
	KindText:    "text",
}

// String returns the lowercase name used in tree documents.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind maps a tree document type name back to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return KindNone, false
}

// Unit is a node of the box tree.
//
// The interface is sealed: only the kinds declared in this package implement
// it. A nil Unit is treated the same as [None].
type Unit interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Identity returns the stable identity used as the layout map key.
	// It is empty for [None].
	Identity() string
	// Children returns the child slots in declaration order.
	Children() []Unit

	sealed()
}

// None is the empty box. It has no identity and never lays out.
type None struct{}

func (None) Kind() Kind       { return KindNone }
func (None) Identity() string { return "" }
func (None) Children() []Unit { return nil }
func (None) sealed()          {}

// IsNone reports whether u is nil or [None].
func IsNone(u Unit) bool {
	return u == nil || u.Kind() == KindNone
}
