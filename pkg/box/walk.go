package box

import "slices"

// Walk calls fn for u and every descendant in depth-first pre-order.
// Empty slots are skipped. If fn returns false the subtree below that node
// is not visited.
func Walk(u Unit, fn func(u Unit, depth int) bool) {
	walk(u, 0, fn)
}

func walk(u Unit, depth int, fn func(Unit, int) bool) {
	if IsNone(u) {
		return
	}
	if !fn(u, depth) {
		return
	}
	for _, c := range u.Children() {
		walk(c, depth+1, fn)
	}
}

// Count returns the number of non-empty nodes in the tree rooted at u.
func Count(u Unit) int {
	n := 0
	Walk(u, func(Unit, int) bool {
		n++
		return true
	})
	return n
}

// Depth returns the number of levels in the tree rooted at u.
func Depth(u Unit) int {
	deepest := 0
	Walk(u, func(_ Unit, d int) bool {
		if d+1 > deepest {
			deepest = d + 1
		}
		return true
	})
	return deepest
}

// DuplicateIDs returns identities used by more than one node, sorted.
// The layout map keeps only the last writer for such ids.
func DuplicateIDs(u Unit) []string {
	seen := make(map[string]int)
	Walk(u, func(n Unit, _ int) bool {
		seen[n.Identity()]++
		return true
	})
	var dups []string
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	slices.Sort(dups)
	return dups
}

// Find returns the first node with the given id in pre-order.
func Find(u Unit, id string) (Unit, bool) {
	var found Unit
	Walk(u, func(n Unit, _ int) bool {
		if found != nil {
			return false
		}
		if n.Identity() == id {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}
