package sema

import (
	"expgate/internal/syntax"
)

// accepted decides whether a usage affected by one marker policy is
// legitimate. The three conditions are a short-circuited OR; the order only
// matters for cost, not for the result.
func (c *Checker) accepted(use *syntax.Node, exp Experimentality, sameModuleBody bool, isBody func() bool) bool {
	// Within one compilation unit a body usage cannot leak to external
	// consumers, so no annotation burden is imposed.
	if sameModuleBody {
		return true
	}
	if exp.Scope == ScopeSourceOnly && isBody() && c.optInCovers(use, exp.Marker) {
		return true
	}
	return c.propagated(use, exp.Marker)
}

// optInCovers walks the enclosing chain, the usage site included, looking
// for an opt-in annotation whose marker set names the given marker.
func (c *Checker) optInCovers(use *syntax.Node, m Marker) bool {
	for cur := use; cur != nil; cur = cur.Parent {
		for _, ann := range cur.Anns {
			if ann.Class == nil || ann.Class.Name != c.names.OptIn {
				continue
			}
			for _, ref := range ann.ClassArgs(argMarkers) {
				if ref != nil && Marker(ref.Name) == m {
					return true
				}
			}
		}
	}
	return false
}

// propagated reports whether the nearest non-local enclosing declaration has
// re-declared the identical marker. Only the nearest such declaration
// counts: callers of it already bear the same obligation, while anything
// re-declared on a local wrapper stays invisible outside that wrapper.
func (c *Checker) propagated(use *syntax.Node, m Marker) bool {
	for cur := use; cur != nil; cur = cur.Parent {
		sym := cur.Decl()
		if sym == nil || sym.Local {
			continue
		}
		return sym.HasAnnotation(string(m))
	}
	return false
}
