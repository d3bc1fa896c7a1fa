package sema

import (
	"expgate/internal/diag"
	"expgate/internal/symbols"
	"expgate/internal/syntax"
)

// CheckDeclarationAnnotations validates the marker-related annotations of
// one declaration: opt-in directives must name non-empty sets of source-only
// markers, and marker declarations must not allow disallowed targets. Every
// finding is independent and non-fatal; the surrounding annotation framework
// owns generic target/repeatability checks.
func (c *Checker) CheckDeclarationAnnotations(decl *syntax.Node) {
	if decl == nil {
		return
	}
	for _, ann := range decl.Anns {
		if ann.Class == nil {
			// Unresolved annotation: the host reports the resolution error.
			continue
		}
		if ann.Class.Name == c.names.OptIn {
			c.validateOptIn(ann)
		}
	}
	if sym := decl.Decl(); sym != nil && sym.HasAnnotation(c.names.Experimental) {
		c.validateMarkerTargets(decl)
	}
}

// validateOptIn checks one opt-in directive instance: the marker list must
// be non-empty, and every entry must resolve to a valid SOURCE_ONLY marker.
func (c *Checker) validateOptIn(ann symbols.Annotation) {
	markers := ann.ClassArgs(argMarkers)
	if len(markers) == 0 {
		c.report(diag.ExpOptInNoArgs, diag.SevError, ann.At,
			"opt-in without arguments: at least one marker class is required")
		return
	}
	for _, ref := range markers {
		if ref == nil {
			continue
		}
		exp, ok := c.experimentalityOf(ref)
		if !ok {
			c.report(diag.ExpOptInNotMarker, diag.SevError, ann.At,
				"opt-in argument '%s' is not an experimental marker", ref.Name)
			continue
		}
		if exp.Scope == ScopeBinary {
			c.report(diag.ExpOptInBinaryScope, diag.SevError, ann.At,
				"opt-in argument '%s' has binary scope and cannot be waived locally; propagate the marker instead", ref.Name)
		}
	}
}

// validateMarkerTargets rejects target restrictions that would let a marker
// annotate bare expressions or whole files: neither can carry an opt-in
// burden. One finding per offending entry.
func (c *Checker) validateMarkerTargets(decl *syntax.Node) {
	for _, ann := range decl.Anns {
		if ann.Class == nil || ann.Class.Name != c.names.Target {
			continue
		}
		for _, target := range ann.EnumArgs(argTargets) {
			switch target {
			case targetExpression, targetFile:
				c.report(diag.ExpMarkerBadTarget, diag.SevError, ann.At,
					"experimental annotation has a disallowed target '%s'", target)
			}
		}
	}
}
