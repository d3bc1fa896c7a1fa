package sema

import (
	"expgate/internal/diag"
	"expgate/internal/symbols"
	"expgate/internal/syntax"
)

// Options configure one gate pass.
type Options struct {
	Reporter diag.Reporter
	// Names overrides the well-known annotation classes; zero fields keep
	// their defaults.
	Names WellKnown
}

// Usage pairs a usage site with the symbol the resolution engine bound it
// to. Classifier marks bare type references, which arrive separately from
// call resolution.
type Usage struct {
	Site       *syntax.Node
	Target     *symbols.Symbol
	Classifier bool
}

// Check runs the gate over the resolved references of one file and the
// declaration validator over the file's annotated declarations. It reads
// shared resolution state only and writes nothing but diagnostics, so
// distinct files may be checked concurrently with distinct reporters.
func Check(usages []Usage, decls []*syntax.Node, opts Options) {
	c := NewChecker(opts.Reporter).WithNames(opts.Names)
	for _, d := range decls {
		c.CheckDeclarationAnnotations(d)
	}
	for _, u := range usages {
		if u.Classifier {
			c.CheckClassifierRef(u.Site, u.Target)
		} else {
			c.CheckCall(u.Site, u.Target)
		}
	}
}
