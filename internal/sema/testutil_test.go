package sema

import (
	"expgate/internal/source"
	"expgate/internal/symbols"
	"expgate/internal/syntax"
)

// The well-known annotation classes, as the host resolver would present them.
var (
	experimentalClass = &symbols.Symbol{
		Name:   DefaultExperimentalClass,
		Kind:   symbols.KindClass,
		Module: "expgate.annotation",
	}
	optInClass = &symbols.Symbol{
		Name:   DefaultOptInClass,
		Kind:   symbols.KindClass,
		Module: "expgate.annotation",
	}
	targetClass = &symbols.Symbol{
		Name:   DefaultTargetClass,
		Kind:   symbols.KindClass,
		Module: "expgate.annotation",
	}
)

// newMarker builds a marker annotation class declaring a policy with the
// given enum literals.
func newMarker(name, severity, scope string) *symbols.Symbol {
	return &symbols.Symbol{
		Name:   name,
		Kind:   symbols.KindClass,
		Module: "lib",
		Annotations: []symbols.Annotation{{
			Class: experimentalClass,
			Args: []symbols.Arg{
				{Name: argSeverity, Enums: []string{severity}},
				{Name: argScope, Enums: []string{scope}},
			},
		}},
	}
}

// markerInstance is one application of a marker to a declaration.
func markerInstance(marker *symbols.Symbol) symbols.Annotation {
	return symbols.Annotation{Class: marker}
}

// optInInstance is an opt-in directive naming the given marker classes.
func optInInstance(markers ...*symbols.Symbol) symbols.Annotation {
	return symbols.Annotation{
		Class: optInClass,
		Args:  []symbols.Arg{{Name: argMarkers, Classes: markers}},
	}
}

// targetInstance is a target restriction listing the given enum entries.
func targetInstance(targets ...string) symbols.Annotation {
	return symbols.Annotation{
		Class: targetClass,
		Args:  []symbols.Arg{{Name: argTargets, Enums: targets}},
	}
}

// bodyUsage builds file -> func decl -> call in the function body, returning
// the usage node. The enclosing function is exported and declared by fn.
func bodyUsage(module string, fn *symbols.Symbol) *syntax.Node {
	file := syntax.NewFile(module, source.Span{})
	decl := file.NewChild(syntax.NodeFuncDecl, syntax.SlotOther, source.Span{})
	decl.Sym = fn
	if fn != nil {
		decl.Anns = fn.Annotations
	}
	return decl.NewChild(syntax.NodeCall, syntax.SlotFuncBody, source.Span{Start: 10, End: 15})
}

// signatureUsage builds file -> func decl -> type ref in the signature.
func signatureUsage(module string, fn *symbols.Symbol) *syntax.Node {
	file := syntax.NewFile(module, source.Span{})
	decl := file.NewChild(syntax.NodeFuncDecl, syntax.SlotOther, source.Span{})
	decl.Sym = fn
	if fn != nil {
		decl.Anns = fn.Annotations
	}
	return decl.NewChild(syntax.NodeRef, syntax.SlotSignature, source.Span{Start: 20, End: 24})
}
