package sema

import (
	"testing"

	"expgate/internal/diag"
	"expgate/internal/source"
	"expgate/internal/symbols"
	"expgate/internal/syntax"
)

func runDeclCheck(t *testing.T, decl *syntax.Node) *diag.Bag {
	t.Helper()
	bag := diag.NewBag(8)
	NewChecker(diag.BagReporter{Bag: bag}).CheckDeclarationAnnotations(decl)
	return bag
}

func TestOptInWithoutArguments(t *testing.T) {
	decl := &syntax.Node{
		Kind:       syntax.NodeFuncDecl,
		FromSource: true,
		Anns:       []symbols.Annotation{optInInstance()},
	}
	bag := runDeclCheck(t, decl)
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %v, want one", bag.Items())
	}
	if bag.Items()[0].Code != diag.ExpOptInNoArgs {
		t.Fatalf("code = %v, want ExpOptInNoArgs", bag.Items()[0].Code)
	}
}

func TestOptInArgumentNotAMarker(t *testing.T) {
	plain := &symbols.Symbol{Name: "lib.Plain", Kind: symbols.KindClass, Module: "lib"}
	decl := &syntax.Node{
		Kind:       syntax.NodeFuncDecl,
		FromSource: true,
		Anns:       []symbols.Annotation{optInInstance(plain)},
	}
	bag := runDeclCheck(t, decl)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.ExpOptInNotMarker {
		t.Fatalf("diagnostics = %v, want ExpOptInNotMarker", bag.Items())
	}
}

func TestOptInArgumentWithBinaryScope(t *testing.T) {
	binary := newMarker("lib.Stable", "ERROR", "BINARY")
	decl := &syntax.Node{
		Kind:       syntax.NodeFuncDecl,
		FromSource: true,
		Anns:       []symbols.Annotation{optInInstance(binary)},
	}
	bag := runDeclCheck(t, decl)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.ExpOptInBinaryScope {
		t.Fatalf("diagnostics = %v, want ExpOptInBinaryScope", bag.Items())
	}
}

func TestOptInMixedArgumentsReportIndependently(t *testing.T) {
	good := newMarker("lib.Shiny", "WARNING", "SOURCE_ONLY")
	plain := &symbols.Symbol{Name: "lib.Plain", Kind: symbols.KindClass, Module: "lib"}
	binary := newMarker("lib.Stable", "ERROR", "BINARY")
	decl := &syntax.Node{
		Kind:       syntax.NodeFuncDecl,
		FromSource: true,
		Anns:       []symbols.Annotation{optInInstance(good, plain, binary)},
	}
	bag := runDeclCheck(t, decl)
	if bag.Len() != 2 {
		t.Fatalf("diagnostics = %v, want one per bad argument", bag.Items())
	}
}

func TestValidOptInIsSilent(t *testing.T) {
	good := newMarker("lib.Shiny", "WARNING", "SOURCE_ONLY")
	decl := &syntax.Node{
		Kind:       syntax.NodeFuncDecl,
		FromSource: true,
		Anns:       []symbols.Annotation{optInInstance(good)},
	}
	if bag := runDeclCheck(t, decl); bag.Len() != 0 {
		t.Fatalf("diagnostics = %v, want none", bag.Items())
	}
}

func TestMarkerDeclarationWithDisallowedTargets(t *testing.T) {
	// A marker class restricting itself to EXPRESSION and FILE: one finding
	// per offending entry, legal entries stay silent.
	marker := newMarker("lib.Shiny", "WARNING", "SOURCE_ONLY")
	targets := targetInstance("CLASS", targetExpression, targetFile)
	marker.Annotations = append(marker.Annotations, targets)

	decl := &syntax.Node{
		Kind:       syntax.NodeClassDecl,
		FromSource: true,
		Sym:        marker,
		Anns:       marker.Annotations,
	}
	bag := runDeclCheck(t, decl)
	if bag.Len() != 2 {
		t.Fatalf("diagnostics = %v, want one per disallowed target", bag.Items())
	}
	for _, d := range bag.Items() {
		if d.Code != diag.ExpMarkerBadTarget {
			t.Fatalf("code = %v, want ExpMarkerBadTarget", d.Code)
		}
	}
}

func TestTargetRestrictionOnNonMarkerIsIgnored(t *testing.T) {
	// Only experimental-marker declarations are constrained; an ordinary
	// annotation class may target expressions.
	plain := &symbols.Symbol{
		Name: "lib.Plain", Kind: symbols.KindClass, Module: "lib",
		Annotations: []symbols.Annotation{targetInstance(targetExpression)},
	}
	decl := &syntax.Node{
		Kind:       syntax.NodeClassDecl,
		FromSource: true,
		Sym:        plain,
		Anns:       plain.Annotations,
	}
	if bag := runDeclCheck(t, decl); bag.Len() != 0 {
		t.Fatalf("diagnostics = %v, want none", bag.Items())
	}
}

func TestUnresolvedAnnotationEntriesAreInert(t *testing.T) {
	decl := &syntax.Node{
		Kind:       syntax.NodeFuncDecl,
		FromSource: true,
		Anns:       []symbols.Annotation{{Class: nil, At: source.Span{Start: 1, End: 2}}},
	}
	if bag := runDeclCheck(t, decl); bag.Len() != 0 {
		t.Fatalf("diagnostics = %v, unresolved entries are the host's problem", bag.Items())
	}
}
