// Package fixture loads TOML descriptions of an already-resolved compilation
// unit: symbols with their annotations, and references with their enclosing
// syntactic context. It stands in for the host resolution engine so the
// usage gate can be driven from files.
package fixture

// Manifest mirrors the TOML schema of one compilation-unit fixture.
type Manifest struct {
	// Module is the compilation module owning this file.
	Module string `toml:"module"`
	// Source is the optional source text used for rendering diagnostics.
	Source  string       `toml:"source"`
	Symbols []SymbolDecl `toml:"symbols"`
	Usages  []UsageDecl  `toml:"usages"`
}

// SymbolDecl declares one resolved symbol.
type SymbolDecl struct {
	Name      string           `toml:"name"`
	Kind      string           `toml:"kind"`
	Module    string           `toml:"module"`
	Container string           `toml:"container"`
	Local     bool             `toml:"local"`
	Span      []uint32         `toml:"span"`
	Anns      []AnnotationDecl `toml:"annotations"`
}

// AnnotationDecl is one annotation instance. The severity/scope/markers/
// targets fields are sugar for the corresponding named arguments.
type AnnotationDecl struct {
	Class    string   `toml:"class"`
	Span     []uint32 `toml:"span"`
	Severity string   `toml:"severity"`
	Scope    string   `toml:"scope"`
	Markers  []string `toml:"markers"`
	Targets  []string `toml:"targets"`
}

// UsageDecl is one resolved reference together with its enclosing context,
// listed outermost-first. The usage node itself occupies Slot in the last
// context entry (or directly in the file when Context is empty).
type UsageDecl struct {
	Target     string        `toml:"target"`
	Classifier bool          `toml:"classifier"`
	Span       []uint32      `toml:"span"`
	Slot       string        `toml:"slot"`
	Context    []ContextDecl `toml:"context"`
	// OptIn names marker classes waived at the usage site itself.
	OptIn []string `toml:"optin"`
}

// ContextDecl is one enclosing syntax node on the way from the file root to
// a usage site.
type ContextDecl struct {
	Kind string `toml:"kind"`
	// Slot this node occupies in its parent.
	Slot string `toml:"slot"`
	// Symbol names the declaration this node introduces, if any.
	Symbol string `toml:"symbol"`
	// OptIn names marker classes waived at this node (attaches an opt-in
	// annotation entry).
	OptIn []string `toml:"optin"`
	Span  []uint32 `toml:"span"`
}
