package fixture

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"expgate/internal/sema"
	"expgate/internal/source"
	"expgate/internal/symbols"
	"expgate/internal/syntax"
)

// Compilation is the resolved view built from one manifest: everything the
// gate needs for a single file.
type Compilation struct {
	Module string
	FileID source.FileID
	Usages []sema.Usage
	// Decls carries one declaration node per symbol owned by Module, for the
	// declaration validator.
	Decls []*syntax.Node
}

// Load reads and resolves a manifest file, registering its source text in fs.
func Load(path string, fs *source.FileSet) (*Compilation, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(path, data, fs)
}

// Parse resolves a manifest from memory. The manifest path names the virtual
// source file in fs.
func Parse(path string, data []byte, fs *source.FileSet) (*Compilation, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	if m.Module == "" {
		return nil, fmt.Errorf("manifest %s: missing module name", path)
	}

	fileID := fs.AddVirtual(path, []byte(m.Source))
	r := resolver{manifest: &m, fileID: fileID, table: make(map[string]*symbols.Symbol)}
	if err := r.run(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return &Compilation{
		Module: m.Module,
		FileID: fileID,
		Usages: r.usages,
		Decls:  r.decls,
	}, nil
}

type resolver struct {
	manifest *Manifest
	fileID   source.FileID
	table    map[string]*symbols.Symbol
	usages   []sema.Usage
	decls    []*syntax.Node
}

func (r *resolver) run() error {
	// First pass: create every declared symbol so containers, annotation
	// classes and marker references can point at each other.
	for _, sd := range r.manifest.Symbols {
		kind, ok := symbolKind(sd.Kind)
		if !ok {
			return fmt.Errorf("symbol %q: unknown kind %q", sd.Name, sd.Kind)
		}
		if _, dup := r.table[sd.Name]; dup {
			return fmt.Errorf("symbol %q declared twice", sd.Name)
		}
		r.table[sd.Name] = &symbols.Symbol{
			Name:   sd.Name,
			Kind:   kind,
			Module: sd.Module,
			Local:  sd.Local,
		}
	}

	// Second pass: containers and annotations.
	for _, sd := range r.manifest.Symbols {
		sym := r.table[sd.Name]
		if sd.Container != "" {
			container, err := r.lookup(sd.Container)
			if err != nil {
				return fmt.Errorf("symbol %q: %w", sd.Name, err)
			}
			sym.Container = container
		}
		for _, ad := range sd.Anns {
			ann, err := r.annotation(ad)
			if err != nil {
				return fmt.Errorf("symbol %q: %w", sd.Name, err)
			}
			sym.Annotations = append(sym.Annotations, ann)
		}
	}

	// Declaration nodes for the validator: declarations the current module
	// owns.
	root := syntax.NewFile(r.manifest.Module, r.fileSpan())
	for _, sd := range r.manifest.Symbols {
		sym := r.table[sd.Name]
		if sym.Module != r.manifest.Module {
			continue
		}
		decl := root.NewChild(declNodeKind(sym.Kind), syntax.SlotOther, r.span(sd.Span))
		decl.Sym = sym
		decl.Anns = sym.Annotations
		r.decls = append(r.decls, decl)
	}

	for i, ud := range r.manifest.Usages {
		if err := r.usage(ud); err != nil {
			return fmt.Errorf("usage %d: %w", i, err)
		}
	}
	return nil
}

func (r *resolver) usage(ud UsageDecl) error {
	target, err := r.lookup(ud.Target)
	if err != nil {
		return err
	}

	parent := syntax.NewFile(r.manifest.Module, r.fileSpan())
	for _, cd := range ud.Context {
		kind, ok := nodeKind(cd.Kind)
		if !ok {
			return fmt.Errorf("unknown context kind %q", cd.Kind)
		}
		slot, ok := slotKind(cd.Slot)
		if !ok {
			return fmt.Errorf("unknown slot %q", cd.Slot)
		}
		node := parent.NewChild(kind, slot, r.span(cd.Span))
		if cd.Symbol != "" {
			sym, err := r.lookup(cd.Symbol)
			if err != nil {
				return err
			}
			node.Sym = sym
			node.Anns = sym.Annotations
		}
		if len(cd.OptIn) > 0 {
			ann, err := r.optIn(cd.OptIn)
			if err != nil {
				return err
			}
			node.Anns = append(node.Anns, ann)
		}
		parent = node
	}

	slot, ok := slotKind(ud.Slot)
	if !ok {
		return fmt.Errorf("unknown slot %q", ud.Slot)
	}
	useKind := syntax.NodeCall
	if ud.Classifier {
		useKind = syntax.NodeRef
	}
	use := parent.NewChild(useKind, slot, r.span(ud.Span))
	if len(ud.OptIn) > 0 {
		ann, err := r.optIn(ud.OptIn)
		if err != nil {
			return err
		}
		use.Anns = append(use.Anns, ann)
	}

	r.usages = append(r.usages, sema.Usage{
		Site:       use,
		Target:     target,
		Classifier: ud.Classifier,
	})
	return nil
}

func (r *resolver) annotation(ad AnnotationDecl) (symbols.Annotation, error) {
	if ad.Class == "" {
		return symbols.Annotation{}, fmt.Errorf("annotation without class")
	}
	class, err := r.lookup(ad.Class)
	if err != nil {
		return symbols.Annotation{}, err
	}
	ann := symbols.Annotation{Class: class, At: r.span(ad.Span)}
	if ad.Severity != "" {
		ann.Args = append(ann.Args, symbols.Arg{Name: "severity", Enums: []string{ad.Severity}})
	}
	if ad.Scope != "" {
		ann.Args = append(ann.Args, symbols.Arg{Name: "scope", Enums: []string{ad.Scope}})
	}
	if ad.Markers != nil {
		classes, err := r.lookupAll(ad.Markers)
		if err != nil {
			return symbols.Annotation{}, err
		}
		ann.Args = append(ann.Args, symbols.Arg{Name: "markers", Classes: classes})
	}
	if ad.Targets != nil {
		ann.Args = append(ann.Args, symbols.Arg{Name: "targets", Enums: ad.Targets})
	}
	return ann, nil
}

func (r *resolver) optIn(markers []string) (symbols.Annotation, error) {
	classes, err := r.lookupAll(markers)
	if err != nil {
		return symbols.Annotation{}, err
	}
	optIn, err := r.lookup(sema.DefaultOptInClass)
	if err != nil {
		return symbols.Annotation{}, err
	}
	return symbols.Annotation{
		Class: optIn,
		Args:  []symbols.Arg{{Name: "markers", Classes: classes}},
	}, nil
}

// lookup resolves a symbol name. The three well-known annotation classes are
// materialized on demand so manifests need not declare the host stdlib.
func (r *resolver) lookup(name string) (*symbols.Symbol, error) {
	if sym, ok := r.table[name]; ok {
		return sym, nil
	}
	switch name {
	case sema.DefaultExperimentalClass, sema.DefaultOptInClass, sema.DefaultTargetClass:
		sym := &symbols.Symbol{Name: name, Kind: symbols.KindClass, Module: "expgate.annotation"}
		r.table[name] = sym
		return sym, nil
	}
	return nil, fmt.Errorf("unknown symbol %q", name)
}

func (r *resolver) lookupAll(names []string) ([]*symbols.Symbol, error) {
	out := make([]*symbols.Symbol, 0, len(names))
	for _, name := range names {
		sym, err := r.lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, sym)
	}
	return out, nil
}

func (r *resolver) span(raw []uint32) source.Span {
	if len(raw) != 2 {
		return source.Span{File: r.fileID}
	}
	return source.Span{File: r.fileID, Start: raw[0], End: raw[1]}
}

func (r *resolver) fileSpan() source.Span {
	return source.Span{File: r.fileID, Start: 0, End: uint32(len(r.manifest.Source))}
}

func symbolKind(s string) (symbols.Kind, bool) {
	switch s {
	case "class":
		return symbols.KindClass, true
	case "constructor":
		return symbols.KindConstructor, true
	case "func", "":
		return symbols.KindFunc, true
	case "property":
		return symbols.KindProperty, true
	case "typealias":
		return symbols.KindTypeAlias, true
	case "param":
		return symbols.KindParam, true
	}
	return 0, false
}

func nodeKind(s string) (syntax.Kind, bool) {
	switch s {
	case "file":
		return syntax.NodeFile, true
	case "class":
		return syntax.NodeClassDecl, true
	case "func", "":
		return syntax.NodeFuncDecl, true
	case "property":
		return syntax.NodePropertyDecl, true
	case "param":
		return syntax.NodeParamDecl, true
	case "init":
		return syntax.NodeInitBlock, true
	case "call":
		return syntax.NodeCall, true
	case "ref":
		return syntax.NodeRef, true
	case "expr":
		return syntax.NodeExpr, true
	}
	return 0, false
}

func slotKind(s string) (syntax.Slot, bool) {
	switch s {
	case "none":
		return syntax.SlotNone, true
	case "body":
		return syntax.SlotFuncBody, true
	case "getter-body":
		return syntax.SlotGetterBody, true
	case "setter-body":
		return syntax.SlotSetterBody, true
	case "initializer":
		return syntax.SlotPropertyInit, true
	case "default":
		return syntax.SlotParamDefault, true
	case "init-block":
		return syntax.SlotInitBlock, true
	case "super-call-args":
		return syntax.SlotSuperCallArgs, true
	case "super-delegate":
		return syntax.SlotSuperDelegate, true
	case "property-delegate":
		return syntax.SlotPropertyDelegate, true
	case "signature":
		return syntax.SlotSignature, true
	case "other", "":
		return syntax.SlotOther, true
	}
	return 0, false
}

func declNodeKind(k symbols.Kind) syntax.Kind {
	switch k {
	case symbols.KindClass:
		return syntax.NodeClassDecl
	case symbols.KindProperty:
		return syntax.NodePropertyDecl
	case symbols.KindParam:
		return syntax.NodeParamDecl
	default:
		return syntax.NodeFuncDecl
	}
}
