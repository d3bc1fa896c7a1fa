// Package syntax models the slice of the host AST the usage gate walks: a
// parent-linked tree of nodes tagged with the slot each node occupies in its
// parent. The closed Slot set replaces dynamic probing of concrete node
// types; a walk only ever asks "which slot am I in".
package syntax

import (
	"expgate/internal/source"
	"expgate/internal/symbols"
)

// Kind classifies a node.
type Kind uint8

const (
	NodeFile Kind = iota
	NodeClassDecl
	NodeFuncDecl
	NodePropertyDecl
	NodeParamDecl
	NodeInitBlock
	NodeCall
	NodeRef
	NodeExpr
)

func (k Kind) String() string {
	switch k {
	case NodeFile:
		return "file"
	case NodeClassDecl:
		return "class"
	case NodeFuncDecl:
		return "func"
	case NodePropertyDecl:
		return "property"
	case NodeParamDecl:
		return "param"
	case NodeInitBlock:
		return "init"
	case NodeCall:
		return "call"
	case NodeRef:
		return "ref"
	case NodeExpr:
		return "expr"
	}
	return "unknown"
}

// Slot names the child position a node occupies in its parent.
type Slot uint8

const (
	SlotNone Slot = iota
	// SlotFuncBody is a function body.
	SlotFuncBody
	// SlotGetterBody and SlotSetterBody are property accessor bodies.
	SlotGetterBody
	SlotSetterBody
	// SlotPropertyInit is a property initializer expression.
	SlotPropertyInit
	// SlotParamDefault is a parameter default value.
	SlotParamDefault
	// SlotInitBlock is the body of a class initializer block.
	SlotInitBlock
	// SlotSuperCallArgs is the argument list of a superclass constructor call.
	SlotSuperCallArgs
	// SlotSuperDelegate is a superclass delegation expression.
	SlotSuperDelegate
	// SlotPropertyDelegate is a property delegate expression.
	SlotPropertyDelegate
	// SlotSignature covers positions that surface in a declaration signature
	// (return type, parameter type, supertype list entry, ...).
	SlotSignature
	// SlotOther is any remaining structural position.
	SlotOther
)

func (s Slot) String() string {
	switch s {
	case SlotNone:
		return "none"
	case SlotFuncBody:
		return "body"
	case SlotGetterBody:
		return "getter-body"
	case SlotSetterBody:
		return "setter-body"
	case SlotPropertyInit:
		return "initializer"
	case SlotParamDefault:
		return "default"
	case SlotInitBlock:
		return "init-block"
	case SlotSuperCallArgs:
		return "super-call-args"
	case SlotSuperDelegate:
		return "super-delegate"
	case SlotPropertyDelegate:
		return "property-delegate"
	case SlotSignature:
		return "signature"
	case SlotOther:
		return "other"
	}
	return "unknown"
}

// Node is one element of the parent-linked tree. Sym is non-nil on
// declaration nodes; Anns are the annotation entries attached at this node
// (for declaration nodes they mirror Sym.Annotations). FromSource is false
// for nodes rebuilt from compiled binary metadata; the checker refuses those.
type Node struct {
	Kind       Kind
	Slot       Slot
	Parent     *Node
	Span       source.Span
	Sym        *symbols.Symbol
	Anns       []symbols.Annotation
	Module     string // set on the file root only
	FromSource bool
}

// NewFile creates a file-root node owned by the given module.
func NewFile(module string, span source.Span) *Node {
	return &Node{
		Kind:       NodeFile,
		Slot:       SlotNone,
		Span:       span,
		Module:     module,
		FromSource: true,
	}
}

// NewChild creates a node under parent occupying the given slot. The child
// inherits the parent's source-origin flag.
func (n *Node) NewChild(kind Kind, slot Slot, span source.Span) *Node {
	return &Node{
		Kind:       kind,
		Slot:       slot,
		Parent:     n,
		Span:       span,
		FromSource: n.FromSource,
	}
}

// Root walks parent links up to the file root.
func (n *Node) Root() *Node {
	cur := n
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

// ModuleName returns the module owning the file this node belongs to.
func (n *Node) ModuleName() string {
	return n.Root().Module
}

// Decl returns the symbol declared by this node, nil for non-declarations.
func (n *Node) Decl() *symbols.Symbol {
	if n == nil {
		return nil
	}
	return n.Sym
}
