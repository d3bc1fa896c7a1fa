// Package symbols is the read-only view over resolved declarations that the
// host resolution engine hands to the usage gate. Nothing here is mutated by
// the checker.
package symbols

// Kind classifies a referenceable declaration.
type Kind uint8

const (
	KindClass Kind = iota
	KindConstructor
	KindFunc
	KindProperty
	KindTypeAlias
	KindParam
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindConstructor:
		return "constructor"
	case KindFunc:
		return "func"
	case KindProperty:
		return "property"
	case KindTypeAlias:
		return "typealias"
	case KindParam:
		return "param"
	}
	return "unknown"
}

// Symbol is a resolved declaration: its annotations, its containing
// declaration (nil at top level), the module that owns it, and whether it is
// local (never visible outside its defining scope).
type Symbol struct {
	Name        string // fully qualified
	Kind        Kind
	Module      string
	Local       bool
	Container   *Symbol
	Annotations []Annotation
}

// HasAnnotation reports whether the symbol carries an annotation whose
// resolved class has the given qualified name.
func (s *Symbol) HasAnnotation(class string) bool {
	_, ok := s.FindAnnotation(class)
	return ok
}

// FindAnnotation returns the first annotation resolved to the given class.
func (s *Symbol) FindAnnotation(class string) (Annotation, bool) {
	if s == nil {
		return Annotation{}, false
	}
	for _, ann := range s.Annotations {
		if ann.Class != nil && ann.Class.Name == class {
			return ann, true
		}
	}
	return Annotation{}, false
}
