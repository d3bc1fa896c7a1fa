package symbols

import (
	"expgate/internal/source"
)

// Annotation is one annotation instance attached to a declaration, resolved
// to its declaring class. Class is nil when resolution failed; such entries
// are inert for the usage gate (the host reports unresolved annotations).
type Annotation struct {
	Class *Symbol
	At    source.Span
	Args  []Arg
}

// Arg is a named annotation argument. Enum literals and class references are
// the only value shapes the gate ever reads; anything else stays opaque to
// this component.
type Arg struct {
	Name    string
	Enums   []string
	Classes []*Symbol
}

// EnumArg returns the single enum literal bound to the named argument.
// Arguments with zero or several literals yield false.
func (a Annotation) EnumArg(name string) (string, bool) {
	for _, arg := range a.Args {
		if arg.Name == name {
			if len(arg.Enums) != 1 {
				return "", false
			}
			return arg.Enums[0], true
		}
	}
	return "", false
}

// EnumArgs returns every enum literal bound to the named argument.
func (a Annotation) EnumArgs(name string) []string {
	for _, arg := range a.Args {
		if arg.Name == name {
			return arg.Enums
		}
	}
	return nil
}

// ClassArgs returns every class reference bound to the named argument.
func (a Annotation) ClassArgs(name string) []*Symbol {
	for _, arg := range a.Args {
		if arg.Name == name {
			return arg.Classes
		}
	}
	return nil
}
