// Package sema implements the experimental-API usage gate: per-reference
// acceptance of experimentally-marked declarations and validation of the
// marker/opt-in annotations themselves.
package sema

// Marker identifies a marker annotation class by its fully qualified name.
type Marker string

// Severity of an unaccepted usage of a marked declaration.
type Severity uint8

const (
	// SeverityWarning is advisory; compilation still succeeds.
	SeverityWarning Severity = iota
	// SeverityError blocks a successful compilation.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Scope of a marker decides which relief a usage may claim.
type Scope uint8

const (
	// ScopeSourceOnly markers can be waived by an opt-in annotation that
	// exists only in source.
	ScopeSourceOnly Scope = iota
	// ScopeBinary markers are satisfied only by propagation or same-module
	// locality, never by a body-local opt-in.
	ScopeBinary
)

func (s Scope) String() string {
	switch s {
	case ScopeSourceOnly:
		return "SOURCE_ONLY"
	case ScopeBinary:
		return "BINARY"
	}
	return "UNKNOWN"
}

// Experimentality is the policy one marker imposes. Compared by value;
// policy sets are unique by Marker.
type Experimentality struct {
	Marker   Marker
	Severity Severity
	Scope    Scope
}

// severityFromLiteral maps a severity enum literal from the marker
// declaration. Unrecognized literals make the whole policy ill-formed.
func severityFromLiteral(lit string) (Severity, bool) {
	switch lit {
	case "WARNING":
		return SeverityWarning, true
	case "ERROR":
		return SeverityError, true
	}
	return 0, false
}

func scopeFromLiteral(lit string) (Scope, bool) {
	switch lit {
	case "SOURCE_ONLY":
		return ScopeSourceOnly, true
	case "BINARY":
		return ScopeBinary, true
	}
	return 0, false
}
