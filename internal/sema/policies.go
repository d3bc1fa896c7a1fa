package sema

import (
	"expgate/internal/symbols"
)

// WellKnown holds the qualified names of the annotation classes the gate
// understands. Hosts with a different standard library rebind them.
type WellKnown struct {
	// Experimental declares a marker: Experimental(severity, scope).
	Experimental string
	// OptIn waives marker obligations for the annotated scope:
	// OptIn(markers = [...]).
	OptIn string
	// Target restricts the syntactic categories an annotation may target:
	// Target(targets = [...]).
	Target string
}

const (
	DefaultExperimentalClass = "expgate.annotation.Experimental"
	DefaultOptInClass        = "expgate.annotation.OptIn"
	DefaultTargetClass       = "expgate.annotation.Target"
)

// Argument names on the well-known annotation classes.
const (
	argSeverity = "severity"
	argScope    = "scope"
	argMarkers  = "markers"
	argTargets  = "targets"
)

// Target enum literals a marker declaration may never allow.
const (
	targetExpression = "EXPRESSION"
	targetFile       = "FILE"
)

func defaultNames() WellKnown {
	return WellKnown{
		Experimental: DefaultExperimentalClass,
		OptIn:        DefaultOptInClass,
		Target:       DefaultTargetClass,
	}
}

// experimentalityOf derives the policy declared by a marker class. The class
// must carry the marker-declaring annotation with recognized severity and
// scope literals; anything else yields no policy. Malformed declarations are
// inert here and reported by the declaration validator instead.
func (c *Checker) experimentalityOf(class *symbols.Symbol) (Experimentality, bool) {
	if class == nil {
		return Experimentality{}, false
	}
	ann, ok := class.FindAnnotation(c.names.Experimental)
	if !ok {
		return Experimentality{}, false
	}
	sevLit, ok := ann.EnumArg(argSeverity)
	if !ok {
		return Experimentality{}, false
	}
	sev, ok := severityFromLiteral(sevLit)
	if !ok {
		return Experimentality{}, false
	}
	scopeLit, ok := ann.EnumArg(argScope)
	if !ok {
		return Experimentality{}, false
	}
	scope, ok := scopeFromLiteral(scopeLit)
	if !ok {
		return Experimentality{}, false
	}
	return Experimentality{
		Marker:   Marker(class.Name),
		Severity: sev,
		Scope:    scope,
	}, true
}

// policiesFor returns the distinct marker policies applying to a symbol:
// policies derived from the symbol's own annotations, plus the immediate
// containing class's when the symbol is not a constructor. Constructors are
// checked against their own markers only, so construction is not gated twice
// through the class.
func (c *Checker) policiesFor(sym *symbols.Symbol) []Experimentality {
	if sym == nil {
		return nil
	}
	var out []Experimentality
	out = c.appendPolicies(out, sym.Annotations)
	if sym.Kind != symbols.KindConstructor {
		if container := sym.Container; container != nil && container.Kind == symbols.KindClass {
			out = c.appendPolicies(out, container.Annotations)
		}
	}
	return out
}

func (c *Checker) appendPolicies(dst []Experimentality, anns []symbols.Annotation) []Experimentality {
	for _, ann := range anns {
		exp, ok := c.experimentalityOf(ann.Class)
		if !ok {
			continue
		}
		if containsMarker(dst, exp.Marker) {
			continue
		}
		dst = append(dst, exp)
	}
	return dst
}

func containsMarker(exps []Experimentality, m Marker) bool {
	for _, e := range exps {
		if e.Marker == m {
			return true
		}
	}
	return false
}
