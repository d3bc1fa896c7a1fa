package sema

import (
	"fmt"

	"expgate/internal/diag"
	"expgate/internal/source"
	"expgate/internal/symbols"
	"expgate/internal/syntax"
)

// Checker is the stateless usage gate. One instance serves a whole
// compilation; it only reads resolved state and writes to the reporter.
type Checker struct {
	reporter diag.Reporter
	names    WellKnown
}

// NewChecker builds a Checker reporting into r with the default well-known
// annotation names.
func NewChecker(r diag.Reporter) *Checker {
	return &Checker{reporter: r, names: defaultNames()}
}

// WithNames rebinds the well-known annotation classes. Zero fields keep
// their defaults.
func (c *Checker) WithNames(names WellKnown) *Checker {
	if names.Experimental != "" {
		c.names.Experimental = names.Experimental
	}
	if names.OptIn != "" {
		c.names.OptIn = names.OptIn
	}
	if names.Target != "" {
		c.names.Target = names.Target
	}
	return c
}

// CheckCall gates a resolved call-like reference (function call, constructor
// call, delegation) against the callee's marker policies.
func (c *Checker) CheckCall(use *syntax.Node, callee *symbols.Symbol) {
	c.checkUsage(use, callee)
}

// CheckClassifierRef gates a bare type/classifier reference. Invoked
// separately from call resolution so that naming a marked class is reported
// even when nothing is invoked on it.
func (c *Checker) CheckClassifierRef(use *syntax.Node, class *symbols.Symbol) {
	c.checkUsage(use, class)
}

func (c *Checker) checkUsage(use *syntax.Node, target *symbols.Symbol) {
	if use == nil || target == nil {
		panic(fmt.Errorf("experimental usage check: nil usage or target"))
	}
	if !use.FromSource {
		// Nodes rebuilt from binary metadata would mis-locate diagnostics;
		// being handed one is a defect in the host pipeline.
		panic(fmt.Errorf("experimental usage check on non-source node at %s", use.Span))
	}

	exps := c.policiesFor(target)
	if len(exps) == 0 {
		// Fast path: the overwhelming majority of references.
		return
	}

	// Body classification is memoized and computed only when a policy
	// actually needs it.
	var bodyKnown, body bool
	isBody := func() bool {
		if !bodyKnown {
			body = isBodyUsage(use)
			bodyKnown = true
		}
		return body
	}
	sameModuleBody := target.Module == use.ModuleName() && isBody()

	for _, exp := range exps {
		if c.accepted(use, exp, sameModuleBody, isBody) {
			continue
		}
		c.reportUsage(use.Span, target, violation{
			exp: exp,
			// Relief by opt-in was on the table only for a source-only
			// marker used inside a body; everything else needs propagation.
			requiresOptIn: exp.Scope == ScopeSourceOnly && isBody(),
		})
	}
}

// violation is one rejected marker at one usage site.
type violation struct {
	exp           Experimentality
	requiresOptIn bool
}

func (c *Checker) reportUsage(sp source.Span, target *symbols.Symbol, v violation) {
	code := diag.ExpUsageWarning
	sev := diag.SevWarning
	if v.exp.Severity == SeverityError {
		code = diag.ExpUsageError
		sev = diag.SevError
	}
	if v.requiresOptIn {
		c.report(code, sev, sp,
			"'%s' is experimental: usage requires opt-in to '%s'",
			target.Name, v.exp.Marker)
		return
	}
	c.report(code, sev, sp,
		"'%s' is experimental: marker '%s' must be propagated to the enclosing declaration",
		target.Name, v.exp.Marker)
}

func (c *Checker) report(code diag.Code, sev diag.Severity, sp source.Span, format string, args ...any) {
	if c.reporter == nil {
		return
	}
	c.reporter.Report(code, sev, sp, fmt.Sprintf(format, args...), nil)
}
