package fixture

import (
	"strings"
	"testing"

	"expgate/internal/diag"
	"expgate/internal/sema"
	"expgate/internal/source"
	"expgate/internal/symbols"
)

const sampleManifest = `
module = "app"
source = "fun render() { shiny() }"

[[symbols]]
name = "lib.Shiny"
kind = "class"
module = "lib"

  [[symbols.annotations]]
  class = "expgate.annotation.Experimental"
  severity = "WARNING"
  scope = "SOURCE_ONLY"

[[symbols]]
name = "lib.shiny"
kind = "func"
module = "lib"

  [[symbols.annotations]]
  class = "lib.Shiny"

[[symbols]]
name = "app.render"
kind = "func"
module = "app"

[[usages]]
target = "lib.shiny"
span = [14, 21]
slot = "other"
context = [
  { kind = "func", symbol = "app.render", slot = "other" },
  { kind = "expr", slot = "body" },
]
`

func TestParseSampleManifest(t *testing.T) {
	fs := source.NewFileSet()
	comp, err := Parse("sample.toml", []byte(sampleManifest), fs)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if comp.Module != "app" {
		t.Fatalf("module = %q", comp.Module)
	}
	if len(comp.Usages) != 1 {
		t.Fatalf("usages = %d, want 1", len(comp.Usages))
	}
	if len(comp.Decls) != 1 {
		t.Fatalf("decls = %d, want only app-owned declarations", len(comp.Decls))
	}

	u := comp.Usages[0]
	if u.Target.Name != "lib.shiny" {
		t.Fatalf("target = %q", u.Target.Name)
	}
	if u.Site.ModuleName() != "app" {
		t.Fatalf("usage module = %q", u.Site.ModuleName())
	}
	if u.Site.Span.Start != 14 || u.Site.Span.End != 21 {
		t.Fatalf("usage span = %v", u.Site.Span)
	}
}

func TestSampleManifestTripsTheGate(t *testing.T) {
	fs := source.NewFileSet()
	comp, err := Parse("sample.toml", []byte(sampleManifest), fs)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	bag := diag.NewBag(8)
	sema.Check(comp.Usages, comp.Decls, sema.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %v, want one warning", bag.Items())
	}
	d := bag.Items()[0]
	if d.Code != diag.ExpUsageWarning {
		t.Fatalf("code = %v", d.Code)
	}
	if !strings.Contains(d.Message, "requires opt-in") {
		t.Fatalf("message = %q", d.Message)
	}
}

func TestUsageSiteOptInSuppresses(t *testing.T) {
	manifest := sampleManifest + "\n" + `
[[usages]]
target = "lib.shiny"
span = [14, 21]
slot = "body"
optin = ["lib.Shiny"]
context = [ { kind = "func", symbol = "app.render", slot = "other" } ]
`
	fs := source.NewFileSet()
	comp, err := Parse("sample.toml", []byte(manifest), fs)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bag := diag.NewBag(8)
	sema.Check(comp.Usages[1:], comp.Decls, sema.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.Len() != 0 {
		t.Fatalf("diagnostics = %v, want none for opted-in usage", bag.Items())
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name     string
		manifest string
		want     string
	}{
		{"missing module", `source = ""`, "missing module"},
		{"unknown symbol kind", `
module = "app"
[[symbols]]
name = "x"
kind = "mystery"
module = "app"
`, "unknown kind"},
		{"unresolved usage target", `
module = "app"
[[usages]]
target = "ghost"
slot = "body"
`, "unknown symbol"},
		{"unknown slot", `
module = "app"
[[symbols]]
name = "app.f"
kind = "func"
module = "app"
[[usages]]
target = "app.f"
slot = "torso"
`, "unknown slot"},
		{"duplicate symbol", `
module = "app"
[[symbols]]
name = "app.f"
kind = "func"
module = "app"
[[symbols]]
name = "app.f"
kind = "func"
module = "app"
`, "declared twice"},
	}

	for _, tc := range cases {
		fs := source.NewFileSet()
		_, err := Parse("bad.toml", []byte(tc.manifest), fs)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestWellKnownClassesMaterialized(t *testing.T) {
	fs := source.NewFileSet()
	comp, err := Parse("sample.toml", []byte(sampleManifest), fs)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	marker := comp.Usages[0].Target.Annotations[0].Class
	if marker == nil || marker.Name != "lib.Shiny" {
		t.Fatalf("marker class = %v", marker)
	}
	expAnn, ok := marker.FindAnnotation(sema.DefaultExperimentalClass)
	if !ok {
		t.Fatalf("marker must carry the synthesized Experimental class")
	}
	if expAnn.Class.Kind != symbols.KindClass {
		t.Fatalf("well-known class kind = %v", expAnn.Class.Kind)
	}
}
