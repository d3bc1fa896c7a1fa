// Package diagfmt renders diagnostic bags for humans (pretty) and for
// tooling (msgpack).
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"expgate/internal/diag"
	"expgate/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

// Pretty formats diagnostics in a human-readable form. Walks bag.Items()
// (call bag.Sort() beforehand). For each diagnostic prints
// <path>:<line>:<col>: <SEV> [<CODE>]: <message>, then the source line with
// a ^~~~ underline over the span, then notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeEntry(w, fs, d.Primary, severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeEntry(w, fs, note.Span, "note", "", note.Msg)
			}
		}
	}
}

func writeEntry(w io.Writer, fs *source.FileSet, sp source.Span, label, codeID, msg string) {
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	if codeID != "" {
		fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n", f.Path, start.Line, start.Col, label, codeID, msg)
	} else {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", f.Path, start.Line, start.Col, label, msg)
	}

	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)
	fmt.Fprintf(w, "  %s\n", underline(line, start.Col, sp.Len()))
}

// underline builds the ^~~~ marker, padding with the display width of the
// line prefix so tabs and wide runes stay aligned.
func underline(line string, col uint32, spanLen uint32) string {
	prefixEnd := int(col) - 1
	if prefixEnd > len(line) {
		prefixEnd = len(line)
	}
	pad := runewidth.StringWidth(line[:prefixEnd])

	markEnd := prefixEnd + int(spanLen)
	if markEnd > len(line) {
		markEnd = len(line)
	}
	width := runewidth.StringWidth(line[prefixEnd:markEnd])
	if width < 1 {
		width = 1
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString("^")
	b.WriteString(strings.Repeat("~", width-1))
	return b.String()
}

func severityLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(sev.String())
	case diag.SevWarning:
		return warningColor.Sprint(sev.String())
	default:
		return infoColor.Sprint(sev.String())
	}
}
