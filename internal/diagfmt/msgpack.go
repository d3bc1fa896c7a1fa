package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"expgate/internal/diag"
	"expgate/internal/source"
)

// Record is the stable machine-readable shape of one diagnostic.
type Record struct {
	Path     string `msgpack:"path"`
	Line     uint32 `msgpack:"line"`
	Col      uint32 `msgpack:"col"`
	Severity string `msgpack:"severity"`
	Code     string `msgpack:"code"`
	Message  string `msgpack:"message"`
}

// Records flattens a bag into positioned records.
func Records(bag *diag.Bag, fs *source.FileSet) []Record {
	out := make([]Record, 0, bag.Len())
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		out = append(out, Record{
			Path:     f.Path,
			Line:     start.Line,
			Col:      start.Col,
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
		})
	}
	return out
}

// EncodeMsgpack writes the bag as one msgpack array of records.
func EncodeMsgpack(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	return msgpack.NewEncoder(w).Encode(Records(bag, fs))
}
