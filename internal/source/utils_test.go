package source

import "testing"

func TestToLineColBoundaries(t *testing.T) {
	// "one\ntwo\nthree\n" -> newlines at 3, 7, 13.
	lineIdx := buildLineIndex([]byte("one\ntwo\nthree\n"))
	if len(lineIdx) != 3 || lineIdx[0] != 3 || lineIdx[1] != 7 || lineIdx[2] != 13 {
		t.Fatalf("lineIdx = %v", lineIdx)
	}

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}},
		{3, LineCol{Line: 1, Col: 4}},  // the newline ends line 1
		{4, LineCol{Line: 2, Col: 1}},  // first byte after it starts line 2
		{7, LineCol{Line: 2, Col: 4}},
		{8, LineCol{Line: 3, Col: 1}},
		{13, LineCol{Line: 3, Col: 6}},
		{14, LineCol{Line: 4, Col: 1}}, // past the final newline
	}
	for _, c := range cases {
		if got := toLineCol(lineIdx, c.off); got != c.want {
			t.Fatalf("toLineCol(%d) = %+v, want %+v", c.off, got, c.want)
		}
	}
}

func TestToLineColWithoutNewlines(t *testing.T) {
	if got := toLineCol(nil, 5); got != (LineCol{Line: 1, Col: 6}) {
		t.Fatalf("toLineCol = %+v", got)
	}
}
