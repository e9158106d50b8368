package token

import (
	"bufio"
	"bytes"
	"io"
)

const maxLineSize = 1 << 20

var bom = []byte{0xEF, 0xBB, 0xBF}

// Line is a non-empty input line with its 1-based position in the source.
type Line struct {
	Text string
	N    int
}

// ReadLines returns the trimmed, non-empty lines of r in order.
func ReadLines(r io.Reader) ([]string, error) {
	lns, err := ReadNumbered(r)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(lns))
	for i := range lns {
		res[i] = lns[i].Text
	}
	return res, nil
}

// ReadNumbered is like ReadLines but keeps the source line numbers, which
// differ from slice indices once blank lines are dropped.
func ReadNumbered(r io.Reader) ([]Line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var res []Line
	n := 0
	for sc.Scan() {
		n++
		d := sc.Bytes()
		if n == 1 {
			d = bytes.TrimPrefix(d, bom)
		}
		ln := Trim(string(d))
		if ln == "" {
			continue
		}
		res = append(res, Line{Text: ln, N: n})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
