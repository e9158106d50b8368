package token

import (
	"fmt"
	"strconv"

	"github.com/signadot/gedcom-xml/ir"
)

var (
	ErrBadLevel = fmt.Errorf("%w: bad level", ir.ErrMalformedRecord)
	ErrNoTag    = fmt.Errorf("%w: missing tag or identifier", ir.ErrMalformedRecord)
	ErrEmptyDoc = fmt.Errorf("%w: empty document", ir.ErrMalformedRecord)
)

// RecordErr locates an error on an input line.
type RecordErr struct {
	Err      error
	Filename string
	Line     int
	Text     string
}

func NewRecordErr(e error, line int, text string) *RecordErr {
	return &RecordErr{Err: e, Line: line, Text: text}
}

func (e *RecordErr) Unwrap() error {
	return e.Err
}

func (e *RecordErr) Error() string {
	return fmt.Sprintf("%s at %s: %q", e.Err.Error(), e.Pos(), e.Text)
}

// Pos renders the location as file:line, or "line N" without a file name.
func (e *RecordErr) Pos() string {
	if e.Filename == "" {
		return "line " + strconv.Itoa(e.Line)
	}
	return e.Filename + ":" + strconv.Itoa(e.Line)
}
