package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/gedcom-xml/ir"
)

var out io.Writer = os.Stderr

// SetOutput redirects debug logging, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// Logf writes a debug message. *ir.Node arguments are shown as their
// record line.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = Record(x)
		}
	}
	fmt.Fprintf(out, msg, args...)
}

func Record(n *ir.Node) string {
	if n == nil {
		return "<nil>"
	}
	s := fmt.Sprintf("%d %s", n.Level, n.TagOrID)
	if n.Data != nil {
		s += " " + *n.Data
	}
	if n.Line != 0 {
		s += fmt.Sprintf(" (line %d)", n.Line)
	}
	return s
}
