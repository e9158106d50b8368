package parse

import (
	"fmt"
	"io"

	"github.com/signadot/gedcom-xml/debug"
	"github.com/signadot/gedcom-xml/ir"
	"github.com/signadot/gedcom-xml/token"
)

// Parse builds the forest described by lines, each a trimmed non-empty
// record line. Line numbers in errors are 1-based indices into lines.
func Parse(lines []string, opts ...ParseOption) ([]*ir.Node, error) {
	lns := make([]token.Line, len(lines))
	for i, ln := range lines {
		lns[i] = token.Line{Text: ln, N: i + 1}
	}
	return parseLines(lns, opts...)
}

// ParseReader reads the non-empty lines of r and parses them. Line numbers
// in errors refer to lines of r.
func ParseReader(r io.Reader, opts ...ParseOption) ([]*ir.Node, error) {
	lns, err := token.ReadNumbered(r)
	if err != nil {
		return nil, err
	}
	return parseLines(lns, opts...)
}

func parseLines(lns []token.Line, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if len(lns) == 0 {
		if pOpts.filename != "" {
			return nil, fmt.Errorf("%s: %w", pOpts.filename, token.ErrEmptyDoc)
		}
		return nil, token.ErrEmptyDoc
	}
	b := &builder{opts: pOpts}
	for i := range lns {
		ln := &lns[i]
		rec, err := token.Tokenize(ln.Text, ln.N)
		if err != nil {
			return nil, withFile(err, pOpts)
		}
		if err := b.add(&rec); err != nil {
			return nil, withFile(token.NewRecordErr(err, ln.N, ln.Text), pOpts)
		}
	}
	return b.forest, nil
}

func withFile(err error, opts *parseOpts) error {
	if re, ok := err.(*token.RecordErr); ok && opts.filename != "" {
		re.Filename = opts.filename
	}
	return err
}

// cursor is a node under construction together with the chain of records
// enclosing it.
type cursor struct {
	node   *ir.Node
	parent *cursor
}

type builder struct {
	opts   *parseOpts
	forest []*ir.Node
	cur    *cursor
	prev   int
}

func (b *builder) add(rec *token.Record) error {
	level := rec.Level
	if b.cur != nil && level < b.prev {
		for b.cur.parent != nil && b.cur.node.Level >= level {
			b.cur = b.cur.parent
		}
		b.prev = b.cur.node.Level
	}
	node := &ir.Node{
		Level:   level,
		TagOrID: rec.TagOrID,
		Data:    rec.Data,
		Line:    rec.Line,
	}
	if b.opts.strict && node.Kind() == ir.IdentifierKind && node.Data == nil {
		return ErrUntypedIdentifier
	}
	switch {
	case level == 0:
		if debug.Parse() {
			debug.Logf("root %v\n", node)
		}
		b.forest = append(b.forest, node)
		b.cur = &cursor{node: node}
		b.prev = 0
	case b.cur == nil:
		return ErrNoRoot
	case level > b.prev:
		if b.opts.strict && level > b.prev+1 {
			return ErrLevelJump
		}
		if debug.Parse() {
			debug.Logf("child %v of %v\n", node, b.cur.node)
		}
		b.cur.node.Children = append(b.cur.node.Children, node)
		b.cur = &cursor{node: node, parent: b.cur}
		b.prev = level
	case level == b.prev:
		p := b.cur.parent
		if p == nil {
			return ErrNoParent
		}
		if debug.Parse() {
			debug.Logf("sibling %v of %v\n", node, b.cur.node)
		}
		p.node.Children = append(p.node.Children, node)
		b.cur = &cursor{node: node, parent: p}
	default:
		return ErrNoParent
	}
	return nil
}
