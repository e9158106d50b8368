package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/gedcom-xml/debug"
	"github.com/signadot/gedcom-xml/format"
	"github.com/signadot/gedcom-xml/ir"
)

const (
	xmlHeader   = `<?xml version="1.0" encoding="UTF-8"?>`
	rootElement = "gedcom"
)

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ColorAttr, string) string
}

type attr struct {
	name, value string
}

// Encode writes forest to w as a complete document.
func Encode(forest []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.XMLFormat:
		return encodeXML(forest, w, es)
	case format.YAMLFormat:
		return encodeYAML(forest, w)
	default:
		return fmt.Errorf("%w: unknown format %d", ir.ErrEncoding, es.format)
	}
}

// EncodeString returns the encoding of forest.
func EncodeString(forest []*ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(forest, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encodeXML(forest []*ir.Node, w io.Writer, es *EncState) error {
	if err := writeLine(w, es, es.c(DeclColor, xmlHeader)); err != nil {
		return err
	}
	if err := writeLine(w, es, es.open(rootElement)); err != nil {
		return err
	}
	es.depth++
	for _, n := range forest {
		if err := encodeNode(n, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeLine(w, es, es.close(rootElement))
}

func encodeNode(n *ir.Node, w io.Writer, es *EncState) error {
	switch n.Kind() {
	case ir.IdentifierKind:
		return encodeIdentifier(n, w, es)
	default:
		return encodeTag(n, w, es)
	}
}

func encodeChildren(n *ir.Node, w io.Writer, es *EncState) error {
	for _, c := range n.Children {
		if err := encodeNode(c, w, es); err != nil {
			return err
		}
	}
	return nil
}

// encodeIdentifier renders a cross reference record as an element named by
// its type with the identifier as id attribute. Without a type only the
// children are rendered.
func encodeIdentifier(n *ir.Node, w io.Writer, es *EncState) error {
	name, ok := n.ElementName()
	if !ok {
		if debug.Encode() {
			debug.Logf("no element for untyped identifier %v\n", n)
		}
		return encodeChildren(n, w, es)
	}
	name = Escape(name)
	if err := writeLine(w, es, es.open(name, attr{"id", n.TagOrID})); err != nil {
		return err
	}
	es.depth++
	if err := encodeChildren(n, w, es); err != nil {
		return err
	}
	es.depth--
	return writeLine(w, es, es.close(name))
}

func encodeTag(n *ir.Node, w io.Writer, es *EncState) error {
	name, _ := n.ElementName()
	switch {
	case !n.IsLeaf():
		var attrs []attr
		if n.Data != nil {
			attrs = append(attrs, attr{"value", Escape(*n.Data)})
		}
		if err := writeLine(w, es, es.open(name, attrs...)); err != nil {
			return err
		}
		es.depth++
		if err := encodeChildren(n, w, es); err != nil {
			return err
		}
		es.depth--
		return writeLine(w, es, es.close(name))
	case n.Data != nil:
		return writeLine(w, es, es.open(name)+es.c(TextColor, Escape(*n.Data))+es.close(name))
	default:
		return writeLine(w, es, es.empty(name))
	}
}

func (es *EncState) c(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func (es *EncState) open(name string, attrs ...attr) string {
	b := &strings.Builder{}
	b.WriteString(es.c(SepColor, "<"))
	b.WriteString(es.c(ElementColor, name))
	es.writeAttrs(b, attrs)
	b.WriteString(es.c(SepColor, ">"))
	return b.String()
}

func (es *EncState) close(name string) string {
	return es.c(SepColor, "</") + es.c(ElementColor, name) + es.c(SepColor, ">")
}

func (es *EncState) empty(name string) string {
	return es.c(SepColor, "<") + es.c(ElementColor, name) + es.c(SepColor, "/>")
}

func (es *EncState) writeAttrs(b *strings.Builder, attrs []attr) {
	for _, a := range attrs {
		b.WriteString(" ")
		b.WriteString(es.c(AttrColor, a.name))
		b.WriteString(es.c(SepColor, "="))
		b.WriteString(es.c(ValueColor, `"`+a.value+`"`))
	}
}

func writeLine(w io.Writer, es *EncState, s string) error {
	if es.indent > 0 && es.depth > 0 {
		s = strings.Repeat(" ", es.indent*es.depth) + s
	}
	return writeString(w, s+"\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
