// Package gedxml converts GEDCOM documents to XML.
//
// The conversion is the composition of [parse.Parse], which rebuilds the
// record tree from level numbered lines, and [encode.Encode], which renders
// it:
//
//	err := gedxml.Convert(in, out)
//
//	doc, err := gedxml.ConvertLines([]string{
//	    "0 @I1@ INDI",
//	    "1 NAME John /Doe/",
//	})
//
// Nothing is written when the input is malformed.
package gedxml

import (
	"io"

	"github.com/signadot/gedcom-xml/encode"
	"github.com/signadot/gedcom-xml/ir"
	"github.com/signadot/gedcom-xml/parse"
	"github.com/signadot/gedcom-xml/query"
)

type ConvertConfig struct {
	Parse  []parse.ParseOption
	Encode []encode.EncodeOption
	Filter *query.Filter
}

type ConvertOpt func(*ConvertConfig)

func ConvertParse(opts ...parse.ParseOption) ConvertOpt {
	return func(c *ConvertConfig) { c.Parse = append(c.Parse, opts...) }
}
func ConvertEncode(opts ...encode.EncodeOption) ConvertOpt {
	return func(c *ConvertConfig) { c.Encode = append(c.Encode, opts...) }
}

// ConvertFilter keeps only the level 0 records matching f.
func ConvertFilter(f *query.Filter) ConvertOpt {
	return func(c *ConvertConfig) { c.Filter = f }
}

// Convert reads GEDCOM from r and writes the converted document to w.
// Errors name lines of r.
func Convert(r io.Reader, w io.Writer, opts ...ConvertOpt) error {
	cfg := newConvertConfig(opts)
	forest, err := parse.ParseReader(r, cfg.Parse...)
	if err != nil {
		return err
	}
	doc, err := cfg.render(forest)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, doc)
	return err
}

// ConvertLines converts trimmed, non-empty GEDCOM lines.
func ConvertLines(lines []string, opts ...ConvertOpt) (string, error) {
	cfg := newConvertConfig(opts)
	forest, err := parse.Parse(lines, cfg.Parse...)
	if err != nil {
		return "", err
	}
	return cfg.render(forest)
}

func newConvertConfig(opts []ConvertOpt) *ConvertConfig {
	cfg := &ConvertConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *ConvertConfig) render(forest []*ir.Node) (string, error) {
	forest, err := c.filter(forest)
	if err != nil {
		return "", err
	}
	return encode.EncodeString(forest, c.Encode...)
}

func (c *ConvertConfig) filter(forest []*ir.Node) ([]*ir.Node, error) {
	if c.Filter == nil {
		return forest, nil
	}
	return c.Filter.Select(forest)
}
