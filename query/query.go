package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/gedcom-xml/debug"
	"github.com/signadot/gedcom-xml/ir"
)

var ErrFilter = errors.New("filter error")

// Env is what a filter expression sees of a record.
type Env struct {
	Tag      string `expr:"tag"`
	ID       string `expr:"id"`
	Kind     string `expr:"kind"`
	Data     string `expr:"data"`
	HasData  bool   `expr:"hasData"`
	Level    int    `expr:"level"`
	Line     int    `expr:"line"`
	Children int    `expr:"children"`

	// Child returns the data of the first child with the given tag.
	Child func(string) string `expr:"child"`
	// Has reports whether a child with the given tag exists.
	Has func(string) bool `expr:"has"`
}

func NewEnv(n *ir.Node) Env {
	env := Env{
		Kind:     n.Kind().String(),
		Data:     n.DataString(),
		HasData:  n.HasData(),
		Level:    n.Level,
		Line:     n.Line,
		Children: len(n.Children),
		Child: func(tag string) string {
			return n.Child(tag).DataString()
		},
		Has: func(tag string) bool {
			return n.Child(tag) != nil
		},
	}
	switch n.Kind() {
	case ir.IdentifierKind:
		env.ID = n.TagOrID
	default:
		env.Tag = n.TagOrID
	}
	return env
}

// Filter is a compiled boolean expression over records, such as
//
//	kind == "Identifier" && data == "INDI" && child("SEX") == "F"
type Filter struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrFilter, src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

func (f *Filter) Match(n *ir.Node) (bool, error) {
	res, err := expr.Run(f.prg, NewEnv(n))
	if err != nil {
		return false, fmt.Errorf("%w: evaluating %q at line %d: %w", ErrFilter, f.src, n.Line, err)
	}
	ok, _ := res.(bool)
	if debug.Filter() {
		debug.Logf("filter %q on %v: %t\n", f.src, n, ok)
	}
	return ok, nil
}

// Select returns the roots of forest that match, in order.
func (f *Filter) Select(forest []*ir.Node) ([]*ir.Node, error) {
	var res []*ir.Node
	for _, n := range forest {
		ok, err := f.Match(n)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, n)
		}
	}
	return res, nil
}
