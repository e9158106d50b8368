package encode

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/gedcom-xml/ir"
)

// yamlNode is the shape of a node in the YAML dump of a forest.
type yamlNode struct {
	Level    int         `yaml:"level"`
	Kind     string      `yaml:"kind"`
	Tag      string      `yaml:"tag,omitempty"`
	ID       string      `yaml:"id,omitempty"`
	Data     *string     `yaml:"data,omitempty"`
	Line     int         `yaml:"line,omitempty"`
	Children []*yamlNode `yaml:"children,omitempty"`
}

func toYAMLNode(n *ir.Node) *yamlNode {
	res := &yamlNode{
		Level: n.Level,
		Kind:  n.Kind().String(),
		Data:  n.Data,
		Line:  n.Line,
	}
	switch n.Kind() {
	case ir.IdentifierKind:
		res.ID = n.TagOrID
	default:
		res.Tag = n.TagOrID
	}
	for _, c := range n.Children {
		res.Children = append(res.Children, toYAMLNode(c))
	}
	return res
}

func encodeYAML(forest []*ir.Node, w io.Writer) error {
	nodes := make([]*yamlNode, len(forest))
	for i, n := range forest {
		nodes[i] = toYAMLNode(n)
	}
	d, err := yaml.Marshal(nodes)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
