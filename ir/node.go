package ir

import "strings"

// Node is a single GEDCOM record and the records nested beneath it.
//
// Nodes carry no parent link; parents are only tracked while a forest is
// being built.
type Node struct {
	Level    int
	TagOrID  string
	Data     *string
	Children []*Node

	// Line is the 1-based input line the record came from, or 0.
	Line int
}

func NewNode(level int, tagOrID string, data *string) *Node {
	return &Node{Level: level, TagOrID: tagOrID, Data: data}
}

// Str returns a pointer to a copy of s, for use as Node.Data.
func Str(s string) *string {
	return &s
}

func (n *Node) Kind() Kind {
	return KindOf(n.TagOrID)
}

func (n *Node) HasData() bool {
	return n.Data != nil
}

// DataString returns the data payload, or "" when absent. It may be
// called on a nil node.
func (n *Node) DataString() string {
	if n == nil || n.Data == nil {
		return ""
	}
	return *n.Data
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// ElementName is the lowercased name a node's element takes when rendered:
// the tag for tag nodes and the data for identifier nodes. ok is false for
// an identifier node without data, which renders no element of its own.
func (n *Node) ElementName() (name string, ok bool) {
	switch n.Kind() {
	case IdentifierKind:
		if n.Data == nil {
			return "", false
		}
		return strings.ToLower(*n.Data), true
	default:
		return strings.ToLower(n.TagOrID), true
	}
}

func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Child returns the first child with the given tag or identifier, or nil.
func (n *Node) Child(tagOrID string) *Node {
	for _, c := range n.Children {
		if c.TagOrID == tagOrID {
			return c
		}
	}
	return nil
}
