package ir

import "fmt"

// Kind classifies a node for rendering. There are exactly two kinds.
type Kind int

const (
	TagKind Kind = iota
	IdentifierKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		TagKind:        "Tag",
		IdentifierKind: "Identifier",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Tag":        TagKind,
		"Identifier": IdentifierKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// KindOf classifies a tag or identifier token: identifiers are wrapped
// in '@' on both ends.
func KindOf(tagOrID string) Kind {
	if IsIdentifier(tagOrID) {
		return IdentifierKind
	}
	return TagKind
}

func IsIdentifier(tagOrID string) bool {
	n := len(tagOrID)
	return n >= 2 && tagOrID[0] == '@' && tagOrID[n-1] == '@'
}
