package encode

import "github.com/signadot/gedcom-xml/ir"

func MustString(forest []*ir.Node, opts ...EncodeOption) string {
	s, err := EncodeString(forest, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
