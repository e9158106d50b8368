// Package encode renders a forest of GEDCOM records as an XML document.
//
// # Usage
//
//	forest, err := parse.Parse(lines)
//	if err != nil {
//	    return err
//	}
//	err = encode.Encode(forest, w)
//
//	// Indented, colorized for a terminal
//	err = encode.Encode(forest, os.Stdout, encode.EncodeIndent(2),
//	    encode.EncodeColors(encode.NewColors()))
//
//	// YAML dump of the tree, for inspecting how levels were resolved
//	out, err := encode.EncodeString(forest, encode.EncodeFormat(format.YAMLFormat))
//
// # Elements
//
// Records whose tag is a cross reference identifier such as @I1@ become an
// element named by the lowercased record type with the identifier in an id
// attribute:
//
//	0 @I1@ INDI  ->  <indi id="@I1@"> ... </indi>
//
// An identifier record without a type contributes its children only.
//
// Other records become an element named by the lowercased tag. With
// children, the data goes in a value attribute; without children it is the
// element's text, and a record with neither is an empty element:
//
//	1 BIRT          ->  <birt/>
//	1 NAME John     ->  <name>John</name>
//	1 NOTE x        ->  <note value="x">
//	2 CONT y              <cont>y</cont>
//	                    </note>
//
// Data is escaped with [Escape]. Tags and identifiers are written as is.
//
// # Related Packages
//
//   - github.com/signadot/gedcom-xml/ir - the node tree
//   - github.com/signadot/gedcom-xml/parse - build a forest from lines
package encode
