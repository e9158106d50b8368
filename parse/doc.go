// Package parse builds a forest of [ir.Node] from GEDCOM record lines.
//
// # Usage
//
//	forest, err := parse.Parse([]string{
//	    "0 @I1@ INDI",
//	    "1 NAME John /Doe/",
//	})
//
//	// From a reader, with line numbers of the source in errors
//	forest, err := parse.ParseReader(f, parse.ParseFilename("family.ged"))
//
//	// Reject records that skip levels or identifiers without a type
//	forest, err := parse.Parse(lines, parse.ParseStrict(true))
//
// Every error wraps [ir.ErrMalformedRecord]; no partial forest is returned.
//
// # Levels
//
// Records are attached in a single pass. A deeper level makes the record a
// child of the one before it, an equal level makes it a sibling, and a
// shallower level walks back up the chain of enclosing records to the
// nearest one with a smaller level. The chain lives only while parsing;
// the resulting nodes hold children but no parent links.
//
// # Related Packages
//
//   - github.com/signadot/gedcom-xml/ir - the node tree
//   - github.com/signadot/gedcom-xml/token - line reading and tokenizing
//   - github.com/signadot/gedcom-xml/encode - render a forest
package parse
