// Package ir provides the in-memory tree for GEDCOM documents.
//
// # Overview
//
// A GEDCOM document is a flat list of lines, each carrying a level, a tag
// or cross reference identifier and an optional payload:
//
//	0 @I1@ INDI
//	1 NAME John /Doe/
//	1 BIRT
//	2 DATE 1 JAN 1900
//
// The levels describe a tree, and this package represents it as a forest of
// [Node] values, one per level 0 record. Children are held in order by
// their parent. Nodes do not point back at their parents.
//
// # Node Kinds
//
// A node is either
//
//   - TagKind: a plain tag such as NAME or BIRT
//   - IdentifierKind: a cross reference identifier wrapped in '@', such as @I1@
//
// [Node.Kind] classifies a node from its TagOrID.
//
// # Related Packages
//
//   - github.com/signadot/gedcom-xml/parse - build a forest from lines
//   - github.com/signadot/gedcom-xml/encode - render a forest as XML
package ir
