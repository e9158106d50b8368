// Package query selects GEDCOM records with expressions.
//
// Expressions use the github.com/expr-lang/expr language over [Env]:
//
//	f, err := query.Compile(`data == "INDI" && has("BIRT")`)
//	people, err := f.Select(forest)
package query
