// Package format names the output formats a GEDCOM forest can be encoded in.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	out := f.OutputPath("family.ged") // family.yaml
//
// # Related Packages
//
//   - github.com/signadot/gedcom-xml/encode - Encode a forest in a format
package format
