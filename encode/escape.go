package encode

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape replaces the five XML reserved characters in s with entities.
// Every '&' in the input is escaped, including one that already starts an
// entity.
func Escape(s string) string {
	return escaper.Replace(s)
}
