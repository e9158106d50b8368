package libdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Line is one line of a line diff. From and To are the 1-based positions
// of the line in each input; for inserted (deleted) lines From (To) is the
// position the line would take.
type Line struct {
	Op       Op
	Text     string
	From, To int
}

// Lines computes a line diff of from and to.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	fromChars, toChars, lineArray := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(fromChars, toChars, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lineArray)
	var res []Line
	fi, ti := 1, 1
	for i := range diffs {
		diff := &diffs[i]
		for _, ln := range splitLines(diff.Text) {
			l := Line{Text: ln, From: fi, To: ti}
			switch diff.Type {
			case diffpatch.DiffEqual:
				fi++
				ti++
			case diffpatch.DiffDelete:
				l.Op = Delete
				fi++
			case diffpatch.DiffInsert:
				l.Op = Insert
				ti++
			}
			res = append(res, l)
		}
	}
	return res
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	res := strings.SplitAfter(s, "\n")
	if res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	for i := range res {
		res[i] = strings.TrimSuffix(res[i], "\n")
	}
	return res
}

func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Unified renders the changed lines of a diff with context unchanged lines
// around them, in hunks headed by "@@ -from +to @@". It returns "" when
// nothing changed.
func Unified(lines []Line, context int) string {
	keep := make([]bool, len(lines))
	for i := range lines {
		if lines[i].Op == Equal {
			continue
		}
		lo, hi := max(0, i-context), min(len(lines)-1, i+context)
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}
	b := &strings.Builder{}
	for i := range lines {
		if !keep[i] {
			continue
		}
		l := &lines[i]
		if i == 0 || !keep[i-1] {
			fmt.Fprintf(b, "@@ -%d +%d @@\n", l.From, l.To)
		}
		b.WriteString(l.Op.Prefix())
		b.WriteString(l.Text)
		b.WriteString("\n")
	}
	return b.String()
}

// Text diffs from and to, returning the unified rendering and whether they
// differ.
func Text(from, to string, context int) (string, bool) {
	lines := Lines(from, to)
	if !Changed(lines) {
		return "", false
	}
	return Unified(lines, context), true
}
