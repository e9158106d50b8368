package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one tokenized input line.
type Record struct {
	Level   int
	TagOrID string
	Data    *string
	Line    int
}

func (r *Record) String() string {
	if r.Data == nil {
		return fmt.Sprintf("%d %s", r.Level, r.TagOrID)
	}
	return fmt.Sprintf("%d %s %s", r.Level, r.TagOrID, *r.Data)
}

// Tokenize splits line into at most three whitespace separated fields. The
// third field, data, is the rest of the line verbatim after the whitespace
// following the tag. lineNo is recorded in the result and in errors.
func Tokenize(line string, lineNo int) (Record, error) {
	text := Trim(line)
	rec := Record{Line: lineNo}
	levelTok, rest := field(text)
	level, err := parseLevel(levelTok)
	if err != nil {
		return rec, NewRecordErr(fmt.Errorf("%w %q", ErrBadLevel, levelTok), lineNo, line)
	}
	rec.Level = level
	tag, rest := field(rest)
	if tag == "" {
		return rec, NewRecordErr(ErrNoTag, lineNo, line)
	}
	rec.TagOrID = tag
	if rest != "" {
		rec.Data = &rest
	}
	return rec, nil
}

// field returns the leading run of non-space characters of s and what
// follows the whitespace run after it.
func field(s string) (string, string) {
	end := strings.IndexFunc(s, isSpace)
	if end == -1 {
		return s, ""
	}
	rest := strings.TrimLeftFunc(s[end:], isSpace)
	return s[:end], rest
}

// isSpace reports ASCII whitespace only. Other Unicode spaces, such as
// U+00A0, are data.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Trim removes leading and trailing ASCII whitespace from s.
func Trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func parseLevel(tok string) (int, error) {
	v, err := strconv.ParseUint(tok, 10, 31)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
