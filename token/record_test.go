package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/gedcom-xml/ir"
)

func str(s string) *string { return &s }

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want Record
	}{
		{
			in:   "0 HEAD",
			want: Record{Level: 0, TagOrID: "HEAD", Line: 1},
		},
		{
			in:   "0 @I1@ INDI",
			want: Record{Level: 0, TagOrID: "@I1@", Data: str("INDI"), Line: 1},
		},
		{
			in:   "1 NAME John /Doe/",
			want: Record{Level: 1, TagOrID: "NAME", Data: str("John /Doe/"), Line: 1},
		},
		{
			in:   "2   NOTE\tkeeps  internal   spacing",
			want: Record{Level: 2, TagOrID: "NOTE", Data: str("keeps  internal   spacing"), Line: 1},
		},
		{
			in:   "  12 CONT  trimmed  ",
			want: Record{Level: 12, TagOrID: "CONT", Data: str("trimmed"), Line: 1},
		},
		{
			in:   "03 DATE 1 JAN 1900",
			want: Record{Level: 3, TagOrID: "DATE", Data: str("1 JAN 1900"), Line: 1},
		},
		{
			in:   "1 NOTE \u00a0indented",
			want: Record{Level: 1, TagOrID: "NOTE", Data: str("\u00a0indented"), Line: 1},
		},
		{
			in:   "1 NOTE x\u2003",
			want: Record{Level: 1, TagOrID: "NOTE", Data: str("x\u2003"), Line: 1},
		},
		{
			in:   "1 SURN\u00a0Doe",
			want: Record{Level: 1, TagOrID: "SURN\u00a0Doe", Line: 1},
		},
	}
	for _, tt := range tests {
		got, err := Tokenize(tt.in, 1)
		if err != nil {
			t.Errorf("Tokenize(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in string
		e  error
	}{
		{"", ErrBadLevel},
		{"1\u00a0NAME John", ErrBadLevel},
		{"X NAME", ErrBadLevel},
		{"-1 NAME", ErrBadLevel},
		{"+1 NAME", ErrBadLevel},
		{"1.5 NAME", ErrBadLevel},
		{"99999999999 NAME", ErrBadLevel},
		{"1", ErrNoTag},
		{"   4   ", ErrNoTag},
	}
	for _, tt := range tests {
		_, err := Tokenize(tt.in, 7)
		if !errors.Is(err, tt.e) {
			t.Errorf("Tokenize(%q): got %v, want %v", tt.in, err, tt.e)
			continue
		}
		if !errors.Is(err, ir.ErrMalformedRecord) {
			t.Errorf("Tokenize(%q): %v does not wrap ErrMalformedRecord", tt.in, err)
		}
		var re *RecordErr
		if !errors.As(err, &re) {
			t.Errorf("Tokenize(%q): %T is not a *RecordErr", tt.in, err)
			continue
		}
		if re.Line != 7 {
			t.Errorf("Tokenize(%q): line %d, want 7", tt.in, re.Line)
		}
	}
}

func TestRecordErrPos(t *testing.T) {
	e := NewRecordErr(ErrNoTag, 3, "1")
	if got := e.Pos(); got != "line 3" {
		t.Errorf("got %q", got)
	}
	e.Filename = "family.ged"
	if got := e.Pos(); got != "family.ged:3" {
		t.Errorf("got %q", got)
	}
}
