package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"@I1@", IdentifierKind},
		{"@@", IdentifierKind},
		{"@", TagKind},
		{"@I1", TagKind},
		{"I1@", TagKind},
		{"NAME", TagKind},
		{"", TagKind},
	}
	for _, tt := range tests {
		if got := KindOf(tt.in); got != tt.want {
			t.Errorf("KindOf(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestKindText(t *testing.T) {
	for _, k := range []Kind{TagKind, IdentifierKind} {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("got %s want %s", back, k)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Record")); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestElementName(t *testing.T) {
	tests := []struct {
		node *Node
		name string
		ok   bool
	}{
		{NewNode(0, "@I1@", Str("INDI")), "indi", true},
		{NewNode(0, "@I1@", nil), "", false},
		{NewNode(1, "NAME", Str("John /Doe/")), "name", true},
		{NewNode(1, "BIRT", nil), "birt", true},
	}
	for _, tt := range tests {
		name, ok := tt.node.ElementName()
		if name != tt.name || ok != tt.ok {
			t.Errorf("%s: got (%q, %v) want (%q, %v)", tt.node.TagOrID, name, ok, tt.name, tt.ok)
		}
	}
}

func TestWalkOrder(t *testing.T) {
	forest := []*Node{
		NewNode(0, "@I1@", Str("INDI")).Append(
			NewNode(1, "NAME", Str("John")).Append(
				NewNode(2, "GIVN", Str("John")),
			),
			NewNode(1, "SEX", Str("M")),
		),
		NewNode(0, "TRLR", nil),
	}
	type visit struct {
		Tag   string
		Depth int
	}
	var got []visit
	Walk(forest, func(n *Node, depth int) bool {
		got = append(got, visit{n.TagOrID, depth})
		return true
	})
	want := []visit{
		{"@I1@", 0},
		{"NAME", 1},
		{"GIVN", 2},
		{"SEX", 1},
		{"TRLR", 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
	if n := Count(forest); n != 5 {
		t.Errorf("Count = %d, want 5", n)
	}
}

func TestWalkSkip(t *testing.T) {
	forest := []*Node{
		NewNode(0, "HEAD", nil).Append(NewNode(1, "SOUR", Str("x"))),
	}
	n := 0
	Walk(forest, func(*Node, int) bool {
		n++
		return false
	})
	if n != 1 {
		t.Errorf("visited %d nodes, want 1", n)
	}
}
