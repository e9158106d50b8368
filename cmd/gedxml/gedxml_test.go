package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsInputFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tree"), []byte(family), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "check"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"tree"}, true},
		{[]string{"view"}, false},
		{[]string{"check"}, false},
		{[]string{"tree", "tree"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := isInputFile(tt.args); got != tt.want {
			t.Errorf("isInputFile(%q) = %t, want %t", tt.args, got, tt.want)
		}
	}
}
