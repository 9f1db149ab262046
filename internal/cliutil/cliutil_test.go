package cliutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(a, []byte(">a\nA\n"), 0o644)
	_ = os.WriteFile(b, []byte(">b\nA\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa"), "-"})
	if err != nil || len(got) != 3 || got[2] != "-" {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.csv")}); err == nil {
		t.Fatalf("expected no-match error")
	}
}

func TestResolveQuery(t *testing.T) {
	one := func(string) ([][]byte, error) { return [][]byte{[]byte("ACGT")}, nil }
	two := func(string) ([][]byte, error) { return [][]byte{nil, nil}, nil }

	if q, err := ResolveQuery(" ACGT\n", "", one); err != nil || string(q) != "ACGT" {
		t.Fatalf("inline: %q %v", q, err)
	}
	if _, err := ResolveQuery("A", "f", one); err == nil || !strings.Contains(err.Error(), "not both") {
		t.Fatalf("want both-set error, got %v", err)
	}
	if _, err := ResolveQuery("", "", one); err == nil {
		t.Fatalf("want missing-query error")
	}
	f := filepath.Join(t.TempDir(), "q.fa")
	_ = os.WriteFile(f, []byte(">q\nACGT\n"), 0o644)
	if q, err := ResolveQuery("", f, one); err != nil || string(q) != "ACGT" {
		t.Fatalf("file: %q %v", q, err)
	}
	if _, err := ResolveQuery("", f, two); err == nil || !strings.Contains(err.Error(), "found 2") {
		t.Fatalf("want count error, got %v", err)
	}
	if _, err := ResolveQuery("", filepath.Join(t.TempDir(), "missing.fa"), one); err == nil {
		t.Fatalf("want stat error for missing file")
	}
}
