package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRunWritesImage(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.pgm")

	if err := run([]string{filename, "4x3"}); err != nil {
		t.Fatalf("run: %v", err)
	}

	got, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	header := []byte("P5\n4 3\n255\n")
	if !bytes.HasPrefix(got, header) {
		t.Errorf("output starts with %q, want %q", got[:min(len(got), len(header))], header)
	}
	if len(got) != len(header)+4*3 {
		t.Errorf("output is %d bytes, want %d", len(got), len(header)+4*3)
	}
}

func TestRunRejectsMalformedArguments(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.pgm")

	cases := [][]string{
		{filename, "bogus"},
		{filename, "4x3", "nope"},
		{filename, "4x3", "-2.0,1.0", "1.0"},
	}
	for _, args := range cases {
		if err := run(args); err == nil {
			t.Errorf("run(%q) succeeded, want parse error", args)
		}
		if _, err := os.Stat(filename); !os.IsNotExist(err) {
			t.Errorf("run(%q) left an output file behind", args)
		}
	}
}
