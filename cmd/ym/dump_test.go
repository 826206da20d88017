package main

import (
	"errors"
	"strings"
	"testing"
)

var errShortWrite = errors.New("writer closed")

// failAfter accepts n writes, then fails.
type failAfter struct {
	n int
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, errShortWrite
	}
	f.n--
	return len(p), nil
}

func TestDumpReaderMultiDoc(t *testing.T) {
	cfg := &DumpConfig{MainConfig: &MainConfig{}}
	var b strings.Builder
	if err := dumpReader(cfg, &b, strings.NewReader("a: 1\n---\nb: 2\n")); err != nil {
		t.Fatalf("dumpReader() error = %v", err)
	}
	if b.String() != "a: 1\n---\nb: 2\n" {
		t.Errorf("dumpReader = %q", b.String())
	}
}

func TestDumpReaderSeparatorWriteError(t *testing.T) {
	cfg := &DumpConfig{MainConfig: &MainConfig{}}
	// the first document is written, the separator write fails
	w := &failAfter{n: 1}
	err := dumpReader(cfg, w, strings.NewReader("a: 1\n---\nb: 2\n"))
	if !errors.Is(err, errShortWrite) {
		t.Fatalf("expected separator write error, got %v", err)
	}
}
