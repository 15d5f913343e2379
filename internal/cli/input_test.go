package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("  hello \n")), "Prompt", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected trimmed input, got %q", got)
	}
	if !strings.Contains(out.String(), "Prompt") {
		t.Errorf("prompt not printed: %q", out.String())
	}
}

func TestGetSimpleTextEOFPartial(t *testing.T) {
	// no trailing newline, EOF after partial input
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("partial")), "Prompt", &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "partial" {
		t.Errorf("expected partial line, got %q", got)
	}
}

func TestGetPasswordStubbed(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pw) != "s3cret" {
		t.Errorf("unexpected password: %q", pw)
	}
	if !strings.Contains(out.String(), "Enter password:") {
		t.Errorf("prompt not printed: %q", out.String())
	}
}
