package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// errWriter is a writer that always returns an error.
type errWriter struct{ err error }

func (e *errWriter) Write(_ []byte) (int, error) { return 0, e.err }

func TestNewParseCmd_ReadSourceError(t *testing.T) {
	reader := &mockSourceReader{err: errors.New("disk error")}
	c := NewParseCmd(reader)
	out := new(bytes.Buffer)
	c.SetOut(out)
	c.SetArgs([]string{"doc.mson"})

	err := c.Execute()
	if err == nil {
		t.Error("expected error when ReadSource fails")
	}
	if out.Len() > 0 {
		t.Errorf("expected no stdout on ReadSource error, got: %s", out.String())
	}
}

func TestNewParseCmd_EncodeErrorJSON(t *testing.T) {
	reader := &mockSourceReader{content: []byte("- (string)\n")}
	c := NewParseCmd(reader)
	c.SetOut(&errWriter{err: errors.New("write error")})
	c.SetArgs([]string{"doc.mson"})

	if err := c.Execute(); err == nil {
		t.Error("expected error when JSON encoding fails")
	}
}

func TestNewParseCmd_EncodeErrorYAML(t *testing.T) {
	reader := &mockSourceReader{content: []byte("- (string)\n")}
	c := NewParseCmd(reader)
	c.SetOut(&errWriter{err: errors.New("write error")})
	c.SetArgs([]string{"--format", "yaml", "doc.mson"})

	if err := c.Execute(); err == nil {
		t.Error("expected error when YAML encoding fails")
	}
}

func TestFileSourceReader_ReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.mson")
	content := []byte("- (string)\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	r := newDefaultSourceReader()
	got, err := r.ReadSource(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("got %q, want %q", got, content)
	}
}
