package reader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	data := []byte("%PDF-1.4\n1 0 obj\nendobj\n%%EOF")

	buf, err := NewBuffer(data)
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}

	if got := buf.Version().String(); got != "1.4" {
		t.Errorf("version = %q, want %q", got, "1.4")
	}
	if buf.Len() != len(data) {
		t.Errorf("Len = %d, want %d", buf.Len(), len(data))
	}
	if buf.Filename() != "" {
		t.Errorf("expected empty filename for in-memory buffer, got %q", buf.Filename())
	}
}

func TestNewBufferInvalidHeader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"too short", []byte("%PDF")},
		{"wrong magic", []byte("GIF89a..")},
		{"no version", []byte("%PDF-abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBuffer(tt.data); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.pdf")
	data := []byte("%PDF-1.7\nsome bytes\n%%EOF")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture failed: %v", err)
	}

	buf, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if got := buf.Version().String(); got != "1.7" {
		t.Errorf("version = %q, want %q", got, "1.7")
	}
	if buf.Filename() != path {
		t.Errorf("Filename = %q, want %q", buf.Filename(), path)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Error("expected error for missing file")
	}
}
