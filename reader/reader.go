// Package reader provides whole-file PDF buffer loading.
//
// Unlike a real PDF reader, this package never parses the object graph: the
// embed and extract paths operate on raw bytes with literal landmark search,
// so all the reader does is load the complete file into memory and confirm it
// carries a PDF header. The buffer is treated as immutable for the lifetime
// of a run.
package reader

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// PDFVersion represents a PDF version.
type PDFVersion struct {
	Major int
	Minor int
}

// String returns the version as a string (e.g., "1.7").
func (v PDFVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Buffer holds the complete on-disk bytes of a PDF file. It performs no
// structural parsing beyond the header; the content is opaque bytes with
// embedded ASCII markers.
type Buffer struct {
	filename string
	data     []byte
	version  PDFVersion
}

// Open reads the named PDF file fully into memory and validates its header.
func Open(filename string) (*Buffer, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}

	buf, err := NewBuffer(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	buf.filename = filename
	return buf, nil
}

// NewBuffer wraps already-loaded PDF bytes, validating the %PDF-x.y header.
func NewBuffer(data []byte) (*Buffer, error) {
	version, err := parseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	return &Buffer{data: data, version: version}, nil
}

// Bytes returns the raw file bytes. Callers must treat the slice as
// read-only; transformations always allocate new buffers.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the file size in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Version returns the PDF version declared in the header.
func (b *Buffer) Version() PDFVersion {
	return b.version
}

// Filename returns the path the buffer was loaded from, or "" for in-memory
// buffers.
func (b *Buffer) Filename() string {
	return b.filename
}

// parseHeader parses the PDF header (%PDF-x.y).
func parseHeader(data []byte) (PDFVersion, error) {
	if len(data) < 8 {
		return PDFVersion{}, fmt.Errorf("file too short for a PDF header: %d bytes", len(data))
	}

	header := string(data[:8])
	if !strings.HasPrefix(header, "%PDF-") {
		return PDFVersion{}, fmt.Errorf("invalid PDF header: %q", header)
	}

	versionStr := header[5:] // after "%PDF-"
	parts := strings.SplitN(versionStr, ".", 2)
	if len(parts) != 2 {
		return PDFVersion{}, fmt.Errorf("invalid version in header: %q", versionStr)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return PDFVersion{}, fmt.Errorf("invalid major version: %w", err)
	}
	minor, err := strconv.Atoi(strings.TrimRight(parts[1], "\r\n "))
	if err != nil {
		return PDFVersion{}, fmt.Errorf("invalid minor version: %w", err)
	}

	return PDFVersion{Major: major, Minor: minor}, nil
}
