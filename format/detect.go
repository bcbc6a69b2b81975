// Package format provides magic-byte sniffing for embed and extract payloads.
package format

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Format represents a recognized payload format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// JPEG indicates a baseline JPEG image (FF D8).
	JPEG
	// PNG indicates a PNG image.
	PNG
	// GIF indicates a GIF image.
	GIF
	// TIFF indicates a TIFF image (either byte order).
	TIFF
	// BMP indicates a Windows bitmap.
	BMP
	// WebP indicates a WebP image.
	WebP
	// PDF indicates a PDF document.
	PDF
	// ZlibStream indicates data that starts with a zlib header byte.
	ZlibStream
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case JPEG:
		return "JPEG"
	case PNG:
		return "PNG"
	case GIF:
		return "GIF"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	case WebP:
		return "WebP"
	case PDF:
		return "PDF"
	case ZlibStream:
		return "zlib stream"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case JPEG:
		return ".jpg"
	case PNG:
		return ".png"
	case GIF:
		return ".gif"
	case TIFF:
		return ".tif"
	case BMP:
		return ".bmp"
	case WebP:
		return ".webp"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// IsJPEG reports whether data starts with the JPEG SOI marker FF D8, the
// two-byte magic the extraction path validates recovered payloads against.
func IsJPEG(data []byte) bool {
	return len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8
}

// HasZlibHeader reports whether data starts with 0x78, the first header byte
// zlib emits at its common compression levels. This is a heuristic, not a
// full header or checksum validation: atypical compression settings can
// produce false negatives, and unrelated data can start with 0x78.
func HasZlibHeader(data []byte) bool {
	return len(data) >= 1 && data[0] == 0x78
}

// Detect determines a payload's format from its magic bytes. It returns
// Unknown when no known signature matches.
func Detect(data []byte) Format {
	switch {
	case IsJPEG(data):
		return JPEG
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return PNG
	case bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")):
		return GIF
	case bytes.HasPrefix(data, []byte("II*\x00")) || bytes.HasPrefix(data, []byte("MM\x00*")):
		return TIFF
	case bytes.HasPrefix(data, []byte("BM")):
		return BMP
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return WebP
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return PDF
	case HasZlibHeader(data):
		return ZlibStream
	default:
		return Unknown
	}
}

// Info describes a recognized image payload.
type Info struct {
	Format Format
	Width  int
	Height int
}

// String renders the info for human-readable reports, e.g. "JPEG 800x600".
func (i Info) String() string {
	if i.Width == 0 && i.Height == 0 {
		return i.Format.String()
	}
	return fmt.Sprintf("%s %dx%d", i.Format, i.Width, i.Height)
}

// Describe sniffs the payload format and, for image formats, probes its pixel
// dimensions by decoding only the header. It returns an error when the data
// is not a recognized image or its header cannot be decoded.
func Describe(data []byte) (Info, error) {
	f := Detect(data)

	var (
		cfg image.Config
		err error
	)
	switch f {
	case JPEG:
		cfg, err = jpeg.DecodeConfig(bytes.NewReader(data))
	case PNG:
		cfg, err = png.DecodeConfig(bytes.NewReader(data))
	case GIF:
		cfg, err = gif.DecodeConfig(bytes.NewReader(data))
	case TIFF:
		cfg, err = tiff.DecodeConfig(bytes.NewReader(data))
	case BMP:
		cfg, err = bmp.DecodeConfig(bytes.NewReader(data))
	case WebP:
		cfg, err = webp.DecodeConfig(bytes.NewReader(data))
	default:
		return Info{Format: f}, fmt.Errorf("not a recognized image format: %s", f)
	}
	if err != nil {
		return Info{Format: f}, fmt.Errorf("failed to decode %s header: %w", f, err)
	}

	return Info{Format: f, Width: cfg.Width, Height: cfg.Height}, nil
}
