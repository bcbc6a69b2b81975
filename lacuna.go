// Package lacuna hides a JPEG payload inside a PDF file and recovers it
// again. The payload is DEFLATE-compressed and deposited as a syntactically
// valid but unreferenced indirect object spliced in immediately before the
// cross-reference table: conforming readers only render objects reachable
// from the trailer via the xref table, so the deposited object is invisible
// to normal rendering while remaining extractable by direct byte search.
//
// Embedding:
//
//	report, warnings, err := lacuna.Cover("document.pdf").
//	    Payload("photo.jpg").
//	    To("document-stego.pdf")
//
// Extraction:
//
//	report, warnings, err := lacuna.Open("document-stego.pdf").
//	    To("recovered.jpg")
//
// Only classic trailer/xref-table PDFs are supported; cross-reference
// streams, encrypted files, and incremental-update chains are not. One
// payload per file, one round trip: re-embedding into an already-carrying
// file works but extraction only ever finds the most recently deposited
// object.
package lacuna

import (
	"errors"

	"lacuna/core"
)

// Error taxonomy shared by both paths. core additionally defines
// ErrBoundaryNotFound and ErrStructureInvalid for missing landmarks.
var (
	// ErrFormatMismatch indicates sniffed magic bytes did not match
	// expectation: an embed payload that is not a JPEG, an isolated stream
	// that is not zlib-shaped, or recovered data that is not a JPEG.
	ErrFormatMismatch = errors.New("payload format mismatch")

	// ErrDecompression indicates the DEFLATE decoder rejected the isolated
	// stream bytes.
	ErrDecompression = errors.New("stream decompression failed")
)

// Cover starts an embed run over the named cover PDF. Configure the payload
// with Payload or PayloadBytes, then call To to produce the output file.
func Cover(pdfPath string) *Embedder {
	return &Embedder{pdfPath: pdfPath}
}

// Open starts an extraction run over the named PDF. By default the run
// targets the highest-numbered object in the file, which is where Cover
// deposits the payload; use Object to target a specific object number.
func Open(pdfPath string) *Extractor {
	return &Extractor{pdfPath: pdfPath}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// IsStructural reports whether err stems from a missing PDF landmark (object
// declaration, stream markers, or xref keyword) rather than from payload
// content or I/O.
func IsStructural(err error) bool {
	return errors.Is(err, core.ErrStructureInvalid) || errors.Is(err, core.ErrBoundaryNotFound)
}
