package lacuna

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lacuna/core"
	"lacuna/format"
	"lacuna/internal/filters"
	"lacuna/reader"
)

// Diagnostic filename suffixes, one per failure mode, appended to the
// intended output path so failed runs never clobber each other's artifacts.
const (
	suffixNotZlib       = ".notzlib"
	suffixDeflateFailed = ".deflate-failed"
	suffixMystery       = ".mystery"
)

// DiagnosticError describes an extraction failure whose intermediate bytes
// were preserved to a diagnostic file for manual inspection.
type DiagnosticError struct {
	// Stage names the step that failed: "classify", "decompress", or
	// "validate".
	Stage string
	// Path is the diagnostic file holding the preserved bytes. Empty when
	// even the diagnostic write failed.
	Path string
	// Err is the underlying cause.
	Err error
}

// Error renders the failure with a pointer to the preserved bytes.
func (d *DiagnosticError) Error() string {
	if d.Path == "" {
		return fmt.Sprintf("%s: %v", d.Stage, d.Err)
	}
	return fmt.Sprintf("%s: %v (raw bytes saved to %s)", d.Stage, d.Err, d.Path)
}

// Unwrap returns the underlying cause, so errors.Is sees through to
// ErrFormatMismatch and ErrDecompression.
func (d *DiagnosticError) Unwrap() error {
	return d.Err
}

// Extractor provides a fluent interface for the reverse path: locating the
// deposited object, isolating and decompressing its stream, and validating
// the recovered payload. Each configuration method returns a new Extractor
// instance.
type Extractor struct {
	pdfPath   string
	objectNum int    // 0 means auto: highest object number in the file
	diagDir   string // "" means alongside the output path

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor so each chain method returns a new
// instance.
func (x *Extractor) clone() *Extractor {
	c := *x
	return &c
}

// Object targets a specific object number instead of the default (the
// highest-numbered object in the file, which is where Cover deposits).
func (x *Extractor) Object(n int) *Extractor {
	c := x.clone()
	if n < 1 {
		c.err = fmt.Errorf("object number must be positive, got %d", n)
		return c
	}
	c.objectNum = n
	return c
}

// DiagnosticsDir redirects diagnostic artifacts from failed runs into dir
// instead of writing them next to the output path.
func (x *Extractor) DiagnosticsDir(dir string) *Extractor {
	c := x.clone()
	c.diagDir = dir
	return c
}

// To runs the extraction and writes the recovered payload to outPath. This
// is a terminal operation.
//
// On success it returns the run report and any warnings. On failure no
// output file is written; where intermediate bytes exist they are preserved
// to a diagnostic file and the returned error is a *DiagnosticError naming
// it. Landmark failures (missing object, missing stream markers) satisfy
// errors.Is against core.ErrStructureInvalid / core.ErrBoundaryNotFound.
func (x *Extractor) To(outPath string) (*Report, []Warning, error) {
	rep := newReport()
	var warnings []Warning

	if x.err != nil {
		return rep, nil, x.err
	}

	// Load
	buf, err := reader.Open(x.pdfPath)
	if err != nil {
		return rep, nil, err
	}
	pdf := buf.Bytes()
	rep.InputSize = buf.Len()
	rep.step("load", "%s: PDF %s, %d bytes", x.pdfPath, buf.Version(), buf.Len())

	// Locate
	objNum := x.objectNum
	if objNum == 0 {
		objNum = core.HighestObjectNumber(pdf)
		if objNum == 0 {
			return rep, warnings, fmt.Errorf("no object declarations in file: %w", core.ErrStructureInvalid)
		}
	}
	rep.ObjectNumber = objNum

	headerOff := core.FindObjectDeclaration(pdf, objNum)
	if headerOff < 0 {
		return rep, warnings, fmt.Errorf("object %d declaration not found: %w", objNum, core.ErrStructureInvalid)
	}
	if n := core.CountObjectDeclarations(pdf, objNum); n > 1 {
		warnings = append(warnings, Warning{
			Type:    WarnDuplicateObject,
			Message: fmt.Sprintf("object %d is declared %d times; using the first occurrence", objNum, n),
		})
	}

	start, end, err := core.FindStreamBounds(pdf, headerOff)
	if err != nil {
		return rep, warnings, fmt.Errorf("object %d: %w", objNum, err)
	}
	rep.step("locate", "object %d at offset %d, stream bytes [%d:%d]", objNum, headerOff, start, end)

	// Isolate
	stream := pdf[start:end]
	rep.CompressedSize = len(stream)
	if declared, ok := core.DeclaredLength(pdf[headerOff:start]); ok && declared != len(stream) {
		warnings = append(warnings, Warning{
			Type:    WarnLengthMismatch,
			Message: fmt.Sprintf("object %d declares /Length %d but carries %d stream bytes", objNum, declared, len(stream)),
		})
	}

	// Classify
	if !format.HasZlibHeader(stream) {
		err := fmt.Errorf("stream does not start with a zlib header (first byte %#02x, want 0x78): %w", firstByte(stream), ErrFormatMismatch)
		return rep, warnings, x.preserve("classify", outPath, suffixNotZlib, stream, err)
	}
	rep.step("classify", "stream is zlib-shaped (%d bytes)", len(stream))

	// Decompress
	payload, err := filters.FlateDecode(stream)
	if err != nil {
		err = fmt.Errorf("%v: %w", err, ErrDecompression)
		return rep, warnings, x.preserve("decompress", outPath, suffixDeflateFailed, stream, err)
	}
	rep.PayloadSize = len(payload)
	rep.step("decompress", "%d -> %d bytes", len(stream), len(payload))

	// Validate
	if !format.IsJPEG(payload) {
		detail := format.Detect(payload).String()
		if info, derr := format.Describe(payload); derr == nil {
			detail = info.String()
		}
		err := fmt.Errorf("recovered data is not a JPEG (want FF D8, got % X; looks like %s): %w",
			firstBytes(payload, 2), detail, ErrFormatMismatch)
		return rep, warnings, x.preserve("validate", outPath, suffixMystery, payload, err)
	}
	if info, err := format.Describe(payload); err == nil {
		rep.step("validate", "recovered %s", info)
	} else {
		rep.step("validate", "recovered JPEG, %d bytes", len(payload))
	}

	// Persist
	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		return rep, warnings, fmt.Errorf("failed to write recovered payload: %w", err)
	}
	rep.OutputSize = len(payload)
	rep.step("persist", "wrote %s (%d bytes, ratio %.2f)", outPath, len(payload), rep.Ratio())

	return rep, warnings, nil
}

// preserve writes the bytes in hand at the point of failure to a diagnostic
// file and wraps cause in a *DiagnosticError pointing at it. A failure to
// write the diagnostic never masks the original cause.
func (x *Extractor) preserve(stage, outPath, suffix string, data []byte, cause error) error {
	path := outPath + suffix
	if x.diagDir != "" {
		path = filepath.Join(x.diagDir, filepath.Base(outPath)+suffix)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &DiagnosticError{Stage: stage, Err: errors.Join(cause, err)}
	}
	return &DiagnosticError{Stage: stage, Path: path, Err: cause}
}

func firstByte(data []byte) byte {
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

func firstBytes(data []byte, n int) []byte {
	if len(data) < n {
		return data
	}
	return data[:n]
}
