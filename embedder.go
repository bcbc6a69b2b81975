package lacuna

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"lacuna/core"
	"lacuna/format"
	"lacuna/internal/filters"
	"lacuna/reader"
)

// Embedder provides a fluent interface for the forward path: compressing a
// JPEG payload and splicing it into a cover PDF as an orphan object. Each
// configuration method returns a new Embedder instance, making chains safe
// to share and reuse.
type Embedder struct {
	pdfPath     string
	payloadPath string
	payload     []byte // set by PayloadBytes, takes precedence over payloadPath
	verify      bool

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Embedder so each chain method returns a new
// instance.
func (e *Embedder) clone() *Embedder {
	c := *e
	return &c
}

// Payload sets the payload image file to embed. The file must be a baseline
// JPEG (first two bytes FF D8).
func (e *Embedder) Payload(path string) *Embedder {
	c := e.clone()
	c.payloadPath = path
	return c
}

// PayloadBytes sets the payload from an in-memory buffer instead of a file.
func (e *Embedder) PayloadBytes(data []byte) *Embedder {
	c := e.clone()
	c.payload = data
	return c
}

// Verify enables a validation pass over the spliced output before it is
// persisted. Validation problems surface as a Warning, not an error: the
// orphan object is invisible to conforming readers, so a validator complaint
// almost always concerns the cover file itself.
func (e *Embedder) Verify() *Embedder {
	c := e.clone()
	c.verify = true
	return c
}

// To runs the embed and writes the resulting PDF to outPath. This is a
// terminal operation. It returns the run report, any warnings, and an error
// if the embed failed (in which case no output file is written).
func (e *Embedder) To(outPath string) (*Report, []Warning, error) {
	out, rep, warnings, err := e.run()
	if err != nil {
		return rep, warnings, err
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return rep, warnings, fmt.Errorf("failed to write output PDF: %w", err)
	}
	rep.OutputSize = len(out)
	rep.step("persist", "wrote %s (%d bytes, +%d over cover)", outPath, len(out), len(out)-rep.InputSize)

	return rep, warnings, nil
}

// Bytes runs the embed and returns the resulting PDF bytes without touching
// disk. This is a terminal operation.
func (e *Embedder) Bytes() ([]byte, *Report, []Warning, error) {
	return e.run()
}

func (e *Embedder) run() ([]byte, *Report, []Warning, error) {
	rep := newReport()
	var warnings []Warning

	if e.err != nil {
		return nil, rep, nil, e.err
	}

	// Load
	buf, err := reader.Open(e.pdfPath)
	if err != nil {
		return nil, rep, nil, err
	}
	pdf := buf.Bytes()
	rep.InputSize = buf.Len()
	rep.step("load", "cover %s: PDF %s, %d bytes", e.pdfPath, buf.Version(), buf.Len())

	payload := e.payload
	if payload == nil {
		if e.payloadPath == "" {
			return nil, rep, nil, fmt.Errorf("no payload specified")
		}
		payload, err = os.ReadFile(e.payloadPath)
		if err != nil {
			return nil, rep, nil, fmt.Errorf("failed to read payload: %w", err)
		}
	}
	if !format.IsJPEG(payload) {
		return nil, rep, nil, fmt.Errorf("payload is not a baseline JPEG (sniffed %s): %w", format.Detect(payload), ErrFormatMismatch)
	}
	rep.PayloadSize = len(payload)
	if info, err := format.Describe(payload); err == nil {
		rep.step("load", "payload %s, %d bytes", info, len(payload))
	} else {
		rep.step("load", "payload JPEG, %d bytes", len(payload))
	}

	// Compress
	compressed, err := filters.FlateEncode(payload)
	if err != nil {
		return nil, rep, warnings, err
	}
	rep.CompressedSize = len(compressed)
	rep.step("compress", "%d -> %d bytes (ratio %.2f)", len(payload), len(compressed), rep.Ratio())

	// Allocate object number
	objNum := core.HighestObjectNumber(pdf) + 1
	rep.ObjectNumber = objNum
	rep.step("allocate", "object number %d", objNum)

	// Build
	obj, err := core.BuildStreamObject(objNum, compressed)
	if err != nil {
		return nil, rep, warnings, err
	}
	rep.step("build", "orphan object, %d bytes total", len(obj))

	// Locate insertion point and splice
	at, err := core.FindXref(pdf)
	if err != nil {
		return nil, rep, warnings, fmt.Errorf("no insertion point: %w", err)
	}
	out, err := core.Splice(pdf, obj, at)
	if err != nil {
		return nil, rep, warnings, err
	}
	rep.step("splice", "inserted before xref at offset %d", at)

	// Optional validation of the spliced result
	if e.verify {
		if err := api.Validate(bytes.NewReader(out), nil); err != nil {
			warnings = append(warnings, Warning{
				Type:    WarnValidation,
				Message: fmt.Sprintf("output failed validation: %v", err),
			})
		} else {
			rep.step("verify", "output validates")
		}
	}

	return out, rep, warnings, nil
}
