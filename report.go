package lacuna

import (
	"fmt"

	"github.com/google/uuid"
)

// Step records one completed stage of a run, in order of execution.
type Step struct {
	Name   string
	Detail string
}

// Report is the structured account of a single embed or extract run. Library
// code never prints; it returns the report and lets the caller decide how to
// surface it (stdout text, JSON, silent).
type Report struct {
	// RunID uniquely identifies this invocation, for correlating the report
	// with diagnostic artifacts.
	RunID string

	// Steps lists the stages the run completed, in order.
	Steps []Step

	// ObjectNumber is the indirect object carrying the payload: assigned on
	// embed, targeted on extract.
	ObjectNumber int

	// PayloadSize is the uncompressed payload size in bytes.
	PayloadSize int

	// CompressedSize is the DEFLATE-compressed payload size in bytes.
	CompressedSize int

	// InputSize and OutputSize are the sizes of the PDF read and the file
	// written.
	InputSize  int
	OutputSize int
}

func newReport() *Report {
	return &Report{RunID: uuid.NewString()}
}

// step appends a formatted stage record.
func (r *Report) step(name, format string, args ...any) {
	r.Steps = append(r.Steps, Step{Name: name, Detail: fmt.Sprintf(format, args...)})
}

// Ratio returns the compression ratio (compressed/original), or 0 when the
// payload size is unknown.
func (r *Report) Ratio() float64 {
	if r.PayloadSize == 0 {
		return 0
	}
	return float64(r.CompressedSize) / float64(r.PayloadSize)
}
