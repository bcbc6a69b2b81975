package core

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrBoundaryNotFound indicates that a stream marker ("stream\n" or
	// "\nendstream") could not be found at or after the search offset.
	ErrBoundaryNotFound = errors.New("stream boundary not found")

	// ErrStructureInvalid indicates that a required structural landmark
	// (object declaration or xref keyword) is missing from the buffer.
	ErrStructureInvalid = errors.New("invalid PDF structure")
)

const (
	streamMarker    = "stream\n"
	endstreamMarker = "\nendstream"
	xrefKeyword     = "xref"
)

// objDeclPattern matches object declarations with generation 0, the only
// generation this package ever emits or looks for.
var objDeclPattern = regexp.MustCompile(`(\d+) 0 obj`)

// objectMarker returns the literal declaration bytes for an object number.
func objectMarker(objNum int) []byte {
	return []byte(strconv.Itoa(objNum) + " 0 obj")
}

// FindObjectDeclaration returns the byte offset of the first occurrence of
// "<objNum> 0 obj" in buf, or -1 if the declaration is absent. Only the first
// occurrence is considered; duplicate declarations are not disambiguated.
func FindObjectDeclaration(buf []byte, objNum int) int {
	return bytes.Index(buf, objectMarker(objNum))
}

// CountObjectDeclarations returns how many times "<objNum> 0 obj" occurs in
// buf. Anything above 1 means the file has an ambiguous shape (typically from
// incremental updates) and first-match lookups may pick the wrong object.
func CountObjectDeclarations(buf []byte, objNum int) int {
	marker := objectMarker(objNum)
	count := 0
	for idx := 0; ; {
		i := bytes.Index(buf[idx:], marker)
		if i < 0 {
			break
		}
		count++
		idx += i + len(marker)
	}
	return count
}

// HighestObjectNumber scans the whole buffer for object declarations and
// returns the largest object number found, or 0 if the buffer declares no
// objects at all.
func HighestObjectNumber(buf []byte) int {
	highest := 0
	for _, m := range objDeclPattern.FindAllSubmatch(buf, -1) {
		n, err := strconv.Atoi(string(m[1]))
		if err != nil {
			// Digit runs long enough to overflow int are not real
			// object numbers.
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest
}

// FindStreamBounds locates the raw stream bytes of the object at or after
// from. It returns the offset immediately following the first "stream\n"
// marker and the offset immediately preceding the first "\nendstream" marker
// after it, so buf[start:end] is exactly the stream payload.
//
// Returns ErrBoundaryNotFound if either marker is missing.
func FindStreamBounds(buf []byte, from int) (start, end int, err error) {
	if from < 0 || from > len(buf) {
		return 0, 0, fmt.Errorf("search offset %d outside buffer of %d bytes: %w", from, len(buf), ErrBoundaryNotFound)
	}

	i := bytes.Index(buf[from:], []byte(streamMarker))
	if i < 0 {
		return 0, 0, fmt.Errorf("no %q marker after offset %d: %w", "stream", from, ErrBoundaryNotFound)
	}
	start = from + i + len(streamMarker)

	j := bytes.Index(buf[start:], []byte(endstreamMarker))
	if j < 0 {
		return 0, 0, fmt.Errorf("no %q marker after offset %d: %w", "endstream", start, ErrBoundaryNotFound)
	}
	end = start + j

	return start, end, nil
}

// FindXref returns the byte offset of the first occurrence of the "xref"
// keyword. In a classic single-revision PDF this is the start of the
// cross-reference table, which is the safe insertion point for new objects:
// every offset the table references precedes it.
//
// Returns ErrStructureInvalid if the keyword is entirely absent, since
// without it no safe splice point exists.
func FindXref(buf []byte) (int, error) {
	i := bytes.Index(buf, []byte(xrefKeyword))
	if i < 0 {
		return 0, fmt.Errorf("no %q keyword in buffer: %w", xrefKeyword, ErrStructureInvalid)
	}
	return i, nil
}
