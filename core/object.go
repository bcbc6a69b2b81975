package core

import (
	"fmt"
	"regexp"
	"strconv"
)

var lengthPattern = regexp.MustCompile(`/Length (\d+)`)

// BuildStreamObject serializes a complete indirect object wrapping the given
// stream payload, byte-for-byte in this exact grammar:
//
//	"<N> 0 obj\n<< /Length <L> /Filter /FlateDecode >>\nstream\n" +
//	payload +
//	"\nendstream\nendobj\n"
//
// The declared /Length always equals len(payload). The object carries no
// cross-reference entry and is referenced by nothing, so conforming readers
// never render it; it is only reachable by direct byte search.
//
// objNum must be positive and, for the output to stay unambiguous, strictly
// greater than every object number already present in the target file
// (callers use HighestObjectNumber + 1).
func BuildStreamObject(objNum int, payload []byte) ([]byte, error) {
	if objNum < 1 {
		return nil, fmt.Errorf("object number must be positive, got %d", objNum)
	}

	header := fmt.Sprintf("%d 0 obj\n<< /Length %d /Filter /FlateDecode >>\nstream\n", objNum, len(payload))
	const footer = "\nendstream\nendobj\n"

	obj := make([]byte, 0, len(header)+len(payload)+len(footer))
	obj = append(obj, header...)
	obj = append(obj, payload...)
	obj = append(obj, footer...)
	return obj, nil
}

// DeclaredLength parses the /Length value written in an object header region
// (the bytes between the object declaration and its stream marker). It
// returns false when no /Length entry is present. The value is reported as
// written; it is not validated against the actual stream bytes.
func DeclaredLength(header []byte) (int, bool) {
	m := lengthPattern.FindSubmatch(header)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return 0, false
	}
	return n, true
}
