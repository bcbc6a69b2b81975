package core

import "fmt"

// Splice returns a new buffer equal to
//
//	original[:at] ++ obj ++ original[at:]
//
// with no other transformation. Every byte before at is byte-identical to the
// input and everything after is shifted by exactly len(obj), so when at is
// the xref offset the table's own entries (which all point before it) remain
// valid from the reader's perspective.
//
// The original buffer is never modified.
func Splice(original, obj []byte, at int) ([]byte, error) {
	if at < 0 || at > len(original) {
		return nil, fmt.Errorf("insertion offset %d outside buffer of %d bytes: %w", at, len(original), ErrStructureInvalid)
	}

	out := make([]byte, 0, len(original)+len(obj))
	out = append(out, original[:at]...)
	out = append(out, obj...)
	out = append(out, original[at:]...)
	return out, nil
}
