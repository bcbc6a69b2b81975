package lacuna

import (
	"fmt"
	"strings"
)

// WarningType identifies the kind of non-fatal anomaly a run encountered.
type WarningType int

const (
	// WarnDuplicateObject means the target object number is declared more
	// than once in the file; only the first declaration was used.
	WarnDuplicateObject WarningType = iota
	// WarnLengthMismatch means the object's declared /Length does not equal
	// the actual number of bytes between its stream markers.
	WarnLengthMismatch
	// WarnValidation means the optional output validation pass reported a
	// problem with the spliced PDF.
	WarnValidation
)

// String returns the string representation of the warning type.
func (t WarningType) String() string {
	switch t {
	case WarnDuplicateObject:
		return "duplicate object"
	case WarnLengthMismatch:
		return "length mismatch"
	case WarnValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal anomaly. Warnings never abort a run; they
// indicate the result may be fragile (e.g., an ambiguous file shape) and are
// returned beside it for the caller to surface.
type Warning struct {
	Type    WarningType
	Message string
}

// String renders the warning as "type: message".
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Type, w.Message)
}

// FormatWarnings renders a warning list as a single semicolon-separated
// string, for callers that log rather than inspect them.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
