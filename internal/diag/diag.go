// Package diag defines the shared, append-only diagnostic report both the
// signature parser (scpl) and the section processors (mson) write warnings
// into (spec.md §6-§7). Diagnostics never abort parsing: a Report is filled
// in alongside a best-effort result tree, never instead of one.
package diag

import "github.com/blueprint-mson/mson-go/internal/rangeconv"

// Kind classifies a Warning the way spec.md §7 does.
type Kind int

const (
	// SignatureSyntaxWarning covers every malformed-signature diagnostic:
	// missing identifier, missing value, too many specifiers, mismatched
	// escape sequences, unexpected trailing content, and so on.
	SignatureSyntaxWarning Kind = iota
	// IgnoringWarning covers unrecognized Markdown content at the section
	// level that the parser chose to skip over.
	IgnoringWarning
)

func (k Kind) String() string {
	switch k {
	case SignatureSyntaxWarning:
		return "SignatureSyntaxWarning"
	case IgnoringWarning:
		return "IgnoringWarning"
	default:
		return "UnknownWarning"
	}
}

// Warning is one diagnostic: a human message, its kind, and the source
// byte range it refers to (converted to character ranges only at the point
// a caller needs to display them — see internal/rangeconv).
type Warning struct {
	Message string
	Kind    Kind
	Ranges  []rangeconv.ByteRange
}

// Report accumulates warnings in emission order, which mirrors a
// left-to-right, depth-first walk of the input (spec.md §5). Parsing never
// raises through Report; it is purely an output sink.
type Report struct {
	Warnings []Warning
}

// Warn appends a warning to the report.
func (r *Report) Warn(kind Kind, message string, ranges []rangeconv.ByteRange) {
	r.Warnings = append(r.Warnings, Warning{Message: message, Kind: kind, Ranges: ranges})
}
