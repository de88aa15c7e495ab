// Package scpl parses the signature line of a Markdown list item — the
// "- identifier: value1, value2 (specifier1, specifier2) - content" grammar
// MSON elements and properties share (spec.md §4.1). It knows nothing about
// MSON's Element/Property model; it only knows how to pull an identifier,
// values, specifiers and content out of a line of text, strictly in that
// order, and warn (never fail) when a stage doesn't match.
package scpl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/blueprint-mson/mson-go/internal/diag"
	"github.com/blueprint-mson/mson-go/internal/mtext"
	"github.com/blueprint-mson/mson-go/internal/rangeconv"
)

// Signature is the raw, untyped result of parsing one list item's signature
// line: an identifier, comma-separated values, parenthesized specifiers, a
// content string introduced by the traits' content delimiter, and whatever
// text followed the signature's own first line (additionalContent).
type Signature struct {
	Identifier        string
	Values            []string
	Specifiers        []string
	Content           string
	AdditionalContent string
}

// Trait is one bit of a signature's expected shape.
type Trait uint

const (
	// TraitIdentifier requires the signature to open with an identifier.
	TraitIdentifier Trait = 1 << iota
	// TraitValue allows a ": value[, value...]" clause.
	TraitValue
	// TraitArray allows a run of more than one backtick-escaped value
	// (otherwise only the first escaped value is read). An unescaped
	// comma-separated list is split into several values either way.
	TraitArray
	// TraitSpecifier allows a parenthesized "(specifier, ...)" clause.
	TraitSpecifier
	// TraitContent allows a content-delimiter-introduced description.
	TraitContent
)

// Traits describes the shape a signature line is expected to have. It is
// the Go rendering of scpl::SignatureTraits: a plain immutable value passed
// into Parse, rather than snowcrash's process-wide default-traits
// singleton (spec.md §9 calls out replacing globals like this with
// explicit, passed-in configuration).
type Traits struct {
	Identifier        bool
	Value             bool
	Array             bool
	Specifier         bool
	Content           bool
	ContentDelimiter  string
	MaxSpecifierCount int
}

// DefaultTraits mirrors scpl::SignatureTraits's default constructor:
// identifier + value + specifier + content, content delimited by "-", and a
// MaxSpecifierCount of 2, which only shapes the wording of the
// unexpected-content warning (Parse accepts any number of specifiers).
func DefaultTraits() Traits {
	return Traits{
		Identifier:        true,
		Value:             true,
		Specifier:         true,
		Content:           true,
		ContentDelimiter:  "-",
		MaxSpecifierCount: 2,
	}
}

const (
	valueDelim      = ':'
	csvDelim        = ','
	specifiersDelim = '('
	escapeChar      = '`'
)

var specifiersRE = regexp.MustCompile(`^\(([^)]+)\)`)

// Parse runs the seven-stage signature algorithm against line (the node's
// own text: the signature is read from its first line, and any further
// lines come back as AdditionalContent; ranges is the node's source byte
// range, used only to
// anchor any warnings that stage emits). Nothing here is ever fatal: a
// malformed signature simply comes back partially empty, with a warning
// recorded in report.
func Parse(line string, ranges []rangeconv.ByteRange, t Traits, report *diag.Report) Signature {
	var s Signature
	var work string
	work, s.AdditionalContent = splitFirstLine(line)

	if t.Identifier {
		values, matchSize := retrieveValues(work, t, ranges, report)
		if len(values) > 0 {
			s.Identifier = values[0]
		}

		work = mtext.TrimStart(work[matchSize:])

		if s.Identifier == "" {
			warnMissingIdentifier(ranges, report)
		}
	}

	if t.Value {
		if !t.Identifier || (len(work) > 0 && work[0] == valueDelim) {
			if t.Identifier {
				work = mtext.TrimStart(work[1:])
			}

			values, matchSize := retrieveValues(work, t, ranges, report)
			s.Values = values

			work = mtext.TrimStart(work[matchSize:])

			if t.Identifier && len(s.Values) == 0 {
				warnMissingValue(ranges, report)
			}
		}
	}

	if t.Specifier {
		if len(work) > 0 && work[0] == specifiersDelim {
			if m := specifiersRE.FindStringSubmatch(work); len(m) == 2 {
				for _, spec := range mtext.Split(m[1], csvDelim) {
					s.Specifiers = append(s.Specifiers, mtext.Trim(spec))
				}
				work = mtext.TrimStart(work[len(m[0]):])
			}
		}
	}

	if !t.Identifier && len(s.Values) == 0 && len(s.Specifiers) == 0 {
		warnMissingElementDefinition(ranges, report)
	}

	if t.Content {
		if strings.HasPrefix(work, t.ContentDelimiter) {
			s.Content = mtext.TrimStart(work[len(t.ContentDelimiter):])
			work = ""
		}
	}

	if work != "" {
		warnUnexpectedContent(work, t, ranges, report)
	}

	return s
}

// splitFirstLine mirrors GetFirstLine(node->text, s.additionalContent):
// the signature itself is parsed only from the first line; any further
// lines of the node's own text become additionalContent, untouched by the
// signature grammar.
func splitFirstLine(text string) (line, additionalContent string) {
	return mtext.GetFirstLine(text)
}

// retrieveValues is scpl::SignatureParser::RetrieveValues: it reads either
// one or more backtick-escaped values, or a plain comma-separated run up to
// the next value/specifier/content delimiter, and returns the values found
// plus how many bytes of subject were consumed. Unlike the C++ original
// this never reaches an unconditional trailing `return 0` after the
// if/else — every path returns from inside the branch that produced it,
// per the Open Question decision recorded in DESIGN.md.
func retrieveValues(subject string, t Traits, ranges []rangeconv.ByteRange, report *diag.Report) (values []string, consumed int) {
	if len(subject) > 0 && subject[0] == escapeChar {
		work := subject
		length := 0

		for {
			work = work[1:]
			length++

			pos := strings.IndexByte(work, escapeChar)
			if pos < 0 {
				warnMismatchedEscapeSequence(work, ranges, report)
				break
			}

			values = append(values, work[:pos])
			work = work[pos+1:]
			length += pos + 1

			if i := strings.IndexFunc(work, func(r rune) bool { return !isEscapeCSVDelim(byte(r)) }); i >= 0 {
				work = work[i:]
				length += i
			} else {
				length += len(work)
				work = ""
			}

			if !(t.Array && len(work) > 0 && work[0] == escapeChar) {
				break
			}
		}

		return values, length
	}

	delims := string([]byte{valueDelim, specifiersDelim}) + t.ContentDelimiter
	pos := strings.IndexAny(subject, delims)
	if pos < 0 {
		pos = len(subject)
	}
	work := subject[:pos]

	// strings.Split("", ",") yields one empty element; getline over an empty
	// stream (what the original splits with) yields none, so an empty work
	// here must produce zero values rather than one blank one.
	if work != "" {
		for _, v := range mtext.Split(work, csvDelim) {
			values = append(values, mtext.Trim(v))
		}
	}

	return values, len(work)
}

func isEscapeCSVDelim(b byte) bool {
	return b == ',' || b == ' ' || b == '\t'
}

func warnMissingElementDefinition(ranges []rangeconv.ByteRange, report *diag.Report) {
	report.Warn(diag.SignatureSyntaxWarning,
		"missing element value or trait(s), 'expected '<value> (<traits>)'", ranges)
}

func warnMissingIdentifier(ranges []rangeconv.ByteRange, report *diag.Report) {
	report.Warn(diag.SignatureSyntaxWarning, "missing expected identifier", ranges)
}

func warnMissingValue(ranges []rangeconv.ByteRange, report *diag.Report) {
	report.Warn(diag.SignatureSyntaxWarning,
		"missing value after ':', expected '<identifier>: <value>'", ranges)
}

func warnMismatchedEscapeSequence(work string, ranges []rangeconv.ByteRange, report *diag.Report) {
	report.Warn(diag.SignatureSyntaxWarning,
		fmt.Sprintf("mismatched escape sequence – missing closing '`' in '%s'", work), ranges)
}

func warnUnexpectedContent(work string, t Traits, ranges []rangeconv.ByteRange, report *diag.Report) {
	var b strings.Builder
	fmt.Fprintf(&b, "ignoring '%s', expected '", work)

	if t.Identifier {
		b.WriteString("<identifier>")
		if t.Value {
			b.WriteByte(':')
		}
	}

	if t.Value {
		if t.Identifier {
			b.WriteByte(' ')
		}
		b.WriteString("<value>")
	}

	if t.Specifier {
		b.WriteString(" (")
		for i := 0; i < t.MaxSpecifierCount; i++ {
			fmt.Fprintf(&b, "<t%d>", i+1)
			if i < t.MaxSpecifierCount-1 {
				b.WriteString(", ")
			}
		}
		b.WriteByte(')')
	}

	if t.Content {
		fmt.Fprintf(&b, " %s <content>", t.ContentDelimiter)
	}

	b.WriteByte('\'')

	report.Warn(diag.SignatureSyntaxWarning, b.String(), ranges)
}
