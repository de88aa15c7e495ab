// Package rangeconv converts byte offsets recorded by the Markdown AST builder
// into character (rune) offsets suitable for reporting to a human or an
// editor. It is the concrete form of the
// bytes_range_set_to_characters_range_set collaborator named in spec.md §6:
// a small, self-contained utility that the core depends on for diagnostics,
// but which carries none of the MSON parsing logic itself.
package rangeconv

import "unicode/utf8"

// ByteRange is a contiguous run of bytes in the source document, identified
// by its starting byte offset and length in bytes.
type ByteRange struct {
	Location int
	Length   int
}

// CharacterRange is the rune-counted equivalent of a ByteRange: the same run
// of source text, addressed in characters rather than bytes, so it survives
// multi-byte UTF-8 content without splitting a rune in half.
type CharacterRange struct {
	Location int
	Length   int
}

// BytesRangeSetToCharactersRangeSet converts an ordered set of byte ranges
// into character ranges against source. Ranges are assumed sorted and
// non-overlapping, matching how a Markdown AST builder records source maps.
func BytesRangeSetToCharactersRangeSet(byteRanges []ByteRange, source string) []CharacterRange {
	if len(byteRanges) == 0 {
		return nil
	}

	out := make([]CharacterRange, 0, len(byteRanges))
	prevByte, prevChar := 0, 0

	for _, br := range byteRanges {
		start := prevChar + utf8.RuneCountInString(clampSlice(source, prevByte, br.Location))
		end := br.Location + br.Length
		length := utf8.RuneCountInString(clampSlice(source, br.Location, end))

		out = append(out, CharacterRange{Location: start, Length: length})

		prevByte = end
		prevChar = start + length
	}

	return out
}

// clampSlice returns source[from:to], clamping both bounds to the valid
// range of the string so a warning's byte range can never panic the
// converter even if it slightly overruns the source (e.g. trailing newline
// accounting differences between a node's reported range and the raw file).
func clampSlice(source string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(source) {
		to = len(source)
	}
	if from > to {
		return ""
	}
	return source[from:to]
}
