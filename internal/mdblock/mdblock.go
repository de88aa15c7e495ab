// Package mdblock is the one concrete Markdown AST builder shipped in this
// repository (spec.md §1, §6): it turns raw Markdown source into the
// mson.Node tree the core's section processors walk. It knows nothing about
// MSON semantics — only about list-item indentation, which the core reads
// back out through mson.Node's Type/Text/Children contract.
//
// The scan is the same two ideas internal/binder's block parser uses to
// build its own node tree: a single compiled regex recognizes a list-item
// line's marker and indent, and an indent stack decides each new item's
// parent by popping back to the nearest shallower still-open item.
// Generalized here: items are nested into true Children (not a flat node
// list with parent pointers), and a run of non-list-item prose lines between
// two list items becomes its own mson.ParagraphNodeType sibling rather than
// being merged into whichever item happens to precede it.
package mdblock

import (
	"regexp"
	"strings"

	"github.com/blueprint-mson/mson-go/internal/mson"
	"github.com/blueprint-mson/mson-go/internal/rangeconv"
)

var listItemRE = regexp.MustCompile(`^(\s*)([-*+]|\d+[.)])[ \t]+(.*)$`)

// stackEntry pairs an open list item with the indent of its own marker, so a
// later line's indent can be compared against it to find the right parent
// (eykd-prosemark-go/internal/binder/parser.go's Pass 2 stack).
type stackEntry struct {
	indent int
	node   *mson.Node
}

// line is one source line together with the byte offset its first character
// starts at, so nodes can carry a SourceMap without rescanning the source.
type line struct {
	text   string
	offset int
}

// Build scans source and returns its top-level Markdown nodes: a document's
// outermost list items and description paragraphs, in source order. Each
// returned *mson.Node is ready to hand to mson.ParseElement/ParseProperty,
// or — for a bare `Elements`/`Properties` marker at the top level — to
// mson.ParseElements/ParseProperties.
func Build(source string) []*mson.Node {
	lines := splitLines(source)

	var root []*mson.Node
	stack := []stackEntry{{indent: -1, node: nil}}

	appendChild := func(parent *mson.Node, child *mson.Node) {
		if parent == nil {
			root = append(root, child)
			return
		}
		parent.Children = append(parent.Children, child)
	}

	i := 0
	for i < len(lines) {
		if strings.TrimSpace(lines[i].text) == "" {
			i++
			continue
		}

		if m := listItemRE.FindStringSubmatch(lines[i].text); m != nil {
			indent := len(m[1])

			for len(stack) > 1 && stack[len(stack)-1].indent >= indent {
				stack = stack[:len(stack)-1]
			}
			parent := stack[len(stack)-1].node

			firstLineText := m[3]
			markerWidth := len(lines[i].text) - len(m[1]) - len(firstLineText)

			textLines := []string{firstLineText}
			startOffset := lines[i].offset
			endOffset := lines[i].offset + len(lines[i].text)

			contentIndent := len(m[1]) + markerWidth
			j := i + 1
			for j < len(lines) {
				if strings.TrimSpace(lines[j].text) == "" {
					break
				}
				if listItemRE.MatchString(lines[j].text) {
					break
				}
				if leadingSpace(lines[j].text) < contentIndent {
					break
				}
				cont := lines[j].text[min(contentIndent, len(lines[j].text)):]
				textLines = append(textLines, cont)
				endOffset = lines[j].offset + len(lines[j].text)
				j++
			}

			node := &mson.Node{
				Type: mson.ListItemNodeType,
				Text: strings.Join(textLines, "\n"),
				SourceMap: []rangeconv.ByteRange{
					{Location: startOffset, Length: endOffset - startOffset},
				},
				RawText: m[2] + " " + strings.Join(textLines, "\n"),
			}

			appendChild(parent, node)
			stack = append(stack, stackEntry{indent: indent, node: node})

			i = j
			continue
		}

		// A non-list-item line: gather the contiguous prose block it starts
		// (up to the next blank line or list item) into one paragraph node,
		// parented the same way a list item at this indent would be.
		indent := leadingSpace(lines[i].text)
		for len(stack) > 1 && stack[len(stack)-1].indent >= indent {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node

		var paraLines []string
		startOffset := lines[i].offset
		endOffset := startOffset
		j := i
		for j < len(lines) {
			if strings.TrimSpace(lines[j].text) == "" {
				break
			}
			if listItemRE.MatchString(lines[j].text) {
				break
			}
			paraLines = append(paraLines, strings.TrimSpace(lines[j].text))
			endOffset = lines[j].offset + len(lines[j].text)
			j++
		}

		node := &mson.Node{
			Type: mson.ParagraphNodeType,
			Text: strings.Join(paraLines, "\n"),
			SourceMap: []rangeconv.ByteRange{
				{Location: startOffset, Length: endOffset - startOffset},
			},
		}
		appendChild(parent, node)

		i = j
	}

	return root
}

// leadingSpace counts s's leading space/tab bytes, treating a tab as one
// column — list-item indentation in practice is space-based, and this only
// needs to be consistent with itself across a document, not a precise
// tab-stop model.
func leadingSpace(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// splitLines breaks source into lines, recording each line's starting byte
// offset (newline stripped) so nodes can carry accurate SourceMap ranges.
func splitLines(source string) []line {
	var out []line
	offset := 0
	for len(source) > 0 {
		idx := strings.IndexByte(source, '\n')
		if idx < 0 {
			out = append(out, line{text: strings.TrimSuffix(source, "\r"), offset: offset})
			break
		}
		text := source[:idx]
		text = strings.TrimSuffix(text, "\r")
		out = append(out, line{text: text, offset: offset})
		offset += idx + 1
		source = source[idx+1:]
	}
	return out
}
