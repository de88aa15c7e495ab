// Package mson implements the MSON core: the typed Element/Property data
// model (§3), the signature-to-element applier (§4.2–§4.3), and the
// mutually recursive section processors that turn a Markdown list-item tree
// into that model (§4.4–§4.9). It consumes Markdown nodes through the Node
// type below rather than a concrete Markdown AST package, matching spec.md
// §1's treatment of the Markdown AST builder as an external collaborator —
// internal/mdblock is the one concrete builder shipped in this repository,
// but any type satisfying the same shape (exported fields, no methods
// required) can feed the core.
package mson

import "github.com/blueprint-mson/mson-go/internal/rangeconv"

// NodeType distinguishes the Markdown block kinds the core cares about. A
// full Markdown AST has many more block types (headings, code fences,
// tables, ...); the core only ever asks whether a node is a list item.
// Besides ListItemNodeType, only ParagraphNodeType (below) is represented,
// marking description blocks; the core treats it like any other non-list node.
type NodeType int

const (
	// UndefinedNodeType is any Markdown node the core does not recognize
	// as a list item (paragraphs, headings, thematic breaks, ...).
	UndefinedNodeType NodeType = iota
	// ListItemNodeType is a single "- ..." / "1. ..." list item.
	ListItemNodeType
)

// ParagraphNodeType is a plain block of prose: additional description text
// that follows a list item's own signature line but precedes any nested
// list. The original Markdown AST this was distilled from represents a list
// item's own first line as a synthetic leading paragraph child instead of a
// direct field; internal/mdblock collapses that indirection by giving a
// list item its own Text directly and reserving ParagraphNodeType for the
// description paragraphs that come after it. classifySection (section.go)
// relies on this distinction to separate "no description, go straight to
// nested items" from "a paragraph of prose sits before the nested items".
const ParagraphNodeType NodeType = iota + 2

// Node is the external Markdown AST node contract from spec.md §6: a type,
// its own raw text (first line plus any continuation lines belonging
// directly to it, not to a nested list), its source byte range, and its
// ordered child nodes. For a ListItemNodeType node, Children holds whatever
// block content follows the signature line: zero or more ParagraphNodeType
// description blocks, then zero or more nested ListItemNodeType entries.
type Node struct {
	Type      NodeType
	Text      string
	SourceMap []rangeconv.ByteRange
	Children  []*Node

	// RawText is node's own reconstructed source text (its line, with its
	// list marker restored if it is a list item, followed by its own
	// continuation lines; nested list items are not included). It is used only as the literal content folded into
	// a description when a child doesn't resolve to any recognized
	// section — the Go equivalent of mdp::MapBytesRangeSet(node->sourceMap,
	// pd.sourceData) in the original, which re-reads raw source bytes for
	// the same purpose. internal/mdblock populates it at build time so the
	// core never needs the original source buffer in hand.
	RawText string
}

// Nodes is an ordered, read-only sibling list. The section processors in
// this package do not take it: each receives a single *Node and ranges over
// its Children slice, rather than using a mutable iterator (spec.md §9's
// note on "short-read iterator" tricks).
type Nodes []*Node

// IsListItem reports whether node is a list item at all, the precondition
// every section-type check starts from (spec.md §4.4). Unlike the original
// Markdown AST, a childless list item is still a perfectly valid leaf
// property or element here — Children being empty just means "no nested
// section", not "malformed node".
func (n *Node) IsListItem() bool {
	return n != nil && n.Type == ListItemNodeType
}
