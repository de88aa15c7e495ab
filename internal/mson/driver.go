// Package mson's driver.go implements the generic SectionParser described
// in spec.md §4.8-§4.9: given a node already identified as an element,
// property, or keyword-marker collection, walk its children once,
// classifying each as a nested section, a description, or — inside a
// strict Elements/Properties collection — unexpected content to ignore.
package mson

import (
	"fmt"

	"github.com/blueprint-mson/mson-go/internal/diag"
	"github.com/blueprint-mson/mson-go/internal/scpl"
)

func elementTraits() scpl.Traits {
	return scpl.Traits{
		Value:             true,
		Array:             true,
		Specifier:         true,
		Content:           true,
		ContentDelimiter:  "-",
		MaxSpecifierCount: 1,
	}
}

func propertyTraits() scpl.Traits {
	t := scpl.DefaultTraits()
	t.Array = true
	return t
}

// ParseElement turns node — already classified as MSONElementSectionType —
// into an Element: its own signature line, then whatever its children
// resolve to (spec.md §4.5).
func ParseElement(node *Node) (Element, diag.Report) {
	var report diag.Report
	var e Element

	signature := scpl.Parse(node.Text, node.SourceMap, elementTraits(), &report)
	applyElementSignature(node, signature, &report, &e)
	processNestedChildren(node, &report, &e)

	return e, report
}

// ParseProperty turns node — already classified as MSONPropertySectionType
// — into a Property (spec.md §4.6).
func ParseProperty(node *Node) (Property, diag.Report) {
	var report diag.Report
	var p Property

	signature := scpl.Parse(node.Text, node.SourceMap, propertyTraits(), &report)
	applyPropertySignature(node, signature, &report, &p)
	processNestedChildren(node, &report, &p.Element)

	return p, report
}

// ParseElements turns marker — a node already classified as
// MSONElementsSectionType, i.e. a list item whose own line is the literal
// `Elements` keyword — into the ordered list of Elements its children
// describe (spec.md §4.7). Unlike ParseElement/ParseProperty, a marker
// collection has no description and no type of its own: every child must
// itself be an element, or it is ignored with a warning.
func ParseElements(marker *Node) ([]Element, diag.Report) {
	var report diag.Report
	var elements []Element

	for _, child := range marker.Children {
		if classifyMarker(child) != UndefinedSectionType {
			// A nested keyword marker directly inside an Elements
			// collection has no meaning of its own; spec.md's own
			// processors never emit this, so it is reported the same way
			// as any other unrecognized child.
			report.Warn(diag.IgnoringWarning, "ignoring unrecognized block", child.SourceMap)
			continue
		}

		if !child.IsListItem() {
			report.Warn(diag.IgnoringWarning, "ignoring unrecognized block", child.SourceMap)
			continue
		}

		e, sub := ParseElement(child)
		report.Warnings = append(report.Warnings, sub.Warnings...)
		elements = append(elements, e)
	}

	return elements, report
}

// ParseProperties is ParseElements's mirror for a `Properties` marker node
// (spec.md §4.7).
func ParseProperties(marker *Node) ([]Property, diag.Report) {
	var report diag.Report
	var properties []Property

	for _, child := range marker.Children {
		if classifyMarker(child) != UndefinedSectionType || !child.IsListItem() {
			report.Warn(diag.IgnoringWarning, "ignoring unrecognized block", child.SourceMap)
			continue
		}

		p, sub := ParseProperty(child)
		report.Warnings = append(report.Warnings, sub.Warnings...)
		properties = append(properties, p)
	}

	return properties, report
}

// processNestedChildren walks node's children, classifying each one and
// folding the result into out. Unrecognized children are folded into out's
// description instead of being dropped, matching the base section
// processor's default description-accumulation behavior for
// MSONElement/MSONProperty (spec.md §4.5, §4.8).
//
// Properties are expected by default; only an element/property already
// known to be array-typed (from its own signature specifiers, applied
// before this call) expects anonymous elements instead
// (nestedSectionType's "expectProperty = context.type != ArrayDataType").
func processNestedChildren(node *Node, report *diag.Report, out *Element) {
	children := node.Children
	if len(children) == 0 {
		return
	}

	expectProperty := out.Type != ArrayDataType

	// The first child anchors a one-time decision for the whole node:
	// does content begin immediately with nested elements/properties, or
	// does a paragraph of description come first? Every later child is
	// judged against that same decision, not against its own immediate
	// neighbor — see DESIGN.md for why this departs from the position-
	// relative "second sibling" phrasing in spec.md §4.5.
	hasDescriptionNodes := classifySection(children[0], expectProperty) == UndefinedSectionType

	sawPropertyKind := false

	for _, child := range children {
		var sec SectionType
		if hasDescriptionNodes {
			sec = classifyMarker(child)
		} else {
			sec = classifySection(child, expectProperty)
		}

		switch sec {
		case MSONElementSectionType:
			e, sub := ParseElement(child)
			report.Warnings = append(report.Warnings, sub.Warnings...)
			out.AppendArrayElement(e)

		case MSONPropertySectionType:
			p, sub := ParseProperty(child)
			report.Warnings = append(report.Warnings, sub.Warnings...)
			out.AppendObjectProperty(p)
			sawPropertyKind = true

		case MSONElementsSectionType:
			elements, sub := ParseElements(child)
			report.Warnings = append(report.Warnings, sub.Warnings...)
			out.SetArrayValue(elements)

		case MSONPropertiesSectionType:
			properties, sub := ParseProperties(child)
			report.Warnings = append(report.Warnings, sub.Warnings...)
			out.SetObjectValue(properties)
			sawPropertyKind = true

		default:
			appendDescription(out, describeNode(child))
		}
	}

	if sawPropertyKind && out.Type != ObjectDataType {
		if out.Type != UndefinedDataType {
			report.Warn(diag.SignatureSyntaxWarning,
				fmt.Sprintf("unexpected property for parent of '%s', assuming 'object' instead", out.Type), node.SourceMap)
		}
		out.Type = ObjectDataType
	}
}

// appendDescription folds text into out.Description: one "\n" separates it
// from whatever was already there, and a trailing "\n" always follows it, so
// two texts appended this way end up separated by a blank line (TwoNewLines
// in the original).
func appendDescription(out *Element, text string) {
	if out.Description != "" {
		out.Description += "\n"
	}
	out.Description += text + "\n"
}

// describeNode reconstructs the literal text folded into a description for
// a child that resolved to no recognized section: a list item gets its
// bullet marker back, a plain paragraph is used as-is.
func describeNode(n *Node) string {
	if n.IsListItem() {
		if n.RawText != "" {
			return n.RawText
		}
		return "- " + n.Text
	}
	return n.Text
}
