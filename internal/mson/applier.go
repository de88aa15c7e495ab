package mson

import (
	"fmt"

	"github.com/blueprint-mson/mson-go/internal/diag"
	"github.com/blueprint-mson/mson-go/internal/scpl"
)

// applyElementSignature is ElementSignature::setSignature: it takes a
// parsed Signature and folds its specifiers, values and content into e
// (spec.md §4.2). It is shared by both the Element and Property appliers —
// Property's applier handles name/required/templated first and then
// delegates here for everything else.
func applyElementSignature(node *Node, signature scpl.Signature, report *diag.Report, e *Element) {
	inferredElementType := UndefinedDataType

	if len(signature.Specifiers) > 0 {
		applySpecifiers(node, signature.Specifiers, &inferredElementType, report, e)
	}

	switch {
	case len(signature.Values) > 0:
		if len(signature.Values) > 1 && e.Type != ArrayDataType {
			if e.Type == UndefinedDataType {
				e.Type = ArrayDataType
			} else {
				report.Warn(diag.SignatureSyntaxWarning,
					"mismatched type specifier, assuming 'array'", node.SourceMap)
				e.Type = ArrayDataType
			}
		}

		switch e.Type {
		case ArrayDataType:
			children := make([]Element, 0, len(signature.Values))
			for _, v := range signature.Values {
				child := Element{Type: inferredElementType}
				child.SetStringValue(v)
				children = append(children, child)
			}
			e.SetArrayValue(children)

		case ObjectDataType:
			// An object-typed element can't hold inline scalar values —
			// there is nowhere for them to go, so they are dropped. This
			// warns instead of silently discarding them, per the Open
			// Question decision recorded in DESIGN.md (the original left
			// this branch as a bare TODO/no-op).
			report.Warn(diag.SignatureSyntaxWarning,
				"ignoring value(s) for an object-typed element, expected nested properties", node.SourceMap)

		default: // StringDataType, NumberDataType, BooleanDataType, UndefinedDataType
			e.SetStringValue(signature.Values[0])
		}

	case inferredElementType != UndefinedDataType:
		// Abbreviated array type syntax ("array: number" with no inline
		// values): synthesize a single, typed-but-valueless element so the
		// array's member type is still recorded somewhere.
		e.SetArrayValue([]Element{{Type: inferredElementType}})
	}

	if signature.Content != "" {
		e.Description = signature.Content
	}

	if signature.AdditionalContent != "" {
		if e.Description != "" {
			e.Description += "\n"
		}
		e.Description += signature.AdditionalContent + "\n"
	}
}

// applySpecifiers processes a signature's parenthesized specifiers: each
// one is either a recognized type name (string/number/object/array/bool) —
// including the "array: <type>" nested-type form, captured into
// inferredElementType — or is warned about as unrecognized and leaves the
// type untouched. The first recognized type specifier sets the type; a
// second one warns once, and it and any later ones are ignored
// (spec.md §4.2).
func applySpecifiers(node *Node, specifiers []string, inferredElementType *DataType, report *diag.Report, e *Element) {
	typeSpecifiers := 0

	for _, spec := range specifiers {
		dataType, inferred := DataTypeFromString(spec)
		if dataType == UndefinedDataType {
			report.Warn(diag.SignatureSyntaxWarning,
				fmt.Sprintf("unexpected specifier '%s'", spec), node.SourceMap)
			continue
		}

		typeSpecifiers++
		if typeSpecifiers == 1 {
			e.Type = dataType
			*inferredElementType = inferred
		} else if typeSpecifiers == 2 {
			report.Warn(diag.SignatureSyntaxWarning,
				"too many type specifiers, expected 'string', 'number', 'object', 'array' or 'bool'", node.SourceMap)
		}
	}
}

// applyPropertySignature is PropertySignature::setSignature: it extracts a
// property's name (including the `{templated}` name form) and its
// optional/required specifier from a working copy of the signature, then
// delegates the rest to applyElementSignature (spec.md §4.3).
func applyPropertySignature(node *Node, signature scpl.Signature, report *diag.Report, p *Property) {
	working := signature

	p.Name = working.Identifier
	if len(p.Name) >= 2 && p.Name[0] == '{' && p.Name[len(p.Name)-1] == '}' {
		p.Templated = true
		p.Name = p.Name[1 : len(p.Name)-1]
	}

	if len(working.Specifiers) > 0 {
		requirementSpecifiers := 0
		kept := working.Specifiers[:0:0]

		for _, spec := range working.Specifiers {
			switch spec {
			case "optional":
				p.Required = false
				requirementSpecifiers++
			case "required":
				p.Required = true
				requirementSpecifiers++
			default:
				kept = append(kept, spec)
			}

			if requirementSpecifiers > 1 {
				requirementSpecifiers = 1
				report.Warn(diag.SignatureSyntaxWarning,
					"too many requirement specifiers, expected 'optional' or 'required'", node.SourceMap)
			}
		}

		working.Specifiers = kept
	}

	applyElementSignature(node, working, report, &p.Element)
}
