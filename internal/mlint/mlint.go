// Package mlint is a second, read-only pass over an already-parsed MSON tree,
// looking for structural smells the core itself never flags because they
// are not signature-syntax errors — only awkward once the whole tree is
// visible at once. It is grounded on the teacher's internal/node doctor
// pass (RunDoctor), which performs the same kind of "re-walk a finished tree
// and report codes" audit over a binder tree instead of an MSON one.
package mlint

import (
	"fmt"
	"sort"

	"github.com/blueprint-mson/mson-go/internal/mson"
)

// Code identifies a specific lint rule that was evaluated.
type Code string

const (
	// MixedArrayElementTypes fires when an array's member elements carry
	// more than one distinct explicit (non-undefined) type.
	MixedArrayElementTypes Code = "LINT001"
	// DuplicatePropertyName fires when an object defines the same property
	// name more than once.
	DuplicatePropertyName Code = "LINT002"
	// EmptyTemplatedName fires when a property is marked templated but its
	// name (the part between the `{` `}`) is empty.
	EmptyTemplatedName Code = "LINT003"
)

// Severity classifies the impact level of a Finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one lint result, addressed by a dotted path into the tree
// (property names joined by '.', array indices in brackets) so a caller can
// locate it without needing the original source range.
type Finding struct {
	Code     Code
	Severity Severity
	Message  string
	Path     string
}

// AuditElement walks e and its descendants, reporting findings rooted at
// path (the empty string for a top-level, unnamed element).
func AuditElement(path string, e mson.Element) []Finding {
	var findings []Finding

	if values, err := e.ArrayValue(); err == nil {
		findings = append(findings, auditArrayTypes(path, values)...)
		for i, child := range values {
			findings = append(findings, AuditElement(fmt.Sprintf("%s[%d]", path, i), child)...)
		}
	}

	if properties, err := e.ObjectValue(); err == nil {
		findings = append(findings, auditObjectProperties(path, properties)...)
		for _, p := range properties {
			findings = append(findings, AuditProperty(joinPath(path, p.Name), p)...)
		}
	}

	return findings
}

// AuditProperty is AuditElement's entry point for a named Property: it
// checks the property's own name shape, then delegates into its Element.
func AuditProperty(path string, p mson.Property) []Finding {
	var findings []Finding

	if p.Templated && p.Name == "" {
		findings = append(findings, Finding{
			Code:     EmptyTemplatedName,
			Severity: SeverityWarning,
			Message:  "templated property name is empty",
			Path:     path,
		})
	}

	findings = append(findings, AuditElement(path, p.Element)...)
	return findings
}

// auditArrayTypes reports LINT001 once per array that mixes more than one
// distinct explicit member type. Members left UndefinedDataType (the common
// case for a freshly-inferred array member) never count toward the mix.
func auditArrayTypes(path string, values []mson.Element) []Finding {
	seen := map[mson.DataType]bool{}
	for _, v := range values {
		if v.Type != mson.UndefinedDataType {
			seen[v.Type] = true
		}
	}
	if len(seen) <= 1 {
		return nil
	}

	return []Finding{{
		Code:     MixedArrayElementTypes,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("array has members of %d different explicit types", len(seen)),
		Path:     path,
	}}
}

// auditObjectProperties reports LINT002 for each property name used more
// than once directly within the same object.
func auditObjectProperties(path string, properties []mson.Property) []Finding {
	var findings []Finding
	seen := map[string]bool{}
	reported := map[string]bool{}

	for _, p := range properties {
		if p.Name == "" {
			continue
		}
		if seen[p.Name] && !reported[p.Name] {
			reported[p.Name] = true
			findings = append(findings, Finding{
				Code:     DuplicatePropertyName,
				Severity: SeverityError,
				Message:  fmt.Sprintf("duplicate property name: %s", p.Name),
				Path:     joinPath(path, p.Name),
			})
		}
		seen[p.Name] = true
	}

	return findings
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// Sort orders findings the way the teacher's doctor pass orders
// AuditDiagnostics: errors before warnings, then alphabetically by path
// within each tier.
func Sort(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		si, sj := severityRank(findings[i].Severity), severityRank(findings[j].Severity)
		if si != sj {
			return si < sj
		}
		return findings[i].Path < findings[j].Path
	})
}

func severityRank(s Severity) int {
	if s == SeverityError {
		return 0
	}
	return 1
}
