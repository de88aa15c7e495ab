package scpl_test

import (
	"testing"

	"github.com/blueprint-mson/mson-go/internal/diag"
	"github.com/blueprint-mson/mson-go/internal/scpl"
)

func elementTraits() scpl.Traits {
	t := scpl.DefaultTraits()
	t.Identifier = false
	t.Array = true
	return t
}

func TestParse_PropertySignature(t *testing.T) {
	var r diag.Report
	s := scpl.Parse("id: 42 (yes, no) - a good message", nil, scpl.DefaultTraits(), &r)

	if len(r.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", r.Warnings)
	}
	if s.AdditionalContent != "" {
		t.Errorf("AdditionalContent = %q, want empty", s.AdditionalContent)
	}
	if s.Identifier != "id" {
		t.Errorf("Identifier = %q, want id", s.Identifier)
	}
	if len(s.Values) != 1 || s.Values[0] != "42" {
		t.Errorf("Values = %v, want [42]", s.Values)
	}
	if len(s.Specifiers) != 2 || s.Specifiers[0] != "yes" || s.Specifiers[1] != "no" {
		t.Errorf("Specifiers = %v, want [yes no]", s.Specifiers)
	}
	if s.Content != "a good message" {
		t.Errorf("Content = %q, want %q", s.Content, "a good message")
	}
}

func TestParse_EscapedPropertySignature(t *testing.T) {
	var r diag.Report
	s := scpl.Parse("`*id*(data):3`: `42` (yes, no) - a good message", nil, scpl.DefaultTraits(), &r)

	if len(r.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", r.Warnings)
	}
	if s.Identifier != "*id*(data):3" {
		t.Errorf("Identifier = %q, want %q", s.Identifier, "*id*(data):3")
	}
	if len(s.Values) != 1 || s.Values[0] != "42" {
		t.Errorf("Values = %v, want [42]", s.Values)
	}
	if s.Content != "a good message" {
		t.Errorf("Content = %q, want %q", s.Content, "a good message")
	}
}

func TestParse_MultilineSignature(t *testing.T) {
	var r diag.Report
	s := scpl.Parse("id\nLine 2\nLine 3\n", nil, scpl.DefaultTraits(), &r)

	if len(r.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", r.Warnings)
	}
	if s.AdditionalContent != "Line 2\nLine 3\n" {
		t.Errorf("AdditionalContent = %q", s.AdditionalContent)
	}
	if s.Identifier != "id" {
		t.Errorf("Identifier = %q, want id", s.Identifier)
	}
	if len(s.Values) != 0 || len(s.Specifiers) != 0 || s.Content != "" {
		t.Errorf("expected only identifier to be set, got %+v", s)
	}
}

func TestParse_IdentifierOnlySignature(t *testing.T) {
	var r diag.Report
	s := scpl.Parse("id", nil, scpl.DefaultTraits(), &r)

	if len(r.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", r.Warnings)
	}
	if s.Identifier != "id" || len(s.Values) != 0 || len(s.Specifiers) != 0 || s.Content != "" {
		t.Errorf("got %+v", s)
	}
}

func TestParse_IdentifierDescriptionSignature(t *testing.T) {
	var r diag.Report
	s := scpl.Parse("id - a good - info", nil, scpl.DefaultTraits(), &r)

	if len(r.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", r.Warnings)
	}
	if s.Identifier != "id" {
		t.Errorf("Identifier = %q, want id", s.Identifier)
	}
	if s.Content != "a good - info" {
		t.Errorf("Content = %q, want %q", s.Content, "a good - info")
	}
}

func TestParse_IdentifierValueSignature(t *testing.T) {
	var r diag.Report
	s := scpl.Parse("id : a good data", nil, scpl.DefaultTraits(), &r)

	if len(r.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", r.Warnings)
	}
	if s.Identifier != "id" {
		t.Errorf("Identifier = %q, want id", s.Identifier)
	}
	if len(s.Values) != 1 || s.Values[0] != "a good data" {
		t.Errorf("Values = %v, want [a good data]", s.Values)
	}
}

func TestParse_IdentifierTraitsSignature(t *testing.T) {
	var r diag.Report
	s := scpl.Parse("id (number)", nil, scpl.DefaultTraits(), &r)

	if len(r.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", r.Warnings)
	}
	if s.Identifier != "id" {
		t.Errorf("Identifier = %q, want id", s.Identifier)
	}
	if len(s.Specifiers) != 1 || s.Specifiers[0] != "number" {
		t.Errorf("Specifiers = %v, want [number]", s.Specifiers)
	}
}

func TestParse_ElementSignature(t *testing.T) {
	var r diag.Report
	s := scpl.Parse("42 (number) - a good number", nil, elementTraits(), &r)

	if len(r.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", r.Warnings)
	}
	if s.Identifier != "" {
		t.Errorf("Identifier = %q, want empty", s.Identifier)
	}
	if len(s.Values) != 1 || s.Values[0] != "42" {
		t.Errorf("Values = %v, want [42]", s.Values)
	}
	if len(s.Specifiers) != 1 || s.Specifiers[0] != "number" {
		t.Errorf("Specifiers = %v, want [number]", s.Specifiers)
	}
	if s.Content != "a good number" {
		t.Errorf("Content = %q, want %q", s.Content, "a good number")
	}
}

func TestParse_EscapedElementSignature(t *testing.T) {
	var r diag.Report
	s := scpl.Parse("`*42*(data):3` (number) - a good number", nil, elementTraits(), &r)

	if len(r.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", r.Warnings)
	}
	if len(s.Values) != 1 || s.Values[0] != "*42*(data):3" {
		t.Errorf("Values = %v, want [*42*(data):3]", s.Values)
	}
}

func TestParse_ElementValueOnlySignature(t *testing.T) {
	var r diag.Report
	s := scpl.Parse("42", nil, elementTraits(), &r)

	if len(r.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", r.Warnings)
	}
	if len(s.Values) != 1 || s.Values[0] != "42" {
		t.Errorf("Values = %v, want [42]", s.Values)
	}
}

func TestParse_ElementTraitsOnlySignature(t *testing.T) {
	var r diag.Report
	s := scpl.Parse("(number)", nil, elementTraits(), &r)

	if len(r.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", r.Warnings)
	}
	if len(s.Values) != 0 {
		t.Errorf("Values = %v, want empty", s.Values)
	}
	if len(s.Specifiers) != 1 || s.Specifiers[0] != "number" {
		t.Errorf("Specifiers = %v, want [number]", s.Specifiers)
	}
}

func TestParse_ArrayValues(t *testing.T) {
	var r diag.Report
	s := scpl.Parse("tags: home, green (required)", nil, scpl.DefaultTraits(), &r)

	if len(s.Values) != 2 || s.Values[0] != "home" || s.Values[1] != "green" {
		t.Errorf("Values = %v, want [home green]", s.Values)
	}
	if len(s.Specifiers) != 1 || s.Specifiers[0] != "required" {
		t.Errorf("Specifiers = %v, want [required]", s.Specifiers)
	}
}

func TestParse_MissingIdentifierWarns(t *testing.T) {
	var r diag.Report
	scpl.Parse(": 42", nil, scpl.DefaultTraits(), &r)

	if len(r.Warnings) != 1 || r.Warnings[0].Kind != diag.SignatureSyntaxWarning {
		t.Fatalf("got %+v, want a single SignatureSyntaxWarning", r.Warnings)
	}
}

func TestParse_EscapedArrayValues(t *testing.T) {
	traits := scpl.DefaultTraits()
	traits.Array = true

	var r diag.Report
	s := scpl.Parse("tags: `a`, `b`, `c` (required)", nil, traits, &r)

	if len(r.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", r.Warnings)
	}
	if len(s.Values) != 3 || s.Values[0] != "a" || s.Values[1] != "b" || s.Values[2] != "c" {
		t.Errorf("Values = %v, want [a b c]", s.Values)
	}
}

func TestParse_UnclosedEscapeWarns(t *testing.T) {
	var r diag.Report
	scpl.Parse("tags: `a, b (required)", nil, scpl.DefaultTraits(), &r)

	found := false
	for _, w := range r.Warnings {
		if w.Kind == diag.SignatureSyntaxWarning {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a SignatureSyntaxWarning for the unclosed escape sequence, got %+v", r.Warnings)
	}
}
