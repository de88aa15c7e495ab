package mson

import "regexp"

// SectionType names what kind of MSON construct a list item represents,
// trimmed down from the API Blueprint SectionType enum (Section.h) to only
// the five variants MSON parsing ever produces (spec.md §5).
type SectionType int

const (
	// UndefinedSectionType means a node is not recognizable as any of the
	// below — a plain description paragraph, or content this parser
	// chooses to ignore.
	UndefinedSectionType SectionType = iota
	// MSONElementSectionType is one anonymous member of an array.
	MSONElementSectionType
	// MSONPropertySectionType is one named member of an object.
	MSONPropertySectionType
	// MSONElementsSectionType is the `Elements` keyword marker
	// introducing a nested collection of array members.
	MSONElementsSectionType
	// MSONPropertiesSectionType is the `Properties` keyword marker
	// introducing a nested collection of object members.
	MSONPropertiesSectionType
)

func (s SectionType) String() string {
	switch s {
	case MSONElementSectionType:
		return "element"
	case MSONPropertySectionType:
		return "property"
	case MSONElementsSectionType:
		return "elements"
	case MSONPropertiesSectionType:
		return "properties"
	default:
		return "undefined"
	}
}

// SectionTraits describes a SectionType's cardinality within its parent.
type SectionTraits struct {
	// Singleton means a parent may contain at most one section of this
	// type among its children.
	Singleton bool
}

// TraitsFor returns the SectionTraits for a SectionType. MSONElements is
// singleton and MSONProperties is not — an asymmetry present in the
// original implementation (GetSectionTraits only special-cases
// MSONElementsSectionType and BodySectionType) that this port preserves
// rather than "fixes", per the Open Question decision recorded in
// DESIGN.md: nothing in the observable behavior this parser is grounded on
// actually depends on Properties being singleton, so correcting it would be
// a silent behavior change with no test coverage to justify it.
func TraitsFor(s SectionType) SectionTraits {
	if s == MSONElementsSectionType {
		return SectionTraits{Singleton: true}
	}
	return SectionTraits{Singleton: false}
}

var (
	elementsKeywordRE   = regexp.MustCompile(`^[Ee]lements?$`)
	propertiesKeywordRE = regexp.MustCompile(`^[Pp]roperties?$`)
)

// classifySection is the shared body behind SectionProcessor<Element>,
// SectionProcessor<Property>, SectionProcessor<Elements> and
// SectionProcessor<Properties>'s near-identical sectionType methods
// (spec.md §4.4): a non-list-item is never a section; a list item whose own
// line matches the `Elements`/`Properties` keyword is always that
// collection marker regardless of context; otherwise it is an element or a
// property, according to which the caller says it expects.
func classifySection(node *Node, expectProperty bool) SectionType {
	if !node.IsListItem() {
		return UndefinedSectionType
	}

	if marker := classifyMarker(node); marker != UndefinedSectionType {
		return marker
	}

	if expectProperty {
		return MSONPropertySectionType
	}
	return MSONElementSectionType
}

// classifyMarker recognizes only the `Elements`/`Properties` keyword
// markers, independent of whether an element or a property is otherwise
// expected. It is used on its own — without ever falling back to a plain
// element/property classification — whenever a preceding description
// paragraph means a bare list item can no longer be promoted to a nested
// section just by looking list-item-shaped (spec.md §4.5 step 4;
// processNestedChildren in driver.go is the caller that decides when that
// applies).
func classifyMarker(node *Node) SectionType {
	if !node.IsListItem() {
		return UndefinedSectionType
	}

	text := node.Text
	if elementsKeywordRE.MatchString(text) {
		return MSONElementsSectionType
	}
	if propertiesKeywordRE.MatchString(text) {
		return MSONPropertiesSectionType
	}

	return UndefinedSectionType
}
