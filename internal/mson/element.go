package mson

import "errors"

// ErrUndefinedValue is returned by an Element's accessor when the element's
// Value variant has not been set. It mirrors MSON_UNDEFINED_VALUE_ERR from
// the original: a programmer-error guard, not a diagnostic — callers are
// expected to check IsDefined (or the Kind of the value) before reading,
// not to treat this as a recoverable parse condition (spec.md §7).
var ErrUndefinedValue = errors.New("mson: accessing undefined element value")

// ValueKind discriminates which variant of Element.Value, if any, is set.
// Go has no tagged union built in; ValueKind plus the three optional fields
// below are this package's rendering of the original MSON.h's Value<T>/ValueBase
// polymorphism (spec.md §9 calls out replacing that RTTI-based wrapper with
// a plain tagged sum).
type ValueKind int

const (
	// NoValue means the element's value was never set (e.g. a bare
	// specifier-only signature with no inline values and no nested
	// section was ever processed for it).
	NoValue ValueKind = iota
	StringValueKind
	ArrayValueKind
	ObjectValueKind
)

// Element is one value in the MSON tree: a description, a data type, and
// exactly one of a string, an array of further Elements, or an object's
// Properties (spec.md §3).
type Element struct {
	Description string
	Type        DataType

	valueKind ValueKind
	str       string
	array     []Element
	object    []Property
}

// Property is an Element with a name and the object-membership traits that
// only make sense on a named member: whether it is required, and whether
// its name is itself a template expression (spec.md §3).
type Property struct {
	Element
	Name      string
	Required  bool
	Templated bool
}

// IsDefined reports whether e has a value at all, regardless of its kind.
func (e *Element) IsDefined() bool {
	return e.valueKind != NoValue
}

// ValueKind reports which of the three value variants, if any, is set.
func (e *Element) ValueKind() ValueKind {
	return e.valueKind
}

// SetStringValue sets e's value to a scalar string, as the original
// MSON.h's ElementValue<StringValue>::set does.
func (e *Element) SetStringValue(v string) {
	e.valueKind = StringValueKind
	e.str = v
	e.array = nil
	e.object = nil
}

// StringValue returns e's scalar string value. It returns ErrUndefinedValue
// if e's value is unset, and a zero value (not an error) if e's value is
// set to a different kind — callers that branch on ValueKind never hit
// that second case.
func (e *Element) StringValue() (string, error) {
	if !e.IsDefined() {
		return "", ErrUndefinedValue
	}
	return e.str, nil
}

// SetArrayValue sets e's value to an ordered list of Elements.
func (e *Element) SetArrayValue(v []Element) {
	e.valueKind = ArrayValueKind
	e.array = v
	e.str = ""
	e.object = nil
}

// ArrayValue returns e's array value, or ErrUndefinedValue if unset.
func (e *Element) ArrayValue() ([]Element, error) {
	if !e.IsDefined() {
		return nil, ErrUndefinedValue
	}
	return e.array, nil
}

// SetObjectValue sets e's value to a set of named Properties.
func (e *Element) SetObjectValue(v []Property) {
	e.valueKind = ObjectValueKind
	e.object = v
	e.str = ""
	e.array = nil
}

// ObjectValue returns e's object value, or ErrUndefinedValue if unset.
func (e *Element) ObjectValue() ([]Property, error) {
	if !e.IsDefined() {
		return nil, ErrUndefinedValue
	}
	return e.object, nil
}

// AppendArrayElement appends child to e's array value, creating it first if
// e had no value yet (the "isDefined ? append : create" pattern
// MSONElementParser.cc's processNestedSection repeats for every nested
// element and property it encounters).
func (e *Element) AppendArrayElement(child Element) {
	if e.valueKind != ArrayValueKind {
		e.SetArrayValue(nil)
	}
	e.array = append(e.array, child)
}

// AppendObjectProperty appends child to e's object value, creating it first
// if e had no value yet.
func (e *Element) AppendObjectProperty(child Property) {
	if e.valueKind != ObjectValueKind {
		e.SetObjectValue(nil)
	}
	e.object = append(e.object, child)
}

// Clone returns a deep copy of e sharing no substructure with the original
// (spec.md §3, §9): MSON.h's Element carries its value behind an
// auto_ptr<ValueBase>, so its copy constructor (init, calling
// ValueBase::duplicate on the wrapped value) has to deep-copy explicitly or
// the copy's destructor would free memory the original still points at. Go's
// plain assignment has no such double-free hazard, but it also doesn't deep
// copy: e's array and object fields are slices, so `out := e` still leaves
// out.array and e.array pointing at the same backing array. Clone is the
// equivalent of that copy constructor for this representation.
func (e Element) Clone() Element {
	out := e
	if e.array != nil {
		out.array = make([]Element, len(e.array))
		for i, child := range e.array {
			out.array[i] = child.Clone()
		}
	}
	if e.object != nil {
		out.object = make([]Property, len(e.object))
		for i, child := range e.object {
			out.object[i] = child.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of p, recursing into its embedded Element.
func (p Property) Clone() Property {
	out := p
	out.Element = p.Element.Clone()
	return out
}
