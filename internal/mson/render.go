package mson

import "encoding/json"

// render.go gives Element and Property a stable external shape for the
// msonctl CLI's --format=json/--format=yaml output. Neither encoding/json
// nor yaml.v3 can see the unexported valueKind/str/array/object fields
// directly, so each type implements the matching Marshaler interface and
// renders through a plain DTO instead.

type elementDTO struct {
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string      `json:"type,omitempty" yaml:"type,omitempty"`
	Value       interface{} `json:"value,omitempty" yaml:"value,omitempty"`
}

type propertyDTO struct {
	Name        string      `json:"name" yaml:"name"`
	Required    bool        `json:"required" yaml:"required"`
	Templated   bool        `json:"templated,omitempty" yaml:"templated,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string      `json:"type,omitempty" yaml:"type,omitempty"`
	Value       interface{} `json:"value,omitempty" yaml:"value,omitempty"`
}

// value returns whichever of e's three value variants is set, or nil if
// none is — the payload every rendering (JSON, YAML) shares.
func (e Element) value() interface{} {
	switch e.valueKind {
	case StringValueKind:
		return e.str
	case ArrayValueKind:
		return e.array
	case ObjectValueKind:
		return e.object
	default:
		return nil
	}
}

func (e Element) typeString() string {
	if e.Type == UndefinedDataType {
		return ""
	}
	return e.Type.String()
}

func (e Element) toDTO() elementDTO {
	return elementDTO{Description: e.Description, Type: e.typeString(), Value: e.value()}
}

func (p Property) toDTO() propertyDTO {
	return propertyDTO{
		Name: p.Name, Required: p.Required, Templated: p.Templated,
		Description: p.Description, Type: p.typeString(), Value: p.value(),
	}
}

// MarshalJSON implements json.Marshaler.
func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.toDTO())
}

// MarshalYAML implements yaml.Marshaler (gopkg.in/yaml.v3).
func (e Element) MarshalYAML() (interface{}, error) {
	return e.toDTO(), nil
}

// MarshalJSON implements json.Marshaler. Property defines its own rather
// than inheriting Element's promoted method, so Name/Required/Templated
// are not lost to embedding.
func (p Property) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toDTO())
}

// MarshalYAML implements yaml.Marshaler, for the same reason as MarshalJSON.
func (p Property) MarshalYAML() (interface{}, error) {
	return p.toDTO(), nil
}
