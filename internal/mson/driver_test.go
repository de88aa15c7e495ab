package mson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueprint-mson/mson-go/internal/mdblock"
	"github.com/blueprint-mson/mson-go/internal/mson"
)

func parseFirstProperty(t *testing.T, source string) (mson.Property, []string) {
	t.Helper()
	nodes := mdblock.Build(source)
	require.NotEmpty(t, nodes)
	p, report := mson.ParseProperty(nodes[0])

	var messages []string
	for _, w := range report.Warnings {
		messages = append(messages, w.Message)
	}
	return p, messages
}

func TestParseProperty_CanonicalProperty(t *testing.T) {
	p, warnings := parseFirstProperty(t, "- `id-1`: `42` (number) - Identifier of the resource\n")

	assert.Empty(t, warnings)
	assert.Equal(t, "id-1", p.Name)
	assert.False(t, p.Templated)
	assert.Equal(t, "Identifier of the resource", p.Description)
	assert.Equal(t, mson.NumberDataType, p.Type)
	assert.False(t, p.Required)

	v, err := p.StringValue()
	require.NoError(t, err)
	assert.Equal(t, "42", v)
}

func TestParseProperty_NestedArrayElement(t *testing.T) {
	source := "- tags: home, green (required)\n" +
		"    - (string)\n"

	p, warnings := parseFirstProperty(t, source)

	assert.Empty(t, warnings)
	assert.Equal(t, "tags", p.Name)
	assert.Empty(t, p.Description)
	assert.Equal(t, mson.ArrayDataType, p.Type)
	assert.True(t, p.Required)

	values, err := p.ArrayValue()
	require.NoError(t, err)
	require.Len(t, values, 3)

	v0, err := values[0].StringValue()
	require.NoError(t, err)
	assert.Equal(t, "home", v0)
	assert.Equal(t, mson.UndefinedDataType, values[0].Type)

	v1, err := values[1].StringValue()
	require.NoError(t, err)
	assert.Equal(t, "green", v1)

	assert.Equal(t, mson.StringDataType, values[2].Type)
}

func TestParseProperty_ObjectType(t *testing.T) {
	source := "- address\n" +
		"    - street\n" +
		"    - city\n" +
		"    - state\n"

	p, warnings := parseFirstProperty(t, source)

	assert.Empty(t, warnings)
	assert.Equal(t, "address", p.Name)
	assert.Empty(t, p.Description)
	assert.Equal(t, mson.ObjectDataType, p.Type)
	assert.False(t, p.Required)

	properties, err := p.ObjectValue()
	require.NoError(t, err)
	require.Len(t, properties, 3)

	assert.Equal(t, "street", properties[0].Name)
	assert.Equal(t, mson.UndefinedDataType, properties[0].Type)
	assert.False(t, properties[0].IsDefined())

	assert.Equal(t, "city", properties[1].Name)
	assert.Equal(t, "state", properties[2].Name)
}

func TestParseProperty_ArrayOfElementsType(t *testing.T) {
	source := "- address (array)\n" +
		"    - street\n" +
		"    - city\n" +
		"    - state\n"

	p, warnings := parseFirstProperty(t, source)

	assert.Empty(t, warnings)
	assert.Equal(t, "address", p.Name)
	assert.Equal(t, mson.ArrayDataType, p.Type)

	values, err := p.ArrayValue()
	require.NoError(t, err)
	require.Len(t, values, 3)

	for i, want := range []string{"street", "city", "state"} {
		assert.Equal(t, mson.UndefinedDataType, values[i].Type)
		v, err := values[i].StringValue()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestParseProperty_DescriptionThenPropertiesMarker(t *testing.T) {
	source := "- id\n" +
		"\n" +
		"    An identifier object\n" +
		"\n" +
		"    - Properties\n" +
		"        - id2\n"

	p, warnings := parseFirstProperty(t, source)

	assert.Empty(t, warnings)
	assert.Equal(t, "id", p.Name)
	assert.Equal(t, "An identifier object\n", p.Description)
	assert.Equal(t, mson.ObjectDataType, p.Type)

	properties, err := p.ObjectValue()
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "id2", properties[0].Name)
}

func TestParseProperty_ObjectWithInlineValueWarns(t *testing.T) {
	source := "- config: foo (object)\n" +
		"    - bar\n"

	p, warnings := parseFirstProperty(t, source)

	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "ignoring value(s) for an object-typed element")
	assert.Equal(t, mson.ObjectDataType, p.Type)

	properties, err := p.ObjectValue()
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "bar", properties[0].Name)
}
