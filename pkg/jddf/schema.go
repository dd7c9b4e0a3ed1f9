// Package jddf provides types and validation for JDDF (JSON Data Definition Format) schemas.
package jddf

import "encoding/json"

// Type is the name of a JDDF primitive type, used by type-form schemas.
type Type string

const (
	TypeBoolean   Type = "boolean"
	TypeFloat32   Type = "float32"
	TypeFloat64   Type = "float64"
	TypeInt8      Type = "int8"
	TypeUint8     Type = "uint8"
	TypeInt16     Type = "int16"
	TypeUint16    Type = "uint16"
	TypeInt32     Type = "int32"
	TypeUint32    Type = "uint32"
	TypeString    Type = "string"
	TypeTimestamp Type = "timestamp"
)

// Form identifies which of the six JDDF schema forms a schema takes.
type Form int

const (
	FormEmpty Form = iota
	FormRef
	FormType
	FormEnum
	FormElements
	FormProperties
)

func (f Form) String() string {
	switch f {
	case FormRef:
		return "ref"
	case FormType:
		return "type"
	case FormEnum:
		return "enum"
	case FormElements:
		return "elements"
	case FormProperties:
		return "properties"
	default:
		return "empty"
	}
}

// Schema is a JDDF schema. A nil map or pointer field means the keyword is
// absent; an allocated-but-empty map serializes as an empty object, which is
// how a closed object with no required members stays distinguishable from no
// object form at all.
type Schema struct {
	Definitions          map[string]*Schema
	Ref                  *string
	Type                 Type
	Enum                 []string
	Elements             *Schema
	Properties           map[string]*Schema
	OptionalProperties   map[string]*Schema
	AdditionalProperties bool
}

// NewEmpty returns an empty-form schema, which accepts any instance.
func NewEmpty() *Schema {
	return &Schema{}
}

// NewRef returns a ref-form schema pointing at a root definition.
func NewRef(name string) *Schema {
	return &Schema{Ref: &name}
}

// NewType returns a type-form schema for a primitive type.
func NewType(t Type) *Schema {
	return &Schema{Type: t}
}

// NewEnum returns an enum-form schema over the given values.
func NewEnum(values ...string) *Schema {
	return &Schema{Enum: values}
}

// NewElements returns an elements-form schema with the given element schema.
func NewElements(inner *Schema) *Schema {
	return &Schema{Elements: inner}
}

// Form reports the form this schema takes. Keyword presence decides: ref wins
// over type, and so on, though a well-formed schema sets keywords of one form
// only (see Check).
func (s *Schema) Form() Form {
	switch {
	case s.Ref != nil:
		return FormRef
	case s.Type != "":
		return FormType
	case s.Enum != nil:
		return FormEnum
	case s.Elements != nil:
		return FormElements
	case s.Properties != nil || s.OptionalProperties != nil:
		return FormProperties
	default:
		return FormEmpty
	}
}

// MarshalJSON serializes the schema with only the present keywords. Map keys
// come out sorted, so the same schema always serializes to the same bytes.
func (s *Schema) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 4)
	if s.Definitions != nil {
		out["definitions"] = s.Definitions
	}
	if s.Ref != nil {
		out["ref"] = *s.Ref
	}
	if s.Type != "" {
		out["type"] = string(s.Type)
	}
	if s.Enum != nil {
		out["enum"] = s.Enum
	}
	if s.Elements != nil {
		out["elements"] = s.Elements
	}
	if s.Properties != nil {
		out["properties"] = s.Properties
	}
	if s.OptionalProperties != nil {
		out["optionalProperties"] = s.OptionalProperties
	}
	if s.AdditionalProperties {
		out["additionalProperties"] = true
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a schema, keeping the absent-versus-empty distinction
// for map keywords.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var raw struct {
		Definitions          map[string]*Schema `json:"definitions"`
		Ref                  *string            `json:"ref"`
		Type                 Type               `json:"type"`
		Enum                 []string           `json:"enum"`
		Elements             *Schema            `json:"elements"`
		Properties           map[string]*Schema `json:"properties"`
		OptionalProperties   map[string]*Schema `json:"optionalProperties"`
		AdditionalProperties bool               `json:"additionalProperties"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Schema{
		Definitions:          raw.Definitions,
		Ref:                  raw.Ref,
		Type:                 raw.Type,
		Enum:                 raw.Enum,
		Elements:             raw.Elements,
		Properties:           raw.Properties,
		OptionalProperties:   raw.OptionalProperties,
		AdditionalProperties: raw.AdditionalProperties,
	}
	return nil
}
