package typegraph

import (
	"fmt"

	"github.com/sanixdarker/gql-jddf/pkg/jddf"
)

// Translate renders graph nodes into a JDDF schema: one definition per
// declaration plus a root ref naming the query root. Duplicate declaration
// names overwrite earlier ones, so stitched-together documents resolve to
// the last occurrence. The root name is not required to have a definition;
// the output mirrors whatever the document declared.
func Translate(types []Type, rootName string) (*jddf.Schema, error) {
	defs := make(map[string]*jddf.Schema, len(types))
	for _, t := range types {
		named, ok := t.(NamedType)
		if !ok {
			return nil, fmt.Errorf("%w: wrapper type %s cannot form a definition", ErrUnhandledShape, t)
		}
		fragment, err := fragmentOf(t)
		if err != nil {
			return nil, fmt.Errorf("type %q: %w", named.TypeName(), err)
		}
		defs[named.TypeName()] = fragment
	}
	return &jddf.Schema{Definitions: defs, Ref: &rootName}, nil
}

func fragmentOf(t Type) (*jddf.Schema, error) {
	switch n := t.(type) {
	case *Scalar:
		return scalarSchema(n.Name), nil
	case *Object:
		return propertiesSchema(n.Fields)
	case *Input:
		return propertiesSchema(n.Fields)
	case *Interface:
		// TODO: model the fields the interface declares instead of
		// accepting any value.
		return jddf.NewEmpty(), nil
	case *Union:
		return jddf.NewEmpty(), nil
	case *Enum:
		return jddf.NewEnum(dedupe(n.Values)...), nil
	}
	return nil, fmt.Errorf("%w: %s cannot form a definition", ErrUnhandledShape, t)
}

// propertiesSchema splits fields into required and optional on one outer
// non-null wrapper and emits a closed object. The properties member is kept
// even when empty so the object form survives serialization. A repeated
// field name keeps its last occurrence only.
func propertiesSchema(fields []Field) (*jddf.Schema, error) {
	required := make(map[string]*jddf.Schema, len(fields))
	var optional map[string]*jddf.Schema
	for _, f := range fields {
		if nn, ok := f.Type.(*NonNull); ok {
			s, err := valueSchema(nn.Elem)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			delete(optional, f.Name)
			required[f.Name] = s
			continue
		}
		s, err := valueSchema(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		if optional == nil {
			optional = make(map[string]*jddf.Schema)
		}
		delete(required, f.Name)
		optional[f.Name] = s
	}
	return &jddf.Schema{Properties: required, OptionalProperties: optional}, nil
}

// valueSchema renders a field's type, which after resolution is a chain of
// Ref, NonNull and List nodes. A list keeps its element schema only when the
// element is non-nullable; a nullable element degrades to the empty form,
// since JDDF elements cannot express null entries.
func valueSchema(t Type) (*jddf.Schema, error) {
	switch n := t.(type) {
	case *Ref:
		return jddf.NewRef(n.Name), nil
	case *List:
		if nn, ok := n.Elem.(*NonNull); ok {
			inner, err := valueSchema(nn.Elem)
			if err != nil {
				return nil, err
			}
			return jddf.NewElements(inner), nil
		}
		return jddf.NewElements(jddf.NewEmpty()), nil
	case *NonNull:
		return nil, fmt.Errorf("%w: doubled non-null wrapper", ErrUnhandledShape)
	}
	return nil, fmt.Errorf("%w: %s used as a field type", ErrUnhandledShape, t)
}

// scalarSchema maps the built-in scalars onto JDDF primitives. Custom
// scalars have no portable shape and map to the empty form.
func scalarSchema(name string) *jddf.Schema {
	switch name {
	case "Int":
		return jddf.NewType(jddf.TypeInt32)
	case "Float":
		return jddf.NewType(jddf.TypeFloat64)
	case "Boolean":
		return jddf.NewType(jddf.TypeBoolean)
	case "String", "ID":
		return jddf.NewType(jddf.TypeString)
	}
	return jddf.NewEmpty()
}

// dedupe drops repeated enum values, keeping first occurrences in order.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
