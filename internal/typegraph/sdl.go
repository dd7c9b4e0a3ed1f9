package typegraph

import (
	"fmt"
	"sort"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/sanixdarker/gql-jddf/internal/introspection"
)

// FromSDL parses an SDL schema document and lowers it into graph nodes plus
// the query root name. The parsed schema comes with the built-in scalars and
// the __-prefixed introspection types attached, which matches what a live
// introspection response carries, so they are lowered like anything else.
// Declarations come out name-sorted to keep the output stable.
func FromSDL(filename, input string) ([]Type, string, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: filename, Input: input})
	if err != nil {
		return nil, "", fmt.Errorf("parse schema: %w", err)
	}
	if schema.Query == nil {
		return nil, "", fmt.Errorf("%w: no query root defined", introspection.ErrMalformedEnvelope)
	}

	names := make([]string, 0, len(schema.Types))
	for name := range schema.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	types := make([]Type, 0, len(names))
	for _, name := range names {
		node, err := lowerDefinition(schema, schema.Types[name])
		if err != nil {
			return nil, "", err
		}
		types = append(types, node)
	}
	return types, schema.Query.Name, nil
}

func lowerDefinition(schema *ast.Schema, def *ast.Definition) (Type, error) {
	switch def.Kind {
	case ast.Scalar:
		return &Scalar{Name: def.Name}, nil

	case ast.Object:
		fields, err := lowerFields(def)
		if err != nil {
			return nil, err
		}
		return &Object{Name: def.Name, Fields: fields}, nil

	case ast.Interface:
		impls := schema.PossibleTypes[def.Name]
		possible := make([]Ref, 0, len(impls))
		for _, impl := range impls {
			possible = append(possible, Ref{Name: impl.Name})
		}
		return &Interface{Name: def.Name, PossibleTypes: possible}, nil

	case ast.Union:
		members := make([]Ref, 0, len(def.Types))
		for _, m := range def.Types {
			members = append(members, Ref{Name: m})
		}
		return &Union{Name: def.Name, Members: members}, nil

	case ast.Enum:
		values := make([]string, 0, len(def.EnumValues))
		for _, v := range def.EnumValues {
			values = append(values, v.Name)
		}
		return &Enum{Name: def.Name, Values: values}, nil

	case ast.InputObject:
		fields, err := lowerFields(def)
		if err != nil {
			return nil, err
		}
		return &Input{Name: def.Name, Fields: fields}, nil
	}
	return nil, fmt.Errorf("%w: definition %q has kind %q", ErrUnhandledShape, def.Name, def.Kind)
}

func lowerFields(def *ast.Definition) ([]Field, error) {
	out := make([]Field, 0, len(def.Fields))
	for _, f := range def.Fields {
		t, err := lowerType(f.Type, 1)
		if err != nil {
			return nil, fmt.Errorf("field %q of %q: %w", f.Name, def.Name, err)
		}
		out = append(out, Field{Name: f.Name, Type: t})
	}
	return out, nil
}

// lowerType turns an SDL type expression into the same chain shape the
// introspection path produces: a non-null marker becomes a NonNull wrapper
// occupying its own level, so [User!]! costs four levels here too.
func lowerType(t *ast.Type, depth int) (Type, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: missing type", ErrUnhandledShape)
	}
	if depth > maxRefDepth {
		return nil, fmt.Errorf("%w: more than %d reference levels", ErrNestingTooDeep, maxRefDepth)
	}
	inner := depth
	if t.NonNull {
		inner = depth + 1
		if inner > maxRefDepth {
			return nil, fmt.Errorf("%w: more than %d reference levels", ErrNestingTooDeep, maxRefDepth)
		}
	}

	var node Type
	switch {
	case t.NamedType != "":
		node = &Ref{Name: t.NamedType}
	case t.Elem != nil:
		elem, err := lowerType(t.Elem, inner+1)
		if err != nil {
			return nil, err
		}
		node = &List{Elem: elem}
	default:
		return nil, fmt.Errorf("%w: type with neither name nor element", ErrUnhandledShape)
	}
	if t.NonNull {
		node = &NonNull{Elem: node}
	}
	return node, nil
}
