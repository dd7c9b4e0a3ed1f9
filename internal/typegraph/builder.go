package typegraph

import (
	"errors"
	"fmt"

	"github.com/sanixdarker/gql-jddf/internal/introspection"
)

// maxRefDepth bounds how many levels a type reference chain may nest,
// counting the named type at the end. [User!]! spends four.
const maxRefDepth = 8

var (
	// ErrUnhandledShape is returned for descriptors or references the
	// translation does not cover: missing names, missing kind-mandated
	// lists, unknown kinds.
	ErrUnhandledShape = errors.New("unhandled type shape")

	// ErrNestingTooDeep is returned when a type reference chain needs more
	// than maxRefDepth levels.
	ErrNestingTooDeep = errors.New("type nesting too deep")
)

// Build converts introspection type descriptors into graph nodes, one node
// per descriptor, in document order. Any malformed descriptor fails the
// whole build.
func Build(descriptors []introspection.TypeDescriptor) ([]Type, error) {
	types := make([]Type, 0, len(descriptors))
	for _, d := range descriptors {
		node, err := buildOne(d)
		if err != nil {
			return nil, err
		}
		types = append(types, node)
	}
	return types, nil
}

func buildOne(d introspection.TypeDescriptor) (Type, error) {
	if d.Name == nil || *d.Name == "" {
		return nil, fmt.Errorf("%w: %s descriptor without a name", ErrUnhandledShape, d.Kind)
	}
	name := *d.Name

	switch d.Kind {
	case introspection.KindScalar:
		return &Scalar{Name: name}, nil

	case introspection.KindObject:
		fields, err := buildFields(name, d.Fields)
		if err != nil {
			return nil, err
		}
		return &Object{Name: name, Fields: fields}, nil

	case introspection.KindInterface:
		possible, err := buildRefs(name, d.PossibleTypes)
		if err != nil {
			return nil, err
		}
		return &Interface{Name: name, PossibleTypes: possible}, nil

	case introspection.KindUnion:
		members, err := buildRefs(name, d.PossibleTypes)
		if err != nil {
			return nil, err
		}
		return &Union{Name: name, Members: members}, nil

	case introspection.KindEnum:
		if d.EnumValues == nil {
			return nil, fmt.Errorf("%w: enum %q without a value list", ErrUnhandledShape, name)
		}
		values := make([]string, 0, len(d.EnumValues))
		for _, v := range d.EnumValues {
			values = append(values, v.Name)
		}
		return &Enum{Name: name, Values: values}, nil

	case introspection.KindInputObject:
		fields, err := buildInputFields(name, d.InputFields)
		if err != nil {
			return nil, err
		}
		return &Input{Name: name, Fields: fields}, nil
	}

	return nil, fmt.Errorf("%w: type %q has kind %q", ErrUnhandledShape, name, d.Kind)
}

func buildFields(typeName string, fields []introspection.Field) ([]Field, error) {
	if fields == nil {
		return nil, fmt.Errorf("%w: object %q without a field list", ErrUnhandledShape, typeName)
	}
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		t, err := resolveRef(&f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q of %q: %w", f.Name, typeName, err)
		}
		out = append(out, Field{Name: f.Name, Type: t})
	}
	return out, nil
}

func buildInputFields(typeName string, fields []introspection.InputValue) ([]Field, error) {
	if fields == nil {
		return nil, fmt.Errorf("%w: input object %q without a field list", ErrUnhandledShape, typeName)
	}
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		t, err := resolveRef(&f.Type)
		if err != nil {
			return nil, fmt.Errorf("input field %q of %q: %w", f.Name, typeName, err)
		}
		out = append(out, Field{Name: f.Name, Type: t})
	}
	return out, nil
}

// buildRefs resolves interface or union possible types, each of which must
// be a plain type name.
func buildRefs(typeName string, refs []introspection.TypeRef) ([]Ref, error) {
	if refs == nil {
		return nil, fmt.Errorf("%w: %q without a possible type list", ErrUnhandledShape, typeName)
	}
	out := make([]Ref, 0, len(refs))
	for _, r := range refs {
		t, err := resolveRef(&r)
		if err != nil {
			return nil, fmt.Errorf("possible type of %q: %w", typeName, err)
		}
		ref, ok := t.(*Ref)
		if !ok {
			return nil, fmt.Errorf("%w: possible type %s of %q is not a plain type name", ErrUnhandledShape, t, typeName)
		}
		out = append(out, *ref)
	}
	return out, nil
}

// resolveRef lowers a wire type reference into graph nodes. A name ends the
// chain; NON_NULL and LIST wrap and recurse; anything else is malformed.
func resolveRef(ref *introspection.TypeRef) (Type, error) {
	return resolve(ref, 1)
}

func resolve(ref *introspection.TypeRef, depth int) (Type, error) {
	if depth > maxRefDepth {
		return nil, fmt.Errorf("%w: more than %d reference levels", ErrNestingTooDeep, maxRefDepth)
	}
	if ref == nil {
		return nil, fmt.Errorf("%w: missing type reference", ErrUnhandledShape)
	}
	if name := ref.Named(); name != "" {
		return &Ref{Name: name}, nil
	}

	switch ref.Kind {
	case introspection.KindNonNull:
		inner, err := resolve(ref.OfType, depth+1)
		if err != nil {
			return nil, err
		}
		return &NonNull{Elem: inner}, nil
	case introspection.KindList:
		inner, err := resolve(ref.OfType, depth+1)
		if err != nil {
			return nil, err
		}
		return &List{Elem: inner}, nil
	}

	return nil, fmt.Errorf("%w: reference with kind %q and no name", ErrUnhandledShape, ref.Kind)
}
