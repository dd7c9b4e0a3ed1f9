// Package typegraph builds a typed graph from a GraphQL schema and
// translates it into a JDDF schema.
package typegraph

import "fmt"

// Type is one node of the type graph: a named declaration, a reference to
// one, or a NON_NULL / LIST wrapper around another node.
type Type interface {
	isType()
	String() string
}

// NamedType is implemented by declaration nodes, which carry the name they
// were declared under and so can form a definition.
type NamedType interface {
	Type
	TypeName() string
}

// Ref is a reference to a declared type by name.
type Ref struct {
	Name string
}

// Scalar is a scalar declaration, built-in or custom.
type Scalar struct {
	Name string
}

// Object is an output object declaration.
type Object struct {
	Name   string
	Fields []Field
}

// Interface is an interface declaration together with the object types that
// implement it.
type Interface struct {
	Name          string
	PossibleTypes []Ref
}

// Union is a union declaration together with its member types.
type Union struct {
	Name    string
	Members []Ref
}

// Enum is an enum declaration. Values keep document order and may repeat;
// translation deduplicates them.
type Enum struct {
	Name   string
	Values []string
}

// Input is an input object declaration.
type Input struct {
	Name   string
	Fields []Field
}

// NonNull marks the wrapped node as non-nullable.
type NonNull struct {
	Elem Type
}

// List wraps the element node of a list type.
type List struct {
	Elem Type
}

// Field is one field of an object or input object. Type is a wrapper chain
// ending in a Ref.
type Field struct {
	Name string
	Type Type
}

func (*Ref) isType()       {}
func (*Scalar) isType()    {}
func (*Object) isType()    {}
func (*Interface) isType() {}
func (*Union) isType()     {}
func (*Enum) isType()      {}
func (*Input) isType()     {}
func (*NonNull) isType()   {}
func (*List) isType()      {}

func (t *Scalar) TypeName() string    { return t.Name }
func (t *Object) TypeName() string    { return t.Name }
func (t *Interface) TypeName() string { return t.Name }
func (t *Union) TypeName() string     { return t.Name }
func (t *Enum) TypeName() string      { return t.Name }
func (t *Input) TypeName() string     { return t.Name }

func (t *Ref) String() string       { return t.Name }
func (t *Scalar) String() string    { return t.Name }
func (t *Object) String() string    { return t.Name }
func (t *Interface) String() string { return t.Name }
func (t *Union) String() string     { return t.Name }
func (t *Enum) String() string      { return t.Name }
func (t *Input) String() string     { return t.Name }

func (t *NonNull) String() string { return t.Elem.String() + "!" }
func (t *List) String() string    { return fmt.Sprintf("[%s]", t.Elem) }

var (
	_ Type = (*Ref)(nil)
	_ Type = (*NonNull)(nil)
	_ Type = (*List)(nil)

	_ NamedType = (*Scalar)(nil)
	_ NamedType = (*Object)(nil)
	_ NamedType = (*Interface)(nil)
	_ NamedType = (*Union)(nil)
	_ NamedType = (*Enum)(nil)
	_ NamedType = (*Input)(nil)
)
