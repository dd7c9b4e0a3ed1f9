// Package introspection models GraphQL introspection responses and decodes
// them from their JSON envelope.
package introspection

// TypeKind is a __TypeKind value from the GraphQL introspection schema.
type TypeKind string

const (
	KindScalar      TypeKind = "SCALAR"
	KindObject      TypeKind = "OBJECT"
	KindInterface   TypeKind = "INTERFACE"
	KindUnion       TypeKind = "UNION"
	KindEnum        TypeKind = "ENUM"
	KindInputObject TypeKind = "INPUT_OBJECT"
	KindList        TypeKind = "LIST"
	KindNonNull     TypeKind = "NON_NULL"
)

// Schema is the introspected schema: the operation root names and every type
// the server declares.
type Schema struct {
	QueryType        *RootType        `json:"queryType"`
	MutationType     *RootType        `json:"mutationType"`
	SubscriptionType *RootType        `json:"subscriptionType"`
	Types            []TypeDescriptor `json:"types"`
}

// RootType names one of the schema's operation roots.
type RootType struct {
	Name string `json:"name"`
}

// TypeDescriptor describes one declared type. Which list fields are
// meaningful depends on Kind; a list that the kind mandates decodes as nil
// when the document omits it, which the type graph builder treats as a
// malformed descriptor.
type TypeDescriptor struct {
	Kind          TypeKind     `json:"kind"`
	Name          *string      `json:"name"`
	Description   *string      `json:"description"`
	Fields        []Field      `json:"fields"`
	InputFields   []InputValue `json:"inputFields"`
	Interfaces    []TypeRef    `json:"interfaces"`
	EnumValues    []EnumValue  `json:"enumValues"`
	PossibleTypes []TypeRef    `json:"possibleTypes"`
}

// Field is an output field of an object or interface type.
type Field struct {
	Name string       `json:"name"`
	Args []InputValue `json:"args"`
	Type TypeRef      `json:"type"`
}

// InputValue is an input-object field or a field argument.
type InputValue struct {
	Name string  `json:"name"`
	Type TypeRef `json:"type"`
}

// EnumValue is one member of an enum type.
type EnumValue struct {
	Name string `json:"name"`
}

// TypeRef is a type reference: a named type, or a NON_NULL or LIST wrapper
// around another reference. The struct nests without a structural bound; the
// type graph builder enforces the wrapping ceiling when it resolves a chain.
type TypeRef struct {
	Kind   TypeKind `json:"kind"`
	Name   *string  `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

// Named reports the referenced type name, or "" for a wrapper reference.
func (r *TypeRef) Named() string {
	if r == nil || r.Name == nil {
		return ""
	}
	return *r.Name
}
