package typegraph

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sanixdarker/gql-jddf/internal/introspection"
	"github.com/sanixdarker/gql-jddf/pkg/jddf"
)

func marshalFragment(t *testing.T, s *jddf.Schema) string {
	t.Helper()
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}

func translateOne(t *testing.T, node Type) *jddf.Schema {
	t.Helper()
	named, ok := node.(NamedType)
	if !ok {
		t.Fatalf("%s is not a named type", node)
	}
	schema, err := Translate([]Type{node}, "Query")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	return schema.Definitions[named.TypeName()]
}

func TestTranslateScalars(t *testing.T) {
	tests := []struct {
		scalar string
		want   string
	}{
		{"Int", `{"type":"int32"}`},
		{"Float", `{"type":"float64"}`},
		{"Boolean", `{"type":"boolean"}`},
		{"String", `{"type":"string"}`},
		{"ID", `{"type":"string"}`},
		{"DateTime", `{}`},
		{"JSON", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.scalar, func(t *testing.T) {
			got := marshalFragment(t, translateOne(t, &Scalar{Name: tt.scalar}))
			if got != tt.want {
				t.Errorf("%s translated to %s, want %s", tt.scalar, got, tt.want)
			}
		})
	}
}

func TestTranslateObjectPartition(t *testing.T) {
	obj := &Object{
		Name: "User",
		Fields: []Field{
			{Name: "id", Type: &NonNull{Elem: &Ref{Name: "ID"}}},
			{Name: "name", Type: &Ref{Name: "String"}},
			{Name: "friends", Type: &List{Elem: &NonNull{Elem: &Ref{Name: "User"}}}},
		},
	}
	frag := translateOne(t, obj)
	if frag.Form() != jddf.FormProperties {
		t.Fatalf("form = %v, want properties", frag.Form())
	}
	if len(frag.Properties) != 1 || frag.Properties["id"] == nil {
		t.Errorf("required = %v, want exactly id", frag.Properties)
	}
	if len(frag.OptionalProperties) != 2 {
		t.Errorf("optional = %v, want name and friends", frag.OptionalProperties)
	}
	if frag.AdditionalProperties {
		t.Error("object came out open, want closed")
	}
	if got := marshalFragment(t, frag.Properties["id"]); got != `{"ref":"ID"}` {
		t.Errorf("id = %s, want {\"ref\":\"ID\"}", got)
	}
}

func TestTranslateEmptyObjectKeepsProperties(t *testing.T) {
	got := marshalFragment(t, translateOne(t, &Object{Name: "Void", Fields: []Field{}}))
	if got != `{"properties":{}}` {
		t.Errorf("empty object = %s, want {\"properties\":{}}", got)
	}
}

func TestTranslateListVariants(t *testing.T) {
	tests := []struct {
		name  string
		field Type
		want  string
	}{
		{"nullable elements collapse", &List{Elem: &Ref{Name: "Int"}}, `{"elements":{}}`},
		{"non-null elements keep type", &List{Elem: &NonNull{Elem: &Ref{Name: "Int"}}}, `{"elements":{"ref":"Int"}}`},
		{"nested lists collapse", &List{Elem: &List{Elem: &NonNull{Elem: &Ref{Name: "Int"}}}}, `{"elements":{}}`},
		{
			"non-null nested list",
			&List{Elem: &NonNull{Elem: &List{Elem: &NonNull{Elem: &Ref{Name: "Int"}}}}},
			`{"elements":{"elements":{"ref":"Int"}}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := &Object{Name: "Holder", Fields: []Field{{Name: "v", Type: tt.field}}}
			frag := translateOne(t, obj)
			got := marshalFragment(t, frag.OptionalProperties["v"])
			if got != tt.want {
				t.Errorf("field = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTranslateEnumDedupes(t *testing.T) {
	got := marshalFragment(t, translateOne(t, &Enum{
		Name:   "Color",
		Values: []string{"RED", "GREEN", "RED", "BLUE", "GREEN"},
	}))
	if got != `{"enum":["RED","GREEN","BLUE"]}` {
		t.Errorf("enum = %s", got)
	}
}

func TestTranslateInterfaceAndUnionStayOpen(t *testing.T) {
	iface := translateOne(t, &Interface{
		Name:          "Node",
		PossibleTypes: []Ref{{Name: "User"}, {Name: "Post"}},
	})
	if got := marshalFragment(t, iface); got != `{}` {
		t.Errorf("interface = %s, want {}", got)
	}

	union := translateOne(t, &Union{Name: "Pet", Members: []Ref{{Name: "Dog"}}})
	if got := marshalFragment(t, union); got != `{}` {
		t.Errorf("union = %s, want {}", got)
	}
}

func TestTranslateInputObject(t *testing.T) {
	frag := translateOne(t, &Input{
		Name: "Filter",
		Fields: []Field{
			{Name: "limit", Type: &NonNull{Elem: &Ref{Name: "Int"}}},
			{Name: "after", Type: &Ref{Name: "String"}},
		},
	})
	if len(frag.Properties) != 1 || len(frag.OptionalProperties) != 1 {
		t.Errorf("partition = %v / %v", frag.Properties, frag.OptionalProperties)
	}
}

func TestTranslateDuplicateTypeNameLastWins(t *testing.T) {
	first := &Enum{Name: "Status", Values: []string{"OLD"}}
	second := &Enum{Name: "Status", Values: []string{"NEW"}}
	schema, err := Translate([]Type{first, second}, "Query")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	got := marshalFragment(t, schema.Definitions["Status"])
	if got != `{"enum":["NEW"]}` {
		t.Errorf("definition = %s, want the later declaration", got)
	}
}

func TestTranslateDuplicateFieldLastWins(t *testing.T) {
	obj := &Object{
		Name: "User",
		Fields: []Field{
			{Name: "id", Type: &NonNull{Elem: &Ref{Name: "ID"}}},
			{Name: "id", Type: &Ref{Name: "Int"}},
		},
	}
	frag := translateOne(t, obj)
	if len(frag.Properties) != 0 {
		t.Errorf("required = %v, want none after the nullable redeclaration", frag.Properties)
	}
	if got := marshalFragment(t, frag.OptionalProperties["id"]); got != `{"ref":"Int"}` {
		t.Errorf("id = %s", got)
	}
}

func TestTranslateTopLevelWrapper(t *testing.T) {
	for _, node := range []Type{
		&NonNull{Elem: &Ref{Name: "User"}},
		&List{Elem: &Ref{Name: "User"}},
	} {
		_, err := Translate([]Type{node}, "Query")
		if !errors.Is(err, ErrUnhandledShape) {
			t.Errorf("top-level %s: got %v, want ErrUnhandledShape", node, err)
		}
	}
}

func TestTranslateDoubledNonNull(t *testing.T) {
	obj := &Object{
		Name: "User",
		Fields: []Field{
			{Name: "id", Type: &NonNull{Elem: &NonNull{Elem: &Ref{Name: "ID"}}}},
		},
	}
	_, err := Translate([]Type{obj}, "Query")
	if !errors.Is(err, ErrUnhandledShape) {
		t.Fatalf("got %v, want ErrUnhandledShape", err)
	}
	if !strings.Contains(err.Error(), `"id"`) {
		t.Errorf("error %q does not name the field", err)
	}
}

func TestTranslateIdempotent(t *testing.T) {
	types := []Type{
		&Scalar{Name: "String"},
		&Enum{Name: "Color", Values: []string{"RED", "GREEN", "BLUE"}},
		&Object{Name: "Query", Fields: []Field{
			{Name: "color", Type: &Ref{Name: "Color"}},
			{Name: "name", Type: &NonNull{Elem: &Ref{Name: "String"}}},
		}},
	}
	first, err := Translate(types, "Query")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := Translate(types, "Query")
	if err != nil {
		t.Fatalf("Translate again: %v", err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(firstJSON, secondJSON) {
		t.Errorf("translations differ:\n%s\n%s", firstJSON, secondJSON)
	}
}

// Full pipeline over a realistic document: decode, build, translate, render.
func TestTranslatePipeline(t *testing.T) {
	doc := `{
  "data": {
    "__schema": {
      "queryType": { "name": "Query" },
      "types": [
        { "kind": "SCALAR", "name": "String" },
        { "kind": "SCALAR", "name": "Int" },
        {
          "kind": "OBJECT",
          "name": "Query",
          "fields": [
            {
              "name": "id",
              "type": { "kind": "NON_NULL", "name": null, "ofType": { "kind": "SCALAR", "name": "String" } }
            },
            {
              "name": "tags",
              "type": { "kind": "LIST", "name": null, "ofType": { "kind": "SCALAR", "name": "Int" } }
            }
          ]
        }
      ]
    }
  }
}`
	schema, err := introspection.Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	types, err := Build(schema.Types)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	out, err := Translate(types, schema.QueryType.Name)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"definitions":{` +
		`"Int":{"type":"int32"},` +
		`"Query":{"optionalProperties":{"tags":{"elements":{}}},"properties":{"id":{"ref":"String"}}},` +
		`"String":{"type":"string"}` +
		`},"ref":"Query"}`
	if string(data) != want {
		t.Errorf("pipeline output:\n%s\nwant:\n%s", data, want)
	}
}
