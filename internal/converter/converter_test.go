package converter

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sanixdarker/gql-jddf/internal/introspection"
	"github.com/sanixdarker/gql-jddf/pkg/jddf"
)

const introspectionDoc = `{
  "data": {
    "__schema": {
      "queryType": { "name": "Query" },
      "types": [
        { "kind": "SCALAR", "name": "String" },
        {
          "kind": "OBJECT",
          "name": "Query",
          "fields": [
            {
              "name": "hello",
              "type": { "kind": "NON_NULL", "ofType": { "kind": "SCALAR", "name": "String" } }
            }
          ]
        }
      ]
    }
  }
}`

const sdlDoc = `
type Query {
  hello: String!
}
`

func TestDetectFormat(t *testing.T) {
	m := NewManager()
	tests := []struct {
		name     string
		filename string
		content  string
		want     string
	}{
		{"json extension", "schema.json", "{}", FormatIntrospection},
		{"graphql extension", "schema.graphql", "", FormatSDL},
		{"gql extension", "api.gql", "", FormatSDL},
		{"introspection content", "", introspectionDoc, FormatIntrospection},
		{"sdl content", "", sdlDoc, FormatSDL},
		{"fallback", "", "not a schema at all", FormatIntrospection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.DetectFormat(tt.filename, []byte(tt.content))
			if got != tt.want {
				t.Errorf("DetectFormat = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertIntrospection(t *testing.T) {
	m := NewManager()
	schema, err := m.Convert(FormatIntrospection, []byte(introspectionDoc), nil)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	data, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"definitions":{` +
		`"Query":{"properties":{"hello":{"ref":"String"}}},` +
		`"String":{"type":"string"}` +
		`},"ref":"Query"}`
	if string(data) != want {
		t.Errorf("converted:\n%s\nwant:\n%s", data, want)
	}
}

func TestConvertSDLMatchesIntrospection(t *testing.T) {
	m := NewManager()
	fromJSON, err := m.Convert(FormatIntrospection, []byte(introspectionDoc), nil)
	if err != nil {
		t.Fatalf("introspection convert: %v", err)
	}
	fromSDL, err := m.Convert(FormatSDL, []byte(sdlDoc), nil)
	if err != nil {
		t.Fatalf("sdl convert: %v", err)
	}

	// the SDL side carries the parser's built-in declarations too, so
	// compare the query definition only
	a, err := json.Marshal(fromJSON.Definitions["Query"])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(fromSDL.Definitions["Query"])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("query definitions differ:\n%s\n%s", a, b)
	}
	if *fromSDL.Ref != *fromJSON.Ref {
		t.Errorf("roots differ: %q vs %q", *fromSDL.Ref, *fromJSON.Ref)
	}
}

func TestConvertRootOverride(t *testing.T) {
	m := NewManager()
	schema, err := m.Convert(FormatIntrospection, []byte(introspectionDoc), &Options{RootName: "String"})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if *schema.Ref != "String" {
		t.Errorf("root = %q, want String", *schema.Ref)
	}
}

func TestConvertUnknownFormat(t *testing.T) {
	m := NewManager()
	_, err := m.Convert("yaml", nil, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("got %v, want unknown format error", err)
	}
}

func TestConvertMalformedDocument(t *testing.T) {
	m := NewManager()
	_, err := m.Convert(FormatIntrospection, []byte(`{"data":{}}`), nil)
	if !errors.Is(err, introspection.ErrMalformedEnvelope) {
		t.Errorf("got %v, want ErrMalformedEnvelope", err)
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := NewManager().SupportedFormats()
	if len(formats) != 2 || formats[0] != FormatIntrospection || formats[1] != FormatSDL {
		t.Errorf("formats = %v", formats)
	}
}

func TestMerge(t *testing.T) {
	first := &jddf.Schema{
		Definitions: map[string]*jddf.Schema{
			"User":   jddf.NewType(jddf.TypeString),
			"Shared": jddf.NewEnum("OLD"),
		},
		Ref: strPtr("User"),
	}
	second := &jddf.Schema{
		Definitions: map[string]*jddf.Schema{
			"Post":   jddf.NewType(jddf.TypeInt32),
			"Shared": jddf.NewEnum("NEW"),
		},
		Ref: strPtr("Post"),
	}

	merged, err := Merge("", first, second)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if len(merged.Definitions) != 3 {
		t.Errorf("definitions = %v", merged.Definitions)
	}
	if *merged.Ref != "User" {
		t.Errorf("root = %q, want the first schema's root", *merged.Ref)
	}
	if merged.Definitions["Shared"].Enum[0] != "NEW" {
		t.Errorf("conflict kept %v, want the later definition", merged.Definitions["Shared"].Enum)
	}

	merged, err = Merge("Post", first, second)
	if err != nil {
		t.Fatalf("Merge with override: %v", err)
	}
	if *merged.Ref != "Post" {
		t.Errorf("root = %q, want override", *merged.Ref)
	}
}

func TestMergeNothing(t *testing.T) {
	if _, err := Merge(""); err == nil {
		t.Error("want error for empty merge")
	}
}

func strPtr(s string) *string { return &s }
