package converter

import (
	"bytes"

	"github.com/sanixdarker/gql-jddf/internal/introspection"
	"github.com/sanixdarker/gql-jddf/internal/typegraph"
	"github.com/sanixdarker/gql-jddf/pkg/jddf"
)

// FormatIntrospection names the introspection JSON input format.
const FormatIntrospection = "introspection"

// IntrospectionConverter converts GraphQL introspection responses to JDDF.
type IntrospectionConverter struct{}

func (c *IntrospectionConverter) Name() string {
	return FormatIntrospection
}

func (c *IntrospectionConverter) CanHandle(filename string, content []byte) bool {
	if getExtension(filename) == ".json" {
		return true
	}
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return bytes.Contains(trimmed, []byte(`"__schema"`)) ||
		bytes.Contains(trimmed, []byte(`"queryType"`))
}

func (c *IntrospectionConverter) Convert(content []byte, opts *Options) (*jddf.Schema, error) {
	schema, err := introspection.DecodeBytes(content)
	if err != nil {
		return nil, err
	}
	types, err := typegraph.Build(schema.Types)
	if err != nil {
		return nil, err
	}
	return typegraph.Translate(types, rootName(opts, schema.QueryType.Name))
}
