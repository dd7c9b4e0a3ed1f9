package converter

import (
	"bytes"

	"github.com/sanixdarker/gql-jddf/internal/typegraph"
	"github.com/sanixdarker/gql-jddf/pkg/jddf"
)

// FormatSDL names the GraphQL schema-language input format.
const FormatSDL = "sdl"

// SDLConverter converts GraphQL SDL documents to JDDF.
type SDLConverter struct{}

func (c *SDLConverter) Name() string {
	return FormatSDL
}

func (c *SDLConverter) CanHandle(filename string, content []byte) bool {
	ext := getExtension(filename)
	if ext == ".graphql" || ext == ".gql" {
		return true
	}
	// Check for SDL indicators
	return bytes.Contains(content, []byte("type Query")) ||
		bytes.Contains(content, []byte("type Mutation")) ||
		bytes.Contains(content, []byte("schema {"))
}

func (c *SDLConverter) Convert(content []byte, opts *Options) (*jddf.Schema, error) {
	types, root, err := typegraph.FromSDL(sourcePath(opts, "schema.graphql"), string(content))
	if err != nil {
		return nil, err
	}
	return typegraph.Translate(types, rootName(opts, root))
}
