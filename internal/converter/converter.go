// Package converter turns GraphQL schema inputs into JDDF schemas.
package converter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sanixdarker/gql-jddf/pkg/jddf"
)

// Converter defines the interface for schema input formats.
type Converter interface {
	// Name returns the converter name.
	Name() string
	// Convert transforms input content into a JDDF schema.
	Convert(content []byte, opts *Options) (*jddf.Schema, error)
	// CanHandle returns true if this converter can handle the content.
	CanHandle(filename string, content []byte) bool
}

// Options holds converter options.
type Options struct {
	// SourcePath is the original filename, when there is one.
	SourcePath string
	// RootName overrides the query root as the root ref of the output.
	RootName string
}

// Manager manages available converters.
type Manager struct {
	converters []Converter
}

// NewManager creates a new converter manager with all built-in converters.
func NewManager() *Manager {
	m := &Manager{}
	m.Register(&IntrospectionConverter{})
	m.Register(&SDLConverter{})
	return m
}

// Register adds a converter to the manager.
func (m *Manager) Register(c Converter) {
	m.converters = append(m.converters, c)
}

// Convert converts content using the specified format.
func (m *Manager) Convert(format string, content []byte, opts *Options) (*jddf.Schema, error) {
	for _, c := range m.converters {
		if strings.EqualFold(c.Name(), format) {
			return c.Convert(content, opts)
		}
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}

// DetectFormat detects the format of the input content. Introspection JSON
// is the default when nothing else claims the content, so undetectable input
// surfaces the introspection decoder's error.
func (m *Manager) DetectFormat(filename string, content []byte) string {
	for _, c := range m.converters {
		if c.CanHandle(filename, content) {
			return c.Name()
		}
	}
	return FormatIntrospection
}

// SupportedFormats returns a list of supported formats.
func (m *Manager) SupportedFormats() []string {
	formats := make([]string, len(m.converters))
	for i, c := range m.converters {
		formats[i] = c.Name()
	}
	return formats
}

// getExtension returns the lowercase file extension.
func getExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func rootName(opts *Options, fallback string) string {
	if opts != nil && opts.RootName != "" {
		return opts.RootName
	}
	return fallback
}

func sourcePath(opts *Options, fallback string) string {
	if opts != nil && opts.SourcePath != "" {
		return opts.SourcePath
	}
	return fallback
}
