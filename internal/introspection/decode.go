package introspection

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedEnvelope is returned when a document parses but lacks the
// envelope pieces a schema needs: the data object, the schema object, or the
// query root name.
var ErrMalformedEnvelope = errors.New("malformed schema document")

// envelope matches the GraphQL response wrapper. Servers emit the schema
// under "__schema"; some tooling re-emits it under "schema", so both keys
// are accepted.
type envelope struct {
	Data *struct {
		Schema    *Schema `json:"__schema"`
		AltSchema *Schema `json:"schema"`
	} `json:"data"`
}

// Decode reads one introspection response from r and returns its schema.
func Decode(r io.Reader) (*Schema, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode introspection document: %w", err)
	}
	return env.schema()
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte) (*Schema, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode introspection document: %w", err)
	}
	return env.schema()
}

func (e *envelope) schema() (*Schema, error) {
	if e.Data == nil {
		return nil, fmt.Errorf("%w: no data object", ErrMalformedEnvelope)
	}
	schema := e.Data.Schema
	if schema == nil {
		schema = e.Data.AltSchema
	}
	if schema == nil {
		return nil, fmt.Errorf("%w: no __schema object", ErrMalformedEnvelope)
	}
	if schema.QueryType == nil || schema.QueryType.Name == "" {
		return nil, fmt.Errorf("%w: no query root name", ErrMalformedEnvelope)
	}
	return schema, nil
}
