package jddf

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestForm(t *testing.T) {
	ref := "Thing"
	tests := []struct {
		name   string
		schema *Schema
		want   Form
	}{
		{"empty", &Schema{}, FormEmpty},
		{"ref", &Schema{Ref: &ref}, FormRef},
		{"type", &Schema{Type: TypeString}, FormType},
		{"enum", &Schema{Enum: []string{"A"}}, FormEnum},
		{"elements", &Schema{Elements: &Schema{}}, FormElements},
		{"properties", &Schema{Properties: map[string]*Schema{}}, FormProperties},
		{"optional only", &Schema{OptionalProperties: map[string]*Schema{}}, FormProperties},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.schema.Form(); got != tt.want {
				t.Errorf("Form() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMarshalKeepsEmptyProperties(t *testing.T) {
	s := &Schema{Properties: map[string]*Schema{}}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"properties":{}}` {
		t.Errorf("got %s, want {\"properties\":{}}", data)
	}
}

func TestMarshalOmitsAbsentKeywords(t *testing.T) {
	data, err := json.Marshal(NewEmpty())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{}` {
		t.Errorf("empty schema serialized as %s", data)
	}

	data, err = json.Marshal(NewRef("Query"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"ref":"Query"}` {
		t.Errorf("ref schema serialized as %s", data)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	s := &Schema{
		Definitions: map[string]*Schema{
			"Zebra": NewType(TypeString),
			"Apple": NewType(TypeInt32),
			"Mango": NewEnum("RED", "GREEN"),
		},
		Ref: strPtr("Apple"),
	}
	first, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("marshal not deterministic:\n%s\n%s", first, again)
		}
	}
	if idx := strings.Index(string(first), "Apple"); idx > strings.Index(string(first), "Zebra") {
		t.Errorf("definition keys not sorted: %s", first)
	}
}

func TestUnmarshalPreservesPresence(t *testing.T) {
	var s Schema
	if err := json.Unmarshal([]byte(`{"properties":{}}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Properties == nil {
		t.Error("empty properties object decoded as absent")
	}
	if s.Form() != FormProperties {
		t.Errorf("Form() = %v, want properties", s.Form())
	}

	var empty Schema
	if err := json.Unmarshal([]byte(`{}`), &empty); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if empty.Properties != nil || empty.Form() != FormEmpty {
		t.Error("absent properties decoded as present")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	src := &Schema{
		Definitions: map[string]*Schema{
			"User": {
				Properties: map[string]*Schema{
					"id": NewType(TypeString),
				},
				OptionalProperties: map[string]*Schema{
					"tags": NewElements(NewEmpty()),
				},
			},
		},
		Ref: strPtr("User"),
	}
	data, err := json.Marshal(src)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Schema
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	again, err := json.Marshal(&back)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("round trip changed bytes:\n%s\n%s", data, again)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		schema  *Schema
		wantErr string
	}{
		{
			"valid root",
			&Schema{
				Definitions: map[string]*Schema{"User": NewType(TypeString)},
				Ref:         strPtr("User"),
			},
			"",
		},
		{
			"mixed forms",
			&Schema{Type: TypeString, Enum: []string{"A"}},
			"multiple forms",
		},
		{
			"undefined ref",
			NewRef("Ghost"),
			`ref to undefined "Ghost"`,
		},
		{
			"unknown type",
			NewType(Type("int128")),
			"unknown type",
		},
		{
			"empty enum",
			&Schema{Enum: []string{}},
			"enum must not be empty",
		},
		{
			"duplicate enum value",
			NewEnum("RED", "RED"),
			"duplicate enum value",
		},
		{
			"required and optional overlap",
			&Schema{
				Properties:         map[string]*Schema{"id": NewType(TypeString)},
				OptionalProperties: map[string]*Schema{"id": NewType(TypeString)},
			},
			"both required and optional",
		},
		{
			"nested definitions",
			&Schema{
				Definitions: map[string]*Schema{
					"Outer": {Definitions: map[string]*Schema{"Inner": NewEmpty()}},
				},
			},
			"root schema only",
		},
		{
			"additionalProperties without properties",
			&Schema{AdditionalProperties: true},
			"requires the properties form",
		},
		{
			"null property schema",
			&Schema{Properties: map[string]*Schema{"a": nil}},
			"schema is null",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Check()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Check() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Check() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Check() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
