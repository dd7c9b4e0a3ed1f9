package jddf

import "fmt"

var validTypes = map[Type]bool{
	TypeBoolean:   true,
	TypeFloat32:   true,
	TypeFloat64:   true,
	TypeInt8:      true,
	TypeUint8:     true,
	TypeInt16:     true,
	TypeUint16:    true,
	TypeInt32:     true,
	TypeUint32:    true,
	TypeString:    true,
	TypeTimestamp: true,
}

// Check verifies the schema is well-formed: each subschema uses the keywords
// of at most one form, definitions appear on the root only, refs resolve
// against the root definitions, type names are known, and enums are non-empty
// without duplicates.
func (s *Schema) Check() error {
	return s.check(s, true, "")
}

func (s *Schema) check(root *Schema, isRoot bool, path string) error {
	if s == nil {
		return fmt.Errorf("%s: schema is null", pathLabel(path))
	}
	if !isRoot && s.Definitions != nil {
		return fmt.Errorf("%s: definitions are allowed on the root schema only", pathLabel(path))
	}

	forms := 0
	if s.Ref != nil {
		forms++
	}
	if s.Type != "" {
		forms++
	}
	if s.Enum != nil {
		forms++
	}
	if s.Elements != nil {
		forms++
	}
	if s.Properties != nil || s.OptionalProperties != nil {
		forms++
	}
	if forms > 1 {
		return fmt.Errorf("%s: schema mixes keywords of multiple forms", pathLabel(path))
	}
	if s.AdditionalProperties && s.Properties == nil && s.OptionalProperties == nil {
		return fmt.Errorf("%s: additionalProperties requires the properties form", pathLabel(path))
	}

	switch s.Form() {
	case FormRef:
		if _, ok := root.Definitions[*s.Ref]; !ok {
			return fmt.Errorf("%s: ref to undefined %q", pathLabel(path), *s.Ref)
		}
	case FormType:
		if !validTypes[s.Type] {
			return fmt.Errorf("%s: unknown type %q", pathLabel(path), s.Type)
		}
	case FormEnum:
		if len(s.Enum) == 0 {
			return fmt.Errorf("%s: enum must not be empty", pathLabel(path))
		}
		seen := make(map[string]bool, len(s.Enum))
		for _, v := range s.Enum {
			if seen[v] {
				return fmt.Errorf("%s: duplicate enum value %q", pathLabel(path), v)
			}
			seen[v] = true
		}
	case FormElements:
		if err := s.Elements.check(root, false, path+"/elements"); err != nil {
			return err
		}
	case FormProperties:
		for name, sub := range s.Properties {
			if s.OptionalProperties != nil && s.OptionalProperties[name] != nil {
				return fmt.Errorf("%s: property %q is both required and optional", pathLabel(path), name)
			}
			if err := sub.check(root, false, path+"/properties/"+name); err != nil {
				return err
			}
		}
		for name, sub := range s.OptionalProperties {
			if err := sub.check(root, false, path+"/optionalProperties/"+name); err != nil {
				return err
			}
		}
	}

	for name, def := range s.Definitions {
		if err := def.check(root, false, "/definitions/"+name); err != nil {
			return err
		}
	}
	return nil
}

func pathLabel(path string) string {
	if path == "" {
		return "root schema"
	}
	return path
}
