package jddf

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

// ErrRefDepthExceeded is returned when following refs passes the validator's
// depth limit, which happens with cyclic definitions.
var ErrRefDepthExceeded = errors.New("jddf: ref chain exceeds max depth")

const defaultMaxRefDepth = 32

// maximum edit distance for an unknown-property suggestion
const maxSuggestDistance = 3

// ValidationError describes one way an instance failed its schema. Paths are
// JSON-pointer style, the schema path relative to the root schema.
type ValidationError struct {
	InstancePath string `json:"instancePath"`
	SchemaPath   string `json:"schemaPath"`
	Message      string `json:"message"`
}

func (e ValidationError) Error() string {
	p := e.InstancePath
	if p == "" {
		p = "/"
	}
	return fmt.Sprintf("%s: %s", p, e.Message)
}

// Validator checks decoded JSON instances against a JDDF schema. The zero
// value is ready to use.
type Validator struct {
	// MaxRefDepth bounds how many refs may be followed while evaluating a
	// single spot in the instance. Zero means a default of 32.
	MaxRefDepth int
}

// Validate evaluates instance against schema and returns one ValidationError
// per violation. The instance is a decoded JSON value (the types produced by
// encoding/json into any). The error return is for broken schemas: undefined
// refs or a ref chain past MaxRefDepth.
func (v *Validator) Validate(schema *Schema, instance any) ([]ValidationError, error) {
	if schema == nil {
		return nil, errors.New("jddf: nil schema")
	}
	maxDepth := v.MaxRefDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxRefDepth
	}
	run := &validation{root: schema, maxDepth: maxDepth}
	if err := run.eval(schema, instance, "", ""); err != nil {
		return nil, err
	}
	return run.errs, nil
}

type validation struct {
	root     *Schema
	maxDepth int
	depth    int
	errs     []ValidationError
}

func (r *validation) report(instPath, schemaPath, format string, args ...any) {
	r.errs = append(r.errs, ValidationError{
		InstancePath: instPath,
		SchemaPath:   schemaPath,
		Message:      fmt.Sprintf(format, args...),
	})
}

func (r *validation) eval(s *Schema, inst any, instPath, schemaPath string) error {
	if s == nil {
		return errors.New("jddf: null schema")
	}
	switch s.Form() {
	case FormEmpty:
		return nil

	case FormRef:
		def, ok := r.root.Definitions[*s.Ref]
		if !ok || def == nil {
			return fmt.Errorf("jddf: ref to undefined %q", *s.Ref)
		}
		r.depth++
		if r.depth > r.maxDepth {
			return fmt.Errorf("%w (%d)", ErrRefDepthExceeded, r.maxDepth)
		}
		err := r.eval(def, inst, instPath, "/definitions/"+*s.Ref)
		r.depth--
		return err

	case FormType:
		r.evalType(s, inst, instPath, schemaPath)
		return nil

	case FormEnum:
		str, ok := inst.(string)
		if !ok {
			r.report(instPath, schemaPath, "expected enum string, got %s", jsonName(inst))
			return nil
		}
		for _, v := range s.Enum {
			if v == str {
				return nil
			}
		}
		r.report(instPath, schemaPath, "%q is not one of the enum values", str)
		return nil

	case FormElements:
		arr, ok := inst.([]any)
		if !ok {
			r.report(instPath, schemaPath, "expected array, got %s", jsonName(inst))
			return nil
		}
		for i, elem := range arr {
			if err := r.eval(s.Elements, elem, fmt.Sprintf("%s/%d", instPath, i), schemaPath+"/elements"); err != nil {
				return err
			}
		}
		return nil

	case FormProperties:
		obj, ok := inst.(map[string]any)
		if !ok {
			r.report(instPath, schemaPath, "expected object, got %s", jsonName(inst))
			return nil
		}
		for _, name := range sortedKeys(s.Properties) {
			val, present := obj[name]
			if !present {
				r.report(instPath, schemaPath+"/properties/"+name, "missing required property %q", name)
				continue
			}
			if err := r.eval(s.Properties[name], val, instPath+"/"+escapePointer(name), schemaPath+"/properties/"+name); err != nil {
				return err
			}
		}
		for _, name := range sortedKeys(s.OptionalProperties) {
			val, present := obj[name]
			if !present {
				continue
			}
			if err := r.eval(s.OptionalProperties[name], val, instPath+"/"+escapePointer(name), schemaPath+"/optionalProperties/"+name); err != nil {
				return err
			}
		}
		if !s.AdditionalProperties {
			for _, name := range sortedKeys(obj) {
				if _, ok := s.Properties[name]; ok {
					continue
				}
				if _, ok := s.OptionalProperties[name]; ok {
					continue
				}
				msg := fmt.Sprintf("unknown property %q", name)
				if hint := closestProperty(name, s); hint != "" {
					msg = fmt.Sprintf("%s (did you mean %q?)", msg, hint)
				}
				r.report(instPath+"/"+escapePointer(name), schemaPath, "%s", msg)
			}
		}
		return nil
	}
	return nil
}

func (r *validation) evalType(s *Schema, inst any, instPath, schemaPath string) {
	switch s.Type {
	case TypeBoolean:
		if _, ok := inst.(bool); !ok {
			r.report(instPath, schemaPath, "expected boolean, got %s", jsonName(inst))
		}
	case TypeString:
		if _, ok := inst.(string); !ok {
			r.report(instPath, schemaPath, "expected string, got %s", jsonName(inst))
		}
	case TypeTimestamp:
		str, ok := inst.(string)
		if !ok {
			r.report(instPath, schemaPath, "expected timestamp string, got %s", jsonName(inst))
			return
		}
		if _, err := time.Parse(time.RFC3339, str); err != nil {
			r.report(instPath, schemaPath, "%q is not an RFC 3339 timestamp", str)
		}
	case TypeFloat32, TypeFloat64:
		if _, ok := inst.(float64); !ok {
			r.report(instPath, schemaPath, "expected number, got %s", jsonName(inst))
		}
	default:
		num, ok := inst.(float64)
		if !ok {
			r.report(instPath, schemaPath, "expected %s, got %s", s.Type, jsonName(inst))
			return
		}
		if num != math.Trunc(num) {
			r.report(instPath, schemaPath, "expected %s, got non-integer number", s.Type)
			return
		}
		lo, hi := intRange(s.Type)
		if num < lo || num > hi {
			r.report(instPath, schemaPath, "number out of range for %s", s.Type)
		}
	}
}

func intRange(t Type) (float64, float64) {
	switch t {
	case TypeInt8:
		return math.MinInt8, math.MaxInt8
	case TypeUint8:
		return 0, math.MaxUint8
	case TypeInt16:
		return math.MinInt16, math.MaxInt16
	case TypeUint16:
		return 0, math.MaxUint16
	case TypeInt32:
		return math.MinInt32, math.MaxInt32
	case TypeUint32:
		return 0, math.MaxUint32
	}
	return 0, 0
}

// closestProperty suggests the schema property nearest to an unknown name.
func closestProperty(name string, s *Schema) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	consider := func(candidate string) {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(candidate))
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	for _, k := range sortedKeys(s.Properties) {
		consider(k)
	}
	for _, k := range sortedKeys(s.OptionalProperties) {
		consider(k)
	}
	return best
}

func jsonName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func escapePointer(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
