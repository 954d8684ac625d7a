package runnertypes

import (
	"fmt"
)

// ParameterType enumerates the value types a runner parameter may declare.
type ParameterType string

// Supported parameter types.
const (
	ParameterTypeString  ParameterType = "string"
	ParameterTypeInteger ParameterType = "integer"
	ParameterTypeBoolean ParameterType = "boolean"
	ParameterTypeObject  ParameterType = "object"
)

// Valid reports whether the parameter type is one of the supported types.
func (t ParameterType) Valid() bool {
	switch t {
	case ParameterTypeString, ParameterTypeInteger, ParameterTypeBoolean, ParameterTypeObject:
		return true
	}
	return false
}

// String returns the string representation of the parameter type.
func (t ParameterType) String() string {
	return string(t)
}

// ParameterSpec describes one named input a runner type accepts.
type ParameterSpec struct {
	Description string        `json:"description,omitempty" yaml:"description,omitempty"` // Human-readable description
	Type        ParameterType `json:"type" yaml:"type"`                                   // Value type of the parameter
	Required    bool          `json:"required,omitempty" yaml:"required,omitempty"`       // Whether callers must supply a value
	Default     any           `json:"default,omitempty" yaml:"default,omitempty"`         // Default value, nil when absent
	Immutable   bool          `json:"immutable,omitempty" yaml:"immutable,omitempty"`     // Once set, not overridable by downstream callers
}

// Validate checks the spec's internal consistency: the type must be known,
// a required parameter must not carry a default, and a default must match
// the declared type.
func (s ParameterSpec) Validate() error {
	if !s.Type.Valid() {
		return fmt.Errorf("unknown parameter type %q", s.Type)
	}
	if s.Required && s.Default != nil {
		return fmt.Errorf("required parameter cannot carry a default")
	}
	if s.Default != nil && !s.defaultMatchesType() {
		return fmt.Errorf("default value %v does not match declared type %s", s.Default, s.Type)
	}
	return nil
}

// Copy returns a copy of the spec whose default value shares no state with
// the original. Object defaults decoded from YAML or JSON arrive as maps,
// so a plain struct copy would alias them.
func (s ParameterSpec) Copy() ParameterSpec {
	out := s
	out.Default = copyValue(s.Default)
	return out
}

// copyParameters deep-copies a parameter map, spec by spec.
func copyParameters(params map[string]ParameterSpec) map[string]ParameterSpec {
	if params == nil {
		return nil
	}
	out := make(map[string]ParameterSpec, len(params))
	for name, spec := range params {
		out[name] = spec.Copy()
	}
	return out
}

// copyValue deep-copies the container shapes YAML and JSON decoders
// produce; scalars copy by value.
func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = copyValue(item)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(val))
		for k, item := range val {
			out[k] = copyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}

// defaultMatchesType reports whether the default value agrees with the
// declared parameter type. Integer defaults tolerate the numeric types YAML
// and JSON decoders produce.
func (s ParameterSpec) defaultMatchesType() bool {
	switch s.Type {
	case ParameterTypeString:
		_, ok := s.Default.(string)
		return ok
	case ParameterTypeBoolean:
		_, ok := s.Default.(bool)
		return ok
	case ParameterTypeInteger:
		switch v := s.Default.(type) {
		case int, int32, int64, uint, uint32, uint64:
			return true
		case float64:
			return v == float64(int64(v))
		}
		return false
	case ParameterTypeObject:
		switch s.Default.(type) {
		case map[string]any, map[any]any:
			return true
		}
		return false
	}
	return false
}
