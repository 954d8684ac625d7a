// Package runnertypes defines the runner type data model: the catalog-side
// Definition, the store-side Record, and the capability interfaces the
// reconciler consumes. A runner type names an execution backend (local
// command, remote command, HTTP call, workflow engine) together with the
// parameters it accepts and the module that implements it.
package runnertypes

import (
	"fmt"

	"github.com/runnerdeck/runnerdeck/pkg/errors"
)

// Definition is the unit of the catalog: one canonical runner type.
// Definitions are constructed statically at process start and treated as
// immutable for the duration of the run; they are never persisted directly
// but translated into a Record by the reconciler.
type Definition struct {
	Name         string                   `json:"name" yaml:"name"`                                   // Globally unique natural key
	Description  string                   `json:"description,omitempty" yaml:"description,omitempty"` // Human-readable description
	Enabled      bool                     `json:"enabled" yaml:"enabled"`                             // Whether the runner type is available for use
	Experimental bool                     `json:"experimental,omitempty" yaml:"experimental,omitempty"` // Selection flag only, never persisted
	RunnerModule string                   `json:"runner_module" yaml:"runner_module"`                 // Module reference implementing the backend
	QueryModule  string                   `json:"query_module,omitempty" yaml:"query_module,omitempty"` // Optional module for asynchronous status polling
	Parameters   map[string]ParameterSpec `json:"parameters,omitempty" yaml:"parameters,omitempty"`   // Declared inputs keyed by parameter name
}

// WithoutExperimental returns a copy of the definition with the experimental
// marker cleared. The catalog value itself is never mutated, so repeated
// reconciliation passes are side-effect-free on the catalog.
func (d Definition) WithoutExperimental() Definition {
	out := d.Copy()
	out.Experimental = false
	return out
}

// Copy returns a copy of the definition sharing no state with the original,
// including parameter default values.
func (d Definition) Copy() Definition {
	out := d
	out.Parameters = copyParameters(d.Parameters)
	return out
}

// Validate checks the definition's shape: required fields present, parameter
// specs internally consistent, runner module non-empty. It returns a
// *errors.ValidationError describing the first problem found.
func (d Definition) Validate() error {
	if d.Name == "" {
		return errors.NewValidationError("name", d.Name, "runner type name cannot be empty")
	}
	if d.RunnerModule == "" {
		return errors.NewValidationError("runner_module", d.RunnerModule, "runner module cannot be empty")
	}
	for name, spec := range d.Parameters {
		if name == "" {
			return errors.NewValidationError("parameters", nil, "parameter name cannot be empty")
		}
		if err := spec.Validate(); err != nil {
			return errors.WrapValidation(fmt.Sprintf("parameters.%s", name), err)
		}
	}
	return nil
}
