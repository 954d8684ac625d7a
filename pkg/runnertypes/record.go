package runnertypes

// Record is the persisted counterpart of a Definition. It carries a
// store-assigned identity that is stable across updates: the ID is assigned
// on first creation and carried forward on every subsequent update of the
// same named definition, never regenerated.
//
// The experimental marker is deliberately absent: it is a selection flag on
// the catalog side, not a persisted field.
type Record struct {
	ID           string                   `json:"id,omitempty" yaml:"id,omitempty"` // Opaque store-assigned identity
	Name         string                   `json:"name" yaml:"name"`
	Description  string                   `json:"description,omitempty" yaml:"description,omitempty"`
	Enabled      bool                     `json:"enabled" yaml:"enabled"`
	RunnerModule string                   `json:"runner_module" yaml:"runner_module"`
	QueryModule  string                   `json:"query_module,omitempty" yaml:"query_module,omitempty"`
	Parameters   map[string]ParameterSpec `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// NewRecord builds a Record from a definition. The caller is expected to
// have validated the definition first; the record carries no identity until
// the store assigns one.
func NewRecord(def Definition) *Record {
	params := copyParameters(def.Parameters)
	return &Record{
		Name:         def.Name,
		Description:  def.Description,
		Enabled:      def.Enabled,
		RunnerModule: def.RunnerModule,
		QueryModule:  def.QueryModule,
		Parameters:   params,
	}
}

// Copy returns a deep copy of the record.
func (r *Record) Copy() *Record {
	if r == nil {
		return nil
	}
	out := *r
	out.Parameters = copyParameters(r.Parameters)
	return &out
}
