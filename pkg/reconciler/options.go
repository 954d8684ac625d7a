package reconciler

import (
	"github.com/rs/zerolog"

	"github.com/runnerdeck/runnerdeck/pkg/errors"
	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

// options configures a reconciler.
type options struct {
	includeExperimental bool
	audit               runnertypes.AuditSink
	logger              *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		includeExperimental: false,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithExperimental includes definitions marked experimental in the
// reconciliation pass. Experimental definitions are skipped by default.
func WithExperimental(include bool) Option {
	return func(o *options) error {
		o.includeExperimental = include
		return nil
	}
}

// WithAuditSink sets the sink receiving one event per successful created or
// updated outcome.
func WithAuditSink(sink runnertypes.AuditSink) Option {
	return func(o *options) error {
		if sink == nil {
			return &errors.ValidationError{
				Field:   "audit sink",
				Message: "cannot be nil",
			}
		}
		o.audit = sink
		return nil
	}
}

// WithLogger sets the logger used during reconciliation. When unset, the
// logger is taken from the context passed to Reconcile.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return &errors.ValidationError{
				Field:   "logger",
				Message: "cannot be nil",
			}
		}
		o.logger = logger
		return nil
	}
}
