package runnertypes

import (
	"context"
	"time"
)

// Store is the persistence capability the reconciler depends on. It holds
// the durable lifetime of runner type records, keyed by name; the reconciler
// only reads and writes records transiently during a reconciliation pass.
type Store interface {
	// FindByName returns the record with the given name. When no record
	// matches it returns an error satisfying errors.IsNotFound; any other
	// failure is a store-level error.
	FindByName(ctx context.Context, name string) (*Record, error)

	// Upsert creates the record when it carries no prior identity binding
	// and updates it in place when it does. It returns the stored record
	// (with its identity populated) or an error satisfying
	// errors.IsStoreError on failure.
	Upsert(ctx context.Context, record *Record) (*Record, error)
}

// AuditEvent describes one successful create or update of a runner type.
type AuditEvent struct {
	Name      string    // Runner type name
	Operation string    // "created" or "updated"
	Record    *Record   // Snapshot of the record as stored
	Timestamp time.Time // When the operation completed
}

// AuditSink receives one event per successful created/updated outcome.
// Failures are reported through the reconciler's outcome sequence and are
// not separately audited.
type AuditSink interface {
	Record(ctx context.Context, event AuditEvent)
}
