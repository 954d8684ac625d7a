// Package postgres provides a Postgres-backed runner type store using
// pgx. Records are stored one row per name with the definition payload as
// JSONB; the unique name constraint enforces the one-record-per-name
// invariant at the store layer.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/runnerdeck/runnerdeck/pkg/errors"
	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

// Compile-time interface check to ensure proper implementation.
var _ runnertypes.Store = (*Store)(nil)

const connectTimeout = 5 * time.Second

const schema = `
CREATE TABLE IF NOT EXISTS runner_types (
    id         UUID PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    payload    JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Store is a Postgres-backed runner type store.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.WrapStore("connect", "runner type store", "", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.WrapStore("connect", "runner type store", "", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.WrapStore("connect", "runner type store", "", err)
	}

	return &Store{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// EnsureSchema creates the runner_types table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return errors.WrapStore("schema", "runner type store", "", err)
	}
	return nil
}

// FindByName returns the record with the given name, or a NotFoundError
// when no row matches.
func (s *Store) FindByName(ctx context.Context, name string) (*runnertypes.Record, error) {
	var (
		id      string
		payload []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, payload FROM runner_types WHERE name = $1`, name,
	).Scan(&id, &payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NewNotFoundError("runner type", name)
		}
		return nil, errors.WrapStore("find", "runner type", name, err)
	}

	record, err := decodeRecord(payload)
	if err != nil {
		return nil, errors.WrapStore("find", "runner type", name, err)
	}
	record.ID = id
	return record, nil
}

// Upsert inserts or updates the row for the record's name. A record without
// identity gets a fresh UUID; on a name conflict the existing row's id is
// kept, so identity is stable across updates regardless of the id carried in.
func (s *Store) Upsert(ctx context.Context, record *runnertypes.Record) (*runnertypes.Record, error) {
	if record == nil {
		return nil, errors.NewStoreError("upsert", "runner type", "", errors.New("record cannot be nil"))
	}
	if record.Name == "" {
		return nil, errors.NewStoreError("upsert", "runner type", "", errors.New("record name cannot be empty"))
	}

	payload, err := encodeRecord(record)
	if err != nil {
		return nil, errors.WrapStore("upsert", "runner type", record.Name, err)
	}

	id := record.ID
	if id == "" {
		id = uuid.NewString()
	}

	var storedID string
	err = s.pool.QueryRow(ctx, `
		INSERT INTO runner_types (id, name, payload)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (name) DO UPDATE SET
		  payload = EXCLUDED.payload,
		  updated_at = now()
		RETURNING id
	`, id, record.Name, payload).Scan(&storedID)
	if err != nil {
		return nil, errors.WrapStore("upsert", "runner type", record.Name, err)
	}

	stored := record.Copy()
	stored.ID = storedID
	return stored, nil
}

// encodeRecord serializes a record to its JSONB payload. The identity lives
// in its own column, never inside the payload.
func encodeRecord(record *runnertypes.Record) ([]byte, error) {
	payload := record.Copy()
	payload.ID = ""
	return json.Marshal(payload)
}

// decodeRecord deserializes a JSONB payload back into a record.
func decodeRecord(payload []byte) (*runnertypes.Record, error) {
	var record runnertypes.Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
