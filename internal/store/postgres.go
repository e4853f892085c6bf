package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/plugin-registry-go/internal/registry"
)

// PostgresStore is a PostgreSQL implementation of registry.Repository.
// Records live in a single plugin_records table with the plugin map stored
// as a JSONB document.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed record store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Schema is the DDL for the record table, applied by deployment tooling.
const Schema = `
CREATE TABLE IF NOT EXISTS plugin_records (
	id         text PRIMARY KEY,
	plugins    jsonb NOT NULL,
	created_at timestamptz NOT NULL
)
`

func (p *PostgresStore) Create(ctx context.Context, plugins registry.PluginMap) (string, error) {
	id := uuid.NewString()

	payload, err := json.Marshal(plugins)
	if err != nil {
		return "", &registry.StorageError{Op: "create", Err: err}
	}

	query := `
		INSERT INTO plugin_records (id, plugins, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`

	tag, err := p.pool.Exec(ctx, query, id, payload, time.Now().UTC())
	if err != nil {
		return "", &registry.StorageError{Op: "create", Err: err}
	}

	// DO NOTHING swallows a duplicate id; treat that as a failed write
	// rather than returning an id that points at someone else's record.
	if tag.RowsAffected() == 0 {
		return "", &registry.StorageError{Op: "create", Err: errors.New("id collision")}
	}

	return id, nil
}

func (p *PostgresStore) GetByID(ctx context.Context, id string) (*registry.PluginRecord, error) {
	query := `
		SELECT id, plugins, created_at
		FROM plugin_records
		WHERE id = $1
	`

	var (
		record  registry.PluginRecord
		payload []byte
	)

	err := p.pool.QueryRow(ctx, query, id).Scan(&record.ID, &payload, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, registry.ErrNotFound
		}

		return nil, &registry.StorageError{Op: "get", Err: err}
	}

	if err := json.Unmarshal(payload, &record.Plugins); err != nil {
		return nil, &registry.StorageError{Op: "get", Err: err}
	}

	return &record, nil
}

func (p *PostgresStore) FindOlderThan(ctx context.Context, cutoff time.Time) ([]string, error) {
	query := `
		SELECT id
		FROM plugin_records
		WHERE created_at <= $1
	`

	rows, err := p.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, &registry.StorageError{Op: "find", Err: err}
	}
	defer rows.Close()

	var ids []string

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, &registry.StorageError{Op: "find", Err: err}
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, &registry.StorageError{Op: "find", Err: err}
	}

	return ids, nil
}

func (p *PostgresStore) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `DELETE FROM plugin_records WHERE id = ANY($1)`

	tag, err := p.pool.Exec(ctx, query, ids)
	if err != nil {
		return 0, &registry.StorageError{Op: "delete", Err: err}
	}

	return tag.RowsAffected(), nil
}

// Compile-time check.
var _ registry.Repository = (*PostgresStore)(nil)
