package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// PostgresStore persists snapshots in a single keyed table:
//
//	CREATE TABLE IF NOT EXISTS cart_snapshots (
//	    key        TEXT PRIMARY KEY,
//	    data       TEXT NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresStore struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresStore(db *sql.DB, logger *logrus.Logger) *PostgresStore {
	return &PostgresStore{
		db:  db,
		log: logger,
	}
}

func (p *PostgresStore) Read(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT data FROM cart_snapshots WHERE key = $1`

	var data string
	err := p.db.QueryRowContext(ctx, query, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		p.log.Infof("PostgresStore: No snapshot stored under key '%s'", key)
		return "", false, nil
	}
	if err != nil {
		p.log.Errorf("PostgresStore: SELECT failed for key '%s': %v", key, err)
		return "", false, fmt.Errorf("could not read snapshot for key %q: %w", key, err)
	}
	return data, true, nil
}

func (p *PostgresStore) Write(ctx context.Context, key, value string) error {
	query := `
        INSERT INTO cart_snapshots (key, data, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
    `
	if _, err := p.db.ExecContext(ctx, query, key, value); err != nil {
		p.log.Errorf("PostgresStore: UPSERT failed for key '%s': %v", key, err)
		return fmt.Errorf("could not write snapshot for key %q: %w", key, err)
	}
	return nil
}
