package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter hands out the global event order. Events live in one
// table per type, so their own IDs cannot be compared across tables.
//
// The counter is a single row updated with RETURNING, which SQLite and
// PostgreSQL both accept. The mutex keeps one process from racing itself
// on SQLite, where concurrent writers get SQLITE_BUSY.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

const (
	createSequenceTable = `CREATE TABLE IF NOT EXISTS global_sequence (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	next_val BIGINT NOT NULL DEFAULT 1
)`
	seedSequence    = `INSERT INTO global_sequence (id, next_val) VALUES (1, 1) ON CONFLICT (id) DO NOTHING`
	advanceSequence = `UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`
)

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	for _, stmt := range []string{createSequenceTable, seedSequence} {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("prepare global_sequence: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

func (c *sequenceCounter) Next(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int64
	if err := c.db.QueryRowContext(ctx, advanceSequence).Scan(&n); err != nil {
		return 0, fmt.Errorf("advance global_sequence: %w", err)
	}
	return n, nil
}
