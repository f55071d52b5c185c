// Package journal records inventory notifications in a SQLite table so a
// session can list what happened. The default database lives in memory and
// disappears with the process.
package journal

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/larder/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// ErrClosed is returned by operations on a closed Journal.
var ErrClosed = errors.New("journal is closed")

// Journal is a types.Notifier that appends every notification to SQLite.
type Journal struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens the journal at dsn and creates its schema. An empty dsn
// means MemoryDSN.
func Open(dsn string) (*Journal, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// Each new connection to :memory: is a new, empty database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Notify appends n to the journal.
func (j *Journal) Notify(n types.Notification) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return ErrClosed
	}
	if n.Time.IsZero() {
		n.Time = time.Now()
	}
	_, err := j.db.Exec(
		`INSERT INTO notifications (id, created_at, collection_id, op, item_key, quantity, message, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.Must(uuid.NewV7()).String(),
		n.Time.UTC().Format(time.RFC3339Nano),
		n.CollectionID,
		n.Op,
		n.Key,
		n.Quantity,
		n.Message,
		boolToInt(n.Failed),
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// Recent returns up to limit notifications, newest first. A limit of zero
// or less returns all of them.
func (j *Journal) Recent(limit int) ([]types.Notification, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.Query(
		`SELECT created_at, collection_id, op, item_key, quantity, message, failed
		 FROM notifications ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	out := []types.Notification{}
	for rows.Next() {
		var (
			n       types.Notification
			created string
			failed  int
		)
		if err := rows.Scan(&created, &n.CollectionID, &n.Op, &n.Key, &n.Quantity, &n.Message, &failed); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.Time, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", created, err)
		}
		n.Failed = failed != 0
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return out, nil
}

// Count returns the number of recorded notifications.
func (j *Journal) Count() (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return 0, ErrClosed
	}
	var n int
	if err := j.db.QueryRow(`SELECT COUNT(*) FROM notifications`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count notifications: %w", err)
	}
	return n, nil
}

// Close releases the database. Idempotent.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
