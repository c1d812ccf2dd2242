package storage

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// SQLite persists snapshots in a single kv table. An embedded database
// file is the local, single-user stand-in for the browser storage the
// collections originally lived in.
type SQLite struct {
	db *sqlx.DB
}

func NewSQLite(db *sqlx.DB) *SQLite {
	return &SQLite{db: db}
}

func (s *SQLite) Load(key string) ([]byte, error) {
	var value []byte
	err := s.db.Get(&value, "SELECT value FROM kv WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *SQLite) Save(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`, key, value)
	return err
}
