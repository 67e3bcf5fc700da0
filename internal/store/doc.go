package store

import (
	"context"
	"database/sql"
	"errors"
)

var (
	ErrDocLoad = errors.New("failed to load document")
	ErrDocSave = errors.New("failed to save document")
)

// DocStore reads and writes opaque JSON documents keyed by name. The session
// aggregate is stored whole under a single key.
type DocStore struct {
	db *sql.DB
}

func NewDocStore(db *sql.DB) DocStore {
	return DocStore{db: db}
}

func (d DocStore) LoadDoc(ctx context.Context, key string) ([]byte, bool, error) {
	var doc []byte
	row := d.db.QueryRowContext(ctx, `SELECT doc FROM session_doc WHERE key = ?`, key)
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}

		return nil, false, errors.Join(err, ErrDocLoad)
	}

	return doc, true, nil
}

func (d DocStore) SaveDoc(ctx context.Context, key string, doc []byte) error {
	const query = `
		INSERT INTO session_doc (key, doc, updated_on)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET doc = excluded.doc, updated_on = excluded.updated_on`

	if _, err := d.db.ExecContext(ctx, query, key, doc); err != nil {
		return errors.Join(err, ErrDocSave)
	}

	return nil
}
