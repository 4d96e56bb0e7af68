package theme

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore keeps the preference in a key/value preferences table.
type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Migrate(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS preferences (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TIMESTAMPTZ NOT NULL DEFAULT now())`)
	return err
}

func (s *PGStore) Load(ctx context.Context) (Mode, bool, error) {
	var value string
	err := s.db.QueryRow(ctx, `SELECT value FROM preferences WHERE key=$1`, Key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	mode, ok := ParseMode(value)
	return mode, ok, nil
}

func (s *PGStore) Save(ctx context.Context, mode Mode) error {
	_, err := s.db.Exec(ctx, `INSERT INTO preferences (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, Key, string(mode))
	return err
}

var _ Store = (*PGStore)(nil)
