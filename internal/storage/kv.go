package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/skyraid/internal/core"
)

// ErrNotFound is returned when a key or run does not exist.
var ErrNotFound = errors.New("storage: not found")

// Put stores v under key, encoded with msgpack.
func (s *Store) Put(key string, v any) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: cannot encode %q: %w", key, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot put %q: %w", key, err)
	}
	return nil
}

// Get decodes the value stored under key into dst.
// It returns ErrNotFound when the key is missing.
func (s *Store) Get(key string, dst any) error {
	var data []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("storage: key %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot get %q: %w", key, err)
	}

	if err := msgpack.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("storage: cannot decode %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}

// storePrefs adapts a Store to core.Prefs. Failures are logged and reported
// as false so the game falls back to its defaults.
type storePrefs struct {
	store *Store
	log   *log.Logger
}

// Prefs returns a core.Prefs backed by store. A nil store yields prefs that
// never save and always fall back. A nil logger disables failure logging.
func Prefs(store *Store, logger *log.Logger) core.Prefs {
	return &storePrefs{store: store, log: logger}
}

func (p *storePrefs) Save(key string, v any) bool {
	if p.store == nil {
		return false
	}
	if err := p.store.Put(key, v); err != nil {
		p.warn("prefs save failed", key, err)
		return false
	}
	return true
}

func (p *storePrefs) Load(key string, dst any) bool {
	if p.store == nil {
		return false
	}
	err := p.store.Get(key, dst)
	if err == nil {
		return true
	}
	if !errors.Is(err, ErrNotFound) {
		p.warn("prefs load failed", key, err)
	}
	return false
}

func (p *storePrefs) warn(msg, key string, err error) {
	if p.log != nil {
		p.log.Warn(msg, "key", key, "err", err)
	}
}
