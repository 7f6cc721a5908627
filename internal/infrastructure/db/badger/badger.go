// Package badger is the default durable ports.KVStore: an embedded Badger
// database in a local directory.
package badger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	badgerdb "github.com/dgraph-io/badger/v4"
)

var errClosed = errors.New("badger store: not opened")

// Config captures the settings for opening the store.
type Config struct {
	// Path is the data directory. Ignored when InMemory is set.
	Path     string
	InMemory bool
}

// KVStore wraps a Badger database.
type KVStore struct {
	db *badgerdb.DB
}

// Open opens (creating if needed) the Badger database described by cfg.
func Open(cfg Config) (*KVStore, error) {
	if !cfg.InMemory && strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("badger store: path is required")
	}
	opts := badgerdb.DefaultOptions(cfg.Path).WithLogger(nil)
	if cfg.InMemory {
		opts = badgerdb.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger open: %w", err)
	}
	return &KVStore{db: db}, nil
}

func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	if s == nil || s.db == nil {
		return "", false, errClosed
	}
	var (
		out   string
		found bool
	)
	err := s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badgerdb.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			out = string(val)
			return nil
		})
	})
	if err != nil {
		return "", false, fmt.Errorf("badger get %q: %w", key, err)
	}
	return out, found, nil
}

func (s *KVStore) Set(_ context.Context, key, value string) error {
	if s == nil || s.db == nil {
		return errClosed
	}
	err := s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("badger set %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(_ context.Context, key string) error {
	if s == nil || s.db == nil {
		return errClosed
	}
	err := s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("badger delete %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Ping(context.Context) error {
	if s == nil || s.db == nil || s.db.IsClosed() {
		return errClosed
	}
	return nil
}

func (s *KVStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
