// ABOUTME: Badger-backed record store connection and lifecycle management.
// ABOUTME: One memoized default connection per process; View/Update transaction scopes.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
)

// ErrUnavailable indicates the underlying storage could not be opened.
// Nothing in the data layer functions without it, so callers should
// treat this as fatal.
var ErrUnavailable = errors.New("storage unavailable")

// ErrNotFound indicates a record does not exist in its collection.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateKey indicates an Add collided with an existing record.
var ErrDuplicateKey = errors.New("duplicate key")

// DB wraps the badger key-value store.
type DB struct {
	b    *badger.DB
	path string
}

var (
	defaultDB   *DB
	defaultOnce sync.Once
	defaultErr  error
)

// Open opens or creates a record store at the given directory.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(path, 0750); err != nil {
		return nil, fmt.Errorf("%w: create data directory: %v", ErrUnavailable, err)
	}

	opts := badger.DefaultOptions(path).WithLogger(nil)
	b, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, path, err)
	}

	return &DB{b: b, path: path}, nil
}

// OpenDefault opens the store at the default data path.
// Idempotent; every call returns the same live connection.
func OpenDefault() (*DB, error) {
	defaultOnce.Do(func() {
		defaultDB, defaultErr = Open(DefaultPath())
	})
	return defaultDB, defaultErr
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fittrack")
}

// DefaultPath returns the default store directory.
func DefaultPath() string {
	return filepath.Join(DataDir(), "db")
}

// Close closes the store.
func (d *DB) Close() error {
	if d.b != nil {
		return d.b.Close()
	}
	return nil
}

// View runs fn in a read-only transaction. All reads within fn observe
// one consistent snapshot.
func (d *DB) View(fn func(txn *badger.Txn) error) error {
	return d.b.View(fn)
}

// Update runs fn in a read-write transaction. All writes issued within
// fn become visible together on commit, or not at all; the transaction
// is released automatically whether fn succeeds or fails.
func (d *DB) Update(fn func(txn *badger.Txn) error) error {
	return d.b.Update(fn)
}
