// ABOUTME: Schema version bookkeeping for the record store.
// ABOUTME: Upgrades are additive and idempotent so older on-disk stores reopen safely.
package store

import (
	"errors"
	"fmt"
	"strconv"

	badger "github.com/dgraph-io/badger/v3"
)

var schemaVersionKey = []byte("m" + sep + "schema_version")

// SchemaVersion reads the persisted schema version, returning 0 when the
// store has never been versioned.
func SchemaVersion(txn *badger.Txn) (int, error) {
	item, err := txn.Get(schemaVersionKey)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("read schema version: %w", err)
	}

	data, err := item.ValueCopy(nil)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, fmt.Errorf("parse schema version %q: %w", data, err)
	}
	return v, nil
}

// SetSchemaVersion persists the schema version.
func SetSchemaVersion(txn *badger.Txn, version int) error {
	if err := txn.Set(schemaVersionKey, []byte(strconv.Itoa(version))); err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return nil
}
