// ABOUTME: Typed collections over the badger keyspace with secondary indexes.
// ABOUTME: Records are JSON values; index entries are key-only markers kept in step on every write.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"
)

// sep separates key segments. Record keys are UUIDs or fixed well-known
// strings and index values never contain NUL, so segments stay unambiguous.
const sep = "\x00"

// Index is a secondary index over a collection. Value extracts the
// indexed value from a record; composite indexes join their parts before
// returning. Records with an empty value are not indexed.
type Index[T any] struct {
	Name  string
	Value func(*T) string
}

// Collection is a named group of records with one primary key and zero
// or more secondary indexes.
type Collection[T any] struct {
	Name    string
	Key     func(*T) string
	Indexes []Index[T]
}

func (c *Collection[T]) recordKey(key string) []byte {
	return []byte("r" + sep + c.Name + sep + key)
}

func (c *Collection[T]) recordPrefix() []byte {
	return []byte("r" + sep + c.Name + sep)
}

func (c *Collection[T]) indexKey(index, value, key string) []byte {
	return []byte("i" + sep + c.Name + sep + index + sep + value + sep + key)
}

func (c *Collection[T]) indexPrefix(index string) []byte {
	return []byte("i" + sep + c.Name + sep + index + sep)
}

// Get retrieves a record by primary key.
func (c *Collection[T]) Get(txn *badger.Txn, key string) (*T, error) {
	item, err := txn.Get(c.recordKey(key))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, fmt.Errorf("%s %q: %w", c.Name, key, ErrNotFound)
		}
		return nil, fmt.Errorf("get %s %q: %w", c.Name, key, err)
	}

	data, err := item.ValueCopy(nil)
	if err != nil {
		return nil, fmt.Errorf("read %s %q: %w", c.Name, key, err)
	}

	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal %s %q: %w", c.Name, key, err)
	}
	return &rec, nil
}

// Put upserts a record, replacing any prior version and moving its
// index entries if indexed values changed.
func (c *Collection[T]) Put(txn *badger.Txn, rec *T) error {
	key := c.Key(rec)

	old, err := c.Get(txn, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if old != nil {
		if err := c.deleteIndexEntries(txn, old, key); err != nil {
			return err
		}
	}

	return c.write(txn, rec, key)
}

// Add inserts a record, failing with ErrDuplicateKey if the primary key
// is already present.
func (c *Collection[T]) Add(txn *badger.Txn, rec *T) error {
	key := c.Key(rec)
	if _, err := txn.Get(c.recordKey(key)); err == nil {
		return fmt.Errorf("%s %q: %w", c.Name, key, ErrDuplicateKey)
	} else if !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("add %s %q: %w", c.Name, key, err)
	}

	return c.write(txn, rec, key)
}

// Delete removes a record and its index entries. Deleting an absent
// record is a no-op.
func (c *Collection[T]) Delete(txn *badger.Txn, key string) error {
	old, err := c.Get(txn, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	if err := c.deleteIndexEntries(txn, old, key); err != nil {
		return err
	}
	if err := txn.Delete(c.recordKey(key)); err != nil {
		return fmt.Errorf("delete %s %q: %w", c.Name, key, err)
	}
	return nil
}

// GetAll returns every record in the collection, ordered by primary key.
func (c *Collection[T]) GetAll(txn *badger.Txn) ([]*T, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = c.recordPrefix()
	it := txn.NewIterator(opts)
	defer it.Close()

	var recs []*T
	for it.Rewind(); it.Valid(); it.Next() {
		data, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", c.Name, err)
		}
		var rec T
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", c.Name, err)
		}
		recs = append(recs, &rec)
	}
	return recs, nil
}

// GetAllByIndex returns records whose indexed value matches exactly,
// ordered by primary key.
func (c *Collection[T]) GetAllByIndex(txn *badger.Txn, index, value string) ([]*T, error) {
	return c.collectIndex(txn, index, func(v string) int {
		if v == value {
			return 0
		}
		if v < value {
			return -1
		}
		return 1
	}, []byte("i"+sep+c.Name+sep+index+sep+value+sep))
}

// GetAllByIndexRange returns records whose indexed value falls within
// [lo, hi] inclusive, ordered by indexed value then primary key.
func (c *Collection[T]) GetAllByIndexRange(txn *badger.Txn, index, lo, hi string) ([]*T, error) {
	return c.collectIndex(txn, index, func(v string) int {
		if v < lo {
			return -1
		}
		if v > hi {
			return 1
		}
		return 0
	}, append(c.indexPrefix(index), []byte(lo)...))
}

// collectIndex walks index entries starting at seek, keeping records
// whose value compares equal and stopping once values compare high.
func (c *Collection[T]) collectIndex(txn *badger.Txn, index string, cmp func(string) int, seek []byte) ([]*T, error) {
	prefix := c.indexPrefix(index)

	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	var recs []*T
	for it.Seek(seek); it.Valid(); it.Next() {
		rest := it.Item().Key()[len(prefix):]
		i := bytes.Index(rest, []byte(sep))
		if i < 0 {
			continue
		}
		value, key := string(rest[:i]), string(rest[i+1:])

		switch cmp(value) {
		case -1:
			continue
		case 1:
			return recs, nil
		}

		rec, err := c.Get(txn, key)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Count returns the number of records in the collection.
func (c *Collection[T]) Count(txn *badger.Txn) (int, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = c.recordPrefix()
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	n := 0
	for it.Rewind(); it.Valid(); it.Next() {
		n++
	}
	return n, nil
}

// Reindex rewrites the index entries for every record. Safe to run
// repeatedly; used by schema upgrades when indexes are added.
func (c *Collection[T]) Reindex(txn *badger.Txn) error {
	recs, err := c.GetAll(txn)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if err := c.writeIndexEntries(txn, rec, c.Key(rec)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collection[T]) write(txn *badger.Txn, rec *T, key string) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal %s %q: %w", c.Name, key, err)
	}
	if err := txn.Set(c.recordKey(key), data); err != nil {
		return fmt.Errorf("write %s %q: %w", c.Name, key, err)
	}
	return c.writeIndexEntries(txn, rec, key)
}

func (c *Collection[T]) writeIndexEntries(txn *badger.Txn, rec *T, key string) error {
	for _, idx := range c.Indexes {
		value := idx.Value(rec)
		if value == "" {
			continue
		}
		if err := txn.Set(c.indexKey(idx.Name, value, key), nil); err != nil {
			return fmt.Errorf("index %s.%s %q: %w", c.Name, idx.Name, key, err)
		}
	}
	return nil
}

func (c *Collection[T]) deleteIndexEntries(txn *badger.Txn, rec *T, key string) error {
	for _, idx := range c.Indexes {
		value := idx.Value(rec)
		if value == "" {
			continue
		}
		if err := txn.Delete(c.indexKey(idx.Name, value, key)); err != nil {
			return fmt.Errorf("unindex %s.%s %q: %w", c.Name, idx.Name, key, err)
		}
	}
	return nil
}
