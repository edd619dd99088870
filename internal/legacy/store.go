// Package legacy reads the first-generation unstructured store: a single
// bbolt file with one bucket of JSON-serialized values keyed by the same
// names the current KV store uses. It is opened read-only and only ever
// touched by the migration manager.
package legacy

import (
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BucketName is the single bucket the old app wrote everything into.
var BucketName = []byte("gracepos")

// ErrNoStore means no legacy file exists; there is nothing to migrate.
var ErrNoStore = errors.New("legacy store not present")

type Store struct {
	db *bolt.DB
}

// Open opens the legacy file read-only. A missing file is reported as
// ErrNoStore so the caller can treat a fresh install as already migrated.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, ErrNoStore
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{
		ReadOnly: true,
		Timeout:  3 * time.Second,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open legacy store")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get unmarshals the value under key into out. Returns false when the key
// is absent or does not parse; the legacy store held hand-edited data and
// a corrupt entry must not abort migration of the remaining keys.
func (s *Store) Get(key string, out interface{}) (found bool, err error) {
	var raw []byte
	err = s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(BucketName)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, errors.Wrapf(err, "legacy entry %s is corrupt", key)
	}
	return true, nil
}

// Keys lists every key in the store, for migration diagnostics.
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(BucketName)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}
