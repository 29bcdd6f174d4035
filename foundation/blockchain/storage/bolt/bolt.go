// Package bolt implements the ability to read and write the ledger to a
// bbolt key/value database.
package bolt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/storage"
	"go.etcd.io/bbolt"
)

// Names of the bucket and keys holding the two records.
var (
	bucketLedger = []byte("ledger")
	keyChain     = []byte("chain")
	keyPending   = []byte("pending")
)

// ErrNoSnapshot is returned from Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot saved")

// Bolt represents the serialization implementation for reading and storing
// the ledger in a bbolt database. The chain and pending records are written
// in a single transaction. This implements the storage.Storage interface.
type Bolt struct {
	db *bbolt.DB
}

// New opens or creates the database file at the specified path.
func New(dbPath string) (*Bolt, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	// The timeout keeps a second process from blocking forever on the
	// file lock held by the first.
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %q: %w", dbPath, err)
	}

	return &Bolt{db: db}, nil
}

// Close releases the database file.
func (b *Bolt) Close() error {
	return b.db.Close()
}

// Load reads the chain and pending records.
func (b *Bolt) Load() (storage.Snapshot, error) {
	var chain, pending []byte

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLedger)
		if bucket == nil {
			return ErrNoSnapshot
		}

		// Values are only valid for the life of the transaction.
		chain = append([]byte(nil), bucket.Get(keyChain)...)
		pending = append([]byte(nil), bucket.Get(keyPending)...)

		return nil
	})
	if err != nil {
		return storage.Snapshot{}, err
	}

	if len(chain) == 0 || len(pending) == 0 {
		return storage.Snapshot{}, ErrNoSnapshot
	}

	return storage.FromRecords(chain, pending)
}

// Save writes the chain and pending records in one transaction.
func (b *Bolt) Save(snap storage.Snapshot) error {
	chain, pending, err := storage.Records(snap)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketLedger)
		if err != nil {
			return err
		}

		if err := bucket.Put(keyChain, chain); err != nil {
			return err
		}

		return bucket.Put(keyPending, pending)
	})
}
