// Package disk implements the ability to read and write the ledger to a
// single text file on disk.
package disk

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ardanlabs/ledger/foundation/blockchain/storage"
)

// Disk represents the serialization implementation for reading and storing
// the ledger in one file. The file holds two lines, the chain and then the
// pending transactions. This implements the storage.Storage interface.
type Disk struct {
	mu     sync.Mutex
	dbPath string
}

// New constructs a Disk value for use. The directory for the file is
// created if it doesn't exist, the file itself is created on the first Save.
func New(dbPath string) (*Disk, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	return &Disk{dbPath: dbPath}, nil
}

// Close in this implementation has nothing to do since the file is opened
// and closed on every call.
func (d *Disk) Close() error {
	return nil
}

// Load reads the chain and pending transactions from disk.
func (d *Disk) Load() (storage.Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	f, err := os.Open(d.dbPath)
	if err != nil {
		return storage.Snapshot{}, err
	}
	defer f.Close()

	snap, err := storage.Decode(f)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("%s: %w", d.dbPath, err)
	}

	return snap, nil
}

// Save writes the chain and pending transactions to disk. The data is
// written to a temporary file first and then renamed over the old file, so
// a failed write leaves the previous state intact.
func (d *Disk) Save(snap storage.Snapshot) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	f, err := os.CreateTemp(filepath.Dir(d.dbPath), filepath.Base(d.dbPath)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if err := storage.Encode(f, snap); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, d.dbPath); err != nil {
		os.Remove(tmp)
		return err
	}

	return nil
}
