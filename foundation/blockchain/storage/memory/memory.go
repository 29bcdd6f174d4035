// Package memory implements the ability to read and write the ledger to
// memory.
package memory

import (
	"errors"
	"sync"

	"github.com/ardanlabs/ledger/foundation/blockchain/storage"
)

// ErrNoSnapshot is returned from Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot saved")

// Memory represents the serialization implementation for reading and storing
// the ledger in memory. This implements the storage.Storage interface.
type Memory struct {
	mu    sync.RWMutex
	snap  storage.Snapshot
	saved bool
	saves int
}

// New constructs a Memory value for use.
func New() *Memory {
	return &Memory{}
}

// Close in this implementation has nothing to do since everything
// is in memory.
func (m *Memory) Close() error {
	return nil
}

// Load returns a copy of the last saved snapshot.
func (m *Memory) Load() (storage.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.saved {
		return storage.Snapshot{}, ErrNoSnapshot
	}

	if len(m.snap.Chain) == 0 {
		return storage.Snapshot{}, storage.ErrEmptyChain
	}

	return m.snap.Copy(), nil
}

// Save keeps a copy of the snapshot.
func (m *Memory) Save(snap storage.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snap = snap.Copy()
	m.saved = true
	m.saves++

	return nil
}

// Saves returns the number of times Save has been called.
func (m *Memory) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.saves
}
