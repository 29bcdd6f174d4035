// Package state is the core API for the ledger and implements all the
// business rules and processing.
package state

import (
	"errors"
	"sync"

	"github.com/ardanlabs/ledger/foundation/blockchain/balance"
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
	"github.com/ardanlabs/ledger/foundation/blockchain/mempool"
	"github.com/ardanlabs/ledger/foundation/blockchain/storage"
)

// EventHandler defines a function that is called when events
// occur in the processing of the ledger.
type EventHandler func(v string, args ...any)

// =============================================================================

// Config represents the configuration required to start the ledger.
type Config struct {
	HostID    string
	Genesis   genesis.Genesis
	Storage   storage.Storage
	EvHandler EventHandler
}

// State manages the chain and the pool of pending transactions. It is the
// only owner of both for the life of the process.
type State struct {
	hostID    string
	genesis   genesis.Genesis
	evHandler EventHandler

	mu      sync.RWMutex
	chain   []database.Block
	mempool *mempool.Mempool
	storage storage.Storage

	// Serializes mining so only one proof search runs at a time.
	mineMu sync.Mutex
}

// New constructs the ledger and hydrates it from storage. Any failure to
// read storage is not fatal: the ledger starts over with a genesis only
// chain and an empty pool.
func New(cfg Config) (*State, error) {
	if cfg.HostID == "" {
		return nil, errors.New("host id is required")
	}

	if cfg.Storage == nil {
		return nil, errors.New("storage is required")
	}

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	chain := []database.Block{database.GenesisBlock(cfg.Genesis.Proof)}
	var pending []database.Tx

	snap, err := cfg.Storage.Load()
	switch {
	case err != nil:
		ev("state: New: load: starting with genesis: %s", err)

	default:
		chain = snap.Chain
		pending = snap.Pending
		ev("state: New: load: blocks[%d]: pending[%d]", len(chain), len(pending))
	}

	state := State{
		hostID:    cfg.HostID,
		genesis:   cfg.Genesis,
		evHandler: ev,
		chain:     chain,
		mempool:   mempool.NewWithTrans(pending),
		storage:   cfg.Storage,
	}

	return &state, nil
}

// Shutdown cleanly brings the ledger down.
func (s *State) Shutdown() error {
	s.evHandler("state: shutdown: started")
	defer s.evHandler("state: shutdown: completed")

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.storage.Close()
}

// =============================================================================

// AddTransaction constructs a transaction and admits it to the pending pool
// if the sender holds enough balance. A rejected transaction is a normal
// outcome and leaves the pool and storage untouched.
func (s *State) AddTransaction(recipient string, sender string, amount float64) bool {
	tx := database.NewTx(sender, recipient, amount)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !database.VerifyTransaction(tx, s.balance) {
		s.evHandler("state: AddTransaction: REJECTED: tx[%s]: balance[%g]", tx, s.balance(sender))
		return false
	}

	n := s.mempool.Append(tx)
	s.evHandler("state: AddTransaction: ACCEPTED: tx[%s]: pending[%d]", tx, n)

	s.save()

	return true
}

// =============================================================================

// save writes the current chain and pool to storage. A write failure is
// reported and otherwise ignored, the in-memory change stands. The caller
// must hold the write lock.
func (s *State) save() {
	snap := storage.Snapshot{
		Chain:   s.chain,
		Pending: s.mempool.Copy(),
	}

	if err := s.storage.Save(snap); err != nil {
		s.evHandler("state: save: ERROR: %s", err)
	}
}

// balance computes the balance of the participant. The caller must hold
// at least the read lock.
func (s *State) balance(participant string) float64 {
	return balance.Compute(s.chain, s.mempool.Copy()).Balance(participant)
}
