// Package mempool maintains the pool of transactions accepted by the ledger
// but not yet included in a mined block.
package mempool

import (
	"sync"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

// Mempool represents an ordered cache of pending transactions. Order of
// arrival is kept since the order is part of the proof of work puzzle.
type Mempool struct {
	pool []database.Tx
	mu   sync.RWMutex
}

// New constructs a new, empty mempool.
func New() *Mempool {
	return &Mempool{}
}

// NewWithTrans constructs a mempool holding a copy of the transactions,
// usually restored from storage.
func NewWithTrans(trans []database.Tx) *Mempool {
	mp := Mempool{
		pool: make([]database.Tx, len(trans)),
	}
	copy(mp.pool, trans)

	return &mp
}

// Count returns the current number of transaction in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Append adds the transaction to the end of the pool and returns the new
// size of the pool.
func (mp *Mempool) Append(tx database.Tx) int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)

	return len(mp.pool)
}

// Copy returns a copy of the transactions in arrival order.
func (mp *Mempool) Copy() []database.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	cpy := make([]database.Tx, len(mp.pool))
	copy(cpy, mp.pool)

	return cpy
}

// RemoveFirst drops the first n transactions from the pool, the ones
// included in a newly mined block. Transactions that arrived while the
// block was being mined stay in the pool.
func (mp *Mempool) RemoveFirst(n int) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if n >= len(mp.pool) {
		mp.pool = nil
		return
	}

	rest := make([]database.Tx, len(mp.pool)-n)
	copy(rest, mp.pool[n:])
	mp.pool = rest
}
