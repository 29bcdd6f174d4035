// Package balance derives participant balances from the chain history and
// the pending pool. Balances are never stored, a sheet is rebuilt each time
// one is needed.
package balance

import (
	"sync"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

// Sheet represents the data representation to maintain participant balances.
type Sheet struct {
	sheet map[string]float64
	mu    sync.RWMutex
}

// NewSheet constructs a new, empty balance sheet.
func NewSheet() *Sheet {
	return &Sheet{
		sheet: make(map[string]float64),
	}
}

// Compute builds a balance sheet from the committed chain and the pending
// pool. Committed transactions move value from sender to recipient. Pending
// transactions only debit the sender: value is not credited to a recipient
// until the transaction is mined.
func Compute(chain []database.Block, pending []database.Tx) *Sheet {
	bs := NewSheet()

	for _, block := range chain {
		bs.ApplyBlock(block)
	}

	for _, tx := range pending {
		bs.ApplyPending(tx)
	}

	return bs
}

// Copy makes a copy of the current balance sheet but returns the raw data.
func (bs *Sheet) Copy() map[string]float64 {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	sheet := make(map[string]float64, len(bs.sheet))
	for participant, value := range bs.sheet {
		sheet[participant] = value
	}
	return sheet
}

// Balance returns the balance for the participant. Unknown participants
// have a zero balance.
func (bs *Sheet) Balance(participant string) float64 {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	return bs.sheet[participant]
}

// ApplyBlock applies every transaction in the block to the sheet.
func (bs *Sheet) ApplyBlock(block database.Block) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	for _, tx := range block.Transactions {
		bs.sheet[tx.Sender] -= tx.Amount
		bs.sheet[tx.Recipient] += tx.Amount
	}
}

// ApplyPending debits the sender of a transaction that is not mined yet.
func (bs *Sheet) ApplyPending(tx database.Tx) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	bs.sheet[tx.Sender] -= tx.Amount
}
