package database

import (
	"github.com/ardanlabs/ledger/foundation/blockchain/hashing"
)

// Block represents a group of transactions batched together and linked to
// the block before it.
//
// CORE NOTE: The order of the fields is the canonical order used for hashing.
// The JSON encoder walks struct fields in declared order, so reordering these
// fields changes every block hash and breaks verification of existing chains.
type Block struct {
	Index        uint64  `json:"index"`         // Position of the block in the chain.
	PreviousHash string  `json:"previous_hash"` // Hash of the previous block, empty for genesis.
	Transactions []Tx    `json:"transactions"`  // Pending transactions plus the mining reward.
	Proof        uint64  `json:"proof"`         // Value identified to solve the proof of work.
	Timestamp    float64 `json:"timestamp"`     // Unix time in seconds the block was mined, may hold a fraction.
}

// NewBlock constructs a block. The transactions are copied so the block
// never shares memory with the pending pool.
func NewBlock(index uint64, previousHash string, trans []Tx, proof uint64, timestamp float64) Block {
	return Block{
		Index:        index,
		PreviousHash: previousHash,
		Transactions: copyTrans(trans),
		Proof:        proof,
		Timestamp:    timestamp,
	}
}

// GenesisBlock returns the sentinel first block of every chain.
func GenesisBlock(proof uint64) Block {
	return NewBlock(0, "", nil, proof, 0)
}

// Hash returns the unique hash for the Block.
func (b Block) Hash() string {
	return hashing.Hash(b.canonical())
}

// IsGenesis reports whether the block is in the genesis position.
func (b Block) IsGenesis() bool {
	return b.Index == 0 && b.PreviousHash == ""
}

// canonical returns the block with a non-nil transaction list so a block
// hashes the same before and after a round trip through storage.
func (b Block) canonical() Block {
	b.Transactions = copyTrans(b.Transactions)
	return b
}

// =============================================================================

// CopyChain makes a deep copy of the chain.
func CopyChain(chain []Block) []Block {
	cpy := make([]Block, len(chain))
	for i, block := range chain {
		cpy[i] = block.canonical()
	}
	return cpy
}
