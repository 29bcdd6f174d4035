package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/hashing"
)

// ErrMiningCancelled is returned from FindProof when the search is stopped
// before a solution is found.
var ErrMiningCancelled = errors.New("mining cancelled")

// =============================================================================

// puzzle is the canonical value hashed when checking a proof. The field order
// is fixed for the same reason as the Block fields.
type puzzle struct {
	Transactions []Tx   `json:"transactions"`
	LastHash     string `json:"last_hash"`
	Proof        uint64 `json:"proof"`
}

// ValidProof hashes the pending transactions, the hash of the last block and
// the candidate proof, and checks the hash begins with a difficulty number
// of 0's.
func ValidProof(trans []Tx, lastHash string, proof uint64, difficulty uint16) bool {
	p := puzzle{
		Transactions: copyTrans(trans),
		LastHash:     lastHash,
		Proof:        proof,
	}

	return hashing.HasLeadingZeros(hashing.Hash(p), difficulty)
}

// FindProof does the work of mining to find the smallest proof that solves
// the puzzle for the pending transactions. The search starts at zero and can
// only be stopped by cancelling the context.
func FindProof(ctx context.Context, trans []Tx, lastHash string, difficulty uint16, ev func(v string, args ...any)) (uint64, error) {
	ev("database: FindProof: MINING: started: difficulty[%d]: txs[%d]", difficulty, len(trans))
	defer ev("database: FindProof: MINING: completed")

	var proof uint64
	for {
		if proof%100_000 == 0 && proof > 0 {
			ev("database: FindProof: MINING: attempts[%d]", proof)
		}

		// Did we get told to stop trying to solve the problem.
		if err := ctx.Err(); err != nil {
			ev("database: FindProof: MINING: CANCELLED: attempts[%d]", proof)
			return 0, fmt.Errorf("%w: %w", ErrMiningCancelled, err)
		}

		if ValidProof(trans, lastHash, proof, difficulty) {
			ev("database: FindProof: MINING: SOLVED: lastHash[%s]: proof[%d]", lastHash, proof)
			return proof, nil
		}

		proof++
	}
}
