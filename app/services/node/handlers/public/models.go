package public

import "github.com/ardanlabs/ledger/foundation/blockchain/database"

// NewTx is what a client posts to add a transaction to the pool.
type NewTx struct {
	Sender    string  `json:"sender" validate:"required"`
	Recipient string  `json:"recipient" validate:"required"`
	Amount    float64 `json:"amount" validate:"gte=0"`
}

type tx struct {
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient"`
	Amount    float64 `json:"amount"`
}

func toTxs(trans []database.Tx) []tx {
	txs := make([]tx, len(trans))
	for i, tran := range trans {
		txs[i] = tx(tran)
	}
	return txs
}

type block struct {
	Index        uint64  `json:"index"`
	Hash         string  `json:"hash"`
	PreviousHash string  `json:"previous_hash"`
	Transactions []tx    `json:"transactions"`
	Proof        uint64  `json:"proof"`
	Timestamp    float64 `json:"timestamp"`
}

func toBlock(blk database.Block) block {
	return block{
		Index:        blk.Index,
		Hash:         blk.Hash(),
		PreviousHash: blk.PreviousHash,
		Transactions: toTxs(blk.Transactions),
		Proof:        blk.Proof,
		Timestamp:    blk.Timestamp,
	}
}

type balance struct {
	Participant string  `json:"participant"`
	Balance     float64 `json:"balance"`
}

type balances struct {
	LatestBlock string    `json:"latest_block"`
	Uncommitted int       `json:"uncommitted"`
	Balances    []balance `json:"balances"`
}

type verification struct {
	Valid bool `json:"valid"`
}

type chainVerification struct {
	Linked bool `json:"linked"`
	Work   bool `json:"work"`
	Blocks int  `json:"blocks"`
}

type status struct {
	Status string `json:"status"`
}
