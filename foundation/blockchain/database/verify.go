package database

// BalanceFunc returns the current balance for a participant.
type BalanceFunc func(participant string) float64

// VerifyTransaction checks the amount is not negative and the sender holds
// enough balance to cover it. The balance is looked up for this transaction alone: it is not
// reduced by other transactions in the same batch, so two transactions from
// one sender can each pass while together they overdraw the sender.
func VerifyTransaction(tx Tx, balance BalanceFunc) bool {
	return tx.Amount >= 0 && balance(tx.Sender) >= tx.Amount
}

// VerifyTransactions checks every transaction independently with
// VerifyTransaction.
func VerifyTransactions(trans []Tx, balance BalanceFunc) bool {
	for _, tx := range trans {
		if !VerifyTransaction(tx, balance) {
			return false
		}
	}

	return true
}

// VerifyChain walks the chain and checks each block points at the hash of
// the block before it. It stops at the first mismatch.
func VerifyChain(chain []Block) bool {
	for i := 1; i < len(chain); i++ {
		if chain[i].PreviousHash != chain[i-1].Hash() {
			return false
		}
	}

	return true
}

// VerifyChainWork performs the VerifyChain checks and also checks every
// block after genesis carries a proof that solves the puzzle for its
// transactions, without the trailing reward, and its previous hash.
func VerifyChainWork(chain []Block, difficulty uint16) bool {
	for i := 1; i < len(chain); i++ {
		block := chain[i]

		if block.PreviousHash != chain[i-1].Hash() {
			return false
		}

		if len(block.Transactions) == 0 {
			return false
		}

		trans := block.Transactions[:len(block.Transactions)-1]
		if !ValidProof(trans, block.PreviousHash, block.Proof, difficulty) {
			return false
		}
	}

	return true
}
