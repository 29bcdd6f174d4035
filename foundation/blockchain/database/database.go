// Package database handles the lower level data model of the blockchain:
// transactions, blocks, the proof of work puzzle and the predicates used to
// verify transactions and the integrity of the chain.
package database

// RewardTx constructs the transaction paying the mining reward to the
// beneficiary.
func RewardTx(sender string, beneficiary string, reward float64) Tx {
	return NewTx(sender, beneficiary, reward)
}
