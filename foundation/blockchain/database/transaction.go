package database

import "fmt"

// Tx is the value transfer between two parties. A Tx carries no identity of
// its own: two transactions with the same fields are the same transaction.
type Tx struct {
	Sender    string  `json:"sender"`    // Participant giving the value.
	Recipient string  `json:"recipient"` // Participant receiving the value.
	Amount    float64 `json:"amount"`    // Value moved. The sign is checked by VerifyTransaction.
}

// NewTx constructs a new transaction. No validation is performed here, a Tx
// is a passive value and admission rules live in the verifier.
func NewTx(sender string, recipient string, amount float64) Tx {
	return Tx{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	}
}

// String implements the fmt.Stringer interface for logging.
func (tx Tx) String() string {
	return fmt.Sprintf("%s->%s:%g", tx.Sender, tx.Recipient, tx.Amount)
}

// copyTrans returns a copy of the transactions that is never nil, so a block
// with no transactions serializes as an empty list.
func copyTrans(trans []Tx) []Tx {
	cpy := make([]Tx, len(trans))
	copy(cpy, trans)
	return cpy
}
