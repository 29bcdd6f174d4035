package state

import (
	"sort"

	"github.com/ardanlabs/ledger/foundation/blockchain/balance"
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
)

// HostID returns the identity receiving the mining rewards.
func (s *State) HostID() string {
	return s.hostID
}

// Genesis returns a copy of the genesis information.
func (s *State) Genesis() genesis.Genesis {
	return s.genesis
}

// Balance returns the balance for the participant: everything received in
// the chain minus everything sent in the chain and the pending pool.
func (s *State) Balance(participant string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.balance(participant)
}

// Balances returns the balance of every participant known to the ledger.
func (s *State) Balances() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sheet := balance.Compute(s.chain, s.mempool.Copy())

	balances := make(map[string]float64)
	for _, participant := range s.participants() {
		balances[participant] = sheet.Balance(participant)
	}

	return balances
}

// Chain returns a copy of the chain for display.
func (s *State) Chain() []database.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return database.CopyChain(s.chain)
}

// LatestBlock returns a copy of the last block in the chain.
func (s *State) LatestBlock() database.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return database.CopyChain(s.chain[len(s.chain)-1:])[0]
}

// Pending returns a copy of the pending transactions.
func (s *State) Pending() []database.Tx {
	return s.mempool.Copy()
}

// Participants returns the sorted set of participants: the host and every
// sender and recipient found in the chain and the pending pool. The reward
// sender is not a participant.
func (s *State) Participants() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.participants()
}

// VerifyChain checks every block is linked to the hash of the block
// before it.
func (s *State) VerifyChain() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return database.VerifyChain(s.chain)
}

// VerifyChainWork checks the chain links and the proof stored in every
// mined block.
func (s *State) VerifyChainWork() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return database.VerifyChainWork(s.chain, s.genesis.Difficulty)
}

// VerifyTransactions checks every pending transaction against the current
// balance of its sender.
func (s *State) VerifyTransactions() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return database.VerifyTransactions(s.mempool.Copy(), s.balance)
}

// =============================================================================

// participants builds the participant set. The caller must hold at least
// the read lock.
func (s *State) participants() []string {
	set := map[string]struct{}{s.hostID: {}}

	add := func(tx database.Tx) {
		if tx.Sender != s.genesis.RewardSender {
			set[tx.Sender] = struct{}{}
		}
		set[tx.Recipient] = struct{}{}
	}

	for _, block := range s.chain {
		for _, tx := range block.Transactions {
			add(tx)
		}
	}

	for _, tx := range s.mempool.Copy() {
		add(tx)
	}

	participants := make([]string, 0, len(set))
	for participant := range set {
		participants = append(participants, participant)
	}
	sort.Strings(participants)

	return participants
}
