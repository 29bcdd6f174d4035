package state

import (
	"context"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

// MineBlock solves the proof of work for the pending transactions and
// appends a new block holding those transactions plus the mining reward for
// the host. The search only ends early if the context is cancelled, in which
// case database.ErrMiningCancelled is returned and nothing changes.
func (s *State) MineBlock(ctx context.Context) (database.Block, error) {
	s.mineMu.Lock()
	defer s.mineMu.Unlock()

	s.evHandler("state: MineBlock: MINING: started")
	defer s.evHandler("state: MineBlock: MINING: completed")

	// Capture what is being mined. Only a miner removes transactions from
	// the pool, so these stay at the front of the pool while the search runs.
	s.mu.RLock()
	lastBlock := s.chain[len(s.chain)-1]
	trans := s.mempool.Copy()
	s.mu.RUnlock()

	lastHash := lastBlock.Hash()

	s.evHandler("state: MineBlock: MINING: perform POW: lastHash[%s]: txs[%d]", lastHash, len(trans))

	proof, err := database.FindProof(ctx, trans, lastHash, s.genesis.Difficulty, s.evHandler)
	if err != nil {
		return database.Block{}, err
	}

	reward := database.RewardTx(s.genesis.RewardSender, s.hostID, s.genesis.MiningReward)

	s.mu.Lock()
	defer s.mu.Unlock()

	block := database.NewBlock(uint64(len(s.chain)), lastHash, append(trans, reward), proof, unixSeconds(time.Now()))

	s.evHandler("state: MineBlock: MINING: update local state: block[%d]", block.Index)

	s.chain = append(s.chain, block)
	s.mempool.RemoveFirst(len(trans))
	s.save()

	return block, nil
}

// unixSeconds returns t as fractional seconds since the unix epoch.
func unixSeconds(t time.Time) float64 {
	return float64(t.UnixMicro()) / 1e6
}
