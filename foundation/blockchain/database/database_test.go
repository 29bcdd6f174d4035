package database_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

const difficulty = 2

func noop(v string, args ...any) {}

// =============================================================================

func Test_VerifyTransactions(t *testing.T) {
	type table struct {
		name     string
		balances map[string]float64
		txs      []database.Tx
		results  []bool
		all      bool
	}

	tt := []table{
		{
			name:     "basic",
			balances: map[string]float64{"Satoshi": 10, "Bob": 0},
			txs: []database.Tx{
				database.NewTx("Satoshi", "Bob", 5),
				database.NewTx("Satoshi", "Bob", 10),
				database.NewTx("Satoshi", "Bob", 10.5),
				database.NewTx("Bob", "Satoshi", 1),
			},
			results: []bool{true, true, false, false},
			all:     false,
		},
		{
			name:     "negative",
			balances: map[string]float64{"Satoshi": 10, "Bob": 0},
			txs: []database.Tx{
				database.NewTx("Bob", "Satoshi", -100),
				database.NewTx("Satoshi", "Bob", 0),
			},
			results: []bool{false, true},
			all:     false,
		},
		{
			// Each transaction is checked against the same balance, so together
			// they spend more than the sender holds.
			name:     "noncumulative",
			balances: map[string]float64{"Satoshi": 10},
			txs: []database.Tx{
				database.NewTx("Satoshi", "Bob", 8),
				database.NewTx("Satoshi", "Alice", 8),
			},
			results: []bool{true, true},
			all:     true,
		},
	}

	t.Log("Given the need to validate transactions against balances.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a set of transactions.", testID)
			{
				f := func(t *testing.T) {
					balance := func(participant string) float64 {
						return tst.balances[participant]
					}

					for i, tx := range tst.txs {
						got := database.VerifyTransaction(tx, balance)
						if got != tst.results[i] {
							t.Fatalf("\t%s\tTest %d:\tShould get %t for tx[%s], got %t.", failed, testID, tst.results[i], tx, got)
						}
						t.Logf("\t%s\tTest %d:\tShould get %t for tx[%s].", success, testID, tst.results[i], tx)
					}

					if got := database.VerifyTransactions(tst.txs, balance); got != tst.all {
						t.Fatalf("\t%s\tTest %d:\tShould get %t for the batch, got %t.", failed, testID, tst.all, got)
					}
					t.Logf("\t%s\tTest %d:\tShould get %t for the batch.", success, testID, tst.all)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func Test_BlockHash(t *testing.T) {
	t.Log("Given the need to hash blocks deterministically.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen hashing a genesis block.", testID)
		{
			gen := database.GenesisBlock(100)

			h1 := gen.Hash()
			h2 := database.GenesisBlock(100).Hash()
			if h1 != h2 {
				t.Fatalf("\t%s\tTest %d:\tShould get the same hash for the same block.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould get the same hash for the same block.", success, testID)

			data, err := json.Marshal(gen)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to marshal the block: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to marshal the block.", success, testID)

			const exp = `{"index":0,"previous_hash":"","transactions":[],"proof":100,"timestamp":0}`
			if string(data) != exp {
				t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, data)
				t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, exp)
				t.Fatalf("\t%s\tTest %d:\tShould marshal fields in canonical order.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould marshal fields in canonical order.", success, testID)

			var loaded database.Block
			if err := json.Unmarshal(data, &loaded); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to unmarshal the block: %v", failed, testID, err)
			}

			if loaded.Hash() != h1 {
				t.Fatalf("\t%s\tTest %d:\tShould get the same hash after a round trip.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould get the same hash after a round trip.", success, testID)

			// A block built with a nil transaction list must hash the same as one
			// with an empty list.
			b := database.Block{Index: 0, Proof: 100}
			if b.Hash() != h1 {
				t.Fatalf("\t%s\tTest %d:\tShould treat nil and empty transactions the same.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould treat nil and empty transactions the same.", success, testID)
		}
	}
}

func Test_Proof(t *testing.T) {
	t.Log("Given the need to solve the proof of work puzzle.")
	{
		trans := []database.Tx{
			database.NewTx("Satoshi", "Bob", 5),
			database.NewTx("Bob", "Alice", 2.5),
		}
		lastHash := database.GenesisBlock(100).Hash()

		testID := 0
		t.Logf("\tTest %d:\tWhen finding a proof for a set of transactions.", testID)
		{
			proof, err := database.FindProof(context.Background(), trans, lastHash, difficulty, noop)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to find a proof: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to find a proof: %d", success, testID, proof)

			if !database.ValidProof(trans, lastHash, proof, difficulty) {
				t.Fatalf("\t%s\tTest %d:\tShould find a valid proof.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould find a valid proof.", success, testID)

			for p := uint64(0); p < proof; p++ {
				if database.ValidProof(trans, lastHash, p, difficulty) {
					t.Fatalf("\t%s\tTest %d:\tShould find the smallest proof, %d also solves it.", failed, testID, p)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould find the smallest proof.", success, testID)

			for i := 0; i < 3; i++ {
				if !database.ValidProof(trans, lastHash, proof, difficulty) {
					t.Fatalf("\t%s\tTest %d:\tShould get the same result every time.", failed, testID)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould get the same result every time.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen the search is cancelled.", testID)
		{
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			// No hash has 64 leading zeros, so only cancellation ends this search.
			_, err := database.FindProof(ctx, trans, lastHash, 64, noop)
			if !errors.Is(err, database.ErrMiningCancelled) {
				t.Fatalf("\t%s\tTest %d:\tShould get a mining cancelled error: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould get a mining cancelled error.", success, testID)

			if !errors.Is(err, context.Canceled) {
				t.Fatalf("\t%s\tTest %d:\tShould wrap the context error: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould wrap the context error.", success, testID)
		}
	}
}

func Test_VerifyChain(t *testing.T) {
	t.Log("Given the need to validate the integrity of a chain.")
	{
		chain := buildChain(t, 4)

		testID := 0
		t.Logf("\tTest %d:\tWhen handling a properly linked chain.", testID)
		{
			if !database.VerifyChain(chain) {
				t.Fatalf("\t%s\tTest %d:\tShould verify the chain.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould verify the chain.", success, testID)

			if !database.VerifyChainWork(chain, difficulty) {
				t.Fatalf("\t%s\tTest %d:\tShould verify the work in the chain.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould verify the work in the chain.", success, testID)

			if !database.VerifyChain(chain[:1]) || !database.VerifyChain(nil) {
				t.Fatalf("\t%s\tTest %d:\tShould verify chains with 0 or 1 blocks.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould verify chains with 0 or 1 blocks.", success, testID)
		}

		for i := 1; i < len(chain); i++ {
			testID++
			t.Logf("\tTest %d:\tWhen the previous hash of block %d is changed.", testID, i)
			{
				tampered := database.CopyChain(chain)
				tampered[i].PreviousHash = "0xbad"

				if database.VerifyChain(tampered) {
					t.Fatalf("\t%s\tTest %d:\tShould fail to verify the chain.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould fail to verify the chain.", success, testID)

				if !database.VerifyChain(tampered[:i]) {
					t.Fatalf("\t%s\tTest %d:\tShould verify the blocks before the change.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould verify the blocks before the change.", success, testID)
			}
		}

		testID++
		t.Logf("\tTest %d:\tWhen a transaction in a block is changed.", testID)
		{
			tampered := database.CopyChain(chain)
			tampered[1].Transactions[0].Amount = 1_000

			if database.VerifyChain(tampered) {
				t.Fatalf("\t%s\tTest %d:\tShould fail to verify the chain.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould fail to verify the chain.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen a proof in the last block is changed.", testID)
		{
			tampered := database.CopyChain(chain)
			last := len(tampered) - 1
			tampered[last].Proof++
			for database.ValidProof(tampered[last].Transactions[:len(tampered[last].Transactions)-1], tampered[last].PreviousHash, tampered[last].Proof, difficulty) {
				tampered[last].Proof++
			}

			if !database.VerifyChain(tampered) {
				t.Fatalf("\t%s\tTest %d:\tShould still verify the links.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould still verify the links.", success, testID)

			if database.VerifyChainWork(tampered, difficulty) {
				t.Fatalf("\t%s\tTest %d:\tShould fail to verify the work.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould fail to verify the work.", success, testID)
		}
	}
}

// =============================================================================

func buildChain(t *testing.T, blocks int) []database.Block {
	chain := []database.Block{database.GenesisBlock(100)}

	for i := 1; i < blocks; i++ {
		last := chain[len(chain)-1]
		lastHash := last.Hash()

		trans := []database.Tx{database.NewTx("Satoshi", "Bob", float64(i))}

		proof, err := database.FindProof(context.Background(), trans, lastHash, difficulty, noop)
		if err != nil {
			t.Fatalf("unable to find proof: %v", err)
		}

		trans = append(trans, database.RewardTx(genesis.DefaultRewardSender, "Satoshi", 10))
		chain = append(chain, database.NewBlock(uint64(len(chain)), lastHash, trans, proof, float64(i)))
	}

	return chain
}
