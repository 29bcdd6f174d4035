package balance_test

import (
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/balance"
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestCompute(t *testing.T) {
	type table struct {
		name    string
		chain   []database.Block
		pending []database.Tx
		final   map[string]float64
	}

	tt := []table{
		{
			name:  "genesis",
			chain: []database.Block{database.GenesisBlock(100)},
			final: map[string]float64{
				"Satoshi": 0,
			},
		},
		{
			name: "basic",
			chain: []database.Block{
				database.GenesisBlock(100),
				database.NewBlock(1, "h0", []database.Tx{
					database.RewardTx(genesis.DefaultRewardSender, "Satoshi", 10),
				}, 0, 1),
				database.NewBlock(2, "h1", []database.Tx{
					database.NewTx("Satoshi", "Bob", 4),
					database.RewardTx(genesis.DefaultRewardSender, "Satoshi", 10),
				}, 0, 2),
			},
			pending: []database.Tx{
				database.NewTx("Satoshi", "Alice", 3),
				database.NewTx("Bob", "Satoshi", 1),
			},
			final: map[string]float64{
				"Satoshi":             13,
				"Bob":                 3,
				"Alice":               0,
				genesis.DefaultRewardSender: -20,
			},
		},
	}

	t.Log("Given the need to derive balances from the chain.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a chain and pending pool.", testID)
			{
				f := func(t *testing.T) {
					sheet := balance.Compute(tst.chain, tst.pending)

					for participant, exp := range tst.final {
						got := sheet.Balance(participant)
						if got != exp {
							t.Errorf("\t%s\tTest %d:\tShould have correct balance for %s.", failed, testID, participant)
							t.Logf("\t%s\tTest %d:\tgot: %v", failed, testID, got)
							t.Logf("\t%s\tTest %d:\texp: %v", failed, testID, exp)
						} else {
							t.Logf("\t%s\tTest %d:\tShould have correct balance for %s.", success, testID, participant)
						}
					}
				}

				t.Run(tst.name, f)
			}
		}
	}
}
