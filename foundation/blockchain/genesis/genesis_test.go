package genesis_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

func TestLoad(t *testing.T) {
	type table struct {
		name    string
		file    string
		content string
		exp     genesis.Genesis
	}

	tt := []table{
		{
			name:    "json",
			file:    "genesis.json",
			content: `{"difficulty":3,"mining_reward":25,"proof":7,"reward_sender":"NETWORK"}`,
			exp:     genesis.Genesis{Difficulty: 3, MiningReward: 25, Proof: 7, RewardSender: "NETWORK"},
		},
		{
			name:    "yaml",
			file:    "genesis.yaml",
			content: "difficulty: 1\nmining_reward: 12.5\n",
			exp:     genesis.Genesis{Difficulty: 1, MiningReward: 12.5, Proof: genesis.DefaultProof, RewardSender: genesis.DefaultRewardSender},
		},
	}

	t.Log("Given the need to load genesis parameters.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				t.Logf("\tTest %d:\tWhen loading a %s file.", testID, tst.name)
				{
					path := filepath.Join(t.TempDir(), tst.file)
					if err := os.WriteFile(path, []byte(tst.content), 0600); err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to write the file: %v", failed, testID, err)
					}

					gen, err := genesis.Load(path)
					if err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to load the file: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to load the file.", success, testID)

					if gen != tst.exp {
						t.Logf("\t%s\tTest %d:\tgot: %+v", failed, testID, gen)
						t.Logf("\t%s\tTest %d:\texp: %+v", failed, testID, tst.exp)
						t.Fatalf("\t%s\tTest %d:\tShould get the expected parameters.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould get the expected parameters.", success, testID)
				}
			}

			t.Run(tst.name, f)
		}
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Log("Given the need to run without a genesis file.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen the file does not exist.", testID)
		{
			gen, err := genesis.LoadOrDefault(filepath.Join(t.TempDir(), "missing.json"))
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould not get an error: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould not get an error.", success, testID)

			if gen != genesis.Default() {
				t.Fatalf("\t%s\tTest %d:\tShould get the default parameters: %+v", failed, testID, gen)
			}
			t.Logf("\t%s\tTest %d:\tShould get the default parameters.", success, testID)
		}
	}
}
