// Package genesis maintains access to the genesis file.
package genesis

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values used when no genesis file exists.
const (
	DefaultDifficulty   = 2
	DefaultMiningReward = 10
	DefaultProof        = 100
	DefaultRewardSender = "MINING"
)

// Genesis represents the genesis file.
type Genesis struct {
	Date         time.Time `json:"date" yaml:"date"`
	Difficulty   uint16    `json:"difficulty" yaml:"difficulty"`       // Number of leading 0's a proof hash needs.
	MiningReward float64   `json:"mining_reward" yaml:"mining_reward"` // Reward for mining a block.
	Proof        uint64    `json:"proof" yaml:"proof"`                 // Proof stored in the genesis block.
	RewardSender string    `json:"reward_sender" yaml:"reward_sender"` // Sender used for the mining reward.
}

// Default returns the genesis parameters used when no file is provided.
func Default() Genesis {
	return Genesis{
		Difficulty:   DefaultDifficulty,
		MiningReward: DefaultMiningReward,
		Proof:        DefaultProof,
		RewardSender: DefaultRewardSender,
	}
}

// =============================================================================

// Load opens and consumes the genesis file. Files with a .yaml or .yml
// extension are decoded as YAML, everything else as JSON. Fields missing
// from the file keep their default value.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	genesis := Default()

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &genesis)
	default:
		err = json.Unmarshal(content, &genesis)
	}
	if err != nil {
		return Genesis{}, fmt.Errorf("decoding genesis %q: %w", path, err)
	}

	if genesis.RewardSender == "" {
		return Genesis{}, errors.New("genesis reward sender can't be empty")
	}

	return genesis, nil
}

// LoadOrDefault behaves like Load but returns the default genesis when the
// file does not exist.
func LoadOrDefault(path string) (Genesis, error) {
	genesis, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return genesis, err
}
