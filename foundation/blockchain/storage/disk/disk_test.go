package disk_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/storage"
	"github.com/ardanlabs/ledger/foundation/blockchain/storage/disk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockchain.txt")

	d, err := disk.New(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("not json\n[]"), 0600))
	_, err = d.Load()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[{"index":0}]`), 0600))
	_, err = d.Load()
	assert.Error(t, err, "a file missing the pending record is truncated")
}

func TestSaveReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zblock", "blockchain.txt")

	d, err := disk.New(path)
	require.NoError(t, err)

	first := storage.Snapshot{
		Chain:   []database.Block{database.GenesisBlock(100)},
		Pending: []database.Tx{database.NewTx("Satoshi", "Bob", 1)},
	}
	second := storage.Snapshot{
		Chain: []database.Block{database.GenesisBlock(100)},
	}

	require.NoError(t, d.Save(first))
	require.NoError(t, d.Save(second))

	got, err := d.Load()
	require.NoError(t, err)
	assert.Empty(t, got.Pending)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestLoadFractionalTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockchain.txt")

	gen := database.GenesisBlock(100)
	content := `[{"index":0,"previous_hash":"","transactions":[],"proof":100,"timestamp":0},` +
		`{"index":1,"previous_hash":"` + gen.Hash() + `","transactions":[{"sender":"MINING","recipient":"Satoshi","amount":10}],"proof":7,"timestamp":1633021234.5}]` +
		"\n[]"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	d, err := disk.New(path)
	require.NoError(t, err)

	snap, err := d.Load()
	require.NoError(t, err)
	require.Len(t, snap.Chain, 2)
	assert.Equal(t, 1633021234.5, snap.Chain[1].Timestamp)
	assert.True(t, database.VerifyChain(snap.Chain))

	// Saving keeps the fraction so the block hash is unchanged.
	hash := snap.Chain[1].Hash()
	require.NoError(t, d.Save(snap))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"timestamp":1633021234.5`)

	snap, err = d.Load()
	require.NoError(t, err)
	assert.Equal(t, hash, snap.Chain[1].Hash())
}
