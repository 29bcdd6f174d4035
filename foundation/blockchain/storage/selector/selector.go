// Package selector provides the different storage implementations by name.
package selector

import (
	"fmt"
	"sort"

	"github.com/ardanlabs/ledger/foundation/blockchain/storage"
	"github.com/ardanlabs/ledger/foundation/blockchain/storage/bolt"
	"github.com/ardanlabs/ledger/foundation/blockchain/storage/disk"
	"github.com/ardanlabs/ledger/foundation/blockchain/storage/memory"
)

// List of different storage implementations.
const (
	StorageDisk   = "disk"
	StorageBolt   = "bolt"
	StorageMemory = "memory"
)

// Func defines a function that opens a storage implementation for the
// specified path.
type Func func(dbPath string) (storage.Storage, error)

// Map of different storage implementations with functions.
var storages = map[string]Func{
	StorageDisk: func(dbPath string) (storage.Storage, error) {
		return disk.New(dbPath)
	},
	StorageBolt: func(dbPath string) (storage.Storage, error) {
		return bolt.New(dbPath)
	},
	StorageMemory: func(string) (storage.Storage, error) {
		return memory.New(), nil
	},
}

// Retrieve returns the specified storage implementation opened at the path.
func Retrieve(kind string, dbPath string) (storage.Storage, error) {
	fn, exists := storages[kind]
	if !exists {
		return nil, fmt.Errorf("storage %q does not exist", kind)
	}
	return fn(dbPath)
}

// Kinds returns the names of the supported storage implementations.
func Kinds() []string {
	kinds := make([]string, 0, len(storages))
	for kind := range storages {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
