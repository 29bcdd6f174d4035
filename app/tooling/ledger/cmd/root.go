// Package cmd contains the ledger command line tool.
package cmd

import (
	"fmt"
	"os"

	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
	"github.com/ardanlabs/ledger/foundation/blockchain/state"
	"github.com/ardanlabs/ledger/foundation/blockchain/storage/selector"
	"github.com/ardanlabs/ledger/foundation/logger"
	"github.com/spf13/cobra"
)

var (
	dbPath      string
	storeKind   string
	hostID      string
	genesisPath string
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "zblock/blockchain.txt", "Path to the ledger file.")
	rootCmd.PersistentFlags().StringVarP(&storeKind, "store", "s", selector.StorageDisk, fmt.Sprintf("Storage implementation %v.", selector.Kinds()))
	rootCmd.PersistentFlags().StringVar(&hostID, "host", "Satoshi", "Identity receiving the mining rewards.")
	rootCmd.PersistentFlags().StringVarP(&genesisPath, "genesis", "g", "zblock/genesis.json", "Path to the genesis file.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log ledger events to stderr.")
}

var rootCmd = &cobra.Command{
	Use:           "ledger",
	Short:         "Single node proof of work ledger",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command line tool and exits non zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

// openState loads the ledger described by the persistent flags. The caller
// must call the returned close function when done.
func openState() (*state.State, func(), error) {
	gen, err := genesis.LoadOrDefault(genesisPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading genesis: %w", err)
	}

	strg, err := selector.Retrieve(storeKind, dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening storage: %w", err)
	}

	var ev state.EventHandler
	var sync func()
	if verbose {
		log, err := logger.New("LEDGER", "stderr")
		if err != nil {
			strg.Close()
			return nil, nil, fmt.Errorf("constructing logger: %w", err)
		}
		ev = func(v string, args ...any) {
			log.Infow(fmt.Sprintf(v, args...))
		}
		sync = func() { log.Sync() }
	}

	st, err := state.New(state.Config{
		HostID:    hostID,
		Genesis:   gen,
		Storage:   strg,
		EvHandler: ev,
	})
	if err != nil {
		strg.Close()
		return nil, nil, err
	}

	closeFn := func() {
		st.Shutdown()
		if sync != nil {
			sync()
		}
	}

	return st, closeFn, nil
}
