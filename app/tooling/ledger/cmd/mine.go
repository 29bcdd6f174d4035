package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine a block with the pending transactions.",
	Args:  cobra.NoArgs,
	RunE:  mineRun,
}

func init() {
	rootCmd.AddCommand(mineCmd)
}

func mineRun(cmd *cobra.Command, args []string) error {
	st, closeFn, err := openState()
	if err != nil {
		return err
	}
	defer closeFn()

	// Allow a long proof search to be interrupted.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	block, err := st.MineBlock(ctx)
	if err != nil {
		return fmt.Errorf("mining block: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "mined block %d: proof[%d]: hash[%s]: txs[%d]\n", block.Index, block.Proof, block.Hash(), len(block.Transactions))

	return nil
}
