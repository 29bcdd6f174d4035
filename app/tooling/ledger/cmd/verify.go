package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrInvalidChain is returned when the chain fails verification.
var ErrInvalidChain = errors.New("chain is invalid")

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the chain and the pending transactions.",
	Args:  cobra.NoArgs,
	RunE:  verifyRun,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func verifyRun(cmd *cobra.Command, args []string) error {
	st, closeFn, err := openState()
	if err != nil {
		return err
	}
	defer closeFn()

	linked := st.VerifyChain()
	work := st.VerifyChainWork()
	trans := st.VerifyTransactions()

	fmt.Fprintf(cmd.OutOrStdout(), "chain: linked[%t]: work[%t]: blocks[%d]\n", linked, work, len(st.Chain()))
	fmt.Fprintf(cmd.OutOrStdout(), "pending: valid[%t]: txs[%d]\n", trans, len(st.Pending()))

	if !linked || !work {
		return ErrInvalidChain
	}

	return nil
}
