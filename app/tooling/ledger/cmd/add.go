package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// ErrRejected is returned when the sender can't cover a transaction.
var ErrRejected = errors.New("transaction rejected: insufficient balance")

var sender string

var addCmd = &cobra.Command{
	Use:   "add --from <sender> <recipient> <amount>",
	Short: "Add a transaction to the pending pool.",
	Args:  cobra.ExactArgs(2),
	RunE:  addRun,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&sender, "from", "f", "", "Sender of the transaction.")
	addCmd.MarkFlagRequired("from")
}

func addRun(cmd *cobra.Command, args []string) error {
	recipient := args[0]

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", args[1], err)
	}

	if amount < 0 {
		return fmt.Errorf("amount %g can't be negative", amount)
	}

	st, closeFn, err := openState()
	if err != nil {
		return err
	}
	defer closeFn()

	if !st.AddTransaction(recipient, sender, amount) {
		return ErrRejected
	}

	fmt.Fprintf(cmd.OutOrStdout(), "added: %s -> %s: %g\n", sender, recipient, amount)
	fmt.Fprintf(cmd.OutOrStdout(), "pending: %d\n", len(st.Pending()))

	return nil
}
