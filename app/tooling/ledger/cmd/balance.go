package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [participant]",
	Short: "Print the balance of one or every participant.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  balanceRun,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func balanceRun(cmd *cobra.Command, args []string) error {
	st, closeFn, err := openState()
	if err != nil {
		return err
	}
	defer closeFn()

	if len(args) == 1 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %g\n", args[0], st.Balance(args[0]))
		return nil
	}

	bals := st.Balances()
	for _, participant := range st.Participants() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %g\n", participant, bals[participant])
	}

	return nil
}
