package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Print the pending transactions.",
	Args:  cobra.NoArgs,
	RunE:  pendingRun,
}

func init() {
	rootCmd.AddCommand(pendingCmd)
}

func pendingRun(cmd *cobra.Command, args []string) error {
	st, closeFn, err := openState()
	if err != nil {
		return err
	}
	defer closeFn()

	for _, tx := range st.Pending() {
		fmt.Fprintln(cmd.OutOrStdout(), tx)
	}

	return nil
}
