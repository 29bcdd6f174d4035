package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var participantsCmd = &cobra.Command{
	Use:   "participants",
	Short: "Print every participant known to the ledger.",
	Args:  cobra.NoArgs,
	RunE:  participantsRun,
}

func init() {
	rootCmd.AddCommand(participantsCmd)
}

func participantsRun(cmd *cobra.Command, args []string) error {
	st, closeFn, err := openState()
	if err != nil {
		return err
	}
	defer closeFn()

	for _, participant := range st.Participants() {
		fmt.Fprintln(cmd.OutOrStdout(), participant)
	}

	return nil
}
