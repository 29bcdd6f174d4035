package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Print the chain as JSON.",
	Args:  cobra.NoArgs,
	RunE:  chainRun,
}

func init() {
	rootCmd.AddCommand(chainCmd)
}

func chainRun(cmd *cobra.Command, args []string) error {
	st, closeFn, err := openState()
	if err != nil {
		return err
	}
	defer closeFn()

	data, err := json.MarshalIndent(st.Chain(), "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return nil
}
