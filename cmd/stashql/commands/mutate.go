package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMutateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutate <operation>",
		Short: "Run a catalog mutation and print its data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := variables(cmd)
			if err != nil {
				return err
			}
			components, err := c.load(cmd)
			if err != nil {
				return err
			}
			res, err := components.Client.Mutate(cmd.Context(), args[0], vars)
			if err != nil {
				return err
			}
			return printData(cmd.OutOrStdout(), res)
		},
	}
	addVarFlags(cmd)
	return cmd
}
