package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/stashql/internal/graphql"
)

func (c *CLI) newOperationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List the operations the client can issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := graphql.Default()
			if err != nil {
				return err
			}
			kind, _ := cmd.Flags().GetString("kind")

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, op := range catalog.Operations() {
				if kind != "" && op.Kind.String() != kind {
					continue
				}
				fields := make([]string, len(op.RootFields))
				for i, f := range op.RootFields {
					fields[i] = f.Name
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", op.Name, op.Kind, strings.Join(fields, ","))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().String("kind", "", "Only list query, mutation or subscription operations")
	return cmd
}
