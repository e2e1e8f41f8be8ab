package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stashql/internal/app"
	"go.trai.ch/stashql/internal/core/domain"
)

func (c *CLI) newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <operation>",
		Short: "Run a catalog query and print its data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := variables(cmd)
			if err != nil {
				return err
			}
			raw, _ := cmd.Flags().GetString("fetch-policy")
			policy, err := domain.ParseFetchPolicy(raw)
			if err != nil {
				return err
			}
			opts := []app.RequestOption{app.WithFetchPolicy(policy)}
			if ignore, _ := cmd.Flags().GetBool("ignore-errors"); ignore {
				opts = append(opts, app.WithErrorPolicy(domain.ErrorPolicyIgnore))
			}

			components, err := c.load(cmd)
			if err != nil {
				return err
			}
			res, err := components.Client.Query(cmd.Context(), args[0], vars, opts...)
			if err != nil {
				return err
			}
			if res.FromCache {
				components.Logger.Debug(args[0] + ": answered from cache")
			}
			return printData(cmd.OutOrStdout(), res)
		},
	}
	addVarFlags(cmd)
	cmd.Flags().String("fetch-policy", domain.CacheFirst.String(), "One of cache-first, network-only, no-cache")
	cmd.Flags().Bool("ignore-errors", false, "Print partial data instead of failing on GraphQL errors")
	return cmd
}
