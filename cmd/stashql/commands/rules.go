package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/engine/invalidation"
	"go.trai.ch/stashql/internal/graphql"
)

func (c *CLI) newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the cache invalidation rule of every mutation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range graphql.Rules {
				prefixes := strings.Join(r.Prefixes, ",")
				if prefixes == "" {
					prefixes = "-"
				}
				line := r.Mutation + "\t" + prefixes
				if len(r.Refetch) > 0 {
					line += "\trefetch " + strings.Join(r.Refetch, ",")
				}
				_, _ = fmt.Fprintln(tw, line)
			}
			return tw.Flush()
		},
	}
	cmd.AddCommand(c.newRulesAuditCmd())
	return cmd
}

func (c *CLI) newRulesAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check every mutation rule against the read dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := graphql.Default()
			if err != nil {
				return err
			}
			report := invalidation.Audit(graphql.Rules, graphql.ReadDependencies, catalog.Names(domain.OperationMutation))

			out := cmd.OutOrStdout()
			for _, g := range report.Gaps {
				_, _ = fmt.Fprintf(out, "gap: %s leaves %s cached (%s)\n", g.Mutation, g.Field, joinEntities(g.Entities))
			}
			for _, m := range report.Unruled {
				_, _ = fmt.Fprintf(out, "unruled: %s\n", m)
			}
			for _, p := range report.DeadPrefixes {
				_, _ = fmt.Fprintf(out, "dead prefix: %s\n", p)
			}
			for _, r := range report.UnknownRetains {
				_, _ = fmt.Fprintf(out, "unknown retain: %s\n", r)
			}
			if report.Clean() {
				_, _ = fmt.Fprintf(out, "%d rules, no gaps\n", len(graphql.Rules))
			}
			return report.Err()
		},
	}
}

func joinEntities(entities []domain.Entity) string {
	names := make([]string, len(entities))
	for i, e := range entities {
		names[i] = string(e)
	}
	return strings.Join(names, ",")
}
