package commands

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// subscriptionAliases maps short names onto catalog subscriptions.
var subscriptionAliases = map[string]string{
	"jobs": "MetadataUpdate",
	"logs": "LoggingSubscribe",
}

func (c *CLI) newSubscribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscribe <jobs|logs|operation>",
		Short: "Stream subscription events as JSON lines until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if alias, ok := subscriptionAliases[name]; ok {
				name = alias
			}
			vars, err := variables(cmd)
			if err != nil {
				return err
			}
			components, err := c.load(cmd)
			if err != nil {
				return err
			}

			sub, err := components.Client.Subscribe(cmd.Context(), name, vars)
			if err != nil {
				return err
			}
			defer sub.Close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			for sub.Next() {
				res := sub.Result()
				if err := res.Err(); err != nil {
					components.Logger.Warn(name + ": " + err.Error())
					continue
				}
				if err := enc.Encode(res.Data); err != nil {
					return zerr.Wrap(err, "failed to encode event")
				}
			}
			if err := sub.Err(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	addVarFlags(cmd)
	return cmd
}
