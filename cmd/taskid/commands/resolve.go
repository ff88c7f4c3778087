package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <task-id>...",
		Short: "Reconstruct task ids against the catalog and print canonical ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := c.app.Resolve(cmd.Context(), args)
			if err != nil {
				return err
			}

			all, _ := cmd.Flags().GetBool("all")
			for _, r := range results {
				if r.Duplicate && !all {
					continue
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", r.Fingerprint, r.ID); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Print duplicate instances too")
	return cmd
}
