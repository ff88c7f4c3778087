package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

func (c *CLI) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <task-id>",
		Short: "Split a task id into its name and raw parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, params, err := c.app.Parse(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, name); err != nil {
				return err
			}

			keys := make([]string, 0, len(params))
			for k := range params {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				if _, err := fmt.Fprintf(out, "  %s=%s\n", k, params[k]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
