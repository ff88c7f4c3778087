package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newFlattenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flatten <file>",
		Short: "Print the leaf values of a YAML or JSON document, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leaves, err := c.app.Flatten(args[0])
			if err != nil {
				return err
			}
			for _, leaf := range leaves {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), leaf); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
