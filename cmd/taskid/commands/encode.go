package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <task> [key=value...]",
		Short: "Build a task from parameters and print its canonical task id",
		Example: `  taskid encode InputText date=2014-12-29
  taskid encode InputText date=2014-12-29 foo=[bar,baz]`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.app.Encode(args[0], args[1:])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}
}
