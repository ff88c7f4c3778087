package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/taskid/internal/core/domain"
)

func (c *CLI) newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the tasks declared in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			descs, err := c.app.Tasks()
			if err != nil {
				return err
			}
			for _, d := range descs {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s(%s)\n", d.Name(), describeParams(d)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// describeParams renders parameters as "name:kind" in declaration order,
// marking repeated (+[]), insignificant (~) and defaulted (=value) ones.
func describeParams(d *domain.TaskDescriptor) string {
	parts := make([]string, 0, len(d.Params()))
	for _, p := range d.Params() {
		var b strings.Builder
		if !p.Significant {
			b.WriteByte('~')
		}
		b.WriteString(p.Name)
		b.WriteByte(':')
		b.WriteString(p.Kind.String())
		if p.Repeated {
			b.WriteString("[]")
		}
		if p.HasDefault {
			b.WriteByte('=')
			b.WriteString(p.Default.Render())
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ",")
}
