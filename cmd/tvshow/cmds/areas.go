package cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"tvshow/internal/area"
)

func NewAreasCLI() *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "List the area names accepted by --area",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, a := range area.All() {
				if _, err := fmt.Fprintln(out, a.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
