package cli

import (
	"fmt"

	"medisync/internal/lead"

	"github.com/spf13/cobra"
)

func newPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List the plans offered in the demo form",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range lead.Plans() {
				fmt.Fprintln(cmd.OutOrStdout(), p.Option())
			}
		},
	}
}
