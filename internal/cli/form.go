package cli

import (
	"medisync/internal/lead"

	"github.com/spf13/cobra"
)

// addFormFlags registers one flag per form field
func addFormFlags(cmd *cobra.Command) {
	for _, f := range lead.Fields() {
		cmd.Flags().String(f.String(), "", f.Label())
	}
}

func formFromFlags(cmd *cobra.Command) lead.FormState {
	var state lead.FormState
	for _, f := range lead.Fields() {
		v, _ := cmd.Flags().GetString(f.String())
		state.Set(f, v)
	}
	return state
}
