package cli

import (
	"errors"
	"fmt"

	"medisync/internal/lead"

	"github.com/spf13/cobra"
)

var errInvalidForm = errors.New("form has invalid fields")

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check demo form values without submitting them",
		Example: `  medisync validate --name "Jane Doe" --email jane@clinic.com --phone 5551234567 --service Growth
  medisync validate phone 12345`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			name, _ := cmd.Flags().GetString("field")
			value, _ := cmd.Flags().GetString("value")
			if len(args) > 0 {
				name = args[0]
			}
			if len(args) > 1 {
				value = args[1]
			}

			if name != "" {
				field, err := lead.ParseField(name)
				if err != nil {
					return err
				}
				msg := lead.ValidateField(field, value)
				if field == lead.FieldService {
					msg = lead.ValidateSelection(value)
				}
				if msg != "" {
					fmt.Fprintf(out, "%s: %s\n", field.Label(), msg)
					return errInvalidForm
				}
				fmt.Fprintf(out, "%s: ok\n", field.Label())
				return nil
			}

			errs := lead.ValidateForm(formFromFlags(cmd))
			if errs.Empty() {
				fmt.Fprintln(out, "All fields are valid")
				return nil
			}
			for _, f := range errs.Failing() {
				fmt.Fprintf(out, "%s: %s\n", f.Label(), errs.Get(f))
			}
			return errInvalidForm
		},
	}
	addFormFlags(cmd)
	cmd.Flags().String("field", "", "Validate a single field by name")
	cmd.Flags().String("value", "", "Value for --field")
	return cmd
}
