package cli

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"medisync/internal/lead"
	"medisync/internal/service"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

func newSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a demo request through the configured gateway",
		Example: `  medisync submit --name "Jane Doe" --email jane@clinic.com --phone 5551234567 \
    --service Growth --message "Two clinics, 12 doctors"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			gateway, closeGateway, err := service.NewGateway(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer closeGateway()

			closed := make(chan struct{})
			var closeOnce sync.Once
			session := lead.NewSession(gateway,
				lead.WithLogger(logger),
				lead.WithCloseDelay(cfg.CloseDelay),
				lead.WithSurfaceFailures(cfg.SurfaceGatewayErrors),
				lead.WithOnClose(func() { closeOnce.Do(func() { close(closed) }) }),
			)

			session.Fill(formFromFlags(cmd))

			s := spinner.New(spinner.CharSets[14], 120*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			s.Suffix = " Submitting..."
			s.Start()
			res, err := session.Submit(cmd.Context())
			s.Stop()

			var verr *lead.ValidationErrors
			if errors.As(err, &verr) {
				for _, f := range verr.Errors.Failing() {
					fmt.Fprintf(out, "%s: %s\n", f.Label(), verr.Errors.Get(f))
				}
				return errInvalidForm
			}
			if err != nil {
				return err
			}

			// A swallowed gateway failure still shows the confirmation
			fmt.Fprintln(out, "Submitted Successfully!")
			if res.Status == lead.StatusFailed {
				logger.Warn("Demo request was not stored: %v", res.Err)
			}

			if wait, _ := cmd.Flags().GetBool("wait"); wait {
				select {
				case <-closed:
					fmt.Fprintln(out, "Form closed")
				case <-cmd.Context().Done():
					session.Close()
					return cmd.Context().Err()
				}
			}
			return nil
		},
	}
	addFormFlags(cmd)
	cmd.Flags().Bool("wait", false, "Wait for the confirmation to close before exiting")
	return cmd
}
