package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// NewEventsCommand creates the events command.
func NewEventsCommand(rootOpts *RootOptions) *cobra.Command {
	var connectionID string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Follow the engine's event stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			enc := json.NewEncoder(w)

			err := rootOpts.client().Events(cmd.Context(), connectionID, func(e models.Event) error {
				if rootOpts.Format == "json" {
					return enc.Encode(e)
				}
				_, err := fmt.Fprintln(w, formatEvent(e))
				return err
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "event stream", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&connectionID, "connection", "", "only show events of this connection")

	return cmd
}

func formatEvent(e models.Event) string {
	line := fmt.Sprintf("%s %-26s %s", e.At.Local().Format(time.TimeOnly), e.Type, e.ConnectionID)
	if e.Direction != "" {
		line += " " + string(e.Direction)
	}
	if e.DisplayName != "" {
		line += fmt.Sprintf(" %q", e.DisplayName)
	}
	if e.Message != "" {
		line += ": " + e.Message
	}
	return line
}
