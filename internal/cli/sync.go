package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// NewPullCommand creates the pull command.
func NewPullCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pull <connection-id>",
		Short: "Run a pull cycle",
		Long: `Pull reconciles the local store with the remote server: changed
remote contacts are imported, remote deletions are applied to imported
contacts and orphaned shared copies are removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := rootOpts.client().Pull(cmd.Context(), args[0])
			return rootOpts.finish(cmd, result, func(w io.Writer) { renderPull(w, result) }, err)
		},
	}
}

func renderPull(w io.Writer, r models.PullResult) {
	fmt.Fprintf(w, "pull %s: created=%d updated=%d skipped=%d failed=%d orphans=%d deletions=%d/%d (%s)\n",
		r.ConnectionID, r.Created, r.Updated, r.Skipped, r.Failed, r.OrphansDeleted,
		r.ServerDeletionsApplied, r.ServerDeletionsApplied+r.ServerDeletionsSkipped,
		r.Duration.Round(time.Millisecond))
	if r.Aborted {
		fmt.Fprintf(w, "  aborted: %s\n", r.AbortReason)
	}
	printContactErrors(w, r.Errors)
	printError(w, r.Error)
}

// NewPushCommand creates the push command.
func NewPushCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "push <connection-id>",
		Short: "Push every eligible local contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := rootOpts.client().Push(cmd.Context(), args[0])
			return rootOpts.finish(cmd, result, func(w io.Writer) { renderBatch(w, result) }, err)
		},
	}
}

func renderBatch(w io.Writer, r models.BatchResult) {
	fmt.Fprintf(w, "push %s: total=%d pushed=%d skipped=%d failed=%d (%s)\n",
		r.ConnectionID, r.Total, r.Pushed, r.Skipped, r.Failed, r.Duration.Round(time.Millisecond))
	printContactErrors(w, r.Errors)
	printError(w, r.Error)
}

// NewProtectCommand creates the protect command.
func NewProtectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "protect <connection-id>",
		Short: "Revert remote edits to shared contacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := rootOpts.client().Protect(cmd.Context(), args[0])
			return rootOpts.finish(cmd, result, func(w io.Writer) { renderProtection(w, result) }, err)
		},
	}
}

func renderProtection(w io.Writer, r models.ProtectionResult) {
	if r.NoOp {
		fmt.Fprintf(w, "protect %s: server enforces read-only shared contacts, nothing to do\n", r.ConnectionID)
		return
	}
	fmt.Fprintf(w, "protect %s: checked=%d corrected=%d failed=%d (%s)\n",
		r.ConnectionID, r.Checked, r.Corrected, r.Failed, r.Duration.Round(time.Millisecond))
	printContactErrors(w, r.Errors)
	printError(w, r.Error)
}
