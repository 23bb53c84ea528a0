package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

type scheduleOptions struct {
	pull       time.Duration
	push       time.Duration
	pushOffset time.Duration
	protection time.Duration
	refresh    time.Duration
}

func (o scheduleOptions) request() models.ScheduleRequest {
	return models.ScheduleRequest{
		PullIntervalMs:       o.pull.Milliseconds(),
		PushIntervalMs:       o.push.Milliseconds(),
		PushOffsetMs:         o.pushOffset.Milliseconds(),
		ProtectionIntervalMs: o.protection.Milliseconds(),
		RefreshIntervalMs:    o.refresh.Milliseconds(),
	}
}

// NewScheduleCommand creates the schedule command.
func NewScheduleCommand(rootOpts *RootOptions) *cobra.Command {
	var opts scheduleOptions

	cmd := &cobra.Command{
		Use:   "schedule <connection-id>",
		Short: "Start periodic sync cycles",
		Long: `Schedule starts periodic pull and push cycles for a connection, plus
protection and refresh cycles when shared contacts are protected by the
engine. Zero durations use the daemon defaults; a negative protection or
refresh interval disables that cycle.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := rootOpts.client().Schedule(cmd.Context(), args[0], opts.request())
			return rootOpts.finish(cmd, result, func(w io.Writer) { renderOperation(w, "schedule "+args[0], result) }, err)
		},
	}

	cmd.Flags().DurationVar(&opts.pull, "pull", 0, "pull interval")
	cmd.Flags().DurationVar(&opts.push, "push", 0, "push interval")
	cmd.Flags().DurationVar(&opts.pushOffset, "push-offset", 0, "delay of the first push")
	cmd.Flags().DurationVar(&opts.protection, "protection", 0, "protection interval")
	cmd.Flags().DurationVar(&opts.refresh, "refresh", 0, "shared contact refresh interval")

	return cmd
}

// NewUnscheduleCommand creates the unschedule command.
func NewUnscheduleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unschedule <connection-id>",
		Short: "Stop periodic sync cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := rootOpts.client().Unschedule(cmd.Context(), args[0])
			return rootOpts.finish(cmd, result, func(w io.Writer) { renderOperation(w, "unschedule "+args[0], result) }, err)
		},
	}
}
