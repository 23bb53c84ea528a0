package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/client"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	API     string
	Token   string
	Timeout time.Duration
	Format  string // "json" | "text"
	Verbose bool

	cfg    *config.CtlConfig
	logger *logger.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

func (o *RootOptions) client() client.ControlClient {
	o.logger.Debug().Str("api", o.API).Bool("token", o.Token != "").Msg("using control API")
	return client.New(o.API, o.Token, o.Timeout)
}

// NewRootCommand creates the root command of contactsyncctl. cfg supplies
// the defaults of the global flags.
func NewRootCommand(cfg *config.CtlConfig) *cobra.Command {
	opts := &RootOptions{cfg: cfg, logger: logger.Nop()}

	cmd := &cobra.Command{
		Use:   "contactsyncctl",
		Short: "Control a running contactsync daemon",
		Long: `contactsyncctl drives the control API of a contactsync daemon.

It connects remote address books, triggers pull, push and protection
cycles, manages schedules and follows the engine's event stream.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			opts.logger = logger.NewConsoleLogger("ctl", opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.API, "api", cfg.API, "control API base URL (env CONTACTSYNC_API)")
	cmd.PersistentFlags().StringVar(&opts.Token, "token", cfg.Token, "bearer token (env CONTACTSYNC_TOKEN)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", cfg.Timeout, "timeout of a single call")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewConnectCommand(opts))
	cmd.AddCommand(NewDisconnectCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewPullCommand(opts))
	cmd.AddCommand(NewPushCommand(opts))
	cmd.AddCommand(NewProtectCommand(opts))
	cmd.AddCommand(NewScheduleCommand(opts))
	cmd.AddCommand(NewUnscheduleCommand(opts))
	cmd.AddCommand(NewEventsCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}
