package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// NewConnectCommand creates the connect command.
func NewConnectCommand(rootOpts *RootOptions) *cobra.Command {
	var cfg models.ConnectConfig

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect a remote address book server",
		Long: `Connect discovers the address books of a remote server, detects its
capabilities and registers the connection with the daemon.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := rootOpts.client().Connect(cmd.Context(), cfg)
			return rootOpts.finish(cmd, result, func(w io.Writer) { renderConnect(w, result) }, err)
		},
	}

	cmd.Flags().StringVar(&cfg.ConnectionID, "id", "", "connection id (generated when empty)")
	cmd.Flags().StringVar(&cfg.ServerURL, "server", "", "CardDAV server URL")
	cmd.Flags().StringVarP(&cfg.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&cfg.Password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&cfg.Profile, "profile", "", "force a capability profile")
	_ = cmd.MarkFlagRequired("server")

	return cmd
}

func renderConnect(w io.Writer, r models.ConnectResult) {
	if r.Connection == nil {
		fmt.Fprintln(w, "connect failed")
		printError(w, r.Error)
		return
	}

	c := r.Connection
	fmt.Fprintf(w, "connected %s (%s)\n", c.ID, c.ServerURL)
	renderCapabilities(w, c.Capabilities)

	books := make([]string, 0, len(c.AddressBooks))
	for _, b := range c.AddressBooks {
		if b.ReadOnly {
			books = append(books, b.Name+" (read-only)")
			continue
		}
		books = append(books, b.Name)
	}
	fmt.Fprintf(w, "  address books: %s\n", strings.Join(books, ", "))
}

func renderCapabilities(w io.Writer, c models.Capabilities) {
	fmt.Fprintf(w, "  flavor: %s, protection: %s\n", c.Flavor, c.ProtectionStrategy)
	if c.ReadOnlyAddressBook != "" {
		fmt.Fprintf(w, "  owned -> %s, shared -> %s\n", c.ReadWriteAddressBook, c.ReadOnlyAddressBook)
	}
}

// NewDisconnectCommand creates the disconnect command.
func NewDisconnectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <connection-id>",
		Short: "Stop all cycles of a connection and forget it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := rootOpts.client().Disconnect(cmd.Context(), args[0])
			return rootOpts.finish(cmd, result, func(w io.Writer) { renderOperation(w, "disconnect "+args[0], result) }, err)
		},
	}
}

func renderOperation(w io.Writer, what string, r models.OperationResult) {
	if r.Success {
		fmt.Fprintf(w, "%s: ok\n", what)
		return
	}
	fmt.Fprintf(w, "%s: failed\n", what)
	printError(w, r.Error)
}

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <connection-id>",
		Short: "Show the state of a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := rootOpts.client().Status(cmd.Context(), args[0])
			return rootOpts.finish(cmd, result, func(w io.Writer) { renderStatus(w, result) }, err)
		},
	}
}

func renderStatus(w io.Writer, s models.ConnectionStatus) {
	if !s.Connected {
		fmt.Fprintf(w, "%s: not connected\n", s.ConnectionID)
		printError(w, s.LastError)
		return
	}

	fmt.Fprintf(w, "%s: connected, scheduled: %t, queued: %d\n", s.ConnectionID, s.Scheduled, s.QueueLength)
	if s.Capabilities != nil {
		renderCapabilities(w, *s.Capabilities)
	}
	if s.Current != nil {
		fmt.Fprintf(w, "  running: %s since %s\n", s.Current.Direction, s.Current.StartedAt.Format(time.RFC3339))
	}
	if !s.LastHeartbeat.IsZero() {
		fmt.Fprintf(w, "  last heartbeat: %s\n", s.LastHeartbeat.Format(time.RFC3339))
	}
	if s.LastPull != nil {
		fmt.Fprint(w, "  last ")
		renderPull(w, *s.LastPull)
	}
	if s.LastPush != nil {
		fmt.Fprint(w, "  last ")
		renderBatch(w, *s.LastPush)
	}
	printError(w, s.LastError)
}
