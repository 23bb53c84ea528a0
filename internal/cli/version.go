package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the daemon version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := rootOpts.client().Version(cmd.Context())
			if err != nil {
				return rootOpts.finish(cmd, nil, func(io.Writer) {}, err)
			}
			out := struct {
				Version string `json:"version"`
			}{version}
			return rootOpts.finish(cmd, out, func(w io.Writer) { fmt.Fprintln(w, version) }, nil)
		},
	}
}
