package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/utils"
)

type tokenOutput struct {
	Token     string    `json:"token"`
	Operator  string    `json:"operator"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewTokenCommand creates the token command. Tokens are signed locally with
// the key shared with the daemon.
func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		operator string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a control API token",
		Long: `Token signs a bearer token for the control API with APP_TOKEN_SIGN_KEY
and APP_TOKEN_ISSUER, the same settings the daemon verifies against.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.cfg
			if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" {
				return NewExitError(ExitCommandError, "APP_TOKEN_SIGN_KEY and APP_TOKEN_ISSUER must be set")
			}

			token, err := utils.GenerateJWTToken(cfg.TokenIssuer, operator, duration, cfg.TokenSignKey)
			if err != nil {
				return WrapExitError(ExitCommandError, "generate token", err)
			}

			out := tokenOutput{Token: token.SignedString, Operator: operator, ExpiresAt: time.Now().Add(duration).UTC().Truncate(time.Second)}
			return rootOpts.finish(cmd, out, func(w io.Writer) { fmt.Fprintln(w, out.Token) }, nil)
		},
	}

	cmd.Flags().StringVar(&operator, "operator", "admin", "operator name stored in the token")
	cmd.Flags().DurationVar(&duration, "ttl", rootOpts.cfg.TokenDuration, "token lifetime")

	return cmd
}
