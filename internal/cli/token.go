package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/canvas-backend/internal/auth"
)

type tokenOptions struct {
	UserID string
	Role   string
}

// NewTokenCommand creates the token command, which signs an access token
// for an existing user id with the configured secret.
func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a user id",
		Long: `Issue an access token for a user id.

The token is signed with auth.jwt_secret and expires after
auth.access_token_ttl. Intended for local development and smoke tests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(opts.UserID)
			if err != nil || userID == uuid.Nil {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid --user %q", opts.UserID))
			}

			cfg, err := rootOpts.loadConfig()
			if err != nil {
				return WrapExitError(ExitCommandError, "load config", err)
			}

			jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
			token, err := jwt.GenerateAccessToken(userID, opts.Role)
			if err != nil {
				return WrapExitError(ExitFailure, "generate token", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.UserID, "user", "u", "", "user id (uuid) to use as subject")
	cmd.Flags().StringVar(&opts.Role, "role", "", "optional role claim")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
