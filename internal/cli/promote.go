package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/canvas-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/canvas-backend/internal/adapter/postgres/audit"
	userrepo "github.com/heartmarshall/canvas-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/canvas-backend/internal/domain"
)

type promoteOptions struct {
	Email string
	Role  int
}

type roleSetter interface {
	SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.User, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NewPromoteCommand creates the promote command. It is used to bootstrap
// the first administrator.
func NewPromoteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &promoteOptions{Role: int(domain.UserRoleAdmin)}

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Set the role of a live user by email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			role := domain.UserRole(opts.Role)
			if !role.IsValid() {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid --role %d", opts.Role))
			}

			cfg, err := rootOpts.loadConfig()
			if err != nil {
				return WrapExitError(ExitCommandError, "load config", err)
			}

			pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
			if err != nil {
				return WrapExitError(ExitCommandError, "connect to database", err)
			}
			defer pool.Close()

			u, err := promote(cmd.Context(), postgres.NewTxManager(pool), userrepo.New(pool), auditrepo.New(pool), opts.Email, role)
			if errors.Is(err, domain.ErrNotFound) {
				return WrapExitError(ExitFailure, fmt.Sprintf("no live user with email %q", opts.Email), err)
			}
			if err != nil {
				return WrapExitError(ExitFailure, "promote", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "User %q (%s) is now %s.\n", u.Email, u.ID, u.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "email of the user to promote")
	cmd.Flags().IntVar(&opts.Role, "role", opts.Role, "role to assign: 1 contributor, 2 editor, 3 admin")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// promote changes the role and records an UPDATE audit entry attributed to
// no user, in one transaction.
func promote(ctx context.Context, tx txRunner, users roleSetter, audit auditLogger, email string, role domain.UserRole) (*domain.User, error) {
	email = domain.NormalizeEmail(email)

	var u *domain.User
	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		u, err = users.SetRoleByEmail(ctx, email, role)
		if err != nil {
			return err
		}
		return audit.Log(ctx, domain.AuditRecord{
			UserID:     uuid.Nil,
			EntityType: domain.EntityTypeUser,
			EntityID:   &u.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"role": map[string]any{"new": int(role)}},
		})
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}
