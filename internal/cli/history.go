package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/canvas-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/canvas-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/canvas-backend/internal/domain"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

type historyOptions struct {
	Entity string
	ID     string
	Limit  int
	Format string
}

type historyReader interface {
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// historyEntry is the JSON shape of one audit record.
type historyEntry struct {
	At      time.Time      `json:"at"`
	Action  string         `json:"action"`
	ActorID uuid.UUID      `json:"actor_id"`
	Changes map[string]any `json:"changes,omitempty"`
}

// NewHistoryCommand creates the history command, which prints the audit
// trail of a topic or user, newest first.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &historyOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the audit trail of a topic or user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, id, err := parseHistoryTarget(opts)
			if err != nil {
				return err
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

			return runHistory(cmd.Context(), cmd.OutOrStdout(), auditrepo.New(pool), entity, id, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Entity, "entity", "", "entity type: topic or user")
	cmd.Flags().StringVar(&opts.ID, "id", "", "entity id (uuid)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of records")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	_ = cmd.MarkFlagRequired("entity")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func parseHistoryTarget(opts *historyOptions) (domain.EntityType, uuid.UUID, error) {
	entity := domain.EntityType(strings.ToUpper(opts.Entity))
	if !entity.IsValid() {
		return "", uuid.Nil, NewExitError(ExitCommandError, fmt.Sprintf("invalid --entity %q: must be topic or user", opts.Entity))
	}
	id, err := uuid.Parse(opts.ID)
	if err != nil {
		return "", uuid.Nil, NewExitError(ExitCommandError, fmt.Sprintf("invalid --id %q", opts.ID))
	}
	if opts.Limit <= 0 {
		return "", uuid.Nil, NewExitError(ExitCommandError, fmt.Sprintf("invalid --limit %d: must be > 0", opts.Limit))
	}
	if !isValidFormat(opts.Format) {
		return "", uuid.Nil, NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}
	return entity, id, nil
}

func runHistory(ctx context.Context, w io.Writer, audit historyReader, entity domain.EntityType, id uuid.UUID, opts *historyOptions) error {
	records, err := audit.GetByEntity(ctx, entity, id, opts.Limit)
	if err != nil {
		return WrapExitError(ExitFailure, "read audit log", err)
	}
	return writeHistory(w, records, opts.Format)
}

func writeHistory(w io.Writer, records []domain.AuditRecord, format string) error {
	entries := make([]historyEntry, len(records))
	for i, r := range records {
		entries[i] = historyEntry{At: r.CreatedAt.UTC(), Action: r.Action.String(), ActorID: r.UserID, Changes: r.Changes}
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "no audit records")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "AT\tACTION\tACTOR\tCHANGES")
	for _, e := range entries {
		changes, err := json.Marshal(e.Changes)
		if err != nil {
			return fmt.Errorf("encode changes: %w", err)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.At.Format(time.RFC3339), e.Action, e.ActorID, changes)
	}
	return tw.Flush()
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
