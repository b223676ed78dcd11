package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/canvas-backend/internal/domain"
)

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Get runs a SELECT built with squirrel and scans exactly one row into dst.
// Returns pgx.ErrNoRows (wrapped by scany) when nothing matches.
func Get(ctx context.Context, q Querier, dst any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, q, dst, sql, args...)
}

// Select runs a SELECT built with squirrel and scans all rows into dst (a slice pointer).
func Select(ctx context.Context, q Querier, dst any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, sql, args...)
}

// Exec runs a write statement built with squirrel and returns the affected row count.
func Exec(ctx context.Context, q Querier, query sq.Sqlizer) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Scoped restricts a SELECT to scope by filtering ownerColumn.
// A global scope leaves the query unfiltered.
func Scoped(b sq.SelectBuilder, ownerColumn string, scope domain.Scope) sq.SelectBuilder {
	if scope.IsGlobal() {
		return b
	}
	return b.Where(sq.Eq{ownerColumn: scope.OwnerID})
}

// ForUpdate appends FOR UPDATE when ctx carries a transaction, so rows read
// while reconciling stay locked until commit.
func ForUpdate(ctx context.Context, b sq.SelectBuilder) sq.SelectBuilder {
	if InTx(ctx) {
		return b.Suffix("FOR UPDATE")
	}
	return b
}
