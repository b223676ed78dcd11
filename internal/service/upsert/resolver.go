package upsert

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
)

// Resolve picks the record an upsert lands on, in priority order:
//  1. the live record with requestedID in scope;
//  2. the soft-deleted record in scope whose natural key equals key, undeleted
//     in memory and keeping its own id;
//  3. a new record seeded with requestedID.
//
// The undelete is not persisted here. It becomes visible only when the
// orchestrator writes the record inside the same transaction.
func Resolve[R Record](
	ctx context.Context,
	store Store[R],
	scope Scope,
	requestedID uuid.UUID,
	key string,
	newRecord func(id uuid.UUID, scope Scope) R,
) (Target[R], error) {
	live, err := store.GetLive(ctx, scope, requestedID)
	if err == nil {
		return Target[R]{Record: live, Scope: scope, RequestedID: requestedID}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return Target[R]{}, fmt.Errorf("resolve live: %w", err)
	}

	if key != "" {
		deleted, err := store.FindDeleted(ctx, scope, key)
		if err == nil {
			deleted.Undelete()
			return Target[R]{
				Record:        deleted,
				Scope:         scope,
				RequestedID:   requestedID,
				IsResurrected: true,
			}, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return Target[R]{}, fmt.Errorf("resolve deleted: %w", err)
		}
	}

	return Target[R]{
		Record:      newRecord(requestedID, scope),
		Scope:       scope,
		RequestedID: requestedID,
		IsNew:       true,
	}, nil
}
