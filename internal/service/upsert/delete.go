package upsert

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
)

// DeleteGuard vets a deletion before any lookup. Returning an error
// aborts the delete.
type DeleteGuard func(caller domain.Caller, id uuid.UUID) error

// ForbidSelf rejects callers deleting their own id with domain.ErrForbidden.
func ForbidSelf(caller domain.Caller, id uuid.UUID) error {
	if caller.Owns(id) {
		return fmt.Errorf("delete own account: %w", domain.ErrForbidden)
	}
	return nil
}

// Delete soft-deletes the live record with id in scope. A missing record
// yields domain.ErrNotFound.
func (o *Orchestrator[R, P]) Delete(ctx context.Context, caller domain.Caller, scope Scope, id uuid.UUID, guards ...DeleteGuard) error {
	for _, g := range guards {
		if err := g(caller, id); err != nil {
			return err
		}
	}

	return o.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := o.store.GetLive(txCtx, scope, id)
		if err != nil {
			return fmt.Errorf("get %s: %w", o.res.Entity(), err)
		}

		if err := o.store.SoftDelete(txCtx, scope, id); err != nil {
			return fmt.Errorf("soft delete %s: %w", o.res.Entity(), err)
		}

		if err := o.audit.Log(txCtx, domain.AuditRecord{
			UserID:     caller.UserID,
			EntityType: o.res.Entity(),
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes:    o.res.Snapshot(rec),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
}
