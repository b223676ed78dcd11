package upsert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
)

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// State is a step of the upsert state machine.
type State string

const (
	StateResolving   State = "resolving"
	StateValidating  State = "validating"
	StateReconciling State = "reconciling"
	StatePersisting  State = "persisting"
	StateDone        State = "done"
	StateRejected    State = "rejected"
)

// Option configures an Orchestrator.
type Option func(*options)

type options struct {
	observe func(State)
}

// WithObserver registers fn to be called on every state transition.
func WithObserver(fn func(State)) Option {
	return func(o *options) { o.observe = fn }
}

// Orchestrator sequences resolve, validate, reconcile and persist for one
// resource type. All steps of an upsert share one transaction.
type Orchestrator[R Record, P any] struct {
	res       Resource[R, P]
	store     Store[R]
	validator *Validator
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
	opts      options
}

// NewOrchestrator creates an Orchestrator for res backed by store.
func NewOrchestrator[R Record, P any](
	log *slog.Logger,
	res Resource[R, P],
	store Store[R],
	validator *Validator,
	audit auditLogger,
	tx txManager,
	opts ...Option,
) *Orchestrator[R, P] {
	o := &Orchestrator[R, P]{
		res:       res,
		store:     store,
		validator: validator,
		audit:     audit,
		tx:        tx,
		log:       log.With("component", "upsert", "entity", res.Entity().String()),
	}
	for _, opt := range opts {
		opt(&o.opts)
	}
	return o
}

func (o *Orchestrator[R, P]) enter(ctx context.Context, id uuid.UUID, s State) {
	o.log.DebugContext(ctx, "upsert state", slog.String("id", id.String()), slog.String("state", string(s)))
	if o.opts.observe != nil {
		o.opts.observe(s)
	}
}

// Upsert writes payload p to the record addressed by id within scope on
// behalf of caller.
//
// Validation failures are returned as *domain.ValidationError and leave the
// store untouched, including a resurrection resolved along the way.
func (o *Orchestrator[R, P]) Upsert(ctx context.Context, caller domain.Caller, scope Scope, id uuid.UUID, p P) (Result[R], error) {
	var result Result[R]

	err := o.tx.RunInTx(ctx, func(txCtx context.Context) error {
		o.enter(txCtx, id, StateResolving)
		target, err := Resolve(txCtx, o.store, scope, id, o.res.NaturalKey(p), o.res.NewRecord)
		if err != nil {
			return err
		}

		o.enter(txCtx, id, StateValidating)
		locale, err := o.res.Locale(txCtx, target)
		if err != nil {
			return fmt.Errorf("validation locale: %w", err)
		}
		if err := o.validator.Validate(txCtx, locale, o.res.Fields(p, target)); err != nil {
			if errors.Is(err, domain.ErrValidation) {
				o.enter(txCtx, id, StateRejected)
			}
			return err
		}

		o.enter(txCtx, id, StateReconciling)
		if err := o.res.Reconcile(caller, target, p); err != nil {
			return fmt.Errorf("reconcile: %w", err)
		}

		o.enter(txCtx, id, StatePersisting)
		saved, err := o.persist(txCtx, target)
		if err != nil {
			var uv *domain.UniqueViolationError
			if errors.As(err, &uv) {
				field, ok := o.res.FieldForConstraint(uv.Constraint)
				if !ok {
					field = o.res.KeyField()
				}
				o.enter(txCtx, id, StateRejected)
				return o.validator.Reject(locale, field, domain.RuleUnique)
			}
			return err
		}

		path := target.Path()
		savedID := saved.GetID()
		if err := o.audit.Log(txCtx, domain.AuditRecord{
			UserID:     caller.UserID,
			EntityType: o.res.Entity(),
			EntityID:   &savedID,
			Action:     path.Action(),
			Changes:    o.res.Snapshot(saved),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		result = Result[R]{Record: saved, Path: path}
		o.enter(txCtx, id, StateDone)
		return nil
	})
	if err != nil {
		return Result[R]{}, err
	}

	return result, nil
}

func (o *Orchestrator[R, P]) persist(ctx context.Context, t Target[R]) (R, error) {
	if t.IsNew {
		saved, err := o.store.Create(ctx, t.Record)
		if err != nil {
			return saved, fmt.Errorf("create: %w", err)
		}
		return saved, nil
	}
	saved, err := o.store.Update(ctx, t.Record)
	if err != nil {
		return saved, fmt.Errorf("update: %w", err)
	}
	return saved, nil
}

// Get returns the live record with id in scope.
func (o *Orchestrator[R, P]) Get(ctx context.Context, scope Scope, id uuid.UUID) (R, error) {
	rec, err := o.store.GetLive(ctx, scope, id)
	if err != nil {
		return rec, fmt.Errorf("get %s: %w", o.res.Entity(), err)
	}
	return rec, nil
}
