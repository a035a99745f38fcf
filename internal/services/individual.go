package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/squaredcircle/promoter-backend/internal/apierr"
	"github.com/squaredcircle/promoter-backend/internal/lifecycle"
	"github.com/squaredcircle/promoter-backend/internal/logger"
	"github.com/squaredcircle/promoter-backend/internal/realtime"
	"github.com/squaredcircle/promoter-backend/internal/repos"
	"github.com/squaredcircle/promoter-backend/internal/types"
)

// guardErr wraps a lifecycle guard failure for the HTTP layer.
func guardErr(code string, kind types.EntityKind, err error) error {
	return apierr.New(http.StatusUnprocessableEntity, code, fmt.Errorf("%s %s", kind, err))
}

func notFoundErr(kind types.EntityKind, id uuid.UUID) error {
	return apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("%s %s does not exist", kind, id))
}

// effectiveAt defaults a zero transition date to now. Transitions may
// be backdated by passing an explicit date.
func effectiveAt(at time.Time) time.Time {
	if at.IsZero() {
		return time.Now().UTC()
	}
	return at.UTC()
}

// individualLifecycle applies employment / injury / suspension /
// retirement transitions for a single roster person. Wrestler, manager
// and referee services share one instance each, bound to their entity
// kind. Every transition runs in one transaction: snapshot, guard,
// record mutations, in that order.
type individualLifecycle struct {
	kind        types.EntityKind
	db          *gorm.DB
	log         *logger.Logger
	status      StatusService
	employments repos.EmploymentRepo
	injuries    repos.InjuryRepo
	suspensions repos.SuspensionRepo
	retirements repos.RetirementRepo
	bus         realtime.Bus
}

func newIndividualLifecycle(
	kind types.EntityKind,
	db *gorm.DB,
	log *logger.Logger,
	status StatusService,
	employments repos.EmploymentRepo,
	injuries repos.InjuryRepo,
	suspensions repos.SuspensionRepo,
	retirements repos.RetirementRepo,
	bus realtime.Bus,
) *individualLifecycle {
	return &individualLifecycle{
		kind:        kind,
		db:          db,
		log:         log,
		status:      status,
		employments: employments,
		injuries:    injuries,
		suspensions: suspensions,
		retirements: retirements,
		bus:         bus,
	}
}

func (il *individualLifecycle) publish(ctx context.Context, id uuid.UUID, transition string, at time.Time) {
	if il.bus == nil {
		return
	}
	ev := realtime.RosterEvent{
		Kind:        il.kind,
		EntityID:    id,
		Transition:  transition,
		EffectiveAt: at,
	}
	if err := il.bus.Publish(ctx, ev); err != nil {
		il.log.Warn("Failed to publish roster event", "transition", transition, "error", err)
	}
}

func (il *individualLifecycle) transact(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return il.db.WithContext(ctx).Transaction(fn)
}

// Employ signs the person as of at. A pending future contract has its
// start date moved instead of a second record being stacked.
func (il *individualLifecycle) Employ(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := il.transact(ctx, func(tx *gorm.DB) error {
		snap, err := il.status.IndividualSnapshot(ctx, tx, il.kind, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeEmployed(); err != nil {
			return guardErr("cannot_employ", il.kind, err)
		}
		if snap.Employment == lifecycle.EmploymentFuture {
			latest, err := il.employments.Latest(ctx, tx, il.kind, id)
			if err != nil {
				return err
			}
			return il.employments.UpdateStart(ctx, tx, latest.ID, at)
		}
		_, err = il.employments.Create(ctx, tx, &types.Employment{
			EntityType: il.kind,
			EntityID:   id,
			StartedAt:  at,
		})
		return err
	})
	if err != nil {
		return err
	}
	il.publish(ctx, id, "employ", at)
	return nil
}

// Release ends the open contract along with any open suspension or
// injury.
func (il *individualLifecycle) Release(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := il.transact(ctx, func(tx *gorm.DB) error {
		snap, err := il.status.IndividualSnapshot(ctx, tx, il.kind, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeReleased(); err != nil {
			return guardErr("cannot_release", il.kind, err)
		}
		if snap.Suspended {
			if err := il.suspensions.EndOpen(ctx, tx, il.kind, id, at); err != nil {
				return err
			}
		}
		if snap.Injured {
			if err := il.injuries.EndOpen(ctx, tx, il.kind, id, at); err != nil {
				return err
			}
		}
		return il.employments.EndOpen(ctx, tx, il.kind, id, at)
	})
	if err != nil {
		return err
	}
	il.publish(ctx, id, "release", at)
	return nil
}

func (il *individualLifecycle) Injure(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := il.transact(ctx, func(tx *gorm.DB) error {
		snap, err := il.status.IndividualSnapshot(ctx, tx, il.kind, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeInjured(); err != nil {
			return guardErr("cannot_injure", il.kind, err)
		}
		_, err = il.injuries.Start(ctx, tx, il.kind, id, at)
		return err
	})
	if err != nil {
		return err
	}
	il.publish(ctx, id, "injure", at)
	return nil
}

func (il *individualLifecycle) ClearFromInjury(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := il.transact(ctx, func(tx *gorm.DB) error {
		snap, err := il.status.IndividualSnapshot(ctx, tx, il.kind, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeClearedFromInjury(); err != nil {
			return guardErr("cannot_clear_injury", il.kind, err)
		}
		return il.injuries.EndOpen(ctx, tx, il.kind, id, at)
	})
	if err != nil {
		return err
	}
	il.publish(ctx, id, "clear_injury", at)
	return nil
}

func (il *individualLifecycle) Suspend(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := il.transact(ctx, func(tx *gorm.DB) error {
		snap, err := il.status.IndividualSnapshot(ctx, tx, il.kind, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeSuspended(); err != nil {
			return guardErr("cannot_suspend", il.kind, err)
		}
		_, err = il.suspensions.Start(ctx, tx, il.kind, id, at)
		return err
	})
	if err != nil {
		return err
	}
	il.publish(ctx, id, "suspend", at)
	return nil
}

func (il *individualLifecycle) Reinstate(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := il.transact(ctx, func(tx *gorm.DB) error {
		snap, err := il.status.IndividualSnapshot(ctx, tx, il.kind, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeReinstated(); err != nil {
			return guardErr("cannot_reinstate", il.kind, err)
		}
		return il.suspensions.EndOpen(ctx, tx, il.kind, id, at)
	})
	if err != nil {
		return err
	}
	il.publish(ctx, id, "reinstate", at)
	return nil
}

// Retire closes out the person entirely: open injury and suspension
// end, the contract ends, and a retirement record opens.
func (il *individualLifecycle) Retire(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := il.transact(ctx, func(tx *gorm.DB) error {
		return il.retireInTx(ctx, tx, id, at)
	})
	if err != nil {
		return err
	}
	il.publish(ctx, id, "retire", at)
	return nil
}

// retireInTx is split out so cascading retirements (a stable retiring
// its members) can join an enclosing transaction.
func (il *individualLifecycle) retireInTx(ctx context.Context, tx *gorm.DB, id uuid.UUID, at time.Time) error {
	snap, err := il.status.IndividualSnapshot(ctx, tx, il.kind, id, time.Now().UTC())
	if err != nil {
		return err
	}
	if err := snap.CanBeRetired(); err != nil {
		return guardErr("cannot_retire", il.kind, err)
	}
	if snap.Injured {
		if err := il.injuries.EndOpen(ctx, tx, il.kind, id, at); err != nil {
			return err
		}
	}
	if snap.Suspended {
		if err := il.suspensions.EndOpen(ctx, tx, il.kind, id, at); err != nil {
			return err
		}
	}
	if snap.Employment == lifecycle.EmploymentCurrent {
		if err := il.employments.EndOpen(ctx, tx, il.kind, id, at); err != nil {
			return err
		}
	}
	_, err = il.retirements.Start(ctx, tx, il.kind, id, at)
	return err
}

// Unretire ends the retirement and opens a fresh contract as of the
// same date.
func (il *individualLifecycle) Unretire(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := il.transact(ctx, func(tx *gorm.DB) error {
		snap, err := il.status.IndividualSnapshot(ctx, tx, il.kind, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeUnretired(); err != nil {
			return guardErr("cannot_unretire", il.kind, err)
		}
		if err := il.retirements.EndOpen(ctx, tx, il.kind, id, at); err != nil {
			return err
		}
		_, err = il.employments.Create(ctx, tx, &types.Employment{
			EntityType: il.kind,
			EntityID:   id,
			StartedAt:  at,
		})
		return err
	})
	if err != nil {
		return err
	}
	il.publish(ctx, id, "unretire", at)
	return nil
}
