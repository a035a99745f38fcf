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

type CreateStableInput struct {
	Name        string      `json:"name"`
	WrestlerIDs []uuid.UUID `json:"wrestler_ids,omitempty"`
	TagTeamIDs  []uuid.UUID `json:"tag_team_ids,omitempty"`
}

type UpdateStableInput struct {
	Name *string `json:"name,omitempty"`
}

type StableView struct {
	Stable *types.Stable          `json:"stable"`
	Status types.ActivationStatus `json:"status"`
}

type StableService interface {
	Create(ctx context.Context, input CreateStableInput) (*types.Stable, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateStableInput) (*types.Stable, error)
	Get(ctx context.Context, id uuid.UUID) (*StableView, error)
	List(ctx context.Context, statusFilter *types.ActivationStatus) ([]*StableView, error)
	Archive(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error

	AddMember(ctx context.Context, stableID uuid.UUID, memberKind types.EntityKind, memberID uuid.UUID, at time.Time) error
	RemoveMember(ctx context.Context, stableID uuid.UUID, memberKind types.EntityKind, memberID uuid.UUID, at time.Time) error

	Establish(ctx context.Context, id uuid.UUID, at time.Time) error
	Disband(ctx context.Context, id uuid.UUID, at time.Time) error
	Retire(ctx context.Context, id uuid.UUID, at time.Time) error
	Unretire(ctx context.Context, id uuid.UUID, at time.Time) error
}

type stableService struct {
	db          *gorm.DB
	log         *logger.Logger
	stables     repos.StableRepo
	members     repos.StableMemberRepo
	wrestlers   repos.WrestlerRepo
	teams       repos.TagTeamRepo
	status      StatusService
	activations repos.ActivationRepo
	employments repos.EmploymentRepo
	injuries    repos.InjuryRepo
	suspensions repos.SuspensionRepo
	retirements repos.RetirementRepo
	bus         realtime.Bus
}

func NewStableService(
	db *gorm.DB,
	log *logger.Logger,
	stables repos.StableRepo,
	members repos.StableMemberRepo,
	wrestlers repos.WrestlerRepo,
	teams repos.TagTeamRepo,
	status StatusService,
	activations repos.ActivationRepo,
	employments repos.EmploymentRepo,
	injuries repos.InjuryRepo,
	suspensions repos.SuspensionRepo,
	retirements repos.RetirementRepo,
	bus realtime.Bus,
) StableService {
	return &stableService{
		db:          db,
		log:         log.With("service", "StableService"),
		stables:     stables,
		members:     members,
		wrestlers:   wrestlers,
		teams:       teams,
		status:      status,
		activations: activations,
		employments: employments,
		injuries:    injuries,
		suspensions: suspensions,
		retirements: retirements,
		bus:         bus,
	}
}

func (ss *stableService) publish(ctx context.Context, id uuid.UUID, transition string, at time.Time) {
	if ss.bus == nil {
		return
	}
	evt := realtime.RosterEvent{
		Kind:        types.EntityKindStable,
		EntityID:    id,
		Transition:  transition,
		EffectiveAt: at,
	}
	if err := ss.bus.Publish(ctx, evt); err != nil {
		ss.log.Warn("Failed to publish roster event", "stable_id", id, "transition", transition, "error", err)
	}
}

func (ss *stableService) checkMemberExists(ctx context.Context, tx *gorm.DB, kind types.EntityKind, id uuid.UUID) error {
	switch kind {
	case types.EntityKindWrestler:
		w, err := ss.wrestlers.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if w == nil {
			return notFoundErr(kind, id)
		}
	case types.EntityKindTagTeam:
		t, err := ss.teams.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return notFoundErr(kind, id)
		}
	default:
		return apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("stables can only contain wrestlers and tag teams"))
	}
	return nil
}

func (ss *stableService) Create(ctx context.Context, input CreateStableInput) (*types.Stable, error) {
	if input.Name == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("name is required"))
	}
	taken, err := ss.stables.NameExists(ctx, nil, input.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apierr.New(http.StatusConflict, "name_taken", fmt.Errorf("stable name %q is already in use", input.Name))
	}

	stable := &types.Stable{Name: input.Name}
	now := time.Now().UTC()
	err = ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ss.stables.Create(ctx, tx, stable); err != nil {
			return err
		}
		for _, wid := range input.WrestlerIDs {
			if err := ss.checkMemberExists(ctx, tx, types.EntityKindWrestler, wid); err != nil {
				return err
			}
			if _, err := ss.members.Add(ctx, tx, stable.ID, types.EntityKindWrestler, wid, now); err != nil {
				return err
			}
		}
		for _, tid := range input.TagTeamIDs {
			if err := ss.checkMemberExists(ctx, tx, types.EntityKindTagTeam, tid); err != nil {
				return err
			}
			if _, err := ss.members.Add(ctx, tx, stable.ID, types.EntityKindTagTeam, tid, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ss.stables.GetByID(ctx, nil, stable.ID)
}

func (ss *stableService) Update(ctx context.Context, id uuid.UUID, input UpdateStableInput) (*types.Stable, error) {
	stable, err := ss.stables.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if stable == nil {
		return nil, notFoundErr(types.EntityKindStable, id)
	}
	if input.Name != nil && *input.Name != stable.Name {
		taken, err := ss.stables.NameExists(ctx, nil, *input.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apierr.New(http.StatusConflict, "name_taken", fmt.Errorf("stable name %q is already in use", *input.Name))
		}
		stable.Name = *input.Name
	}
	return ss.stables.Update(ctx, nil, stable)
}

func (ss *stableService) Get(ctx context.Context, id uuid.UUID) (*StableView, error) {
	stable, err := ss.stables.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if stable == nil {
		return nil, notFoundErr(types.EntityKindStable, id)
	}
	snap, err := ss.status.StableSnapshot(ctx, nil, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &StableView{Stable: stable, Status: snap.Status()}, nil
}

func (ss *stableService) List(ctx context.Context, statusFilter *types.ActivationStatus) ([]*StableView, error) {
	all, err := ss.stables.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	views := make([]*StableView, 0, len(all))
	for _, stable := range all {
		snap, err := ss.status.StableSnapshot(ctx, nil, stable.ID, now)
		if err != nil {
			return nil, err
		}
		status := snap.Status()
		if statusFilter != nil && status != *statusFilter {
			continue
		}
		views = append(views, &StableView{Stable: stable, Status: status})
	}
	return views, nil
}

func (ss *stableService) Archive(ctx context.Context, id uuid.UUID) error {
	stable, err := ss.stables.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if stable == nil {
		return notFoundErr(types.EntityKindStable, id)
	}
	return ss.stables.Archive(ctx, nil, id)
}

func (ss *stableService) Restore(ctx context.Context, id uuid.UUID) error {
	return ss.stables.Restore(ctx, nil, id)
}

func (ss *stableService) AddMember(ctx context.Context, stableID uuid.UUID, memberKind types.EntityKind, memberID uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	stable, err := ss.stables.GetByID(ctx, nil, stableID)
	if err != nil {
		return err
	}
	if stable == nil {
		return notFoundErr(types.EntityKindStable, stableID)
	}
	if err := ss.checkMemberExists(ctx, nil, memberKind, memberID); err != nil {
		return err
	}
	current, err := ss.members.Current(ctx, nil, stableID)
	if err != nil {
		return err
	}
	for _, m := range current {
		if m.MemberType == memberKind && m.MemberID == memberID {
			return apierr.New(http.StatusConflict, "already_member", fmt.Errorf("%s is already a member of this stable", memberKind))
		}
	}
	_, err = ss.members.Add(ctx, nil, stableID, memberKind, memberID, at)
	return err
}

func (ss *stableService) RemoveMember(ctx context.Context, stableID uuid.UUID, memberKind types.EntityKind, memberID uuid.UUID, at time.Time) error {
	return ss.members.End(ctx, nil, stableID, memberKind, memberID, effectiveAt(at))
}

// Establish activates the stable. A stable needs enough members before
// it can go live; tag teams count for the size of their current roster.
func (ss *stableService) Establish(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := ss.status.StableSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeEstablished(); err != nil {
			return guardErr("cannot_establish", types.EntityKindStable, err)
		}
		if snap.MemberCount < types.MinStableMembers {
			return guardErr("cannot_establish", types.EntityKindStable,
				fmt.Errorf("needs at least %d members, has %d", types.MinStableMembers, snap.MemberCount))
		}
		if snap.Activation == lifecycle.ActivationFuture {
			latest, err := ss.activations.Latest(ctx, tx, types.EntityKindStable, id)
			if err != nil {
				return err
			}
			return tx.WithContext(ctx).Model(latest).Update("started_at", at).Error
		}
		_, err = ss.activations.Create(ctx, tx, &types.Activation{
			EntityType: types.EntityKindStable,
			EntityID:   id,
			StartedAt:  at,
		})
		return err
	})
	if err != nil {
		return err
	}
	ss.publish(ctx, id, "establish", at)
	return nil
}

func (ss *stableService) Disband(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := ss.status.StableSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeDisbanded(); err != nil {
			return guardErr("cannot_disband", types.EntityKindStable, err)
		}
		if err := ss.members.EndAll(ctx, tx, id, at); err != nil {
			return err
		}
		return ss.activations.EndOpen(ctx, tx, types.EntityKindStable, id, at)
	})
	if err != nil {
		return err
	}
	ss.publish(ctx, id, "disband", at)
	return nil
}

// Retire ends the stable and retires every current member that is in a
// retirable state. Members whose own guard refuses — already retired,
// never employed — are skipped, not failed.
func (ss *stableService) Retire(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := ss.status.StableSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeRetired(); err != nil {
			return guardErr("cannot_retire", types.EntityKindStable, err)
		}

		members, err := ss.members.Current(ctx, tx, id)
		if err != nil {
			return err
		}
		for _, m := range members {
			if err := ss.retireMemberInTx(ctx, tx, m.MemberType, m.MemberID, at); err != nil {
				return err
			}
		}

		if err := ss.members.EndAll(ctx, tx, id, at); err != nil {
			return err
		}
		if snap.Activation == lifecycle.ActivationCurrent {
			if err := ss.activations.EndOpen(ctx, tx, types.EntityKindStable, id, at); err != nil {
				return err
			}
		}
		_, err = ss.retirements.Start(ctx, tx, types.EntityKindStable, id, at)
		return err
	})
	if err != nil {
		return err
	}
	ss.publish(ctx, id, "retire", at)
	return nil
}

func (ss *stableService) retireMemberInTx(ctx context.Context, tx *gorm.DB, kind types.EntityKind, id uuid.UUID, at time.Time) error {
	switch kind {
	case types.EntityKindWrestler:
		snap, err := ss.status.IndividualSnapshot(ctx, tx, kind, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if snap.CanBeRetired() != nil {
			return nil
		}
		if snap.Injured {
			if err := ss.injuries.EndOpen(ctx, tx, kind, id, at); err != nil {
				return err
			}
		}
		if snap.Suspended {
			if err := ss.suspensions.EndOpen(ctx, tx, kind, id, at); err != nil {
				return err
			}
		}
		if snap.Employment == lifecycle.EmploymentCurrent {
			if err := ss.employments.EndOpen(ctx, tx, kind, id, at); err != nil {
				return err
			}
		}
		_, err = ss.retirements.Start(ctx, tx, kind, id, at)
		return err
	case types.EntityKindTagTeam:
		snap, err := ss.status.TagTeamSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if snap.CanBeRetired() != nil {
			return nil
		}
		if snap.Suspended {
			if err := ss.suspensions.EndOpen(ctx, tx, kind, id, at); err != nil {
				return err
			}
		}
		if snap.Employment == lifecycle.EmploymentCurrent {
			if err := ss.employments.EndOpen(ctx, tx, kind, id, at); err != nil {
				return err
			}
		}
		_, err = ss.retirements.Start(ctx, tx, kind, id, at)
		return err
	}
	return nil
}

func (ss *stableService) Unretire(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := ss.status.StableSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeUnretired(); err != nil {
			return guardErr("cannot_unretire", types.EntityKindStable, err)
		}
		if err := ss.retirements.EndOpen(ctx, tx, types.EntityKindStable, id, at); err != nil {
			return err
		}
		_, err = ss.activations.Create(ctx, tx, &types.Activation{
			EntityType: types.EntityKindStable,
			EntityID:   id,
			StartedAt:  at,
		})
		return err
	})
	if err != nil {
		return err
	}
	ss.publish(ctx, id, "unretire", at)
	return nil
}
