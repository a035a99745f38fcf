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

type CreateTagTeamInput struct {
	Name          string      `json:"name"`
	SignatureMove *string     `json:"signature_move,omitempty"`
	WrestlerIDs   []uuid.UUID `json:"wrestler_ids,omitempty"`
}

type UpdateTagTeamInput struct {
	Name          *string `json:"name,omitempty"`
	SignatureMove *string `json:"signature_move,omitempty"`
}

type TagTeamView struct {
	TagTeam  *types.TagTeam     `json:"tag_team"`
	Status   types.RosterStatus `json:"status"`
	Bookable bool               `json:"bookable"`
}

type TagTeamService interface {
	Create(ctx context.Context, input CreateTagTeamInput) (*types.TagTeam, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTagTeamInput) (*types.TagTeam, error)
	Get(ctx context.Context, id uuid.UUID) (*TagTeamView, error)
	List(ctx context.Context, statusFilter *types.RosterStatus) ([]*TagTeamView, error)
	Archive(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error

	AddPartner(ctx context.Context, teamID, wrestlerID uuid.UUID, at time.Time) error
	RemovePartner(ctx context.Context, teamID, wrestlerID uuid.UUID, at time.Time) error

	Employ(ctx context.Context, id uuid.UUID, at time.Time) error
	Release(ctx context.Context, id uuid.UUID, at time.Time) error
	Suspend(ctx context.Context, id uuid.UUID, at time.Time) error
	Reinstate(ctx context.Context, id uuid.UUID, at time.Time) error
	Retire(ctx context.Context, id uuid.UUID, at time.Time) error
	Unretire(ctx context.Context, id uuid.UUID, at time.Time) error
}

type tagTeamService struct {
	db          *gorm.DB
	log         *logger.Logger
	teams       repos.TagTeamRepo
	partners    repos.TagTeamPartnerRepo
	wrestlers   repos.WrestlerRepo
	status      StatusService
	employments repos.EmploymentRepo
	suspensions repos.SuspensionRepo
	retirements repos.RetirementRepo
	bus         realtime.Bus
}

func NewTagTeamService(
	db *gorm.DB,
	log *logger.Logger,
	teams repos.TagTeamRepo,
	partners repos.TagTeamPartnerRepo,
	wrestlers repos.WrestlerRepo,
	status StatusService,
	employments repos.EmploymentRepo,
	suspensions repos.SuspensionRepo,
	retirements repos.RetirementRepo,
	bus realtime.Bus,
) TagTeamService {
	return &tagTeamService{
		db:          db,
		log:         log.With("service", "TagTeamService"),
		teams:       teams,
		partners:    partners,
		wrestlers:   wrestlers,
		status:      status,
		employments: employments,
		suspensions: suspensions,
		retirements: retirements,
		bus:         bus,
	}
}

func (ts *tagTeamService) publish(ctx context.Context, id uuid.UUID, transition string, at time.Time) {
	if ts.bus == nil {
		return
	}
	evt := realtime.RosterEvent{
		Kind:        types.EntityKindTagTeam,
		EntityID:    id,
		Transition:  transition,
		EffectiveAt: at,
	}
	if err := ts.bus.Publish(ctx, evt); err != nil {
		ts.log.Warn("Failed to publish roster event", "tag_team_id", id, "transition", transition, "error", err)
	}
}

func (ts *tagTeamService) Create(ctx context.Context, input CreateTagTeamInput) (*types.TagTeam, error) {
	if input.Name == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("name is required"))
	}
	taken, err := ts.teams.NameExists(ctx, nil, input.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apierr.New(http.StatusConflict, "name_taken", fmt.Errorf("tag team name %q is already in use", input.Name))
	}

	team := &types.TagTeam{Name: input.Name, SignatureMove: input.SignatureMove}
	now := time.Now().UTC()
	err = ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ts.teams.Create(ctx, tx, team); err != nil {
			return err
		}
		for _, wid := range input.WrestlerIDs {
			w, err := ts.wrestlers.GetByID(ctx, tx, wid)
			if err != nil {
				return err
			}
			if w == nil {
				return notFoundErr(types.EntityKindWrestler, wid)
			}
			if _, err := ts.partners.Add(ctx, tx, team.ID, wid, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ts.teams.GetByID(ctx, nil, team.ID)
}

func (ts *tagTeamService) Update(ctx context.Context, id uuid.UUID, input UpdateTagTeamInput) (*types.TagTeam, error) {
	team, err := ts.teams.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, notFoundErr(types.EntityKindTagTeam, id)
	}
	if input.Name != nil && *input.Name != team.Name {
		taken, err := ts.teams.NameExists(ctx, nil, *input.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apierr.New(http.StatusConflict, "name_taken", fmt.Errorf("tag team name %q is already in use", *input.Name))
		}
		team.Name = *input.Name
	}
	if input.SignatureMove != nil {
		team.SignatureMove = input.SignatureMove
	}
	return ts.teams.Update(ctx, nil, team)
}

func (ts *tagTeamService) Get(ctx context.Context, id uuid.UUID) (*TagTeamView, error) {
	team, err := ts.teams.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, notFoundErr(types.EntityKindTagTeam, id)
	}
	snap, err := ts.status.TagTeamSnapshot(ctx, nil, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &TagTeamView{TagTeam: team, Status: snap.Status(), Bookable: snap.IsBookable()}, nil
}

func (ts *tagTeamService) List(ctx context.Context, statusFilter *types.RosterStatus) ([]*TagTeamView, error) {
	all, err := ts.teams.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	views := make([]*TagTeamView, 0, len(all))
	for _, team := range all {
		snap, err := ts.status.TagTeamSnapshot(ctx, nil, team.ID, now)
		if err != nil {
			return nil, err
		}
		status := snap.Status()
		if statusFilter != nil && status != *statusFilter {
			continue
		}
		views = append(views, &TagTeamView{TagTeam: team, Status: status, Bookable: snap.IsBookable()})
	}
	return views, nil
}

func (ts *tagTeamService) Archive(ctx context.Context, id uuid.UUID) error {
	team, err := ts.teams.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if team == nil {
		return notFoundErr(types.EntityKindTagTeam, id)
	}
	return ts.teams.Archive(ctx, nil, id)
}

func (ts *tagTeamService) Restore(ctx context.Context, id uuid.UUID) error {
	return ts.teams.Restore(ctx, nil, id)
}

func (ts *tagTeamService) AddPartner(ctx context.Context, teamID, wrestlerID uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	team, err := ts.teams.GetByID(ctx, nil, teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return notFoundErr(types.EntityKindTagTeam, teamID)
	}
	w, err := ts.wrestlers.GetByID(ctx, nil, wrestlerID)
	if err != nil {
		return err
	}
	if w == nil {
		return notFoundErr(types.EntityKindWrestler, wrestlerID)
	}
	current, err := ts.partners.Current(ctx, nil, teamID)
	if err != nil {
		return err
	}
	for _, p := range current {
		if p.WrestlerID == wrestlerID {
			return apierr.New(http.StatusConflict, "already_partner", fmt.Errorf("wrestler is already a member of this tag team"))
		}
	}
	_, err = ts.partners.Add(ctx, nil, teamID, wrestlerID, at)
	return err
}

func (ts *tagTeamService) RemovePartner(ctx context.Context, teamID, wrestlerID uuid.UUID, at time.Time) error {
	return ts.partners.End(ctx, nil, teamID, wrestlerID, effectiveAt(at))
}

// Employ starts a contract for the team, and for any current partner
// who is not already under contract, as of the same date.
func (ts *tagTeamService) Employ(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := ts.status.TagTeamSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeEmployed(); err != nil {
			return guardErr("cannot_employ", types.EntityKindTagTeam, err)
		}

		if err := ts.startEmployment(ctx, tx, types.EntityKindTagTeam, id, snap.Employment, at); err != nil {
			return err
		}

		partners, err := ts.partners.Current(ctx, tx, id)
		if err != nil {
			return err
		}
		for _, p := range partners {
			ps, err := ts.status.IndividualSnapshot(ctx, tx, types.EntityKindWrestler, p.WrestlerID, time.Now().UTC())
			if err != nil {
				return err
			}
			if ps.CanBeEmployed() != nil {
				continue
			}
			if err := ts.startEmployment(ctx, tx, types.EntityKindWrestler, p.WrestlerID, ps.Employment, at); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	ts.publish(ctx, id, "employ", at)
	return nil
}

// startEmployment pulls a future contract's start date forward instead
// of opening a second record.
func (ts *tagTeamService) startEmployment(ctx context.Context, tx *gorm.DB, kind types.EntityKind, id uuid.UUID, state lifecycle.EmploymentState, at time.Time) error {
	if state == lifecycle.EmploymentFuture {
		latest, err := ts.employments.Latest(ctx, tx, kind, id)
		if err != nil {
			return err
		}
		return ts.employments.UpdateStart(ctx, tx, latest.ID, at)
	}
	_, err := ts.employments.Create(ctx, tx, &types.Employment{
		EntityType: kind,
		EntityID:   id,
		StartedAt:  at,
	})
	return err
}

func (ts *tagTeamService) Release(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := ts.status.TagTeamSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeReleased(); err != nil {
			return guardErr("cannot_release", types.EntityKindTagTeam, err)
		}
		if snap.Suspended {
			if err := ts.suspensions.EndOpen(ctx, tx, types.EntityKindTagTeam, id, at); err != nil {
				return err
			}
		}
		return ts.employments.EndOpen(ctx, tx, types.EntityKindTagTeam, id, at)
	})
	if err != nil {
		return err
	}
	ts.publish(ctx, id, "release", at)
	return nil
}

func (ts *tagTeamService) Suspend(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := ts.status.TagTeamSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeSuspended(); err != nil {
			return guardErr("cannot_suspend", types.EntityKindTagTeam, err)
		}
		_, err = ts.suspensions.Start(ctx, tx, types.EntityKindTagTeam, id, at)
		return err
	})
	if err != nil {
		return err
	}
	ts.publish(ctx, id, "suspend", at)
	return nil
}

func (ts *tagTeamService) Reinstate(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := ts.status.TagTeamSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeReinstated(); err != nil {
			return guardErr("cannot_reinstate", types.EntityKindTagTeam, err)
		}
		return ts.suspensions.EndOpen(ctx, tx, types.EntityKindTagTeam, id, at)
	})
	if err != nil {
		return err
	}
	ts.publish(ctx, id, "reinstate", at)
	return nil
}

// Retire ends the team's run. The partners keep their own contracts
// and can be retired individually.
func (ts *tagTeamService) Retire(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := ts.status.TagTeamSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeRetired(); err != nil {
			return guardErr("cannot_retire", types.EntityKindTagTeam, err)
		}
		if snap.Suspended {
			if err := ts.suspensions.EndOpen(ctx, tx, types.EntityKindTagTeam, id, at); err != nil {
				return err
			}
		}
		if snap.Employment == lifecycle.EmploymentCurrent {
			if err := ts.employments.EndOpen(ctx, tx, types.EntityKindTagTeam, id, at); err != nil {
				return err
			}
		}
		_, err = ts.retirements.Start(ctx, tx, types.EntityKindTagTeam, id, at)
		return err
	})
	if err != nil {
		return err
	}
	ts.publish(ctx, id, "retire", at)
	return nil
}

func (ts *tagTeamService) Unretire(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := ts.status.TagTeamSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeUnretired(); err != nil {
			return guardErr("cannot_unretire", types.EntityKindTagTeam, err)
		}
		if err := ts.retirements.EndOpen(ctx, tx, types.EntityKindTagTeam, id, at); err != nil {
			return err
		}
		_, err = ts.employments.Create(ctx, tx, &types.Employment{
			EntityType: types.EntityKindTagTeam,
			EntityID:   id,
			StartedAt:  at,
		})
		return err
	})
	if err != nil {
		return err
	}
	ts.publish(ctx, id, "unretire", at)
	return nil
}
