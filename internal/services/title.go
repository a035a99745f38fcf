package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
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

type CreateTitleInput struct {
	Name string `json:"name"`
}

type UpdateTitleInput struct {
	Name *string `json:"name,omitempty"`
}

type TitleView struct {
	Title    *types.Title           `json:"title"`
	Status   types.ActivationStatus `json:"status"`
	Champion *types.Championship    `json:"champion,omitempty"`
}

type TitleService interface {
	Create(ctx context.Context, input CreateTitleInput) (*types.Title, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTitleInput) (*types.Title, error)
	Get(ctx context.Context, id uuid.UUID) (*TitleView, error)
	List(ctx context.Context, statusFilter *types.ActivationStatus) ([]*TitleView, error)
	Archive(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error

	Debut(ctx context.Context, id uuid.UUID, at time.Time) error
	Pull(ctx context.Context, id uuid.UUID, at time.Time) error
	Retire(ctx context.Context, id uuid.UUID, at time.Time) error
	Unretire(ctx context.Context, id uuid.UUID, at time.Time) error
}

type titleService struct {
	db            *gorm.DB
	log           *logger.Logger
	titles        repos.TitleRepo
	championships repos.ChampionshipRepo
	status        StatusService
	activations   repos.ActivationRepo
	retirements   repos.RetirementRepo
	bus           realtime.Bus
}

func NewTitleService(
	db *gorm.DB,
	log *logger.Logger,
	titles repos.TitleRepo,
	championships repos.ChampionshipRepo,
	status StatusService,
	activations repos.ActivationRepo,
	retirements repos.RetirementRepo,
	bus realtime.Bus,
) TitleService {
	return &titleService{
		db:            db,
		log:           log.With("service", "TitleService"),
		titles:        titles,
		championships: championships,
		status:        status,
		activations:   activations,
		retirements:   retirements,
		bus:           bus,
	}
}

func (ts *titleService) publish(ctx context.Context, id uuid.UUID, transition string, at time.Time) {
	if ts.bus == nil {
		return
	}
	evt := realtime.RosterEvent{
		Kind:        types.EntityKindTitle,
		EntityID:    id,
		Transition:  transition,
		EffectiveAt: at,
	}
	if err := ts.bus.Publish(ctx, evt); err != nil {
		ts.log.Warn("Failed to publish roster event", "title_id", id, "transition", transition, "error", err)
	}
}

func validateTitleName(name string) error {
	if name == "" {
		return apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("name is required"))
	}
	if !strings.HasSuffix(name, " Title") && !strings.HasSuffix(name, " Titles") {
		return apierr.New(http.StatusBadRequest, "invalid_input",
			fmt.Errorf("title name must end with \"Title\" or \"Titles\""))
	}
	return nil
}

func (ts *titleService) Create(ctx context.Context, input CreateTitleInput) (*types.Title, error) {
	if err := validateTitleName(input.Name); err != nil {
		return nil, err
	}
	taken, err := ts.titles.NameExists(ctx, nil, input.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apierr.New(http.StatusConflict, "name_taken", fmt.Errorf("title name %q is already in use", input.Name))
	}
	return ts.titles.Create(ctx, nil, &types.Title{Name: input.Name})
}

func (ts *titleService) Update(ctx context.Context, id uuid.UUID, input UpdateTitleInput) (*types.Title, error) {
	title, err := ts.titles.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, notFoundErr(types.EntityKindTitle, id)
	}
	if input.Name != nil && *input.Name != title.Name {
		if err := validateTitleName(*input.Name); err != nil {
			return nil, err
		}
		taken, err := ts.titles.NameExists(ctx, nil, *input.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apierr.New(http.StatusConflict, "name_taken", fmt.Errorf("title name %q is already in use", *input.Name))
		}
		title.Name = *input.Name
	}
	return ts.titles.Update(ctx, nil, title)
}

func (ts *titleService) view(ctx context.Context, title *types.Title, now time.Time) (*TitleView, error) {
	snap, err := ts.status.TitleSnapshot(ctx, nil, title.ID, now)
	if err != nil {
		return nil, err
	}
	v := &TitleView{Title: title, Status: snap.Status()}
	if snap.HasChampion {
		champ, err := ts.championships.Current(ctx, nil, title.ID)
		if err != nil {
			return nil, err
		}
		v.Champion = champ
	}
	return v, nil
}

func (ts *titleService) Get(ctx context.Context, id uuid.UUID) (*TitleView, error) {
	title, err := ts.titles.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, notFoundErr(types.EntityKindTitle, id)
	}
	return ts.view(ctx, title, time.Now().UTC())
}

func (ts *titleService) List(ctx context.Context, statusFilter *types.ActivationStatus) ([]*TitleView, error) {
	all, err := ts.titles.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	views := make([]*TitleView, 0, len(all))
	for _, title := range all {
		v, err := ts.view(ctx, title, now)
		if err != nil {
			return nil, err
		}
		if statusFilter != nil && v.Status != *statusFilter {
			continue
		}
		views = append(views, v)
	}
	return views, nil
}

func (ts *titleService) Archive(ctx context.Context, id uuid.UUID) error {
	title, err := ts.titles.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if title == nil {
		return notFoundErr(types.EntityKindTitle, id)
	}
	return ts.titles.Archive(ctx, nil, id)
}

func (ts *titleService) Restore(ctx context.Context, id uuid.UUID) error {
	return ts.titles.Restore(ctx, nil, id)
}

// Debut puts the title in competition. Re-debuting a pulled title
// opens a fresh activation.
func (ts *titleService) Debut(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := ts.status.TitleSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeDebuted(); err != nil {
			return guardErr("cannot_debut", types.EntityKindTitle, err)
		}
		if snap.Activation == lifecycle.ActivationFuture {
			latest, err := ts.activations.Latest(ctx, tx, types.EntityKindTitle, id)
			if err != nil {
				return err
			}
			return tx.WithContext(ctx).Model(latest).Update("started_at", at).Error
		}
		_, err = ts.activations.Create(ctx, tx, &types.Activation{
			EntityType: types.EntityKindTitle,
			EntityID:   id,
			StartedAt:  at,
		})
		return err
	})
	if err != nil {
		return err
	}
	ts.publish(ctx, id, "debut", at)
	return nil
}

// Pull takes the title out of competition without retiring it. A held
// title loses its champion on the way out.
func (ts *titleService) Pull(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := ts.status.TitleSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBePulled(); err != nil {
			return guardErr("cannot_pull", types.EntityKindTitle, err)
		}
		if snap.HasChampion {
			if err := ts.championships.EndOpen(ctx, tx, id, at); err != nil {
				return err
			}
		}
		return ts.activations.EndOpen(ctx, tx, types.EntityKindTitle, id, at)
	})
	if err != nil {
		return err
	}
	ts.publish(ctx, id, "pull", at)
	return nil
}

func (ts *titleService) Retire(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := ts.status.TitleSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeRetired(); err != nil {
			return guardErr("cannot_retire", types.EntityKindTitle, err)
		}
		if snap.HasChampion {
			if err := ts.championships.EndOpen(ctx, tx, id, at); err != nil {
				return err
			}
		}
		if snap.Activation == lifecycle.ActivationCurrent {
			if err := ts.activations.EndOpen(ctx, tx, types.EntityKindTitle, id, at); err != nil {
				return err
			}
		}
		_, err = ts.retirements.Start(ctx, tx, types.EntityKindTitle, id, at)
		return err
	})
	if err != nil {
		return err
	}
	ts.publish(ctx, id, "retire", at)
	return nil
}

func (ts *titleService) Unretire(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := ts.status.TitleSnapshot(ctx, tx, id, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := snap.CanBeUnretired(); err != nil {
			return guardErr("cannot_unretire", types.EntityKindTitle, err)
		}
		if err := ts.retirements.EndOpen(ctx, tx, types.EntityKindTitle, id, at); err != nil {
			return err
		}
		_, err = ts.activations.Create(ctx, tx, &types.Activation{
			EntityType: types.EntityKindTitle,
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
