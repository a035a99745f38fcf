package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/squaredcircle/promoter-backend/internal/apierr"
	"github.com/squaredcircle/promoter-backend/internal/logger"
	"github.com/squaredcircle/promoter-backend/internal/repos"
	"github.com/squaredcircle/promoter-backend/internal/types"
)

type ChampionshipService interface {
	Award(ctx context.Context, titleID uuid.UUID, championKind types.EntityKind, championID uuid.UUID, at time.Time) (*types.Championship, error)
	Current(ctx context.Context, titleID uuid.UUID) (*types.Championship, error)
	LineageForTitle(ctx context.Context, titleID uuid.UUID) ([]*types.Championship, error)
	ReignsForChampion(ctx context.Context, championKind types.EntityKind, championID uuid.UUID) ([]*types.Championship, error)

	// awardInTx crowns a champion inside an enclosing transaction so
	// callers can bundle the reign with their own writes.
	awardInTx(ctx context.Context, tx *gorm.DB, titleID uuid.UUID, championKind types.EntityKind, championID uuid.UUID, at time.Time) (*types.Championship, error)
}

type championshipService struct {
	db            *gorm.DB
	log           *logger.Logger
	titles        repos.TitleRepo
	championships repos.ChampionshipRepo
	status        StatusService
}

func NewChampionshipService(
	db *gorm.DB,
	log *logger.Logger,
	titles repos.TitleRepo,
	championships repos.ChampionshipRepo,
	status StatusService,
) ChampionshipService {
	return &championshipService{
		db:            db,
		log:           log.With("service", "ChampionshipService"),
		titles:        titles,
		championships: championships,
		status:        status,
	}
}

// Award crowns a new champion. The previous reign, if any, ends on the
// same date so the lineage never overlaps.
func (cs *championshipService) Award(ctx context.Context, titleID uuid.UUID, championKind types.EntityKind, championID uuid.UUID, at time.Time) (*types.Championship, error) {
	var reign *types.Championship
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		reign, err = cs.awardInTx(ctx, tx, titleID, championKind, championID, at)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reign, nil
}

func (cs *championshipService) awardInTx(ctx context.Context, tx *gorm.DB, titleID uuid.UUID, championKind types.EntityKind, championID uuid.UUID, at time.Time) (*types.Championship, error) {
	if championKind != types.EntityKindWrestler && championKind != types.EntityKindTagTeam {
		return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("only wrestlers and tag teams can hold titles"))
	}
	at = effectiveAt(at)

	title, err := cs.titles.GetByID(ctx, tx, titleID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, notFoundErr(types.EntityKindTitle, titleID)
	}

	now := time.Now().UTC()
	tsnap, err := cs.status.TitleSnapshot(ctx, tx, titleID, now)
	if err != nil {
		return nil, err
	}
	if !tsnap.IsCompetable() {
		return nil, guardErr("title_not_competable", types.EntityKindTitle, fmt.Errorf("is not in competition"))
	}

	switch championKind {
	case types.EntityKindWrestler:
		snap, err := cs.status.IndividualSnapshot(ctx, tx, championKind, championID, now)
		if err != nil {
			return nil, err
		}
		if !snap.IsBookable() {
			return nil, guardErr("champion_not_bookable", championKind, fmt.Errorf("is not bookable"))
		}
	case types.EntityKindTagTeam:
		snap, err := cs.status.TagTeamSnapshot(ctx, tx, championID, now)
		if err != nil {
			return nil, err
		}
		if !snap.IsBookable() {
			return nil, guardErr("champion_not_bookable", championKind, fmt.Errorf("is not bookable"))
		}
	}

	current, err := cs.championships.Current(ctx, tx, titleID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		if current.ChampionType == championKind && current.ChampionID == championID {
			return nil, apierr.New(http.StatusConflict, "already_champion", fmt.Errorf("is already the champion"))
		}
		if err := cs.championships.EndOpen(ctx, tx, titleID, at); err != nil {
			return nil, err
		}
	}

	return cs.championships.Award(ctx, tx, titleID, championKind, championID, at)
}

func (cs *championshipService) Current(ctx context.Context, titleID uuid.UUID) (*types.Championship, error) {
	title, err := cs.titles.GetByID(ctx, nil, titleID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, notFoundErr(types.EntityKindTitle, titleID)
	}
	return cs.championships.Current(ctx, nil, titleID)
}

func (cs *championshipService) LineageForTitle(ctx context.Context, titleID uuid.UUID) ([]*types.Championship, error) {
	title, err := cs.titles.GetByID(ctx, nil, titleID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, notFoundErr(types.EntityKindTitle, titleID)
	}
	return cs.championships.HistoryForTitle(ctx, nil, titleID)
}

func (cs *championshipService) ReignsForChampion(ctx context.Context, championKind types.EntityKind, championID uuid.UUID) ([]*types.Championship, error) {
	return cs.championships.HistoryForChampion(ctx, nil, championKind, championID)
}
