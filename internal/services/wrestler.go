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
	"github.com/squaredcircle/promoter-backend/internal/realtime"
	"github.com/squaredcircle/promoter-backend/internal/repos"
	"github.com/squaredcircle/promoter-backend/internal/types"
)

type CreateWrestlerInput struct {
	Name          string  `json:"name"`
	HeightFeet    int     `json:"height_feet"`
	HeightInches  int     `json:"height_inches"`
	WeightLbs     int     `json:"weight_lbs"`
	Hometown      string  `json:"hometown"`
	SignatureMove *string `json:"signature_move,omitempty"`
}

type UpdateWrestlerInput struct {
	Name          *string `json:"name,omitempty"`
	HeightFeet    *int    `json:"height_feet,omitempty"`
	HeightInches  *int    `json:"height_inches,omitempty"`
	WeightLbs     *int    `json:"weight_lbs,omitempty"`
	Hometown      *string `json:"hometown,omitempty"`
	SignatureMove *string `json:"signature_move,omitempty"`
}

// WrestlerView pairs the record with its computed status.
type WrestlerView struct {
	Wrestler *types.Wrestler    `json:"wrestler"`
	Status   types.RosterStatus `json:"status"`
}

type WrestlerService interface {
	Create(ctx context.Context, input CreateWrestlerInput) (*types.Wrestler, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateWrestlerInput) (*types.Wrestler, error)
	Get(ctx context.Context, id uuid.UUID) (*WrestlerView, error)
	List(ctx context.Context, statusFilter *types.RosterStatus) ([]*WrestlerView, error)
	Archive(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error

	Employ(ctx context.Context, id uuid.UUID, at time.Time) error
	Release(ctx context.Context, id uuid.UUID, at time.Time) error
	Injure(ctx context.Context, id uuid.UUID, at time.Time) error
	ClearFromInjury(ctx context.Context, id uuid.UUID, at time.Time) error
	Suspend(ctx context.Context, id uuid.UUID, at time.Time) error
	Reinstate(ctx context.Context, id uuid.UUID, at time.Time) error
	Retire(ctx context.Context, id uuid.UUID, at time.Time) error
	Unretire(ctx context.Context, id uuid.UUID, at time.Time) error
}

type wrestlerService struct {
	db        *gorm.DB
	log       *logger.Logger
	wrestlers repos.WrestlerRepo
	status    StatusService
	avatars   AvatarService
	*individualLifecycle
}

func NewWrestlerService(
	db *gorm.DB,
	log *logger.Logger,
	wrestlers repos.WrestlerRepo,
	status StatusService,
	employments repos.EmploymentRepo,
	injuries repos.InjuryRepo,
	suspensions repos.SuspensionRepo,
	retirements repos.RetirementRepo,
	avatars AvatarService,
	bus realtime.Bus,
) WrestlerService {
	serviceLog := log.With("service", "WrestlerService")
	return &wrestlerService{
		db:        db,
		log:       serviceLog,
		wrestlers: wrestlers,
		status:    status,
		avatars:   avatars,
		individualLifecycle: newIndividualLifecycle(
			types.EntityKindWrestler, db, serviceLog, status,
			employments, injuries, suspensions, retirements, bus,
		),
	}
}

func (ws *wrestlerService) Create(ctx context.Context, input CreateWrestlerInput) (*types.Wrestler, error) {
	if input.Name == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("a name is required"))
	}
	if input.HeightFeet < 0 || input.HeightInches < 0 || input.HeightInches > 11 {
		return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("invalid height"))
	}
	if input.WeightLbs <= 0 {
		return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("weight must be positive"))
	}

	exists, err := ws.wrestlers.NameExists(ctx, nil, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apierr.New(http.StatusConflict, "name_taken", fmt.Errorf("wrestler name %q is already in use", input.Name))
	}

	w := &types.Wrestler{
		Name:          input.Name,
		HeightInches:  input.HeightFeet*12 + input.HeightInches,
		WeightLbs:     input.WeightLbs,
		Hometown:      input.Hometown,
		SignatureMove: input.SignatureMove,
	}
	if _, err := ws.wrestlers.Create(ctx, nil, w); err != nil {
		return nil, err
	}

	if ws.avatars != nil {
		rel, err := ws.avatars.GenerateInitialsAvatar(w.Name, w.ID)
		if err != nil {
			ws.log.Warn("Failed to generate wrestler avatar", "wrestler_id", w.ID, "error", err)
		} else {
			w.AvatarPath = rel
			if _, err := ws.wrestlers.Update(ctx, nil, w); err != nil {
				return nil, err
			}
		}
	}

	return w, nil
}

func (ws *wrestlerService) Update(ctx context.Context, id uuid.UUID, input UpdateWrestlerInput) (*types.Wrestler, error) {
	w, err := ws.wrestlers.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, notFoundErr(types.EntityKindWrestler, id)
	}

	if input.Name != nil && *input.Name != w.Name {
		exists, err := ws.wrestlers.NameExists(ctx, nil, *input.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apierr.New(http.StatusConflict, "name_taken", fmt.Errorf("wrestler name %q is already in use", *input.Name))
		}
		w.Name = *input.Name
	}
	if input.HeightFeet != nil || input.HeightInches != nil {
		feet := w.HeightInches / 12
		inches := w.HeightInches % 12
		if input.HeightFeet != nil {
			feet = *input.HeightFeet
		}
		if input.HeightInches != nil {
			inches = *input.HeightInches
		}
		if feet < 0 || inches < 0 || inches > 11 {
			return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("invalid height"))
		}
		w.HeightInches = feet*12 + inches
	}
	if input.WeightLbs != nil {
		if *input.WeightLbs <= 0 {
			return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("weight must be positive"))
		}
		w.WeightLbs = *input.WeightLbs
	}
	if input.Hometown != nil {
		w.Hometown = *input.Hometown
	}
	if input.SignatureMove != nil {
		w.SignatureMove = input.SignatureMove
	}

	return ws.wrestlers.Update(ctx, nil, w)
}

func (ws *wrestlerService) Get(ctx context.Context, id uuid.UUID) (*WrestlerView, error) {
	w, err := ws.wrestlers.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, notFoundErr(types.EntityKindWrestler, id)
	}
	snap, err := ws.status.IndividualSnapshot(ctx, nil, types.EntityKindWrestler, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &WrestlerView{Wrestler: w, Status: snap.Status()}, nil
}

func (ws *wrestlerService) List(ctx context.Context, statusFilter *types.RosterStatus) ([]*WrestlerView, error) {
	all, err := ws.wrestlers.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	views := make([]*WrestlerView, 0, len(all))
	for _, w := range all {
		snap, err := ws.status.IndividualSnapshot(ctx, nil, types.EntityKindWrestler, w.ID, now)
		if err != nil {
			return nil, err
		}
		status := snap.Status()
		if statusFilter != nil && status != *statusFilter {
			continue
		}
		views = append(views, &WrestlerView{Wrestler: w, Status: status})
	}
	return views, nil
}

func (ws *wrestlerService) Archive(ctx context.Context, id uuid.UUID) error {
	w, err := ws.wrestlers.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if w == nil {
		return notFoundErr(types.EntityKindWrestler, id)
	}
	return ws.wrestlers.Archive(ctx, nil, id)
}

func (ws *wrestlerService) Restore(ctx context.Context, id uuid.UUID) error {
	return ws.wrestlers.Restore(ctx, nil, id)
}
