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

type CreateRefereeInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type UpdateRefereeInput struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type RefereeView struct {
	Referee *types.Referee     `json:"referee"`
	Status  types.RosterStatus `json:"status"`
}

type RefereeService interface {
	Create(ctx context.Context, input CreateRefereeInput) (*types.Referee, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateRefereeInput) (*types.Referee, error)
	Get(ctx context.Context, id uuid.UUID) (*RefereeView, error)
	List(ctx context.Context, statusFilter *types.RosterStatus) ([]*RefereeView, error)
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

type refereeService struct {
	db       *gorm.DB
	log      *logger.Logger
	referees repos.RefereeRepo
	status   StatusService
	avatars  AvatarService
	*individualLifecycle
}

func NewRefereeService(
	db *gorm.DB,
	log *logger.Logger,
	referees repos.RefereeRepo,
	status StatusService,
	employments repos.EmploymentRepo,
	injuries repos.InjuryRepo,
	suspensions repos.SuspensionRepo,
	retirements repos.RetirementRepo,
	avatars AvatarService,
	bus realtime.Bus,
) RefereeService {
	serviceLog := log.With("service", "RefereeService")
	return &refereeService{
		db:       db,
		log:      serviceLog,
		referees: referees,
		status:   status,
		avatars:  avatars,
		individualLifecycle: newIndividualLifecycle(
			types.EntityKindReferee, db, serviceLog, status,
			employments, injuries, suspensions, retirements, bus,
		),
	}
}

func (rs *refereeService) Create(ctx context.Context, input CreateRefereeInput) (*types.Referee, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("first and last name are required"))
	}
	r := &types.Referee{FirstName: input.FirstName, LastName: input.LastName}
	if _, err := rs.referees.Create(ctx, nil, r); err != nil {
		return nil, err
	}

	if rs.avatars != nil {
		rel, err := rs.avatars.GenerateInitialsAvatar(r.FullName(), r.ID)
		if err != nil {
			rs.log.Warn("Failed to generate referee avatar", "referee_id", r.ID, "error", err)
		} else {
			r.AvatarPath = rel
			if _, err := rs.referees.Update(ctx, nil, r); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

func (rs *refereeService) Update(ctx context.Context, id uuid.UUID, input UpdateRefereeInput) (*types.Referee, error) {
	r, err := rs.referees.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, notFoundErr(types.EntityKindReferee, id)
	}
	if input.FirstName != nil {
		r.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		r.LastName = *input.LastName
	}
	return rs.referees.Update(ctx, nil, r)
}

func (rs *refereeService) Get(ctx context.Context, id uuid.UUID) (*RefereeView, error) {
	r, err := rs.referees.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, notFoundErr(types.EntityKindReferee, id)
	}
	snap, err := rs.status.IndividualSnapshot(ctx, nil, types.EntityKindReferee, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &RefereeView{Referee: r, Status: snap.Status()}, nil
}

func (rs *refereeService) List(ctx context.Context, statusFilter *types.RosterStatus) ([]*RefereeView, error) {
	all, err := rs.referees.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	views := make([]*RefereeView, 0, len(all))
	for _, r := range all {
		snap, err := rs.status.IndividualSnapshot(ctx, nil, types.EntityKindReferee, r.ID, now)
		if err != nil {
			return nil, err
		}
		status := snap.Status()
		if statusFilter != nil && status != *statusFilter {
			continue
		}
		views = append(views, &RefereeView{Referee: r, Status: status})
	}
	return views, nil
}

func (rs *refereeService) Archive(ctx context.Context, id uuid.UUID) error {
	r, err := rs.referees.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if r == nil {
		return notFoundErr(types.EntityKindReferee, id)
	}
	return rs.referees.Archive(ctx, nil, id)
}

func (rs *refereeService) Restore(ctx context.Context, id uuid.UUID) error {
	return rs.referees.Restore(ctx, nil, id)
}
