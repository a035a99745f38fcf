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

type CreateManagerInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type UpdateManagerInput struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type ManagerView struct {
	Manager *types.Manager     `json:"manager"`
	Status  types.RosterStatus `json:"status"`
}

type ManagerService interface {
	Create(ctx context.Context, input CreateManagerInput) (*types.Manager, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateManagerInput) (*types.Manager, error)
	Get(ctx context.Context, id uuid.UUID) (*ManagerView, error)
	List(ctx context.Context, statusFilter *types.RosterStatus) ([]*ManagerView, error)
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

	HireClient(ctx context.Context, managerID uuid.UUID, clientKind types.EntityKind, clientID uuid.UUID, at time.Time) error
	DropClient(ctx context.Context, managerID uuid.UUID, clientKind types.EntityKind, clientID uuid.UUID, at time.Time) error
	Clients(ctx context.Context, managerID uuid.UUID) ([]*types.Management, error)
}

type managerService struct {
	db          *gorm.DB
	log         *logger.Logger
	managers    repos.ManagerRepo
	managements repos.ManagementRepo
	status      StatusService
	avatars     AvatarService
	*individualLifecycle
}

func NewManagerService(
	db *gorm.DB,
	log *logger.Logger,
	managers repos.ManagerRepo,
	managements repos.ManagementRepo,
	status StatusService,
	employments repos.EmploymentRepo,
	injuries repos.InjuryRepo,
	suspensions repos.SuspensionRepo,
	retirements repos.RetirementRepo,
	avatars AvatarService,
	bus realtime.Bus,
) ManagerService {
	serviceLog := log.With("service", "ManagerService")
	return &managerService{
		db:          db,
		log:         serviceLog,
		managers:    managers,
		managements: managements,
		status:      status,
		avatars:     avatars,
		individualLifecycle: newIndividualLifecycle(
			types.EntityKindManager, db, serviceLog, status,
			employments, injuries, suspensions, retirements, bus,
		),
	}
}

func (ms *managerService) Create(ctx context.Context, input CreateManagerInput) (*types.Manager, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("first and last name are required"))
	}
	m := &types.Manager{FirstName: input.FirstName, LastName: input.LastName}
	if _, err := ms.managers.Create(ctx, nil, m); err != nil {
		return nil, err
	}

	if ms.avatars != nil {
		rel, err := ms.avatars.GenerateInitialsAvatar(m.FullName(), m.ID)
		if err != nil {
			ms.log.Warn("Failed to generate manager avatar", "manager_id", m.ID, "error", err)
		} else {
			m.AvatarPath = rel
			if _, err := ms.managers.Update(ctx, nil, m); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func (ms *managerService) Update(ctx context.Context, id uuid.UUID, input UpdateManagerInput) (*types.Manager, error) {
	m, err := ms.managers.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, notFoundErr(types.EntityKindManager, id)
	}
	if input.FirstName != nil {
		m.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		m.LastName = *input.LastName
	}
	return ms.managers.Update(ctx, nil, m)
}

func (ms *managerService) Get(ctx context.Context, id uuid.UUID) (*ManagerView, error) {
	m, err := ms.managers.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, notFoundErr(types.EntityKindManager, id)
	}
	snap, err := ms.status.IndividualSnapshot(ctx, nil, types.EntityKindManager, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &ManagerView{Manager: m, Status: snap.Status()}, nil
}

func (ms *managerService) List(ctx context.Context, statusFilter *types.RosterStatus) ([]*ManagerView, error) {
	all, err := ms.managers.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	views := make([]*ManagerView, 0, len(all))
	for _, m := range all {
		snap, err := ms.status.IndividualSnapshot(ctx, nil, types.EntityKindManager, m.ID, now)
		if err != nil {
			return nil, err
		}
		status := snap.Status()
		if statusFilter != nil && status != *statusFilter {
			continue
		}
		views = append(views, &ManagerView{Manager: m, Status: status})
	}
	return views, nil
}

func (ms *managerService) Archive(ctx context.Context, id uuid.UUID) error {
	m, err := ms.managers.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if m == nil {
		return notFoundErr(types.EntityKindManager, id)
	}
	return ms.managers.Archive(ctx, nil, id)
}

func (ms *managerService) Restore(ctx context.Context, id uuid.UUID) error {
	return ms.managers.Restore(ctx, nil, id)
}

// Retire ends all open client engagements along with the usual
// individual retirement cascade.
func (ms *managerService) Retire(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = effectiveAt(at)
	err := ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ms.individualLifecycle.retireInTx(ctx, tx, id, at); err != nil {
			return err
		}
		return ms.managements.EndAllForManager(ctx, tx, id, at)
	})
	if err != nil {
		return err
	}
	ms.individualLifecycle.publish(ctx, id, "retire", at)
	return nil
}

func (ms *managerService) HireClient(ctx context.Context, managerID uuid.UUID, clientKind types.EntityKind, clientID uuid.UUID, at time.Time) error {
	if clientKind != types.EntityKindWrestler && clientKind != types.EntityKindTagTeam {
		return apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("managers can only manage wrestlers and tag teams"))
	}
	at = effectiveAt(at)

	snap, err := ms.status.IndividualSnapshot(ctx, nil, types.EntityKindManager, managerID, time.Now().UTC())
	if err != nil {
		return err
	}
	if snap.Retired {
		return guardErr("cannot_hire", types.EntityKindManager, fmt.Errorf("is retired"))
	}

	open, err := ms.managements.OpenForClient(ctx, nil, clientKind, clientID)
	if err != nil {
		return err
	}
	for _, rec := range open {
		if rec.ManagerID == managerID {
			return apierr.New(http.StatusConflict, "already_managed", fmt.Errorf("manager already manages this %s", clientKind))
		}
	}

	_, err = ms.managements.Hire(ctx, nil, managerID, clientKind, clientID, at)
	return err
}

func (ms *managerService) DropClient(ctx context.Context, managerID uuid.UUID, clientKind types.EntityKind, clientID uuid.UUID, at time.Time) error {
	return ms.managements.EndOpen(ctx, nil, managerID, clientKind, clientID, effectiveAt(at))
}

func (ms *managerService) Clients(ctx context.Context, managerID uuid.UUID) ([]*types.Management, error) {
	return ms.managements.OpenForManager(ctx, nil, managerID)
}
