package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/squaredcircle/promoter-backend/internal/lifecycle"
	"github.com/squaredcircle/promoter-backend/internal/logger"
	"github.com/squaredcircle/promoter-backend/internal/repos"
	"github.com/squaredcircle/promoter-backend/internal/types"
)

// StatusService assembles lifecycle snapshots from the status record
// tables. Everything that needs to know "what state is this entity in
// right now" goes through here.
type StatusService interface {
	IndividualSnapshot(ctx context.Context, tx *gorm.DB, kind types.EntityKind, id uuid.UUID, now time.Time) (lifecycle.IndividualSnapshot, error)
	TagTeamSnapshot(ctx context.Context, tx *gorm.DB, id uuid.UUID, now time.Time) (lifecycle.TagTeamSnapshot, error)
	StableSnapshot(ctx context.Context, tx *gorm.DB, id uuid.UUID, now time.Time) (lifecycle.StableSnapshot, error)
	TitleSnapshot(ctx context.Context, tx *gorm.DB, id uuid.UUID, now time.Time) (lifecycle.TitleSnapshot, error)
}

type statusService struct {
	log           *logger.Logger
	employments   repos.EmploymentRepo
	injuries      repos.InjuryRepo
	suspensions   repos.SuspensionRepo
	retirements   repos.RetirementRepo
	activations   repos.ActivationRepo
	partners      repos.TagTeamPartnerRepo
	members       repos.StableMemberRepo
	championships repos.ChampionshipRepo
}

func NewStatusService(
	log *logger.Logger,
	employments repos.EmploymentRepo,
	injuries repos.InjuryRepo,
	suspensions repos.SuspensionRepo,
	retirements repos.RetirementRepo,
	activations repos.ActivationRepo,
	partners repos.TagTeamPartnerRepo,
	members repos.StableMemberRepo,
	championships repos.ChampionshipRepo,
) StatusService {
	return &statusService{
		log:           log.With("service", "StatusService"),
		employments:   employments,
		injuries:      injuries,
		suspensions:   suspensions,
		retirements:   retirements,
		activations:   activations,
		partners:      partners,
		members:       members,
		championships: championships,
	}
}

func (s *statusService) IndividualSnapshot(ctx context.Context, tx *gorm.DB, kind types.EntityKind, id uuid.UUID, now time.Time) (lifecycle.IndividualSnapshot, error) {
	var snap lifecycle.IndividualSnapshot

	latest, err := s.employments.Latest(ctx, tx, kind, id)
	if err != nil {
		return snap, err
	}
	snap.Employment = lifecycle.EmploymentStateOf(latest, now)

	injury, err := s.injuries.Open(ctx, tx, kind, id)
	if err != nil {
		return snap, err
	}
	snap.Injured = injury != nil

	suspension, err := s.suspensions.Open(ctx, tx, kind, id)
	if err != nil {
		return snap, err
	}
	snap.Suspended = suspension != nil

	retirement, err := s.retirements.Open(ctx, tx, kind, id)
	if err != nil {
		return snap, err
	}
	snap.Retired = retirement != nil

	return snap, nil
}

func (s *statusService) TagTeamSnapshot(ctx context.Context, tx *gorm.DB, id uuid.UUID, now time.Time) (lifecycle.TagTeamSnapshot, error) {
	var snap lifecycle.TagTeamSnapshot

	latest, err := s.employments.Latest(ctx, tx, types.EntityKindTagTeam, id)
	if err != nil {
		return snap, err
	}
	snap.Employment = lifecycle.EmploymentStateOf(latest, now)

	suspension, err := s.suspensions.Open(ctx, tx, types.EntityKindTagTeam, id)
	if err != nil {
		return snap, err
	}
	snap.Suspended = suspension != nil

	retirement, err := s.retirements.Open(ctx, tx, types.EntityKindTagTeam, id)
	if err != nil {
		return snap, err
	}
	snap.Retired = retirement != nil

	partners, err := s.partners.Current(ctx, tx, id)
	if err != nil {
		return snap, err
	}
	snap.PartnerCount = len(partners)

	return snap, nil
}

func (s *statusService) StableSnapshot(ctx context.Context, tx *gorm.DB, id uuid.UUID, now time.Time) (lifecycle.StableSnapshot, error) {
	var snap lifecycle.StableSnapshot

	latest, err := s.activations.Latest(ctx, tx, types.EntityKindStable, id)
	if err != nil {
		return snap, err
	}
	snap.Activation = lifecycle.ActivationStateOf(latest, now)

	retirement, err := s.retirements.Open(ctx, tx, types.EntityKindStable, id)
	if err != nil {
		return snap, err
	}
	snap.Retired = retirement != nil

	members, err := s.members.Current(ctx, tx, id)
	if err != nil {
		return snap, err
	}
	count := 0
	for _, m := range members {
		if m.MemberType == types.EntityKindTagTeam {
			partners, err := s.partners.Current(ctx, tx, m.MemberID)
			if err != nil {
				return snap, err
			}
			count += len(partners)
			continue
		}
		count++
	}
	snap.MemberCount = count

	return snap, nil
}

func (s *statusService) TitleSnapshot(ctx context.Context, tx *gorm.DB, id uuid.UUID, now time.Time) (lifecycle.TitleSnapshot, error) {
	var snap lifecycle.TitleSnapshot

	latest, err := s.activations.Latest(ctx, tx, types.EntityKindTitle, id)
	if err != nil {
		return snap, err
	}
	snap.Activation = lifecycle.ActivationStateOf(latest, now)

	retirement, err := s.retirements.Open(ctx, tx, types.EntityKindTitle, id)
	if err != nil {
		return snap, err
	}
	snap.Retired = retirement != nil

	reign, err := s.championships.Current(ctx, tx, id)
	if err != nil {
		return snap, err
	}
	snap.HasChampion = reign != nil

	return snap, nil
}
