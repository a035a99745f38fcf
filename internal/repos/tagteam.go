package repos

import (
  "context"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/types"
)

type TagTeamRepo interface {
  Create(ctx context.Context, tx *gorm.DB, tt *types.TagTeam) (*types.TagTeam, error)
  Update(ctx context.Context, tx *gorm.DB, tt *types.TagTeam) (*types.TagTeam, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.TagTeam, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.TagTeam, error)
  NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
  Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type tagTeamRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewTagTeamRepo(db *gorm.DB, baseLog *logger.Logger) TagTeamRepo {
  return &tagTeamRepo{db: db, log: baseLog.With("repo", "TagTeamRepo")}
}

func (r *tagTeamRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *tagTeamRepo) Create(ctx context.Context, tx *gorm.DB, tt *types.TagTeam) (*types.TagTeam, error) {
  if err := r.handle(tx).WithContext(ctx).Create(tt).Error; err != nil {
    return nil, err
  }
  return tt, nil
}

func (r *tagTeamRepo) Update(ctx context.Context, tx *gorm.DB, tt *types.TagTeam) (*types.TagTeam, error) {
  if err := r.handle(tx).WithContext(ctx).Save(tt).Error; err != nil {
    return nil, err
  }
  return tt, nil
}

func (r *tagTeamRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.TagTeam, error) {
  var results []*types.TagTeam
  if err := r.handle(tx).WithContext(ctx).
    Preload("Partners.Wrestler").
    Where("id = ?", id).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (r *tagTeamRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.TagTeam, error) {
  var results []*types.TagTeam
  if err := r.handle(tx).WithContext(ctx).
    Preload("Partners.Wrestler").
    Order("name ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *tagTeamRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
  var count int64
  if err := r.handle(tx).WithContext(ctx).
    Model(&types.TagTeam{}).
    Where("name = ?", name).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (r *tagTeamRepo) Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.TagTeam{}).Error
}

func (r *tagTeamRepo) Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Unscoped().
    Model(&types.TagTeam{}).
    Where("id = ?", id).
    Update("deleted_at", nil).Error
}

// TagTeamPartnerRepo tracks partnership windows.
type TagTeamPartnerRepo interface {
  Add(ctx context.Context, tx *gorm.DB, tagTeamID, wrestlerID uuid.UUID, at time.Time) (*types.TagTeamPartner, error)
  End(ctx context.Context, tx *gorm.DB, tagTeamID, wrestlerID uuid.UUID, at time.Time) error
  Current(ctx context.Context, tx *gorm.DB, tagTeamID uuid.UUID) ([]*types.TagTeamPartner, error)
  CurrentTeamsFor(ctx context.Context, tx *gorm.DB, wrestlerID uuid.UUID) ([]*types.TagTeamPartner, error)
}

type tagTeamPartnerRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewTagTeamPartnerRepo(db *gorm.DB, baseLog *logger.Logger) TagTeamPartnerRepo {
  return &tagTeamPartnerRepo{db: db, log: baseLog.With("repo", "TagTeamPartnerRepo")}
}

func (r *tagTeamPartnerRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *tagTeamPartnerRepo) Add(ctx context.Context, tx *gorm.DB, tagTeamID, wrestlerID uuid.UUID, at time.Time) (*types.TagTeamPartner, error) {
  rec := &types.TagTeamPartner{TagTeamID: tagTeamID, WrestlerID: wrestlerID, JoinedAt: at}
  if err := r.handle(tx).WithContext(ctx).Create(rec).Error; err != nil {
    return nil, err
  }
  return rec, nil
}

func (r *tagTeamPartnerRepo) End(ctx context.Context, tx *gorm.DB, tagTeamID, wrestlerID uuid.UUID, at time.Time) error {
  return r.handle(tx).WithContext(ctx).
    Model(&types.TagTeamPartner{}).
    Where("tag_team_id = ? AND wrestler_id = ? AND left_at IS NULL", tagTeamID, wrestlerID).
    Update("left_at", at).Error
}

func (r *tagTeamPartnerRepo) Current(ctx context.Context, tx *gorm.DB, tagTeamID uuid.UUID) ([]*types.TagTeamPartner, error) {
  var recs []*types.TagTeamPartner
  if err := r.handle(tx).WithContext(ctx).
    Preload("Wrestler").
    Where("tag_team_id = ? AND left_at IS NULL", tagTeamID).
    Find(&recs).Error; err != nil {
    return nil, err
  }
  return recs, nil
}

func (r *tagTeamPartnerRepo) CurrentTeamsFor(ctx context.Context, tx *gorm.DB, wrestlerID uuid.UUID) ([]*types.TagTeamPartner, error) {
  var recs []*types.TagTeamPartner
  if err := r.handle(tx).WithContext(ctx).
    Where("wrestler_id = ? AND left_at IS NULL", wrestlerID).
    Find(&recs).Error; err != nil {
    return nil, err
  }
  return recs, nil
}
