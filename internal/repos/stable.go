package repos

import (
  "context"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/types"
)

type StableRepo interface {
  Create(ctx context.Context, tx *gorm.DB, s *types.Stable) (*types.Stable, error)
  Update(ctx context.Context, tx *gorm.DB, s *types.Stable) (*types.Stable, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Stable, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Stable, error)
  NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
  Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type stableRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewStableRepo(db *gorm.DB, baseLog *logger.Logger) StableRepo {
  return &stableRepo{db: db, log: baseLog.With("repo", "StableRepo")}
}

func (r *stableRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *stableRepo) Create(ctx context.Context, tx *gorm.DB, s *types.Stable) (*types.Stable, error) {
  if err := r.handle(tx).WithContext(ctx).Create(s).Error; err != nil {
    return nil, err
  }
  return s, nil
}

func (r *stableRepo) Update(ctx context.Context, tx *gorm.DB, s *types.Stable) (*types.Stable, error) {
  if err := r.handle(tx).WithContext(ctx).Save(s).Error; err != nil {
    return nil, err
  }
  return s, nil
}

func (r *stableRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Stable, error) {
  var results []*types.Stable
  if err := r.handle(tx).WithContext(ctx).
    Preload("Members").
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

func (r *stableRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Stable, error) {
  var results []*types.Stable
  if err := r.handle(tx).WithContext(ctx).
    Preload("Members").
    Order("name ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *stableRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
  var count int64
  if err := r.handle(tx).WithContext(ctx).
    Model(&types.Stable{}).
    Where("name = ?", name).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (r *stableRepo) Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Stable{}).Error
}

func (r *stableRepo) Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Unscoped().
    Model(&types.Stable{}).
    Where("id = ?", id).
    Update("deleted_at", nil).Error
}

type StableMemberRepo interface {
  Add(ctx context.Context, tx *gorm.DB, stableID uuid.UUID, memberKind types.EntityKind, memberID uuid.UUID, at time.Time) (*types.StableMember, error)
  End(ctx context.Context, tx *gorm.DB, stableID uuid.UUID, memberKind types.EntityKind, memberID uuid.UUID, at time.Time) error
  EndAll(ctx context.Context, tx *gorm.DB, stableID uuid.UUID, at time.Time) error
  Current(ctx context.Context, tx *gorm.DB, stableID uuid.UUID) ([]*types.StableMember, error)
}

type stableMemberRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewStableMemberRepo(db *gorm.DB, baseLog *logger.Logger) StableMemberRepo {
  return &stableMemberRepo{db: db, log: baseLog.With("repo", "StableMemberRepo")}
}

func (r *stableMemberRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *stableMemberRepo) Add(ctx context.Context, tx *gorm.DB, stableID uuid.UUID, memberKind types.EntityKind, memberID uuid.UUID, at time.Time) (*types.StableMember, error) {
  rec := &types.StableMember{
    StableID:   stableID,
    MemberType: memberKind,
    MemberID:   memberID,
    JoinedAt:   at,
  }
  if err := r.handle(tx).WithContext(ctx).Create(rec).Error; err != nil {
    return nil, err
  }
  return rec, nil
}

func (r *stableMemberRepo) End(ctx context.Context, tx *gorm.DB, stableID uuid.UUID, memberKind types.EntityKind, memberID uuid.UUID, at time.Time) error {
  return r.handle(tx).WithContext(ctx).
    Model(&types.StableMember{}).
    Where("stable_id = ? AND member_type = ? AND member_id = ? AND left_at IS NULL", stableID, memberKind, memberID).
    Update("left_at", at).Error
}

func (r *stableMemberRepo) EndAll(ctx context.Context, tx *gorm.DB, stableID uuid.UUID, at time.Time) error {
  return r.handle(tx).WithContext(ctx).
    Model(&types.StableMember{}).
    Where("stable_id = ? AND left_at IS NULL", stableID).
    Update("left_at", at).Error
}

func (r *stableMemberRepo) Current(ctx context.Context, tx *gorm.DB, stableID uuid.UUID) ([]*types.StableMember, error) {
  var recs []*types.StableMember
  if err := r.handle(tx).WithContext(ctx).
    Where("stable_id = ? AND left_at IS NULL", stableID).
    Find(&recs).Error; err != nil {
    return nil, err
  }
  return recs, nil
}
