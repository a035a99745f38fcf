package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/types"
)

type RefereeRepo interface {
  Create(ctx context.Context, tx *gorm.DB, ref *types.Referee) (*types.Referee, error)
  Update(ctx context.Context, tx *gorm.DB, ref *types.Referee) (*types.Referee, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Referee, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Referee, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Referee, error)
  Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type refereeRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewRefereeRepo(db *gorm.DB, baseLog *logger.Logger) RefereeRepo {
  return &refereeRepo{db: db, log: baseLog.With("repo", "RefereeRepo")}
}

func (r *refereeRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *refereeRepo) Create(ctx context.Context, tx *gorm.DB, ref *types.Referee) (*types.Referee, error) {
  if err := r.handle(tx).WithContext(ctx).Create(ref).Error; err != nil {
    return nil, err
  }
  return ref, nil
}

func (r *refereeRepo) Update(ctx context.Context, tx *gorm.DB, ref *types.Referee) (*types.Referee, error) {
  if err := r.handle(tx).WithContext(ctx).Save(ref).Error; err != nil {
    return nil, err
  }
  return ref, nil
}

func (r *refereeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Referee, error) {
  var results []*types.Referee
  if err := r.handle(tx).WithContext(ctx).
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

func (r *refereeRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Referee, error) {
  var results []*types.Referee
  if len(ids) == 0 {
    return results, nil
  }
  if err := r.handle(tx).WithContext(ctx).
    Where("id IN ?", ids).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *refereeRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Referee, error) {
  var results []*types.Referee
  if err := r.handle(tx).WithContext(ctx).
    Order("last_name ASC, first_name ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *refereeRepo) Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Referee{}).Error
}

func (r *refereeRepo) Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Unscoped().
    Model(&types.Referee{}).
    Where("id = ?", id).
    Update("deleted_at", nil).Error
}
