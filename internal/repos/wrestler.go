package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/types"
)

type WrestlerRepo interface {
  Create(ctx context.Context, tx *gorm.DB, w *types.Wrestler) (*types.Wrestler, error)
  Update(ctx context.Context, tx *gorm.DB, w *types.Wrestler) (*types.Wrestler, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Wrestler, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Wrestler, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Wrestler, error)
  NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
  Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type wrestlerRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewWrestlerRepo(db *gorm.DB, baseLog *logger.Logger) WrestlerRepo {
  return &wrestlerRepo{db: db, log: baseLog.With("repo", "WrestlerRepo")}
}

func (r *wrestlerRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *wrestlerRepo) Create(ctx context.Context, tx *gorm.DB, w *types.Wrestler) (*types.Wrestler, error) {
  if err := r.handle(tx).WithContext(ctx).Create(w).Error; err != nil {
    return nil, err
  }
  return w, nil
}

func (r *wrestlerRepo) Update(ctx context.Context, tx *gorm.DB, w *types.Wrestler) (*types.Wrestler, error) {
  if err := r.handle(tx).WithContext(ctx).Save(w).Error; err != nil {
    return nil, err
  }
  return w, nil
}

func (r *wrestlerRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Wrestler, error) {
  var results []*types.Wrestler
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

func (r *wrestlerRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Wrestler, error) {
  var results []*types.Wrestler
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

func (r *wrestlerRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Wrestler, error) {
  var results []*types.Wrestler
  if err := r.handle(tx).WithContext(ctx).
    Order("name ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *wrestlerRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
  var count int64
  if err := r.handle(tx).WithContext(ctx).
    Model(&types.Wrestler{}).
    Where("name = ?", name).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (r *wrestlerRepo) Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Wrestler{}).Error
}

func (r *wrestlerRepo) Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Unscoped().
    Model(&types.Wrestler{}).
    Where("id = ?", id).
    Update("deleted_at", nil).Error
}
