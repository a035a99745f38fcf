package repos

import (
  "context"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/types"
)

type EventRepo interface {
  Create(ctx context.Context, tx *gorm.DB, e *types.Event) (*types.Event, error)
  Update(ctx context.Context, tx *gorm.DB, e *types.Event) (*types.Event, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Event, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Event, error)
  ListScheduledBetween(ctx context.Context, tx *gorm.DB, from, to time.Time) ([]*types.Event, error)
  NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
  Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type eventRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewEventRepo(db *gorm.DB, baseLog *logger.Logger) EventRepo {
  return &eventRepo{db: db, log: baseLog.With("repo", "EventRepo")}
}

func (r *eventRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *eventRepo) Create(ctx context.Context, tx *gorm.DB, e *types.Event) (*types.Event, error) {
  if err := r.handle(tx).WithContext(ctx).Create(e).Error; err != nil {
    return nil, err
  }
  return e, nil
}

func (r *eventRepo) Update(ctx context.Context, tx *gorm.DB, e *types.Event) (*types.Event, error) {
  if err := r.handle(tx).WithContext(ctx).Save(e).Error; err != nil {
    return nil, err
  }
  return e, nil
}

func (r *eventRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Event, error) {
  var results []*types.Event
  if err := r.handle(tx).WithContext(ctx).
    Preload("Venue").
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

func (r *eventRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Event, error) {
  var results []*types.Event
  if err := r.handle(tx).WithContext(ctx).
    Preload("Venue").
    Order("date ASC NULLS LAST").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *eventRepo) ListScheduledBetween(ctx context.Context, tx *gorm.DB, from, to time.Time) ([]*types.Event, error) {
  var results []*types.Event
  if err := r.handle(tx).WithContext(ctx).
    Preload("Venue").
    Where("date IS NOT NULL AND date >= ? AND date <= ?", from, to).
    Order("date ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *eventRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
  var count int64
  if err := r.handle(tx).WithContext(ctx).
    Model(&types.Event{}).
    Where("name = ?", name).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (r *eventRepo) Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Event{}).Error
}

func (r *eventRepo) Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Unscoped().
    Model(&types.Event{}).
    Where("id = ?", id).
    Update("deleted_at", nil).Error
}
