package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/types"
)

type VenueRepo interface {
  Create(ctx context.Context, tx *gorm.DB, v *types.Venue) (*types.Venue, error)
  Update(ctx context.Context, tx *gorm.DB, v *types.Venue) (*types.Venue, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Venue, error)
  GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Venue, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Venue, error)
  Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type venueRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewVenueRepo(db *gorm.DB, baseLog *logger.Logger) VenueRepo {
  return &venueRepo{db: db, log: baseLog.With("repo", "VenueRepo")}
}

func (r *venueRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *venueRepo) Create(ctx context.Context, tx *gorm.DB, v *types.Venue) (*types.Venue, error) {
  if err := r.handle(tx).WithContext(ctx).Create(v).Error; err != nil {
    return nil, err
  }
  return v, nil
}

func (r *venueRepo) Update(ctx context.Context, tx *gorm.DB, v *types.Venue) (*types.Venue, error) {
  if err := r.handle(tx).WithContext(ctx).Save(v).Error; err != nil {
    return nil, err
  }
  return v, nil
}

func (r *venueRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Venue, error) {
  var results []*types.Venue
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

func (r *venueRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Venue, error) {
  var results []*types.Venue
  if err := r.handle(tx).WithContext(ctx).
    Where("name = ?", name).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (r *venueRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Venue, error) {
  var results []*types.Venue
  if err := r.handle(tx).WithContext(ctx).
    Order("name ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *venueRepo) Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Venue{}).Error
}

func (r *venueRepo) Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Unscoped().
    Model(&types.Venue{}).
    Where("id = ?", id).
    Update("deleted_at", nil).Error
}
