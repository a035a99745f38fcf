package repos

import (
  "context"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/types"
)

type TitleRepo interface {
  Create(ctx context.Context, tx *gorm.DB, t *types.Title) (*types.Title, error)
  Update(ctx context.Context, tx *gorm.DB, t *types.Title) (*types.Title, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Title, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Title, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Title, error)
  NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
  Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type titleRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewTitleRepo(db *gorm.DB, baseLog *logger.Logger) TitleRepo {
  return &titleRepo{db: db, log: baseLog.With("repo", "TitleRepo")}
}

func (r *titleRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *titleRepo) Create(ctx context.Context, tx *gorm.DB, t *types.Title) (*types.Title, error) {
  if err := r.handle(tx).WithContext(ctx).Create(t).Error; err != nil {
    return nil, err
  }
  return t, nil
}

func (r *titleRepo) Update(ctx context.Context, tx *gorm.DB, t *types.Title) (*types.Title, error) {
  if err := r.handle(tx).WithContext(ctx).Save(t).Error; err != nil {
    return nil, err
  }
  return t, nil
}

func (r *titleRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Title, error) {
  var results []*types.Title
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

func (r *titleRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Title, error) {
  var results []*types.Title
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

func (r *titleRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Title, error) {
  var results []*types.Title
  if err := r.handle(tx).WithContext(ctx).
    Order("name ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *titleRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
  var count int64
  if err := r.handle(tx).WithContext(ctx).
    Model(&types.Title{}).
    Where("name = ?", name).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (r *titleRepo) Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Title{}).Error
}

func (r *titleRepo) Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Unscoped().
    Model(&types.Title{}).
    Where("id = ?", id).
    Update("deleted_at", nil).Error
}

// ChampionshipRepo tracks title reigns.
type ChampionshipRepo interface {
  Award(ctx context.Context, tx *gorm.DB, titleID uuid.UUID, championKind types.EntityKind, championID uuid.UUID, at time.Time) (*types.Championship, error)
  Current(ctx context.Context, tx *gorm.DB, titleID uuid.UUID) (*types.Championship, error)
  EndOpen(ctx context.Context, tx *gorm.DB, titleID uuid.UUID, at time.Time) error
  HistoryForTitle(ctx context.Context, tx *gorm.DB, titleID uuid.UUID) ([]*types.Championship, error)
  HistoryForChampion(ctx context.Context, tx *gorm.DB, championKind types.EntityKind, championID uuid.UUID) ([]*types.Championship, error)
}

type championshipRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewChampionshipRepo(db *gorm.DB, baseLog *logger.Logger) ChampionshipRepo {
  return &championshipRepo{db: db, log: baseLog.With("repo", "ChampionshipRepo")}
}

func (r *championshipRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *championshipRepo) Award(ctx context.Context, tx *gorm.DB, titleID uuid.UUID, championKind types.EntityKind, championID uuid.UUID, at time.Time) (*types.Championship, error) {
  rec := &types.Championship{
    TitleID:      titleID,
    ChampionType: championKind,
    ChampionID:   championID,
    WonAt:        at,
  }
  if err := r.handle(tx).WithContext(ctx).Create(rec).Error; err != nil {
    return nil, err
  }
  return rec, nil
}

func (r *championshipRepo) Current(ctx context.Context, tx *gorm.DB, titleID uuid.UUID) (*types.Championship, error) {
  var recs []*types.Championship
  if err := r.handle(tx).WithContext(ctx).
    Where("title_id = ? AND lost_at IS NULL", titleID).
    Limit(1).
    Find(&recs).Error; err != nil {
    return nil, err
  }
  if len(recs) == 0 {
    return nil, nil
  }
  return recs[0], nil
}

func (r *championshipRepo) EndOpen(ctx context.Context, tx *gorm.DB, titleID uuid.UUID, at time.Time) error {
  return r.handle(tx).WithContext(ctx).
    Model(&types.Championship{}).
    Where("title_id = ? AND lost_at IS NULL", titleID).
    Update("lost_at", at).Error
}

func (r *championshipRepo) HistoryForTitle(ctx context.Context, tx *gorm.DB, titleID uuid.UUID) ([]*types.Championship, error) {
  var recs []*types.Championship
  if err := r.handle(tx).WithContext(ctx).
    Where("title_id = ?", titleID).
    Order("won_at DESC").
    Find(&recs).Error; err != nil {
    return nil, err
  }
  return recs, nil
}

func (r *championshipRepo) HistoryForChampion(ctx context.Context, tx *gorm.DB, championKind types.EntityKind, championID uuid.UUID) ([]*types.Championship, error) {
  var recs []*types.Championship
  if err := r.handle(tx).WithContext(ctx).
    Preload("Title").
    Where("champion_type = ? AND champion_id = ?", championKind, championID).
    Order("won_at DESC").
    Find(&recs).Error; err != nil {
    return nil, err
  }
  return recs, nil
}
