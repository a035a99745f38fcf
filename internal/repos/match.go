package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/types"
)

type MatchRepo interface {
  Create(ctx context.Context, tx *gorm.DB, m *types.Match) (*types.Match, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Match, error)
  ListForEvent(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) ([]*types.Match, error)
  NextMatchNumber(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) (int, error)
  CreateResult(ctx context.Context, tx *gorm.DB, res *types.MatchResult) (*types.MatchResult, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type matchRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewMatchRepo(db *gorm.DB, baseLog *logger.Logger) MatchRepo {
  return &matchRepo{db: db, log: baseLog.With("repo", "MatchRepo")}
}

func (r *matchRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

// Create persists the match with its competitor, referee and title
// associations in one insert graph.
func (r *matchRepo) Create(ctx context.Context, tx *gorm.DB, m *types.Match) (*types.Match, error) {
  if err := r.handle(tx).WithContext(ctx).Create(m).Error; err != nil {
    return nil, err
  }
  return m, nil
}

func (r *matchRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Match, error) {
  var results []*types.Match
  if err := r.handle(tx).WithContext(ctx).
    Preload("Competitors").
    Preload("Referees.Referee").
    Preload("Titles.Title").
    Preload("Result").
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

func (r *matchRepo) ListForEvent(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) ([]*types.Match, error) {
  var results []*types.Match
  if err := r.handle(tx).WithContext(ctx).
    Preload("Competitors").
    Preload("Referees.Referee").
    Preload("Titles.Title").
    Preload("Result").
    Where("event_id = ?", eventID).
    Order("match_number ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *matchRepo) NextMatchNumber(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) (int, error) {
  var max int
  row := r.handle(tx).WithContext(ctx).
    Model(&types.Match{}).
    Where("event_id = ?", eventID).
    Select("COALESCE(MAX(match_number), 0)").
    Row()
  if err := row.Scan(&max); err != nil {
    return 0, err
  }
  return max + 1, nil
}

func (r *matchRepo) CreateResult(ctx context.Context, tx *gorm.DB, res *types.MatchResult) (*types.MatchResult, error) {
  if err := r.handle(tx).WithContext(ctx).Create(res).Error; err != nil {
    return nil, err
  }
  return res, nil
}

func (r *matchRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Match{}).Error
}
