package repos

import (
  "context"
  "fmt"
  "net/http"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/squaredcircle/promoter-backend/internal/apierr"
  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/types"
)

// endBeforeStartErr refuses a close date earlier than the record it
// closes. A record must never read started_at > ended_at.
func endBeforeStartErr(kind types.EntityKind, startedAt, at time.Time) error {
  return apierr.New(http.StatusUnprocessableEntity, "invalid_date",
    fmt.Errorf("%s record started %s cannot end %s", kind, startedAt.Format(time.RFC3339), at.Format(time.RFC3339)))
}

// EmploymentRepo manages contract windows for wrestlers, managers,
// referees and tag teams.
type EmploymentRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rec *types.Employment) (*types.Employment, error)
  Latest(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID) (*types.Employment, error)
  History(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID) ([]*types.Employment, error)
  EndOpen(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID, at time.Time) error
  UpdateStart(ctx context.Context, tx *gorm.DB, recID uuid.UUID, at time.Time) error
}

type employmentRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewEmploymentRepo(db *gorm.DB, baseLog *logger.Logger) EmploymentRepo {
  return &employmentRepo{db: db, log: baseLog.With("repo", "EmploymentRepo")}
}

func (r *employmentRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *employmentRepo) Create(ctx context.Context, tx *gorm.DB, rec *types.Employment) (*types.Employment, error) {
  if err := r.handle(tx).WithContext(ctx).Create(rec).Error; err != nil {
    return nil, err
  }
  return rec, nil
}

func (r *employmentRepo) Latest(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID) (*types.Employment, error) {
  var recs []*types.Employment
  if err := r.handle(tx).WithContext(ctx).
    Where("entity_type = ? AND entity_id = ?", kind, entityID).
    Order("started_at DESC").
    Limit(1).
    Find(&recs).Error; err != nil {
    return nil, err
  }
  if len(recs) == 0 {
    return nil, nil
  }
  return recs[0], nil
}

func (r *employmentRepo) History(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID) ([]*types.Employment, error) {
  var recs []*types.Employment
  if err := r.handle(tx).WithContext(ctx).
    Where("entity_type = ? AND entity_id = ?", kind, entityID).
    Order("started_at DESC").
    Find(&recs).Error; err != nil {
    return nil, err
  }
  return recs, nil
}

func (r *employmentRepo) EndOpen(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID, at time.Time) error {
  var recs []*types.Employment
  if err := r.handle(tx).WithContext(ctx).
    Where("entity_type = ? AND entity_id = ? AND ended_at IS NULL", kind, entityID).
    Limit(1).
    Find(&recs).Error; err != nil {
    return err
  }
  if len(recs) == 0 {
    return nil
  }
  if at.Before(recs[0].StartedAt) {
    return endBeforeStartErr(kind, recs[0].StartedAt, at)
  }
  return r.handle(tx).WithContext(ctx).
    Model(&types.Employment{}).
    Where("id = ?", recs[0].ID).
    Update("ended_at", at).Error
}

func (r *employmentRepo) UpdateStart(ctx context.Context, tx *gorm.DB, recID uuid.UUID, at time.Time) error {
  return r.handle(tx).WithContext(ctx).
    Model(&types.Employment{}).
    Where("id = ?", recID).
    Update("started_at", at).Error
}

// StatusRecordRepo covers the three layered status records (injury,
// suspension, retirement). They share a shape, so one implementation
// is parameterized by the record model.
type StatusRecordRepo[T any] interface {
  Open(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID) (*T, error)
  Start(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID, at time.Time) (*T, error)
  EndOpen(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID, at time.Time) error
  History(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID) ([]*T, error)
}

type InjuryRepo = StatusRecordRepo[types.Injury]
type SuspensionRepo = StatusRecordRepo[types.Suspension]
type RetirementRepo = StatusRecordRepo[types.Retirement]

type statusRecordRepo[T any] struct {
  db      *gorm.DB
  log     *logger.Logger
  build   func(kind types.EntityKind, entityID uuid.UUID, at time.Time) *T
  startOf func(rec *T) time.Time
}

func NewInjuryRepo(db *gorm.DB, baseLog *logger.Logger) InjuryRepo {
  return &statusRecordRepo[types.Injury]{
    db:  db,
    log: baseLog.With("repo", "InjuryRepo"),
    build: func(kind types.EntityKind, entityID uuid.UUID, at time.Time) *types.Injury {
      return &types.Injury{EntityType: kind, EntityID: entityID, StartedAt: at}
    },
    startOf: func(rec *types.Injury) time.Time { return rec.StartedAt },
  }
}

func NewSuspensionRepo(db *gorm.DB, baseLog *logger.Logger) SuspensionRepo {
  return &statusRecordRepo[types.Suspension]{
    db:  db,
    log: baseLog.With("repo", "SuspensionRepo"),
    build: func(kind types.EntityKind, entityID uuid.UUID, at time.Time) *types.Suspension {
      return &types.Suspension{EntityType: kind, EntityID: entityID, StartedAt: at}
    },
    startOf: func(rec *types.Suspension) time.Time { return rec.StartedAt },
  }
}

func NewRetirementRepo(db *gorm.DB, baseLog *logger.Logger) RetirementRepo {
  return &statusRecordRepo[types.Retirement]{
    db:  db,
    log: baseLog.With("repo", "RetirementRepo"),
    build: func(kind types.EntityKind, entityID uuid.UUID, at time.Time) *types.Retirement {
      return &types.Retirement{EntityType: kind, EntityID: entityID, StartedAt: at}
    },
    startOf: func(rec *types.Retirement) time.Time { return rec.StartedAt },
  }
}

func (r *statusRecordRepo[T]) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *statusRecordRepo[T]) Open(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID) (*T, error) {
  var recs []*T
  if err := r.handle(tx).WithContext(ctx).
    Where("entity_type = ? AND entity_id = ? AND ended_at IS NULL", kind, entityID).
    Limit(1).
    Find(&recs).Error; err != nil {
    return nil, err
  }
  if len(recs) == 0 {
    return nil, nil
  }
  return recs[0], nil
}

func (r *statusRecordRepo[T]) Start(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID, at time.Time) (*T, error) {
  rec := r.build(kind, entityID, at)
  if err := r.handle(tx).WithContext(ctx).Create(rec).Error; err != nil {
    return nil, err
  }
  return rec, nil
}

func (r *statusRecordRepo[T]) EndOpen(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID, at time.Time) error {
  rec, err := r.Open(ctx, tx, kind, entityID)
  if err != nil {
    return err
  }
  if rec == nil {
    return nil
  }
  if at.Before(r.startOf(rec)) {
    return endBeforeStartErr(kind, r.startOf(rec), at)
  }
  var zero T
  return r.handle(tx).WithContext(ctx).
    Model(&zero).
    Where("entity_type = ? AND entity_id = ? AND ended_at IS NULL", kind, entityID).
    Update("ended_at", at).Error
}

func (r *statusRecordRepo[T]) History(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID) ([]*T, error) {
  var recs []*T
  if err := r.handle(tx).WithContext(ctx).
    Where("entity_type = ? AND entity_id = ?", kind, entityID).
    Order("started_at DESC").
    Find(&recs).Error; err != nil {
    return nil, err
  }
  return recs, nil
}

// ActivationRepo manages activation windows for stables and titles.
type ActivationRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rec *types.Activation) (*types.Activation, error)
  Latest(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID) (*types.Activation, error)
  History(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID) ([]*types.Activation, error)
  EndOpen(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID, at time.Time) error
}

type activationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewActivationRepo(db *gorm.DB, baseLog *logger.Logger) ActivationRepo {
  return &activationRepo{db: db, log: baseLog.With("repo", "ActivationRepo")}
}

func (r *activationRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *activationRepo) Create(ctx context.Context, tx *gorm.DB, rec *types.Activation) (*types.Activation, error) {
  if err := r.handle(tx).WithContext(ctx).Create(rec).Error; err != nil {
    return nil, err
  }
  return rec, nil
}

func (r *activationRepo) Latest(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID) (*types.Activation, error) {
  var recs []*types.Activation
  if err := r.handle(tx).WithContext(ctx).
    Where("entity_type = ? AND entity_id = ?", kind, entityID).
    Order("started_at DESC").
    Limit(1).
    Find(&recs).Error; err != nil {
    return nil, err
  }
  if len(recs) == 0 {
    return nil, nil
  }
  return recs[0], nil
}

func (r *activationRepo) History(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID) ([]*types.Activation, error) {
  var recs []*types.Activation
  if err := r.handle(tx).WithContext(ctx).
    Where("entity_type = ? AND entity_id = ?", kind, entityID).
    Order("started_at DESC").
    Find(&recs).Error; err != nil {
    return nil, err
  }
  return recs, nil
}

func (r *activationRepo) EndOpen(ctx context.Context, tx *gorm.DB, kind types.EntityKind, entityID uuid.UUID, at time.Time) error {
  var recs []*types.Activation
  if err := r.handle(tx).WithContext(ctx).
    Where("entity_type = ? AND entity_id = ? AND ended_at IS NULL", kind, entityID).
    Limit(1).
    Find(&recs).Error; err != nil {
    return err
  }
  if len(recs) == 0 {
    return nil
  }
  if at.Before(recs[0].StartedAt) {
    return endBeforeStartErr(kind, recs[0].StartedAt, at)
  }
  return r.handle(tx).WithContext(ctx).
    Model(&types.Activation{}).
    Where("id = ?", recs[0].ID).
    Update("ended_at", at).Error
}
