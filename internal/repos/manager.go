package repos

import (
  "context"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/types"
)

type ManagerRepo interface {
  Create(ctx context.Context, tx *gorm.DB, m *types.Manager) (*types.Manager, error)
  Update(ctx context.Context, tx *gorm.DB, m *types.Manager) (*types.Manager, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Manager, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Manager, error)
  Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type managerRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewManagerRepo(db *gorm.DB, baseLog *logger.Logger) ManagerRepo {
  return &managerRepo{db: db, log: baseLog.With("repo", "ManagerRepo")}
}

func (r *managerRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *managerRepo) Create(ctx context.Context, tx *gorm.DB, m *types.Manager) (*types.Manager, error) {
  if err := r.handle(tx).WithContext(ctx).Create(m).Error; err != nil {
    return nil, err
  }
  return m, nil
}

func (r *managerRepo) Update(ctx context.Context, tx *gorm.DB, m *types.Manager) (*types.Manager, error) {
  if err := r.handle(tx).WithContext(ctx).Save(m).Error; err != nil {
    return nil, err
  }
  return m, nil
}

func (r *managerRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Manager, error) {
  var results []*types.Manager
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

func (r *managerRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Manager, error) {
  var results []*types.Manager
  if err := r.handle(tx).WithContext(ctx).
    Order("last_name ASC, first_name ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *managerRepo) Archive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Manager{}).Error
}

func (r *managerRepo) Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return r.handle(tx).WithContext(ctx).
    Unscoped().
    Model(&types.Manager{}).
    Where("id = ?", id).
    Update("deleted_at", nil).Error
}

// ManagementRepo tracks which managers are engaged with which
// wrestlers and tag teams.
type ManagementRepo interface {
  Hire(ctx context.Context, tx *gorm.DB, managerID uuid.UUID, clientKind types.EntityKind, clientID uuid.UUID, at time.Time) (*types.Management, error)
  EndOpen(ctx context.Context, tx *gorm.DB, managerID uuid.UUID, clientKind types.EntityKind, clientID uuid.UUID, at time.Time) error
  EndAllForManager(ctx context.Context, tx *gorm.DB, managerID uuid.UUID, at time.Time) error
  OpenForManager(ctx context.Context, tx *gorm.DB, managerID uuid.UUID) ([]*types.Management, error)
  OpenForClient(ctx context.Context, tx *gorm.DB, clientKind types.EntityKind, clientID uuid.UUID) ([]*types.Management, error)
}

type managementRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewManagementRepo(db *gorm.DB, baseLog *logger.Logger) ManagementRepo {
  return &managementRepo{db: db, log: baseLog.With("repo", "ManagementRepo")}
}

func (r *managementRepo) handle(tx *gorm.DB) *gorm.DB {
  if tx != nil {
    return tx
  }
  return r.db
}

func (r *managementRepo) Hire(ctx context.Context, tx *gorm.DB, managerID uuid.UUID, clientKind types.EntityKind, clientID uuid.UUID, at time.Time) (*types.Management, error) {
  rec := &types.Management{
    ManagerID:  managerID,
    ClientType: clientKind,
    ClientID:   clientID,
    HiredAt:    at,
  }
  if err := r.handle(tx).WithContext(ctx).Create(rec).Error; err != nil {
    return nil, err
  }
  return rec, nil
}

func (r *managementRepo) EndOpen(ctx context.Context, tx *gorm.DB, managerID uuid.UUID, clientKind types.EntityKind, clientID uuid.UUID, at time.Time) error {
  return r.handle(tx).WithContext(ctx).
    Model(&types.Management{}).
    Where("manager_id = ? AND client_type = ? AND client_id = ? AND left_at IS NULL", managerID, clientKind, clientID).
    Update("left_at", at).Error
}

func (r *managementRepo) EndAllForManager(ctx context.Context, tx *gorm.DB, managerID uuid.UUID, at time.Time) error {
  return r.handle(tx).WithContext(ctx).
    Model(&types.Management{}).
    Where("manager_id = ? AND left_at IS NULL", managerID).
    Update("left_at", at).Error
}

func (r *managementRepo) OpenForManager(ctx context.Context, tx *gorm.DB, managerID uuid.UUID) ([]*types.Management, error) {
  var recs []*types.Management
  if err := r.handle(tx).WithContext(ctx).
    Where("manager_id = ? AND left_at IS NULL", managerID).
    Find(&recs).Error; err != nil {
    return nil, err
  }
  return recs, nil
}

func (r *managementRepo) OpenForClient(ctx context.Context, tx *gorm.DB, clientKind types.EntityKind, clientID uuid.UUID) ([]*types.Management, error) {
  var recs []*types.Management
  if err := r.handle(tx).WithContext(ctx).
    Where("client_type = ? AND client_id = ? AND left_at IS NULL", clientKind, clientID).
    Find(&recs).Error; err != nil {
    return nil, err
  }
  return recs, nil
}
