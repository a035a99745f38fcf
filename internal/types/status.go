package types

import (
	"time"

	"github.com/google/uuid"
)

// EntityKind discriminates the owner of a polymorphic status record.
type EntityKind string

const (
	EntityKindWrestler EntityKind = "wrestler"
	EntityKindManager  EntityKind = "manager"
	EntityKindReferee  EntityKind = "referee"
	EntityKindTagTeam  EntityKind = "tag_team"
	EntityKindStable   EntityKind = "stable"
	EntityKindTitle    EntityKind = "title"
)

// RosterStatus is the computed status of a person or tag team. It is
// derived from the open status records, never stored.
type RosterStatus string

const (
	StatusUnemployed       RosterStatus = "unemployed"
	StatusFutureEmployment RosterStatus = "future_employment"
	StatusBookable         RosterStatus = "bookable"
	StatusInjured          RosterStatus = "injured"
	StatusSuspended        RosterStatus = "suspended"
	StatusReleased         RosterStatus = "released"
	StatusRetired          RosterStatus = "retired"
)

// ActivationStatus is the computed status of a stable or title.
type ActivationStatus string

const (
	ActivationNone    ActivationStatus = "unactivated"
	ActivationFuture  ActivationStatus = "future_activation"
	ActivationActive  ActivationStatus = "active"
	ActivationEnded   ActivationStatus = "inactive"
	ActivationRetired ActivationStatus = "retired"
)

// Employment is a contract window for a wrestler, manager, referee or
// tag team. EndedAt nil means the contract is open. A StartedAt in the
// future means the entity is signed but not yet on the active roster.
type Employment struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EntityType EntityKind `gorm:"not null;index:idx_employment_entity" json:"entity_type"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_employment_entity" json:"entity_id"`
	StartedAt  time.Time  `gorm:"not null" json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Employment) TableName() string { return "employment" }

type Injury struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EntityType EntityKind `gorm:"not null;index:idx_injury_entity" json:"entity_type"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_injury_entity" json:"entity_id"`
	StartedAt  time.Time  `gorm:"not null" json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Injury) TableName() string { return "injury" }

type Suspension struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EntityType EntityKind `gorm:"not null;index:idx_suspension_entity" json:"entity_type"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_suspension_entity" json:"entity_id"`
	StartedAt  time.Time  `gorm:"not null" json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Suspension) TableName() string { return "suspension" }

type Retirement struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EntityType EntityKind `gorm:"not null;index:idx_retirement_entity" json:"entity_type"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_retirement_entity" json:"entity_id"`
	StartedAt  time.Time  `gorm:"not null" json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Retirement) TableName() string { return "retirement" }

// Activation is the employment analog for stables and titles.
type Activation struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EntityType EntityKind `gorm:"not null;index:idx_activation_entity" json:"entity_type"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_activation_entity" json:"entity_id"`
	StartedAt  time.Time  `gorm:"not null" json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Activation) TableName() string { return "activation" }
