package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Stable struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string         `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Members     []StableMember `gorm:"foreignKey:StableID" json:"members,omitempty"`
	Activations []Activation   `gorm:"polymorphic:Entity;polymorphicValue:stable" json:"activations,omitempty"`
	Retirements []Retirement   `gorm:"polymorphic:Entity;polymorphicValue:stable" json:"retirements,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Stable) TableName() string { return "stable" }

// MinStableMembers is the headcount required to establish a stable. A
// member tag team counts as the number of its current partners.
const MinStableMembers = 3

// StableMember is a time-bounded membership of a wrestler or tag team
// in a stable.
type StableMember struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StableID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"stable_id"`
	MemberType EntityKind `gorm:"not null;index:idx_stable_member" json:"member_type"`
	MemberID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_stable_member" json:"member_id"`
	JoinedAt   time.Time  `gorm:"not null" json:"joined_at"`
	LeftAt     *time.Time `json:"left_at,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (StableMember) TableName() string { return "stable_member" }
