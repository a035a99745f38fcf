package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Manager struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirstName   string         `gorm:"column:first_name;not null" json:"first_name"`
	LastName    string         `gorm:"column:last_name;not null" json:"last_name"`
	AvatarPath  string         `gorm:"column:avatar_path" json:"avatar_path,omitempty"`
	Employments []Employment   `gorm:"polymorphic:Entity;polymorphicValue:manager" json:"employments,omitempty"`
	Injuries    []Injury       `gorm:"polymorphic:Entity;polymorphicValue:manager" json:"injuries,omitempty"`
	Suspensions []Suspension   `gorm:"polymorphic:Entity;polymorphicValue:manager" json:"suspensions,omitempty"`
	Retirements []Retirement   `gorm:"polymorphic:Entity;polymorphicValue:manager" json:"retirements,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Manager) TableName() string { return "manager" }

func (m *Manager) FullName() string {
	return m.FirstName + " " + m.LastName
}

// Management is a time-bounded engagement between a manager and a
// wrestler or tag team.
type Management struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ManagerID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"manager_id"`
	Manager    *Manager   `gorm:"constraint:OnDelete:CASCADE;foreignKey:ManagerID;references:ID" json:"manager,omitempty"`
	ClientType EntityKind `gorm:"not null;index:idx_management_client" json:"client_type"`
	ClientID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_management_client" json:"client_id"`
	HiredAt    time.Time  `gorm:"not null" json:"hired_at"`
	LeftAt     *time.Time `json:"left_at,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Management) TableName() string { return "management" }
