package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Referee struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirstName   string         `gorm:"column:first_name;not null" json:"first_name"`
	LastName    string         `gorm:"column:last_name;not null" json:"last_name"`
	AvatarPath  string         `gorm:"column:avatar_path" json:"avatar_path,omitempty"`
	Employments []Employment   `gorm:"polymorphic:Entity;polymorphicValue:referee" json:"employments,omitempty"`
	Injuries    []Injury       `gorm:"polymorphic:Entity;polymorphicValue:referee" json:"injuries,omitempty"`
	Suspensions []Suspension   `gorm:"polymorphic:Entity;polymorphicValue:referee" json:"suspensions,omitempty"`
	Retirements []Retirement   `gorm:"polymorphic:Entity;polymorphicValue:referee" json:"retirements,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Referee) TableName() string { return "referee" }

func (r *Referee) FullName() string {
	return r.FirstName + " " + r.LastName
}
