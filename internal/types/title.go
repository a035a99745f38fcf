package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Title struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string         `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Activations []Activation   `gorm:"polymorphic:Entity;polymorphicValue:title" json:"activations,omitempty"`
	Retirements []Retirement   `gorm:"polymorphic:Entity;polymorphicValue:title" json:"retirements,omitempty"`
	Reigns      []Championship `gorm:"foreignKey:TitleID" json:"reigns,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Title) TableName() string { return "title" }

// Championship is one reign: a wrestler or tag team holding a title
// from WonAt until LostAt (nil while the reign is current).
type Championship struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TitleID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"title_id"`
	Title        *Title     `gorm:"constraint:OnDelete:CASCADE;foreignKey:TitleID;references:ID" json:"title,omitempty"`
	ChampionType EntityKind `gorm:"not null;index:idx_championship_champion" json:"champion_type"`
	ChampionID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_championship_champion" json:"champion_id"`
	WonAt        time.Time  `gorm:"not null" json:"won_at"`
	LostAt       *time.Time `json:"lost_at,omitempty"`
	CreatedAt    time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Championship) TableName() string { return "championship" }

// ReignLengthDays reports how long the reign has lasted, using now for
// an open reign.
func (c *Championship) ReignLengthDays(now time.Time) int {
	end := now
	if c.LostAt != nil {
		end = *c.LostAt
	}
	return int(end.Sub(c.WonAt).Hours() / 24)
}
