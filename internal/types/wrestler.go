package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Wrestler struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string         `gorm:"column:name;not null;uniqueIndex" json:"name"`
	HeightInches  int            `gorm:"column:height_inches;not null" json:"height_inches"`
	WeightLbs     int            `gorm:"column:weight_lbs;not null" json:"weight_lbs"`
	Hometown      string         `gorm:"column:hometown;not null" json:"hometown"`
	SignatureMove *string        `gorm:"column:signature_move" json:"signature_move,omitempty"`
	AvatarPath    string         `gorm:"column:avatar_path" json:"avatar_path,omitempty"`
	Employments   []Employment   `gorm:"polymorphic:Entity;polymorphicValue:wrestler" json:"employments,omitempty"`
	Injuries      []Injury       `gorm:"polymorphic:Entity;polymorphicValue:wrestler" json:"injuries,omitempty"`
	Suspensions   []Suspension   `gorm:"polymorphic:Entity;polymorphicValue:wrestler" json:"suspensions,omitempty"`
	Retirements   []Retirement   `gorm:"polymorphic:Entity;polymorphicValue:wrestler" json:"retirements,omitempty"`
	CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Wrestler) TableName() string { return "wrestler" }

// FormattedHeight renders total inches as the conventional feet'inches".
func (w *Wrestler) FormattedHeight() string {
	return fmt.Sprintf("%d'%d\"", w.HeightInches/12, w.HeightInches%12)
}
