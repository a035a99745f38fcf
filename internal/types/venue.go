package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Venue struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string         `gorm:"column:name;not null;uniqueIndex" json:"name"`
	StreetAddress string         `gorm:"column:street_address;not null" json:"street_address"`
	City          string         `gorm:"column:city;not null" json:"city"`
	State         string         `gorm:"column:state;not null" json:"state"`
	Zipcode       string         `gorm:"column:zipcode;not null" json:"zipcode"`
	CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Venue) TableName() string { return "venue" }
