package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventStatus is derived from the event date, never stored.
type EventStatus string

const (
	EventUnscheduled EventStatus = "unscheduled"
	EventScheduled   EventStatus = "scheduled"
	EventPast        EventStatus = "past"
)

type Event struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string         `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Date      *time.Time     `gorm:"column:date" json:"date,omitempty"`
	VenueID   *uuid.UUID     `gorm:"type:uuid;index" json:"venue_id,omitempty"`
	Venue     *Venue         `gorm:"constraint:OnDelete:SET NULL;foreignKey:VenueID;references:ID" json:"venue,omitempty"`
	Preview   string         `gorm:"column:preview" json:"preview,omitempty"`
	Matches   []Match        `gorm:"foreignKey:EventID" json:"matches,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Event) TableName() string { return "event" }

func (e *Event) Status(now time.Time) EventStatus {
	if e.Date == nil {
		return EventUnscheduled
	}
	if e.Date.Before(now) {
		return EventPast
	}
	return EventScheduled
}
