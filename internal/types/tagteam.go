package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagTeam struct {
	ID            uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string           `gorm:"column:name;not null;uniqueIndex" json:"name"`
	SignatureMove *string          `gorm:"column:signature_move" json:"signature_move,omitempty"`
	Partners      []TagTeamPartner `gorm:"foreignKey:TagTeamID" json:"partners,omitempty"`
	Employments   []Employment     `gorm:"polymorphic:Entity;polymorphicValue:tag_team" json:"employments,omitempty"`
	Suspensions   []Suspension     `gorm:"polymorphic:Entity;polymorphicValue:tag_team" json:"suspensions,omitempty"`
	Retirements   []Retirement     `gorm:"polymorphic:Entity;polymorphicValue:tag_team" json:"retirements,omitempty"`
	CreatedAt     time.Time        `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"deleted_at,omitempty"`
}

func (TagTeam) TableName() string { return "tag_team" }

// MinPartners is the number of current partners a tag team needs to be
// booked as a unit.
const MinPartners = 2

// TagTeamPartner is a time-bounded partnership between a tag team and a
// wrestler. LeftAt nil means the wrestler is a current partner.
type TagTeamPartner struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TagTeamID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"tag_team_id"`
	WrestlerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"wrestler_id"`
	Wrestler   *Wrestler  `gorm:"constraint:OnDelete:CASCADE;foreignKey:WrestlerID;references:ID" json:"wrestler,omitempty"`
	JoinedAt   time.Time  `gorm:"not null" json:"joined_at"`
	LeftAt     *time.Time `json:"left_at,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (TagTeamPartner) TableName() string { return "tag_team_partner" }

// CombinedWeightLbs sums current partner weights for card billing.
func (tt *TagTeam) CombinedWeightLbs() int {
	total := 0
	for _, p := range tt.Partners {
		if p.LeftAt == nil && p.Wrestler != nil {
			total += p.Wrestler.WeightLbs
		}
	}
	return total
}
