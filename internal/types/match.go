package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MatchType is the closed set of match formats a card can book.
type MatchType string

const (
	MatchSingles      MatchType = "singles"
	MatchTagTeam      MatchType = "tag_team"
	MatchTripleThreat MatchType = "triple_threat"
	MatchFatalFourWay MatchType = "fatal_four_way"
	MatchSixManTag    MatchType = "six_man_tag"
	MatchEightManTag  MatchType = "eight_man_tag"
	MatchGauntlet     MatchType = "gauntlet"
	MatchBattleRoyal  MatchType = "battle_royal"
)

func (mt MatchType) Valid() bool {
	switch mt {
	case MatchSingles, MatchTagTeam, MatchTripleThreat, MatchFatalFourWay,
		MatchSixManTag, MatchEightManTag, MatchGauntlet, MatchBattleRoyal:
		return true
	}
	return false
}

// MatchDecision is how a match result was reached.
type MatchDecision string

const (
	DecisionPinfall          MatchDecision = "pinfall"
	DecisionSubmission       MatchDecision = "submission"
	DecisionDisqualification MatchDecision = "disqualification"
	DecisionCountout         MatchDecision = "countout"
	DecisionKnockout         MatchDecision = "knockout"
	DecisionStipulation      MatchDecision = "stipulation"
	DecisionForfeit          MatchDecision = "forfeit"
	DecisionTimeLimitDraw    MatchDecision = "time_limit_draw"
	DecisionNoDecision       MatchDecision = "no_decision"
	DecisionReverseDecision  MatchDecision = "reverse_decision"
)

func (d MatchDecision) Valid() bool {
	switch d {
	case DecisionPinfall, DecisionSubmission, DecisionDisqualification,
		DecisionCountout, DecisionKnockout, DecisionStipulation,
		DecisionForfeit, DecisionTimeLimitDraw, DecisionNoDecision,
		DecisionReverseDecision:
		return true
	}
	return false
}

// DrawDecisions are decisions with no winner.
func (d MatchDecision) IsDraw() bool {
	return d == DecisionTimeLimitDraw || d == DecisionNoDecision
}

// TitleChangesHands reports whether a win by this decision takes the
// belt. Champions retain on disqualification and countout.
func (d MatchDecision) TitleChangesHands() bool {
	switch d {
	case DecisionPinfall, DecisionSubmission, DecisionKnockout,
		DecisionStipulation, DecisionForfeit:
		return true
	}
	return false
}

type Match struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"event_id"`
	Event       *Event            `gorm:"constraint:OnDelete:CASCADE;foreignKey:EventID;references:ID" json:"event,omitempty"`
	MatchNumber int               `gorm:"column:match_number;not null" json:"match_number"`
	MatchType   MatchType         `gorm:"column:match_type;not null" json:"match_type"`
	Preview     string            `gorm:"column:preview" json:"preview,omitempty"`
	Metadata    datatypes.JSON    `gorm:"column:metadata" json:"metadata,omitempty"`
	Competitors []MatchCompetitor `gorm:"foreignKey:MatchID" json:"competitors,omitempty"`
	Referees    []MatchReferee    `gorm:"foreignKey:MatchID" json:"referees,omitempty"`
	Titles      []MatchTitle      `gorm:"foreignKey:MatchID" json:"titles,omitempty"`
	Result      *MatchResult      `gorm:"foreignKey:MatchID" json:"result,omitempty"`
	CreatedAt   time.Time         `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"not null;default:now()" json:"updated_at"`
}

func (Match) TableName() string { return "match" }

// MatchCompetitor places a wrestler or tag team on a numbered side of a
// match. Sides are 1-based; partners on the same side share a number.
type MatchCompetitor struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	MatchID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"match_id"`
	Side           int        `gorm:"column:side;not null" json:"side"`
	CompetitorType EntityKind `gorm:"not null;index:idx_match_competitor" json:"competitor_type"`
	CompetitorID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_match_competitor" json:"competitor_id"`
	CreatedAt      time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (MatchCompetitor) TableName() string { return "match_competitor" }

type MatchReferee struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	MatchID   uuid.UUID `gorm:"type:uuid;not null;index" json:"match_id"`
	RefereeID uuid.UUID `gorm:"type:uuid;not null;index" json:"referee_id"`
	Referee   *Referee  `gorm:"constraint:OnDelete:CASCADE;foreignKey:RefereeID;references:ID" json:"referee,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (MatchReferee) TableName() string { return "match_referee" }

type MatchTitle struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	MatchID   uuid.UUID `gorm:"type:uuid;not null;index" json:"match_id"`
	TitleID   uuid.UUID `gorm:"type:uuid;not null;index" json:"title_id"`
	Title     *Title    `gorm:"constraint:OnDelete:CASCADE;foreignKey:TitleID;references:ID" json:"title,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (MatchTitle) TableName() string { return "match_title" }

type MatchResult struct {
	ID         uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	MatchID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex" json:"match_id"`
	WinnerType *EntityKind   `gorm:"column:winner_type" json:"winner_type,omitempty"`
	WinnerID   *uuid.UUID    `gorm:"type:uuid" json:"winner_id,omitempty"`
	Decision   MatchDecision `gorm:"column:decision;not null" json:"decision"`
	CreatedAt  time.Time     `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"not null;default:now()" json:"updated_at"`
}

func (MatchResult) TableName() string { return "match_result" }
