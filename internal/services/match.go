package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/squaredcircle/promoter-backend/internal/apierr"
	"github.com/squaredcircle/promoter-backend/internal/logger"
	"github.com/squaredcircle/promoter-backend/internal/repos"
	"github.com/squaredcircle/promoter-backend/internal/types"
)

// CompetitorRef names one wrestler or tag team on a side of a match.
type CompetitorRef struct {
	Kind types.EntityKind `json:"kind"`
	ID   uuid.UUID        `json:"id"`
}

type BookMatchInput struct {
	EventID    uuid.UUID         `json:"event_id"`
	MatchType  types.MatchType   `json:"match_type"`
	Sides      [][]CompetitorRef `json:"sides"`
	RefereeIDs []uuid.UUID       `json:"referee_ids"`
	TitleIDs   []uuid.UUID       `json:"title_ids,omitempty"`
	Preview    string            `json:"preview,omitempty"`
	Metadata   datatypes.JSON    `json:"metadata,omitempty"`
}

type RecordResultInput struct {
	Decision   types.MatchDecision `json:"decision"`
	WinnerKind *types.EntityKind   `json:"winner_kind,omitempty"`
	WinnerID   *uuid.UUID          `json:"winner_id,omitempty"`
}

type MatchService interface {
	Book(ctx context.Context, input BookMatchInput) (*types.Match, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Match, error)
	ListCard(ctx context.Context, eventID uuid.UUID) ([]*types.Match, error)
	RecordResult(ctx context.Context, matchID uuid.UUID, input RecordResultInput) (*types.MatchResult, error)
	Unbook(ctx context.Context, id uuid.UUID) error
}

type matchService struct {
	db            *gorm.DB
	log           *logger.Logger
	matches       repos.MatchRepo
	events        repos.EventRepo
	referees      repos.RefereeRepo
	status        StatusService
	championships ChampionshipService
}

func NewMatchService(
	db *gorm.DB,
	log *logger.Logger,
	matches repos.MatchRepo,
	events repos.EventRepo,
	referees repos.RefereeRepo,
	status StatusService,
	championships ChampionshipService,
) MatchService {
	return &matchService{
		db:            db,
		log:           log.With("service", "MatchService"),
		matches:       matches,
		events:        events,
		referees:      referees,
		status:        status,
		championships: championships,
	}
}

func bookErr(format string, args ...interface{}) error {
	return apierr.New(http.StatusUnprocessableEntity, "cannot_book", fmt.Errorf(format, args...))
}

func (ms *matchService) checkCompetitor(ctx context.Context, tx *gorm.DB, ref CompetitorRef, now time.Time) error {
	switch ref.Kind {
	case types.EntityKindWrestler:
		snap, err := ms.status.IndividualSnapshot(ctx, tx, ref.Kind, ref.ID, now)
		if err != nil {
			return err
		}
		if !snap.IsBookable() {
			return bookErr("wrestler %s is not bookable (%s)", ref.ID, snap.Status())
		}
	case types.EntityKindTagTeam:
		snap, err := ms.status.TagTeamSnapshot(ctx, tx, ref.ID, now)
		if err != nil {
			return err
		}
		if !snap.IsBookable() {
			return bookErr("tag team %s is not bookable (%s)", ref.ID, snap.Status())
		}
	default:
		return apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("only wrestlers and tag teams can compete"))
	}
	return nil
}

// Book validates the whole lineup before anything is written: the
// event must be on the calendar, every competitor and referee must be
// bookable today, and any title on the line must be in competition.
func (ms *matchService) Book(ctx context.Context, input BookMatchInput) (*types.Match, error) {
	if !input.MatchType.Valid() {
		return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("unknown match type %q", input.MatchType))
	}
	if len(input.Sides) < 2 {
		return nil, bookErr("a match needs at least two sides")
	}
	for i, side := range input.Sides {
		if len(side) == 0 {
			return nil, bookErr("side %d has no competitors", i+1)
		}
	}
	if len(input.RefereeIDs) == 0 {
		return nil, bookErr("a match needs a referee")
	}

	seen := map[CompetitorRef]bool{}
	for _, side := range input.Sides {
		for _, ref := range side {
			if seen[ref] {
				return nil, bookErr("%s %s is booked twice in the same match", ref.Kind, ref.ID)
			}
			seen[ref] = true
		}
	}

	event, err := ms.events.GetByID(ctx, nil, input.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("event %s not found", input.EventID))
	}
	if event.Date == nil {
		return nil, bookErr("event %q has no date; schedule it before booking matches", event.Name)
	}

	var match *types.Match
	err = ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		for _, side := range input.Sides {
			for _, ref := range side {
				if err := ms.checkCompetitor(ctx, tx, ref, now); err != nil {
					return err
				}
			}
		}

		for _, refID := range input.RefereeIDs {
			r, err := ms.referees.GetByID(ctx, tx, refID)
			if err != nil {
				return err
			}
			if r == nil {
				return notFoundErr(types.EntityKindReferee, refID)
			}
			snap, err := ms.status.IndividualSnapshot(ctx, tx, types.EntityKindReferee, refID, now)
			if err != nil {
				return err
			}
			if !snap.IsBookable() {
				return bookErr("referee %s is not bookable (%s)", refID, snap.Status())
			}
		}

		for _, titleID := range input.TitleIDs {
			snap, err := ms.status.TitleSnapshot(ctx, tx, titleID, now)
			if err != nil {
				return err
			}
			if !snap.IsCompetable() {
				return bookErr("title %s is not in competition", titleID)
			}
		}

		number, err := ms.matches.NextMatchNumber(ctx, tx, input.EventID)
		if err != nil {
			return err
		}

		match = &types.Match{
			EventID:     input.EventID,
			MatchNumber: number,
			MatchType:   input.MatchType,
			Preview:     input.Preview,
			Metadata:    input.Metadata,
		}
		for i, side := range input.Sides {
			for _, ref := range side {
				match.Competitors = append(match.Competitors, types.MatchCompetitor{
					Side:           i + 1,
					CompetitorType: ref.Kind,
					CompetitorID:   ref.ID,
				})
			}
		}
		for _, refID := range input.RefereeIDs {
			match.Referees = append(match.Referees, types.MatchReferee{RefereeID: refID})
		}
		for _, titleID := range input.TitleIDs {
			match.Titles = append(match.Titles, types.MatchTitle{TitleID: titleID})
		}

		_, err = ms.matches.Create(ctx, tx, match)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ms.matches.GetByID(ctx, nil, match.ID)
}

func (ms *matchService) Get(ctx context.Context, id uuid.UUID) (*types.Match, error) {
	m, err := ms.matches.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("match %s not found", id))
	}
	return m, nil
}

func (ms *matchService) ListCard(ctx context.Context, eventID uuid.UUID) ([]*types.Match, error) {
	event, err := ms.events.GetByID(ctx, nil, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("event %s not found", eventID))
	}
	return ms.matches.ListForEvent(ctx, nil, eventID)
}

// RecordResult writes the outcome of a match. A winning decision needs
// a winner drawn from the booked competitors; a draw forbids one. When
// a title was on the line and the decision takes the belt, the winner
// is crowned as of the event date.
func (ms *matchService) RecordResult(ctx context.Context, matchID uuid.UUID, input RecordResultInput) (*types.MatchResult, error) {
	if !input.Decision.Valid() {
		return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("unknown decision %q", input.Decision))
	}

	m, err := ms.matches.GetByID(ctx, nil, matchID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("match %s not found", matchID))
	}
	if m.Result != nil {
		return nil, apierr.New(http.StatusConflict, "result_exists", fmt.Errorf("match already has a result"))
	}

	if input.Decision.IsDraw() {
		if input.WinnerKind != nil || input.WinnerID != nil {
			return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("a draw has no winner"))
		}
	} else {
		if input.WinnerKind == nil || input.WinnerID == nil {
			return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("decision %q requires a winner", input.Decision))
		}
		found := false
		for _, c := range m.Competitors {
			if c.CompetitorType == *input.WinnerKind && c.CompetitorID == *input.WinnerID {
				found = true
				break
			}
		}
		if !found {
			return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("winner was not booked in this match"))
		}
	}

	res := &types.MatchResult{
		MatchID:    matchID,
		WinnerType: input.WinnerKind,
		WinnerID:   input.WinnerID,
		Decision:   input.Decision,
	}

	// Result and title changes land in one transaction so a refused
	// award leaves the match undecided.
	err = ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(m.Titles) > 0 && input.Decision.TitleChangesHands() && input.WinnerID != nil {
			wonAt := time.Now().UTC()
			if m.Event != nil && m.Event.Date != nil {
				wonAt = *m.Event.Date
			}
			for _, mt := range m.Titles {
				if _, err := ms.championships.awardInTx(ctx, tx, mt.TitleID, *input.WinnerKind, *input.WinnerID, wonAt); err != nil {
					if apierr.CodeOf(err) == "already_champion" {
						continue
					}
					return err
				}
			}
		}

		_, err := ms.matches.CreateResult(ctx, tx, res)
		return err
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Unbook pulls a match off the card. Matches with a recorded result
// stay in the books.
func (ms *matchService) Unbook(ctx context.Context, id uuid.UUID) error {
	m, err := ms.matches.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if m == nil {
		return apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("match %s not found", id))
	}
	if m.Result != nil {
		return apierr.New(http.StatusConflict, "result_exists", fmt.Errorf("a decided match cannot be unbooked"))
	}
	return ms.matches.Delete(ctx, nil, id)
}
