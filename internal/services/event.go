package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/squaredcircle/promoter-backend/internal/apierr"
	"github.com/squaredcircle/promoter-backend/internal/logger"
	"github.com/squaredcircle/promoter-backend/internal/repos"
	"github.com/squaredcircle/promoter-backend/internal/types"
)

type CreateEventInput struct {
	Name    string     `json:"name"`
	Date    *time.Time `json:"date,omitempty"`
	VenueID *uuid.UUID `json:"venue_id,omitempty"`
	Preview string     `json:"preview,omitempty"`
}

type UpdateEventInput struct {
	Name    *string    `json:"name,omitempty"`
	Preview *string    `json:"preview,omitempty"`
	VenueID *uuid.UUID `json:"venue_id,omitempty"`
}

type EventView struct {
	Event  *types.Event      `json:"event"`
	Status types.EventStatus `json:"status"`
}

type EventService interface {
	Create(ctx context.Context, input CreateEventInput) (*types.Event, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateEventInput) (*types.Event, error)
	Get(ctx context.Context, id uuid.UUID) (*EventView, error)
	List(ctx context.Context, statusFilter *types.EventStatus) ([]*EventView, error)
	Upcoming(ctx context.Context, within time.Duration) ([]*EventView, error)
	Archive(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error

	Schedule(ctx context.Context, id uuid.UUID, date time.Time, venueID *uuid.UUID) error
	Unschedule(ctx context.Context, id uuid.UUID) error
}

type eventService struct {
	db     *gorm.DB
	log    *logger.Logger
	events repos.EventRepo
	venues repos.VenueRepo
}

func NewEventService(db *gorm.DB, log *logger.Logger, events repos.EventRepo, venues repos.VenueRepo) EventService {
	return &eventService{
		db:     db,
		log:    log.With("service", "EventService"),
		events: events,
		venues: venues,
	}
}

func (es *eventService) checkVenue(ctx context.Context, venueID uuid.UUID) error {
	v, err := es.venues.GetByID(ctx, nil, venueID)
	if err != nil {
		return err
	}
	if v == nil {
		return apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("venue %s not found", venueID))
	}
	return nil
}

func (es *eventService) Create(ctx context.Context, input CreateEventInput) (*types.Event, error) {
	if input.Name == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("name is required"))
	}
	taken, err := es.events.NameExists(ctx, nil, input.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apierr.New(http.StatusConflict, "name_taken", fmt.Errorf("event name %q is already in use", input.Name))
	}
	if input.VenueID != nil {
		if err := es.checkVenue(ctx, *input.VenueID); err != nil {
			return nil, err
		}
	}
	return es.events.Create(ctx, nil, &types.Event{
		Name:    input.Name,
		Date:    input.Date,
		VenueID: input.VenueID,
		Preview: input.Preview,
	})
}

func (es *eventService) Update(ctx context.Context, id uuid.UUID, input UpdateEventInput) (*types.Event, error) {
	e, err := es.events.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("event %s not found", id))
	}
	if input.Name != nil && *input.Name != e.Name {
		taken, err := es.events.NameExists(ctx, nil, *input.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apierr.New(http.StatusConflict, "name_taken", fmt.Errorf("event name %q is already in use", *input.Name))
		}
		e.Name = *input.Name
	}
	if input.Preview != nil {
		e.Preview = *input.Preview
	}
	if input.VenueID != nil {
		if err := es.checkVenue(ctx, *input.VenueID); err != nil {
			return nil, err
		}
		e.VenueID = input.VenueID
	}
	return es.events.Update(ctx, nil, e)
}

func (es *eventService) Get(ctx context.Context, id uuid.UUID) (*EventView, error) {
	e, err := es.events.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("event %s not found", id))
	}
	return &EventView{Event: e, Status: e.Status(time.Now().UTC())}, nil
}

func (es *eventService) List(ctx context.Context, statusFilter *types.EventStatus) ([]*EventView, error) {
	all, err := es.events.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	views := make([]*EventView, 0, len(all))
	for _, e := range all {
		status := e.Status(now)
		if statusFilter != nil && status != *statusFilter {
			continue
		}
		views = append(views, &EventView{Event: e, Status: status})
	}
	return views, nil
}

func (es *eventService) Upcoming(ctx context.Context, within time.Duration) ([]*EventView, error) {
	now := time.Now().UTC()
	events, err := es.events.ListScheduledBetween(ctx, nil, now, now.Add(within))
	if err != nil {
		return nil, err
	}
	views := make([]*EventView, 0, len(events))
	for _, e := range events {
		views = append(views, &EventView{Event: e, Status: e.Status(now)})
	}
	return views, nil
}

func (es *eventService) Archive(ctx context.Context, id uuid.UUID) error {
	e, err := es.events.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if e == nil {
		return apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("event %s not found", id))
	}
	return es.events.Archive(ctx, nil, id)
}

func (es *eventService) Restore(ctx context.Context, id uuid.UUID) error {
	return es.events.Restore(ctx, nil, id)
}

// Schedule pins the event to a date, and optionally a venue in the
// same stroke. Past events stay as they happened.
func (es *eventService) Schedule(ctx context.Context, id uuid.UUID, date time.Time, venueID *uuid.UUID) error {
	e, err := es.events.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if e == nil {
		return apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("event %s not found", id))
	}
	if e.Status(time.Now().UTC()) == types.EventPast {
		return apierr.New(http.StatusUnprocessableEntity, "event_past", fmt.Errorf("a past event cannot be rescheduled"))
	}
	if venueID != nil {
		if err := es.checkVenue(ctx, *venueID); err != nil {
			return err
		}
		e.VenueID = venueID
	}
	e.Date = &date
	_, err = es.events.Update(ctx, nil, e)
	return err
}

func (es *eventService) Unschedule(ctx context.Context, id uuid.UUID) error {
	e, err := es.events.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if e == nil {
		return apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("event %s not found", id))
	}
	if e.Status(time.Now().UTC()) == types.EventPast {
		return apierr.New(http.StatusUnprocessableEntity, "event_past", fmt.Errorf("a past event cannot be unscheduled"))
	}
	e.Date = nil
	_, err = es.events.Update(ctx, nil, e)
	return err
}
